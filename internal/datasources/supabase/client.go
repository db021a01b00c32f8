// Package supabase reads the product catalog through the Supabase REST
// (PostgREST) interface.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

var _ datasources.CatalogRepository = (*Client)(nil)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// fetchRows runs a GET against one table and decodes the row set. Rows come
// back untyped; the domain normalizers deal with shape.
func (c *Client) fetchRows(ctx context.Context, table string, params url.Values) ([]domain.RawRecord, error) {
	reqURL := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("supabase API error (status %d): %s", resp.StatusCode, string(body))
	}

	var rows []domain.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return rows, nil
}

func (c *Client) ListProducts(
	ctx context.Context,
	filters domain.ProductFilters,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "rating_count.desc")
	if filters.Category != "" {
		params.Set("category", "eq."+filters.Category)
	}
	if filters.MinRating > 0 {
		params.Set("rating_avg", "gte."+strconv.FormatFloat(filters.MinRating, 'f', -1, 64))
	}
	if options.PageSize > 0 {
		params.Set("limit", strconv.Itoa(options.PageSize))
		params.Set("offset", strconv.Itoa((options.Page-1)*options.PageSize))
	}

	rows, err := c.fetchRows(ctx, "products", params)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products := domain.NormalizeProducts(rows)

	// PostgREST has no cross-column text search worth the trouble here;
	// the search filter is applied in memory over the fetched page.
	if filters.Search != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.MatchesFilters(domain.ProductFilters{Search: filters.Search}) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return products, nil
}

func (c *Client) FetchProduct(ctx context.Context, productID string) (domain.Product, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("id", "eq."+productID)

	rows, err := c.fetchRows(ctx, "products", params)
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetching product: %w", err)
	}

	for _, row := range rows {
		if product, ok := domain.NormalizeProduct(row); ok {
			return product, nil
		}
	}

	return domain.Product{}, datasources.ErrProductNotFound
}

func (c *Client) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("product_id", "eq."+productID)
	params.Set("order", "review_date.desc")

	rows, err := c.fetchRows(ctx, "reviews", params)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}

	return domain.NormalizeReviews(rows), nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("select", "category")

	rows, err := c.fetchRows(ctx, "products", params)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, row := range rows {
		category := row.String("category")
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories, nil
}
