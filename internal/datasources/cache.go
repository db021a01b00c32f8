package datasources

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

// CachedCatalog memoizes catalog reads with a fixed TTL. The clock is
// injected so expiry is testable. Errors are never cached.
type CachedCatalog struct {
	inner CatalogRepository
	ttl   time.Duration
	now   func() time.Time

	mu         sync.Mutex
	products   map[string]cacheEntry[[]domain.Product]
	reviews    map[string]cacheEntry[[]domain.Review]
	product    map[string]cacheEntry[domain.Product]
	categories *cacheEntry[[]string]
}

type cacheEntry[T any] struct {
	value     T
	fetchedAt time.Time
}

var _ CatalogRepository = (*CachedCatalog)(nil)

func NewCachedCatalog(inner CatalogRepository, ttl time.Duration, now func() time.Time) *CachedCatalog {
	if now == nil {
		now = time.Now
	}
	return &CachedCatalog{
		inner:    inner,
		ttl:      ttl,
		now:      now,
		products: make(map[string]cacheEntry[[]domain.Product]),
		reviews:  make(map[string]cacheEntry[[]domain.Review]),
		product:  make(map[string]cacheEntry[domain.Product]),
	}
}

func (c *CachedCatalog) fresh(fetchedAt time.Time) bool {
	return c.now().Sub(fetchedAt) < c.ttl
}

func (c *CachedCatalog) ListProducts(
	ctx context.Context,
	filters domain.ProductFilters,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	key := fmt.Sprintf("%s|%g|%s|%d|%d",
		filters.Category, filters.MinRating, filters.Search, options.Page, options.PageSize)

	c.mu.Lock()
	entry, ok := c.products[key]
	c.mu.Unlock()
	if ok && c.fresh(entry.fetchedAt) {
		return entry.value, nil
	}

	products, err := c.inner.ListProducts(ctx, filters, options)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.products[key] = cacheEntry[[]domain.Product]{value: products, fetchedAt: c.now()}
	c.mu.Unlock()
	return products, nil
}

func (c *CachedCatalog) FetchProduct(ctx context.Context, productID string) (domain.Product, error) {
	c.mu.Lock()
	entry, ok := c.product[productID]
	c.mu.Unlock()
	if ok && c.fresh(entry.fetchedAt) {
		return entry.value, nil
	}

	product, err := c.inner.FetchProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	c.mu.Lock()
	c.product[productID] = cacheEntry[domain.Product]{value: product, fetchedAt: c.now()}
	c.mu.Unlock()
	return product, nil
}

func (c *CachedCatalog) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	c.mu.Lock()
	entry, ok := c.reviews[productID]
	c.mu.Unlock()
	if ok && c.fresh(entry.fetchedAt) {
		return entry.value, nil
	}

	reviews, err := c.inner.ListReviews(ctx, productID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.reviews[productID] = cacheEntry[[]domain.Review]{value: reviews, fetchedAt: c.now()}
	c.mu.Unlock()
	return reviews, nil
}

func (c *CachedCatalog) ListCategories(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	entry := c.categories
	c.mu.Unlock()
	if entry != nil && c.fresh(entry.fetchedAt) {
		return entry.value, nil
	}

	categories, err := c.inner.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.categories = &cacheEntry[[]string]{value: categories, fetchedAt: c.now()}
	c.mu.Unlock()
	return categories, nil
}
