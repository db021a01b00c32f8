package domain

import (
	"strings"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	ProductURL  string  `json:"product_url,omitempty"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
	Category    string  `json:"category,omitempty"`
}

type ProductFilters struct {
	Category  string
	MinRating float64
	Search    string
}

type ProductListOptions struct {
	Page, PageSize int
}

// NormalizeProduct maps a raw store row onto the canonical Product shape.
// Store prices above 1000 are cents and get divided down. Returns false only
// when the record is unusable (nil map or no id).
func NormalizeProduct(raw RawRecord) (Product, bool) {
	if raw == nil {
		return Product{}, false
	}

	id := raw.String("id")
	if id == "" {
		return Product{}, false
	}

	price := raw.Float(0, "price")
	if price > 1000 {
		price = price / 100
	}

	return Product{
		ID:          id,
		Name:        raw.String("name", "title"),
		Brand:       raw.String("brand"),
		Price:       price,
		ProductURL:  raw.String("product_url", "url"),
		RatingAvg:   raw.Float(0, "rating_avg"),
		RatingCount: raw.Int(0, "rating_count"),
		Category:    raw.String("category"),
	}, true
}

// NormalizeProducts converts a batch best-effort, dropping unusable rows.
func NormalizeProducts(raws []RawRecord) []Product {
	products := make([]Product, 0, len(raws))
	for _, raw := range raws {
		product, ok := NormalizeProduct(raw)
		if !ok {
			continue
		}
		products = append(products, product)
	}
	return products
}

// Label is the display name used by the dashboard and the RSS feed.
func (p Product) Label() string {
	switch {
	case p.Brand != "" && p.Name != "":
		return p.Brand + " " + p.Name
	case p.Brand != "":
		return p.Brand
	case p.Name != "":
		return p.Name
	default:
		return "Unknown"
	}
}

// MatchesFilters applies in-memory product filtering for datasources that
// cannot push the filters into the query.
func (p Product) MatchesFilters(filters ProductFilters) bool {
	if filters.Category != "" && p.Category != filters.Category {
		return false
	}
	if filters.MinRating > 0 && p.RatingAvg < filters.MinRating {
		return false
	}
	if filters.Search != "" && !containsFold(p.Name, filters.Search) && !containsFold(p.Brand, filters.Search) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
