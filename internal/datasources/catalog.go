package datasources

import (
	"context"
	"errors"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

// ErrProductNotFound is returned by ProductFetcher when no product matches.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository combines all catalog-related interfaces.
type CatalogRepository interface {
	ProductLister
	ProductFetcher
	ReviewLister
	CategoryLister
}

type ProductLister interface {
	ListProducts(
		ctx context.Context,
		filters domain.ProductFilters,
		options domain.ProductListOptions,
	) ([]domain.Product, error)
}

type ProductFetcher interface {
	FetchProduct(ctx context.Context, productID string) (domain.Product, error)
}

type ReviewLister interface {
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
}

type CategoryLister interface {
	ListCategories(ctx context.Context) ([]string, error)
}
