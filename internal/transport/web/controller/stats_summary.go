package controller

import (
	"encoding/json"
	"net/http"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type StatsSummary struct {
	Catalog datasources.CatalogRepository
}

func (c StatsSummary) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := c.Catalog.ListProducts(r.Context(), domain.ProductFilters{}, domain.ProductListOptions{})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch products for stats", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Review fetches are best-effort; a product with an unreadable review
	// set still counts in the product-side stats.
	var reviews []domain.Review
	for _, product := range products {
		productReviews, err := c.Catalog.ListReviews(r.Context(), product.ID)
		if err != nil {
			ctx := r.Context()
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "unable to fetch reviews for stats",
				"error", err, "product_id", product.ID)
			continue
		}
		reviews = append(reviews, productReviews...)
	}

	summary := domain.ComputeStatsSummary(products, reviews)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write stats to response", "error", err)
	}
}
