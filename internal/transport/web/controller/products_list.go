package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type ProductsList struct {
	Lister      datasources.ProductLister
	CacheMaxAge time.Duration
}

type ProductsListResponse struct {
	Data     []domain.Product     `json:"data"`
	Metadata ProductsListMetadata `json:"metadata"`
}

type ProductsListMetadata struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Count    int `json:"count"`
}

func (c ProductsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := productFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse product filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse product list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	products, err := c.Lister.ListProducts(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch products", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(ProductsListResponse{
		Data: products,
		Metadata: ProductsListMetadata{
			Page:     options.Page,
			PageSize: options.PageSize,
			Count:    len(products),
		},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write products to response", "error", err)
	}
}
