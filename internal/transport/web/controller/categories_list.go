package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type CategoriesList struct {
	Lister      datasources.CategoryLister
	CacheMaxAge time.Duration
}

type CategoriesListResponse struct {
	Data []string `json:"data"`
}

func (c CategoriesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Lister.ListCategories(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch categories", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(CategoriesListResponse{Data: categories}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write categories to response", "error", err)
	}
}
