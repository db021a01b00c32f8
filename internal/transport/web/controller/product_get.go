package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type ProductGet struct {
	Fetcher     datasources.ProductFetcher
	CacheMaxAge time.Duration
}

func (c ProductGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["product_id"]

	product, err := c.Fetcher.FetchProduct(r.Context(), id)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)

		if errors.Is(err, datasources.ErrProductNotFound) {
			logger.InfoContext(ctx, "product not found", "product_id", id)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch product", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(product); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write product to response", "error", err)
	}
}
