package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type ReviewsList struct {
	Lister      datasources.ReviewLister
	CacheMaxAge time.Duration
}

type ReviewsListResponse struct {
	Data     []domain.Review     `json:"data"`
	Metadata ReviewsListMetadata `json:"metadata"`
}

type ReviewsListMetadata struct {
	Count int `json:"count"`
}

func (c ReviewsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["product_id"]

	reviews, err := c.Lister.ListReviews(r.Context(), id)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch reviews", "error", err, "product_id", id)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if domain.UserIDFromContext(r.Context()) == "" {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(ReviewsListResponse{
		Data:     reviews,
		Metadata: ReviewsListMetadata{Count: len(reviews)},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write reviews to response", "error", err)
	}
}
