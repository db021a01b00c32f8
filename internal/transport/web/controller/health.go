package controller

import (
	"encoding/json"
	"net/http"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

type Health struct{}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Message: "supplement review trust API",
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write health response", "error", err)
	}
}
