package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nutrascore/review-trust-api/internal/command"
	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type ProductAnalysis struct {
	Analyze command.Command[command.AnalyzeProductRequest, domain.ProductAnalysis]
}

func (c ProductAnalysis) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["product_id"]

	analysis, err := c.Analyze.Execute(r.Context(), command.AnalyzeProductRequest{
		ProductID: id,
	})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)

		if errors.Is(err, datasources.ErrProductNotFound) {
			logger.InfoContext(ctx, "product not found", "product_id", id)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to analyze product", "error", err, "product_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(analysis); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write analysis to response", "error", err)
	}
}
