package controller

import (
	"encoding/json"
	"net/http"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

const maxChecklistBodyBytes = 1 << 20

// ChecklistEvaluate scores a caller-supplied batch of raw reviews
// without touching the catalog, for ad-hoc evaluation of external data.
type ChecklistEvaluate struct{}

type ChecklistEvaluateRequest struct {
	ProductID string             `json:"product_id"`
	Reviews   []domain.RawRecord `json:"reviews"`
	AdPhrases []string           `json:"ad_phrases"`
}

type ChecklistEvaluateResponse struct {
	Checklist   domain.ChecklistResult `json:"checklist_results"`
	Trust       domain.TrustAssessment `json:"trust"`
	ReviewCount int                    `json:"review_count"`
}

func (c ChecklistEvaluate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChecklistEvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChecklistBodyBytes)).Decode(&req); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse checklist request body", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reviews := domain.NormalizeReviews(req.Reviews)

	criteria := &domain.AdPatternCriteria{
		ProductID: req.ProductID,
		Phrases:   req.AdPhrases,
	}

	checklist := domain.EvaluateChecklist(reviews, criteria)
	trust := domain.ComputeTrust(checklist)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(ChecklistEvaluateResponse{
		Checklist:   checklist,
		Trust:       trust,
		ReviewCount: len(reviews),
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write checklist to response", "error", err)
	}
}
