package datasources

import (
	"context"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

// NarrativeGenerator produces the human-readable companion to an assessment.
type NarrativeGenerator interface {
	GenerateNarrative(
		ctx context.Context,
		product domain.Product,
		checklist domain.ChecklistResult,
		assessment domain.TrustAssessment,
	) (domain.Narrative, error)
}

// NullNarrativeGenerator always answers with the deterministic template.
type NullNarrativeGenerator struct{}

var _ NarrativeGenerator = NullNarrativeGenerator{}

func (NullNarrativeGenerator) GenerateNarrative(
	_ context.Context,
	product domain.Product,
	_ domain.ChecklistResult,
	assessment domain.TrustAssessment,
) (domain.Narrative, error) {
	return domain.DefaultNarrative(product, assessment), nil
}
