package command

import (
	"context"
	"fmt"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type AnalyzeProductRequest struct {
	ProductID string
	Criteria  *domain.AdPatternCriteria
}

var _ Command[AnalyzeProductRequest, domain.ProductAnalysis] = (*AnalyzeProduct)(nil)

// AnalyzeProduct runs the full per-product pipeline: fetch product and
// reviews, evaluate the checklist, aggregate the trust score, generate the
// narrative.
type AnalyzeProduct struct {
	products  datasources.ProductFetcher
	reviews   datasources.ReviewLister
	narrative datasources.NarrativeGenerator
}

func NewAnalyzeProduct(
	products datasources.ProductFetcher,
	reviews datasources.ReviewLister,
	narrative datasources.NarrativeGenerator,
) *AnalyzeProduct {
	return &AnalyzeProduct{
		products:  products,
		reviews:   reviews,
		narrative: narrative,
	}
}

func (c *AnalyzeProduct) Execute(
	ctx context.Context, req AnalyzeProductRequest,
) (domain.ProductAnalysis, error) {
	product, err := c.products.FetchProduct(ctx, req.ProductID)
	if err != nil {
		return domain.ProductAnalysis{}, fmt.Errorf("fetching product: %w", err)
	}

	// Review fetch failures degrade to the no-data checklist instead of
	// failing the whole analysis; the caller still gets a complete result.
	reviews, err := c.reviews.ListReviews(ctx, req.ProductID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to list reviews, degrading to no-data analysis",
			"product_id", req.ProductID,
			"error", err,
		)
		reviews = nil
	}

	checklist := domain.EvaluateChecklist(reviews, req.Criteria)
	assessment := domain.ComputeTrust(checklist)

	narrative, err := c.narrative.GenerateNarrative(ctx, product, checklist, assessment)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "narrative generation failed, using template",
			"product_id", req.ProductID,
			"error", err,
		)
		narrative = domain.DefaultNarrative(product, assessment)
	}

	return domain.ProductAnalysis{
		Product:   product,
		Reviews:   reviews,
		Checklist: checklist,
		Trust:     assessment,
		Narrative: narrative,
	}, nil
}
