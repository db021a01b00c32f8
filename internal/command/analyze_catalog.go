package command

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type AnalyzeCatalogRequest struct {
	Filters  domain.ProductFilters
	Options  domain.ProductListOptions
	Criteria *domain.AdPatternCriteria
}

type AnalyzeCatalogConfig struct {
	Concurrency int
}

func DefaultAnalyzeCatalogConfig() AnalyzeCatalogConfig {
	return AnalyzeCatalogConfig{Concurrency: 4}
}

var _ Command[AnalyzeCatalogRequest, []domain.ProductAnalysis] = (*AnalyzeCatalog)(nil)

// AnalyzeCatalog fans the per-product analysis out over a product listing.
// Analyses are independent, so failures are skipped rather than failing the
// batch; order of the listing is preserved.
type AnalyzeCatalog struct {
	products datasources.ProductLister
	analyze  Command[AnalyzeProductRequest, domain.ProductAnalysis]
	config   AnalyzeCatalogConfig
}

func NewAnalyzeCatalog(
	products datasources.ProductLister,
	analyze Command[AnalyzeProductRequest, domain.ProductAnalysis],
	config AnalyzeCatalogConfig,
) *AnalyzeCatalog {
	return &AnalyzeCatalog{
		products: products,
		analyze:  analyze,
		config:   config,
	}
}

func (c *AnalyzeCatalog) Execute(
	ctx context.Context, req AnalyzeCatalogRequest,
) ([]domain.ProductAnalysis, error) {
	products, err := c.products.ListProducts(ctx, req.Filters, req.Options)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	results := make([]*domain.ProductAnalysis, len(products))
	var mu sync.Mutex

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(c.config.Concurrency)

	for i, product := range products {
		i, product := i, product
		grp.Go(func() error {
			analysis, err := c.analyze.Execute(grpCtx, AnalyzeProductRequest{
				ProductID: product.ID,
				Criteria:  req.Criteria,
			})
			if err != nil {
				logger := domain.LoggerFromContext(grpCtx)
				logger.WarnContext(grpCtx, "skipping product analysis",
					"product_id", product.ID,
					"error", err,
				)
				return nil
			}

			mu.Lock()
			results[i] = &analysis
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	analyses := make([]domain.ProductAnalysis, 0, len(products))
	for _, result := range results {
		if result != nil {
			analyses = append(analyses, *result)
		}
	}

	return analyses, nil
}
