package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutrascore/review-trust-api/internal/app"
	"github.com/nutrascore/review-trust-api/internal/command"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type scanFlags struct {
	output      string
	category    string
	minRating   float64
	page        int
	pageSize    int
	concurrency int
}

func newScanCmd() *cobra.Command {
	f := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run the trust analysis across a page of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "json", "Output format: json or yaml")
	flags.StringVar(&f.category, "category", "", "Filter by category")
	flags.Float64Var(&f.minRating, "min-rating", 0, "Minimum average rating")
	flags.IntVar(&f.page, "page", 1, "Page number")
	flags.IntVar(&f.pageSize, "page-size", 50, "Page size")
	flags.IntVar(&f.concurrency, "concurrency", command.DefaultAnalyzeCatalogConfig().Concurrency,
		"Products analyzed in parallel")

	return cmd
}

func runScan(ctx context.Context, f *scanFlags) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = domain.ContextWithLogger(ctx, logger)

	catalog, err := app.SetupCatalogRepository(ctx)
	if err != nil {
		return err
	}

	narrative, err := app.SetupNarrativeGenerator(ctx)
	if err != nil {
		return err
	}

	analyzeProduct := command.NewAnalyzeProduct(catalog, catalog, narrative)
	analyzeCatalog := command.NewAnalyzeCatalog(catalog, analyzeProduct, command.AnalyzeCatalogConfig{
		Concurrency: f.concurrency,
	})

	analyses, err := analyzeCatalog.Execute(ctx, command.AnalyzeCatalogRequest{
		Filters: domain.ProductFilters{
			Category:  f.category,
			MinRating: f.minRating,
		},
		Options: domain.ProductListOptions{Page: f.page, PageSize: f.pageSize},
	})
	if err != nil {
		return err
	}

	return writeOutput(analyses, f.output)
}
