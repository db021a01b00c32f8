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

type analyzeFlags struct {
	output    string
	adPhrases []string
}

func newAnalyzeCmd() *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <product-id>",
		Short: "Run the full trust analysis for a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "json", "Output format: json or yaml")
	flags.StringSliceVar(&f.adPhrases, "ad-phrase", nil, "Extra ad phrase to match (may be repeated)")

	return cmd
}

func runAnalyze(ctx context.Context, productID string, f *analyzeFlags) error {
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

	analyze := command.NewAnalyzeProduct(catalog, catalog, narrative)

	var criteria *domain.AdPatternCriteria
	if len(f.adPhrases) > 0 {
		criteria = &domain.AdPatternCriteria{
			ProductID: productID,
			Phrases:   append(f.adPhrases, domain.DefaultAdPhrases...),
		}
	}

	analysis, err := analyze.Execute(ctx, command.AnalyzeProductRequest{
		ProductID: productID,
		Criteria:  criteria,
	})
	if err != nil {
		return err
	}

	return writeOutput(analysis, f.output)
}
