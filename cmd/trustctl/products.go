package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutrascore/review-trust-api/internal/app"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

type productsFlags struct {
	output    string
	category  string
	minRating float64
	search    string
	page      int
	pageSize  int
}

func newProductsCmd() *cobra.Command {
	f := &productsFlags{}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProducts(cmd.Context(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "json", "Output format: json or yaml")
	flags.StringVar(&f.category, "category", "", "Filter by category")
	flags.Float64Var(&f.minRating, "min-rating", 0, "Minimum average rating")
	flags.StringVar(&f.search, "search", "", "Search in product name and brand")
	flags.IntVar(&f.page, "page", 1, "Page number")
	flags.IntVar(&f.pageSize, "page-size", 50, "Page size")

	return cmd
}

func runProducts(ctx context.Context, f *productsFlags) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = domain.ContextWithLogger(ctx, logger)

	catalog, err := app.SetupCatalogRepository(ctx)
	if err != nil {
		return err
	}

	products, err := catalog.ListProducts(ctx,
		domain.ProductFilters{
			Category:  f.category,
			MinRating: f.minRating,
			Search:    f.search,
		},
		domain.ProductListOptions{Page: f.page, PageSize: f.pageSize},
	)
	if err != nil {
		return err
	}

	return writeOutput(products, f.output)
}
