package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nutrascore/review-trust-api/internal/command"
	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/datasources/anthropic"
	"github.com/nutrascore/review-trust-api/internal/datasources/postgres"
	"github.com/nutrascore/review-trust-api/internal/datasources/supabase"
	"github.com/nutrascore/review-trust-api/internal/transport/web/router"
	"github.com/nutrascore/review-trust-api/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	catalog, err := SetupCatalogRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog repository: %w", err)
	}

	narrative, err := SetupNarrativeGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up narrative generator: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	analyzeProductCmd := command.NewAnalyzeProduct(catalog, catalog, narrative)

	httpRouter, err := router.MakeRouter(
		catalog,
		analyzeProductCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "CATALOG_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

// SetupCatalogRepository is shared between the server and the CLI, which is
// why it and SetupNarrativeGenerator are exported.
func SetupCatalogRepository(ctx context.Context) (datasources.CatalogRepository, error) {
	var catalog datasources.CatalogRepository

	switch driver := MustGetEnvAsString(ctx, "CATALOG_DRIVER"); driver {
	case "supabase":
		catalog = supabase.NewClient(
			MustGetEnvAsString(ctx, "SUPABASE_URL"),
			MustGetEnvAsString(ctx, "SUPABASE_KEY"),
		)
	case "postgres":
		db, err := postgres.Connect(ctx, MustGetEnvAsString(ctx, "POSTGRES_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		catalog = postgres.New(db)
	default:
		return nil, fmt.Errorf("unknown catalog driver [%s]", driver)
	}

	ttl := MustGetEnvAsDuration(ctx, "CATALOG_CACHE_TTL")
	if ttl > 0 {
		catalog = datasources.NewCachedCatalog(catalog, ttl, nil)
	}

	return catalog, nil
}

func SetupNarrativeGenerator(ctx context.Context) (datasources.NarrativeGenerator, error) {
	switch driver := MustGetEnvAsString(ctx, "NARRATIVE_DRIVER"); driver {
	case "null":
		return datasources.NullNarrativeGenerator{}, nil
	case "anthropic":
		return anthropic.NewClient(
			MustGetEnvAsString(ctx, "ANTHROPIC_API_KEY"),
			MustGetEnvAsString(ctx, "ANTHROPIC_MODEL"),
		), nil
	default:
		return nil, fmt.Errorf("unknown narrative driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
