package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nutrascore/review-trust-api/internal/command"
	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
	"github.com/nutrascore/review-trust-api/internal/transport/web/controller"
)

func MakeRouter(
	catalog datasources.CatalogRepository,
	analyzeProductCmd command.Command[command.AnalyzeProductRequest, domain.ProductAnalysis],
	rssBaseURL, rssAuthorName, rssAuthorEmail string,
	catalogCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(authMiddleware)

	r.Handle("/healthz", controller.Health{}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products", controller.ProductsList{
		Lister:      catalog,
		CacheMaxAge: catalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}", controller.ProductGet{
		Fetcher:     catalog,
		CacheMaxAge: catalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}/reviews", controller.ReviewsList{
		Lister:      catalog,
		CacheMaxAge: catalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/products/{product_id}/analysis", controller.ProductAnalysis{
		Analyze: analyzeProductCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/checklist", controller.ChecklistEvaluate{}).
		Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/stats", controller.StatsSummary{
		Catalog: catalog,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/categories", controller.CategoriesList{
		Lister:      catalog,
		CacheMaxAge: catalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssAuthorName,
			FeedAuthorEmail: rssAuthorEmail,
			Catalog:         catalog,
			CacheMaxAge:     catalogCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
