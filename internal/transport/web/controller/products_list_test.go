package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutrascore/review-trust-api/internal/datasources/mocks"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func TestProductsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		queryString   string
		setupContext  func(r *http.Request) *http.Request
		products      []domain.Product
		listErr       error
		wantStatus    int
		wantCacheCtrl string
		wantProducts  []domain.Product
		wantFilters   domain.ProductFilters
		wantOptions   domain.ProductListOptions
		skipList      bool
	}{
		{
			name:         "successful_list",
			queryString:  "",
			setupContext: testContext(),
			products: []domain.Product{
				{ID: "prod-1", Name: "Omega-3", Brand: "SeaWell", RatingAvg: 4.5, RatingCount: 120},
				{ID: "prod-2", Name: "Lutein Complex", Brand: "EyeCo", RatingAvg: 4.1, RatingCount: 80},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantProducts: []domain.Product{
				{ID: "prod-1", Name: "Omega-3", Brand: "SeaWell", RatingAvg: 4.5, RatingCount: 120},
				{ID: "prod-2", Name: "Lutein Complex", Brand: "EyeCo", RatingAvg: 4.1, RatingCount: 80},
			},
			wantFilters: domain.ProductFilters{},
			wantOptions: domain.ProductListOptions{Page: 1, PageSize: 50},
		},
		{
			name:         "no_cache_for_authenticated_user",
			queryString:  "",
			setupContext: testContextWithUserID("user123"),
			products: []domain.Product{
				{ID: "prod-1", Name: "Omega-3"},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "",
			wantProducts: []domain.Product{
				{ID: "prod-1", Name: "Omega-3"},
			},
			wantFilters: domain.ProductFilters{},
			wantOptions: domain.ProductListOptions{Page: 1, PageSize: 50},
		},
		{
			name:          "with_filters_and_pagination",
			queryString:   "category=eye-health&min_rating=4&page=2&page_size=10",
			setupContext:  testContext(),
			products:      []domain.Product{},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
			wantProducts:  []domain.Product{},
			wantFilters:   domain.ProductFilters{Category: "eye-health", MinRating: 4},
			wantOptions:   domain.ProductListOptions{Page: 2, PageSize: 10},
		},
		{
			name:         "invalid_page_param",
			queryString:  "page=invalid",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
			skipList:     true,
		},
		{
			name:         "invalid_page_size_exceeds_limit",
			queryString:  "page_size=500",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
			skipList:     true,
		},
		{
			name:         "invalid_min_rating",
			queryString:  "min_rating=6",
			setupContext: testContext(),
			wantStatus:   http.StatusBadRequest,
			skipList:     true,
		},
		{
			name:         "list_error",
			queryString:  "",
			setupContext: testContext(),
			listErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
			wantFilters:  domain.ProductFilters{},
			wantOptions:  domain.ProductListOptions{Page: 1, PageSize: 50},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockProductLister(t)

			if !tc.skipList {
				lister.EXPECT().
					ListProducts(mock.Anything, tc.wantFilters, tc.wantOptions).
					Return(tc.products, tc.listErr)
			}

			controller := ProductsList{
				Lister:      lister,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/products?"+tc.queryString, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				if tc.wantCacheCtrl != "" {
					assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
				} else {
					assert.Empty(t, rec.Header().Get("Cache-Control"))
				}

				var response ProductsListResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantProducts, response.Data)
				assert.Equal(t, len(tc.wantProducts), response.Metadata.Count)
			}
		})
	}
}
