package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gorilla/mux"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/datasources/mocks"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

func TestProductGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name          string
		productID     string
		setupContext  func(r *http.Request) *http.Request
		product       domain.Product
		fetchErr      error
		wantStatus    int
		wantCacheCtrl string
	}{
		{
			name:          "successful_get",
			productID:     "prod-1",
			setupContext:  testContext(),
			product:       domain.Product{ID: "prod-1", Name: "Omega-3", Brand: "SeaWell", Price: 19.99},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=3600",
		},
		{
			name:          "no_cache_for_authenticated_user",
			productID:     "prod-1",
			setupContext:  testContextWithUserID("user123"),
			product:       domain.Product{ID: "prod-1", Name: "Omega-3"},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "",
		},
		{
			name:         "not_found",
			productID:    "missing",
			setupContext: testContext(),
			fetchErr:     datasources.ErrProductNotFound,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "fetch_error",
			productID:    "prod-1",
			setupContext: testContext(),
			fetchErr:     errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockProductFetcher(t)
			fetcher.EXPECT().
				FetchProduct(mock.Anything, tc.productID).
				Return(tc.product, tc.fetchErr)

			controller := ProductGet{
				Fetcher:     fetcher,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/products/"+tc.productID, nil)
			req = mux.SetURLVars(req, map[string]string{"product_id": tc.productID})
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

				var product domain.Product
				err := json.NewDecoder(rec.Body).Decode(&product)
				require.NoError(t, err)
				assert.Equal(t, tc.product, product)
			}
		})
	}
}
