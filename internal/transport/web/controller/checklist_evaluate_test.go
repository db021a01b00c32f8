package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

func TestChecklistEvaluate_ServeHTTP(t *testing.T) {
	t.Run("invalid_body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/checklist", strings.NewReader("{not json"))
		req = testContext()(req)
		rec := httptest.NewRecorder()

		ChecklistEvaluate{}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty_reviews_gets_no_data_checklist", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/checklist", strings.NewReader(`{"reviews": []}`))
		req = testContext()(req)
		rec := httptest.NewRecorder()

		ChecklistEvaluate{}.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response ChecklistEvaluateResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		require.NoError(t, err)

		assert.Equal(t, 0, response.ReviewCount)
		assert.InDelta(t, 12.5, response.Trust.TrustScore, 0.001)
		assert.Equal(t, domain.TrustLevelLow, response.Trust.TrustLevel)
		assert.False(t, response.Checklist[domain.CheckVerifiedPurchase].Passed)
	})

	t.Run("raw_reviews_are_normalized_and_scored", func(t *testing.T) {
		body := `{
			"product_id": "prod-1",
			"reviews": [
				{"body": "Took this for three months and my bloodwork improved noticeably. Energy levels are more even through the day too.", "rating": 4, "verified": true, "author": "jane"},
				{"body": "Best product ever", "rating": 5, "verified": true}
			],
			"ad_phrases": ["best product ever"]
		}`

		req := httptest.NewRequest(http.MethodPost, "/v1/checklist", strings.NewReader(body))
		req = testContext()(req)
		rec := httptest.NewRecorder()

		ChecklistEvaluate{}.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response ChecklistEvaluateResponse
		err := json.NewDecoder(rec.Body).Decode(&response)
		require.NoError(t, err)

		assert.Equal(t, 2, response.ReviewCount)
		assert.True(t, response.Checklist[domain.CheckVerifiedPurchase].Passed)

		// One of two reviews trips the ad heuristic.
		adCheck := response.Checklist[domain.CheckAdDetection]
		assert.False(t, adCheck.Passed)
		assert.InDelta(t, 0.5, adCheck.Rate, 0.001)
	})
}
