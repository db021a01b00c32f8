package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeReviews(n int, mutate func(i int, r *Review)) []Review {
	reviews := make([]Review, n)
	for i := range reviews {
		reviews[i] = Review{
			Text:        "solid product, been taking it daily for a while now and my eyes feel less tired after long screen sessions",
			Rating:      4,
			Verified:    false,
			Reorder:     false,
			OneMonthUse: true,
			Reviewer:    fmt.Sprintf("reviewer-%d", i),
		}
		if mutate != nil {
			mutate(i, &reviews[i])
		}
	}
	return reviews
}

func TestEvaluateChecklist_AlwaysReturnsAllKeys(t *testing.T) {
	cases := []struct {
		name    string
		reviews []Review
	}{
		{name: "nil_batch", reviews: nil},
		{name: "empty_batch", reviews: []Review{}},
		{name: "single_review", reviews: makeReviews(1, nil)},
		{name: "mixed_batch", reviews: makeReviews(10, func(i int, r *Review) {
			r.Verified = i%2 == 0
			r.Rating = 1 + i%5
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := EvaluateChecklist(tc.reviews, nil)

			require.Len(t, result, 8)
			for _, key := range ChecklistKeys {
				check, ok := result[key]
				require.True(t, ok, "missing key %s", key)
				assert.GreaterOrEqual(t, check.Rate, 0.0, key)
				assert.LessOrEqual(t, check.Rate, 1.0, key)
				assert.NotEmpty(t, check.Description, key)
			}
		})
	}
}

func TestEvaluateChecklist_EmptyBatchDegradesToNoData(t *testing.T) {
	result := EvaluateChecklist(nil, nil)

	for _, key := range ChecklistKeys {
		check := result[key]
		assert.Equal(t, "no data", check.Description, key)
		if key == CheckAdDetection {
			assert.True(t, check.Passed, key)
			assert.Equal(t, 1.0, check.Rate, key)
		} else {
			assert.False(t, check.Passed, key)
			assert.Equal(t, 0.0, check.Rate, key)
		}
	}
}

func TestEvaluateChecklist_VerifiedPurchase(t *testing.T) {
	// 7 of 10 verified: rate exactly at the 0.7 threshold.
	reviews := makeReviews(10, func(i int, r *Review) {
		r.Verified = i < 7
	})

	result := EvaluateChecklist(reviews, nil)

	check := result[CheckVerifiedPurchase]
	assert.InDelta(t, 0.7, check.Rate, 1e-9)
	assert.True(t, check.Passed)
	assert.Equal(t, "verified purchases: 7/10", check.Description)
}

func TestEvaluateChecklist_ReorderRateBelowThreshold(t *testing.T) {
	reviews := makeReviews(10, func(i int, r *Review) {
		r.Reorder = i < 2
	})

	result := EvaluateChecklist(reviews, nil)

	check := result[CheckReorderRate]
	assert.InDelta(t, 0.2, check.Rate, 1e-9)
	assert.False(t, check.Passed)
}

func TestEvaluateChecklist_AdDetectionFlagsWholeBatch(t *testing.T) {
	// Five short five-star reviews with a flagged phrase, no long-term use:
	// all five ad-suspected, reported rate 1 - 5/5 = 0.
	reviews := makeReviews(5, func(i int, r *Review) {
		r.Rating = 5
		r.OneMonthUse = false
		r.Text = "miracle, must buy"
	})

	result := EvaluateChecklist(reviews, nil)

	check := result[CheckAdDetection]
	assert.Equal(t, 0.0, check.Rate)
	assert.False(t, check.Passed)
	assert.Equal(t, "ad-suspected reviews: 5/5", check.Description)
}

func TestEvaluateChecklist_RatingDistributionBounds(t *testing.T) {
	cases := []struct {
		name       string
		highRating int
		wantPassed bool
	}{
		{name: "all_high_is_suspicious", highRating: 10, wantPassed: false},
		{name: "balanced_passes", highRating: 6, wantPassed: true},
		{name: "mostly_low_fails", highRating: 2, wantPassed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := makeReviews(10, func(i int, r *Review) {
				if i < tc.highRating {
					r.Rating = 5
				} else {
					r.Rating = 2
				}
			})

			check := EvaluateChecklist(reviews, nil)[CheckRatingDistribution]
			assert.InDelta(t, float64(tc.highRating)/10, check.Rate, 1e-9)
			assert.Equal(t, tc.wantPassed, check.Passed)
		})
	}
}

func TestEvaluateChecklist_ReviewLength(t *testing.T) {
	// Mean length 20: fails the >=50 threshold, rate 0.2.
	reviews := makeReviews(4, func(i int, r *Review) {
		r.Text = "short but honest one" // 20 chars
	})

	check := EvaluateChecklist(reviews, nil)[CheckReviewLength]
	assert.False(t, check.Passed)
	assert.InDelta(t, 0.2, check.Rate, 1e-9)
}

func TestEvaluateChecklist_ReviewLengthRateCapped(t *testing.T) {
	reviews := makeReviews(2, func(i int, r *Review) {
		for len(r.Text) < 400 {
			r.Text += r.Text
		}
	})

	check := EvaluateChecklist(reviews, nil)[CheckReviewLength]
	assert.True(t, check.Passed)
	assert.Equal(t, 1.0, check.Rate)
}

func TestEvaluateChecklist_ReviewerDiversity(t *testing.T) {
	reviews := makeReviews(10, func(i int, r *Review) {
		if i >= 5 {
			r.Reviewer = "same-person"
		}
	})

	check := EvaluateChecklist(reviews, nil)[CheckReviewerDiversity]
	assert.InDelta(t, 0.6, check.Rate, 1e-9)
	assert.False(t, check.Passed)
	assert.Equal(t, "distinct reviewers: 6/10", check.Description)
}

func TestEvaluateChecklist_TimeDistributionIsConstant(t *testing.T) {
	check := EvaluateChecklist(makeReviews(3, nil), nil)[CheckTimeDistribution]
	assert.True(t, check.Passed)
	assert.Equal(t, 0.85, check.Rate)
}

func TestEvaluateChecklist_Idempotent(t *testing.T) {
	reviews := makeReviews(20, func(i int, r *Review) {
		r.Verified = i%3 == 0
		r.Rating = 1 + i%5
		r.Reorder = i%4 == 0
	})

	first := EvaluateChecklist(reviews, nil)
	second := EvaluateChecklist(reviews, nil)
	assert.Equal(t, first, second)
}
