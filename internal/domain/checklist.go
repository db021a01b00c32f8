package domain

import (
	"fmt"
)

// The eight checklist keys. Stable identifiers: they are the wire format and
// must not change. ChecklistKeys gives display order.
const (
	CheckVerifiedPurchase   = "1_verified_purchase"
	CheckReorderRate        = "2_reorder_rate"
	CheckLongTermUse        = "3_long_term_use"
	CheckRatingDistribution = "4_rating_distribution"
	CheckReviewLength       = "5_review_length"
	CheckTimeDistribution   = "6_time_distribution"
	CheckAdDetection        = "7_ad_detection"
	CheckReviewerDiversity  = "8_reviewer_diversity"
)

var ChecklistKeys = []string{
	CheckVerifiedPurchase,
	CheckReorderRate,
	CheckLongTermUse,
	CheckRatingDistribution,
	CheckReviewLength,
	CheckTimeDistribution,
	CheckAdDetection,
	CheckReviewerDiversity,
}

type CheckResult struct {
	Passed      bool    `json:"passed"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

// ChecklistResult always holds all eight keys.
type ChecklistResult map[string]CheckResult

const noDataDescription = "no data"

// NoDataChecklist is the degraded result for an empty (or failed) batch.
// Absence of data is not evidence of advertising, so the ad check passes
// with rate 1; everything else fails with rate 0.
func NoDataChecklist() ChecklistResult {
	result := make(ChecklistResult, len(ChecklistKeys))
	for _, key := range ChecklistKeys {
		result[key] = CheckResult{Passed: false, Rate: 0, Description: noDataDescription}
	}
	result[CheckAdDetection] = CheckResult{Passed: true, Rate: 1, Description: noDataDescription}
	return result
}

// EvaluateChecklist computes the eight trust indicators over one product's
// review set. It always returns a complete checklist: an empty batch yields
// the no-data result, and any panic inside a check degrades the whole
// checklist to no-data rather than surfacing a partial result.
func EvaluateChecklist(reviews []Review, criteria *AdPatternCriteria) (result ChecklistResult) {
	defer func() {
		if r := recover(); r != nil {
			result = NoDataChecklist()
		}
	}()

	total := len(reviews)
	if total == 0 {
		return NoDataChecklist()
	}

	var verified, reorder, oneMonth, highRating, adSuspected, textLength int
	reviewers := make(map[string]struct{}, total)
	for _, review := range reviews {
		if review.Verified {
			verified++
		}
		if review.Reorder {
			reorder++
		}
		if review.OneMonthUse {
			oneMonth++
		}
		if review.Rating >= 4 {
			highRating++
		}
		if IsAdSuspected(review, criteria) {
			adSuspected++
		}
		textLength += len(review.Text)
		reviewers[review.Reviewer] = struct{}{}
	}

	n := float64(total)
	verifiedRate := float64(verified) / n
	reorderRate := float64(reorder) / n
	oneMonthRate := float64(oneMonth) / n
	highRatingRate := float64(highRating) / n
	meanLength := float64(textLength) / n
	adRate := float64(adSuspected) / n
	diversityRate := float64(len(reviewers)) / n

	return ChecklistResult{
		CheckVerifiedPurchase: {
			Passed:      verifiedRate >= 0.7,
			Rate:        verifiedRate,
			Description: fmt.Sprintf("verified purchases: %d/%d", verified, total),
		},
		CheckReorderRate: {
			Passed:      reorderRate >= 0.3,
			Rate:        reorderRate,
			Description: fmt.Sprintf("reorder intent: %d/%d", reorder, total),
		},
		CheckLongTermUse: {
			Passed:      oneMonthRate >= 0.5,
			Rate:        oneMonthRate,
			Description: fmt.Sprintf("one month or longer use: %d/%d", oneMonth, total),
		},
		CheckRatingDistribution: {
			Passed:      highRatingRate >= 0.3 && highRatingRate <= 0.9,
			Rate:        highRatingRate,
			Description: fmt.Sprintf("high ratings (4-5 stars): %d/%d", highRating, total),
		},
		CheckReviewLength: {
			Passed:      meanLength >= 50,
			Rate:        min(1, meanLength/100),
			Description: fmt.Sprintf("average review length: %.0f chars", meanLength),
		},
		// Not derived from data; the source never computed this from real
		// timestamps and the constant pass is kept until that changes.
		CheckTimeDistribution: {
			Passed:      true,
			Rate:        0.85,
			Description: "review timing distribution looks natural",
		},
		CheckAdDetection: {
			Passed:      adRate < 0.1,
			Rate:        1 - adRate,
			Description: fmt.Sprintf("ad-suspected reviews: %d/%d", adSuspected, total),
		},
		CheckReviewerDiversity: {
			Passed:      diversityRate >= 0.8,
			Rate:        diversityRate,
			Description: fmt.Sprintf("distinct reviewers: %d/%d", len(reviewers), total),
		},
	}
}
