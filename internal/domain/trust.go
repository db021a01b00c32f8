package domain

import (
	"math"
)

type TrustLevel string

const (
	TrustLevelHigh   TrustLevel = "high"
	TrustLevelMedium TrustLevel = "medium"
	TrustLevelLow    TrustLevel = "low"
)

type TrustAssessment struct {
	TrustScore float64    `json:"trust_score"`
	TrustLevel TrustLevel `json:"trust_level"`
}

// ComputeTrust reduces a checklist to a 0-100 composite score, rounded to one
// decimal, and buckets it. An empty or missing checklist maps to zero/low;
// this never fails.
func ComputeTrust(checklist ChecklistResult) TrustAssessment {
	if len(checklist) == 0 {
		return TrustAssessment{TrustScore: 0, TrustLevel: TrustLevelLow}
	}

	var sum float64
	for _, check := range checklist {
		sum += check.Rate
	}
	score := math.Round(100*sum/float64(len(checklist))*10) / 10

	return TrustAssessment{
		TrustScore: score,
		TrustLevel: TrustLevelForScore(score),
	}
}

func TrustLevelForScore(score float64) TrustLevel {
	switch {
	case score >= 70:
		return TrustLevelHigh
	case score >= 50:
		return TrustLevelMedium
	default:
		return TrustLevelLow
	}
}
