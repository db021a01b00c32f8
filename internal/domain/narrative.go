package domain

import (
	"fmt"
)

// Narrative is the human-readable companion to a trust assessment. The text
// is free-form: it may come from a language model or from the deterministic
// template below, and nothing downstream depends on its exact wording.
type Narrative struct {
	Summary         string `json:"summary"`
	Efficacy        string `json:"efficacy,omitempty"`
	SideEffects     string `json:"side_effects,omitempty"`
	Recommendations string `json:"recommendations,omitempty"`
	Warnings        string `json:"warnings"`
	Disclaimer      string `json:"disclaimer"`
}

// ProductAnalysis is the full result served to the dashboard and the API.
type ProductAnalysis struct {
	Product   Product         `json:"product"`
	Reviews   []Review        `json:"reviews"`
	Checklist ChecklistResult `json:"checklist_results"`
	Trust     TrustAssessment `json:"trust"`
	Narrative Narrative       `json:"narrative"`
}

const (
	narrativeWarnings   = "Consult a physician before use if pregnant or nursing."
	narrativeDisclaimer = "This analysis reflects reported user experience, not a medical diagnosis."
)

// DefaultNarrative is the deterministic fallback used when no language-model
// generator is configured or when a generation attempt fails.
func DefaultNarrative(product Product, assessment TrustAssessment) Narrative {
	var summary string
	switch assessment.TrustLevel {
	case TrustLevelHigh:
		summary = fmt.Sprintf(
			"%s scores high on trust: verified purchases dominate and few reviews look promotional.",
			product.Label(),
		)
	case TrustLevelMedium:
		summary = fmt.Sprintf(
			"%s shows moderate trust: most indicators are sound but some need a closer look.",
			product.Label(),
		)
	default:
		summary = fmt.Sprintf(
			"%s scores low on trust: a high share of suspected promotional reviews or few verified purchases.",
			product.Label(),
		)
	}

	return Narrative{
		Summary:         summary,
		Recommendations: "Take once daily with a meal; consistent use over several months is typical before effects are felt.",
		Warnings:        narrativeWarnings,
		Disclaimer:      narrativeDisclaimer,
	}
}
