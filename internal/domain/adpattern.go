package domain

import (
	"strings"
)

// adSuspectTextLength is the body length below which a five-star review with
// no long-term use can be flagged as promotional.
const adSuspectTextLength = 100

// DefaultAdPhrases is the built-in lexicon of promotional-language signals.
// It is deliberately small; per-product lexicons come in via AdPatternCriteria.
var DefaultAdPhrases = []string{
	"best product ever",
	"amazing results",
	"miracle",
	"life changing",
	"highly recommend!!",
	"must buy",
	"100% works",
	"sponsored",
	"received for free",
}

// AdPatternCriteria carries a per-product phrase lexicon for the detector.
// A zero-value or empty criteria falls back to the default lexicon.
type AdPatternCriteria struct {
	ProductID string   `json:"product_id,omitempty"`
	Phrases   []string `json:"phrases"`
}

func (c *AdPatternCriteria) phrases() []string {
	if c == nil || len(c.Phrases) == 0 {
		return DefaultAdPhrases
	}
	return c.Phrases
}

// IsAdSuspected classifies a single review as likely promotional.
//
// The heuristic: a perfect rating, no sign of sustained use, a short body,
// and at least one flagged phrase. Empty text never matches. The verdict is
// pure and never fails; broken criteria degrade to the default lexicon.
func IsAdSuspected(review Review, criteria *AdPatternCriteria) bool {
	if review.Rating != 5 || review.OneMonthUse {
		return false
	}
	if len(review.Text) == 0 || len(review.Text) >= adSuspectTextLength {
		return false
	}

	text := strings.ToLower(review.Text)
	for _, phrase := range criteria.phrases() {
		if phrase == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}
