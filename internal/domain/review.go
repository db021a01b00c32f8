package domain

import (
	"strconv"
)

// longTermUseTextLength is the body length above which a review is assumed to
// describe at least a month of use, when the source has no explicit flag.
const longTermUseTextLength = 100

const defaultReviewer = "Anonymous"

type Review struct {
	ProductID    string `json:"product_id"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
	Verified     bool   `json:"verified"`
	Reorder      bool   `json:"reorder"`
	OneMonthUse  bool   `json:"one_month_use"`
	Reviewer     string `json:"reviewer"`
	Date         string `json:"date"`
	Title        string `json:"title,omitempty"`
	Language     string `json:"language,omitempty"`
	HelpfulCount int    `json:"helpful_count"`
}

// RawRecord is an untyped row as returned by the external store. Field names
// and types are not guaranteed; every access goes through a tolerant getter.
type RawRecord map[string]any

func (r RawRecord) String(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func (r RawRecord) Int(fallback int, keys ...string) int {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return fallback
}

func (r RawRecord) Float(fallback float64, keys ...string) float64 {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return fallback
}

func (r RawRecord) Bool(fallback bool, keys ...string) bool {
	for _, key := range keys {
		if v, ok := r[key].(bool); ok {
			return v
		}
	}
	return fallback
}

func (r RawRecord) Has(keys ...string) bool {
	for _, key := range keys {
		if _, ok := r[key]; ok {
			return true
		}
	}
	return false
}

// NormalizeReview maps a raw store row onto the canonical Review shape.
// Missing fields default rather than fail: text defaults to empty, rating to 5
// (clamped to 1..5), reviewer to "Anonymous", and one_month_use is inferred
// from text length when the source carries no explicit flag.
//
// The second return value is false only when the record as a whole is
// unusable (nil map); individual bad fields never reject a record.
func NormalizeReview(raw RawRecord) (Review, bool) {
	if raw == nil {
		return Review{}, false
	}

	text := raw.String("text", "body")

	rating := raw.Int(5, "rating")
	if rating < 1 || rating > 5 {
		rating = 5
	}

	oneMonthUse := len(text) > longTermUseTextLength
	if raw.Has("one_month_use") {
		oneMonthUse = raw.Bool(oneMonthUse, "one_month_use")
	}

	reviewer := raw.String("reviewer", "author")
	if reviewer == "" {
		reviewer = defaultReviewer
	}

	return Review{
		ProductID:    raw.String("product_id"),
		Text:         text,
		Rating:       rating,
		Verified:     raw.Bool(true, "verified"),
		Reorder:      raw.Bool(false, "reorder"),
		OneMonthUse:  oneMonthUse,
		Reviewer:     reviewer,
		Date:         raw.String("date", "review_date"),
		Title:        raw.String("title"),
		Language:     raw.String("language"),
		HelpfulCount: raw.Int(0, "helpful_count"),
	}, true
}

// NormalizeReviews converts a batch best-effort: unusable records are dropped,
// the rest survive. An all-bad batch yields an empty slice, not an error.
func NormalizeReviews(raws []RawRecord) []Review {
	reviews := make([]Review, 0, len(raws))
	for _, raw := range raws {
		review, ok := NormalizeReview(raw)
		if !ok {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}
