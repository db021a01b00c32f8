// Package anthropic generates narrative product summaries with the Anthropic
// Messages API. Failures surface as errors; callers fall back to the
// deterministic template.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

var _ datasources.NarrativeGenerator = (*Client)(nil)

const (
	messagesURL      = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
	maxTokens        = 1000
)

const systemPrompt = `You are a pharmacist reviewing dietary-supplement review data.
Given a product, its eight-point review checklist and its trust assessment, write a short
consumer-facing analysis. Respond with strict JSON only, using exactly these keys:
{"summary": "...", "efficacy": "...", "side_effects": "...", "recommendations": "..."}`

type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: http.DefaultClient,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type narrativePayload struct {
	Summary         string `json:"summary"`
	Efficacy        string `json:"efficacy"`
	SideEffects     string `json:"side_effects"`
	Recommendations string `json:"recommendations"`
}

func (c *Client) GenerateNarrative(
	ctx context.Context,
	product domain.Product,
	checklist domain.ChecklistResult,
	assessment domain.TrustAssessment,
) (domain.Narrative, error) {
	prompt, err := buildPrompt(product, checklist, assessment)
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("building prompt: %w", err)
	}

	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesURL, bytes.NewReader(jsonBody))
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Narrative{}, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Narrative{}, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Content) == 0 {
		return domain.Narrative{}, fmt.Errorf("empty completion response")
	}

	payload, err := parseNarrativePayload(result.Content[0].Text)
	if err != nil {
		return domain.Narrative{}, fmt.Errorf("parsing narrative payload: %w", err)
	}

	fallback := domain.DefaultNarrative(product, assessment)
	narrative := domain.Narrative{
		Summary:         payload.Summary,
		Efficacy:        payload.Efficacy,
		SideEffects:     payload.SideEffects,
		Recommendations: payload.Recommendations,
		Warnings:        fallback.Warnings,
		Disclaimer:      fallback.Disclaimer,
	}
	if narrative.Summary == "" {
		narrative.Summary = fallback.Summary
	}

	return narrative, nil
}

func buildPrompt(
	product domain.Product,
	checklist domain.ChecklistResult,
	assessment domain.TrustAssessment,
) (string, error) {
	checklistJSON, err := json.Marshal(checklist)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Product: %s\nPrice: $%.2f\nAverage rating: %.1f over %d reviews\n"+
			"Trust score: %.1f (%s)\nChecklist: %s\n\nRespond with the JSON object only.",
		product.Label(), product.Price, product.RatingAvg, product.RatingCount,
		assessment.TrustScore, assessment.TrustLevel, checklistJSON,
	), nil
}

// parseNarrativePayload tolerates models that wrap the JSON in a code fence.
func parseNarrativePayload(text string) (narrativePayload, error) {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var payload narrativePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return narrativePayload{}, err
	}
	return payload, nil
}
