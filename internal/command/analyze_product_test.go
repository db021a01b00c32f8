package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutrascore/review-trust-api/internal/datasources/mocks"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalyzeProduct_Execute(t *testing.T) {
	product := domain.Product{ID: "1", Name: "Lutein 20mg", Brand: "NOW Foods"}
	reviews := []domain.Review{
		{Text: "been taking this daily for two months now, noticeably less eye strain at work", Rating: 4, Verified: true, OneMonthUse: true, Reviewer: "a"},
		{Text: "good value, will order again once this bottle runs out for sure", Rating: 5, Verified: true, Reorder: true, Reviewer: "b"},
	}
	narrative := domain.Narrative{Summary: "model summary", Warnings: "w", Disclaimer: "d"}

	fetcher := mocks.NewMockProductFetcher(t)
	fetcher.EXPECT().FetchProduct(mock.Anything, "1").Return(product, nil)

	lister := mocks.NewMockReviewLister(t)
	lister.EXPECT().ListReviews(mock.Anything, "1").Return(reviews, nil)

	generator := mocks.NewMockNarrativeGenerator(t)
	generator.EXPECT().
		GenerateNarrative(mock.Anything, product, mock.Anything, mock.Anything).
		Return(narrative, nil)

	cmd := NewAnalyzeProduct(fetcher, lister, generator)

	analysis, err := cmd.Execute(testContext(), AnalyzeProductRequest{ProductID: "1"})
	require.NoError(t, err)

	assert.Equal(t, product, analysis.Product)
	assert.Equal(t, reviews, analysis.Reviews)
	assert.Len(t, analysis.Checklist, 8)
	assert.Equal(t, domain.ComputeTrust(analysis.Checklist), analysis.Trust)
	assert.Equal(t, narrative, analysis.Narrative)
}

func TestAnalyzeProduct_ProductFetchErrorFails(t *testing.T) {
	fetcher := mocks.NewMockProductFetcher(t)
	fetcher.EXPECT().FetchProduct(mock.Anything, "1").Return(domain.Product{}, errors.New("boom"))

	cmd := NewAnalyzeProduct(fetcher, mocks.NewMockReviewLister(t), mocks.NewMockNarrativeGenerator(t))

	_, err := cmd.Execute(testContext(), AnalyzeProductRequest{ProductID: "1"})
	require.Error(t, err)
}

func TestAnalyzeProduct_ReviewErrorDegradesToNoData(t *testing.T) {
	product := domain.Product{ID: "1", Name: "Lutein 20mg"}

	fetcher := mocks.NewMockProductFetcher(t)
	fetcher.EXPECT().FetchProduct(mock.Anything, "1").Return(product, nil)

	lister := mocks.NewMockReviewLister(t)
	lister.EXPECT().ListReviews(mock.Anything, "1").Return(nil, errors.New("store down"))

	generator := mocks.NewMockNarrativeGenerator(t)
	generator.EXPECT().
		GenerateNarrative(mock.Anything, product, mock.Anything, mock.Anything).
		Return(domain.Narrative{Summary: "s"}, nil)

	cmd := NewAnalyzeProduct(fetcher, lister, generator)

	analysis, err := cmd.Execute(testContext(), AnalyzeProductRequest{ProductID: "1"})
	require.NoError(t, err)

	assert.Equal(t, domain.NoDataChecklist(), analysis.Checklist)
	assert.Equal(t, 12.5, analysis.Trust.TrustScore)
	assert.Equal(t, domain.TrustLevelLow, analysis.Trust.TrustLevel)
}

func TestAnalyzeProduct_NarrativeErrorFallsBackToTemplate(t *testing.T) {
	product := domain.Product{ID: "1", Name: "Lutein 20mg", Brand: "NOW Foods"}

	fetcher := mocks.NewMockProductFetcher(t)
	fetcher.EXPECT().FetchProduct(mock.Anything, "1").Return(product, nil)

	lister := mocks.NewMockReviewLister(t)
	lister.EXPECT().ListReviews(mock.Anything, "1").Return(nil, nil)

	generator := mocks.NewMockNarrativeGenerator(t)
	generator.EXPECT().
		GenerateNarrative(mock.Anything, product, mock.Anything, mock.Anything).
		Return(domain.Narrative{}, errors.New("model unavailable"))

	cmd := NewAnalyzeProduct(fetcher, lister, generator)

	analysis, err := cmd.Execute(testContext(), AnalyzeProductRequest{ProductID: "1"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultNarrative(product, analysis.Trust), analysis.Narrative)
}
