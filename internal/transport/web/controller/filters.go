package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/nutrascore/review-trust-api/internal/domain"
)

func productFiltersFromQuery(q url.Values) (domain.ProductFilters, error) {
	filters := domain.ProductFilters{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	if q.Has("min_rating") {
		minRating, err := strconv.ParseFloat(q.Get("min_rating"), 64)
		if err != nil {
			return domain.ProductFilters{}, fmt.Errorf("unable to parse min_rating from query: %w", err)
		}
		if minRating < 0 || minRating > 5 {
			return domain.ProductFilters{}, fmt.Errorf("invalid min_rating value [%g]", minRating)
		}
		filters.MinRating = minRating
	}

	return filters, nil
}

func listOptionsFromQuery(q url.Values) (domain.ProductListOptions, error) {
	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.ProductListOptions{}, err
	}

	return domain.ProductListOptions{Page: page, PageSize: pageSize}, nil
}
