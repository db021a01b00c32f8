package domain

import (
	"sort"
)

// maxValidPrice bounds plausible per-unit supplement prices; anything above
// it after cent conversion is treated as bad data and skipped.
const maxValidPrice = 1000

type PriceBucket struct {
	Label string `json:"label"`
	Min   float64
	Max   float64
	Count int `json:"count"`
}

type PriceStats struct {
	ValidCount   int           `json:"valid_count"`
	InvalidCount int           `json:"invalid_count"`
	Min          float64       `json:"min"`
	Max          float64       `json:"max"`
	Mean         float64       `json:"mean"`
	Median       float64       `json:"median"`
	Buckets      []PriceBucket `json:"buckets"`
}

var priceBucketRanges = []PriceBucket{
	{Label: "$0-$10", Min: 0, Max: 10},
	{Label: "$10-$20", Min: 10, Max: 20},
	{Label: "$20-$30", Min: 20, Max: 30},
	{Label: "$30-$50", Min: 30, Max: 50},
	{Label: "$50-$100", Min: 50, Max: 100},
	{Label: "$100+", Min: 100, Max: maxValidPrice},
}

// ComputePriceStats summarizes product prices best-effort: zero or
// out-of-range prices count as invalid and are excluded from the statistics.
func ComputePriceStats(products []Product) PriceStats {
	prices := make([]float64, 0, len(products))
	invalid := 0
	for _, p := range products {
		if p.Price <= 0 || p.Price > maxValidPrice {
			invalid++
			continue
		}
		prices = append(prices, p.Price)
	}

	stats := PriceStats{ValidCount: len(prices), InvalidCount: invalid}
	if len(prices) == 0 {
		return stats
	}

	sort.Float64s(prices)
	var sum float64
	for _, price := range prices {
		sum += price
	}

	stats.Min = prices[0]
	stats.Max = prices[len(prices)-1]
	stats.Mean = sum / float64(len(prices))
	stats.Median = prices[len(prices)/2]

	for _, bucket := range priceBucketRanges {
		for _, price := range prices {
			if price >= bucket.Min && price < bucket.Max {
				bucket.Count++
			}
		}
		if bucket.Count > 0 {
			stats.Buckets = append(stats.Buckets, bucket)
		}
	}

	return stats
}

type BrandStats struct {
	Count        int     `json:"count"`
	TotalRating  float64 `json:"total_rating"`
	TotalReviews int     `json:"total_reviews"`
}

type StatsSummary struct {
	TotalProducts      int                   `json:"total_products"`
	TotalReviews       int                   `json:"total_reviews"`
	Brands             map[string]BrandStats `json:"brands"`
	Categories         map[string]int        `json:"categories"`
	RatingDistribution map[int]int           `json:"rating_distribution"`
	AvgPrice           float64               `json:"avg_price"`
	PriceStats         PriceStats            `json:"price_stats"`
}

// ComputeStatsSummary builds the catalog-wide dashboard summary.
func ComputeStatsSummary(products []Product, reviews []Review) StatsSummary {
	summary := StatsSummary{
		TotalProducts:      len(products),
		TotalReviews:       len(reviews),
		Brands:             make(map[string]BrandStats),
		Categories:         make(map[string]int),
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	for _, p := range products {
		brand := p.Brand
		if brand == "" {
			brand = "Unknown"
		}
		stats := summary.Brands[brand]
		stats.Count++
		stats.TotalRating += p.RatingAvg
		stats.TotalReviews += p.RatingCount
		summary.Brands[brand] = stats

		category := p.Category
		if category == "" {
			category = "Unknown"
		}
		summary.Categories[category]++
	}

	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			summary.RatingDistribution[r.Rating]++
		}
	}

	summary.PriceStats = ComputePriceStats(products)
	summary.AvgPrice = summary.PriceStats.Mean

	return summary
}
