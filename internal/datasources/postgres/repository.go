package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/nutrascore/review-trust-api/internal/datasources"
	"github.com/nutrascore/review-trust-api/internal/domain"
)

var _ datasources.CatalogRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListProducts(
	ctx context.Context,
	filters domain.ProductFilters,
	options domain.ProductListOptions,
) ([]domain.Product, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "title", "brand", "price", "url", "rating_avg", "rating_count", "category")
	sb.From("products")

	conds := buildProductConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	sb.OrderBy("rating_count").Desc()
	if options.PageSize > 0 {
		sb.Offset((options.Page - 1) * options.PageSize)
		sb.Limit(options.PageSize)
	}

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running products query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []domain.Product{}
	for rows.Next() {
		raw, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning products: %w", err)
		}
		if product, ok := domain.NormalizeProduct(raw); ok {
			products = append(products, product)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return products, nil
}

func (r *Repository) FetchProduct(ctx context.Context, productID string) (domain.Product, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "title", "brand", "price", "url", "rating_avg", "rating_count", "category")
	sb.From("products")
	sb.Where(sb.Equal("id", productID))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Product{}, fmt.Errorf("running product query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Product{}, fmt.Errorf("iterating rows: %w", err)
		}
		return domain.Product{}, datasources.ErrProductNotFound
	}

	raw, err := scanProductRow(rows)
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanning product: %w", err)
	}

	product, ok := domain.NormalizeProduct(raw)
	if !ok {
		return domain.Product{}, datasources.ErrProductNotFound
	}
	return product, nil
}

func (r *Repository) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("product_id", "body", "rating", "author", "review_date", "helpful_count", "language", "title")
	sb.From("reviews")
	sb.Where(sb.Equal("product_id", productID))
	sb.OrderBy("review_date").Desc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running reviews query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := []domain.Review{}
	for rows.Next() {
		raw, err := scanReviewRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reviews: %w", err)
		}
		if review, ok := domain.NormalizeReview(raw); ok {
			reviews = append(reviews, review)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return reviews, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("DISTINCT category")
	sb.From("products")
	sb.Where(sb.IsNotNull("category"), sb.NotEqual("category", ""))
	sb.OrderBy("category")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running categories query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scanning categories: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return categories, nil
}

func buildProductConditions(sb *sqlbuilder.SelectBuilder, filters domain.ProductFilters) []string {
	var conds []string

	if filters.Category != "" {
		conds = append(conds, sb.Equal("category", filters.Category))
	}

	if filters.MinRating > 0 {
		conds = append(conds, sb.GreaterEqualThan("rating_avg", filters.MinRating))
	}

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		conds = append(conds, sb.Or(
			sb.ILike("title", pattern),
			sb.ILike("brand", pattern),
		))
	}

	return conds
}

// scanProductRow reads a row into the untyped record shape the domain
// normalizers expect, so REST and SQL rows go through the same mapping.
func scanProductRow(rows *sql.Rows) (domain.RawRecord, error) {
	var (
		id          int64
		title       sql.NullString
		brand       sql.NullString
		price       sql.NullFloat64
		productURL  sql.NullString
		ratingAvg   sql.NullFloat64
		ratingCount sql.NullInt64
		category    sql.NullString
	)

	if err := rows.Scan(&id, &title, &brand, &price, &productURL, &ratingAvg, &ratingCount, &category); err != nil {
		return nil, err
	}

	raw := domain.RawRecord{"id": fmt.Sprintf("%d", id)}
	putString(raw, "title", title)
	putString(raw, "brand", brand)
	putFloat(raw, "price", price)
	putString(raw, "url", productURL)
	putFloat(raw, "rating_avg", ratingAvg)
	if ratingCount.Valid {
		raw["rating_count"] = float64(ratingCount.Int64)
	}
	putString(raw, "category", category)

	return raw, nil
}

func scanReviewRow(rows *sql.Rows) (domain.RawRecord, error) {
	var (
		productID    int64
		body         sql.NullString
		rating       sql.NullInt64
		author       sql.NullString
		reviewDate   sql.NullTime
		helpfulCount sql.NullInt64
		language     sql.NullString
		title        sql.NullString
	)

	if err := rows.Scan(&productID, &body, &rating, &author, &reviewDate, &helpfulCount, &language, &title); err != nil {
		return nil, err
	}

	raw := domain.RawRecord{"product_id": fmt.Sprintf("%d", productID)}
	putString(raw, "body", body)
	if rating.Valid {
		raw["rating"] = float64(rating.Int64)
	}
	putString(raw, "author", author)
	if reviewDate.Valid {
		raw["review_date"] = reviewDate.Time.Format("2006-01-02")
	}
	if helpfulCount.Valid {
		raw["helpful_count"] = float64(helpfulCount.Int64)
	}
	putString(raw, "language", language)
	putString(raw, "title", title)

	return raw, nil
}

func putString(raw domain.RawRecord, key string, v sql.NullString) {
	if v.Valid {
		raw[key] = v.String
	}
}

func putFloat(raw domain.RawRecord, key string, v sql.NullFloat64) {
	if v.Valid {
		raw[key] = v.Float64
	}
}
