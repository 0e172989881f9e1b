package market

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the dataset from a sales_records table. The table
// holds the same denormalized rows as the CSV export, one per
// (country, tire size, competitor, pattern).
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a source backed by the given connection pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Name implements Source.
func (s *PostgresSource) Name() string {
	return "postgres:sales_records"
}

const selectRecords = `
	SELECT country_or_territory, tire_size,
		total_industry_sales, goodyear_sales, som_of_brand,
		competitor_brand, competitor_brand_sales, competitor_som,
		brand_name, competitor_pattern, competitor_pattern_sales,
		top_5_fitments
	FROM sales_records
	ORDER BY id ASC`

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) (*Table, error) {
	rows, err := s.pool.Query(ctx, selectRecords)
	if err != nil {
		return nil, fmt.Errorf("querying sales records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		err := rows.Scan(
			&r.Country, &r.TireSize,
			&r.IndustrySales, &r.GoodyearSales, &r.BrandShare,
			&r.CompetitorBrand, &r.CompetitorSales, &r.CompetitorShare,
			&r.BrandName, &r.Pattern, &r.PatternSales,
			&r.Fitments,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sales record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales records: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return NewTable(records), nil
}
