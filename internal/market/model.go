package market

// Record is one row of the sales dataset: a single
// (country, tire size, competitor, pattern) combination. Industry-wide and
// Goodyear figures are duplicated across every competitor row of the same
// (country, tire size), which is why aggregations deduplicate before
// summing.
type Record struct {
	Country         string
	TireSize        string
	IndustrySales   float64
	GoodyearSales   float64
	BrandShare      float64
	CompetitorBrand string
	CompetitorSales float64
	CompetitorShare float64
	BrandName       *string
	Pattern         string
	PatternSales    float64
	Fitments        *string
}
