package dashboard

import (
	"fmt"

	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// Violation reports a (country, tire size) whose industry or Goodyear
// totals are not constant across its rows. The aggregations assume one
// value per selection and deduplicate on that basis; a violation means the
// sales chart would show more than two bars.
type Violation struct {
	Country  string
	TireSize string
	Pairs    int
}

func (v Violation) String() string {
	return fmt.Sprintf("%s/%s has %d distinct (industry, goodyear) pairs, want 1",
		v.Country, v.TireSize, v.Pairs)
}

// CheckConsistency verifies that every (country, tire size) carries a
// single (industry sales, Goodyear sales) pair. The returned slice is
// empty for a well-formed dataset; order follows first occurrence.
func CheckConsistency(tbl *market.Table) []Violation {
	type selection struct{ country, size string }
	type pair struct{ industry, goodyear float64 }

	pairs := make(map[selection]map[pair]bool)
	var order []selection
	for _, r := range tbl.Rows() {
		sel := selection{r.Country, r.TireSize}
		if pairs[sel] == nil {
			pairs[sel] = make(map[pair]bool)
			order = append(order, sel)
		}
		pairs[sel][pair{r.IndustrySales, r.GoodyearSales}] = true
	}

	var violations []Violation
	for _, sel := range order {
		if n := len(pairs[sel]); n > 1 {
			violations = append(violations, Violation{
				Country:  sel.country,
				TireSize: sel.size,
				Pairs:    n,
			})
		}
	}
	return violations
}
