// Package dashboard computes the tire-market dashboard view model. Every
// aggregation is a pure function of an immutable table and the user's
// selections, so the whole page can be recomputed from scratch on each
// request and tested without any HTTP plumbing.
package dashboard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ZA87447/Dashboard-bot/internal/market"
)

// ErrUnknownCompetitor is returned when the requested competitor is not in
// the current top-10 ranking. The UI populates its competitor selector
// from that ranking, so only hand-crafted requests hit this.
var ErrUnknownCompetitor = errors.New("competitor not in current top-10 ranking")

// rankingLimit caps the competitor sales chart.
const rankingLimit = 35

// topCompetitorLimit caps the competitor table.
const topCompetitorLimit = 10

// fitmentsLimit caps the displayed fitments list.
const fitmentsLimit = 5

// Render filters the table to the selections and computes every dashboard
// element. An empty filtered subset produces an empty-but-valid view, not
// an error.
func Render(tbl *market.Table, sel Selections) (*View, error) {
	rows := tbl.Filter(sel.Country, sel.TireSize).Rows()

	view := &View{
		Country:         sel.Country,
		TireSize:        sel.TireSize,
		Sales:           salesChart(rows),
		MarketShare:     marketShare(rows),
		CompetitorSales: competitorSales(rows),
		BrandShare:      brandDistribution(rows),
		Fitments:        fitments(rows),
	}

	top := topCompetitors(rows)
	view.TopCompetitors = top
	if len(top) > 0 {
		view.TopCompetitor = &Callout{Brand: top[0].Brand, Share: top[0].Share}
	}

	competitor, err := resolveCompetitor(sel.Competitor, top)
	if err != nil {
		return nil, err
	}
	view.Competitor = competitor
	view.PatternSales = patternBreakdown(rows, competitor)

	return view, nil
}

// CompetitorOptions returns the brands a competitor selector may offer for
// the given selections: exactly the top-10 ranking's brand values.
func CompetitorOptions(tbl *market.Table, country, tireSize string) []string {
	top := topCompetitors(tbl.Filter(country, tireSize).Rows())
	brands := make([]string, 0, len(top))
	for _, row := range top {
		brands = append(brands, row.Brand)
	}
	return brands
}

// resolveCompetitor defaults to the ranking leader and rejects brands
// outside the ranking.
func resolveCompetitor(requested string, top []CompetitorRow) (string, error) {
	if requested == "" {
		if len(top) == 0 {
			return "", nil
		}
		return top[0].Brand, nil
	}
	for _, row := range top {
		if row.Brand == requested {
			return requested, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompetitor, requested)
}

// salesChart deduplicates (industry, Goodyear) pairs and reshapes the two
// columns into bars: all industry values first, then all Goodyear values.
// Under the dataset invariant there is exactly one pair per selection, so
// the chart normally shows two bars.
func salesChart(rows []market.Record) BarChart {
	type pair struct{ industry, goodyear float64 }
	seen := make(map[pair]bool)
	var pairs []pair
	for _, r := range rows {
		p := pair{r.IndustrySales, r.GoodyearSales}
		if !seen[p] {
			seen[p] = true
			pairs = append(pairs, p)
		}
	}

	chart := BarChart{Title: "Industry & Goodyear Sales", Bars: []Bar{}}
	for _, p := range pairs {
		chart.Bars = append(chart.Bars, Bar{Label: "Industry", Value: p.industry})
	}
	for _, p := range pairs {
		chart.Bars = append(chart.Bars, Bar{Label: "Goodyear", Value: p.goodyear})
	}
	return chart
}

// marketShare averages the distinct share-of-market fractions and formats
// the result as a percentage. Empty input renders "0.00%".
func marketShare(rows []market.Record) Metric {
	seen := make(map[float64]bool)
	var sum float64
	var n int
	for _, r := range rows {
		if seen[r.BrandShare] {
			continue
		}
		seen[r.BrandShare] = true
		sum += r.BrandShare
		n++
	}

	var mean float64
	if n > 0 {
		mean = sum / float64(n)
	}
	return Metric{
		Label: "Market Share (%)",
		Value: fmt.Sprintf("%.2f%%", mean*100),
	}
}

// brandTotal accumulates grouped values per brand in first-occurrence
// order.
type brandTotal struct {
	brand string
	value float64
}

// competitorSales deduplicates (brand, sales) pairs, sums per brand and
// returns the top ranked brands, sorted non-increasing with stable
// first-occurrence tie-break.
func competitorSales(rows []market.Record) BarChart {
	type pair struct {
		brand string
		sales float64
	}
	seen := make(map[pair]bool)
	index := make(map[string]int)
	var totals []brandTotal
	for _, r := range rows {
		p := pair{r.CompetitorBrand, r.CompetitorSales}
		if seen[p] {
			continue
		}
		seen[p] = true
		i, ok := index[p.brand]
		if !ok {
			i = len(totals)
			index[p.brand] = i
			totals = append(totals, brandTotal{brand: p.brand})
		}
		totals[i].value += p.sales
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].value > totals[j].value
	})
	if len(totals) > rankingLimit {
		totals = totals[:rankingLimit]
	}

	chart := BarChart{Title: "Top Competitor Sales", Bars: []Bar{}}
	for _, t := range totals {
		chart.Bars = append(chart.Bars, Bar{Label: t.brand, Value: t.value})
	}
	return chart
}

// brandDistribution counts rows per non-null brand name and converts the
// counts to percentages of the total, largest first.
func brandDistribution(rows []market.Record) PieChart {
	index := make(map[string]int)
	var counts []brandTotal
	var total float64
	for _, r := range rows {
		if r.BrandName == nil {
			continue
		}
		name := *r.BrandName
		i, ok := index[name]
		if !ok {
			i = len(counts)
			index[name] = i
			counts = append(counts, brandTotal{brand: name})
		}
		counts[i].value++
		total++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].value > counts[j].value
	})

	chart := PieChart{Title: "Market Share Distribution", Slices: []Slice{}}
	for _, c := range counts {
		chart.Slices = append(chart.Slices, Slice{
			Label: c.brand,
			Value: c.value / total * 100,
		})
	}
	return chart
}

// topCompetitors deduplicates (brand, sales, share) triples, keeps the max
// sales and mean share per brand, and returns the ten best-selling brands
// with shares formatted as percentages.
func topCompetitors(rows []market.Record) []CompetitorRow {
	type triple struct {
		brand        string
		sales, share float64
	}
	type group struct {
		brand    string
		maxSales float64
		shareSum float64
		n        int
	}

	seen := make(map[triple]bool)
	index := make(map[string]int)
	var groups []group
	for _, r := range rows {
		t := triple{r.CompetitorBrand, r.CompetitorSales, r.CompetitorShare}
		if seen[t] {
			continue
		}
		seen[t] = true
		i, ok := index[t.brand]
		if !ok {
			i = len(groups)
			index[t.brand] = i
			groups = append(groups, group{brand: t.brand})
		}
		if t.sales > groups[i].maxSales || groups[i].n == 0 {
			groups[i].maxSales = t.sales
		}
		groups[i].shareSum += t.share
		groups[i].n++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].maxSales > groups[j].maxSales
	})
	if len(groups) > topCompetitorLimit {
		groups = groups[:topCompetitorLimit]
	}

	table := []CompetitorRow{}
	for _, g := range groups {
		table = append(table, CompetitorRow{
			Brand: g.brand,
			Sales: g.maxSales,
			Share: fmt.Sprintf("%.4f%%", g.shareSum/float64(g.n)*100),
		})
	}
	return table
}

// patternBreakdown deduplicates (pattern, sales) pairs for one competitor.
func patternBreakdown(rows []market.Record, competitor string) PieChart {
	type pair struct {
		pattern string
		sales   float64
	}
	seen := make(map[pair]bool)

	chart := PieChart{Title: "Sales Distribution by Pattern", Slices: []Slice{}}
	if competitor == "" {
		return chart
	}
	chart.Title = fmt.Sprintf("Sales Distribution by Pattern for %s", competitor)

	for _, r := range rows {
		if r.CompetitorBrand != competitor {
			continue
		}
		p := pair{r.Pattern, r.PatternSales}
		if seen[p] {
			continue
		}
		seen[p] = true
		chart.Slices = append(chart.Slices, Slice{Label: p.pattern, Value: p.sales})
	}
	return chart
}

// fitments collects the distinct non-null fitment descriptions, first five
// only, verbatim.
func fitments(rows []market.Record) []string {
	seen := make(map[string]bool)
	list := []string{}
	for _, r := range rows {
		if r.Fitments == nil || seen[*r.Fitments] {
			continue
		}
		seen[*r.Fitments] = true
		if len(list) < fitmentsLimit {
			list = append(list, *r.Fitments)
		}
	}
	return list
}
