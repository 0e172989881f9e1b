package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZA87447/Dashboard-bot/internal/market"
)

func sampleTable() *market.Table {
	return market.NewTable([]market.Record{
		{Country: "US", TireSize: "P225/65R17", CompetitorBrand: "A"},
		{Country: "US", TireSize: "P225/65R17", CompetitorBrand: "B"},
		{Country: "US", TireSize: "205/55R16", CompetitorBrand: "A"},
		{Country: "DE", TireSize: "205/55R16", CompetitorBrand: "C"},
	})
}

func TestTableFilter_ExactMatch(t *testing.T) {
	t.Parallel()

	sub := sampleTable().Filter("US", "P225/65R17")
	assert.Equal(t, 2, sub.Len())
	for _, r := range sub.Rows() {
		assert.Equal(t, "US", r.Country)
		assert.Equal(t, "P225/65R17", r.TireSize)
	}
}

func TestTableFilter_CaseSensitive(t *testing.T) {
	t.Parallel()

	assert.Zero(t, sampleTable().Filter("us", "P225/65R17").Len())
	assert.Zero(t, sampleTable().Filter("US", "p225/65r17").Len())
}

func TestTableFilter_NoMatch(t *testing.T) {
	t.Parallel()

	sub := sampleTable().Filter("FR", "P225/65R17")
	assert.Zero(t, sub.Len())
	// The empty subset still supports further operations.
	assert.Empty(t, sub.Countries())
}

func TestTableDistincts_FirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	tbl := sampleTable()
	assert.Equal(t, []string{"US", "DE"}, tbl.Countries())
	assert.Equal(t, []string{"P225/65R17", "205/55R16"}, tbl.TireSizes())
}
