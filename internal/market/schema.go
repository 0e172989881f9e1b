package market

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Schema maps record fields to dataset column headers. The defaults match
// the native headers of the sales export; a YAML file may override any
// subset of them for renamed exports.
type Schema struct {
	Country         string `json:"country"`
	TireSize        string `json:"tireSize"`
	IndustrySales   string `json:"industrySales"`
	GoodyearSales   string `json:"goodyearSales"`
	BrandShare      string `json:"brandShare"`
	CompetitorBrand string `json:"competitorBrand"`
	CompetitorSales string `json:"competitorSales"`
	CompetitorShare string `json:"competitorShare"`
	BrandName       string `json:"brandName"`
	Pattern         string `json:"pattern"`
	PatternSales    string `json:"patternSales"`
	Fitments        string `json:"fitments"`
}

// DefaultSchema returns the column headers of the native dataset export.
func DefaultSchema() Schema {
	return Schema{
		Country:         "COUNTRY_OR_TERRITORY",
		TireSize:        "TIRE_SIZE",
		IndustrySales:   "TOTAL_INDUSTRY_SALES",
		GoodyearSales:   "GOODYEAR_SALES",
		BrandShare:      "SOM_OF_BRAND",
		CompetitorBrand: "COMPETITOR_BRAND",
		CompetitorSales: "COMPETITOR_BRAND_SALES",
		CompetitorShare: "COMPETITOR_SOM",
		BrandName:       "BRAND_NAME",
		Pattern:         "COMPETITOR_PATTERN",
		PatternSales:    "COMPETITOR_PATTERN_SALES",
		Fitments:        "TOP_5_FITMENTS",
	}
}

// LoadSchema reads a YAML schema file and merges it over the defaults.
// Fields absent from the file keep their default header.
func LoadSchema(path string) (Schema, error) {
	s := DefaultSchema()

	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("reading schema file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parsing schema file %s: %w", path, err)
	}
	return s, nil
}

// columns returns the field-name/header pairs in dataset order.
func (s Schema) columns() []column {
	return []column{
		{"country", s.Country},
		{"tireSize", s.TireSize},
		{"industrySales", s.IndustrySales},
		{"goodyearSales", s.GoodyearSales},
		{"brandShare", s.BrandShare},
		{"competitorBrand", s.CompetitorBrand},
		{"competitorSales", s.CompetitorSales},
		{"competitorShare", s.CompetitorShare},
		{"brandName", s.BrandName},
		{"pattern", s.Pattern},
		{"patternSales", s.PatternSales},
		{"fitments", s.Fitments},
	}
}

type column struct {
	field  string
	header string
}
