package market

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVSource reads the dataset from a delimited file with a required header
// row.
type CSVSource struct {
	path   string
	schema Schema
}

// NewCSVSource creates a source reading the file at path using the given
// header schema.
func NewCSVSource(path string, schema Schema) *CSVSource {
	return &CSVSource{path: path, schema: schema}
}

// Name implements Source.
func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

// Load implements Source. A missing file or missing required column is an
// error; there is no partial recovery.
func (s *CSVSource) Load(ctx context.Context) (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	idx, err := s.columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Record
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset row: %w", err)
		}
		line++

		rec, err := s.parseRow(fields, idx, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	return NewTable(rows), nil
}

// columnIndex resolves every schema header to its position in the file
// header.
func (s *CSVSource) columnIndex(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}

	idx := make(map[string]int)
	for _, c := range s.schema.columns() {
		i, ok := pos[c.header]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c.header)
		}
		idx[c.field] = i
	}
	return idx, nil
}

func (s *CSVSource) parseRow(fields []string, idx map[string]int, line int) (Record, error) {
	get := func(field string) string {
		i := idx[field]
		if i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	var rec Record
	var err error

	rec.Country = get("country")
	rec.TireSize = get("tireSize")
	rec.CompetitorBrand = get("competitorBrand")
	rec.Pattern = get("pattern")
	rec.BrandName = optional(get("brandName"))
	rec.Fitments = optional(get("fitments"))

	numeric := []struct {
		field string
		dst   *float64
	}{
		{"industrySales", &rec.IndustrySales},
		{"goodyearSales", &rec.GoodyearSales},
		{"brandShare", &rec.BrandShare},
		{"competitorSales", &rec.CompetitorSales},
		{"competitorShare", &rec.CompetitorShare},
		{"patternSales", &rec.PatternSales},
	}
	for _, n := range numeric {
		*n.dst, err = parseFloat(get(n.field))
		if err != nil {
			return Record{}, fmt.Errorf("row %d, column %s: %w", line, n.field, err)
		}
	}

	return rec, nil
}

// optional maps an empty cell to nil.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// parseFloat treats an empty cell as zero.
func parseFloat(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q: %w", v, err)
	}
	return f, nil
}
