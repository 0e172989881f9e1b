package market

// Table is an immutable, ordered collection of sales records. It is built
// once by a Source at startup and shared read-only for the process
// lifetime; every derived value is recomputed from it on each request.
type Table struct {
	rows []Record
}

// NewTable wraps rows in a Table. The caller must not modify rows
// afterwards.
func NewTable(rows []Record) *Table {
	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the underlying rows. The slice is shared; treat it as
// read-only.
func (t *Table) Rows() []Record {
	return t.rows
}

// Filter returns the subset of rows matching both selections exactly
// (case-sensitive). The result preserves row order and may be empty.
func (t *Table) Filter(country, tireSize string) *Table {
	var rows []Record
	for _, r := range t.rows {
		if r.Country == country && r.TireSize == tireSize {
			rows = append(rows, r)
		}
	}
	return &Table{rows: rows}
}

// Countries returns the distinct country values in first-occurrence order.
func (t *Table) Countries() []string {
	return t.distinct(func(r Record) string { return r.Country })
}

// TireSizes returns the distinct tire-size values in first-occurrence order.
func (t *Table) TireSizes() []string {
	return t.distinct(func(r Record) string { return r.TireSize })
}

func (t *Table) distinct(key func(Record) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, r := range t.rows {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	return values
}
