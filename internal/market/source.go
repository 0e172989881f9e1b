package market

import (
	"context"
	"errors"
)

// ErrMissingColumn is returned when the dataset lacks a required column.
var ErrMissingColumn = errors.New("required column missing")

// ErrEmptyDataset is returned when the dataset contains a header but no
// rows.
var ErrEmptyDataset = errors.New("dataset contains no rows")

// Source loads the full sales dataset into memory. Loading happens once,
// at startup; a failed load is fatal.
type Source interface {
	// Load reads every record. The returned table must not be mutated.
	Load(ctx context.Context) (*Table, error)
	// Name identifies the source in logs and health output.
	Name() string
}
