package market_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZA87447/Dashboard-bot/internal/market"
)

func TestDefaultSchema(t *testing.T) {
	t.Parallel()

	s := market.DefaultSchema()
	assert.Equal(t, "COUNTRY_OR_TERRITORY", s.Country)
	assert.Equal(t, "TIRE_SIZE", s.TireSize)
	assert.Equal(t, "SOM_OF_BRAND", s.BrandShare)
	assert.Equal(t, "TOP_5_FITMENTS", s.Fitments)
}

func TestLoadSchema_MergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("country: Country\ntireSize: Size\n"), 0o600))

	s, err := market.LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "Country", s.Country)
	assert.Equal(t, "Size", s.TireSize)
	// Untouched fields keep the defaults.
	assert.Equal(t, "GOODYEAR_SALES", s.GoodyearSales)
}

func TestLoadSchema_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := market.LoadSchema(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSchema_UnknownField(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notAField: X\n"), 0o600))

	_, err := market.LoadSchema(path)
	require.Error(t, err)
}
