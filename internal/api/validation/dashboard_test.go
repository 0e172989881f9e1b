package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZA87447/Dashboard-bot/internal/api/validation"
)

func TestValidateSelectionQuery_Valid(t *testing.T) {
	t.Parallel()

	errs := validation.ValidateSelectionQuery(validation.SelectionQuery{
		Country:  "US",
		TireSize: "P225/65R17",
	})
	assert.Empty(t, errs)
}

func TestValidateSelectionQuery_Missing(t *testing.T) {
	t.Parallel()

	errs := validation.ValidateSelectionQuery(validation.SelectionQuery{})
	require.Len(t, errs, 2)
	assert.Equal(t, "country", errs[0].Field)
	assert.Equal(t, "tireSize", errs[1].Field)
}

func TestValidateSelectionQuery_TooLong(t *testing.T) {
	t.Parallel()

	errs := validation.ValidateSelectionQuery(validation.SelectionQuery{
		Country:  strings.Repeat("x", 201),
		TireSize: "P225/65R17",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "country", errs[0].Field)
	assert.Contains(t, errs[0].Message, "too long")
}
