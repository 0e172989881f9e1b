package validation

// maxSelectionLen bounds selector values well above anything in the
// dataset; longer values can only be abuse.
const maxSelectionLen = 200

// SelectionQuery mirrors the query parameters common to the dashboard
// endpoints.
type SelectionQuery struct {
	Country  string
	TireSize string
}

// ValidateSelectionQuery requires both primary selections. Values absent
// from the dataset are not validation errors; they yield an empty view
// downstream.
func ValidateSelectionQuery(q SelectionQuery) []FieldError {
	var errs []FieldError

	if q.Country == "" {
		errs = append(errs, FieldError{Field: "country", Message: "country is required"})
	} else if len(q.Country) > maxSelectionLen {
		errs = append(errs, FieldError{Field: "country", Message: "country is too long"})
	}

	if q.TireSize == "" {
		errs = append(errs, FieldError{Field: "tireSize", Message: "tireSize is required"})
	} else if len(q.TireSize) > maxSelectionLen {
		errs = append(errs, FieldError{Field: "tireSize", Message: "tireSize is too long"})
	}

	return errs
}
