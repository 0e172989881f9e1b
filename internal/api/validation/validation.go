// Package validation checks request inputs and reports per-field errors
// suitable for the VALIDATION_ERROR response details.
package validation

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
