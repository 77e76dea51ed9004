package entity

import "fmt"

// ValidationError names the first field that failed validation and why.
// Callers match it with errors.As to translate into a 400 at the HTTP
// boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
