package health

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrInvalidHeight = errors.New("height must be greater than zero")
	ErrEmptyInput    = errors.New("no health records available")
)

// ValidationError describes a single record field that could not be turned into a typed value.
type ValidationError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s [%s]: %s", e.Field, e.Value, e.Reason)
}

// ValidationErrors unpacks all field errors from err (as returned by ParseRecord).
func ValidationErrors(err error) []*ValidationError {
	var fieldErrs []*ValidationError
	for _, e := range multierr.Errors(err) {
		var ve *ValidationError
		if errors.As(e, &ve) {
			fieldErrs = append(fieldErrs, ve)
		}
	}
	return fieldErrs
}
