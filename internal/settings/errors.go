package settings

import (
	"errors"
	"fmt"
)

// ErrUnknownCurrency indicates a main currency ticker missing from the
// currency table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ResolutionError reports a mainCurrency ticker that could not be resolved.
// It is returned on its own, never folded into a schema.ValidationError.
type ResolutionError struct {
	Ticker string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving main currency %q: %v", e.Ticker, ErrUnknownCurrency)
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrUnknownCurrency
}

// NestedParseError reports a JSON-encoded field whose content is not valid
// JSON or does not match its nested schema. It travels as the cause of an
// issue inside the enclosing schema.ValidationError.
type NestedParseError struct {
	Field string
	Err   error
}

func (e *NestedParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Field, e.Err)
}

func (e *NestedParseError) Unwrap() error {
	return e.Err
}
