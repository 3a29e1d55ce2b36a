package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying load failures with errors.Is.
var (
	// ErrDecode indicates that no delimiter/encoding combination parsed
	// the input into more than one column.
	ErrDecode = errors.New("no delimiter/encoding combination produced a table")

	// ErrSchema indicates that a mandatory column is absent after resolution.
	ErrSchema = errors.New("missing mandatory column")
)

// DecodeError is returned when every decode attempt failed. The load is
// aborted and no dataset is produced.
type DecodeError struct {
	Source   string
	Attempts int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q: %v after %d attempts", e.Source, ErrDecode, e.Attempts)
}

// Unwrap makes errors.Is(err, ErrDecode) work.
func (e *DecodeError) Unwrap() error { return ErrDecode }

// SchemaError is returned when the colony identifier or entry date column
// is missing from the input. The load is aborted and no dataset is produced.
type SchemaError struct {
	Missing string // exact name of the absent mandatory column
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %q", ErrSchema, e.Missing)
}

// Unwrap makes errors.Is(err, ErrSchema) work.
func (e *SchemaError) Unwrap() error { return ErrSchema }
