package microorm

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/Station-Manager/errors"
)

// ErrDuplicateColumns is matched by every *DuplicateColumnsError.
var ErrDuplicateColumns = stderrors.New("microorm: duplicate columns definitions")

// DuplicateColumnsError is returned by ToContentValues when two field adapters write
// the same column. It is a configuration error: the write is refused, but the adapter
// stays usable for reads.
type DuplicateColumnsError struct {
	Columns []string
}

func (e *DuplicateColumnsError) Error() string {
	return "Duplicate columns definitions: " + strings.Join(e.Columns, ", ")
}

func (e *DuplicateColumnsError) Is(target error) bool { return target == ErrDuplicateColumns }

// InternalError reports a broken adapter setup: a column missing from the cursor, a
// codec producing the wrong type, a nil object. Callers are not expected to recover
// from it; it cannot happen with a correctly declared mapping.
type InternalError struct {
	Op  errors.Op
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("microorm: internal error in %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

func internal(op errors.Op, err error) error {
	return &InternalError{Op: op, Err: err}
}

// ValidationError is returned when a registered validator rejects a column value.
type ValidationError struct {
	Column string
	Value  any
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("microorm: column %s: %v", e.Column, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
