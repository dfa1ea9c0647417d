package datasource

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNilSource is returned when a nil datasource is handed to a Proxy.
	ErrNilSource = errors.New("datasource is nil")
)

// RangeError reports an access outside a datasource's bounds.
type RangeError struct {
	// Op is the operation that failed (e.g., "List.Get").
	Op    string
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) hold.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func checkIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return &RangeError{Op: op, Index: index, Size: size}
	}
	return nil
}
