package morton

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("Number not within acceptable 32-bit range")

// RangeError reports a coordinate that cannot be encoded.
type RangeError struct {
	Axis  string
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s=%d", ErrOutOfRange, e.Axis, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
