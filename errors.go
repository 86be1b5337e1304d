package sightline

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sightline/morton"
)

var (
	// ErrNotFound is returned when an entity id is not tracked.
	ErrNotFound = errors.New("not found")

	// ErrOutOfRange is returned for positions the Morton codec cannot encode.
	ErrOutOfRange = errors.New("position out of range")
)

// ErrInvalidPosition reports a rejected position.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidPosition struct {
	Pos   morton.Point
	cause error
}

func (e *ErrInvalidPosition) Error() string {
	return fmt.Sprintf("invalid position %v: %v", e.Pos, e.cause)
}

func (e *ErrInvalidPosition) Unwrap() error { return e.cause }

func translateError(err error, pos morton.Point) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, morton.ErrOutOfRange) {
		return &ErrInvalidPosition{Pos: pos, cause: fmt.Errorf("%w: %w", ErrOutOfRange, err)}
	}

	return err
}
