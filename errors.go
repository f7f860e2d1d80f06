package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a negative index or bound is supplied.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory is carried by the panic raised when a word buffer
	// cannot be allocated.
	ErrOutOfMemory = errors.New("out of memory")
)

// Argument kinds reported by IndexError.
const (
	ArgIndex      = "index"
	ArgLowerBound = "lower bound"
	ArgUpperBound = "upper bound"
	ArgSize       = "size"
)

// IndexError indicates a negative index, range bound or capacity.
//
// It unwraps to ErrInvalidArgument.
type IndexError struct {
	Op    string
	Arg   string
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: negative %s %d", e.Op, e.Arg, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrInvalidArgument }

// AllocationError indicates a word buffer of the requested size cannot exist.
//
// It is never returned. Growth paths panic with it so that the failure is
// fatal to the operation; the bitset keeps its previous buffer.
type AllocationError struct {
	Words int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("out of memory: cannot allocate %d words", e.Words)
}

func (e *AllocationError) Unwrap() error { return ErrOutOfMemory }
