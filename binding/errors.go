package binding

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitset"
)

var (
	// ErrUnknownOperation is returned for operation or operator names the
	// registry's profile does not expose.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrBadArgument is wrapped by every ArgError.
	ErrBadArgument = errors.New("bad argument")
)

// ArgError reports a rejected argument in the host's convention:
//
//	bad argument #2 to 'set' (expected positive index)
//
// Arg is 1-based and counts the receiver. It unwraps to ErrBadArgument and,
// for engine rejections, to the engine error (bitset.ErrInvalidArgument).
type ArgError struct {
	Func  string
	Arg   int
	Msg   string
	cause error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("bad argument #%d to '%s' (%s)", e.Arg, e.Func, e.Msg)
}

func (e *ArgError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrBadArgument}
	}
	return []error{ErrBadArgument, e.cause}
}

// translateError maps engine errors onto argument positions.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var ie *bitset.IndexError
	if !errors.As(err, &ie) {
		return err
	}

	switch ie.Arg {
	case bitset.ArgIndex:
		return &ArgError{Func: op, Arg: 2, Msg: "expected positive index", cause: err}
	case bitset.ArgLowerBound:
		return &ArgError{Func: op, Arg: 2, Msg: "expected positive lower bound", cause: err}
	case bitset.ArgUpperBound:
		return &ArgError{Func: op, Arg: 3, Msg: "expected positive upper bound", cause: err}
	case bitset.ArgSize:
		return &ArgError{Func: op, Arg: 1, Msg: "expected positive size", cause: err}
	default:
		return err
	}
}
