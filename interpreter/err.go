package interpreter

import (
	"errors"

	"github.com/ezrec/tapebf/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrIndex         = errors.New(f("cursor outside of tape"))
	ErrTapeUnderflow = errors.New(f("cursor moved left of cell 0"))

	// Program errors
	ErrBracketUnmatched = errors.New(f("unmatched bracket"))

	// Execution errors
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrFault indicates the location of a run-terminating fault.
type ErrFault struct {
	Offset int  // Byte offset into the program text.
	Symbol byte // Symbol at Offset.
	Err    error
}

func (err *ErrFault) Error() string {
	return f("offset %d '%c' %v", err.Offset, rune(err.Symbol), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
