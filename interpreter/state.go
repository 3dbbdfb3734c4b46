package interpreter

import (
	"fmt"
	"slices"
)

// State is a read-only view of an interpreter.
type State interface {
	Pos() int                                 // Cursor position.
	Value() int32                             // Cell under the cursor.
	Last() (offset int, symbol byte, ok bool) // Last +, -, > or < executed.
	Cells() []int32                           // Copy of the tape.
	Ticks() int                               // Work done since reset.
	String() string                           // Diagnostic rendering.
}

var _ State = (*Interpreter)(nil)

// Pos returns the cursor position.
func (bf *Interpreter) Pos() int {
	return bf.Tape.Pos
}

// Value returns the cell under the cursor.
func (bf *Interpreter) Value() int32 {
	return bf.Tape.Value()
}

// Last returns the offset and symbol of the last tape-mutating
// instruction, if any has executed.
func (bf *Interpreter) Last() (offset int, symbol byte, ok bool) {
	if !bf.last.Valid {
		return
	}

	return bf.last.Offset, bf.last.Symbol, true
}

// Cells returns a copy of the tape.
func (bf *Interpreter) Cells() []int32 {
	return slices.Clone(bf.Tape.Data)
}

// Ticks returns the instructions and loop passes executed since a reset.
func (bf *Interpreter) Ticks() int {
	return bf.ticks
}

// String renders the cursor, the last instruction and the tape.
func (bf *Interpreter) String() (text string) {
	if _, symbol, ok := bf.Last(); ok {
		text = fmt.Sprintf("pos:%d, last: %c\n%v", bf.Tape.Pos, rune(symbol), bf.Tape.Data)
	} else {
		text = fmt.Sprintf("pos:%d\n%v", bf.Tape.Pos, bf.Tape.Data)
	}

	return
}
