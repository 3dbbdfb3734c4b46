// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package interpreter

import (
	"log"
	"strconv"
	"strings"
)

// Observer is called with a read-only view of the interpreter state.
type Observer func(state State)

// instruction is the last tape-mutating instruction executed.
type instruction struct {
	Offset int
	Symbol byte
	Valid  bool
}

// Interpreter is the execution context for a single program run.
type Interpreter struct {
	Verbose bool // Set to enable verbose logging.
	Limit   int  // If non-zero, fault when Ticks reaches Limit.

	Tape *Tape // Tape and cursor.

	output   strings.Builder
	observer Observer
	last     instruction
	ticks    int
}

// NewInterpreter creates an interpreter with a single zero cell and no
// observer.
func NewInterpreter() (bf *Interpreter) {
	bf = &Interpreter{
		Tape: NewTape(),
	}

	return
}

// Callback attaches an observer, replacing any prior one. A nil observer
// detaches it.
func (bf *Interpreter) Callback(observer Observer) *Interpreter {
	bf.observer = observer
	return bf
}

// Reset restores the freshly constructed state. The observer and the
// configuration fields are kept.
func (bf *Interpreter) Reset() {
	if bf.Verbose {
		log.Printf("interpreter: reset")
	}

	bf.Tape.Reset()
	bf.output.Reset()
	bf.last = instruction{}
	bf.ticks = 0
}

// Interpret runs code to completion and returns all output produced so
// far. On a fault the output accumulated before it is returned with the
// error.
func (bf *Interpreter) Interpret(code string) (output string, err error) {
	err = Validate(code)
	if err == nil {
		err = bf.interpret(code, 0, len(code), false)
	}

	output = bf.output.String()
	return
}

func (bf *Interpreter) observe() {
	if bf.observer != nil {
		bf.observer(bf)
	}
}

// tick accounts for one unit of work against the limit.
func (bf *Interpreter) tick() (err error) {
	if bf.Limit > 0 && bf.ticks >= bf.Limit {
		err = ErrTickLimit
		return
	}
	bf.ticks++
	return
}

// interpret executes code[start:end]. When inLoop is set, the range is a
// loop body and is run again from start while the current cell is
// non-zero at the end of the range.
func (bf *Interpreter) interpret(code string, start int, end int, inLoop bool) (err error) {
	for {
		bf.observe()

		for pc := start; pc < end; pc++ {
			symbol := code[pc]
			switch symbol {
			case '+', '-', '>', '<', '.', '?', '[':
			default:
				continue
			}

			if bf.Verbose {
				log.Printf("%04d: %c pos:%d", pc, symbol, bf.Tape.Pos)
			}

			err = bf.tick()
			if err != nil {
				return &ErrFault{Offset: pc, Symbol: symbol, Err: err}
			}

			switch symbol {
			case '+':
				err = bf.Tape.Add(1)
			case '-':
				err = bf.Tape.Add(-1)
			case '>':
				bf.Tape.MoveRight()
			case '<':
				err = bf.Tape.MoveLeft()
			case '.':
				bf.output.WriteRune(rune(uint8(bf.Tape.Value())))
				continue
			case '?':
				bf.output.WriteString(strconv.FormatInt(int64(bf.Tape.Value()), 10))
				continue
			case '[':
				var closing int
				closing, err = matchBracket(code, pc, end)
				if err != nil {
					return
				}
				err = bf.interpret(code, pc+1, closing, true)
				if err != nil {
					return
				}
				pc = closing
				continue
			}

			if err != nil {
				return &ErrFault{Offset: pc, Symbol: symbol, Err: err}
			}

			bf.last = instruction{Offset: pc, Symbol: symbol, Valid: true}
			bf.observe()
		}

		if !inLoop || bf.Tape.Value() == 0 {
			return
		}

		// Each further pass over a loop body costs a tick.
		err = bf.tick()
		if err != nil {
			return &ErrFault{Offset: start - 1, Symbol: '[', Err: err}
		}
	}
}
