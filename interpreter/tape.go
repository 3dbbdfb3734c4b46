package interpreter

// Tape is an integer tape with a cursor. It starts as a single zero cell
// and grows to the right, one cell at a time, as the cursor advances.
type Tape struct {
	Data []int32
	Pos  int
}

// NewTape returns a tape with a single zero cell.
func NewTape() *Tape {
	return &Tape{Data: []int32{0}}
}

// Value returns the cell under the cursor.
func (t *Tape) Value() int32 {
	if t.Pos < 0 || t.Pos >= len(t.Data) {
		return 0
	}
	return t.Data[t.Pos]
}

// Add adds delta to the cell under the cursor, wrapping on overflow.
func (t *Tape) Add(delta int32) (err error) {
	if t.Pos < 0 || t.Pos >= len(t.Data) {
		err = ErrIndex
		return
	}

	t.Data[t.Pos] += delta
	return
}

// MoveRight advances the cursor, appending a zero cell when it would pass
// the end of the tape.
func (t *Tape) MoveRight() {
	if t.Pos+1 >= len(t.Data) {
		t.Data = append(t.Data, 0)
	}
	t.Pos++
}

// MoveLeft moves the cursor back one cell. The tape never grows to the left.
func (t *Tape) MoveLeft() (err error) {
	if t.Pos == 0 {
		err = ErrTapeUnderflow
		return
	}
	t.Pos--
	return
}

// Reset returns the tape to a single zero cell.
func (t *Tape) Reset() {
	t.Data = append(t.Data[:0], 0)
	t.Pos = 0
}
