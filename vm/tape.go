package vm

// Tape is a growable sequence of byte cells with a cursor.
// The zero value is a tape of one zero cell.
type Tape struct {
	Data   []byte
	Cursor int
}

func (t *Tape) ensure() {
	if len(t.Data) == 0 {
		t.Data = append(t.Data, 0)
	}
}

// Right moves the cursor right, growing the tape when needed.
func (t *Tape) Right() {
	t.ensure()
	t.Cursor++
	if t.Cursor == len(t.Data) {
		t.Data = append(t.Data, 0)
	}
}

// Left moves the cursor left, failing at the first cell.
func (t *Tape) Left() (ok bool) {
	if t.Cursor == 0 {
		return
	}

	t.Cursor--
	return true
}

// Get returns the cell under the cursor.
func (t *Tape) Get() byte {
	t.ensure()
	return t.Data[t.Cursor]
}

// Set stores a value in the cell under the cursor.
func (t *Tape) Set(value byte) {
	t.ensure()
	t.Data[t.Cursor] = value
}

// Incr increments the cell under the cursor, wrapping 255 to 0.
func (t *Tape) Incr() {
	t.Set(t.Get() + 1)
}

// Decr decrements the cell under the cursor, wrapping 0 to 255.
func (t *Tape) Decr() {
	t.Set(t.Get() - 1)
}

// Reset the tape to a single zero cell.
func (t *Tape) Reset() {
	t.Data = append(t.Data[:0], 0)
	t.Cursor = 0
}
