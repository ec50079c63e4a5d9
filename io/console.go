package io

import (
	"io"
)

// flusher is implemented by buffered outputs such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Console provides the byte oriented I/O of a virtual machine.
// It wraps an io.Reader for input and an io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer
}

// NewConsole creates a console reading from input and writing to output.
func NewConsole(input io.Reader, output io.Writer) (con *Console) {
	con = &Console{
		Input:  input,
		Output: output,
	}

	return
}

// ReadByte blocks until exactly one byte is read from the input.
// Pending output is flushed first, so that prompts are visible.
func (con *Console) ReadByte() (value byte, err error) {
	err = con.Flush()
	if err != nil {
		return
	}

	if con.Input == nil {
		err = &ErrInput{Err: io.ErrClosedPipe}
		return
	}

	var one [1]byte
	_, err = io.ReadFull(con.Input, one[:])
	if err != nil {
		err = &ErrInput{Err: err}
		return
	}

	value = one[0]

	return
}

// WriteByte writes a single byte to the output.
func (con *Console) WriteByte(value byte) (err error) {
	if con.Output == nil {
		err = &ErrOutput{Err: io.ErrClosedPipe}
		return
	}

	_, err = con.Output.Write([]byte{value})
	if err != nil {
		err = &ErrOutput{Err: err}
	}

	return
}

// Flush flushes the output, if it is buffered.
func (con *Console) Flush() (err error) {
	fl, ok := con.Output.(flusher)
	if !ok {
		return
	}

	err = fl.Flush()
	if err != nil {
		err = &ErrOutput{Err: err}
	}

	return
}
