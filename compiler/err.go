package compiler

import (
	"errors"

	"github.com/imartayan/bftw/translate"
)

var f = translate.From

var (
	// Compile errors
	ErrMissingBracket   = errors.New(f("missing ]"))
	ErrExcessiveBracket = errors.New(f("excessive ]"))

	// Binary program errors
	ErrProgramInvalid = errors.New(f("program invalid"))
	ErrProgramTooDeep = errors.New(f("program too deep"))
)

// ErrSyntax locates a compile error in the source text.
type ErrSyntax struct {
	Line   int
	Column int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d column %d %v", err.Line, err.Column, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
