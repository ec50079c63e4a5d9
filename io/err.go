package io

import (
	"github.com/imartayan/bftw/translate"
)

var f = translate.From

// ErrInput is a failure to read from the console input.
// The input stream is closed or unreadable.
type ErrInput struct {
	Err error
}

func (err *ErrInput) Error() string {
	return f("input %v", err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}

// ErrOutput is a failure to write to the console output.
type ErrOutput struct {
	Err error
}

func (err *ErrOutput) Error() string {
	return f("output %v", err.Err)
}

func (err *ErrOutput) Unwrap() error {
	return err.Err
}
