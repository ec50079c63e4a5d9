package vm

import (
	"errors"

	"github.com/imartayan/bftw/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrCannotMoveLeft = errors.New(f("cannot move left of the first cell"))
)
