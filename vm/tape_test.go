package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	assert.Equal(byte(0), tp.Get())
	assert.Equal(0, tp.Cursor)
	assert.Equal(1, len(tp.Data))
	assert.False(tp.Left())
	assert.Equal(0, tp.Cursor)
}

func TestTape_Right(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Set(7)
	tp.Right()
	tp.Right()
	assert.Equal(2, tp.Cursor)
	assert.Equal([]byte{7, 0, 0}, tp.Data)

	tp.Set(9)
	assert.True(tp.Left())
	assert.True(tp.Left())
	tp.Right()
	tp.Right()
	assert.Equal(byte(9), tp.Get())
	assert.Equal(3, len(tp.Data))
}

func TestTape_Wrap(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Decr()
	assert.Equal(byte(255), tp.Get())
	tp.Incr()
	assert.Equal(byte(0), tp.Get())

	tp.Set(255)
	tp.Incr()
	assert.Equal(byte(0), tp.Get())
}

func TestTape_Reset(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{}
	tp.Incr()
	tp.Right()
	tp.Incr()
	tp.Reset()
	assert.Equal([]byte{0}, tp.Data)
	assert.Equal(0, tp.Cursor)
}
