// Copyright 2026, imartayan

package compiler

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"
)

// position is a 1-based line and column in the source text.
type position struct {
	line   int
	column int
}

// Compiler is a single pass, recursive descent compiler.
// The zero value is ready to use.
type Compiler struct {
	Verbose bool // If set, logs a summary of each compiled program.

	input *bufio.Reader
	here  position
}

// Compile compiles source text into a Program.
func Compile(source string) (prog *Program, err error) {
	comp := &Compiler{}
	return comp.Parse(strings.NewReader(source))
}

// Parse compiles the full contents of a reader into a Program.
// On error no Program is returned.
func (comp *Compiler) Parse(r io.Reader) (prog *Program, err error) {
	comp.input = bufio.NewReader(r)
	comp.here = position{line: 1}

	prog, err = comp.parse(nil)
	if err != nil {
		prog = nil
		return
	}

	if comp.Verbose {
		log.Printf("compiler: %d instructions, depth %d", prog.Len(), prog.Depth())
	}

	return
}

// advance tracks the source position of ch, and returns it.
func (comp *Compiler) advance(ch rune) (at position) {
	comp.here.column++
	at = comp.here
	if ch == '\n' {
		comp.here.line++
		comp.here.column = 0
	}

	return
}

// parse reads instructions until the end of input or, when open is set,
// until the ']' matching the '[' at open.
func (comp *Compiler) parse(open *position) (prog *Program, err error) {
	prog = &Program{}

	for {
		var ch rune
		ch, _, err = comp.input.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			if open != nil {
				err = &ErrSyntax{Line: open.line, Column: open.column, Err: ErrMissingBracket}
			}
			return
		}
		if err != nil {
			return
		}

		at := comp.advance(ch)

		switch ch {
		case '[':
			var body *Program
			body, err = comp.parse(&at)
			if err != nil {
				return
			}
			prog.Instructions = append(prog.Instructions, Instruction{Op: OP_LOOP, Body: body})
		case ']':
			if open == nil {
				err = &ErrSyntax{Line: at.line, Column: at.column, Err: ErrExcessiveBracket}
			}
			return
		default:
			op, ok := opMap[ch]
			if ok {
				prog.Instructions = append(prog.Instructions, Instruction{Op: op})
			}
		}
	}
}
