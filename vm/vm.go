// Copyright 2026, imartayan

package vm

import (
	"log"

	"github.com/imartayan/bftw/compiler"
	"github.com/imartayan/bftw/io"
)

// VM is the simulation context of the tape machine.
type VM struct {
	Verbose bool // Set to enable verbose logging.

	Tape    Tape        // Memory tape and cursor.
	Console *io.Console // Byte console for input and output.

	Ticks int // Executed instructions counter.
}

// NewVM creates a new virtual machine attached to a console.
// A nil console fails every I/O instruction.
func NewVM(console *io.Console) (vm *VM) {
	if console == nil {
		console = &io.Console{}
	}

	vm = &VM{
		Console: console,
	}
	vm.Reset()

	return
}

// Reset the tape to one zero cell under the cursor, and zero the counters.
func (vm *VM) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	vm.Tape.Reset()
	vm.Ticks = 0
}

// Execute runs a program to completion against the current tape.
// The first error aborts the whole execution, including all enclosing
// loops, and is returned unchanged.
func (vm *VM) Execute(prog *compiler.Program) (err error) {
	for n := range prog.Instructions {
		err = vm.step(&prog.Instructions[n])
		if err != nil {
			return
		}
	}

	return
}

// step executes a single instruction.
func (vm *VM) step(instr *compiler.Instruction) (err error) {
	vm.Ticks++

	if vm.Verbose {
		log.Printf("vm: %v cursor %d cell %d", instr.Op, vm.Tape.Cursor, vm.Tape.Get())
	}

	switch instr.Op {
	case compiler.OP_RIGHT:
		vm.Tape.Right()
	case compiler.OP_LEFT:
		if !vm.Tape.Left() {
			err = ErrCannotMoveLeft
		}
	case compiler.OP_INCR:
		vm.Tape.Incr()
	case compiler.OP_DECR:
		vm.Tape.Decr()
	case compiler.OP_OUTPUT:
		err = vm.Console.WriteByte(vm.Tape.Get())
	case compiler.OP_INPUT:
		var value byte
		value, err = vm.Console.ReadByte()
		if err != nil {
			return
		}
		vm.Tape.Set(value)
	case compiler.OP_LOOP:
		for vm.Tape.Get() != 0 {
			err = vm.Execute(instr.Body)
			if err != nil {
				return
			}
		}
	default:
		err = compiler.ErrProgramInvalid
	}

	return
}
