package compiler

import (
	"fmt"
	"math"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Instruction is a single operation of a Program.
// Body is set only for OP_LOOP.
type Instruction struct {
	Op   Op       `cbor:"1,keyasint"`
	Body *Program `cbor:"2,keyasint,omitempty"`
}

// Program is an ordered list of instructions, in execution order.
// A Program is not modified after compilation, so it may be executed
// by any number of virtual machines.
type Program struct {
	Instructions []Instruction `cbor:"1,keyasint"`
}

// String returns the canonical source text of the program.
func (prog *Program) String() string {
	var sb strings.Builder
	prog.write(&sb)
	return sb.String()
}

func (prog *Program) write(sb *strings.Builder) {
	for _, instr := range prog.Instructions {
		if instr.Op == OP_LOOP {
			sb.WriteByte('[')
			instr.Body.write(sb)
			sb.WriteByte(']')
			continue
		}
		sb.WriteString(instr.Op.String())
	}
}

// Len returns the number of instructions in the whole program tree.
func (prog *Program) Len() (count int) {
	for _, instr := range prog.Instructions {
		count++
		if instr.Body != nil {
			count += instr.Body.Len()
		}
	}

	return
}

// Depth returns the maximum loop nesting of the program.
func (prog *Program) Depth() (depth int) {
	for _, instr := range prog.Instructions {
		if instr.Body != nil {
			depth = max(depth, 1+instr.Body.Depth())
		}
	}

	return
}

// Validate checks that every loop, and only loops, carry a body.
func (prog *Program) Validate() (err error) {
	for n, instr := range prog.Instructions {
		switch {
		case !instr.Op.Valid():
			err = fmt.Errorf("%w: %v at %d", ErrProgramInvalid, instr.Op, n)
		case instr.Op == OP_LOOP && instr.Body == nil:
			err = fmt.Errorf("%w: loop without body at %d", ErrProgramInvalid, n)
		case instr.Op != OP_LOOP && instr.Body != nil:
			err = fmt.Errorf("%w: %v with body at %d", ErrProgramInvalid, instr.Op, n)
		case instr.Body != nil:
			err = instr.Body.Validate()
		}
		if err != nil {
			return
		}
	}

	return
}

// CBOR nesting of a program tree: the program map and its instruction
// array, then for every loop level an instruction map, a body map and
// its instruction array.
const (
	cborMaxNestedLevels = 65535
	MaxDepth            = (cborMaxNestedLevels - 3) / 3 // Deepest loop nesting of a binary program.
)

// cborEncMode encodes deterministically, so equal programs have equal
// binaries.
var cborEncMode cbor.EncMode

// cborDecMode accepts every program MarshalProgram can produce.
var cborDecMode cbor.DecMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("compiler: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	dm, err := cbor.DecOptions{
		MaxNestedLevels:  cborMaxNestedLevels,
		MaxArrayElements: math.MaxInt32,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("compiler: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// MarshalProgram serializes a Program to CBOR bytes.
// Programs nested deeper than MaxDepth are rejected.
func MarshalProgram(prog *Program) ([]byte, error) {
	if depth := prog.Depth(); depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds %d", ErrProgramTooDeep, depth, MaxDepth)
	}
	return cborEncMode.Marshal(prog)
}

// UnmarshalProgram deserializes and validates a Program from CBOR bytes.
func UnmarshalProgram(data []byte) (*Program, error) {
	var prog Program
	if err := cborDecMode.Unmarshal(data, &prog); err != nil {
		return nil, fmt.Errorf("compiler: unmarshal program: %w", err)
	}
	if err := prog.Validate(); err != nil {
		return nil, err
	}
	return &prog, nil
}
