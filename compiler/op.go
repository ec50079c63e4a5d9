package compiler

// Op is the kind of an Instruction.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_RIGHT  = Op(0) // >
	OP_LEFT   = Op(1) // <
	OP_INCR   = Op(2) // +
	OP_DECR   = Op(3) // -
	OP_OUTPUT = Op(4) // .
	OP_INPUT  = Op(5) // ,
	OP_LOOP   = Op(6) // []
)

// opMap maps source symbols to their primitive operation.
var opMap = map[rune]Op{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INCR,
	'-': OP_DECR,
	'.': OP_OUTPUT,
	',': OP_INPUT,
}

// Valid returns true if op is a known operation.
func (op Op) Valid() bool {
	return op >= OP_RIGHT && op <= OP_LOOP
}
