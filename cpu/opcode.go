package cpu

// OpCode is the operation selector of an instruction.
type OpCode uint32

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_HALT         = OpCode(0)  // halt
	OP_LOAD         = OpCode(1)  // load
	OP_STORE        = OpCode(2)  // store
	OP_INC          = OpCode(3)  // inc
	OP_DEC          = OpCode(4)  // dec
	OP_ADD          = OpCode(5)  // add
	OP_SUB          = OpCode(6)  // sub
	OP_MUL          = OpCode(7)  // mul
	OP_DIV          = OpCode(8)  // div
	OP_AND          = OpCode(9)  // and
	OP_JUMP         = OpCode(10) // jump
	OP_JUMP_IF_ZERO = OpCode(11) // jz
)

// Register names a register file slot.
// The value of each name is its slot index.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_PC = Register(0) // pc
	REG_A  = Register(1) // a
	REG_B  = Register(2) // b
	REG_C  = Register(3) // c
	REG_D  = Register(4) // d
	REG_E  = Register(5) // e
	REG_F  = Register(6) // f
	REG_G  = Register(7) // g
)

// Valid returns true if the register names a register file slot.
func (r Register) Valid() bool {
	return r <= REG_G
}

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING    = State(0) // running
	STATE_TERMINATED = State(1) // terminated
)
