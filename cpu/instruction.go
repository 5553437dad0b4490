package cpu

import (
	"fmt"
)

// Instruction is a single operation with its operands.
//
// Payload is shared storage. It is read as the register pair (B, C) by
// add, sub, mul, div and and; as an unsigned address by jump and jz; and
// as a signed immediate by load. Nothing in the instruction records which
// reading applies: the opcode alone decides.
type Instruction struct {
	Op      OpCode   // Operation.
	A       Register // Primary register operand.
	Payload uint16   // Register pair, address or immediate.
}

// MakeInstruction creates an instruction with no operands.
func MakeInstruction(op OpCode) Instruction {
	return Instruction{Op: op}
}

// MakeUnary creates an instruction with a single register operand.
func MakeUnary(op OpCode, a Register) Instruction {
	return Instruction{Op: op, A: a}
}

// MakeImmediate creates an instruction with a register and a 16-bit payload.
func MakeImmediate(op OpCode, a Register, value uint16) Instruction {
	return Instruction{Op: op, A: a, Payload: value}
}

// MakeTernary creates an instruction with three register operands.
func MakeTernary(op OpCode, a, b, c Register) Instruction {
	return Instruction{Op: op, A: a, Payload: uint16(b) | (uint16(c) << 8)}
}

// MakeHalt creates a halt instruction.
func MakeHalt() Instruction {
	return MakeInstruction(OP_HALT)
}

// MakeLoad creates a load of a signed immediate into a register.
func MakeLoad(a Register, value int16) Instruction {
	return MakeImmediate(OP_LOAD, a, uint16(value))
}

// MakeJump creates an unconditional jump to addr.
func MakeJump(addr uint16) Instruction {
	return MakeImmediate(OP_JUMP, REG_PC, addr)
}

// MakeJumpIfZero creates a jump to addr, taken when register a is zero.
func MakeJumpIfZero(a Register, addr uint16) Instruction {
	return MakeImmediate(OP_JUMP_IF_ZERO, a, addr)
}

// B returns the payload as the second register operand.
func (in Instruction) B() Register {
	return Register(in.Payload & 0xff)
}

// C returns the payload as the third register operand.
func (in Instruction) C() Register {
	return Register(in.Payload >> 8)
}

// Address returns the payload as an unsigned jump target.
func (in Instruction) Address() uint16 {
	return in.Payload
}

// Value returns the payload as a signed immediate.
func (in Instruction) Value() int16 {
	return int16(in.Payload)
}

// Valid returns true if every register the opcode reads from the
// instruction names a register file slot. Opcodes without registers, and
// undefined opcodes, are always valid.
func (in Instruction) Valid() bool {
	switch in.Op {
	case OP_LOAD, OP_INC, OP_DEC, OP_JUMP_IF_ZERO:
		return in.A.Valid()
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND:
		return in.A.Valid() && in.B().Valid() && in.C().Valid()
	}

	return true
}

// Word returns the fixed 64-bit encoding of the instruction:
//   - bits 0-31: opcode
//   - bits 32-39: register A
//   - bits 48-63: payload
func (in Instruction) Word() uint64 {
	return uint64(in.Op) | (uint64(in.A) << 32) | (uint64(in.Payload) << 48)
}

// String returns the instruction, with the payload shown the way its
// opcode reads it.
func (in Instruction) String() (out string) {
	switch in.Op {
	case OP_HALT, OP_STORE:
		out = in.Op.String()
	case OP_INC, OP_DEC:
		out = fmt.Sprintf("%v %v", in.Op, in.A)
	case OP_LOAD:
		out = fmt.Sprintf("%v %v %d", in.Op, in.A, in.Value())
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND:
		out = fmt.Sprintf("%v %v %v %v", in.Op, in.A, in.B(), in.C())
	case OP_JUMP:
		out = fmt.Sprintf("%v 0x%04x", in.Op, in.Address())
	case OP_JUMP_IF_ZERO:
		out = fmt.Sprintf("%v %v 0x%04x", in.Op, in.A, in.Address())
	default:
		out = fmt.Sprintf("%v %v 0x%04x", in.Op, in.A, in.Payload)
	}

	return
}
