package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Payload(t *testing.T) {
	assert := assert.New(t)

	in := MakeTernary(OP_SUB, REG_A, REG_D, REG_C)
	assert.Equal(OP_SUB, in.Op)
	assert.Equal(REG_A, in.A)
	assert.Equal(REG_D, in.B())
	assert.Equal(REG_C, in.C())
	assert.Equal(uint16(0x0304), in.Payload)

	// The same bits, read as an address or an immediate.
	assert.Equal(uint16(0x0304), in.Address())
	assert.Equal(int16(0x0304), in.Value())

	in = MakeLoad(REG_B, -2)
	assert.Equal(uint16(0xfffe), in.Payload)
	assert.Equal(int16(-2), in.Value())
	assert.Equal(uint16(0xfffe), in.Address())
	assert.Equal(Register(0xfe), in.B())
	assert.Equal(Register(0xff), in.C())
}

func TestInstruction_Unchecked(t *testing.T) {
	assert := assert.New(t)

	// Construction does not check the operand shape against the opcode.
	in := MakeUnary(OP_ADD, REG_A)
	assert.Equal(OP_ADD, in.Op)
	assert.Equal(REG_PC, in.B())
	assert.Equal(REG_PC, in.C())
	assert.True(in.Valid())

	in = MakeInstruction(OP_LOAD)
	assert.Equal(REG_PC, in.A)
	assert.Equal(int16(0), in.Value())
}

func TestInstruction_Constructors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Instruction{}, MakeHalt())
	assert.Equal(Instruction{Op: OP_JUMP, Payload: 0x1234}, MakeJump(0x1234))
	assert.Equal(Instruction{Op: OP_JUMP_IF_ZERO, A: REG_G, Payload: 2}, MakeJumpIfZero(REG_G, 2))
	assert.Equal(Instruction{Op: OP_INC, A: REG_E}, MakeUnary(OP_INC, REG_E))
	assert.Equal(Instruction{Op: OP_LOAD, A: REG_F, Payload: 10}, MakeImmediate(OP_LOAD, REG_F, 10))
}

func TestInstruction_Word(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		in   Instruction
		word uint64
	}){
		{"halt", MakeHalt(), 0},
		{"load", MakeLoad(REG_D, 10), 0x000a_0004_0000_0001},
		{"load_neg", MakeLoad(REG_A, -1), 0xffff_0001_0000_0001},
		{"sub", MakeTernary(OP_SUB, REG_A, REG_D, REG_C), 0x0304_0001_0000_0006},
		{"jz", MakeJumpIfZero(REG_C, 2), 0x0002_0003_0000_000b},
		{"jump", MakeJump(0xbeef), 0xbeef_0000_0000_000a},
	}

	for _, entry := range table {
		assert.Equal(entry.word, entry.in.Word(), entry.name)
	}
}

func TestInstruction_Valid(t *testing.T) {
	assert := assert.New(t)

	assert.True(MakeHalt().Valid())
	assert.True(MakeJump(0xffff).Valid())
	assert.True(MakeImmediate(OP_STORE, Register(99), 0xffff).Valid())
	assert.True(MakeLoad(REG_G, 1).Valid())
	assert.False(MakeLoad(Register(8), 1).Valid())
	assert.True(MakeTernary(OP_DIV, REG_G, REG_PC, REG_A).Valid())
	assert.False(MakeTernary(OP_DIV, REG_G, Register(8), REG_A).Valid())
	assert.False(MakeTernary(OP_AND, REG_G, REG_A, Register(8)).Valid())
	assert.False(MakeImmediate(OP_MUL, REG_A, 0xffff).Valid())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		in   Instruction
		text string
	}){
		{MakeHalt(), "halt"},
		{MakeUnary(OP_STORE, REG_A), "store"},
		{MakeUnary(OP_INC, REG_A), "inc a"},
		{MakeUnary(OP_DEC, REG_PC), "dec pc"},
		{MakeLoad(REG_D, -10), "load d -10"},
		{MakeTernary(OP_SUB, REG_A, REG_D, REG_C), "sub a d c"},
		{MakeTernary(OP_AND, REG_E, REG_F, REG_G), "and e f g"},
		{MakeJump(0x10), "jump 0x0010"},
		{MakeJumpIfZero(REG_C, 2), "jz c 0x0002"},
		{MakeImmediate(OpCode(20), REG_B, 0xabcd), "OpCode(20) b 0xabcd"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.in.String())
	}
}

func TestEnumString(t *testing.T) {
	assert := assert.New(t)

	names := []string{"pc", "a", "b", "c", "d", "e", "f", "g"}
	for n, name := range names {
		assert.Equal(name, Register(n).String())
		assert.True(Register(n).Valid())
	}
	assert.Equal("Register(8)", Register(8).String())
	assert.False(Register(8).Valid())

	assert.Equal("jz", OP_JUMP_IF_ZERO.String())
	assert.Equal("store", OP_STORE.String())
	assert.Equal("terminated", STATE_TERMINATED.String())
}
