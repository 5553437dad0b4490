package cpu

import (
	"iter"
	"slices"
)

// Program is the ordered instruction store, addressed by the program counter.
type Program struct {
	Instructions []Instruction
}

// NewProgram creates a program from a copy of the instructions.
func NewProgram(instrs ...Instruction) *Program {
	return &Program{
		Instructions: slices.Clone(instrs),
	}
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// Fetch returns the instruction at pc.
func (prog *Program) Fetch(pc uint32) (in Instruction, err error) {
	if uint64(pc) >= uint64(prog.Len()) {
		err = ErrOutOfBounds
		return
	}

	in = prog.Instructions[pc]
	return
}

// All returns the instructions with their addresses.
func (prog *Program) All() iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, in Instruction) bool) {
		for n := range prog.Len() {
			if !yield(uint32(n), prog.Instructions[n]) {
				return
			}
		}
	}
}

// Binary returns the encoded words of the program.
func (prog *Program) Binary() (bins []uint64) {
	for _, in := range prog.All() {
		bins = append(bins, in.Word())
	}

	return
}
