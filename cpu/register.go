package cpu

const (
	REGISTER_COUNT = 8 // Number of register file slots.
)

// RegisterFile is the bank of signed 32-bit registers, indexed by Register.
//
// Slot REG_PC is the program counter. It is also an ordinary slot: an
// instruction that names pc as its destination changes control flow. That
// is permitted, and almost always a program bug.
type RegisterFile [REGISTER_COUNT]int32

// Get returns the value of a register.
func (rf *RegisterFile) Get(r Register) int32 {
	return rf[r]
}

// Set writes the value of a register.
func (rf *RegisterFile) Set(r Register, value int32) {
	rf[r] = value
}

// Pc returns the program counter as an unsigned instruction index.
func (rf *RegisterFile) Pc() uint32 {
	return uint32(rf[REG_PC])
}

// SetPc sets the program counter.
func (rf *RegisterFile) SetPc(pc uint32) {
	rf[REG_PC] = int32(pc)
}

// Reset zeros all registers.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}
