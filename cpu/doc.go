// Package cpu implements the eight-register virtual machine.
//
// The CPU consists of a register file of eight signed 32-bit slots, the first
// of which (pc) is the program counter, an immutable program store, an unused
// value stack, and a fetch/execute engine. Every cycle fetches the instruction
// at pc, advances pc by one, and then dispatches on the opcode.
//
// Instructions carry one register operand and a 16-bit payload. The payload is
// a register pair, an unsigned address or a signed immediate, and only the
// opcode says which.
package cpu
