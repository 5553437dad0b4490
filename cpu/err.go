package cpu

import (
	"errors"

	"github.com/ezrec/rvm/translate"
)

var f = translate.From

var (
	// Termination
	ErrHalt = errors.New(f("halted"))

	// Fatal conditions
	ErrOutOfBounds     = errors.New(f("pc out of bounds"))
	ErrDivisionByZero  = errors.New(f("division by zero"))
	ErrUndefinedOpcode = errors.New(f("opcode undefined"))
	ErrRegisterInvalid = errors.New(f("register invalid"))

	// Program installation
	ErrProgramLoaded  = errors.New(f("program already loaded"))
	ErrProgramMissing = errors.New(f("program missing"))
)

// ErrOpcode identifies the instruction that failed.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction 0x%016x %v", Instruction(eo).Word(), Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
