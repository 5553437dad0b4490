package emulator

import (
	"errors"

	"github.com/ezrec/rvm/cpu"
	"github.com/ezrec/rvm/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc          uint32          // Address of the failing instruction.
	Instruction cpu.Instruction // Failing instruction, if it was fetched.
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
