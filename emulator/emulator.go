// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/rvm/cpu"
)

// Emulator state. CPU + program.
type Emulator struct {
	Verbose   bool         // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program   *cpu.Program // Reference to the installed program.
	TickLimit int          // If non-zero, Run fails after this many ticks.
}

// NewEmulator creates a new emulator, with zeroed registers and no program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Load installs the program. It may only be called once.
func (emu *Emulator) Load(instrs ...cpu.Instruction) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	prog := cpu.NewProgram(instrs...)

	err = emu.Cpu.Load(prog)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the emulator to its initial state, keeping the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	if emu.Program == nil {
		err = cpu.ErrProgramMissing
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Register.Get(cpu.REG_PC))
}

// ReadRegister returns a snapshot of a register.
func (emu *Emulator) ReadRegister(reg cpu.Register) int32 {
	return emu.Cpu.Register.Get(reg)
}

// Code returns the instruction at the program counter.
func (emu *Emulator) Code() (in cpu.Instruction, ok bool) {
	in, err := emu.Program.Fetch(emu.Cpu.Register.Pc())
	ok = err == nil
	return
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Register.Pc()
	in, _ := emu.Code()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Instruction: in, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit {
			err = &ErrRuntime{Pc: emu.Cpu.Register.Pc(), Err: ErrTickLimit}
			break
		}
		done, err = emu.Tick()
		if err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, exit %v", emu.Cpu.Ticks, err)
		log.Print(emu.Cpu.String())
	}

	return
}
