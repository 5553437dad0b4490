package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Cpu is the simulation context of the virtual machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register RegisterFile // Register bank; slot 0 is the program counter.
	Stack    Stack        // Value stack, reserved.
	Program  *Program     // Installed program.
	State    State        // Execution state.

	Ticks int // Completed cycles counter.

	exit error // Condition that terminated execution.
}

// NewCpu creates a CPU with zeroed registers and no program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		State: STATE_RUNNING,
	}

	return
}

// Load installs the program. A program can only be installed once.
func (cpu *Cpu) Load(prog *Program) (err error) {
	if cpu.Program != nil {
		err = ErrProgramLoaded
		return
	}

	if prog == nil {
		err = ErrProgramMissing
		return
	}

	cpu.Program = prog

	if cpu.Verbose {
		log.Printf("cpu: load %d instructions", prog.Len())
	}

	return
}

// Reset the CPU state.
// - Clears the registers and stack.
// - Zeros the ticks counter.
// - Returns to the running state.
// The installed program is kept.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Stack.Reset()
	cpu.Ticks = 0
	cpu.State = STATE_RUNNING
	cpu.exit = nil
}

// Terminated returns true once a halt or a fatal condition has ended execution.
func (cpu *Cpu) Terminated() bool {
	return cpu.State == STATE_TERMINATED
}

// Exit returns the condition that terminated execution, ErrHalt for a
// normal halt, or nil while still running.
func (cpu *Cpu) Exit() error {
	return cpu.exit
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	for n := range REGISTER_COUNT {
		reg := Register(n)
		val := uint32(cpu.Register.Get(reg))
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg.String(), val>>16, val&0xffff)
	}

	return
}

// Fetch returns the instruction at the program counter, and advances the
// program counter by one.
func (cpu *Cpu) Fetch() (in Instruction, err error) {
	pc := cpu.Register.Pc()

	in, err = cpu.Program.Fetch(pc)
	if err != nil {
		if cpu.Verbose {
			log.Printf("cpu: pc 0x%x > program len 0x%x", pc, cpu.Program.Len())
		}
		return
	}

	cpu.Register.SetPc(pc + 1)

	return
}

// Tick executes a single instruction cycle.
//
// A halt returns ErrHalt. Any other error, except a missing program,
// terminates the CPU, and later ticks return the same error without fetching.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Terminated() {
		err = cpu.exit
		return
	}

	if cpu.Program == nil {
		err = ErrProgramMissing
		return
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_TERMINATED
			cpu.exit = err
		}
	}()

	in, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(in)
	if err == nil || err == ErrHalt {
		cpu.Ticks += 1
	}

	return
}

// Run ticks the CPU until it terminates.
// Returns nil on halt, or the fatal condition that ended execution.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalt) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// Execute executes a single decoded instruction.
// The program counter has already been advanced past it.
func (cpu *Cpu) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil && err != ErrHalt {
			err = errors.Join(ErrOpcode(in), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Register.Pc()-1, in)
	}

	if !in.Valid() {
		err = ErrRegisterInvalid
		return
	}

	r := &cpu.Register

	switch in.Op {
	case OP_HALT:
		err = ErrHalt
	case OP_LOAD:
		r.Set(in.A, int32(in.Value()))
	case OP_INC:
		r.Set(in.A, r.Get(in.A)+1)
	case OP_DEC:
		r.Set(in.A, r.Get(in.A)-1)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND:
		var value int32
		value, err = cpu.doAlu(in.Op, r.Get(in.A), r.Get(in.B()))
		if err != nil {
			return
		}
		r.Set(in.C(), value)
	case OP_JUMP:
		r.SetPc(uint32(in.Address()))
	case OP_JUMP_IF_ZERO:
		if r.Get(in.A) == 0 {
			r.SetPc(uint32(in.Address()))
		}
	default:
		// OP_STORE has no defined behaviour.
		err = ErrUndefinedOpcode
	}

	return
}

// doAlu performs the requested ALU action, and returns the output value.
// Results wrap at 32 bits.
func (cpu *Cpu) doAlu(op OpCode, a int32, b int32) (output int32, err error) {
	switch op {
	case OP_ADD:
		output = a + b
	case OP_SUB:
		output = a - b
	case OP_MUL:
		output = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		output = a / b
	case OP_AND:
		if a != 0 && b != 0 {
			output = 1
		}
	default:
		err = ErrUndefinedOpcode
	}

	return
}
