// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine

// Option configures a Machine created with New.
type Option func(mc *Machine)

// WithConsole attaches the console used by the trap routines and the
// keyboard registers.
func WithConsole(console Console) Option {
	return func(mc *Machine) {
		mc.SetConsole(console)
	}
}

// New returns a reset machine, ready to have an image loaded.
func New(opts ...Option) *Machine {
	mc := &Machine{}
	mc.Reset()

	for _, opt := range opts {
		opt(mc)
	}

	return mc
}

// Reset clears memory and registers. The program counter is placed at the
// start of user space until an image is loaded. The console is kept.
func (mc *Machine) Reset() {
	mc.Memory.Reset()

	mc.Regs = Registers{
		PC:   Word(MEMSPACE_USER),
		Cond: FLAG_ZERO,
	}

	mc.status = RUNNING
	mc.loaded = false
}

// SetConsole replaces the console and the keyboard behind DEV_KBSR.
func (mc *Machine) SetConsole(console Console) {
	mc.console = console
	mc.Memory.Keyboard = console
}

// Status reports whether the machine is running, halted or faulted.
func (mc *Machine) Status() Status {
	return mc.status
}

// Step fetches, decodes and executes a single instruction. Any error leaves
// the machine FATAL and is returned as a *FatalError.
func (mc *Machine) Step() error {
	if mc.status != RUNNING {
		return ErrNotRunning
	}

	addr := Address(mc.Regs.PC)
	instruction := mc.Memory.Read(addr)

	mc.Regs.PC++

	inst, err := Decode(instruction)

	if err == nil {
		err = inst.execute(mc)
	}

	if err != nil {
		mc.status = FATAL

		return &FatalError{
			Addr:        addr,
			Instruction: instruction,
			Err:         err,
		}
	}

	return nil
}

// Run steps the machine until it halts or faults. A halt returns nil.
func (mc *Machine) Run() error {
	for {
		if err := mc.Step(); err != nil {
			return err
		}

		if mc.status == HALTED {
			return nil
		}
	}
}

func (mc *Machine) halt() {
	mc.status = HALTED
}

func (mc *Machine) setFlags(r Register) {
	value := mc.Regs.R[r]

	if value == 0 {
		mc.Regs.Cond = FLAG_ZERO
	} else if value>>15 == 1 {
		mc.Regs.Cond = FLAG_NEG
	} else {
		mc.Regs.Cond = FLAG_POS
	}
}

func (inst Branch) execute(mc *Machine) error {
	if inst.Flags&mc.Regs.Cond != 0 {
		mc.Regs.PC += inst.Offset
	}

	return nil
}

func (inst Add) execute(mc *Machine) error {
	if inst.Immediate {
		mc.Regs.R[inst.Dest] = mc.Regs.R[inst.Src1] + inst.Imm5
	} else {
		mc.Regs.R[inst.Dest] = mc.Regs.R[inst.Src1] + mc.Regs.R[inst.Src2]
	}

	mc.setFlags(inst.Dest)

	return nil
}

func (inst And) execute(mc *Machine) error {
	if inst.Immediate {
		mc.Regs.R[inst.Dest] = mc.Regs.R[inst.Src1] & inst.Imm5
	} else {
		mc.Regs.R[inst.Dest] = mc.Regs.R[inst.Src1] & mc.Regs.R[inst.Src2]
	}

	mc.setFlags(inst.Dest)

	return nil
}

func (inst Not) execute(mc *Machine) error {
	mc.Regs.R[inst.Dest] = ^mc.Regs.R[inst.Src]

	mc.setFlags(inst.Dest)

	return nil
}

func (inst Jump) execute(mc *Machine) error {
	mc.Regs.PC = mc.Regs.R[inst.Base]

	return nil
}

func (inst JumpSubroutine) execute(mc *Machine) error {
	// R7 is linked before the base is read, JSRR R7 lands on the next
	// instruction
	mc.Regs.R[7] = mc.Regs.PC

	if inst.Relative {
		mc.Regs.PC += inst.Offset
	} else {
		mc.Regs.PC = mc.Regs.R[inst.Base]
	}

	return nil
}

func (inst Load) execute(mc *Machine) error {
	addr := Address(mc.Regs.PC + inst.Offset)

	mc.Regs.R[inst.Dest] = mc.Memory.Read(addr)

	mc.setFlags(inst.Dest)

	return nil
}

func (inst LoadIndirect) execute(mc *Machine) error {
	addr := Address(mc.Regs.PC + inst.Offset)

	mc.Regs.R[inst.Dest] = mc.Memory.Read(Address(mc.Memory.Read(addr)))

	mc.setFlags(inst.Dest)

	return nil
}

func (inst LoadRegister) execute(mc *Machine) error {
	addr := Address(mc.Regs.R[inst.Base] + inst.Offset)

	mc.Regs.R[inst.Dest] = mc.Memory.Read(addr)

	mc.setFlags(inst.Dest)

	return nil
}

func (inst LoadEffectiveAddress) execute(mc *Machine) error {
	mc.Regs.R[inst.Dest] = mc.Regs.PC + inst.Offset

	mc.setFlags(inst.Dest)

	return nil
}

func (inst Store) execute(mc *Machine) error {
	addr := Address(mc.Regs.PC + inst.Offset)

	mc.Memory.Write(addr, mc.Regs.R[inst.Src])

	return nil
}

func (inst StoreIndirect) execute(mc *Machine) error {
	addr := Address(mc.Regs.PC + inst.Offset)

	mc.Memory.Write(Address(mc.Memory.Read(addr)), mc.Regs.R[inst.Src])

	return nil
}

func (inst StoreRegister) execute(mc *Machine) error {
	addr := Address(mc.Regs.R[inst.Base] + inst.Offset)

	mc.Memory.Write(addr, mc.Regs.R[inst.Src])

	return nil
}

func (inst Trap) execute(mc *Machine) error {
	mc.Regs.R[7] = mc.Regs.PC

	return mc.trap(inst.Vector)
}
