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

import (
	"github.com/pkg/errors"

	"github.com/lassandro/lc3vm/pkg/encoding"
)

// Instruction is a decoded instruction word. The set of implementations is
// closed: each one carries its own semantics in execute.
type Instruction interface {
	Opcode() Opcode
	execute(mc *Machine) error
}

// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Branch struct {
	Flags  Condition
	Offset Word
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Add struct {
	Dest      Register
	Src1      Register
	Immediate bool
	Src2      Register
	Imm5      Word
}

// LD   |0010    |DR   |PCoffset9         | Load
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Load struct {
	Dest   Register
	Offset Word
}

// ST   |0011    |SR   |PCoffset9         | Store
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Store struct {
	Src    Register
	Offset Word
}

// JSR  |0100    |1|PCoffset11            | Jump to subroutine
// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type JumpSubroutine struct {
	Relative bool
	Offset   Word
	Base     Register
}

// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type And struct {
	Dest      Register
	Src1      Register
	Immediate bool
	Src2      Register
	Imm5      Word
}

// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type LoadRegister struct {
	Dest   Register
	Base   Register
	Offset Word
}

// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type StoreRegister struct {
	Src    Register
	Base   Register
	Offset Word
}

// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Not struct {
	Dest Register
	Src  Register
}

// LDI  |1010    |DR   |PCoffset9         | Load indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type LoadIndirect struct {
	Dest   Register
	Offset Word
}

// STI  |1011    |SR   |PCoffset9         | Store indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type StoreIndirect struct {
	Src    Register
	Offset Word
}

// JMP  |1100    |000  |BaseR|000000      | Jump
// RET  |1100    |000  |111  |000000      | Return
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Jump struct {
	Base Register
}

// LEA  |1110    |DR   |PCoffset9         | Load effective address
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type LoadEffectiveAddress struct {
	Dest   Register
	Offset Word
}

// TRAP |1111    |0000   |trapvect8       | System call
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
type Trap struct {
	Vector TrapVector
}

func (Branch) Opcode() Opcode               { return OP_BR }
func (Add) Opcode() Opcode                  { return OP_ADD }
func (Load) Opcode() Opcode                 { return OP_LD }
func (Store) Opcode() Opcode                { return OP_ST }
func (JumpSubroutine) Opcode() Opcode       { return OP_JSR }
func (And) Opcode() Opcode                  { return OP_AND }
func (LoadRegister) Opcode() Opcode         { return OP_LDR }
func (StoreRegister) Opcode() Opcode        { return OP_STR }
func (Not) Opcode() Opcode                  { return OP_NOT }
func (LoadIndirect) Opcode() Opcode         { return OP_LDI }
func (StoreIndirect) Opcode() Opcode        { return OP_STI }
func (Jump) Opcode() Opcode                 { return OP_JMP }
func (LoadEffectiveAddress) Opcode() Opcode { return OP_LEA }
func (Trap) Opcode() Opcode                 { return OP_TRAP }

func dest(instruction Word) Register {
	return Register((instruction >> 9) & 0x7)
}

func base(instruction Word) Register {
	return Register((instruction >> 6) & 0x7)
}

func pcoffset9(instruction Word) Word {
	return encoding.SignExtend(instruction&0x1FF, 9)
}

func offset6(instruction Word) Word {
	return encoding.SignExtend(instruction&0x3F, 6)
}

// Decode splits an instruction word into its opcode and operand fields.
// Offsets and immediates are returned sign extended. RTI and the reserved
// opcode are rejected with ErrDecode.
func Decode(instruction Word) (Instruction, error) {
	opcode := Opcode(instruction >> 12)

	switch opcode {
	case OP_BR:
		return Branch{
			Flags:  Condition((instruction >> 9) & 0x7),
			Offset: pcoffset9(instruction),
		}, nil

	case OP_ADD:
		inst := Add{Dest: dest(instruction), Src1: base(instruction)}

		if (instruction>>5)&0x1 == 1 {
			inst.Immediate = true
			inst.Imm5 = encoding.SignExtend(instruction&0x1F, 5)
		} else {
			inst.Src2 = Register(instruction & 0x7)
		}

		return inst, nil

	case OP_LD:
		return Load{Dest: dest(instruction), Offset: pcoffset9(instruction)}, nil

	case OP_ST:
		return Store{Src: dest(instruction), Offset: pcoffset9(instruction)}, nil

	case OP_JSR:
		if (instruction>>11)&0x1 == 1 {
			return JumpSubroutine{
				Relative: true,
				Offset:   encoding.SignExtend(instruction&0x7FF, 11),
			}, nil
		}

		return JumpSubroutine{Base: base(instruction)}, nil

	case OP_AND:
		inst := And{Dest: dest(instruction), Src1: base(instruction)}

		if (instruction>>5)&0x1 == 1 {
			inst.Immediate = true
			inst.Imm5 = encoding.SignExtend(instruction&0x1F, 5)
		} else {
			inst.Src2 = Register(instruction & 0x7)
		}

		return inst, nil

	case OP_LDR:
		return LoadRegister{
			Dest:   dest(instruction),
			Base:   base(instruction),
			Offset: offset6(instruction),
		}, nil

	case OP_STR:
		return StoreRegister{
			Src:    dest(instruction),
			Base:   base(instruction),
			Offset: offset6(instruction),
		}, nil

	case OP_NOT:
		return Not{Dest: dest(instruction), Src: base(instruction)}, nil

	case OP_LDI:
		return LoadIndirect{
			Dest:   dest(instruction),
			Offset: pcoffset9(instruction),
		}, nil

	case OP_STI:
		return StoreIndirect{
			Src:    dest(instruction),
			Offset: pcoffset9(instruction),
		}, nil

	case OP_JMP:
		return Jump{Base: base(instruction)}, nil

	case OP_LEA:
		return LoadEffectiveAddress{
			Dest:   dest(instruction),
			Offset: pcoffset9(instruction),
		}, nil

	case OP_TRAP:
		return Trap{Vector: TrapVector(instruction & 0xFF)}, nil
	}

	// OP_RTI, OP_RES
	return nil, errors.Wrapf(ErrDecode, "opcode %s", opcode)
}
