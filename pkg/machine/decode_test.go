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

package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/lc3vm/pkg/machine"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name        string
		word        uint16
		instruction machine.Instruction
	}{
		{"br", 0b0000_101_111111110, machine.Branch{Flags: machine.FLAG_NEG | machine.FLAG_POS, Offset: 0xFFFE}},
		{"add_reg", 0b0001_011_100_000_101, machine.Add{Dest: 3, Src1: 4, Src2: 5}},
		{"add_imm", 0b0001_011_100_1_10000, machine.Add{Dest: 3, Src1: 4, Immediate: true, Imm5: 0xFFF0}},
		{"ld", 0b0010_001_011111111, machine.Load{Dest: 1, Offset: 0x00FF}},
		{"st", 0b0011_110_100000000, machine.Store{Src: 6, Offset: 0xFF00}},
		{"jsr", 0b0100_1_10000000000, machine.JumpSubroutine{Relative: true, Offset: 0xFC00}},
		{"jsrr", 0b0100_0_00_010_000000, machine.JumpSubroutine{Base: 2}},
		{"and_imm", 0b0101_000_001_1_01111, machine.And{Dest: 0, Src1: 1, Immediate: true, Imm5: 0x000F}},
		{"ldr", 0b0110_111_110_100000, machine.LoadRegister{Dest: 7, Base: 6, Offset: 0xFFE0}},
		{"str", 0b0111_001_010_011111, machine.StoreRegister{Src: 1, Base: 2, Offset: 0x001F}},
		{"not", 0b1001_101_010_111111, machine.Not{Dest: 5, Src: 2}},
		{"ldi", 0b1010_100_000000001, machine.LoadIndirect{Dest: 4, Offset: 0x0001}},
		{"sti", 0b1011_011_111111111, machine.StoreIndirect{Src: 3, Offset: 0xFFFF}},
		{"ret", 0b1100_000_111_000000, machine.Jump{Base: 7}},
		{"lea", 0b1110_010_100000001, machine.LoadEffectiveAddress{Dest: 2, Offset: 0xFF01}},
		{"trap", 0xF025, machine.Trap{Vector: machine.TRAP_HALT}},
	}

	for _, entry := range table {
		instruction, err := machine.Decode(entry.word)
		if assert.NoError(err, entry.name) {
			assert.Equal(entry.instruction, instruction, entry.name)
			assert.Equal(machine.Opcode(entry.word>>12), instruction.Opcode(), entry.name)
		}
	}
}

func TestDecodeIllegal(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint16{0x8000, 0x8FFF, 0xD000, 0xDABC} {
		instruction, err := machine.Decode(word)
		assert.Nil(instruction)
		assert.ErrorIs(err, machine.ErrDecode, "%#04x", word)
	}
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("BR", machine.OP_BR.String())
	assert.Equal("LEA", machine.OP_LEA.String())
	assert.Equal("RES", machine.OP_RES.String())
	assert.Equal("TRAP", machine.OP_TRAP.String())
	assert.Equal("Opcode(16)", machine.Opcode(0x10).String())
}
