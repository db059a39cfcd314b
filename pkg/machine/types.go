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

// Word is the unit of storage, register contents and instruction encoding.
// Arithmetic on words wraps modulo 2^16.
type Word = uint16

// Address selects one of the 65536 memory cells. Every Address value is a
// valid index into Memory.
type Address uint16

// Register is the index of a general purpose register, R0 through R7.
type Register uint8

// Condition holds the N/Z/P condition flags. Exactly one flag is set.
type Condition uint8

// TrapVector selects a built-in trap routine.
type TrapVector uint8

// Opcode is the 4-bit operation selector in bits [15:12] of an instruction.
type Opcode uint8

// Status is the state of the dispatch loop.
type Status uint8

//go:generate go tool stringer -linecomment -type=Status
const (
	RUNNING Status = iota // RUNNING
	HALTED                // HALTED
	FATAL                 // FATAL
)

// Console is the character device behind the trap routines and the keyboard
// registers.
type Console interface {
	Keyboard
	WriteByte(c byte) error
	Flush() error
}

// Registers is the register file.
type Registers struct {
	R    [8]Word
	PC   Word
	Cond Condition
}

// Machine owns the address space and register file of a single program run.
type Machine struct {
	Memory Memory
	Regs   Registers

	console Console
	status  Status
	loaded  bool
}
