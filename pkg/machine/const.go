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

//go:generate go tool stringer -linecomment -type=Condition
const (
	FLAG_POS  Condition = 1 << 0 // P
	FLAG_ZERO Condition = 1 << 1 // Z
	FLAG_NEG  Condition = 1 << 2 // N
)

const (
	TRAP_GETC  TrapVector = 0x20
	TRAP_OUT   TrapVector = 0x21
	TRAP_PUTS  TrapVector = 0x22
	TRAP_IN    TrapVector = 0x23
	TRAP_PUTSP TrapVector = 0x24
	TRAP_HALT  TrapVector = 0x25
)

const (
	MEMSPACE_TRAP_TABLE Address = 0x0000
	MEMSPACE_INT_TABLE  Address = 0x0100
	MEMSPACE_SUPERVISOR Address = 0x0200
	MEMSPACE_USER       Address = 0x3000
	MEMSPACE_DEVICES    Address = 0xFE00
)

const (
	DEV_KBSR Address = 0xFE00
	DEV_KBDR Address = 0xFE02
)

// Keyboard status ready bit
const KBSR_READY Word = 1 << 15

const MEMORY_SIZE = 1 << 16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   Opcode = 0b0000 // BR
	OP_ADD  Opcode = 0b0001 // ADD
	OP_LD   Opcode = 0b0010 // LD
	OP_ST   Opcode = 0b0011 // ST
	OP_JSR  Opcode = 0b0100 // JSR
	OP_AND  Opcode = 0b0101 // AND
	OP_LDR  Opcode = 0b0110 // LDR
	OP_STR  Opcode = 0b0111 // STR
	OP_RTI  Opcode = 0b1000 // RTI
	OP_NOT  Opcode = 0b1001 // NOT
	OP_LDI  Opcode = 0b1010 // LDI
	OP_STI  Opcode = 0b1011 // STI
	OP_JMP  Opcode = 0b1100 // JMP
	OP_RES  Opcode = 0b1101 // RES
	OP_LEA  Opcode = 0b1110 // LEA
	OP_TRAP Opcode = 0b1111 // TRAP
)

// Messages written by the trap routines
const (
	PROMPT_IN   = "Enter a character: "
	NOTICE_HALT = "HALT\n"
)
