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

// Keyboard is the input side of the console, polled through DEV_KBSR.
type Keyboard interface {
	// Pending reports whether a character can be read without blocking. It
	// must never block.
	Pending() bool
	// ReadByte blocks until a character is available.
	ReadByte() (byte, error)
}

// Memory is the 16-bit address space. DEV_KBSR and DEV_KBDR are backed by
// Keyboard; every other cell is plain storage.
//
// Nothing is write protected. A program can overwrite the trap vector table,
// the device registers or its own code.
type Memory struct {
	Cells    [MEMORY_SIZE]Word
	Keyboard Keyboard
}

// Read returns the word at addr. Reading DEV_KBSR polls the keyboard first:
// a pending character is consumed into DEV_KBDR and the ready bit is set,
// otherwise the status register is cleared.
func (mem *Memory) Read(addr Address) Word {
	if addr == DEV_KBSR {
		mem.pollKeyboard()
	}

	return mem.Cells[addr]
}

// Write stores value at addr. Device registers are not special cased.
func (mem *Memory) Write(addr Address, value Word) {
	mem.Cells[addr] = value
}

// Load copies words into memory starting at origin. Words that would land
// past the last address are dropped.
func (mem *Memory) Load(origin Address, words []Word) int {
	return copy(mem.Cells[origin:], words)
}

// Reset zeroes every cell. The keyboard stays attached.
func (mem *Memory) Reset() {
	for i := range mem.Cells {
		mem.Cells[i] = 0x0000
	}
}

func (mem *Memory) pollKeyboard() {
	if mem.Keyboard != nil && mem.Keyboard.Pending() {
		if key, err := mem.Keyboard.ReadByte(); err == nil {
			mem.Cells[DEV_KBSR] = KBSR_READY
			mem.Cells[DEV_KBDR] = Word(key)
			return
		}
	}

	mem.Cells[DEV_KBSR] = 0
}
