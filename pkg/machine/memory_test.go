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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/lc3vm/pkg/machine"
)

type scriptedKeyboard struct {
	keys  []byte
	polls int
	err   error
}

func (kb *scriptedKeyboard) Pending() bool {
	kb.polls++
	return len(kb.keys) > 0
}

func (kb *scriptedKeyboard) ReadByte() (byte, error) {
	if kb.err != nil {
		return 0, kb.err
	}

	key := kb.keys[0]
	kb.keys = kb.keys[1:]

	return key, nil
}

func TestMemoryKeyboardStatus(t *testing.T) {
	assert := assert.New(t)

	kb := &scriptedKeyboard{keys: []byte("xy")}
	mem := machine.Memory{Keyboard: kb}

	assert.Equal(machine.KBSR_READY, mem.Read(machine.DEV_KBSR))
	assert.Equal(uint16('x'), mem.Read(machine.DEV_KBDR))
	assert.Equal(uint16('x'), mem.Read(machine.DEV_KBDR))

	assert.Equal(machine.KBSR_READY, mem.Read(machine.DEV_KBSR))
	assert.Equal(uint16('y'), mem.Read(machine.DEV_KBDR))

	assert.Equal(uint16(0), mem.Read(machine.DEV_KBSR))
	assert.Equal(uint16('y'), mem.Read(machine.DEV_KBDR))

	// Only status reads poll the device
	assert.Equal(3, kb.polls)
}

func TestMemoryKeyboardError(t *testing.T) {
	kb := &scriptedKeyboard{keys: []byte("x"), err: errors.New("broken")}
	mem := machine.Memory{Keyboard: kb}

	mem.Write(machine.DEV_KBSR, machine.KBSR_READY)

	assert.Equal(t, uint16(0), mem.Read(machine.DEV_KBSR))
	assert.Equal(t, uint16(0), mem.Read(machine.DEV_KBDR))
}

func TestMemoryNoKeyboard(t *testing.T) {
	var mem machine.Memory

	mem.Write(machine.DEV_KBSR, machine.KBSR_READY)
	mem.Write(machine.DEV_KBDR, 'k')

	assert.Equal(t, uint16(0), mem.Read(machine.DEV_KBSR))
	assert.Equal(t, uint16('k'), mem.Read(machine.DEV_KBDR))
}

func TestMemoryWriteUnprotected(t *testing.T) {
	assert := assert.New(t)

	var mem machine.Memory

	for _, addr := range []machine.Address{
		machine.MEMSPACE_TRAP_TABLE,
		machine.MEMSPACE_INT_TABLE,
		machine.MEMSPACE_USER,
		machine.DEV_KBDR,
		0xFFFF,
	} {
		mem.Write(addr, 0xBEEF)
		assert.Equal(uint16(0xBEEF), mem.Read(addr), "%#04x", uint16(addr))
	}
}

func TestMemoryLoad(t *testing.T) {
	assert := assert.New(t)

	var mem machine.Memory

	assert.Equal(2, mem.Load(0x3000, []uint16{1, 2}))
	assert.Equal(1, mem.Load(0xFFFF, []uint16{3, 4}))
	assert.Equal(uint16(1), mem.Cells[0x3000])
	assert.Equal(uint16(2), mem.Cells[0x3001])
	assert.Equal(uint16(3), mem.Cells[0xFFFF])
	assert.Equal(uint16(0), mem.Cells[0x0000])

	mem.Reset()
	assert.Equal(uint16(0), mem.Cells[0x3000])
}
