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

package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lassandro/lc3vm/pkg/encoding"
)

func TestSignExtend(t *testing.T) {
	for _, bits := range []uint16{5, 6, 9, 11} {
		mask := uint32(1)<<bits - 1

		for v := uint32(0); v <= 0xFFFF; v++ {
			low := v & mask

			// Shift the field to the top of an int16 and back down to let the
			// arithmetic shift produce the reference value.
			want := uint16(int16(uint16(low<<(16-bits))) >> (16 - bits))
			have := encoding.SignExtend(uint16(low), bits)

			if have != want {
				t.Fatalf(
					"SignExtend mismatch (bits=%d value=%#04x)"+
						"\nwant:%#04x\nhave:%#04x",
					bits, low, want, have,
				)
			}
		}
	}
}

func TestSignExtendIgnoresHighBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x000F), encoding.SignExtend(0xFF0F, 5))
	assert.Equal(uint16(0xFFF0), encoding.SignExtend(0x0010, 5))
	assert.Equal(uint16(0xFFFF), encoding.SignExtend(0x003F, 6))
	assert.Equal(uint16(0xFF00), encoding.SignExtend(0x0100, 9))
	assert.Equal(uint16(0x03FF), encoding.SignExtend(0xFBFF, 11))
	assert.Equal(uint16(0xBEEF), encoding.SignExtend(0xBEEF, 16))
}

func TestSwapEndian(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x0030), encoding.SwapEndian(0x3000))
	assert.Equal(uint16(0xEFBE), encoding.SwapEndian(0xBEEF))
	assert.Equal(uint16(0x1234), encoding.SwapEndian(encoding.SwapEndian(0x1234)))
}

func TestDecodeHex(t *testing.T) {
	table := []struct {
		input string
		value uint16
	}{
		{"0x3000", 0x3000},
		{"x3000", 0x3000},
		{"0XFE00", 0xFE00},
		{"0x0", 0x0000},
		{"xFFFF", 0xFFFF},
	}

	for _, entry := range table {
		value, err := encoding.DecodeHex(entry.input)
		require.NoError(t, err, entry.input)
		assert.Equal(t, entry.value, value, entry.input)
	}

	for _, input := range []string{"3000", "1x30", "0x10000", "0xZZ", ""} {
		_, err := encoding.DecodeHex(input)
		assert.Error(t, err, input)
	}
}
