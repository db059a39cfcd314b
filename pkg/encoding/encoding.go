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

// Package encoding holds the bit-level helpers shared by the machine and its
// command line front end.
package encoding

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DecodeHex parses a 16-bit hexadecimal literal of the form 0x#### or x####.
func DecodeHex(s string) (uint16, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	} else if i == -1 || i != 1 || s[0] != '0' {
		return 0, errors.Errorf("invalid hex string %q", s)
	}

	result, err := strconv.ParseUint(s, 0, 16)

	if err != nil {
		return 0, errors.Wrapf(err, "invalid hex string %q", s)
	}

	return uint16(result), nil
}

// SwapEndian exchanges the high and low byte of value.
func SwapEndian(value uint16) uint16 {
	return (value >> 8) | (value << 8)
}

// SignExtend widens the two's complement number held in the low bitcount bits
// of value to 16 bits. Bits above bitcount are ignored.
func SignExtend(value uint16, bitcount uint16) uint16 {
	if bitcount == 0 || bitcount >= 16 {
		return value
	}

	value &= (1 << bitcount) - 1

	if (value>>(bitcount-1))&0x1 == 1 {
		value |= (0xFFFF << bitcount)
	}

	return value
}
