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
)

// ErrNoConsole is returned by a trap routine that needs a console when none is
// attached.
var ErrNoConsole = errors.New("no console attached")

func (mc *Machine) trap(vector TrapVector) error {
	var err error

	switch vector {
	case TRAP_GETC:
		err = mc.trapGetc()
	case TRAP_OUT:
		err = mc.trapOut()
	case TRAP_PUTS:
		err = mc.trapPuts()
	case TRAP_IN:
		err = mc.trapIn()
	case TRAP_PUTSP:
		err = mc.trapPutsp()
	case TRAP_HALT:
		err = mc.trapHalt()
	default:
		return errors.Wrapf(ErrUnknownTrap, "vector %#02x", uint8(vector))
	}

	return errors.Wrapf(err, "trap %#02x", uint8(vector))
}

// Reads one character into R0 without echo.
func (mc *Machine) trapGetc() error {
	if mc.console == nil {
		return ErrNoConsole
	}

	key, err := mc.console.ReadByte()

	if err != nil {
		return err
	}

	mc.Regs.R[0] = Word(key)
	mc.setFlags(0)

	return nil
}

func (mc *Machine) trapOut() error {
	if mc.console == nil {
		return ErrNoConsole
	}

	if err := mc.console.WriteByte(byte(mc.Regs.R[0])); err != nil {
		return err
	}

	return mc.console.Flush()
}

// Writes one character per word, starting at R0, up to a zero word.
func (mc *Machine) trapPuts() error {
	if mc.console == nil {
		return ErrNoConsole
	}

	for addr := Address(mc.Regs.R[0]); ; addr++ {
		value := mc.Memory.Read(addr)

		if value == 0 {
			break
		}

		if err := mc.console.WriteByte(byte(value)); err != nil {
			return err
		}
	}

	return mc.console.Flush()
}

// Prompts, then reads one character into R0 and echoes it.
func (mc *Machine) trapIn() error {
	if mc.console == nil {
		return ErrNoConsole
	}

	if err := mc.print(PROMPT_IN); err != nil {
		return err
	}

	key, err := mc.console.ReadByte()

	if err != nil {
		return err
	}

	if err := mc.console.WriteByte(key); err != nil {
		return err
	}

	if err := mc.console.Flush(); err != nil {
		return err
	}

	mc.Regs.R[0] = Word(key)
	mc.setFlags(0)

	return nil
}

// Writes two characters per word, low byte first, starting at R0, up to a
// zero word. A zero high byte is skipped.
func (mc *Machine) trapPutsp() error {
	if mc.console == nil {
		return ErrNoConsole
	}

	for addr := Address(mc.Regs.R[0]); ; addr++ {
		value := mc.Memory.Read(addr)

		if value == 0 {
			break
		}

		if err := mc.console.WriteByte(byte(value & 0xFF)); err != nil {
			return err
		}

		if high := byte(value >> 8); high != 0 {
			if err := mc.console.WriteByte(high); err != nil {
				return err
			}
		}
	}

	return mc.console.Flush()
}

func (mc *Machine) trapHalt() error {
	mc.halt()

	if mc.console == nil {
		return nil
	}

	return mc.print(NOTICE_HALT)
}

func (mc *Machine) print(s string) error {
	for i := 0; i < len(s); i++ {
		if err := mc.console.WriteByte(s[i]); err != nil {
			return err
		}
	}

	return mc.console.Flush()
}
