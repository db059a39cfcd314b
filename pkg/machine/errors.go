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
	"errors"
	"fmt"
)

var (
	// ErrDecode is returned for an instruction the machine cannot execute.
	ErrDecode = errors.New("illegal instruction")
	// ErrNotRunning is returned by Step once the machine has halted or
	// faulted.
	ErrNotRunning = errors.New("machine is not running")
	// ErrShortImage is returned for an image without an origin word.
	ErrShortImage = errors.New("image too short")
)

// ErrUnknownTrap is returned for a TRAP with no built-in routine. It matches
// ErrDecode under errors.Is.
var ErrUnknownTrap error = &unknownTrapError{}

type unknownTrapError struct{}

func (err *unknownTrapError) Error() string {
	return "unknown trap vector"
}

func (err *unknownTrapError) Is(target error) bool {
	return target == ErrDecode
}

// FatalError stops the machine. Addr is the address the faulting instruction
// was fetched from.
type FatalError struct {
	Addr        Address
	Instruction Word
	Err         error
}

func (err *FatalError) Error() string {
	return fmt.Sprintf(
		"fatal at %#04x (instruction %#04x): %v",
		uint16(err.Addr), err.Instruction, err.Err,
	)
}

func (err *FatalError) Unwrap() error {
	return err.Err
}

// ImageLoadError reports an image that could not be read. The machine does
// not run after one.
type ImageLoadError struct {
	Path string
	Err  error
}

func (err *ImageLoadError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("loading image: %v", err.Err)
	}

	return fmt.Sprintf("loading image %s: %v", err.Path, err.Err)
}

func (err *ImageLoadError) Unwrap() error {
	return err.Err
}
