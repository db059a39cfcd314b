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

package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

var termFd uintptr
var termRestore unix.Termios

// Turns off canonical input and echo on f. Everything else, including signal
// generation, is left as is.
func enterRawTerm(f *os.File) error {
	fd := f.Fd()

	if err := termios.Tcgetattr(fd, &termRestore); err != nil {
		return errors.Wrap(err, "Tcgetattr failed")
	}

	termstate := termRestore
	termstate.Lflag &^= unix.ICANON | unix.ECHO

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &termstate); err != nil {
		if rerr := termios.Tcsetattr(fd, termios.TCSANOW, &termRestore); rerr != nil {
			log.Println(errors.Wrap(rerr, "restoring terminal"))
		}

		return errors.Wrap(err, "Tcsetattr failed")
	}

	termFd = fd

	return nil
}

func exitRawTerm() {
	err := termios.Tcsetattr(termFd, termios.TCSANOW, &termRestore)

	if err != nil {
		log.Println(errors.Wrap(err, "restoring terminal"))
	}
}
