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
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/lassandro/lc3vm/pkg/encoding"
)

// LoadImage reads a program image: a big endian origin word followed by the
// words to place at origin and upward. Words past the top of memory are
// dropped. The first image loaded after a reset sets the program counter to
// its origin.
func (mc *Machine) LoadImage(reader io.Reader) (Address, error) {
	origin, err := mc.loadImage(reader)

	if err != nil {
		return 0, &ImageLoadError{Err: err}
	}

	return origin, nil
}

// LoadFile opens path and loads it with LoadImage.
func (mc *Machine) LoadFile(path string) (Address, error) {
	file, err := os.Open(path)

	if err != nil {
		return 0, &ImageLoadError{Path: path, Err: err}
	}

	defer file.Close()

	origin, err := mc.loadImage(file)

	if err != nil {
		return 0, &ImageLoadError{Path: path, Err: err}
	}

	return origin, nil
}

func (mc *Machine) loadImage(reader io.Reader) (Address, error) {
	data, err := io.ReadAll(reader)

	if err != nil {
		return 0, errors.Wrap(err, "reading image")
	}

	if len(data) < 2 {
		return 0, ErrShortImage
	}

	// Words are read low byte first and swapped into place. A trailing odd
	// byte is ignored.
	words := make([]Word, (len(data)-2)/2)

	for i := range words {
		words[i] = encoding.SwapEndian(
			binary.LittleEndian.Uint16(data[2+2*i:]),
		)
	}

	origin := Address(encoding.SwapEndian(binary.LittleEndian.Uint16(data)))

	mc.Memory.Load(origin, words)

	if !mc.loaded {
		mc.Regs.PC = Word(origin)
		mc.loaded = true
	}

	return origin, nil
}
