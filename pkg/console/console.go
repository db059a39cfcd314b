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

// Package console provides the character devices a machine talks to through
// its trap routines and keyboard registers.
package console

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Terminal is a console backed by a file descriptor, usually stdin and
// stdout. Pending polls the descriptor and never blocks.
type Terminal struct {
	in     *os.File
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewTerminal returns a console reading from in and writing to out.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
	}
}

// Pending reports whether a character can be read without blocking.
func (t *Terminal) Pending() bool {
	if t.reader.Buffered() > 0 {
		return true
	}

	fds := []unix.PollFd{{Fd: int32(t.in.Fd()), Events: unix.POLLIN}}

	for {
		n, err := unix.Poll(fds, 0)

		if err == unix.EINTR {
			continue
		}

		return err == nil && n > 0 && fds[0].Revents&unix.POLLIN != 0
	}
}

func (t *Terminal) ReadByte() (byte, error) {
	c, err := t.reader.ReadByte()
	return c, errors.Wrap(err, "console read")
}

func (t *Terminal) WriteByte(c byte) error {
	return errors.Wrap(t.writer.WriteByte(c), "console write")
}

func (t *Terminal) Flush() error {
	return errors.Wrap(t.writer.Flush(), "console flush")
}

// Stream is a console over arbitrary readers and writers, for scripted input
// and captured output. Pending peeks at the reader, so it only stays
// non-blocking for readers that never block, such as in-memory buffers.
type Stream struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewStream returns a Stream reading from r and writing to w. A nil r never
// has input; a nil w discards output.
func NewStream(r io.Reader, w io.Writer) *Stream {
	var s Stream

	if r != nil {
		s.reader = bufio.NewReader(r)
	}

	if w == nil {
		w = io.Discard
	}

	s.writer = bufio.NewWriter(w)

	return &s
}

// Pending reports whether the reader has another byte. It blocks if the
// underlying reader does.
func (s *Stream) Pending() bool {
	if s.reader == nil {
		return false
	}

	if s.reader.Buffered() > 0 {
		return true
	}

	_, err := s.reader.Peek(1)

	return err == nil
}

func (s *Stream) ReadByte() (byte, error) {
	if s.reader == nil {
		return 0, errors.Wrap(io.EOF, "console read")
	}

	c, err := s.reader.ReadByte()
	return c, errors.Wrap(err, "console read")
}

func (s *Stream) WriteByte(c byte) error {
	return errors.Wrap(s.writer.WriteByte(c), "console write")
}

func (s *Stream) Flush() error {
	return errors.Wrap(s.writer.Flush(), "console flush")
}
