// This file is part of logo - https://github.com/logoscript/logo
//
// Copyright 2026 The Logo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Terminal implementations of the console package's capability
// interfaces, grounded on the teacher's vm.NewVT100Terminal
// (vm/io_helpers.go): plain writes pass through, cursor motion and
// screen clearing go out as VT100 escape sequences.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalInput is a line/char oriented console.InputStream over a
// bufio.Reader, the REPL's normal (non-raw) stdin path — the teacher's
// own fallback when raw tty setup fails or -noraw is given
// (cmd/retro/main.go's bufio.NewReader(os.Stdin) branch).
type terminalInput struct {
	r *bufio.Reader
}

func newTerminalInput(r io.Reader) *terminalInput {
	return &terminalInput{r: bufio.NewReader(r)}
}

func (t *terminalInput) ReadLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *terminalInput) ReadChar() (rune, error) {
	r, _, err := t.r.ReadRune()
	return r, err
}

// vt100Screen is a console.TextScreen backed by VT100 escape sequences.
// Row/col are tracked locally rather than queried from the terminal,
// since a plain write advances them the same way it would on a real
// screen; SetCursor both emits the escape and updates the tracked
// position so Cursor stays consistent with it.
type vt100Screen struct {
	w        io.Writer
	row, col int
}

func newVT100Screen(w io.Writer) *vt100Screen {
	return &vt100Screen{w: w, row: 1, col: 1}
}

func (s *vt100Screen) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case '\n':
			s.row++
			s.col = 1
		case '\r':
			s.col = 1
		default:
			s.col++
		}
	}
	return s.w.Write(p)
}

func (s *vt100Screen) SetCursor(row, col int) error {
	_, err := fmt.Fprintf(s.w, "\033[%d;%dH", row, col)
	if err != nil {
		return err
	}
	s.row, s.col = row, col
	return nil
}

func (s *vt100Screen) Cursor() (row, col int) { return s.row, s.col }

func (s *vt100Screen) ClearText() error {
	_, err := s.w.Write([]byte("\033[2J\033[1;1H"))
	s.row, s.col = 1, 1
	return err
}
