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

// Package console declares the capability interfaces spec.md §6.2 asks
// the evaluator to consult rather than own outright: text I/O, turtle
// graphics, a screen editor, a file system, and raw hardware ports. The
// engine depends only on these interfaces; cmd/logo supplies concrete
// implementations (a real terminal, an in-memory buffer for tests, or a
// headless no-op turtle), the same separation the teacher draws between
// vm.Instance and its inH/outH/waitH port handler funcs.
package console

import "io"

// InputStream is the source `readword`/`readlist`/`readchar`/`readrawline`
// consume from.
type InputStream interface {
	// ReadLine returns one line of input with its terminator stripped, or
	// io.EOF if the stream is exhausted.
	ReadLine() (string, error)
	// ReadChar returns a single character without waiting for a newline,
	// or io.EOF.
	ReadChar() (rune, error)
}

// OutputStream is the sink `print`/`type`/`show` write to.
type OutputStream interface {
	io.Writer
}

// TextScreen is the cursor-addressed text display spec.md's `print`
// family writes through when running interactively (the teacher's
// vm.Instance VT100 terminal, generalised past raw byte output).
type TextScreen interface {
	OutputStream
	// SetCursor moves the text cursor to (row, col), for `setcursor`.
	SetCursor(row, col int) error
	// Cursor returns the current text cursor position.
	Cursor() (row, col int)
	// ClearText clears the text screen, for `cleartext`/`ct`.
	ClearText() error
}

// Turtle is the graphics surface the turtle-motion and turtle-state
// primitives (`forward`, `right`, `setpos`, `pendown`, `setpencolor`...)
// act on.
type Turtle interface {
	// Move advances the turtle by distance units along its current
	// heading, drawing a line if the pen is down.
	Move(distance float64) error
	// Turn rotates the turtle's heading by degrees (positive = clockwise).
	Turn(degrees float64) error
	// SetPosition teleports the turtle to (x, y) without drawing,
	// regardless of pen state (the `setpos`/`setxy` contract).
	SetPosition(x, y float64) error
	// Position returns the turtle's current (x, y).
	Position() (x, y float64)
	// Heading returns the turtle's current heading in degrees.
	Heading() float64
	// SetHeading sets the turtle's heading directly (`seth`).
	SetHeading(degrees float64) error
	// SetPenDown toggles whether Move draws.
	SetPenDown(down bool)
	// PenDown reports the current pen state.
	PenDown() bool
	// SetPenColor sets the drawing color, by Logo's small numbered
	// palette or an implementation-defined name.
	SetPenColor(color string) error
	// SetVisible toggles turtle visibility (`showturtle`/`hideturtle`).
	SetVisible(visible bool)
	// ClearGraphics erases the drawing surface (`clearscreen`/`clean`).
	ClearGraphics() error
}

// Editor is the screen editor `edit`/`ed` primitives defer to; most
// headless embeddings supply a no-op implementation that returns
// ErrUnsupported.
type Editor interface {
	// EditText opens name's current text for interactive editing and
	// returns the edited result.
	EditText(name, text string) (string, error)
}

// FileSystem is the capability `save`/`load`/`openread`/`openwrite`
// consult, generalising the teacher's OS-file-backed image persistence
// (vm/image.go) to named Logo workspace files rather than one fixed VM
// image.
type FileSystem interface {
	// Open opens name for reading.
	Open(name string) (io.ReadCloser, error)
	// Create opens name for writing, truncating any existing content.
	Create(name string) (io.WriteCloser, error)
	// Remove deletes name (`erasefile`).
	Remove(name string) error
}

// Hardware is the capability the `port`-family primitives reach through
// (a direct generalisation of the teacher's hardware I/O ports in
// vm/io_helpers.go); most embeddings supply a no-op implementation.
type Hardware interface {
	// PortIn reads the current value of port.
	PortIn(port int) (int, error)
	// PortOut writes value to port.
	PortOut(port, value int) error
}

// Bundle groups every capability the evaluator may consult. Fields may be
// nil; eval's primitives that need an absent capability fail with an
// eval.ErrUnsupportedOnDevice error.
type Bundle struct {
	Input    InputStream
	Output   OutputStream
	Screen   TextScreen
	Turtle   Turtle
	Editor   Editor
	Files    FileSystem
	Hardware Hardware
}

// ErrUnsupported is an error a capability implementation can return for
// an operation it does not support (such as a no-op Editor).
var ErrUnsupported = errUnsupported{}

type errUnsupported struct{}

func (errUnsupported) Error() string { return "capability not supported by this console" }
