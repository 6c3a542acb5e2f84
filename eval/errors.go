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

package eval

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCode classifies a LogoError by the error catalogue's naming.
type ErrCode uint8

const (
	// ErrDontKnowHow is raised by a call to a name with no primitive or
	// user-procedure binding.
	ErrDontKnowHow ErrCode = iota
	// ErrUnboundName is raised by a colon-name or `thing` reference to a
	// variable with no binding anywhere in the active frame chain or
	// globally.
	ErrUnboundName
	// ErrNotEnoughInputs is raised when a call supplies fewer arguments
	// than its target's minimum arity.
	ErrNotEnoughInputs
	// ErrTooManyInputs is raised when a call supplies more arguments than
	// its target's maximum arity allows.
	ErrTooManyInputs
	// ErrDoesntLikeInput is raised when an argument's runtime type/shape
	// does not fit the operation (e.g. non-numeric input to `+`).
	ErrDoesntLikeInput
	// ErrNotBool is raised when a non-boolean value reaches a position
	// that requires one (`if`, `and`/`or`, `while`'s test, ...).
	ErrNotBool
	// ErrTooFewItems is raised by `first`/`last`/`item`/`butfirst`/
	// `butlast` on an empty word or list.
	ErrTooFewItems
	// ErrOutputNotUsed is raised when a procedure invoked as a bare
	// instruction outputs a value that nothing consumes.
	ErrOutputNotUsed
	// ErrNoOutput is raised when a procedure used in value/expression
	// position completes without calling `output` (stops or falls off
	// its last line instead).
	ErrNoOutput
	// ErrOutOfSpace is raised when the frame arena or heap is exhausted.
	ErrOutOfSpace
	// ErrUnexpectedToken is raised by the expression/instruction parser
	// on malformed source.
	ErrUnexpectedToken
	// ErrNoCatch is raised when a `throw` unwinds past the outermost
	// frame with no matching `catch`.
	ErrNoCatch
	// ErrDivideByZero is raised by `/` and `quotient`-family primitives.
	ErrDivideByZero
	// ErrCantFindLabel is raised by `go` to a label with no matching tag
	// in the running procedure.
	ErrCantFindLabel
	// ErrTurtleBounds is raised when fence mode stops the turtle at the
	// drawing surface's edge.
	ErrTurtleBounds
	// ErrUnsupportedOnDevice is raised when a primitive needs a console
	// capability the embedding host did not supply.
	ErrUnsupportedOnDevice
	// ErrAtToplevel is raised by `pause` called outside any procedure
	// activation, where there is no suspended call to resume into.
	ErrAtToplevel
)

func (c ErrCode) String() string {
	switch c {
	case ErrDontKnowHow:
		return "I don't know how to"
	case ErrUnboundName:
		return "didn't have a value"
	case ErrNotEnoughInputs:
		return "not enough inputs to"
	case ErrTooManyInputs:
		return "too many inputs to"
	case ErrDoesntLikeInput:
		return "doesn't like that as input"
	case ErrNotBool:
		return "didn't output TRUE or FALSE"
	case ErrTooFewItems:
		return "too few items in"
	case ErrOutputNotUsed:
		return "didn't say what to do with"
	case ErrNoOutput:
		return "didn't output to"
	case ErrOutOfSpace:
		return "ran out of space"
	case ErrUnexpectedToken:
		return "could not parse"
	case ErrNoCatch:
		return "unwound past the top level"
	case ErrDivideByZero:
		return "division by zero"
	case ErrCantFindLabel:
		return "can't find label"
	case ErrTurtleBounds:
		return "hit the edge of the drawing surface"
	case ErrUnsupportedOnDevice:
		return "not supported on this device"
	case ErrAtToplevel:
		return "can only be used inside a procedure"
	default:
		return "unknown error"
	}
}

// LogoError is the engine's uniform error type: an ErrCode plus the
// offending name, so that a console layer can render a message without
// the engine itself formatting user-facing text. ProcName, when set, is
// the name of the enclosing user procedure that was active when the
// error first crossed a frame boundary, attached once by callUser and
// never overwritten by an outer frame (spec.md §7's propagation policy).
type LogoError struct {
	Code     ErrCode
	Name     string // the procedure, variable, or token text involved, if any
	ProcName string
}

func (e *LogoError) Error() string {
	msg := e.Code.String()
	if e.Name != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Name)
	}
	if e.ProcName != "" {
		msg = fmt.Sprintf("%s, in %s", msg, e.ProcName)
	}
	return msg
}

// attachProcName records the enclosing procedure's name the first time a
// LogoError crosses a callUser frame boundary; later (outer) frames leave
// an already-set ProcName alone. err may be a *LogoError wrapped in a
// errors.WithStack, so it unwraps via errors.As rather than asserting the
// concrete type directly.
func attachProcName(err error, name string) error {
	var le *LogoError
	if errors.As(err, &le) && le.ProcName == "" {
		le.ProcName = name
	}
	return err
}

// Every LogoError is constructed through errors.WithStack so that
// -debug's %+v formatting (cmd/logo/root.go's fail) prints a frame trace
// back to the point of failure, not just the rendered message.
func errUnknownProc(name string) error {
	return errors.WithStack(&LogoError{Code: ErrDontKnowHow, Name: name})
}
func errUnboundName(name string) error {
	return errors.WithStack(&LogoError{Code: ErrUnboundName, Name: name})
}
func errTooFewInputs(name string) error {
	return errors.WithStack(&LogoError{Code: ErrNotEnoughInputs, Name: name})
}
func errTooManyInputs(name string) error {
	return errors.WithStack(&LogoError{Code: ErrTooManyInputs, Name: name})
}
func errBadInput(name string) error {
	return errors.WithStack(&LogoError{Code: ErrDoesntLikeInput, Name: name})
}
func errNotBool(name string) error {
	return errors.WithStack(&LogoError{Code: ErrNotBool, Name: name})
}
func errTooFewItems(name string) error {
	return errors.WithStack(&LogoError{Code: ErrTooFewItems, Name: name})
}
func errOutputNotUsed(name string) error {
	return errors.WithStack(&LogoError{Code: ErrOutputNotUsed, Name: name})
}
func errNoOutput(name string) error {
	return errors.WithStack(&LogoError{Code: ErrNoOutput, Name: name})
}
func errUnexpectedToken(text string) error {
	return errors.WithStack(&LogoError{Code: ErrUnexpectedToken, Name: text})
}
func errUncaughtThrow(tag string) error {
	return errors.WithStack(&LogoError{Code: ErrNoCatch, Name: tag})
}
func errDivideByZero() error { return errors.WithStack(&LogoError{Code: ErrDivideByZero}) }
func errOutOfSpace() error   { return errors.WithStack(&LogoError{Code: ErrOutOfSpace}) }
func errUnsupportedOnDevice(name string) error {
	return errors.WithStack(&LogoError{Code: ErrUnsupportedOnDevice, Name: name})
}
func errAtToplevel(name string) error {
	return errors.WithStack(&LogoError{Code: ErrAtToplevel, Name: name})
}
