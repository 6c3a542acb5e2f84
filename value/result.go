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

package value

import "github.com/logoscript/logo/heap"

// Status discriminates the outcome of an evaluator call (spec.md §3.3).
type Status uint8

const (
	// StatusOK carries an expression's value to its caller.
	StatusOK Status = iota
	// StatusNone is a command's normal, valueless completion.
	StatusNone
	// StatusStop unwinds to the nearest enclosing procedure call (the
	// `stop` primitive).
	StatusStop
	// StatusOutput carries a procedure's `output` value to its caller.
	StatusOutput
	// StatusThrow is a tagged non-local exit (`throw`).
	StatusThrow
	// StatusError is a language-level error; see ErrCode.
	StatusError
	// StatusContinue unwinds a `pause` sub-loop back to the suspended
	// `pause` call, carrying the value (if any) that `co` was given.
	StatusContinue
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNone:
		return "NONE"
	case StatusStop:
		return "STOP"
	case StatusOutput:
		return "OUTPUT"
	case StatusThrow:
		return "THROW"
	case StatusError:
		return "ERROR"
	case StatusContinue:
		return "CONTINUE"
	default:
		return "INVALID"
	}
}

// Result is the outcome of one evaluator call: a status plus whatever
// payload that status carries. Only StatusOK and StatusOutput carry a
// caller-visible Value; StatusThrow carries a tag handle and StatusError
// carries an ErrCode plus contextual names, all optional.
type Result struct {
	Status Status
	Value  Value

	// ThrowTag is the atom handle named by `throw` when Status ==
	// StatusThrow.
	ThrowTag heap.Handle

	// Err carries the error detail when Status == StatusError. It is
	// filled in lazily by the eval package (see eval.LogoError) so that
	// the value package itself stays free of the error catalog.
	Err error
}

// OK wraps a value as a successful expression result.
func OK(v Value) Result { return Result{Status: StatusOK, Value: v} }

// NoneResult is a command's non-value completion.
func NoneResult() Result { return Result{Status: StatusNone} }

// Stop requests unwinding to the nearest enclosing procedure call.
func Stop() Result { return Result{Status: StatusStop} }

// Output wraps a procedure's output value.
func Output(v Value) Result { return Result{Status: StatusOutput, Value: v} }

// Throw constructs a tagged non-local exit.
func Throw(tag heap.Handle) Result { return Result{Status: StatusThrow, ThrowTag: tag} }

// Error wraps an error as a StatusError Result.
func Error(err error) Result { return Result{Status: StatusError, Err: err} }

// Continue wraps the value `co` was given (None if called with none) to
// unwind a `pause` sub-loop back to its suspended `pause` call.
func Continue(v Value) Result { return Result{Status: StatusContinue, Value: v} }

// IsControl reports whether r short-circuits normal sequencing: anything
// other than StatusOK/StatusNone must unwind until something consumes it
// (spec.md §4.3 "Control-flow propagation").
func (r Result) IsControl() bool {
	return r.Status != StatusOK && r.Status != StatusNone
}
