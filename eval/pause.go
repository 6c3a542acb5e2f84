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

// pause.go implements spec.md §5's suspension point #3: `pause` opens a
// nested read-eval loop over the console's input, in the current dynamic
// scope, until `co` is evaluated. It is registered directly against
// *Interp (rather than through the narrower prim.Evaluator interface)
// because it needs to drive the lexer/tokensrc machinery the same way
// RunSource does, not just call back into already-parsed code.
package eval

import (
	"io"

	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/tokensrc"
	"github.com/logoscript/logo/value"
)

func registerPausePrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "pause", Min: 0, Default: 0, Max: 0, Fn: primPause})
	t.Register(prim.Entry{Name: "co", Min: 0, Default: 0, Max: 1, Fn: primContinue})
	t.Register(prim.Entry{Name: "continue", Min: 0, Default: 0, Max: 1, Fn: primContinue})
}

func primPause(e prim.Evaluator, args []value.Value) value.Result {
	it, ok := e.(*Interp)
	if !ok {
		return value.Error(errUnsupportedOnDevice("pause"))
	}
	if it.procDepth == 0 {
		return value.Error(errAtToplevel("pause"))
	}
	return it.pauseLoop()
}

func primContinue(e prim.Evaluator, args []value.Value) value.Result {
	if len(args) == 0 {
		return value.Continue(value.None)
	}
	return value.Continue(args[0])
}

// pauseLoop reads and evaluates one line at a time from the console's
// input stream, in the caller's current frame, until a `co` unwinds with
// StatusContinue (ending the pause with co's value, or none), or the
// nested code itself stops/throws/errors, which unwinds pause the same
// way it would unwind any other call.
func (it *Interp) pauseLoop() value.Result {
	cb := it.console
	if cb == nil || cb.Input == nil {
		return value.Error(errUnsupportedOnDevice("pause"))
	}
	it.paused = true
	defer func() { it.paused = false }()
	for {
		if cb.Output != nil {
			io.WriteString(cb.Output, "co> ")
		}
		line, err := cb.Input.ReadLine()
		if err == io.EOF {
			return value.Error(errUnsupportedOnDevice("pause"))
		}
		if err != nil {
			return value.Error(err)
		}
		lx := lexer.New(it.h, []byte(line))
		src := tokensrc.NewLexSource(lx)
		res := it.RunSource(src)
		switch res.Status {
		case value.StatusContinue:
			if res.Value.IsNone() {
				return value.NoneResult()
			}
			return value.Output(res.Value)
		case value.StatusNone:
			continue
		default:
			return res
		}
	}
}
