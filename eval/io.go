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

// Text I/O primitives backed by console.Bundle. Every primitive here
// fails with ErrUnsupportedOnDevice rather than panicking when the
// embedding host did not wire the corresponding capability (spec.md
// §6.2's console interfaces are all optional).
package eval

import (
	"fmt"

	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerIOPrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "print", Min: 1, Default: 1, Max: 1, Fn: primPrint})
	t.Register(prim.Entry{Name: "type", Min: 1, Default: 1, Max: 1, Fn: primType})
	t.Register(prim.Entry{Name: "show", Min: 1, Default: 1, Max: 1, Fn: primShow})
	t.Register(prim.Entry{Name: "readword", Min: 0, Default: 0, Max: 0, Fn: primReadword})
}

func primPrint(e prim.Evaluator, args []value.Value) value.Result {
	cb := e.Console()
	if cb == nil || cb.Output == nil {
		return value.Error(errUnsupportedOnDevice("print"))
	}
	text := args[0].Text(e.Heap())
	if args[0].Kind() == value.KindList {
		text = text[1 : len(text)-1] // print drops a list's outer brackets
	}
	fmt.Fprintln(cb.Output, text)
	return value.NoneResult()
}

func primType(e prim.Evaluator, args []value.Value) value.Result {
	cb := e.Console()
	if cb == nil || cb.Output == nil {
		return value.Error(errUnsupportedOnDevice("type"))
	}
	fmt.Fprint(cb.Output, args[0].Text(e.Heap()))
	return value.NoneResult()
}

// show differs from print only in keeping a list argument's outer
// brackets, which Value.Text already renders.
func primShow(e prim.Evaluator, args []value.Value) value.Result {
	cb := e.Console()
	if cb == nil || cb.Output == nil {
		return value.Error(errUnsupportedOnDevice("show"))
	}
	fmt.Fprintln(cb.Output, args[0].Text(e.Heap()))
	return value.NoneResult()
}

func primReadword(e prim.Evaluator, args []value.Value) value.Result {
	cb := e.Console()
	if cb == nil || cb.Input == nil {
		return value.Error(errUnsupportedOnDevice("readword"))
	}
	line, err := cb.Input.ReadLine()
	if err != nil {
		return value.Error(err)
	}
	return value.OK(value.Word(e.Heap().Intern(line)))
}
