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

// Procedure introspection: procedurep/primitivep/definedp/erase/text,
// rounding out proc.Table and prim.Table so a `to`/`end` definition is
// fully inspectable after the fact, the same way the teacher's
// asm.Disassemble lets compiled structure be inspected post-assembly.
package eval

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerIntrospectPrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "procedurep", Min: 1, Default: 1, Max: 1, Fn: primProcedurep})
	t.Register(prim.Entry{Name: "procedure?", Min: 1, Default: 1, Max: 1, Fn: primProcedurep})
	t.Register(prim.Entry{Name: "primitivep", Min: 1, Default: 1, Max: 1, Fn: primPrimitivep})
	t.Register(prim.Entry{Name: "primitive?", Min: 1, Default: 1, Max: 1, Fn: primPrimitivep})
	t.Register(prim.Entry{Name: "definedp", Min: 1, Default: 1, Max: 1, Fn: primDefinedp})
	t.Register(prim.Entry{Name: "defined?", Min: 1, Default: 1, Max: 1, Fn: primDefinedp})
	t.Register(prim.Entry{Name: "erase", Min: 1, Default: 1, Max: 1, Fn: primErase})
	t.Register(prim.Entry{Name: "text", Min: 1, Default: 1, Max: 1, Fn: primText})
}

func procNameArg(e prim.Evaluator, args []value.Value) (string, error) {
	if args[0].Kind() != value.KindWord {
		return "", errBadInput("erase")
	}
	return e.Heap().Text(args[0].AsHandle()), nil
}

func primProcedurep(e prim.Evaluator, args []value.Value) value.Result {
	name, err := procNameArg(e, args)
	if err != nil {
		return value.Error(err)
	}
	_, definedOK := e.Procs().Lookup(name)
	isPrim := false
	if it, ok := e.(*Interp); ok {
		_, isPrim = it.prims.Lookup(name)
	}
	return value.OK(boolWord(e.Heap(), definedOK || isPrim))
}

func primPrimitivep(e prim.Evaluator, args []value.Value) value.Result {
	name, err := procNameArg(e, args)
	if err != nil {
		return value.Error(err)
	}
	it, ok := e.(*Interp)
	if !ok {
		return value.OK(boolWord(e.Heap(), false))
	}
	_, isPrim := it.prims.Lookup(name)
	return value.OK(boolWord(e.Heap(), isPrim))
}

func primDefinedp(e prim.Evaluator, args []value.Value) value.Result {
	name, err := procNameArg(e, args)
	if err != nil {
		return value.Error(err)
	}
	_, ok := e.Procs().Lookup(name)
	return value.OK(boolWord(e.Heap(), ok))
}

func primErase(e prim.Evaluator, args []value.Value) value.Result {
	name, err := procNameArg(e, args)
	if err != nil {
		return value.Error(err)
	}
	if _, ok := e.Procs().Lookup(name); !ok {
		return value.Error(errUnknownProc(name))
	}
	e.Procs().Erase(name)
	return value.NoneResult()
}

func primText(e prim.Evaluator, args []value.Value) value.Result {
	name, err := procNameArg(e, args)
	if err != nil {
		return value.Error(err)
	}
	def, ok := e.Procs().Lookup(name)
	if !ok {
		return value.Error(errUnknownProc(name))
	}
	h := e.Heap()
	elems := make([]heap.Handle, len(def.Lines))
	for i, line := range def.Lines {
		elems[i] = lineToTextList(h, line)
	}
	return value.Output(value.List(h.List(elems...)))
}

// lineToTextList rewraps a stored body line into a heap list of single
// word atoms (one per rendered token), since `text`'s documented result
// is a list of source lines as Logo list values, not raw strings.
func lineToTextList(h *heap.Heap, line heap.Handle) heap.Handle {
	elems := h.Elements(line)
	out := make([]heap.Handle, len(elems))
	for i, el := range elems {
		out[i] = h.Intern(renderElement(h, el))
	}
	return h.List(out...)
}
