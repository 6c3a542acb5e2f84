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

// Property-list primitives backed by props.Store.
package eval

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerPropPrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "pprop", Min: 3, Default: 3, Max: 3, Fn: primPprop})
	t.Register(prim.Entry{Name: "gprop", Min: 2, Default: 2, Max: 2, Fn: primGprop})
	t.Register(prim.Entry{Name: "remprop", Min: 2, Default: 2, Max: 2, Fn: primRemprop})
	t.Register(prim.Entry{Name: "plist", Min: 1, Default: 1, Max: 1, Fn: primPlist})
}

func primPprop(e prim.Evaluator, args []value.Value) value.Result {
	name, ok1 := wordText(e.Heap(), args[0])
	prop, ok2 := wordText(e.Heap(), args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("pprop"))
	}
	e.Props().PProp(name, prop, args[2])
	return value.NoneResult()
}

func primGprop(e prim.Evaluator, args []value.Value) value.Result {
	name, ok1 := wordText(e.Heap(), args[0])
	prop, ok2 := wordText(e.Heap(), args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("gprop"))
	}
	v, ok := e.Props().GProp(name, prop)
	if !ok {
		return value.OK(value.List(heap.NIL))
	}
	return value.OK(v)
}

func primRemprop(e prim.Evaluator, args []value.Value) value.Result {
	name, ok1 := wordText(e.Heap(), args[0])
	prop, ok2 := wordText(e.Heap(), args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("remprop"))
	}
	e.Props().RemProp(name, prop)
	return value.NoneResult()
}

func primPlist(e prim.Evaluator, args []value.Value) value.Result {
	name, ok := wordText(e.Heap(), args[0])
	if !ok {
		return value.Error(errBadInput("plist"))
	}
	h := e.Heap()
	vals := e.Props().PList(name)
	out := make([]heap.Handle, len(vals))
	for i, v := range vals {
		out[i] = valueAsElement(h, v)
	}
	return value.OK(value.List(h.List(out...)))
}
