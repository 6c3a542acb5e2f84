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

// Word/list/variable primitives (spec.md §4.3's data-selector and
// variable-binding primitive set).
package eval

import (
	"strings"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerDataPrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "make", Min: 2, Default: 2, Max: 2, Fn: primMake})
	t.Register(prim.Entry{Name: "local", Min: 1, Default: 1, Max: 1, Fn: primLocal})
	t.Register(prim.Entry{Name: "thing", Min: 1, Default: 1, Max: 1, Fn: primThing})

	t.Register(prim.Entry{Name: "first", Min: 1, Default: 1, Max: 1, Fn: primFirst})
	t.Register(prim.Entry{Name: "last", Min: 1, Default: 1, Max: 1, Fn: primLast})
	t.Register(prim.Entry{Name: "butfirst", Min: 1, Default: 1, Max: 1, Fn: primButfirst})
	t.Register(prim.Entry{Name: "butlast", Min: 1, Default: 1, Max: 1, Fn: primButlast})
	t.Register(prim.Entry{Name: "item", Min: 2, Default: 2, Max: 2, Fn: primItem})
	t.Register(prim.Entry{Name: "count", Min: 1, Default: 1, Max: 1, Fn: primCount})
	t.Register(prim.Entry{Name: "fput", Min: 2, Default: 2, Max: 2, Fn: primFput})
	t.Register(prim.Entry{Name: "lput", Min: 2, Default: 2, Max: 2, Fn: primLput})
	t.Register(prim.Entry{Name: "word", Min: 2, Default: 2, Max: -1, Fn: primWord})
	t.Register(prim.Entry{Name: "sentence", Min: 2, Default: 2, Max: -1, Fn: primSentence})
	t.Register(prim.Entry{Name: "list", Min: 2, Default: 2, Max: -1, Fn: primList})

	t.Register(prim.Entry{Name: "emptyp", Min: 1, Default: 1, Max: 1, Fn: primEmptyp})
	t.Register(prim.Entry{Name: "wordp", Min: 1, Default: 1, Max: 1, Fn: primWordp})
	t.Register(prim.Entry{Name: "listp", Min: 1, Default: 1, Max: 1, Fn: primListp})
	t.Register(prim.Entry{Name: "numberp", Min: 1, Default: 1, Max: 1, Fn: primNumberp})
	t.Register(prim.Entry{Name: "equalp", Min: 2, Default: 2, Max: 2, Fn: primEqualp})
	t.Register(prim.Entry{Name: "not", Min: 1, Default: 1, Max: 1, Fn: primNot})
}

func primMake(e prim.Evaluator, args []value.Value) value.Result {
	if args[0].Kind() != value.KindWord {
		return value.Error(errBadInput("make"))
	}
	name := e.Heap().Text(args[0].AsHandle())
	e.Vars().Set(e.Frame(), name, args[1])
	return value.NoneResult()
}

func primLocal(e prim.Evaluator, args []value.Value) value.Result {
	if args[0].Kind() != value.KindWord {
		return value.Error(errBadInput("local"))
	}
	name := e.Heap().Text(args[0].AsHandle())
	if err := e.Vars().DeclareLocal(e.Frame(), name); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primThing(e prim.Evaluator, args []value.Value) value.Result {
	if args[0].Kind() != value.KindWord {
		return value.Error(errBadInput("thing"))
	}
	name := e.Heap().Text(args[0].AsHandle())
	v, ok := e.Vars().Get(e.Frame(), name)
	if !ok {
		return value.Error(errUnboundName(name))
	}
	return value.OK(v)
}

func wordText(h *heap.Heap, v value.Value) (string, bool) {
	if v.Kind() != value.KindWord {
		return "", false
	}
	return h.Text(v.AsHandle()), true
}

func primFirst(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		if len(s) == 0 {
			return value.Error(errTooFewItems("first"))
		}
		return value.OK(value.Word(h.Intern(string([]rune(s)[0]))))
	case value.KindList:
		elems := h.Elements(args[0].AsHandle())
		if len(elems) == 0 {
			return value.Error(errTooFewItems("first"))
		}
		return value.OK(elementToValue(h, elems[0]))
	default:
		return value.Error(errBadInput("first"))
	}
}

func primLast(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		r := []rune(s)
		if len(r) == 0 {
			return value.Error(errTooFewItems("last"))
		}
		return value.OK(value.Word(h.Intern(string(r[len(r)-1]))))
	case value.KindList:
		elems := h.Elements(args[0].AsHandle())
		if len(elems) == 0 {
			return value.Error(errTooFewItems("last"))
		}
		return value.OK(elementToValue(h, elems[len(elems)-1]))
	default:
		return value.Error(errBadInput("last"))
	}
}

func primButfirst(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		r := []rune(s)
		if len(r) == 0 {
			return value.Error(errTooFewItems("butfirst"))
		}
		return value.OK(value.Word(h.Intern(string(r[1:]))))
	case value.KindList:
		elems := h.Elements(args[0].AsHandle())
		if len(elems) == 0 {
			return value.Error(errTooFewItems("butfirst"))
		}
		return value.OK(value.List(h.List(elems[1:]...)))
	default:
		return value.Error(errBadInput("butfirst"))
	}
}

func primButlast(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		r := []rune(s)
		if len(r) == 0 {
			return value.Error(errTooFewItems("butlast"))
		}
		return value.OK(value.Word(h.Intern(string(r[:len(r)-1]))))
	case value.KindList:
		elems := h.Elements(args[0].AsHandle())
		if len(elems) == 0 {
			return value.Error(errTooFewItems("butlast"))
		}
		return value.OK(value.List(h.List(elems[:len(elems)-1]...)))
	default:
		return value.Error(errBadInput("butlast"))
	}
}

func primItem(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	n, ok := value.AsNumberCoerce(h, args[0])
	if !ok {
		return value.Error(errBadInput("item"))
	}
	idx := int(n)
	switch args[1].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[1])
		r := []rune(s)
		if idx < 1 || idx > len(r) {
			return value.Error(errTooFewItems("item"))
		}
		return value.OK(value.Word(h.Intern(string(r[idx-1]))))
	case value.KindList:
		elems := h.Elements(args[1].AsHandle())
		if idx < 1 || idx > len(elems) {
			return value.Error(errTooFewItems("item"))
		}
		return value.OK(elementToValue(h, elems[idx-1]))
	default:
		return value.Error(errBadInput("item"))
	}
}

func primCount(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		return value.OK(value.Number(float32(len([]rune(s)))))
	case value.KindList:
		return value.OK(value.Number(float32(h.Count(args[0].AsHandle()))))
	default:
		return value.Error(errBadInput("count"))
	}
}

func primFput(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	if args[1].Kind() != value.KindList {
		return value.Error(errBadInput("fput"))
	}
	el := valueAsElement(h, args[0])
	return value.OK(value.List(h.Cons(el, args[1].AsHandle())))
}

func primLput(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	if args[1].Kind() != value.KindList {
		return value.Error(errBadInput("lput"))
	}
	elems := h.Elements(args[1].AsHandle())
	elems = append(elems, valueAsElement(h, args[0]))
	return value.OK(value.List(h.List(elems...)))
}

func primWord(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	var sb strings.Builder
	for _, a := range args {
		s, ok := wordText(h, a)
		if !ok {
			if a.Kind() == value.KindNumber {
				s = value.FormatNumber(a.AsNumber())
			} else {
				return value.Error(errBadInput("word"))
			}
		}
		sb.WriteString(s)
	}
	return value.OK(value.Word(h.Intern(sb.String())))
}

func primSentence(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	var out []heap.Handle
	for _, a := range args {
		if a.Kind() == value.KindList {
			out = append(out, h.Elements(a.AsHandle())...)
		} else {
			out = append(out, valueAsElement(h, a))
		}
	}
	return value.OK(value.List(h.List(out...)))
}

func primList(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	out := make([]heap.Handle, len(args))
	for i, a := range args {
		out[i] = valueAsElement(h, a)
	}
	return value.OK(value.List(h.List(out...)))
}

func primEmptyp(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	switch args[0].Kind() {
	case value.KindWord:
		s, _ := wordText(h, args[0])
		return value.OK(boolWord(h, s == ""))
	case value.KindList:
		return value.OK(boolWord(h, args[0].AsHandle().IsNil()))
	default:
		return value.Error(errBadInput("emptyp"))
	}
}

func primWordp(e prim.Evaluator, args []value.Value) value.Result {
	return value.OK(boolWord(e.Heap(), args[0].Kind() == value.KindWord))
}

func primListp(e prim.Evaluator, args []value.Value) value.Result {
	return value.OK(boolWord(e.Heap(), args[0].Kind() == value.KindList))
}

func primNumberp(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	if args[0].Kind() == value.KindNumber {
		return value.OK(boolWord(h, true))
	}
	if s, ok := wordText(h, args[0]); ok {
		_, ok := value.ParseNumber(s)
		return value.OK(boolWord(h, ok))
	}
	return value.OK(boolWord(h, false))
}

func primEqualp(e prim.Evaluator, args []value.Value) value.Result {
	return value.OK(boolWord(e.Heap(), value.Equal(e.Heap(), args[0], args[1])))
}

func primNot(e prim.Evaluator, args []value.Value) value.Result {
	b, ok := value.Truthy(e.Heap(), args[0])
	if !ok {
		return value.Error(errNotBool("not"))
	}
	return value.OK(boolWord(e.Heap(), !b))
}
