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

// This file registers the control-flow primitive set spec.md §4.3/§9
// names as authoritative: run, repeat, for, if/ifelse, while, until,
// do.while, do.until, forever, catch, throw, apply, map, map.se, filter,
// find, reduce, crossmap, foreach.
package eval

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/tokensrc"
	"github.com/logoscript/logo/value"
)

func asList(v value.Value) heap.Handle {
	if v.Kind() == value.KindList {
		return v.AsHandle()
	}
	return heap.NIL
}

// RegisterBuiltins installs every built-in primitive into t. It is called
// once by eval.New; cmd/logo never registers primitives itself.
func RegisterBuiltins(t *prim.Table) {
	registerControl(t)
	registerDataPrims(t)
	registerArithPrims(t)
	registerIOPrims(t)
	registerTurtlePrims(t)
	registerPropPrims(t)
	registerPausePrims(t)
	registerIntrospectPrims(t)
}

func registerControl(t *prim.Table) {
	t.Register(prim.Entry{Name: "run", Min: 1, Default: 1, Max: 1, Fn: primRun})
	t.Register(prim.Entry{Name: "repeat", Min: 2, Default: 2, Max: 2, Fn: primRepeat})
	t.Register(prim.Entry{Name: "forever", Min: 1, Default: 1, Max: 1, Fn: primForever})
	t.Register(prim.Entry{Name: "for", Min: 2, Default: 2, Max: 2, Fn: primFor})
	t.Register(prim.Entry{Name: "if", Min: 2, Default: 2, Max: 2, Fn: primIf})
	t.Register(prim.Entry{Name: "ifelse", Min: 3, Default: 3, Max: 3, Fn: primIfelse})
	t.Register(prim.Entry{Name: "while", Min: 2, Default: 2, Max: 2, Fn: primWhile})
	t.Register(prim.Entry{Name: "until", Min: 2, Default: 2, Max: 2, Fn: primUntil})
	t.Register(prim.Entry{Name: "do.while", Min: 2, Default: 2, Max: 2, Fn: primDoWhile})
	t.Register(prim.Entry{Name: "do.until", Min: 2, Default: 2, Max: 2, Fn: primDoUntil})
	t.Register(prim.Entry{Name: "catch", Min: 2, Default: 2, Max: 2, Fn: primCatch})
	t.Register(prim.Entry{Name: "throw", Min: 1, Default: 1, Max: 1, Fn: primThrow})
	t.Register(prim.Entry{Name: "stop", Min: 0, Default: 0, Max: 0, Fn: primStop})
	t.Register(prim.Entry{Name: "output", Min: 1, Default: 1, Max: 1, Fn: primOutput})
	t.Register(prim.Entry{Name: "op", Min: 1, Default: 1, Max: 1, Fn: primOutput})
	t.Register(prim.Entry{Name: "apply", Min: 2, Default: 2, Max: 2, Fn: primApply})
	t.Register(prim.Entry{Name: "map", Min: 2, Default: 2, Max: 2, Fn: primMap})
	t.Register(prim.Entry{Name: "map.se", Min: 2, Default: 2, Max: 2, Fn: primMapSE})
	t.Register(prim.Entry{Name: "filter", Min: 2, Default: 2, Max: 2, Fn: primFilter})
	t.Register(prim.Entry{Name: "find", Min: 2, Default: 2, Max: 2, Fn: primFind})
	t.Register(prim.Entry{Name: "reduce", Min: 2, Default: 2, Max: 2, Fn: primReduce})
	t.Register(prim.Entry{Name: "crossmap", Min: 3, Default: 3, Max: 3, Fn: primCrossmap})
	t.Register(prim.Entry{Name: "foreach", Min: 2, Default: 2, Max: 2, Fn: primForeach})
	t.Register(prim.Entry{Name: "repcount", Min: 0, Default: 0, Max: 0, Fn: primRepcount})
	t.Register(prim.Entry{Name: "error", Min: 0, Default: 0, Max: 0, Fn: primError})
}

func primRun(e prim.Evaluator, args []value.Value) value.Result {
	return e.RunList(asList(args[0]))
}

func primRepeat(e prim.Evaluator, args []value.Value) value.Result {
	n, ok := value.AsNumberCoerce(e.Heap(), args[0])
	if !ok {
		return value.Error(errBadInput("repeat"))
	}
	body := asList(args[1])
	f := e.Frame()
	prevCount := e.Frames().RepCount(f)
	defer e.Frames().SetRepCount(f, prevCount)
	count := int(n)
	for i := 1; i <= count; i++ {
		e.Frames().SetRepCount(f, i)
		res := e.RunList(body)
		if res.IsControl() {
			if res.Status == value.StatusStop {
				return value.NoneResult()
			}
			return res
		}
	}
	return value.NoneResult()
}

func primForever(e prim.Evaluator, args []value.Value) value.Result {
	body := asList(args[0])
	f := e.Frame()
	prevCount := e.Frames().RepCount(f)
	defer e.Frames().SetRepCount(f, prevCount)
	for i := 1; ; i++ {
		e.Frames().SetRepCount(f, i)
		res := e.RunList(body)
		if res.IsControl() {
			if res.Status == value.StatusStop {
				return value.NoneResult()
			}
			return res
		}
	}
}

// primFor implements spec.md §4.3's `for [var start limit (step?)] L`:
// var is bound locally, incremented by step (default sign(limit-start)),
// and the pre-existing binding, if any, is restored on exit.
func primFor(e prim.Evaluator, args []value.Value) value.Result {
	spec := e.Heap().Elements(asList(args[0]))
	if len(spec) < 3 {
		return value.Error(errBadInput("for"))
	}
	h := e.Heap()
	varName := h.Text(spec[0])
	start, ok1 := numericElement(h, spec[1])
	limit, ok2 := numericElement(h, spec[2])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("for"))
	}
	step := float32(1)
	if limit < start {
		step = -1
	}
	if len(spec) >= 4 {
		if s, ok := numericElement(h, spec[3]); ok {
			step = s
		}
	}
	body := asList(args[1])

	f := e.Frame()
	prevCount := e.Frames().RepCount(f)
	defer e.Frames().SetRepCount(f, prevCount)
	prevVal, hadPrev := e.Vars().Get(f, varName)
	if err := e.Vars().DeclareLocal(f, varName); err != nil {
		return value.Error(err)
	}
	defer func() {
		if hadPrev {
			e.Vars().Set(f, varName, prevVal)
		}
	}()

	i := 1
	for cur := start; ; cur += step {
		if (cur-limit)*step > 0 {
			break
		}
		e.Vars().Set(f, varName, value.Number(cur))
		e.Frames().SetRepCount(f, i)
		i++
		res := e.RunList(body)
		if res.IsControl() {
			if res.Status == value.StatusStop {
				return value.NoneResult()
			}
			return res
		}
		if step == 0 {
			break
		}
	}
	return value.NoneResult()
}

func numericElement(h *heap.Heap, hnd heap.Handle) (float32, bool) {
	if hnd.IsAtom() {
		return value.ParseNumber(h.Text(hnd))
	}
	return 0, false
}

func primIf(e prim.Evaluator, args []value.Value) value.Result {
	b, ok := value.Truthy(e.Heap(), args[0])
	if !ok {
		return value.Error(errNotBool("if"))
	}
	if b {
		return e.RunList(asList(args[1]))
	}
	return value.NoneResult()
}

func primIfelse(e prim.Evaluator, args []value.Value) value.Result {
	b, ok := value.Truthy(e.Heap(), args[0])
	if !ok {
		return value.Error(errNotBool("ifelse"))
	}
	if b {
		return e.RunList(asList(args[1]))
	}
	return e.RunList(asList(args[2]))
}

func runTestLoop(e prim.Evaluator, test, body heap.Handle, until bool, runBodyFirst bool) value.Result {
	check := func() (bool, error) {
		v, err := e.EvalExprList(test)
		if err != nil {
			return false, err
		}
		b, ok := value.Truthy(e.Heap(), v)
		if !ok {
			return false, errNotBool("while/until")
		}
		if until {
			b = !b
		}
		return b, nil
	}
	runOnce := func() *value.Result {
		res := e.RunList(body)
		if res.IsControl() {
			if res.Status == value.StatusStop {
				r := value.NoneResult()
				return &r
			}
			return &res
		}
		return nil
	}
	if runBodyFirst {
		if r := runOnce(); r != nil {
			return *r
		}
	}
	for {
		cont, err := check()
		if err != nil {
			return unwrapControl(err)
		}
		if !cont {
			return value.NoneResult()
		}
		if r := runOnce(); r != nil {
			return *r
		}
	}
}

func primWhile(e prim.Evaluator, args []value.Value) value.Result {
	return runTestLoop(e, asList(args[0]), asList(args[1]), false, false)
}

func primUntil(e prim.Evaluator, args []value.Value) value.Result {
	return runTestLoop(e, asList(args[0]), asList(args[1]), true, false)
}

func primDoWhile(e prim.Evaluator, args []value.Value) value.Result {
	return runTestLoop(e, asList(args[1]), asList(args[0]), false, true)
}

func primDoUntil(e prim.Evaluator, args []value.Value) value.Result {
	return runTestLoop(e, asList(args[1]), asList(args[0]), true, true)
}

func primCatch(e prim.Evaluator, args []value.Value) value.Result {
	tag := args[0]
	if tag.Kind() != value.KindWord {
		return value.Error(errBadInput("catch"))
	}
	res := e.RunList(asList(args[1]))
	switch res.Status {
	case value.StatusThrow:
		// `catch "toplevel` never intercepts a throw: every throw passes
		// through it unchanged, so `throw "toplevel` reaches the top level.
		if e.Heap().EqualFold(tag.AsHandle(), e.Heap().Intern("toplevel")) {
			return res
		}
		if e.Heap().EqualFold(res.ThrowTag, tag.AsHandle()) {
			return value.NoneResult()
		}
		return res
	case value.StatusError:
		if eqFoldWord(e.Heap(), tag, "error") {
			e.SetCaughtError(res.Err)
			return value.NoneResult()
		}
		return res
	default:
		return res
	}
}

func eqFoldWord(h *heap.Heap, v value.Value, s string) bool {
	if v.Kind() != value.KindWord {
		return false
	}
	return h.EqualFold(v.AsHandle(), h.Intern(s))
}

func primThrow(e prim.Evaluator, args []value.Value) value.Result {
	if args[0].Kind() != value.KindWord {
		return value.Error(errBadInput("throw"))
	}
	return value.Throw(args[0].AsHandle())
}

func primStop(e prim.Evaluator, args []value.Value) value.Result {
	return value.Stop()
}

func primOutput(e prim.Evaluator, args []value.Value) value.Result {
	return value.Output(args[0])
}

func primRepcount(e prim.Evaluator, args []value.Value) value.Result {
	return value.OK(value.Number(float32(e.Frames().RepCount(e.Frame()))))
}

// primError outputs the list recorded by the last `catch "error, or an
// empty list if nothing has been caught since (spec.md's "last caught
// error slot readable by error").
func primError(e prim.Evaluator, args []value.Value) value.Result {
	err := e.CaughtError()
	if err == nil {
		return value.Output(value.List(heap.NIL))
	}
	list := e.Heap().List(e.Heap().Intern(err.Error()))
	return value.Output(value.List(list))
}

// procSpec resolves a "procedure specification" value (spec.md §4.3): a
// bare word names a procedure directly; a list of the form [[params]
// body] is an anonymous template run via RunList/EvalExprList against
// freshly-bound parameters. The template form is handled inline below,
// for examples such as `map [[x] :x * :x] [1 2 3 4]`: a body that cannot
// open an instruction is evaluated as one expression, and any other body
// is run as instructions, falling back to one expression when it
// finishes without an output.
func callProcSpec(e prim.Evaluator, spec value.Value, actuals []value.Value) value.Result {
	if spec.Kind() == value.KindWord {
		return e.CallProcedure(spec.AsHandle(), actuals)
	}
	if spec.Kind() == value.KindList {
		elems := e.Heap().Elements(spec.AsHandle())
		if len(elems) >= 2 && elems[0].IsCons() {
			params := e.Heap().Elements(elems[0])
			f := e.Frame()
			for i, p := range params {
				if i < len(actuals) {
					if err := e.Vars().DeclareLocal(f, e.Heap().Text(p)); err != nil {
						return value.Error(err)
					}
					e.Vars().Set(f, e.Heap().Text(p), actuals[i])
				}
			}
			body := e.Heap().List(elems[1:]...)
			if tok, err := tokensrc.NewListCursor(e.Heap(), body).Peek(); err == nil &&
				tok.Kind != lexer.WORD && tok.Kind != lexer.LEFT_PAREN {
				v, err := e.EvalExprList(body)
				if err != nil {
					return unwrapControl(err)
				}
				return value.OK(v)
			}
			res := e.RunList(body)
			if res.Status == value.StatusNone {
				// a template with no explicit `output` falls through: try
				// reading it as a single trailing expression instead.
				if v, err := e.EvalExprList(body); err == nil {
					return value.OK(v)
				}
			}
			return res
		}
	}
	return value.Error(errBadInput("procedure specification"))
}

func primApply(e prim.Evaluator, args []value.Value) value.Result {
	actuals := elementValues(e.Heap(), asList(args[1]))
	return callProcSpec(e, args[0], actuals)
}

func elementValues(h *heap.Heap, list heap.Handle) []value.Value {
	elems := h.Elements(list)
	out := make([]value.Value, len(elems))
	for i, el := range elems {
		out[i] = elementToValue(h, el)
	}
	return out
}

func elementToValue(h *heap.Heap, hnd heap.Handle) value.Value {
	if hnd.IsCons() || hnd.IsNil() {
		return value.List(hnd)
	}
	if n, ok := value.ParseNumber(h.Text(hnd)); ok {
		return value.Number(n)
	}
	return value.Word(hnd)
}

func primMap(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	out := make([]heap.Handle, 0, len(elems))
	for _, el := range elems {
		res := callProcSpec(e, args[0], []value.Value{elementToValue(h, el)})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
		out = append(out, valueAsElement(h, res.Value))
	}
	return value.OK(value.List(h.List(out...)))
}

func primMapSE(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	var out []heap.Handle
	for _, el := range elems {
		res := callProcSpec(e, args[0], []value.Value{elementToValue(h, el)})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
		if res.Value.Kind() == value.KindList {
			out = append(out, h.Elements(res.Value.AsHandle())...)
		} else {
			out = append(out, valueAsElement(h, res.Value))
		}
	}
	return value.OK(value.List(h.List(out...)))
}

func primFilter(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	var out []heap.Handle
	for _, el := range elems {
		v := elementToValue(h, el)
		res := callProcSpec(e, args[0], []value.Value{v})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
		b, ok := value.Truthy(h, res.Value)
		if !ok {
			return value.Error(errBadInput("filter"))
		}
		if b {
			out = append(out, el)
		}
	}
	return value.OK(value.List(h.List(out...)))
}

func primFind(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	for _, el := range elems {
		v := elementToValue(h, el)
		res := callProcSpec(e, args[0], []value.Value{v})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
		b, ok := value.Truthy(h, res.Value)
		if !ok {
			return value.Error(errBadInput("find"))
		}
		if b {
			return value.OK(v)
		}
	}
	return value.OK(value.List(heap.NIL))
}

func primReduce(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	if len(elems) == 0 {
		return value.OK(value.List(heap.NIL))
	}
	acc := elementToValue(h, elems[0])
	for _, el := range elems[1:] {
		v := elementToValue(h, el)
		res := callProcSpec(e, args[0], []value.Value{acc, v})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
		acc = res.Value
	}
	return value.OK(acc)
}

func primCrossmap(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	a := h.Elements(asList(args[1]))
	b := h.Elements(asList(args[2]))
	out := make([]heap.Handle, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			res := callProcSpec(e, args[0], []value.Value{elementToValue(h, x), elementToValue(h, y)})
			if res.IsControl() && res.Status != value.StatusOutput {
				return res
			}
			out = append(out, valueAsElement(h, res.Value))
		}
	}
	return value.OK(value.List(h.List(out...)))
}

func primForeach(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	elems := h.Elements(asList(args[1]))
	for _, el := range elems {
		res := callProcSpec(e, args[0], []value.Value{elementToValue(h, el)})
		if res.IsControl() && res.Status != value.StatusOutput {
			return res
		}
	}
	return value.NoneResult()
}
