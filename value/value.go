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

// Package value defines the tagged value union that flows through the
// evaluator (spec.md §3.2) and the Result wrapper that carries an
// evaluation outcome together with its control-flow status (§3.3).
package value

import (
	"strconv"

	"github.com/logoscript/logo/heap"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	// KindNone is a command's absence of output.
	KindNone Kind = iota
	// KindNumber holds a finite 32-bit float.
	KindNumber
	// KindWord holds a handle to an interned atom.
	KindWord
	// KindList holds a handle to a cons cell or heap.NIL.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindWord:
		return "word"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a single Logo datum: None, a Number, a Word or a List. The zero
// Value is None.
type Value struct {
	kind   Kind
	number float32
	handle heap.Handle
}

// None is the absence of output.
var None = Value{kind: KindNone}

// Number wraps a finite float as a Value.
func Number(n float32) Value {
	return Value{kind: KindNumber, number: n}
}

// Word wraps an atom handle as a Value.
func Word(h heap.Handle) Value {
	return Value{kind: KindWord, handle: h}
}

// List wraps a cons/NIL handle as a Value.
func List(h heap.Handle) Value {
	return Value{kind: KindList, handle: h}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v carries no value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// AsNumber returns the numeric payload. The caller must check Kind first;
// calling this on a non-Number Value returns 0.
func (v Value) AsNumber() float32 {
	if v.kind != KindNumber {
		return 0
	}
	return v.number
}

// AsHandle returns the heap handle payload for Word and List values.
func (v Value) AsHandle() heap.Handle {
	return v.handle
}

// Text renders v as the text surface a user would type to produce it,
// using h to resolve Word/List handles. Numbers format per FormatNumber so
// that the round-trip law of spec.md §8 holds.
func (v Value) Text(h *heap.Heap) string {
	switch v.kind {
	case KindNone:
		return ""
	case KindNumber:
		return FormatNumber(v.number)
	case KindWord:
		return h.Text(v.handle)
	case KindList:
		return ListText(h, v.handle)
	default:
		return ""
	}
}

// ListText renders a list handle using Logo's bracketed surface syntax,
// recursing into nested lists.
func ListText(h *heap.Heap, hnd heap.Handle) string {
	if hnd.IsNil() {
		return "[]"
	}
	if hnd.IsAtom() {
		return h.Text(hnd)
	}
	out := "["
	for cur := hnd; cur.IsCons(); cur = h.Cdr(cur) {
		if out != "[" {
			out += " "
		}
		out += ListText(h, h.Car(cur))
	}
	return out + "]"
}

// FormatNumber renders a float the way the lexer would need to re-parse it:
// integral values with no fractional part print without a decimal point so
// that integers round-trip exactly (spec.md §8).
func FormatNumber(n float32) string {
	if n == float32(int64(n)) && n < 1e15 && n > -1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 32)
}

// ParseNumber parses Logo numeric source text into a float32, following the
// grammar of spec.md §4.1: (-|+)?digits(.digits)?([eE][+-]?digits)?.
func ParseNumber(s string) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	if f != f || f > 3.4e38 || f < -3.4e38 { // NaN/overflow guard, see ParseFloat docs
		return 0, false
	}
	return float32(f), true
}

// Truthy implements spec.md §3.2's boolean coercion: a Value is
// truthy-as-boolean only if it is a word spelling "true" or "false"
// (case-insensitive); ok is false for anything else.
func Truthy(h *heap.Heap, v Value) (b bool, ok bool) {
	if v.kind != KindWord {
		return false, false
	}
	t, isT := h.Lookup("true")
	f, isF := h.Lookup("false")
	if isT && h.EqualFold(v.handle, t) {
		return true, true
	}
	if isF && h.EqualFold(v.handle, f) {
		return false, true
	}
	// compare text directly in case "true"/"false" were never interned yet
	switch text := h.Text(v.handle); {
	case eqFold(text, "true"):
		return true, true
	case eqFold(text, "false"):
		return false, true
	default:
		return false, false
	}
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// AsNumberCoerce implements the number-coercion rule of spec.md §3.2: a
// Number passes through; a Word whose full text parses as a float
// coerces; anything else fails.
func AsNumberCoerce(h *heap.Heap, v Value) (float32, bool) {
	switch v.kind {
	case KindNumber:
		return v.number, true
	case KindWord:
		return ParseNumber(h.Text(v.handle))
	default:
		return 0, false
	}
}

// Equal implements Logo's structural equality (`equalp`): numbers compare
// by value, words by case-insensitive text, lists element-wise. Per
// spec.md §9, no cycle protection is needed because exposed primitives
// cannot construct a cons cycle.
func Equal(h *heap.Heap, a, b Value) bool {
	if a.kind != b.kind {
		// a number and a word that happens to parse to the same number
		// are still distinct values in Logo's equalp.
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindNumber:
		return a.number == b.number
	case KindWord:
		return h.EqualFold(a.handle, b.handle)
	case KindList:
		return equalList(h, a.handle, b.handle)
	default:
		return false
	}
}

func equalList(h *heap.Heap, a, b heap.Handle) bool {
	for {
		if a == b {
			return true
		}
		aIsCons, bIsCons := a.IsCons(), b.IsCons()
		if !aIsCons || !bIsCons {
			if a.IsNil() && b.IsNil() {
				return true
			}
			if aIsCons != bIsCons {
				return false
			}
			return h.EqualFold(a, b)
		}
		if !Equal(h, nodeValue(h, h.Car(a)), nodeValue(h, h.Car(b))) {
			return false
		}
		a, b = h.Cdr(a), h.Cdr(b)
	}
}

// nodeValue classifies a raw heap handle stored inside a list back into a
// Value, since list elements are stored as bare handles without a kind tag
// (a nested list is itself a cons/NIL handle, indistinguishable at the heap
// level from an atom only by IsCons/IsAtom).
func nodeValue(h *heap.Heap, hnd heap.Handle) Value {
	if hnd.IsAtom() {
		return Word(hnd)
	}
	return List(hnd)
}
