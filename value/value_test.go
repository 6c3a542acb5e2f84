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

import (
	"testing"

	"github.com/logoscript/logo/heap"
)

func TestTruthy(t *testing.T) {
	h := heap.New()
	trueWord := Word(h.Intern("True"))
	falseWord := Word(h.Intern("FALSE"))
	other := Word(h.Intern("maybe"))

	if b, ok := Truthy(h, trueWord); !ok || !b {
		t.Errorf("Truthy(True) = %v, %v; want true, true", b, ok)
	}
	if b, ok := Truthy(h, falseWord); !ok || b {
		t.Errorf("Truthy(FALSE) = %v, %v; want false, true", b, ok)
	}
	if _, ok := Truthy(h, other); ok {
		t.Errorf("Truthy(maybe) should not be ok")
	}
	if _, ok := Truthy(h, Number(1)); ok {
		t.Errorf("Truthy(1) should not be ok")
	}
}

func TestNumberRoundTrip(t *testing.T) {
	for _, n := range []float32{0, 1, -1, 42, 720, 3.5, -0.25} {
		text := FormatNumber(n)
		got, ok := ParseNumber(text)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed", text)
		}
		if got != n {
			t.Errorf("round trip %v -> %q -> %v", n, text, got)
		}
	}
	if FormatNumber(720) != "720" {
		t.Errorf("FormatNumber(720) = %q, want integral form", FormatNumber(720))
	}
}

func TestAsNumberCoerce(t *testing.T) {
	h := heap.New()
	if n, ok := AsNumberCoerce(h, Number(5)); !ok || n != 5 {
		t.Errorf("coerce Number(5) = %v, %v", n, ok)
	}
	if n, ok := AsNumberCoerce(h, Word(h.Intern("3.5"))); !ok || n != 3.5 {
		t.Errorf("coerce Word(3.5) = %v, %v", n, ok)
	}
	if _, ok := AsNumberCoerce(h, Word(h.Intern("abc"))); ok {
		t.Errorf("coerce Word(abc) should fail")
	}
}

func TestEqualList(t *testing.T) {
	h := heap.New()
	l1 := h.List(h.Intern("a"), h.Intern("B"))
	l2 := h.List(h.Intern("A"), h.Intern("b"))
	if !Equal(h, List(l1), List(l2)) {
		t.Errorf("lists should compare equal case-insensitively")
	}
	l3 := h.List(h.Intern("a"), h.Intern("c"))
	if Equal(h, List(l1), List(l3)) {
		t.Errorf("lists with different elements should not be equal")
	}
}

func TestSentenceFlattening(t *testing.T) {
	h := heap.New()
	a := h.List(h.Intern("1"), h.Intern("2"))
	b := h.Intern("3") // a non-list counts as 1 per count_flat
	countFlat := func(hnd heap.Handle) int {
		if hnd.IsCons() || hnd.IsNil() {
			return h.Count(hnd)
		}
		return 1
	}
	// sentence concatenates top-level elements of list args and appends
	// non-list args whole.
	sentence := h.List(append(h.Elements(a), b)...)
	if got, want := h.Count(sentence), countFlat(a)+countFlat(b); got != want {
		t.Errorf("count(sentence A B) = %d, want %d", got, want)
	}
}
