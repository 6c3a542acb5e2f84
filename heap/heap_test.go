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

package heap

import "testing"

func TestInternUniqueness(t *testing.T) {
	h := New()
	cases := [][2]string{
		{"foo", "foo"},
		{"Foo", "foo"},
		{"bar", "baz"},
	}
	for _, c := range cases {
		a := h.Intern(c[0])
		b := h.Intern(c[1])
		want := c[0] == c[1]
		got := a == b
		if got != want {
			t.Errorf("Intern(%q) == Intern(%q): got %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	h := New()
	want := h.Intern("Forward")
	got, ok := h.Lookup("FORWARD")
	if !ok || got != want {
		t.Fatalf("Lookup(FORWARD) = %v, %v; want %v, true", got, ok, want)
	}
}

func TestConsAndList(t *testing.T) {
	h := New()
	a := h.Intern("a")
	b := h.Intern("b")
	c := h.Intern("c")
	l := h.List(a, b, c)
	if n := h.Count(l); n != 3 {
		t.Fatalf("Count(list of 3) = %d, want 3", n)
	}
	els := h.Elements(l)
	if len(els) != 3 || els[0] != a || els[1] != b || els[2] != c {
		t.Fatalf("Elements = %v", els)
	}
}

func TestListLengthPreservation(t *testing.T) {
	h := New()
	x := h.Intern("x")
	base := h.List(h.Intern("a"), h.Intern("b"))
	baseLen := h.Count(base)

	fput := h.Cons(x, base)
	if got := h.Count(fput); got != baseLen+1 {
		t.Errorf("count(fput x L) = %d, want %d", got, baseLen+1)
	}

	// lput appends at the tail: walk to the last cons and extend it with a
	// fresh cell, mirroring the evaluator's lput implementation.
	last := base
	for h.Cdr(last).IsCons() {
		last = h.Cdr(last)
	}
	h.SetCdr(last, h.Cons(x, NIL))
	if got := h.Count(base); got != baseLen+1 {
		t.Errorf("count(lput x L) = %d, want %d", got, baseLen+1)
	}
}

func TestCompactDropsUnreachable(t *testing.T) {
	h := New()
	kept := h.List(h.Intern("a"), h.Intern("b"))
	_ = h.List(h.Intern("orphan")) // never rooted, should be collected

	h.AddRoot(func() []Handle { return []Handle{kept} })
	remap := h.Compact()

	newKept, ok := remap[kept]
	if !ok {
		t.Fatalf("kept list not present in remap table")
	}
	if got := h.Count(newKept); got != 2 {
		t.Errorf("Count(remapped kept) = %d, want 2", got)
	}
	if stats := h.Stats(); stats.Cons != 2 {
		t.Errorf("Stats().Cons = %d, want 2 (orphan cell collected)", stats.Cons)
	}
}
