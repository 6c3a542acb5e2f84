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

package frame

import (
	"testing"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

func TestPushDeclareGetPop(t *testing.T) {
	h := heap.New()
	s := New(0)

	f, err := s.Push(h.Intern("p"))
	if err != nil {
		t.Fatal(err)
	}
	name := h.Intern("x")
	if err := s.Declare(f, name, value.Number(3)); err != nil {
		t.Fatal(err)
	}
	v, ok := s.Get(f, name)
	if !ok || v.AsNumber() != 3 {
		t.Fatalf("Get = %v, %v; want 3, true", v, ok)
	}

	s.Pop()
	if s.Depth() != 0 {
		t.Fatalf("Depth after Pop = %d; want 0", s.Depth())
	}
}

// TestFrameBalance is spec.md §8 invariant 5: every Push is matched by
// exactly one Pop and the arena returns to its prior size.
func TestFrameBalance(t *testing.T) {
	h := heap.New()
	s := New(0)

	f1, _ := s.Push(h.Intern("a"))
	s.Declare(f1, h.Intern("x"), value.Number(1))
	f2, _ := s.Push(h.Intern("b"))
	s.Declare(f2, h.Intern("y"), value.Number(2))
	s.Declare(f2, h.Intern("z"), value.Number(3))

	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("Depth = %d; want 1", s.Depth())
	}
	if _, ok := s.Get(f1, h.Intern("x")); !ok {
		t.Fatal("outer frame binding lost after inner Pop")
	}
	s.Pop()
	if s.Depth() != 0 || len(s.bindings) != 0 {
		t.Fatalf("stack not empty after both pops: depth=%d bindings=%d", s.Depth(), len(s.bindings))
	}
}

func TestDeclareRejectsNonTopFrame(t *testing.T) {
	h := heap.New()
	s := New(0)
	outer, _ := s.Push(h.Intern("outer"))
	s.Push(h.Intern("inner"))

	if err := s.Declare(outer, h.Intern("x"), value.Number(1)); err == nil {
		t.Fatal("expected error declaring into non-top frame")
	}
}

func TestLookupScansOutwardThroughCallChain(t *testing.T) {
	h := heap.New()
	s := New(0)
	name := h.Intern("a")

	f1, _ := s.Push(h.Intern("f"))
	s.Declare(f1, name, value.Number(99))
	f2, _ := s.Push(h.Intern("g"))

	found, ok := s.Lookup(f2, name)
	if !ok || found != f1 {
		t.Fatalf("Lookup from g = %d, %v; want frame %d, true", found, ok, f1)
	}
}

// TestReuseBoundsArenaGrowth is spec.md §8 invariant 6: a self tail call
// must not grow the arena across iterations.
func TestReuseBoundsArenaGrowth(t *testing.T) {
	h := heap.New()
	s := New(0)
	proc := h.Intern("loop")

	f, _ := s.Push(proc)
	s.Declare(f, h.Intern("n"), value.Number(1))
	sizeAfterFirst := len(s.bindings)

	for i := 0; i < 1000; i++ {
		if err := s.Reuse(proc); err != nil {
			t.Fatal(err)
		}
		s.Declare(f, h.Intern("n"), value.Number(float32(i)))
	}
	if len(s.bindings) != sizeAfterFirst {
		t.Fatalf("arena grew across tail calls: %d != %d", len(s.bindings), sizeAfterFirst)
	}
	if s.Depth() != 1 {
		t.Fatalf("Depth after repeated Reuse = %d; want 1", s.Depth())
	}
}

func TestStackOverflow(t *testing.T) {
	h := heap.New()
	s := New(2)
	f, err := s.Push(h.Intern("p"))
	if err != nil {
		t.Fatal(err)
	}
	s.Declare(f, h.Intern("a"), value.Number(1))
	s.Declare(f, h.Intern("b"), value.Number(2))
	if _, err := s.Push(h.Intern("q")); err != ErrStackOverflow {
		t.Fatalf("expected ErrStackOverflow, got %v", err)
	}
}

func TestRepCountAndTestFlagAreScopedPerFrame(t *testing.T) {
	h := heap.New()
	s := New(0)
	f1, _ := s.Push(h.Intern("f"))
	s.SetRepCount(f1, 3)
	s.SetTest(f1, true)

	f2, _ := s.Push(h.Intern("g"))
	if n := s.RepCount(f2); n != 0 {
		t.Fatalf("fresh frame RepCount = %d; want 0", n)
	}
	if _, valid := s.Test(f2); valid {
		t.Fatal("fresh frame should have no valid test result")
	}

	s.Pop()
	if n := s.RepCount(f1); n != 3 {
		t.Fatalf("f RepCount after g returns = %d; want 3", n)
	}
	if result, valid := s.Test(f1); !valid || !result {
		t.Fatalf("f test flag after g returns = %v, %v; want true, true", result, valid)
	}
}
