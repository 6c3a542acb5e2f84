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

package vars

import (
	"testing"

	"github.com/logoscript/logo/frame"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

func TestGlobalMakeAndGet(t *testing.T) {
	h := heap.New()
	s := New(h, frame.New(0))

	s.Set(-1, "a", value.Number(1))
	v, ok := s.Get(-1, "a")
	if !ok || v.AsNumber() != 1 {
		t.Fatalf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	// case-insensitive resolution
	v, ok = s.Get(-1, "A")
	if !ok || v.AsNumber() != 1 {
		t.Fatalf("Get(A) = %v, %v; want 1, true", v, ok)
	}
}

func TestUnboundNameFails(t *testing.T) {
	h := heap.New()
	s := New(h, frame.New(0))
	if _, ok := s.Get(-1, "nope"); ok {
		t.Fatal("expected unbound name to fail")
	}
}

// TestLocalShadowsAcrossCallChain reproduces spec.md §8's canonical
// dynamic-scope scenario:
//
//	make "a 1
//	to g
//	  output :a
//	end
//	to f
//	  local "a
//	  make "a 99
//	  output g
//	end
//	f => 99
//
// g's own frame has no local "a", so resolution must walk outward through
// f's still-active frame (not just "current frame then global") to find
// the shadowed binding f rebound with make.
func TestLocalShadowsAcrossCallChain(t *testing.T) {
	h := heap.New()
	fr := frame.New(0)
	s := New(h, fr)

	s.SetGlobal("a", value.Number(1))

	fIdx, err := fr.Push(h.Intern("f"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeclareLocal(fIdx, "a"); err != nil {
		t.Fatal(err)
	}
	s.Set(fIdx, "a", value.Number(99))

	gIdx, err := fr.Push(h.Intern("g"))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := s.Get(gIdx, "a")
	if !ok || v.AsNumber() != 99 {
		t.Fatalf("Get(a) from g = %v, %v; want 99, true", v, ok)
	}

	fr.Pop() // g returns
	fr.Pop() // f returns

	v, ok = s.Get(-1, "a")
	if !ok || v.AsNumber() != 1 {
		t.Fatalf("global a after f returns = %v, %v; want 1, true (local shadow discarded)", v, ok)
	}
}

func TestDeclareLocalOnlyInTopFrame(t *testing.T) {
	h := heap.New()
	fr := frame.New(0)
	s := New(h, fr)

	outer, _ := fr.Push(h.Intern("outer"))
	_, _ = fr.Push(h.Intern("inner"))

	if err := s.DeclareLocal(outer, "x"); err == nil {
		t.Fatal("expected error declaring local in a non-top frame")
	}
}

func TestUnbind(t *testing.T) {
	h := heap.New()
	s := New(h, frame.New(0))
	s.SetGlobal("a", value.Number(5))
	s.Unbind("a")
	if _, ok := s.GetGlobal("a"); ok {
		t.Fatal("expected a to be unbound")
	}
}
