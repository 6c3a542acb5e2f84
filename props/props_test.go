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

package props

import (
	"testing"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

func TestPPropGPropRoundTrip(t *testing.T) {
	h := heap.New()
	s := New(h)

	s.PProp("turtle", "color", value.Word(h.Intern("red")))
	v, ok := s.GProp("turtle", "color")
	if !ok || h.Text(v.AsHandle()) != "red" {
		t.Fatalf("GProp = %v, %v; want red, true", v, ok)
	}
	// case-insensitive on both name and property name
	v, ok = s.GProp("TURTLE", "COLOR")
	if !ok || h.Text(v.AsHandle()) != "red" {
		t.Fatalf("case-insensitive GProp failed: %v, %v", v, ok)
	}
}

func TestPPropOverwritesInPlace(t *testing.T) {
	h := heap.New()
	s := New(h)
	s.PProp("t", "a", value.Number(1))
	s.PProp("t", "b", value.Number(2))
	s.PProp("t", "a", value.Number(99))

	list := s.PList("t")
	// order preserved: a, b (a's value updated, position unchanged)
	if len(list) != 4 {
		t.Fatalf("PList length = %d; want 4", len(list))
	}
	if h.Text(list[0].AsHandle()) != "a" || list[1].AsNumber() != 99 {
		t.Fatalf("expected a's position preserved with updated value, got %v", list)
	}
}

func TestRemProp(t *testing.T) {
	h := heap.New()
	s := New(h)
	s.PProp("t", "a", value.Number(1))
	s.RemProp("t", "a")
	if _, ok := s.GProp("t", "a"); ok {
		t.Fatal("expected property removed")
	}
}

func TestGPropMissingIsNotOK(t *testing.T) {
	h := heap.New()
	s := New(h)
	if _, ok := s.GProp("nothing", "here"); ok {
		t.Fatal("expected missing property to report ok=false")
	}
}

func TestEraseName(t *testing.T) {
	h := heap.New()
	s := New(h)
	s.PProp("t", "a", value.Number(1))
	s.EraseName("t")
	if list := s.PList("t"); len(list) != 0 {
		t.Fatalf("PList after EraseName = %v; want empty", list)
	}
}
