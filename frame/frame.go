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

// Package frame implements the procedure-call activation arena of
// spec.md §3.7: a LIFO, bump-allocated stack of frames, each owning a
// bindings segment that Variables (package vars) resolves names against.
// The allocator mirrors the teacher's vm.Instance data/address stacks —
// plain slices with an index-based top, extended in place rather than
// through per-call heap allocation.
package frame

import (
	"github.com/pkg/errors"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

// DefaultCapacity is the default arena size in bindings, loosely modelled
// on spec.md §3.7's 256 KiB budget (a Binding is a small, fixed-size
// struct, so this is an approximate cap rather than an exact byte count).
const DefaultCapacity = 256 * 1024 / 24

// ErrStackOverflow is returned by Push when the arena is exhausted; it maps
// to ErrCode OUT_OF_SPACE at the eval layer.
var ErrStackOverflow = errors.New("frame stack exhausted")

// Binding is one name/value pair local to a frame.
type Binding struct {
	Name  heap.Handle
	Value value.Value
}

// frameRec tracks one activation's identity and its bindings window.
type frameRec struct {
	// Proc names the procedure this frame activates (for error messages
	// and for TCO frame reuse); heap.NIL for the toplevel "frame" if ever
	// pushed.
	Proc heap.Handle
	// Start is the index into the shared bindings arena where this
	// frame's own bindings begin. The frame's bindings run from Start to
	// either the next frame's Start, or len(bindings) if this is the top
	// frame.
	Start int
	// RepCount is the 1-based iteration counter of the innermost active
	// repeat/forever/for body running in this frame (spec.md §4.3
	// REPCOUNT); 0 means "no loop active in this frame".
	RepCount int
	// TestValid/TestResult implement the per-procedure test flag (§9 Open
	// Questions: "test" is per-procedure, not module-global).
	TestValid  bool
	TestResult bool
}

// Stack is the activation-record arena. The zero value is not ready for
// use; call New.
type Stack struct {
	bindings []Binding
	frames   []frameRec
	capacity int
}

// New creates a Stack with the given binding capacity (0 selects
// DefaultCapacity).
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// Depth returns the number of active (pushed, not yet popped) frames.
func (s *Stack) Depth() int { return len(s.frames) }

// Push allocates a new frame for a call to proc and returns its index (the
// handle callers use with Pop/Declare/Get/Set). O(1) bump allocation.
func (s *Stack) Push(proc heap.Handle) (int, error) {
	if len(s.bindings) >= s.capacity {
		return -1, ErrStackOverflow
	}
	s.frames = append(s.frames, frameRec{Proc: proc, Start: len(s.bindings)})
	return len(s.frames) - 1, nil
}

// Pop discards the top frame and every binding it (and anything pushed
// above it) allocated, rewinding the arena to the frame's pre-call top.
// This is the frame-balance invariant of spec.md §8 invariant 5.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	top := s.frames[len(s.frames)-1]
	s.bindings = s.bindings[:top.Start]
	s.frames = s.frames[:len(s.frames)-1]
}

// Reuse implements tail-call optimisation (spec.md §4.3): it rewinds the
// top frame's own bindings (discarding the caller's locals, which are no
// longer reachable once the tail call takes over) and reassigns it to a
// new procedure in place, without growing the frame count. This is the
// "TCO bound" of spec.md §8 invariant 6: a self-tail-recursive procedure
// never grows the arena beyond its first activation.
func (s *Stack) Reuse(proc heap.Handle) error {
	if len(s.frames) == 0 {
		return errors.New("Reuse called with no active frame")
	}
	top := &s.frames[len(s.frames)-1]
	s.bindings = s.bindings[:top.Start]
	top.Proc = proc
	top.RepCount = 0
	top.TestValid = false
	return nil
}

func (s *Stack) frameEnd(idx int) int {
	if idx == len(s.frames)-1 {
		return len(s.bindings)
	}
	return s.frames[idx+1].Start
}

// Declare adds a new binding to the frame at idx, shadowing any existing
// binding of the same name in that frame. Only the top frame may be
// extended this way — "the most recent frame can be extended... provided
// no subsequent allocation has happened" (spec.md §3.7).
func (s *Stack) Declare(idx int, name heap.Handle, v value.Value) error {
	if idx != len(s.frames)-1 {
		return errors.Errorf("frame %d is not the top frame; cannot extend", idx)
	}
	s.bindings = append(s.bindings, Binding{Name: name, Value: v})
	return nil
}

// Lookup scans outward from frame idx through every enclosing (older, i.e.
// lower-indexed) active frame looking for name, implementing Logo's dynamic
// scoping per spec.md §9 ("a per-frame association list scanned outward").
// It returns the index of the frame where the binding lives and true, or
// (-1, false) if no frame holds it (the caller then consults global
// storage).
func (s *Stack) Lookup(idx int, name heap.Handle) (frameIdx int, ok bool) {
	for f := idx; f >= 0; f-- {
		end := s.frameEnd(f)
		for i := end - 1; i >= s.frames[f].Start; i-- {
			if s.bindings[i].Name == name {
				return f, true
			}
		}
	}
	return -1, false
}

func (s *Stack) slot(frameIdx int, name heap.Handle) int {
	end := s.frameEnd(frameIdx)
	for i := end - 1; i >= s.frames[frameIdx].Start; i-- {
		if s.bindings[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value bound to name in frame f (found via Lookup).
func (s *Stack) Get(f int, name heap.Handle) (value.Value, bool) {
	i := s.slot(f, name)
	if i < 0 {
		return value.None, false
	}
	return s.bindings[i].Value, true
}

// SetIn assigns v to name's existing binding in frame f (found via
// Lookup). It is a programming error to call SetIn for a name Lookup did
// not find in that frame.
func (s *Stack) SetIn(f int, name heap.Handle, v value.Value) {
	i := s.slot(f, name)
	if i >= 0 {
		s.bindings[i].Value = v
	}
}

// Proc returns the procedure identity of frame idx.
func (s *Stack) Proc(idx int) heap.Handle {
	if idx < 0 || idx >= len(s.frames) {
		return heap.NIL
	}
	return s.frames[idx].Proc
}

// RepCount returns and sets the innermost loop counter of frame idx,
// implementing spec.md §4.3's REPCOUNT/`for` save-restore behaviour.
func (s *Stack) RepCount(idx int) int {
	if idx < 0 || idx >= len(s.frames) {
		return 0
	}
	return s.frames[idx].RepCount
}

// SetRepCount updates the innermost loop counter of frame idx.
func (s *Stack) SetRepCount(idx, n int) {
	if idx >= 0 && idx < len(s.frames) {
		s.frames[idx].RepCount = n
	}
}

// Test returns the per-procedure test flag of frame idx (spec.md §9 Open
// Questions: implemented per-procedure, not module-global).
func (s *Stack) Test(idx int) (result, valid bool) {
	if idx < 0 || idx >= len(s.frames) {
		return false, false
	}
	return s.frames[idx].TestResult, s.frames[idx].TestValid
}

// SetTest sets the per-procedure test flag of frame idx.
func (s *Stack) SetTest(idx int, result bool) {
	if idx >= 0 && idx < len(s.frames) {
		s.frames[idx].TestResult = result
		s.frames[idx].TestValid = true
	}
}

// Roots returns every Value-carried heap.Handle currently reachable from
// the frame arena, for heap.Heap.AddRoot registration.
func (s *Stack) Roots() []heap.Handle {
	out := make([]heap.Handle, 0, len(s.bindings)*2)
	for _, b := range s.bindings {
		out = append(out, b.Name)
		switch b.Value.Kind() {
		case value.KindWord, value.KindList:
			out = append(out, b.Value.AsHandle())
		}
	}
	return out
}
