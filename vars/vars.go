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

// Package vars implements Logo's dynamically-scoped variable storage of
// spec.md §3.4: a global store plus the per-frame binding arrays of
// package frame, resolved by scanning the active call chain outward
// before falling back to global.
package vars

import (
	"github.com/pkg/errors"

	"github.com/logoscript/logo/frame"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

// errLocalAtToplevel is returned by DeclareLocal when frameIdx is
// negative: there is no active frame to scope the binding to.
var errLocalAtToplevel = errors.New("local can only be used inside a procedure")

// Store is the variable name space: a global map plus a reference to the
// frame arena that holds dynamic (per-activation) bindings.
type Store struct {
	h        *heap.Heap
	frames   *frame.Stack
	global   map[heap.Handle]value.Value
	globalOK map[heap.Handle]bool // distinguishes "bound to None" from "unbound"
}

// New creates a Store backed by h for name canonicalisation and frames for
// dynamic scoping.
func New(h *heap.Heap, frames *frame.Stack) *Store {
	s := &Store{
		h:      h,
		frames: frames,
		global: make(map[heap.Handle]value.Value),
	}
	h.AddRoot(s.roots)
	return s
}

func (s *Store) roots() []heap.Handle {
	out := make([]heap.Handle, 0, len(s.global)*2)
	for name, v := range s.global {
		out = append(out, name)
		switch v.Kind() {
		case value.KindWord, value.KindList:
			out = append(out, v.AsHandle())
		}
	}
	return out
}

// key canonicalises a variable name to the case-insensitive handle used to
// key every binding, per heap.Canonical.
func (s *Store) key(name string) heap.Handle {
	return s.h.Canonical(name)
}

// Get resolves name per spec.md §3.4: scan the active frame chain outward
// starting at frameIdx, then fall back to the global store. ok is false if
// the name is unbound anywhere (the caller raises an UNBOUND_NAME error).
func (s *Store) Get(frameIdx int, name string) (v value.Value, ok bool) {
	k := s.key(name)
	if f, found := s.frames.Lookup(frameIdx, k); found {
		// a local declared but not yet made has no value
		v, ok = s.frames.Get(f, k)
		return v, ok && !v.IsNone()
	}
	v, ok = s.global[k]
	return v, ok
}

// Set implements spec.md §3.4's make semantics: "creates a binding in the
// nearest enclosing scope that already holds the name, otherwise in
// global" (Logo's dynamic scoping, not lexical — the search walks the
// active call chain, never the caller's source-text nesting).
func (s *Store) Set(frameIdx int, name string, v value.Value) {
	k := s.key(name)
	if f, found := s.frames.Lookup(frameIdx, k); found {
		s.frames.SetIn(f, k, v)
		return
	}
	s.global[k] = v
}

// DeclareLocal implements spec.md §3.4's local: it adds a new, initially
// unbound-to-a-value shadowing binding in frameIdx's own frame, so that a
// subsequent Get/Set inside the same activation (and any procedure it
// calls) finds this frame before falling through to an outer scope. Per
// the local semantics of most Logo dialects, the binding starts with no
// value; a later make is required before Get succeeds.
func (s *Store) DeclareLocal(frameIdx int, name string) error {
	if frameIdx < 0 {
		return errLocalAtToplevel
	}
	k := s.key(name)
	return s.frames.Declare(frameIdx, k, value.None)
}

// A negative frameIdx means no frame is active at all; DeclareLocal
// rejects it rather than appending an orphaned binding. The eval
// package's Interp keeps a permanent frame 0, so its top-level `local`
// and `for` declare into that frame and never take this path.

// SetGlobal forces a binding directly into the global store, bypassing
// frame-chain shadowing. Used by top-level make outside any procedure
// call and by primitives that are documented to always affect globals
// (e.g. the REPL's bookkeeping variables).
func (s *Store) SetGlobal(name string, v value.Value) {
	s.global[s.key(name)] = v
}

// GetGlobal reads directly from the global store, ignoring any frame
// shadowing. ok is false if name has never been made globally.
func (s *Store) GetGlobal(name string) (v value.Value, ok bool) {
	v, ok = s.global[s.key(name)]
	return v, ok
}

// IsBound reports whether name resolves to a binding anywhere in the
// chain starting at frameIdx, without raising an error (used by the
// "name?" predicate primitive).
func (s *Store) IsBound(frameIdx int, name string) bool {
	_, ok := s.Get(frameIdx, name)
	return ok
}

// Names returns every globally-bound variable name's canonical handle, for
// the "variables" and "global" introspection primitives.
func (s *Store) Names() []heap.Handle {
	out := make([]heap.Handle, 0, len(s.global))
	for k := range s.global {
		out = append(out, k)
	}
	return out
}

// Unbind removes a global binding entirely (the `erase`/`ern` primitive
// family applied to a variable name). Frame-local bindings are discarded
// automatically on frame.Stack.Pop and are never targeted here.
func (s *Store) Unbind(name string) {
	delete(s.global, s.key(name))
}
