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

// Package heap implements the process-wide node arena shared by the lexer
// and evaluator: interned words (atoms) and cons cells, both addressed by
// opaque handles rather than pointers, so that frames, variables and
// property lists can store a Handle as a plain int and never hold a Go
// pointer into the arena.
package heap

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Handle addresses a single node in the heap: either an atom or a cons
// cell. The zero value is not a valid handle; use NIL for the empty list.
type Handle int32

const (
	// NIL is the distinguished handle for the empty list. It is reserved
	// and distinct from any atom or cons handle.
	NIL Handle = 0
)

const (
	tagAtom = 1 << iota
	tagCons
)

// the low bits of a Handle select the node kind; the remaining bits index
// into the relevant arena. This mirrors the teacher's Cell-as-opcode-or-data
// dual use: one small integer type serves two purposes depending on context.
const tagBits = 2
const tagMask = Handle(1<<tagBits) - 1

func makeHandle(tag Handle, index int) Handle {
	return Handle(index<<tagBits) | tag
}

func (h Handle) tag() Handle { return h & tagMask }
func (h Handle) index() int  { return int(h >> tagBits) }

// IsNil reports whether h is the empty list.
func (h Handle) IsNil() bool { return h == NIL }

// IsAtom reports whether h addresses an interned word.
func (h Handle) IsAtom() bool { return h != NIL && h.tag() == tagAtom }

// IsCons reports whether h addresses a cons cell.
func (h Handle) IsCons() bool { return h != NIL && h.tag() == tagCons }

type atomNode struct {
	text string
}

type consNode struct {
	car, cdr Handle
}

// Heap is a process-wide arena of atoms and cons cells. The zero value is
// not ready for use; call New.
type Heap struct {
	atoms     []atomNode
	atomIndex map[string]Handle // keyed by the case-folded, NFC-normalised text
	cons      []consNode
	roots     []RootFunc
}

// RootFunc returns the set of handles a collaborator (variables, frames,
// properties, procedures, pause buffers...) currently holds live. AddRoot
// registers one per collaborator; Mark calls every registered RootFunc to
// build the reachable set before Compact reclaims the rest.
type RootFunc func() []Handle

// New creates an empty Heap.
func New() *Heap {
	return &Heap{
		atomIndex: make(map[string]Handle),
	}
}

// foldKey returns the case-insensitive lookup key for an atom's text: NFC
// normalisation followed by Unicode case folding, so that interning is
// case-sensitive on content (two byte-distinct spellings get distinct
// handles) while lookup by caller-typed text is case-insensitive as
// required by spec.md §3.1.
var foldKey = cases.Fold()

func normalizeKey(s string) string {
	return foldKey.String(norm.NFC.String(s))
}

// Intern returns the handle for the atom spelling s, creating one if this
// exact byte sequence has never been interned. Interning is case-sensitive:
// "Foo" and "foo" receive distinct handles, but both are found by a
// case-insensitive Lookup.
func (h *Heap) Intern(s string) Handle {
	if len(s) > 255 {
		s = s[:255]
	}
	key := "=" + s // exact key, disjoint from the folded index below
	if hnd, ok := h.atomIndex[key]; ok {
		return hnd
	}
	idx := len(h.atoms)
	h.atoms = append(h.atoms, atomNode{text: s})
	hnd := makeHandle(tagAtom, idx)
	h.atomIndex[key] = hnd
	fk := normalizeKey(s)
	if _, exists := h.atomIndex[fk]; !exists {
		h.atomIndex[fk] = hnd
	}
	return hnd
}

// Lookup finds the handle of an already-interned atom by case-insensitive
// text comparison. It does not create a new atom.
func (h *Heap) Lookup(s string) (Handle, bool) {
	if hnd, ok := h.atomIndex["="+s]; ok {
		return hnd, true
	}
	hnd, ok := h.atomIndex[normalizeKey(s)]
	return hnd, ok
}

// Canonical returns the single handle shared by every case-insensitive
// spelling of s, interning the folded form if needed. Name-keyed stores
// (variables, properties, procedures, primitives) use this as their map
// key instead of the exact-spelling handle Intern returns, so that
// "Forward", "FORWARD" and "forward" all resolve to one binding.
func (h *Heap) Canonical(s string) Handle {
	return h.Intern(normalizeKey(s))
}

// Text returns the interned text for an atom handle.
func (h *Heap) Text(hnd Handle) string {
	if !hnd.IsAtom() {
		return ""
	}
	return h.atoms[hnd.index()].text
}

// EqualFold reports whether two atom handles spell the same word under
// case-insensitive comparison.
func (h *Heap) EqualFold(a, b Handle) bool {
	if a == b {
		return true
	}
	if !a.IsAtom() || !b.IsAtom() {
		return false
	}
	return normalizeKey(h.Text(a)) == normalizeKey(h.Text(b))
}

// Cons allocates a new cons cell (car . cdr) and returns its handle. cdr
// must be NIL or a cons handle; car may address any node.
func (h *Heap) Cons(car, cdr Handle) Handle {
	idx := len(h.cons)
	h.cons = append(h.cons, consNode{car: car, cdr: cdr})
	return makeHandle(tagCons, idx)
}

// Car returns the first element of a cons cell. Calling Car on NIL or an
// atom is a programming error and panics, mirroring the teacher's direct
// slice indexing in mem.go: callers are expected to check IsCons/IsNil
// first, exactly as vm.Instance callers check port numbers before use.
func (h *Heap) Car(hnd Handle) Handle {
	return h.cons[hnd.index()].car
}

// Cdr returns the second element (tail) of a cons cell.
func (h *Heap) Cdr(hnd Handle) Handle {
	return h.cons[hnd.index()].cdr
}

// SetCar mutates the car field of an existing cons cell in place. Used by
// list-builders that need to patch a cell after allocation (e.g. the tail
// append used by lput/sentence).
func (h *Heap) SetCar(hnd, car Handle) {
	h.cons[hnd.index()].car = car
}

// SetCdr mutates the cdr field of an existing cons cell in place.
func (h *Heap) SetCdr(hnd, cdr Handle) {
	h.cons[hnd.index()].cdr = cdr
}

// List builds a proper list from the given handles, in order, terminated
// by NIL. List(h) = NIL.
func (h *Heap) List(items ...Handle) Handle {
	result := NIL
	for i := len(items) - 1; i >= 0; i-- {
		result = h.Cons(items[i], result)
	}
	return result
}

// Count returns the number of cons cells in the top-level spine of a list.
// Count(NIL) = 0. A non-list handle counts as a single element, per
// spec.md §8's count_flat convention used by the sentence law.
func (h *Heap) Count(hnd Handle) int {
	if !hnd.IsCons() {
		if hnd.IsNil() {
			return 0
		}
		return 1
	}
	n := 0
	for cur := hnd; cur.IsCons(); cur = h.Cdr(cur) {
		n++
	}
	return n
}

// Elements returns the top-level elements of a list as a slice, in order.
func (h *Heap) Elements(hnd Handle) []Handle {
	var out []Handle
	for cur := hnd; cur.IsCons(); cur = h.Cdr(cur) {
		out = append(out, h.Car(cur))
	}
	return out
}

// AddRoot registers a collaborator's root-marking function. Called once per
// long-lived collaborator (variables, frames, properties, procedures) at
// construction time.
func (h *Heap) AddRoot(fn RootFunc) {
	h.roots = append(h.roots, fn)
}

// Mark walks every registered root and returns the set of handles reachable
// from them, including everything those handles transitively reference.
// Atoms carry no outgoing references; only cons spines need a transitive
// walk. Per spec.md §9, no cons cycle can be built through exposed
// primitives, so a plain visited-set walk terminates without cycle
// tracking.
func (h *Heap) Mark() map[Handle]bool {
	live := make(map[Handle]bool)
	var walk func(Handle)
	walk = func(hnd Handle) {
		if hnd.IsNil() || live[hnd] {
			return
		}
		live[hnd] = true
		if hnd.IsCons() {
			walk(h.Car(hnd))
			walk(h.Cdr(hnd))
		}
	}
	for _, root := range h.roots {
		for _, hnd := range root() {
			walk(hnd)
		}
	}
	return live
}

// Stats reports the current arena sizes, mainly for OUT_OF_SPACE diagnostics
// and tests.
type Stats struct {
	Atoms int
	Cons  int
}

// Stats returns the current heap size.
func (h *Heap) Stats() Stats {
	return Stats{Atoms: len(h.atoms), Cons: len(h.cons)}
}

// Compact performs a copying collection of the cons arena: cells unreachable
// from the current roots (per Mark) are dropped and the survivors are
// relocated to a fresh, densely packed arena. Atoms are never reclaimed —
// they are small, immutable, and frequently re-referenced by name lookup, so
// compaction only pays for itself on the cons spine.
//
// Compact returns a remap table; every collaborator that registered a root
// function (and any other code holding a cons Handle across the call) must
// translate its stored handles through remap immediately after Compact
// returns, before making further heap calls. This is the "explicit
// mark-roots protocol" of spec.md §3.1/§9: there is no implicit GC, a caller
// under memory pressure opts in and is responsible for fixing up its own
// references.
func (h *Heap) Compact() (remap map[Handle]Handle) {
	live := h.Mark()
	remap = make(map[Handle]Handle, len(live))
	newCons := make([]consNode, 0, len(live))

	// assign new addresses to every live cons cell, preserving relative
	// order so that iteration order is stable for callers relying on it.
	for idx := range h.cons {
		old := makeHandle(tagCons, idx)
		if !live[old] {
			continue
		}
		remap[old] = makeHandle(tagCons, len(newCons))
		newCons = append(newCons, h.cons[idx])
	}
	for i := range newCons {
		newCons[i].car = remapHandle(remap, newCons[i].car)
		newCons[i].cdr = remapHandle(remap, newCons[i].cdr)
	}
	h.cons = newCons
	return remap
}

func remapHandle(remap map[Handle]Handle, hnd Handle) Handle {
	if hnd.IsNil() || hnd.IsAtom() {
		return hnd
	}
	if nh, ok := remap[hnd]; ok {
		return nh
	}
	return hnd
}
