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

// Package props implements Logo property lists (spec.md §3.5): every name
// owns an ordered sequence of (property-name, value) pairs, independent of
// that name's variable binding and procedure definition.
package props

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

type entry struct {
	key heap.Handle
	val value.Value
}

// Store maps a canonical name handle to its ordered property list.
type Store struct {
	h     *heap.Heap
	lists map[heap.Handle][]entry
}

// New creates an empty property-list store.
func New(h *heap.Heap) *Store {
	s := &Store{h: h, lists: make(map[heap.Handle][]entry)}
	h.AddRoot(s.roots)
	return s
}

func (s *Store) roots() []heap.Handle {
	var out []heap.Handle
	for name, list := range s.lists {
		out = append(out, name)
		for _, e := range list {
			out = append(out, e.key)
			switch e.val.Kind() {
			case value.KindWord, value.KindList:
				out = append(out, e.val.AsHandle())
			}
		}
	}
	return out
}

func (s *Store) key(name string) heap.Handle { return s.h.Canonical(name) }

// PProp sets property propName's value on name, appending it to the end of
// name's property list if it is new, or overwriting it in place (keeping
// its original position) if it already exists.
func (s *Store) PProp(name, propName string, v value.Value) {
	n, p := s.key(name), s.key(propName)
	list := s.lists[n]
	for i := range list {
		if list[i].key == p {
			list[i].val = v
			return
		}
	}
	s.lists[n] = append(list, entry{key: p, val: v})
}

// GProp returns propName's value on name. ok is false if name has no such
// property (the caller's primitive returns the empty list, per most Logo
// dialects' gprop convention, rather than raising an error).
func (s *Store) GProp(name, propName string) (v value.Value, ok bool) {
	n, p := s.key(name), s.key(propName)
	for _, e := range s.lists[n] {
		if e.key == p {
			return e.val, true
		}
	}
	return value.None, false
}

// RemProp deletes propName from name's property list, if present.
func (s *Store) RemProp(name, propName string) {
	n, p := s.key(name), s.key(propName)
	list := s.lists[n]
	for i := range list {
		if list[i].key == p {
			s.lists[n] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// PList returns name's property list flattened as alternating
// (propName, value) heap handles, in insertion order, for the `plist`
// primitive to assemble into a Logo list value.
func (s *Store) PList(name string) []value.Value {
	list := s.lists[s.key(name)]
	out := make([]value.Value, 0, len(list)*2)
	for _, e := range list {
		out = append(out, value.Word(e.key), e.val)
	}
	return out
}

// EraseName discards name's entire property list (the `plist`-clearing
// form of `erase`/`ern` applied to a plist name).
func (s *Store) EraseName(name string) {
	delete(s.lists, s.key(name))
}
