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

// Package proc implements the user-procedure table of spec.md §3.6: a
// case-insensitive name -> definition map, where each definition is the
// formal parameter list plus the body stored as a list of line-lists,
// exactly as `to`/`end` captured it.
package proc

import (
	"github.com/pkg/errors"

	"github.com/logoscript/logo/heap"
)

// Param is one formal parameter: a plain required name, or a name with a
// default-value expression line for an optional parameter (Logo's
// `[:name default]` syntax), or the rest-parameter (`[:name]` with no
// default collects remaining actuals as a list — Table.Define distinguishes
// this from an optional parameter by Rest).
type Param struct {
	Name    heap.Handle
	Default heap.Handle // NIL if required; otherwise an expression line
	Rest    bool        // true for a `[:name]` trailing rest parameter
}

// Definition is a user procedure: its formal parameters and its body,
// stored as spec.md §3.6 describes - a list of lines, each itself a list
// of tokens-as-atoms, ready to be re-lexed through tokensrc.ListCursor.
type Definition struct {
	Name   heap.Handle
	Params []Param
	Lines  []heap.Handle // each element is a heap list (one source line)

	// Primitive marks definitions installed for a primitive being
	// redefined in Logo (the corpus convention of shadowing a built-in
	// with a `to` of the same name); Table.Define still allows this, but
	// callers who need the original primitive go through prim.Table
	// directly rather than through here.
	Primitive bool
}

// Table is the case-insensitive map from procedure name to Definition.
type Table struct {
	h     *heap.Heap
	procs map[heap.Handle]*Definition
}

// New creates an empty procedure table.
func New(h *heap.Heap) *Table {
	t := &Table{h: h, procs: make(map[heap.Handle]*Definition)}
	h.AddRoot(t.roots)
	return t
}

func (t *Table) roots() []heap.Handle {
	out := make([]heap.Handle, 0, len(t.procs)*4)
	for name, def := range t.procs {
		out = append(out, name, def.Name)
		for _, p := range def.Params {
			out = append(out, p.Name)
			if !p.Default.IsNil() {
				out = append(out, p.Default)
			}
		}
		out = append(out, def.Lines...)
	}
	return out
}

func (t *Table) key(name string) heap.Handle { return t.h.Canonical(name) }

// Define installs def under name, replacing any prior definition
// (spec.md §3.6: redefinition via `to` silently replaces, case-insensitively).
func (t *Table) Define(name string, def *Definition) {
	t.procs[t.key(name)] = def
}

// Lookup returns name's definition, if any.
func (t *Table) Lookup(name string) (*Definition, bool) {
	d, ok := t.procs[t.key(name)]
	return d, ok
}

// Erase removes name's definition.
func (t *Table) Erase(name string) {
	delete(t.procs, t.key(name))
}

// Names returns every defined procedure's canonical name handle, for the
// `procedures`/`pots` introspection primitives.
func (t *Table) Names() []heap.Handle {
	out := make([]heap.Handle, 0, len(t.procs))
	for k := range t.procs {
		out = append(out, k)
	}
	return out
}

// ErrArity is returned by BindArgs when the supplied actual argument count
// does not satisfy a definition's required/optional/rest parameter shape.
var ErrArity = errors.New("wrong number of inputs")

// MinArgs and MaxArgs report the arity envelope of a definition: the
// minimum number of required actuals, and the maximum the definition will
// accept (-1 if unbounded because of a rest parameter). Used by `to`'s
// default-args-elision form (spec.md §4.3 `apply`/default_args) and by
// arity checks before a call.
func (d *Definition) MinArgs() int {
	n := 0
	for _, p := range d.Params {
		if p.Default.IsNil() && !p.Rest {
			n++
		}
	}
	return n
}

// MaxArgs returns -1 if d has a rest parameter (unbounded), else the total
// count of non-rest parameters.
func (d *Definition) MaxArgs() int {
	n := 0
	for _, p := range d.Params {
		if p.Rest {
			return -1
		}
		n++
	}
	return n
}
