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

// Package prim implements the primitive registry of spec.md §3.9: a fixed
// set of built-in (name, default-arity, handler) entries, looked up
// case-insensitively exactly like user procedures so that `to` can shadow
// a primitive transparently.
//
// Handlers are written against the Evaluator interface rather than a
// concrete evaluator type, so that package eval can depend on prim without
// prim depending back on eval.
package prim

import (
	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/frame"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/proc"
	"github.com/logoscript/logo/props"
	"github.com/logoscript/logo/value"
	"github.com/logoscript/logo/vars"
)

// Evaluator is the set of evaluator services a primitive handler may use:
// the shared heap, the variable/property/procedure stores, the frame
// stack, the console capabilities, and a callback to re-enter evaluation
// (for higher-order primitives like `run`, `apply`, `map`, `foreach`).
type Evaluator interface {
	Heap() *heap.Heap
	Vars() *vars.Store
	Props() *props.Store
	Procs() *proc.Table
	Frames() *frame.Stack
	Console() *console.Bundle
	Frame() int // the index of the currently active frame

	// SetCaughtError records err as the most recent error intercepted by
	// `catch "error, backing the `error` primitive.
	SetCaughtError(err error)
	// CaughtError returns the error recorded by the last SetCaughtError
	// call, or nil if none is pending.
	CaughtError() error

	// RunList evaluates a heap list as a sequence of instructions in the
	// current frame, exactly as `run` does, returning its Result.
	RunList(list heap.Handle) value.Result
	// EvalExprList evaluates a heap list as a single expression (the
	// shape `(expr)` callers like `apply`'s template pass) and returns its
	// value.
	EvalExprList(list heap.Handle) (value.Value, error)
	// CallProcedure invokes a named procedure (primitive or user-defined)
	// with already-evaluated actual arguments, used by `apply`/`invoke`
	// style primitives that receive a procedure name as data.
	CallProcedure(name heap.Handle, args []value.Value) value.Result
}

// Func is a primitive's implementation. args has already been evaluated
// and arity-checked against the entry's Min/Max before Func is called.
type Func func(e Evaluator, args []value.Value) value.Result

// Entry describes one registered primitive.
type Entry struct {
	Name    string
	Min     int // minimum accepted argument count
	Default int // default argument count used in prefix-call position
	Max     int // maximum accepted argument count, -1 for unbounded
	Fn      Func
}

// Table is the case-insensitive primitive registry.
type Table struct {
	h       *heap.Heap
	entries map[heap.Handle]*Entry
}

// New creates an empty primitive table.
func New(h *heap.Heap) *Table {
	return &Table{h: h, entries: make(map[heap.Handle]*Entry)}
}

// Register installs e under e.Name, replacing any prior primitive of the
// same name (case-insensitively). Registration happens once at
// interpreter construction; unlike proc.Table, user code never calls
// Register directly.
func (t *Table) Register(e Entry) {
	t.entries[t.h.Canonical(e.Name)] = &e
}

// Lookup finds a primitive by name.
func (t *Table) Lookup(name string) (*Entry, bool) {
	e, ok := t.entries[t.h.Canonical(name)]
	return e, ok
}

// Names returns every registered primitive's canonical name handle.
func (t *Table) Names() []heap.Handle {
	out := make([]heap.Handle, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	return out
}
