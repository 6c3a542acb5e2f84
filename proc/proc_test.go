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

package proc

import (
	"testing"

	"github.com/logoscript/logo/heap"
)

func TestDefineLookupCaseInsensitive(t *testing.T) {
	h := heap.New()
	tbl := New(h)
	def := &Definition{Name: h.Intern("square")}
	tbl.Define("square", def)

	got, ok := tbl.Lookup("SQUARE")
	if !ok || got != def {
		t.Fatalf("Lookup(SQUARE) = %v, %v; want same definition", got, ok)
	}
}

func TestRedefinitionReplaces(t *testing.T) {
	h := heap.New()
	tbl := New(h)
	tbl.Define("f", &Definition{Name: h.Intern("f")})
	second := &Definition{Name: h.Intern("f"), Primitive: false}
	tbl.Define("F", second)

	got, _ := tbl.Lookup("f")
	if got != second {
		t.Fatal("expected redefinition to replace prior definition")
	}
}

func TestEraseRemovesDefinition(t *testing.T) {
	h := heap.New()
	tbl := New(h)
	tbl.Define("f", &Definition{Name: h.Intern("f")})
	tbl.Erase("f")
	if _, ok := tbl.Lookup("f"); ok {
		t.Fatal("expected f to be erased")
	}
}

func TestArityEnvelope(t *testing.T) {
	h := heap.New()
	def := &Definition{
		Params: []Param{
			{Name: h.Intern("a")},
			{Name: h.Intern("b"), Default: h.List(h.Intern("10"))},
		},
	}
	if def.MinArgs() != 1 {
		t.Fatalf("MinArgs = %d; want 1", def.MinArgs())
	}
	if def.MaxArgs() != 2 {
		t.Fatalf("MaxArgs = %d; want 2", def.MaxArgs())
	}

	restDef := &Definition{
		Params: []Param{
			{Name: h.Intern("a")},
			{Name: h.Intern("rest"), Rest: true},
		},
	}
	if restDef.MaxArgs() != -1 {
		t.Fatalf("MaxArgs with rest = %d; want -1", restDef.MaxArgs())
	}
}
