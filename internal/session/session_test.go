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

package session

import (
	"testing"

	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/eval"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/tokensrc"
	"github.com/logoscript/logo/value"
)

func TestSaveLoadRoundTripsProceduresAndVariables(t *testing.T) {
	fs := console.NewMemoryFileSystem()

	h := heap.New()
	it := eval.New(h, &console.Bundle{Files: fs})
	if err := it.Define("square :x", []string{"output :x * :x"}); err != nil {
		t.Fatalf("Define: %v", err)
	}
	it.Vars().SetGlobal("scale", value.Number(3))

	s := New(it)
	if err := s.Save("workspace.json"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	h2 := heap.New()
	it2 := eval.New(h2, &console.Bundle{Files: fs})
	s2 := New(it2)
	if err := s2.Load("workspace.json"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	def, ok := it2.Procs().Lookup("square")
	if !ok {
		t.Fatal("expected square to be loaded")
	}
	if len(def.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(def.Params))
	}

	v, ok := it2.Vars().GetGlobal("scale")
	if !ok {
		t.Fatal("expected scale to be loaded")
	}
	if got := v.Text(h2); got != "3" {
		t.Fatalf("scale = %q, want 3", got)
	}
}

func TestSaveWithoutFileSystemCapabilityErrors(t *testing.T) {
	it := eval.New(heap.New(), nil)
	s := New(it)
	if err := s.Save("workspace.json"); err == nil {
		t.Fatal("expected Save to fail with no console FileSystem")
	}
}

func TestCaughtErrorClearedWhenNil(t *testing.T) {
	h := heap.New()
	it := eval.New(h, nil)
	if it.CaughtError() != nil {
		t.Fatal("expected no caught error on a fresh interpreter")
	}
}

func TestPausedReflectsInterpreterState(t *testing.T) {
	it := eval.New(heap.New(), nil)
	s := New(it)
	if s.Paused() {
		t.Fatal("expected fresh session to not be paused")
	}
}

func TestSaveLoadRegisteredAsPrimitives(t *testing.T) {
	fs := console.NewMemoryFileSystem()

	h := heap.New()
	it := eval.New(h, &console.Bundle{Files: fs})
	s := New(it)
	s.RegisterPrims()

	if err := it.Define("double :x", []string{"output :x * 2"}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	lx := lexer.New(h, []byte(`save "workspace.json`))
	res := it.RunSource(tokensrc.NewLexSource(lx))
	if res.Status != value.StatusNone {
		t.Fatalf("save prim: unexpected result %+v", res)
	}

	h2 := heap.New()
	it2 := eval.New(h2, &console.Bundle{Files: fs})
	s2 := New(it2)
	s2.RegisterPrims()

	lx2 := lexer.New(h2, []byte(`load "workspace.json`))
	res2 := it2.RunSource(tokensrc.NewLexSource(lx2))
	if res2.Status != value.StatusNone {
		t.Fatalf("load prim: unexpected result %+v", res2)
	}

	if _, ok := it2.Procs().Lookup("double"); !ok {
		t.Fatal("expected double to be loaded via the load primitive")
	}
}
