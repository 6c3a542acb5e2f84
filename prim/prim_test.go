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

package prim

import (
	"testing"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/value"
)

func TestRegisterLookupCaseInsensitive(t *testing.T) {
	h := heap.New()
	tbl := New(h)
	tbl.Register(Entry{
		Name: "forward", Min: 1, Default: 1, Max: 1,
		Fn: func(e Evaluator, args []value.Value) value.Result {
			return value.NoneResult()
		},
	})

	e, ok := tbl.Lookup("FORWARD")
	if !ok || e.Min != 1 {
		t.Fatalf("Lookup(FORWARD) = %v, %v", e, ok)
	}
}

func TestLookupMissing(t *testing.T) {
	h := heap.New()
	tbl := New(h)
	if _, ok := tbl.Lookup("nope"); ok {
		t.Fatal("expected missing primitive to report ok=false")
	}
}
