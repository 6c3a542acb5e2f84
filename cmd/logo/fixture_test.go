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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/eval"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/internal/session"
)

// TestFixtures runs every testdata/fixtures/*.logo script through a
// driver wired to an in-memory console and snapshots its combined
// stdout/stderr, the same go-snaps harness CWBudde-go-dws's
// fixture_test.go uses for its *.pas corpus.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/fixtures/*.logo")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range paths {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			lines, err := readLines(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			out := console.NewMemoryOutput()
			bundle := &console.Bundle{Output: out}

			it := eval.New(heap.New(), bundle)
			sess := session.New(it)
			sess.RegisterPrims()

			d := newDriver(sess, out)
			runAll(d, lines)

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out.String())
		})
	}
}

func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}
