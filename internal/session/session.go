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

// Package session holds the REPL-level state that spec.md's §3.10 says must
// not live process-global: workspace save/load (procedures and global
// variables, the Logo `save`/`load` command pair), plus a read-only view
// of eval.Interp's pause/continue flag for a suspended procedure call.
//
// Grounded on vm/image.go's Load/Save pair (open-decode-return,
// encode-write, one file per call) generalized from a binary cell image
// to a JSON workspace document built with tidwall/gjson and tidwall/sjson,
// so a saved workspace is a readable, diffable text file rather than an
// opaque binary blob — a better fit for a scripting language's save file
// than the VM's fixed-width cell format.
package session

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/logoscript/logo/eval"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

// Session is the REPL-owned state spec.md §3.10 keeps out of the
// evaluator: workspace persistence for the interpreter it wraps. The
// `pause`/`co` suspension itself is driven directly by eval.Interp's
// pauseLoop (it needs the lexer/tokensrc machinery eval already owns);
// Paused exposes that state for a host REPL to reflect in its prompt.
type Session struct {
	it *eval.Interp
}

// New wraps it in a fresh Session.
func New(it *eval.Interp) *Session {
	return &Session{it: it}
}

// Interp returns the session's evaluator.
func (s *Session) Interp() *eval.Interp { return s.it }

// RegisterPrims installs `save` and `load` into the session's interpreter
// as ordinary primitives, each taking the workspace file name as a word
// input. They live here rather than among eval's RegisterBuiltins because
// they close over this particular Session's Save/Load, not over anything
// eval itself owns (spec.md §3.10: the evaluator persists nothing).
func (s *Session) RegisterPrims() {
	t := s.it.Prims()
	t.Register(prim.Entry{Name: "save", Min: 1, Default: 1, Max: 1, Fn: s.primSave})
	t.Register(prim.Entry{Name: "load", Min: 1, Default: 1, Max: 1, Fn: s.primLoad})
}

func fileNameArg(e prim.Evaluator, args []value.Value, name string) (string, error) {
	if args[0].Kind() != value.KindWord {
		return "", errors.Errorf("%s: expected a word naming the workspace file", name)
	}
	return e.Heap().Text(args[0].AsHandle()), nil
}

func (s *Session) primSave(e prim.Evaluator, args []value.Value) value.Result {
	fileName, err := fileNameArg(e, args, "save")
	if err != nil {
		return value.Error(err)
	}
	if err := s.Save(fileName); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func (s *Session) primLoad(e prim.Evaluator, args []value.Value) value.Result {
	fileName, err := fileNameArg(e, args, "load")
	if err != nil {
		return value.Error(err)
	}
	if err := s.Load(fileName); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

// Paused reports whether a `pause` call is currently suspended, waiting
// on `co` from the same input stream.
func (s *Session) Paused() bool { return s.it.Paused() }

// workspace document paths, as a flat JSON object:
//
//	{
//	  "procedures": {"<name>": {"title": "...", "body": ["line1", ...]}},
//	  "variables":  {"<name>": "<logo-printed-value>"}
//	}
const (
	pathProcs = "procedures"
	pathVars  = "variables"
)

// Save writes the current workspace (every user-defined procedure and
// global variable binding) to fileName as a JSON document, the Logo
// `save` command of spec.md §3.10. Primitive-shadowing redefinitions are
// saved like any other procedure; frame-local bindings never are, since
// they don't outlive the call that created them.
//
// Save writes through the interpreter's console.FileSystem capability
// rather than the os package directly, the same "core depends on an
// interface, the host supplies the implementation" separation console.go
// draws for every other capability (DESIGN.md's eval section).
func (s *Session) Save(fileName string) error {
	cb := s.it.Console()
	if cb == nil || cb.Files == nil {
		return errors.Errorf("save %s: no file system capability available", fileName)
	}

	h := s.it.Heap()
	doc := "{}"
	var err error

	for _, nameHandle := range s.it.Procs().Names() {
		name := h.Text(nameHandle)
		def, ok := s.it.Procs().Lookup(name)
		if !ok {
			continue
		}
		title := eval.RenderTitle(h, name, def.Params)
		body := make([]string, len(def.Lines))
		for i, line := range def.Lines {
			body[i] = eval.RenderLine(h, line)
		}
		doc, err = sjson.Set(doc, pathProcs+"."+jsonKey(name)+".title", title)
		if err != nil {
			return errors.Wrapf(err, "save %s: encode procedure %s", fileName, name)
		}
		doc, err = sjson.Set(doc, pathProcs+"."+jsonKey(name)+".body", body)
		if err != nil {
			return errors.Wrapf(err, "save %s: encode procedure %s", fileName, name)
		}
	}

	for _, nameHandle := range s.it.Vars().Names() {
		name := h.Text(nameHandle)
		v, ok := s.it.Vars().GetGlobal(name)
		if !ok {
			continue
		}
		doc, err = sjson.Set(doc, pathVars+"."+jsonKey(name), v.Text(h))
		if err != nil {
			return errors.Wrapf(err, "save %s: encode variable %s", fileName, name)
		}
	}

	w, err := cb.Files.Create(fileName)
	if err != nil {
		return errors.Wrapf(err, "save %s", fileName)
	}
	defer w.Close()
	if _, err := io.WriteString(w, doc); err != nil {
		return errors.Wrapf(err, "save %s", fileName)
	}
	return nil
}

// jsonKey escapes name for use as an sjson dotted-path key component:
// Logo names may contain characters sjson's path syntax treats specially
// (such as '.' or '?'), so each of those gets a backslash in front.
func jsonKey(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`\.*?|#@`, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Load reads a workspace document previously written by Save, installing
// every procedure and variable it contains into the session's
// interpreter (spec.md §3.10's `load`). Existing definitions and
// bindings of the same name are replaced, matching `to`'s own
// redefinition rule.
func (s *Session) Load(fileName string) error {
	cb := s.it.Console()
	if cb == nil || cb.Files == nil {
		return errors.Errorf("load %s: no file system capability available", fileName)
	}
	r, err := cb.Files.Open(fileName)
	if err != nil {
		return errors.Wrapf(err, "load %s", fileName)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "load %s", fileName)
	}
	doc := string(data)
	if !gjson.Valid(doc) {
		return errors.Errorf("load %s: not a valid workspace file", fileName)
	}

	h := s.it.Heap()

	procs := gjson.Get(doc, pathProcs)
	var loadErr error
	procs.ForEach(func(key, val gjson.Result) bool {
		title := val.Get("title").String()
		lines := make([]string, 0)
		val.Get("body").ForEach(func(_, line gjson.Result) bool {
			lines = append(lines, line.String())
			return true
		})
		if err := s.it.Define(title, lines); err != nil {
			loadErr = errors.Wrapf(err, "load %s: procedure %s", fileName, key.String())
			return false
		}
		return true
	})
	if loadErr != nil {
		return loadErr
	}

	vars := gjson.Get(doc, pathVars)
	vars.ForEach(func(key, val gjson.Result) bool {
		name := key.String()
		text := val.String()
		if n, ok := value.ParseNumber(text); ok {
			s.it.Vars().SetGlobal(name, value.Number(n))
			return true
		}
		s.it.Vars().SetGlobal(name, value.Word(h.Intern(text)))
		return true
	})

	return nil
}

// Erase removes name's definition from the workspace (spec.md's `erase`
// applied to a procedure name); Vars().Unbind covers the variable case.
func (s *Session) Erase(name string) {
	s.it.Procs().Erase(name)
}
