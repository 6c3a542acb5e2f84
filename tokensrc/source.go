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

// Package tokensrc provides the uniform token-source abstraction of
// spec.md §3.8/§4.2: the evaluator drives either a live lexer over source
// bytes, or a cursor walking a list being "run as code", through the same
// Peek/Next/Save/Restore interface.
package tokensrc

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
)

// Source is the uniform iterator the evaluator drives regardless of
// whether the underlying tokens come from live source bytes or from a
// list being executed as code.
type Source interface {
	// Peek returns the next token without consuming it.
	Peek() (lexer.Token, error)
	// Next consumes and returns the next token.
	Next() (lexer.Token, error)
	// ReadList consumes a bracketed list immediately following a
	// LEFT_BRACKET token already returned by Next, and returns its handle.
	ReadList() (heap.Handle, error)
	// Save returns an opaque position usable with Restore.
	Save() int
	// Restore rewinds the source to a position previously returned by
	// Save.
	Restore(pos int)
}

// LexSource adapts a *lexer.Lexer to the Source interface; it is the
// "live lexer" half of spec.md §3.8.
type LexSource struct {
	L *lexer.Lexer
}

// NewLexSource wraps a lexer as a token Source.
func NewLexSource(l *lexer.Lexer) *LexSource { return &LexSource{L: l} }

func (s *LexSource) Peek() (lexer.Token, error)          { return s.L.Peek() }
func (s *LexSource) Next() (lexer.Token, error)          { return s.L.Next() }
func (s *LexSource) ReadList() (heap.Handle, error)      { return s.L.ReadList() }
func (s *LexSource) Save() int                           { return s.L.Save() }
func (s *LexSource) Restore(pos int)                     { s.L.Restore(pos) }
