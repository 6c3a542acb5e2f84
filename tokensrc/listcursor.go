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

package tokensrc

import (
	"github.com/pkg/errors"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/value"
)

// ListCursor walks a heap list "run as code", producing the same token
// kinds a live Lexer would for equivalent source text (spec.md §4.2): a
// bareword atom becomes WORD (or NUMBER if its text parses), a nested list
// becomes a single LIST_LITERAL token carrying the list handle, and the
// '"'/':' prefixes embedded in stored atom text are reinterpreted as
// QUOTED_WORD/COLON_NAME so that list-as-code and inline code evaluate
// identically.
type ListCursor struct {
	h     *heap.Heap
	items []heap.Handle
	pos   int

	hasPrev  bool
	prevKind lexer.Kind
}

// NewListCursor returns a cursor over the top-level elements of list.
func NewListCursor(h *heap.Heap, list heap.Handle) *ListCursor {
	return &ListCursor{h: h, items: h.Elements(list)}
}

func (c *ListCursor) synthesize(idx int) (lexer.Token, error) {
	if idx >= len(c.items) {
		return lexer.Token{Kind: lexer.EOF}, nil
	}
	item := c.items[idx]
	if item.IsNil() || item.IsCons() {
		return lexer.Token{Kind: lexer.LIST_LITERAL, List: item}, nil
	}
	text := c.h.Text(item)
	if text == "" {
		return lexer.Token{}, errors.New("empty atom in code list")
	}
	switch text[0] {
	case '"':
		return lexer.Token{Kind: lexer.QUOTED_WORD, Text: text[1:]}, nil
	case ':':
		return lexer.Token{Kind: lexer.COLON_NAME, Text: text[1:]}, nil
	}
	if op, ok := operatorKind(text); ok {
		if op == lexer.OP_MINUS && lexer.StartsUnary(c.prevKind, c.hasPrev) {
			op = lexer.OP_UNARY_MINUS
		}
		return lexer.Token{Kind: op, Text: text}, nil
	}
	switch text {
	case "[":
		return lexer.Token{Kind: lexer.LEFT_BRACKET}, nil
	case "]":
		return lexer.Token{Kind: lexer.RIGHT_BRACKET}, nil
	case "(":
		return lexer.Token{Kind: lexer.LEFT_PAREN}, nil
	case ")":
		return lexer.Token{Kind: lexer.RIGHT_PAREN}, nil
	}
	if _, ok := value.ParseNumber(text); ok {
		return lexer.Token{Kind: lexer.NUMBER, Text: text}, nil
	}
	return lexer.Token{Kind: lexer.WORD, Text: text}, nil
}

func operatorKind(text string) (lexer.Kind, bool) {
	switch text {
	case "+":
		return lexer.OP_PLUS, true
	case "-":
		return lexer.OP_MINUS, true
	case "*":
		return lexer.OP_MUL, true
	case "/":
		return lexer.OP_DIV, true
	case "=":
		return lexer.OP_EQ, true
	case "<":
		return lexer.OP_LT, true
	case ">":
		return lexer.OP_GT, true
	case "<=":
		return lexer.OP_LE, true
	case ">=":
		return lexer.OP_GE, true
	case "<>":
		return lexer.OP_NE, true
	case "and":
		return lexer.OP_AND, true
	case "or":
		return lexer.OP_OR, true
	default:
		return 0, false
	}
}

func (c *ListCursor) Peek() (lexer.Token, error) {
	return c.synthesize(c.pos)
}

func (c *ListCursor) Next() (lexer.Token, error) {
	tok, err := c.synthesize(c.pos)
	if err != nil {
		return tok, err
	}
	if tok.Kind != lexer.EOF {
		c.pos++
		c.hasPrev, c.prevKind = true, tok.Kind
	}
	return tok, nil
}

// ReadList returns the handle carried by the LIST_LITERAL token just
// consumed by Next. Unlike the live lexer, the cursor never needs to parse
// bracket text: nested lists were already materialised as cons structure
// when the enclosing list literal was originally read.
func (c *ListCursor) ReadList() (heap.Handle, error) {
	if c.pos == 0 {
		return heap.NIL, errors.New("ReadList called with no preceding LIST_LITERAL token")
	}
	item := c.items[c.pos-1]
	if !item.IsCons() && !item.IsNil() {
		return heap.NIL, errors.New("ReadList called on a non-list token")
	}
	return item, nil
}

func (c *ListCursor) Save() int { return c.pos }

func (c *ListCursor) Restore(pos int) {
	c.pos = pos
	c.hasPrev = false
}
