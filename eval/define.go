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

// Procedure definition capture: `to NAME :p1 :p2 ... / body lines / end`
// (spec.md §3.6). The REPL/script-loading layer (cmd/logo) is responsible
// for line-buffering a `to`/`end` block out of raw input and handing the
// title line and body lines to Interp.Define; the evaluator itself never
// scans for `end` because the same token stream also drives ordinary
// instruction evaluation and has no notion of a source line boundary once
// lexed.
package eval

import (
	"strings"

	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/proc"
)

// Define parses titleLine ("NAME :p1 :p2 [:opt default] [:rest]", the text
// following the `to` keyword) and captures bodyLines as the procedure's
// stored body, then installs the result into the procedure table.
func (it *Interp) Define(titleLine string, bodyLines []string) error {
	name, params, err := parseTitle(it.h, titleLine)
	if err != nil {
		return err
	}
	lines := make([]heap.Handle, 0, len(bodyLines))
	for _, raw := range bodyLines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		l, err := lineToList(it.h, raw)
		if err != nil {
			return err
		}
		lines = append(lines, l)
	}
	it.procs.Define(name, &proc.Definition{
		Name:   it.h.Canonical(name),
		Params: params,
		Lines:  lines,
	})
	return nil
}

// parseTitle reads "name :req1 :req2 [:opt default-expr...] [:rest]" from
// titleLine. A bracketed formal with one following atom before its ']' is
// optional (the rest of the bracket is its default-value expression); a
// bracketed formal with only the colon-name is a rest parameter.
func parseTitle(h *heap.Heap, titleLine string) (string, []proc.Param, error) {
	lx := lexer.New(h, []byte(titleLine))
	nameTok, err := lx.Next()
	if err != nil {
		return "", nil, err
	}
	if nameTok.Kind != lexer.WORD {
		return "", nil, errUnexpectedToken(lexer.TokenText(nameTok))
	}
	name := nameTok.Text

	var params []proc.Param
	for {
		tok, err := lx.Next()
		if err != nil {
			return "", nil, err
		}
		switch tok.Kind {
		case lexer.EOF:
			return name, params, nil
		case lexer.COLON_NAME:
			params = append(params, proc.Param{Name: h.Canonical(tok.Text)})
		case lexer.LEFT_BRACKET:
			list, err := lx.ReadList()
			if err != nil {
				return "", nil, err
			}
			elems := h.Elements(list)
			if len(elems) == 0 || !elems[0].IsAtom() {
				return "", nil, errUnexpectedToken("[")
			}
			text := h.Text(elems[0])
			if len(text) == 0 || text[0] != ':' {
				return "", nil, errUnexpectedToken(text)
			}
			pname := h.Canonical(text[1:])
			if len(elems) == 1 {
				params = append(params, proc.Param{Name: pname, Rest: true})
				continue
			}
			params = append(params, proc.Param{Name: pname, Default: h.List(elems[1:]...)})
		default:
			return "", nil, errUnexpectedToken(lexer.TokenText(tok))
		}
	}
}

// lineToList tokenizes one raw source line and captures it as a heap list
// in the same shape tokensrc.ListCursor expects to walk back out: bracket
// literals become nested cons structure via the lexer's own ReadList, and
// every other token's surface text becomes a single atom (with its sigil
// re-prefixed for quoted words and colon names).
func lineToList(h *heap.Heap, line string) (heap.Handle, error) {
	lx := lexer.New(h, []byte(line))
	var elems []heap.Handle
	for {
		tok, err := lx.Next()
		if err != nil {
			return heap.NIL, err
		}
		switch tok.Kind {
		case lexer.EOF:
			return h.List(elems...), nil
		case lexer.LEFT_BRACKET:
			list, err := lx.ReadList()
			if err != nil {
				return heap.NIL, err
			}
			elems = append(elems, list)
		case lexer.QUOTED_WORD:
			elems = append(elems, h.Intern("\""+tok.Text))
		case lexer.COLON_NAME:
			elems = append(elems, h.Intern(":"+tok.Text))
		case lexer.LEFT_PAREN:
			elems = append(elems, h.Intern("("))
		case lexer.RIGHT_PAREN:
			elems = append(elems, h.Intern(")"))
		default:
			elems = append(elems, h.Intern(tok.Text))
		}
	}
}
