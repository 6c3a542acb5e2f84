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

package lexer

import (
	"testing"

	"github.com/logoscript/logo/heap"
)

func tokens(t *testing.T, src string) []Token {
	t.Helper()
	h := heap.New()
	l := New(h, []byte(src))
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.Kind == EOF {
			return out
		}
		out = append(out, tok)
	}
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, src string, want []Kind) {
	t.Helper()
	got := kinds(tokens(t, src))
	if len(got) != len(want) {
		t.Fatalf("lex %q: got %v, want %v", src, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("lex %q: token %d = %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestUnaryVsBinaryMinus(t *testing.T) {
	assertKinds(t, "- 5", []Kind{OP_UNARY_MINUS, NUMBER})
	assertKinds(t, "3 - 5", []Kind{NUMBER, OP_MINUS, NUMBER})
	assertKinds(t, "(- 5)", []Kind{LEFT_PAREN, OP_UNARY_MINUS, NUMBER, RIGHT_PAREN})
	assertKinds(t, "print -5", []Kind{WORD, OP_MINUS, NUMBER})
}

func TestQuotedWordAndColonName(t *testing.T) {
	toks := tokens(t, `"hello :world`)
	if len(toks) != 2 || toks[0].Kind != QUOTED_WORD || toks[0].Text != "hello" {
		t.Fatalf("quoted word: %+v", toks)
	}
	if toks[1].Kind != COLON_NAME || toks[1].Text != "world" {
		t.Fatalf("colon name: %+v", toks)
	}
}

func TestCommentsAndContinuation(t *testing.T) {
	assertKinds(t, "print 1 ; a comment\nprint 2", []Kind{WORD, NUMBER, WORD, NUMBER})
	assertKinds(t, "print ~\n1", []Kind{WORD, NUMBER})
}

func TestNumberGrammar(t *testing.T) {
	for _, s := range []string{"1", "1.5", "1e10", "1.5e-3", "1E+2"} {
		toks := tokens(t, s)
		if len(toks) != 1 || toks[0].Kind != NUMBER {
			t.Fatalf("lex %q: %+v", s, toks)
		}
	}
}

func TestReadListNested(t *testing.T) {
	h := heap.New()
	l := New(h, []byte(`[1 2 [a "b :c] 3]`))
	tok, err := l.Next()
	if err != nil || tok.Kind != LEFT_BRACKET {
		t.Fatalf("expected LEFT_BRACKET, got %+v, %v", tok, err)
	}
	list, err := l.ReadList()
	if err != nil {
		t.Fatalf("ReadList: %v", err)
	}
	if got := h.Count(list); got != 4 {
		t.Fatalf("Count(list) = %d, want 4", got)
	}
	els := h.Elements(list)
	if !els[2].IsCons() {
		t.Fatalf("third element should be a nested list")
	}
	inner := h.Elements(els[2])
	if len(inner) != 3 || h.Text(inner[1]) != `"b` {
		t.Fatalf("nested list preserved wrong text: %+v", inner)
	}
}

func TestUnterminatedListIsError(t *testing.T) {
	h := heap.New()
	l := New(h, []byte(`[1 2`))
	if _, err := l.Next(); err != nil {
		t.Fatalf("unexpected error on LEFT_BRACKET: %v", err)
	}
	if _, err := l.ReadList(); err == nil {
		t.Fatalf("expected unterminated-list error")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	h := heap.New()
	l := New(h, []byte("print 1"))
	p1, _ := l.Peek()
	p2, _ := l.Peek()
	if p1 != p2 {
		t.Fatalf("Peek should be idempotent: %+v vs %+v", p1, p2)
	}
	n1, _ := l.Next()
	if n1 != p1 {
		t.Fatalf("Next after Peek should return the same token")
	}
}
