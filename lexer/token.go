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

// Package lexer tokenises Logo source text (spec.md §4.1). Unlike the
// teacher's asm.parser, which drives the standard library's text/scanner
// with a custom IsIdentRune predicate, this is a hand-rolled single-pass
// scanner over a raw []byte: it classifies each run of non-delimiter
// bytes directly rather than configuring a scanner.Scanner, since Logo's
// grammar (sigil-prefixed words, colon names, bracketed lists) doesn't
// map onto Go-identifier-shaped tokens the way assembly mnemonics do.
package lexer

import "github.com/logoscript/logo/heap"

// Kind discriminates a Token's syntactic class (spec.md §4.1).
type Kind uint8

const (
	EOF Kind = iota
	WORD
	NUMBER
	QUOTED_WORD
	COLON_NAME
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_PAREN
	RIGHT_PAREN
	OP_PLUS
	OP_MINUS
	OP_UNARY_MINUS
	OP_MUL
	OP_DIV
	OP_EQ
	OP_LT
	OP_GT
	OP_LE
	OP_GE
	OP_NE
	OP_OR
	OP_AND
	LIST_LITERAL // synthetic token emitted only by the list-as-code token source
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case WORD:
		return "WORD"
	case NUMBER:
		return "NUMBER"
	case QUOTED_WORD:
		return "QUOTED_WORD"
	case COLON_NAME:
		return "COLON_NAME"
	case LEFT_BRACKET:
		return "["
	case RIGHT_BRACKET:
		return "]"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case OP_PLUS:
		return "+"
	case OP_MINUS:
		return "-"
	case OP_UNARY_MINUS:
		return "unary-"
	case OP_MUL:
		return "*"
	case OP_DIV:
		return "/"
	case OP_EQ:
		return "="
	case OP_LT:
		return "<"
	case OP_GT:
		return ">"
	case OP_LE:
		return "<="
	case OP_GE:
		return ">="
	case OP_NE:
		return "<>"
	case OP_OR:
		return "or"
	case OP_AND:
		return "and"
	case LIST_LITERAL:
		return "list-literal"
	default:
		return "INVALID"
	}
}

// IsOperator reports whether k is one of the binary/unary operator kinds
// recognised by the evaluator's precedence table (spec.md §4.3).
func (k Kind) IsOperator() bool {
	switch k {
	case OP_PLUS, OP_MINUS, OP_UNARY_MINUS, OP_MUL, OP_DIV,
		OP_EQ, OP_LT, OP_GT, OP_LE, OP_GE, OP_NE, OP_OR, OP_AND:
		return true
	default:
		return false
	}
}

// Token is one lexical item: its kind, the literal source text it covers,
// and a byte offset for error reporting.
type Token struct {
	Kind   Kind
	Text   string      // raw source surface, minus any leading sigil (", :)
	Offset int         // byte offset of the token's first byte in the source
	List   heap.Handle // populated only for a LIST_LITERAL token
}
