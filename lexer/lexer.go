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
	"github.com/pkg/errors"

	"github.com/logoscript/logo/heap"
)

// ErrLex is returned for every lexical failure mode of spec.md §4.1:
// unterminated list, invalid number, or an atom exceeding the 255-byte cap.
type ErrLex struct {
	Offset int
	Msg    string
}

func (e *ErrLex) Error() string {
	return e.Msg
}

func lexError(offset int, msg string) error {
	return errors.WithStack(&ErrLex{Offset: offset, Msg: msg})
}

// StartsUnary reports whether, given the kind of the immediately preceding
// token (and whether there was one at all), a leading '-' lexes as unary
// minus rather than the binary subtraction operator (spec.md §4.1). It is
// exported so that tokensrc's list-as-code cursor can apply the same rule
// when synthesising tokens from stored atom text.
func StartsUnary(prev Kind, hadPrev bool) bool {
	if !hadPrev {
		return true // start of stream
	}
	switch prev {
	case LEFT_PAREN, LEFT_BRACKET:
		return true
	default:
		return prev.IsOperator()
	}
}

// Lexer tokenises a byte slice of Logo source, matching the grammar of
// spec.md §4.1. It is restartable (Reset) and carries just enough state
// (the previous token's kind) to disambiguate unary minus, following the
// same single-pass, no-backtracking style as the teacher's asm.parser.
type Lexer struct {
	heap *heap.Heap
	src  []byte
	pos  int

	hasPrev  bool
	prevKind Kind

	peeked    *Token
	peekedErr error
}

// New creates a Lexer over src, interning words through h.
func New(h *heap.Heap, src []byte) *Lexer {
	return &Lexer{heap: h, src: src}
}

// Reset restarts the lexer over new source, clearing all position state.
func (l *Lexer) Reset(src []byte) {
	l.src = src
	l.pos = 0
	l.hasPrev = false
	l.peeked = nil
	l.peekedErr = nil
}

// Offset returns the current byte offset into the source.
func (l *Lexer) Offset() int { return l.pos }

// Save returns an opaque position usable with Restore, implementing half of
// the tokensrc.Source position-save contract (spec.md §3.8).
func (l *Lexer) Save() int {
	if l.peeked != nil {
		return l.peeked.Offset
	}
	return l.pos
}

// Restore rewinds the lexer to a position previously returned by Save.
func (l *Lexer) Restore(pos int) {
	l.pos = pos
	l.hasPrev = false
	l.peeked = nil
	l.peekedErr = nil
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.src) }

func (l *Lexer) byteAt(i int) byte {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// skipTrivia advances past whitespace, line-continuations ("~" followed by
// a newline) and ";" comments, per spec.md §4.1.
func (l *Lexer) skipTrivia() {
	for !l.atEOF() {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '~' && l.nextNonSpaceIsNewline():
			l.pos++ // consume '~'
			for !l.atEOF() && l.src[l.pos] != '\n' {
				l.pos++ // any spaces between ~ and \n
			}
			if !l.atEOF() {
				l.pos++ // consume '\n'
			}
		case c == ';':
			for !l.atEOF() && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// nextNonSpaceIsNewline reports whether, starting right after the current
// '~', only spaces/tabs separate it from the line's newline (a tolerant
// reading of the continuation rule).
func (l *Lexer) nextNonSpaceIsNewline() bool {
	for i := l.pos + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameRune(c byte) bool {
	return c == '_' || c == '.' || c == '?' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '[', ']', '(', ')':
		return true
	default:
		return false
	}
}

func isOperatorStart(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>':
		return true
	default:
		return false
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil && l.peekedErr == nil {
		tok, err := l.next()
		l.peeked, l.peekedErr = &tok, err
		if err != nil {
			l.peeked = nil
		}
	}
	if l.peekedErr != nil {
		return Token{}, l.peekedErr
	}
	return *l.peeked, nil
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil || l.peekedErr != nil {
		tok, err := *l.peeked, l.peekedErr
		l.peeked, l.peekedErr = nil, nil
		if err == nil {
			l.hasPrev, l.prevKind = true, tok.Kind
		}
		return tok, err
	}
	tok, err := l.next()
	if err == nil {
		l.hasPrev, l.prevKind = true, tok.Kind
	}
	return tok, err
}

func (l *Lexer) next() (Token, error) {
	l.skipTrivia()
	if l.atEOF() {
		return Token{Kind: EOF, Offset: l.pos}, nil
	}
	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '[':
		l.pos++
		return Token{Kind: LEFT_BRACKET, Offset: start}, nil
	case c == ']':
		l.pos++
		return Token{Kind: RIGHT_BRACKET, Offset: start}, nil
	case c == '(':
		l.pos++
		return Token{Kind: LEFT_PAREN, Offset: start}, nil
	case c == ')':
		l.pos++
		return Token{Kind: RIGHT_PAREN, Offset: start}, nil
	case c == '"':
		return l.lexQuotedWord(start)
	case c == ':':
		return l.lexColonName(start)
	case isDigit(c):
		return l.lexNumber(start)
	case c == '-' && isDigit(l.byteAt(l.pos+1)) && StartsUnary(l.prevKind, l.hasPrev):
		return l.lexNumber(start)
	case isOperatorStart(c):
		return l.lexOperator(start)
	default:
		return l.lexWord(start)
	}
}

func (l *Lexer) lexOperator(start int) (Token, error) {
	two := string(l.src[start:min(start+2, len(l.src))])
	switch two {
	case "<=":
		l.pos += 2
		return Token{Kind: OP_LE, Text: "<=", Offset: start}, nil
	case ">=":
		l.pos += 2
		return Token{Kind: OP_GE, Text: ">=", Offset: start}, nil
	case "<>":
		l.pos += 2
		return Token{Kind: OP_NE, Text: "<>", Offset: start}, nil
	}
	c := l.src[start]
	l.pos++
	switch c {
	case '+':
		return Token{Kind: OP_PLUS, Text: "+", Offset: start}, nil
	case '-':
		if StartsUnary(l.prevKind, l.hasPrev) {
			return Token{Kind: OP_UNARY_MINUS, Text: "-", Offset: start}, nil
		}
		return Token{Kind: OP_MINUS, Text: "-", Offset: start}, nil
	case '*':
		return Token{Kind: OP_MUL, Text: "*", Offset: start}, nil
	case '/':
		return Token{Kind: OP_DIV, Text: "/", Offset: start}, nil
	case '=':
		return Token{Kind: OP_EQ, Text: "=", Offset: start}, nil
	case '<':
		return Token{Kind: OP_LT, Text: "<", Offset: start}, nil
	case '>':
		return Token{Kind: OP_GT, Text: ">", Offset: start}, nil
	default:
		return Token{}, lexError(start, "unreachable operator byte")
	}
}

func (l *Lexer) lexNumber(start int) (Token, error) {
	p := l.pos
	if l.src[p] == '-' {
		p++
	}
	digitsStart := p
	for p < len(l.src) && isDigit(l.src[p]) {
		p++
	}
	if p < len(l.src) && l.src[p] == '.' && p+1 < len(l.src) && isDigit(l.src[p+1]) {
		p++
		for p < len(l.src) && isDigit(l.src[p]) {
			p++
		}
	}
	if p < len(l.src) && (l.src[p] == 'e' || l.src[p] == 'E') {
		q := p + 1
		if q < len(l.src) && (l.src[q] == '+' || l.src[q] == '-') {
			q++
		}
		if q < len(l.src) && isDigit(l.src[q]) {
			q++
			for q < len(l.src) && isDigit(l.src[q]) {
				q++
			}
			p = q
		}
	}
	if p == digitsStart {
		return Token{}, lexError(start, "invalid number")
	}
	text := string(l.src[start:p])
	l.pos = p
	return Token{Kind: NUMBER, Text: text, Offset: start}, nil
}

func (l *Lexer) lexQuotedWord(start int) (Token, error) {
	l.pos++ // consume '"'
	textStart := l.pos
	for !l.atEOF() && !isDelimiter(l.src[l.pos]) && !isOperatorStart(l.src[l.pos]) {
		l.pos++
	}
	text := string(l.src[textStart:l.pos])
	return Token{Kind: QUOTED_WORD, Text: text, Offset: start}, nil
}

func (l *Lexer) lexColonName(start int) (Token, error) {
	l.pos++ // consume ':'
	textStart := l.pos
	if !l.atEOF() && isNameRune(l.src[l.pos]) && !isDigit(l.src[l.pos]) {
		l.pos++
		for !l.atEOF() && isNameRune(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos == textStart {
		return Token{}, lexError(start, "empty variable name after ':'")
	}
	text := string(l.src[textStart:l.pos])
	return Token{Kind: COLON_NAME, Text: text, Offset: start}, nil
}

func (l *Lexer) lexWord(start int) (Token, error) {
	p := l.pos
	for p < len(l.src) && !isDelimiter(l.src[p]) && !isOperatorStart(l.src[p]) {
		p++
	}
	if p == start {
		// a byte that isOperatorStart would have already claimed the first
		// time through; reaching here means it's some other stray byte.
		p++
	}
	text := string(l.src[start:p])
	if len(text) > 255 {
		return Token{}, lexError(start, "atom exceeds 255 bytes")
	}
	l.pos = p
	return Token{Kind: WORD, Text: text, Offset: start}, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ReadList consumes tokens up to and including the matching RIGHT_BRACKET
// and builds the corresponding cons structure, to be called immediately
// after a LEFT_BRACKET has been consumed by the caller (spec.md §4.1: lists
// are recognised at lex time by bracket matching; nested brackets balance
// recursively; operators and colons inside a list remain as-is, stored as
// atoms preserving their source text).
func (l *Lexer) ReadList() (heap.Handle, error) {
	var items []heap.Handle
	for {
		l.skipTrivia()
		if l.atEOF() {
			return heap.NIL, lexError(l.pos, "unterminated list: missing ']'")
		}
		c := l.src[l.pos]
		if c == ']' {
			l.pos++
			l.hasPrev, l.prevKind = true, RIGHT_BRACKET
			return l.heap.List(items...), nil
		}
		if c == '[' {
			l.pos++
			nested, err := l.ReadList()
			if err != nil {
				return heap.NIL, err
			}
			items = append(items, nested)
			continue
		}
		start := l.pos
		for !l.atEOF() && !isDelimiter(l.src[l.pos]) {
			l.pos++
		}
		if l.pos == start {
			return heap.NIL, lexError(start, "unexpected character in list")
		}
		text := string(l.src[start:l.pos])
		items = append(items, l.heap.Intern(text))
	}
}

// TokenText renders the literal surface text the lexer saw for tok,
// including any sigil it stripped (" or :), mainly for error messages.
func TokenText(tok Token) string {
	switch tok.Kind {
	case QUOTED_WORD:
		return "\"" + tok.Text
	case COLON_NAME:
		return ":" + tok.Text
	default:
		if tok.Text != "" {
			return tok.Text
		}
		return tok.Kind.String()
	}
}
