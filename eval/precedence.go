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

package eval

import "github.com/logoscript/logo/lexer"

// Binding powers the evaluator's Pratt-style precedence climb (spec.md
// §4.3): or binds loosest, multiplicative tightest, and each argument of
// a bare procedure call is a whole expression, so that `print 1 + 2`
// parses as `print (1 + 2)`.
const (
	precLowest = iota
	precOr
	precAnd
	precCompare
	precAdditive
	precMultiplicative
)

// precCallArg is the argument-gathering precedence: every infix operator
// binds at or above it, so an argument takes in the operators after it.
const precCallArg = precLowest

func precedenceOf(k lexer.Kind) int {
	switch k {
	case lexer.OP_OR:
		return precOr
	case lexer.OP_AND:
		return precAnd
	case lexer.OP_EQ, lexer.OP_NE, lexer.OP_LT, lexer.OP_GT, lexer.OP_LE, lexer.OP_GE:
		return precCompare
	case lexer.OP_PLUS, lexer.OP_MINUS:
		return precAdditive
	case lexer.OP_MUL, lexer.OP_DIV:
		return precMultiplicative
	default:
		return precLowest
	}
}
