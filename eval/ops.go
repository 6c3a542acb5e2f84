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

import (
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/value"
)

func boolWord(h *heap.Heap, b bool) value.Value {
	if b {
		return value.Word(h.Intern("true"))
	}
	return value.Word(h.Intern("false"))
}

// applyBinary evaluates one infix operator application (spec.md §4.3):
// arithmetic coerces both sides to numbers, comparisons use Logo's
// equalp/orderp rules, and and/or short-circuit only in the sense that
// both operands are already evaluated by the time applyBinary runs (the
// precedence climb in evalExpression has no way to skip evaluating the
// right-hand side, matching most Logo dialects' eager `and`/`or`).
func applyBinary(h *heap.Heap, op lexer.Kind, left, right value.Value) (value.Value, error) {
	switch op {
	case lexer.OP_PLUS, lexer.OP_MINUS, lexer.OP_MUL, lexer.OP_DIV:
		a, ok := value.AsNumberCoerce(h, left)
		if !ok {
			return value.None, errBadInput(left.Text(h))
		}
		b, ok := value.AsNumberCoerce(h, right)
		if !ok {
			return value.None, errBadInput(right.Text(h))
		}
		switch op {
		case lexer.OP_PLUS:
			return value.Number(a + b), nil
		case lexer.OP_MINUS:
			return value.Number(a - b), nil
		case lexer.OP_MUL:
			return value.Number(a * b), nil
		case lexer.OP_DIV:
			if b == 0 {
				return value.None, errDivideByZero()
			}
			return value.Number(a / b), nil
		}
	case lexer.OP_EQ:
		return boolWord(h, value.Equal(h, left, right)), nil
	case lexer.OP_NE:
		return boolWord(h, !value.Equal(h, left, right)), nil
	case lexer.OP_LT, lexer.OP_GT, lexer.OP_LE, lexer.OP_GE:
		a, aok := value.AsNumberCoerce(h, left)
		b, bok := value.AsNumberCoerce(h, right)
		if !aok || !bok {
			return value.None, errBadInput("<ordering>")
		}
		switch op {
		case lexer.OP_LT:
			return boolWord(h, a < b), nil
		case lexer.OP_GT:
			return boolWord(h, a > b), nil
		case lexer.OP_LE:
			return boolWord(h, a <= b), nil
		case lexer.OP_GE:
			return boolWord(h, a >= b), nil
		}
	case lexer.OP_AND, lexer.OP_OR:
		lb, lok := value.Truthy(h, left)
		rb, rok := value.Truthy(h, right)
		if !lok || !rok {
			return value.None, errNotBool("and/or")
		}
		if op == lexer.OP_AND {
			return boolWord(h, lb && rb), nil
		}
		return boolWord(h, lb || rb), nil
	}
	return value.None, errUnexpectedToken(op.String())
}
