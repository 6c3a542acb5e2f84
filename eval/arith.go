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

// Prefix arithmetic primitives. The infix operators (+, -, *, /, and
// comparisons) live in ops.go alongside the precedence-climbing
// evaluator; this file only covers the prefix-call forms of the same
// operations plus the small numeric function set spec.md names.
package eval

import (
	"math"

	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerArithPrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "sum", Min: 2, Default: 2, Max: -1, Fn: primSum})
	t.Register(prim.Entry{Name: "difference", Min: 2, Default: 2, Max: 2, Fn: primDifference})
	t.Register(prim.Entry{Name: "product", Min: 2, Default: 2, Max: -1, Fn: primProduct})
	t.Register(prim.Entry{Name: "quotient", Min: 2, Default: 2, Max: 2, Fn: primQuotient})
	t.Register(prim.Entry{Name: "remainder", Min: 2, Default: 2, Max: 2, Fn: primRemainder})
	t.Register(prim.Entry{Name: "minus", Min: 1, Default: 1, Max: 1, Fn: primMinus})
	t.Register(prim.Entry{Name: "abs", Min: 1, Default: 1, Max: 1, Fn: primAbs})
	t.Register(prim.Entry{Name: "sqrt", Min: 1, Default: 1, Max: 1, Fn: primSqrt})
	t.Register(prim.Entry{Name: "power", Min: 2, Default: 2, Max: 2, Fn: primPower})
	t.Register(prim.Entry{Name: "int", Min: 1, Default: 1, Max: 1, Fn: primInt})
	t.Register(prim.Entry{Name: "round", Min: 1, Default: 1, Max: 1, Fn: primRound})
	t.Register(prim.Entry{Name: "greaterp", Min: 2, Default: 2, Max: 2, Fn: primGreaterp})
	t.Register(prim.Entry{Name: "lessp", Min: 2, Default: 2, Max: 2, Fn: primLessp})
}

func numOperand(e prim.Evaluator, v value.Value) (float32, bool) {
	return value.AsNumberCoerce(e.Heap(), v)
}

func primSum(e prim.Evaluator, args []value.Value) value.Result {
	var total float32
	for _, a := range args {
		n, ok := numOperand(e, a)
		if !ok {
			return value.Error(errBadInput("sum"))
		}
		total += n
	}
	return value.OK(value.Number(total))
}

func primDifference(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("difference"))
	}
	return value.OK(value.Number(a - b))
}

func primProduct(e prim.Evaluator, args []value.Value) value.Result {
	total := float32(1)
	for _, a := range args {
		n, ok := numOperand(e, a)
		if !ok {
			return value.Error(errBadInput("product"))
		}
		total *= n
	}
	return value.OK(value.Number(total))
}

func primQuotient(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("quotient"))
	}
	if b == 0 {
		return value.Error(errDivideByZero())
	}
	return value.OK(value.Number(a / b))
}

func primRemainder(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("remainder"))
	}
	if b == 0 {
		return value.Error(errDivideByZero())
	}
	return value.OK(value.Number(float32(math.Mod(float64(a), float64(b)))))
}

func primMinus(e prim.Evaluator, args []value.Value) value.Result {
	a, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("minus"))
	}
	return value.OK(value.Number(-a))
}

func primAbs(e prim.Evaluator, args []value.Value) value.Result {
	a, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("abs"))
	}
	return value.OK(value.Number(float32(math.Abs(float64(a)))))
}

func primSqrt(e prim.Evaluator, args []value.Value) value.Result {
	a, ok := numOperand(e, args[0])
	if !ok || a < 0 {
		return value.Error(errBadInput("sqrt"))
	}
	return value.OK(value.Number(float32(math.Sqrt(float64(a)))))
}

func primPower(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("power"))
	}
	return value.OK(value.Number(float32(math.Pow(float64(a), float64(b)))))
}

func primInt(e prim.Evaluator, args []value.Value) value.Result {
	a, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("int"))
	}
	return value.OK(value.Number(float32(math.Trunc(float64(a)))))
}

func primRound(e prim.Evaluator, args []value.Value) value.Result {
	a, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("round"))
	}
	return value.OK(value.Number(float32(math.Round(float64(a)))))
}

func primGreaterp(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("greaterp"))
	}
	return value.OK(boolWord(e.Heap(), a > b))
}

func primLessp(e prim.Evaluator, args []value.Value) value.Result {
	a, ok1 := numOperand(e, args[0])
	b, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("lessp"))
	}
	return value.OK(boolWord(e.Heap(), a < b))
}
