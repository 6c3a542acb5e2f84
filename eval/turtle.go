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

// Turtle-graphics primitives backed by console.Turtle.
package eval

import (
	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/value"
)

func registerTurtlePrims(t *prim.Table) {
	t.Register(prim.Entry{Name: "forward", Min: 1, Default: 1, Max: 1, Fn: primForward})
	t.Register(prim.Entry{Name: "back", Min: 1, Default: 1, Max: 1, Fn: primBack})
	t.Register(prim.Entry{Name: "right", Min: 1, Default: 1, Max: 1, Fn: primRight})
	t.Register(prim.Entry{Name: "left", Min: 1, Default: 1, Max: 1, Fn: primLeft})
	t.Register(prim.Entry{Name: "setpos", Min: 1, Default: 1, Max: 1, Fn: primSetpos})
	t.Register(prim.Entry{Name: "setxy", Min: 2, Default: 2, Max: 2, Fn: primSetxy})
	t.Register(prim.Entry{Name: "seth", Min: 1, Default: 1, Max: 1, Fn: primSeth})
	t.Register(prim.Entry{Name: "pendown", Min: 0, Default: 0, Max: 0, Fn: primPendown})
	t.Register(prim.Entry{Name: "penup", Min: 0, Default: 0, Max: 0, Fn: primPenup})
	t.Register(prim.Entry{Name: "setpencolor", Min: 1, Default: 1, Max: 1, Fn: primSetpencolor})
	t.Register(prim.Entry{Name: "showturtle", Min: 0, Default: 0, Max: 0, Fn: primShowturtle})
	t.Register(prim.Entry{Name: "hideturtle", Min: 0, Default: 0, Max: 0, Fn: primHideturtle})
	t.Register(prim.Entry{Name: "home", Min: 0, Default: 0, Max: 0, Fn: primHome})
	t.Register(prim.Entry{Name: "clean", Min: 0, Default: 0, Max: 0, Fn: primClean})
	t.Register(prim.Entry{Name: "pos", Min: 0, Default: 0, Max: 0, Fn: primPos})
	t.Register(prim.Entry{Name: "heading", Min: 0, Default: 0, Max: 0, Fn: primHeading})
}

func turtleOf(e prim.Evaluator) (console.Turtle, error) {
	cb := e.Console()
	if cb == nil || cb.Turtle == nil {
		return nil, errUnsupportedOnDevice("turtle")
	}
	return cb.Turtle, nil
}

func primForward(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	n, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("forward"))
	}
	if err := tt.Move(float64(n)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primBack(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	n, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("back"))
	}
	if err := tt.Move(-float64(n)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primRight(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	n, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("right"))
	}
	if err := tt.Turn(float64(n)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primLeft(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	n, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("left"))
	}
	if err := tt.Turn(-float64(n)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primSetpos(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	elems := e.Heap().Elements(asList(args[0]))
	if len(elems) != 2 {
		return value.Error(errBadInput("setpos"))
	}
	x, ok1 := numericElement(e.Heap(), elems[0])
	y, ok2 := numericElement(e.Heap(), elems[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("setpos"))
	}
	if err := tt.SetPosition(float64(x), float64(y)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primSetxy(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	x, ok1 := numOperand(e, args[0])
	y, ok2 := numOperand(e, args[1])
	if !ok1 || !ok2 {
		return value.Error(errBadInput("setxy"))
	}
	if err := tt.SetPosition(float64(x), float64(y)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primSeth(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	n, ok := numOperand(e, args[0])
	if !ok {
		return value.Error(errBadInput("seth"))
	}
	if err := tt.SetHeading(float64(n)); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primPendown(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	tt.SetPenDown(true)
	return value.NoneResult()
}

func primPenup(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	tt.SetPenDown(false)
	return value.NoneResult()
}

func primSetpencolor(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	s, ok := wordText(e.Heap(), args[0])
	if !ok {
		if args[0].Kind() == value.KindNumber {
			s = value.FormatNumber(args[0].AsNumber())
		} else {
			return value.Error(errBadInput("setpencolor"))
		}
	}
	if err := tt.SetPenColor(s); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primShowturtle(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	tt.SetVisible(true)
	return value.NoneResult()
}

func primHideturtle(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	tt.SetVisible(false)
	return value.NoneResult()
}

func primHome(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	if err := tt.SetPosition(0, 0); err != nil {
		return value.Error(err)
	}
	if err := tt.SetHeading(0); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primClean(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	if err := tt.ClearGraphics(); err != nil {
		return value.Error(err)
	}
	return value.NoneResult()
}

func primPos(e prim.Evaluator, args []value.Value) value.Result {
	h := e.Heap()
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	x, y := tt.Position()
	return value.OK(value.List(h.List(h.Intern(value.FormatNumber(float32(x))), h.Intern(value.FormatNumber(float32(y))))))
}

func primHeading(e prim.Evaluator, args []value.Value) value.Result {
	tt, err := turtleOf(e)
	if err != nil {
		return value.Error(err)
	}
	return value.OK(value.Number(float32(tt.Heading())))
}
