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

// Package eval drives the lexer/tokensrc layers against the heap, vars,
// props, proc and prim stores to actually run Logo programs (spec.md §4).
// Its shape mirrors the teacher's vm.Instance.Run: a dispatch loop reading
// one unit of work at a time from a source, except here the "opcodes" are
// Logo instructions and the "program counter" is a tokensrc.Source rather
// than an integer index into a flat image.
package eval

import (
	"github.com/pkg/errors"

	"github.com/logoscript/logo/console"
	"github.com/logoscript/logo/frame"
	"github.com/logoscript/logo/heap"
	"github.com/logoscript/logo/lexer"
	"github.com/logoscript/logo/prim"
	"github.com/logoscript/logo/proc"
	"github.com/logoscript/logo/props"
	"github.com/logoscript/logo/tokensrc"
	"github.com/logoscript/logo/value"
	"github.com/logoscript/logo/vars"
)

// Interp is the evaluator: the live state shared by every instruction and
// expression evaluated in one Logo session.
type Interp struct {
	h       *heap.Heap
	frames  *frame.Stack
	vars    *vars.Store
	props   *props.Store
	procs   *proc.Table
	prims   *prim.Table
	console *console.Bundle

	// caughtErr is the `error` variable's backing slot (spec.md §4.3's
	// `catch "error` convention): the most recent StatusError result
	// intercepted by a catch, read back by the `error` primitive until a
	// later catch replaces it.
	caughtErr *LogoError

	// paused is true while a pauseLoop is running, for the REPL host to
	// observe (e.g. to change its prompt) via Paused.
	paused bool

	// procDepth counts active callUser activations. It is zero at the
	// REPL/script top level even though a permanent frame (pushed once
	// below, never popped) gives top-level `local`/`for`/template-param
	// bindings somewhere to live; STOP is a no-op there, and OUTPUT is an
	// error, only when procDepth is zero (spec.md §4.3's top-level
	// instruction rule).
	procDepth int
}

// New creates an Interp over a fresh heap/frame arena, registering every
// built-in primitive. console may be nil; capability-backed primitives
// then fail with an ErrUnsupportedOnDevice error when invoked.
func New(h *heap.Heap, cons *console.Bundle) *Interp {
	fr := frame.New(0)
	// A permanent, never-popped frame gives top-level `local`, `for`, and
	// higher-order template parameters a binding scope identical to a
	// procedure's, without making the top level look like it is "inside a
	// procedure" for STOP/OUTPUT purposes (tracked separately by
	// procDepth).
	fr.Push(heap.NIL)
	it := &Interp{
		h:       h,
		frames:  fr,
		vars:    vars.New(h, fr),
		props:   props.New(h),
		procs:   proc.New(h),
		prims:   prim.New(h),
		console: cons,
	}
	RegisterBuiltins(it.prims)
	return it
}

// --- prim.Evaluator ---------------------------------------------------

func (it *Interp) Heap() *heap.Heap          { return it.h }
func (it *Interp) Vars() *vars.Store         { return it.vars }
func (it *Interp) Props() *props.Store       { return it.props }
func (it *Interp) Procs() *proc.Table        { return it.procs }
func (it *Interp) Frames() *frame.Stack      { return it.frames }
func (it *Interp) Console() *console.Bundle  { return it.console }

// Prims returns the primitive registry, so that a host package (e.g.
// internal/session) can register additional primitives after
// construction without eval needing to depend back on it.
func (it *Interp) Prims() *prim.Table { return it.prims }

// Paused reports whether a pauseLoop is currently suspended on this
// interpreter, for a REPL host to reflect in its prompt.
func (it *Interp) Paused() bool { return it.paused }
func (it *Interp) Frame() int                { return it.frames.Depth() - 1 }

// SetCaughtError records err as the pending `error` value. A nil err
// clears the slot (the `error` primitive outputs an empty list again).
func (it *Interp) SetCaughtError(err error) {
	if err == nil {
		it.caughtErr = nil
		return
	}
	var le *LogoError
	if errors.As(err, &le) {
		it.caughtErr = le
		return
	}
	it.caughtErr = &LogoError{Code: ErrDontKnowHow, Name: err.Error()}
}

// CaughtError returns the pending caught error, or nil if none.
func (it *Interp) CaughtError() error {
	if it.caughtErr == nil {
		return nil
	}
	return it.caughtErr
}

// RunList evaluates list as a sequence of instructions in the current
// frame (the `run` primitive's semantics, and the mechanism every other
// control-flow primitive that takes a "bracketed instruction list" builds
// on).
func (it *Interp) RunList(list heap.Handle) value.Result {
	src := tokensrc.NewListCursor(it.h, list)
	return it.runSource(src)
}

// EvalExprList evaluates list as a single expression and returns its
// value, for primitives like `apply`'s template argument.
func (it *Interp) EvalExprList(list heap.Handle) (value.Value, error) {
	src := tokensrc.NewListCursor(it.h, list)
	v, err := it.evalExpression(src, precLowest)
	if err != nil {
		return value.None, err
	}
	tok, err := src.Peek()
	if err != nil {
		return value.None, err
	}
	if tok.Kind != lexer.EOF {
		return value.None, errUnexpectedToken(lexer.TokenText(tok))
	}
	return v, nil
}

// CallProcedure invokes name (primitive or user-defined) with
// already-evaluated actual arguments.
func (it *Interp) CallProcedure(name heap.Handle, args []value.Value) value.Result {
	return it.call(it.h.Text(name), args)
}

// --- top-level driving --------------------------------------------------

// RunSource drives src to completion, as the REPL does for one line of
// typed input or cmd/logo does for a whole script file. It returns the
// first control-flow Result that escapes to the top level (typically
// NoneResult, or an ErrCode-carrying error Result).
func (it *Interp) RunSource(src tokensrc.Source) value.Result {
	res := it.runSource(src)
	if res.Status == value.StatusThrow {
		// a throw that no catch intercepted ends here as an error
		return value.Error(errUncaughtThrow(it.h.Text(res.ThrowTag)))
	}
	return res
}

func (it *Interp) runSource(src tokensrc.Source) value.Result {
	for {
		tok, err := src.Peek()
		if err != nil {
			return value.Error(err)
		}
		if tok.Kind == lexer.EOF {
			return value.NoneResult()
		}
		res := it.evalInstruction(src)
		if res.IsControl() {
			// Outside any procedure, `stop` has nothing to unwind to and
			// is a no-op; every other control status (output, throw,
			// error) ends the run and is handed back unchanged, so that
			// an enclosing catch or procedure call can act on it.
			if res.Status == value.StatusStop && it.procDepth == 0 {
				continue
			}
			return res
		}
	}
}

// evalInstruction consumes and runs exactly one instruction from src
// (spec.md §4.3): a bare call whose output, if any, must go unused.
func (it *Interp) evalInstruction(src tokensrc.Source) value.Result {
	tok, err := src.Peek()
	if err != nil {
		return value.Error(err)
	}
	switch tok.Kind {
	case lexer.WORD:
		// Inside a procedure, `output` (directly or through run/if/
		// repeat/catch) unwinds to the caller; a user procedure's output
		// used as a bare instruction is unused wherever it happens.
		_, isUser := it.procs.Lookup(tok.Text)
		res := it.evalCall(src, tok.Text)
		if res.Status == value.StatusOutput && (it.procDepth == 0 || isUser) {
			return value.Error(errOutputNotUsed(tok.Text))
		}
		return res
	case lexer.LEFT_PAREN:
		src.Next()
		res := it.evalParenForm(src)
		if res.Status == value.StatusOutput && it.procDepth == 0 {
			return value.Error(errOutputNotUsed("(...)"))
		}
		return res
	default:
		src.Next()
		return value.Error(errUnexpectedToken(lexer.TokenText(tok)))
	}
}

// evalCall consumes the already-peeked WORD token naming proc/primitive
// name, gathers its default argument count worth of expressions, and
// invokes it.
func (it *Interp) evalCall(src tokensrc.Source, name string) value.Result {
	src.Next() // consume the name token
	n, ok := it.defaultArgs(name)
	if !ok {
		return value.Error(errUnknownProc(name))
	}
	args := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := it.evalExpression(src, precCallArg)
		if err != nil {
			return unwrapControl(err)
		}
		args = append(args, v)
	}
	return it.call(name, args)
}

// evalParenForm implements Logo's "(name arg1 arg2 ... )" full-form call,
// which accepts any number of arguments up to a defined procedure's max,
// terminated explicitly by ')' rather than by a fixed default arity.
// "(expr)" with no leading procedure name is plain grouping.
func (it *Interp) evalParenForm(src tokensrc.Source) value.Result {
	tok, err := src.Peek()
	if err != nil {
		return value.Error(err)
	}
	if tok.Kind != lexer.WORD {
		v, err := it.evalExpression(src, precLowest)
		if err != nil {
			return unwrapControl(err)
		}
		if err := it.expect(src, lexer.RIGHT_PAREN); err != nil {
			return value.Error(err)
		}
		return value.OK(v)
	}
	name := tok.Text
	src.Next()
	var args []value.Value
	for {
		t, err := src.Peek()
		if err != nil {
			return value.Error(err)
		}
		if t.Kind == lexer.RIGHT_PAREN {
			src.Next()
			break
		}
		v, err := it.evalExpression(src, precCallArg)
		if err != nil {
			return unwrapControl(err)
		}
		args = append(args, v)
	}
	return it.call(name, args)
}

func (it *Interp) expect(src tokensrc.Source, k lexer.Kind) error {
	tok, err := src.Next()
	if err != nil {
		return err
	}
	if tok.Kind != k {
		return errUnexpectedToken(lexer.TokenText(tok))
	}
	return nil
}

// defaultArgs returns the default argument count a bare (unparenthesised)
// call to name gathers, per spec.md §4.3.
func (it *Interp) defaultArgs(name string) (int, bool) {
	if def, ok := it.procs.Lookup(name); ok {
		return def.MinArgs(), true
	}
	if e, ok := it.prims.Lookup(name); ok {
		return e.Default, true
	}
	return 0, false
}

// --- expressions ----------------------------------------------------

// evalExpression parses and evaluates one expression from src using
// precedence climbing: a primary term, followed by as many infix
// operators as bind at or above minPrec (spec.md §4.3).
func (it *Interp) evalExpression(src tokensrc.Source, minPrec int) (value.Value, error) {
	left, err := it.evalPrimary(src)
	if err != nil {
		return value.None, err
	}
	chained := false
	for {
		tok, err := src.Peek()
		if err != nil {
			return value.None, err
		}
		if !tok.Kind.IsOperator() || precedenceOf(tok.Kind) < minPrec {
			return left, nil
		}
		// Comparison operators do not chain: `a < b < c` raises an
		// error rather than parsing as `(a < b) < c` (spec.md §4.3's
		// precedence tie-breaks).
		if precedenceOf(tok.Kind) == precCompare {
			if chained {
				return value.None, errBadInput(lexer.TokenText(tok))
			}
			chained = true
		}
		src.Next()
		right, err := it.evalExpression(src, precedenceOf(tok.Kind)+1)
		if err != nil {
			return value.None, err
		}
		left, err = applyBinary(it.h, tok.Kind, left, right)
		if err != nil {
			return value.None, err
		}
	}
}

func (it *Interp) evalPrimary(src tokensrc.Source) (value.Value, error) {
	tok, err := src.Next()
	if err != nil {
		return value.None, err
	}
	switch tok.Kind {
	case lexer.NUMBER:
		n, ok := value.ParseNumber(tok.Text)
		if !ok {
			return value.None, errBadInput(tok.Text)
		}
		return value.Number(n), nil
	case lexer.QUOTED_WORD:
		return value.Word(it.h.Intern(tok.Text)), nil
	case lexer.COLON_NAME:
		v, ok := it.vars.Get(it.Frame(), tok.Text)
		if !ok {
			return value.None, errUnboundName(tok.Text)
		}
		return v, nil
	case lexer.LEFT_BRACKET:
		list, err := src.ReadList()
		if err != nil {
			return value.None, err
		}
		return value.List(list), nil
	case lexer.LIST_LITERAL:
		return value.List(tok.List), nil
	case lexer.LEFT_PAREN:
		res := it.evalParenForm(src)
		return it.resultToValue(res)
	case lexer.OP_UNARY_MINUS:
		v, err := it.evalExpression(src, precMultiplicative)
		if err != nil {
			return value.None, err
		}
		n, ok := value.AsNumberCoerce(it.h, v)
		if !ok {
			return value.None, errBadInput("-")
		}
		return value.Number(-n), nil
	case lexer.WORD:
		res := it.evalCall(srcPutBack(src, tok), tok.Text)
		return it.resultToValue(res)
	default:
		return value.None, errUnexpectedToken(lexer.TokenText(tok))
	}
}

// srcPutBack is a thin shim so evalPrimary can reuse evalCall, which
// expects to consume the WORD token itself via Peek+Next; since
// evalPrimary already consumed it with Next, this wraps src in a
// single-token lookahead buffer.
func srcPutBack(src tokensrc.Source, tok lexer.Token) tokensrc.Source {
	return &pushbackSource{under: src, tok: tok, has: true}
}

type pushbackSource struct {
	under tokensrc.Source
	tok   lexer.Token
	has   bool
}

func (p *pushbackSource) Peek() (lexer.Token, error) {
	if p.has {
		return p.tok, nil
	}
	return p.under.Peek()
}

func (p *pushbackSource) Next() (lexer.Token, error) {
	if p.has {
		p.has = false
		return p.tok, nil
	}
	return p.under.Next()
}

func (p *pushbackSource) ReadList() (heap.Handle, error) { return p.under.ReadList() }
func (p *pushbackSource) Save() int                      { return p.under.Save() }
func (p *pushbackSource) Restore(pos int)                { p.under.Restore(pos) }

// controlSignal carries a non-OK, non-Output Result through the error
// return of evalExpression/evalPrimary, so that a `stop`/`throw` reached
// while a procedure is being used in value position still unwinds
// correctly instead of being reported as a generic "no output" error.
type controlSignal struct{ res value.Result }

func (c *controlSignal) Error() string { return c.res.Status.String() }

func (it *Interp) resultToValue(res value.Result) (value.Value, error) {
	switch res.Status {
	case value.StatusOK, value.StatusOutput:
		return res.Value, nil
	case value.StatusError:
		return value.None, res.Err
	default:
		return value.None, &controlSignal{res: res}
	}
}

// unwrapControl recovers the original Result from an error produced by
// resultToValue's controlSignal case, or builds a fresh StatusError
// Result for any other error.
func unwrapControl(err error) value.Result {
	if cs, ok := err.(*controlSignal); ok {
		return cs.res
	}
	return value.Error(err)
}

// --- calling ----------------------------------------------------------

func (it *Interp) call(name string, args []value.Value) value.Result {
	if def, ok := it.procs.Lookup(name); ok {
		return it.callUser(def, args)
	}
	if e, ok := it.prims.Lookup(name); ok {
		if len(args) < e.Min {
			return value.Error(errTooFewInputs(name))
		}
		if e.Max >= 0 && len(args) > e.Max {
			return value.Error(errTooManyInputs(name))
		}
		return it.callPrim(e, args)
	}
	return value.Error(errUnknownProc(name))
}

// callPrim invokes a primitive's handler, converting a panic (the style
// the teacher's vm.Run uses for unrecoverable runtime faults) into a
// StatusError Result instead of crashing the whole session.
func (it *Interp) callPrim(e *prim.Entry, args []value.Value) (res value.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = value.Error(errors.Errorf("%v", r))
		}
	}()
	return e.Fn(it, args)
}

// callUser runs a user-defined procedure's body to completion, applying
// tail-call reuse (spec.md §4.3/§8 invariant 6) whenever the body's last
// instruction is itself a call to a user-defined procedure in tail
// position.
func (it *Interp) callUser(def *proc.Definition, args []value.Value) (result value.Result) {
	if len(args) < def.MinArgs() {
		return value.Error(errTooFewInputs(it.h.Text(def.Name)))
	}
	if def.MaxArgs() >= 0 && len(args) > def.MaxArgs() {
		return value.Error(errTooManyInputs(it.h.Text(def.Name)))
	}
	frameIdx, err := it.frames.Push(def.Name)
	if err != nil {
		return value.Error(err)
	}
	name := it.h.Text(def.Name)
	it.procDepth++
	defer func() {
		it.procDepth--
		it.frames.Pop()
		if result.Status == value.StatusError {
			result.Err = attachProcName(result.Err, name)
		}
	}()

	for {
		if err := it.bindParams(frameIdx, def, args); err != nil {
			return value.Error(err)
		}
		res, tail := it.runBody(frameIdx, def.Lines)
		if tail == nil {
			return res
		}
		if err := it.frames.Reuse(tail.def.Name); err != nil {
			return value.Error(err)
		}
		def, args = tail.def, tail.args
	}
}

func (it *Interp) bindParams(frameIdx int, def *proc.Definition, args []value.Value) error {
	for i, p := range def.Params {
		var v value.Value
		switch {
		case p.Rest:
			rest := args[i:]
			handles := make([]heap.Handle, len(rest))
			for j, a := range rest {
				handles[j] = valueAsElement(it.h, a)
			}
			v = value.List(it.h.List(handles...))
		case i < len(args):
			v = args[i]
		case !p.Default.IsNil():
			dv, err := it.EvalExprList(p.Default)
			if err != nil {
				return err
			}
			v = dv
		default:
			return errTooFewInputs(it.h.Text(def.Name))
		}
		if err := it.frames.Declare(frameIdx, p.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// tailCall signals that the body's final instruction was a direct call to
// a user-defined procedure, letting callUser reuse the current frame
// instead of recursing.
type tailCall struct {
	def  *proc.Definition
	args []value.Value
}

// runBody executes a procedure's body, line by line. If the very last
// instruction of the very last line is a bare call to a user-defined
// procedure, its arguments are evaluated but the call itself is deferred
// to the caller as a tailCall instead of being invoked recursively here.
func (it *Interp) runBody(frameIdx int, lines []heap.Handle) (value.Result, *tailCall) {
	for i, line := range lines {
		src := tokensrc.NewListCursor(it.h, line)
		last := i == len(lines)-1
		res, tail := it.runLine(src, last)
		if tail != nil {
			return value.Result{}, tail
		}
		if res.IsControl() {
			if res.Status == value.StatusStop {
				return value.NoneResult(), nil
			}
			return res, nil
		}
	}
	return value.NoneResult(), nil
}

// runLine runs every instruction in one body line, checking for a
// tail-callable final instruction only when allowTail is set (i.e. this
// is the procedure's last line).
func (it *Interp) runLine(src tokensrc.Source, allowTail bool) (value.Result, *tailCall) {
	for {
		tok, err := src.Peek()
		if err != nil {
			return value.Error(err), nil
		}
		if tok.Kind == lexer.EOF {
			return value.NoneResult(), nil
		}
		if allowTail && tok.Kind == lexer.WORD {
			if def, ok := it.procs.Lookup(tok.Text); ok {
				src.Next()
				n := def.MinArgs()
				args := make([]value.Value, 0, n)
				for i := 0; i < n; i++ {
					v, err := it.evalExpression(src, precCallArg)
					if err != nil {
						return unwrapControl(err), nil
					}
					args = append(args, v)
				}
				if t, err := src.Peek(); err == nil && t.Kind == lexer.EOF {
					return value.Result{}, &tailCall{def: def, args: args}
				}
				// not in tail position (more instructions follow on this
				// line): run it as an ordinary bare instruction with the
				// args already consumed, then go on with the line.
				res := it.call(tok.Text, args)
				if res.Status == value.StatusOutput {
					return value.Error(errOutputNotUsed(tok.Text)), nil
				}
				if res.IsControl() {
					return res, nil
				}
				continue
			}
		}
		res := it.evalInstruction(src)
		if res.IsControl() {
			return res, nil
		}
	}
}

func valueAsElement(h *heap.Heap, v value.Value) heap.Handle {
	switch v.Kind() {
	case value.KindWord, value.KindList:
		return v.AsHandle()
	case value.KindNumber:
		return h.Intern(value.FormatNumber(v.AsNumber()))
	default:
		return heap.NIL
	}
}
