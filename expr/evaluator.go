/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package expr

import (
	"errors"
	"fmt"

	"github.com/rulego/sqleval/data"
	"github.com/rulego/sqleval/logger"
)

// ErrNotConstant is returned by Fold when the expression references a column.
var ErrNotConstant = errors.New("expression references a column")

// Evaluator evaluates expression trees. It holds no per-row state and is
// safe for concurrent use.
type Evaluator struct {
	logger logger.Logger
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLogger sets the logger used for plan-time messages
func WithLogger(l logger.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEvaluator creates an evaluator. Without WithLogger it uses the global
// default logger.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{logger: logger.GetDefault()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate evaluates e against row and resolves the result to a Value.
// A nil row is treated as EmptyRow.
func (ev *Evaluator) Evaluate(e Expr, row Row) (data.Value, error) {
	r, err := ev.Eval(e, row)
	if err != nil {
		return data.Null, err
	}
	return r.ToValue()
}

// Eval evaluates e against row without resolving a literal result.
func (ev *Evaluator) Eval(e Expr, row Row) (Evaluated, error) {
	if row == nil {
		row = EmptyRow{}
	}
	return eval(e, row)
}

// Fold evaluates a constant expression on the fold path. It returns
// ErrNotConstant if e references a column.
func (ev *Evaluator) Fold(e Expr) (Evaluated, error) {
	return eval(e, nil)
}

// IsConstant reports whether e references no column.
func IsConstant(e Expr) bool {
	switch n := e.(type) {
	case *Literal, *Constant:
		return true
	case *Identifier:
		return false
	case *UnaryOp:
		return IsConstant(n.Expr)
	case *BinaryOp:
		return IsConstant(n.Left) && IsConstant(n.Right)
	case *Like:
		return IsConstant(n.Expr) && IsConstant(n.Pattern)
	case *Cast:
		return IsConstant(n.Expr)
	case *IsNull:
		return IsConstant(n.Expr)
	case *Nested:
		return IsConstant(n.Expr)
	}
	panic(unexpected(e))
}

// Prepare replaces every constant subtree of e with a Constant holding its
// folded result, so rows only evaluate what depends on them. Errors found
// while folding are returned here, before any row is seen.
func (ev *Evaluator) Prepare(e Expr) (Expr, error) {
	switch e.(type) {
	case *Literal, *Constant, *Identifier:
		return e, nil
	}
	if IsConstant(e) {
		r, err := eval(e, nil)
		if err != nil {
			ev.logger.Warn("constant expression %s failed: %v", e, err)
			return nil, fmt.Errorf("prepare %s: %w", e, err)
		}
		if ev.logger.Enabled(logger.DEBUG) {
			ev.logger.Debug("folded %s into %s", e, r)
		}
		return &Constant{Value: r}, nil
	}
	switch n := e.(type) {
	case *UnaryOp:
		x, err := ev.Prepare(n.Expr)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: n.Op, Expr: x}, nil
	case *BinaryOp:
		l, err := ev.Prepare(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := ev.Prepare(n.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Left: l, Op: n.Op, Right: r}, nil
	case *Like:
		x, err := ev.Prepare(n.Expr)
		if err != nil {
			return nil, err
		}
		p, err := ev.Prepare(n.Pattern)
		if err != nil {
			return nil, err
		}
		return &Like{Expr: x, Pattern: p, Negated: n.Negated, CaseSensitive: n.CaseSensitive}, nil
	case *Cast:
		x, err := ev.Prepare(n.Expr)
		if err != nil {
			return nil, err
		}
		return &Cast{Expr: x, DataType: n.DataType}, nil
	case *IsNull:
		x, err := ev.Prepare(n.Expr)
		if err != nil {
			return nil, err
		}
		return &IsNull{Expr: x, Negated: n.Negated}, nil
	case *Nested:
		x, err := ev.Prepare(n.Expr)
		if err != nil {
			return nil, err
		}
		return &Nested{Expr: x}, nil
	}
	panic(unexpected(e))
}

// eval dispatches on the node. A nil row means fold: identifiers fail with
// ErrNotConstant.
func eval(e Expr, row Row) (Evaluated, error) {
	switch n := e.(type) {
	case *Literal:
		if n == nil {
			break
		}
		return FromLiteral(n.Value), nil
	case *Constant:
		if n == nil {
			break
		}
		return n.Value, nil
	case *Identifier:
		if n == nil {
			break
		}
		if row == nil {
			return Evaluated{}, fmt.Errorf("%w: %s", ErrNotConstant, n.Name)
		}
		v, err := row.Get(n.Name)
		if err != nil {
			return Evaluated{}, err
		}
		return FromValue(v), nil
	case *UnaryOp:
		if n == nil || n.Expr == nil {
			break
		}
		x, err := eval(n.Expr, row)
		if err != nil {
			return Evaluated{}, err
		}
		return evalUnary(n, x)
	case *BinaryOp:
		if n == nil || n.Left == nil || n.Right == nil {
			break
		}
		l, err := eval(n.Left, row)
		if err != nil {
			return Evaluated{}, err
		}
		r, err := eval(n.Right, row)
		if err != nil {
			return Evaluated{}, err
		}
		return evalBinary(n.Op, l, r)
	case *Like:
		if n == nil || n.Expr == nil || n.Pattern == nil {
			break
		}
		x, err := eval(n.Expr, row)
		if err != nil {
			return Evaluated{}, err
		}
		p, err := eval(n.Pattern, row)
		if err != nil {
			return Evaluated{}, err
		}
		return evalLike(n, x, p)
	case *Cast:
		if n == nil || n.Expr == nil {
			break
		}
		x, err := eval(n.Expr, row)
		if err != nil {
			return Evaluated{}, err
		}
		return evalCast(n.DataType, x)
	case *IsNull:
		if n == nil || n.Expr == nil {
			break
		}
		x, err := eval(n.Expr, row)
		if err != nil {
			return Evaluated{}, err
		}
		isNull := x.IsNull() != n.Negated
		if x.IsLiteral() {
			return FromLiteral(data.Boolean(isNull)), nil
		}
		return FromValue(data.Bool(isNull)), nil
	case *Nested:
		if n == nil || n.Expr == nil {
			break
		}
		return eval(n.Expr, row)
	}
	panic(unexpected(e))
}

func evalUnary(n *UnaryOp, x Evaluated) (Evaluated, error) {
	if l, ok := x.Literal(); ok {
		switch n.Op {
		case Minus:
			return literalResult(l.UnaryMinus())
		case Plus:
			return literalResult(l.UnaryPlus())
		case BitwiseNot:
			return valueResult(l.UnaryBitNot())
		case Factorial:
			return valueResult(l.UnaryFactorial())
		case Not:
			return literalResult(l.Not())
		}
		panic(unexpected(n))
	}
	v, _ := x.Value()
	switch n.Op {
	case Minus:
		return valueResult(v.UnaryMinus())
	case Plus:
		return valueResult(v.UnaryPlus())
	case BitwiseNot:
		return valueResult(v.UnaryBitNot())
	case Factorial:
		return valueResult(v.UnaryFactorial())
	case Not:
		return valueResult(v.Not())
	}
	panic(unexpected(n))
}

// evalBinary keeps two literals on the fold path. A literal next to a value
// is bound to the value's type first.
func evalBinary(op data.BinaryOp, l, r Evaluated) (Evaluated, error) {
	ll, lok := l.Literal()
	rl, rok := r.Literal()
	if lok && rok {
		return valueResult(ll.Binary(op, rl))
	}
	x, y := l.value, r.value
	var err error
	if lok {
		if x, err = ll.Bind(y.Type()); err != nil {
			return Evaluated{}, err
		}
	}
	if rok {
		if y, err = rl.Bind(x.Type()); err != nil {
			return Evaluated{}, err
		}
	}
	return valueResult(x.Binary(op, y))
}

func evalLike(n *Like, x, p Evaluated) (Evaluated, error) {
	xl, xok := x.Literal()
	pl, pok := p.Literal()
	if xok && pok {
		r, err := xl.Like(pl, n.CaseSensitive)
		if err != nil {
			return Evaluated{}, err
		}
		if n.Negated {
			return literalResult(r.Not())
		}
		return FromLiteral(r), nil
	}
	xv, err := x.ToValue()
	if err != nil {
		return Evaluated{}, err
	}
	pv, err := p.ToValue()
	if err != nil {
		return Evaluated{}, err
	}
	r, err := xv.Like(pv, n.CaseSensitive)
	if err != nil {
		return Evaluated{}, err
	}
	if n.Negated {
		return valueResult(r.Not())
	}
	return FromValue(r), nil
}

func evalCast(t data.DataType, x Evaluated) (Evaluated, error) {
	if l, ok := x.Literal(); ok {
		return valueResult(l.Cast(t))
	}
	v, _ := x.Value()
	return valueResult(v.Cast(t))
}

func literalResult(l data.Literal, err error) (Evaluated, error) {
	if err != nil {
		return Evaluated{}, err
	}
	return FromLiteral(l), nil
}

func valueResult(v data.Value, err error) (Evaluated, error) {
	if err != nil {
		return Evaluated{}, err
	}
	return FromValue(v), nil
}

func unexpected(e Expr) string {
	return fmt.Sprintf("expr: unexpected expression %T", e)
}

// Evaluate evaluates e against row with a default evaluator.
func Evaluate(e Expr, row Row) (data.Value, error) {
	return NewEvaluator().Evaluate(e, row)
}

// Fold folds a constant expression with a default evaluator.
func Fold(e Expr) (Evaluated, error) {
	return NewEvaluator().Fold(e)
}

// Prepare folds the constant subtrees of e with a default evaluator.
func Prepare(e Expr) (Expr, error) {
	return NewEvaluator().Prepare(e)
}
