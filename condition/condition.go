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

package condition

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rulego/sqleval/data"
)

// Condition is a compiled boolean expression
type Condition interface {
	// Evaluate returns the result, false when evaluation fails
	Evaluate(env interface{}) bool
	// EvaluateE returns the result or the evaluation error
	EvaluateE(env interface{}) (bool, error)
}

type ExprCondition struct {
	program *vm.Program
}

// NewExprCondition compiles expression with the SQL functions registered.
func NewExprCondition(expression string) (Condition, error) {
	options := []expr.Option{
		expr.Function("like", likeFunc("like", true, false)),
		expr.Function("ilike", likeFunc("ilike", false, false)),
		expr.Function("not_like", likeFunc("not_like", true, true)),
		expr.Function("not_ilike", likeFunc("not_ilike", false, true)),
		expr.Function("factorial", unaryFunc("factorial", data.Value.UnaryFactorial)),
		expr.Function("bit_not", unaryFunc("bit_not", data.Value.UnaryBitNot)),
		expr.Function("neg", unaryFunc("neg", data.Value.UnaryMinus)),
		expr.Function("cast", castFunc),
		expr.Function("is_null", nullFunc("is_null", true)),
		expr.Function("is_not_null", nullFunc("is_not_null", false)),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	}

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{program: program}, nil
}

func (ec *ExprCondition) Evaluate(env interface{}) bool {
	ok, err := ec.EvaluateE(env)
	return err == nil && ok
}

func (ec *ExprCondition) EvaluateE(env interface{}) (bool, error) {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		// a NULL condition is not satisfied
		return false, nil
	}
	return b, nil
}

// args converts the parameters of name with data.FromGo.
func args(name string, n int, params []any) ([]data.Value, error) {
	if len(params) != n {
		return nil, fmt.Errorf("%s function requires %d parameters", name, n)
	}
	values := make([]data.Value, n)
	for i, p := range params {
		v, err := data.FromGo(p)
		if err != nil {
			return nil, fmt.Errorf("%s function: %w", name, err)
		}
		values[i] = v
	}
	return values, nil
}

// toGo returns v as a Go value expr-lang can compare and compute with.
// INT128 results that fit int become int; decimals become float64.
func toGo(v data.Value) any {
	switch x := v.Interface().(type) {
	case *big.Int:
		if x.IsInt64() {
			return int(x.Int64())
		}
		return x
	case *apd.Decimal:
		f, err := x.Float64()
		if err != nil {
			return x
		}
		return f
	default:
		return x
	}
}

func likeFunc(name string, caseSensitive, negated bool) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		values, err := args(name, 2, params)
		if err != nil {
			return nil, err
		}
		r, err := values[0].Like(values[1], caseSensitive)
		if err != nil {
			return nil, err
		}
		if negated {
			if r, err = r.Not(); err != nil {
				return nil, err
			}
		}
		return toGo(r), nil
	}
}

func unaryFunc(name string, op func(data.Value) (data.Value, error)) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		values, err := args(name, 1, params)
		if err != nil {
			return nil, err
		}
		r, err := op(values[0])
		if err != nil {
			return nil, err
		}
		return toGo(r), nil
	}
}

// castFunc is cast(v, 'TYPE').
func castFunc(params ...any) (any, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("cast function requires 2 parameters")
	}
	name, ok := params[1].(string)
	if !ok {
		return nil, fmt.Errorf("cast function requires a type name, got %T", params[1])
	}
	t, err := data.ParseDataType(name)
	if err != nil {
		return nil, err
	}
	v, err := data.FromGo(params[0])
	if err != nil {
		return nil, fmt.Errorf("cast function: %w", err)
	}
	r, err := v.Cast(t)
	if err != nil {
		return nil, err
	}
	return toGo(r), nil
}

func nullFunc(name string, want bool) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return false, fmt.Errorf("%s function requires 1 parameter", name)
		}
		if params[0] == nil {
			return want, nil
		}
		v, err := data.FromGo(params[0])
		if err != nil {
			// a value FromGo cannot convert is still a value
			return !want, nil
		}
		return v.IsNull() == want, nil
	}
}
