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

package sqleval

import (
	"fmt"
	"io"
	"os"

	"github.com/rulego/sqleval/condition"
	"github.com/rulego/sqleval/data"
	"github.com/rulego/sqleval/expr"
	"github.com/rulego/sqleval/logger"
)

const componentName = "sqleval"

var defaultOutput io.Writer = os.Stdout

// Engine 是表达式求值的入口。
// 它持有日志记录器和求值器，本身不保存任何行状态，可并发使用。
type Engine struct {
	logger    logger.Logger
	level     *logger.Level
	evaluator *expr.Evaluator
}

// New 创建Engine实例
//
// 示例:
//
//	engine := sqleval.New()
//	v, err := engine.Evaluate(expr.Fact(expr.Num("10")), nil) // I128(3628800)
func New(options ...Option) *Engine {
	e := &Engine{logger: logger.GetDefault()}
	for _, option := range options {
		option(e)
	}
	if e.level != nil {
		if e.logger == logger.GetDefault() {
			// 不修改全局日志记录器的级别
			e.logger = logger.NewComponentLogger(componentName, *e.level, defaultOutput)
		} else {
			e.logger = logger.NewLevelLogger(e.logger, *e.level)
		}
	}
	e.evaluator = expr.NewEvaluator(expr.WithLogger(e.logger))
	return e
}

// Logger returns the logger used by the engine
func (e *Engine) Logger() logger.Logger { return e.logger }

// Evaluate evaluates x against row. A nil row has no columns.
func (e *Engine) Evaluate(x expr.Expr, row expr.Row) (data.Value, error) {
	return e.evaluator.Evaluate(x, row)
}

// EvaluateMap evaluates x against a row of plain Go values.
func (e *Engine) EvaluateMap(x expr.Expr, row map[string]interface{}) (data.Value, error) {
	return e.evaluator.Evaluate(x, expr.NativeRow(row))
}

// Fold evaluates a constant expression on the fold path.
func (e *Engine) Fold(x expr.Expr) (expr.Evaluated, error) {
	return e.evaluator.Fold(x)
}

// Prepare folds the constant subtrees of x once. Errors in constant parts,
// such as 1000!, are returned here rather than on the first row.
func (e *Engine) Prepare(x expr.Expr) (*Prepared, error) {
	p, err := e.evaluator.Prepare(x)
	if err != nil {
		return nil, err
	}
	return &Prepared{expr: p, evaluator: e.evaluator}, nil
}

// Condition compiles a textual boolean condition.
func (e *Engine) Condition(expression string) (condition.Condition, error) {
	c, err := condition.NewExprCondition(expression)
	if err != nil {
		e.logger.Warn("invalid condition %q: %v", expression, err)
		return nil, fmt.Errorf("compile condition: %w", err)
	}
	e.logger.Debug("compiled condition %q", expression)
	return c, nil
}

// Prepared is an expression whose constant parts are already folded.
type Prepared struct {
	expr      expr.Expr
	evaluator *expr.Evaluator
}

// Expr returns the folded expression tree
func (p *Prepared) Expr() expr.Expr { return p.expr }

// Evaluate evaluates the prepared expression against row.
func (p *Prepared) Evaluate(row expr.Row) (data.Value, error) {
	return p.evaluator.Evaluate(p.expr, row)
}

// EvaluateMap evaluates the prepared expression against plain Go values.
func (p *Prepared) EvaluateMap(row map[string]interface{}) (data.Value, error) {
	return p.evaluator.Evaluate(p.expr, expr.NativeRow(row))
}

func (p *Prepared) String() string { return p.expr.String() }
