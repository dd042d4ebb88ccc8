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

/*
Package expr provides the expression tree and the dual-path evaluator of sqleval.

An expression tree is produced by a SQL front end (or built directly with the
helper constructors in this package) and evaluated against a Row. Every node
is evaluated on one of two paths:

• Fold path - all operands are literals; operations keep arbitrary precision
as long as possible and report *data.LiteralError
• Execution path - at least one operand came from a row; operations run on
resolved data.Value operands and report *data.ValueError

Both paths share the same semantics, so an expression over literals and the
same expression over the literals' resolved values injected through a row
yield the same value or an error of the same data.ErrorKind.

# Expression Types

	Literal     - constant leaf (NULL, boolean, number, text, bytea)
	Identifier  - column reference, nested paths like "device.info[0]"
	UnaryOp     - Minus, Plus, BitwiseNot, Factorial, Not
	BinaryOp    - arithmetic, comparison, AND/OR, concatenation
	Like        - [NOT] LIKE / ILIKE
	Cast        - CAST(expr AS type)
	IsNull      - IS [NOT] NULL
	Nested      - parenthesized expression
	Constant    - result of plan-time folding

# Usage Examples

Evaluate against a row:

	e := expr.LikeOf(expr.Col("name"), expr.Text("A%"))
	v, err := expr.Evaluate(e, expr.NativeRow{"name": "Amelia"})

Fold constants once before evaluating many rows:

	ev := expr.NewEvaluator(expr.WithLogger(logger.NewDiscardLogger()))
	prepared, err := ev.Prepare(expr.Binary(expr.Col("x"), data.OpAdd, expr.Fact(expr.Num("4"))))
	if err != nil {
		// constant errors such as 1000! surface here
	}
	for _, row := range rows {
		v, err := ev.Evaluate(prepared, row)
	}

# Rows

Missing columns evaluate to NULL. MapRow holds resolved values, NativeRow
holds Go values converted with data.FromGo, RowFunc adapts a lookup function.

# Errors

User errors are always returned and can be matched with errors.Is against a
data.ErrorKind. An expression type outside this package or a nil operand is
a programming error and panics.
*/
package expr
