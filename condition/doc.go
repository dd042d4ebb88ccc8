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
Package condition provides textual boolean conditions for sqleval.

Conditions are compiled with the expr-lang library. The SQL operators of the
data package are registered as functions, so a condition written in expr-lang
syntax gets the same semantics as an expression tree evaluated by package expr.

# Core Features

• Boolean Expression Evaluation - Evaluate complex boolean conditions
• LIKE Pattern Matching - like, ilike, not_like and not_ilike with % and _ wildcards
• SQL Operators - factorial, bit_not, neg and cast with overflow and range checks
• NULL Checking - is_null and is_not_null
• Compiled Programs - expressions are compiled once and evaluated many times

# Condition Interface

	type Condition interface {
		Evaluate(env interface{}) bool
		EvaluateE(env interface{}) (bool, error)
	}

Evaluate reports false when evaluation fails or yields NULL. EvaluateE
returns the error, whose message carries the data.ErrorKind text.

# Custom Functions

	like(text, pattern)       - case-sensitive LIKE
	ilike(text, pattern)      - case-insensitive LIKE
	not_like(text, pattern)   - NOT LIKE
	not_ilike(text, pattern)  - NOT ILIKE
	factorial(n)              - n! as a 128-bit integer
	bit_not(n)                - bitwise NOT preserving the integer width
	neg(n)                    - negation, failing on overflow
	cast(value, 'TYPE')       - CAST with a SQL type name such as 'UINT8'
	is_null(value)            - value is NULL or missing
	is_not_null(value)        - value is present

Arguments are converted with data.FromGo and results with Value.Interface,
except 128-bit integers that fit int and decimals, which are returned as int
and float64 so expr-lang can compare them.

# Usage Examples

	condition, err := NewExprCondition("like(name, 'John%') && age >= 18")
	if err != nil {
		log.Fatal(err)
	}
	result := condition.Evaluate(map[string]interface{}{
		"name": "John Smith",
		"age":  25,
	}) // returns true

Narrowing casts are checked:

	condition, _ := NewExprCondition("bit_not(cast(level, 'UINT8')) == 254")
	ok, err := condition.EvaluateE(map[string]interface{}{"level": 1})
*/
package condition
