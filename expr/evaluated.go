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

import "github.com/rulego/sqleval/data"

// Evaluated is the intermediate result of evaluating a node: either a still
// unresolved Literal (fold path) or a resolved Value (execution path).
type Evaluated struct {
	literal data.Literal
	value   data.Value
	isValue bool
}

// FromLiteral wraps a literal
func FromLiteral(l data.Literal) Evaluated { return Evaluated{literal: l} }

// FromValue wraps a value
func FromValue(v data.Value) Evaluated { return Evaluated{value: v, isValue: true} }

// IsLiteral reports whether the result is still on the fold path.
func (e Evaluated) IsLiteral() bool { return !e.isValue }

// Literal returns the literal when IsLiteral is true.
func (e Evaluated) Literal() (data.Literal, bool) { return e.literal, !e.isValue }

// Value returns the value when IsLiteral is false.
func (e Evaluated) Value() (data.Value, bool) { return e.value, e.isValue }

// ToValue resolves the result. A literal is resolved with its default type.
func (e Evaluated) ToValue() (data.Value, error) {
	if e.isValue {
		return e.value, nil
	}
	return e.literal.ToValue()
}

// IsNull reports whether the result is NULL on either path.
func (e Evaluated) IsNull() bool {
	if e.isValue {
		return e.value.IsNull()
	}
	return e.literal.IsNull()
}

// Equal reports whether both results are on the same path and equal.
func (e Evaluated) Equal(o Evaluated) bool {
	if e.isValue != o.isValue {
		return false
	}
	if e.isValue {
		return e.value.Equal(o.value)
	}
	return e.literal.Equal(o.literal)
}

func (e Evaluated) String() string {
	if e.isValue {
		return e.value.String()
	}
	return e.literal.String()
}
