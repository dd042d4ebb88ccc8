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

package data

import "github.com/cockroachdb/apd/v3"

// Binary resolves both literals by default and applies op with value
// semantics. Failures are reported as *LiteralError carrying the literals.
func (l Literal) Binary(op BinaryOp, o Literal) (Value, error) {
	x, err := l.ToValue()
	if err != nil {
		return Null, err
	}
	y, err := o.ToValue()
	if err != nil {
		return Null, err
	}
	r, err := x.Binary(op, y)
	return r, liftBinaryError(err, l, o)
}

// Bind resolves the literal next to an operand of type peer. A number takes
// an integer or DECIMAL peer's type only when it fits exactly, and a FLOAT32
// or FLOAT peer's type whenever it is in range, rounding to the nearest
// float. Text takes any type it parses into. Everything else falls back to
// ToValue.
func (l Literal) Bind(peer DataType) (Value, error) {
	switch l.kind {
	case LiteralNumber:
		if !peer.IsNumeric() {
			break
		}
		if peer.IsInteger() {
			if _, exact := decimalInteger(l.v.(*apd.Decimal)); !exact {
				break
			}
		}
		if r, err := l.Cast(peer); err == nil {
			return r, nil
		}
	case LiteralText:
		if peer == TypeNull || peer == TypeText {
			break
		}
		if r, err := l.Cast(peer); err == nil {
			return r, nil
		}
	}
	return l.ToValue()
}
