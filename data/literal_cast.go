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

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Cast resolves the literal directly into DataType t. Numbers are converted
// from their exact decimal form, so no precision is lost on the way to
// INT128 or DECIMAL.
func (l Literal) Cast(t DataType) (Value, error) {
	switch l.kind {
	case LiteralNull:
		return Null, nil
	case LiteralBoolean:
		r, err := Bool(l.v.(bool)).Cast(t)
		return r, liftError(err, l)
	case LiteralText:
		r, err := Str(l.v.(string)).Cast(t)
		return r, liftError(err, l)
	case LiteralBytea:
		r, err := Bytes(l.v.([]byte)).Cast(t)
		return r, liftError(err, l)
	}
	r, k := castNumber(l.v.(*apd.Decimal), t)
	if k != 0 {
		return Null, &LiteralError{Kind: k, Op: OpCast, Operand: l, Target: t}
	}
	return r, nil
}

func castNumber(d *apd.Decimal, t DataType) (Value, ErrorKind) {
	switch {
	case t.IsInteger():
		n, _ := decimalInteger(d)
		r, ok := checkedInt(t, n)
		if !ok {
			return Null, CastOutOfRange
		}
		return r, 0
	case t.IsFloat():
		f, err := d.Float64()
		if err != nil || math.IsInf(f, 0) {
			return Null, CastOutOfRange
		}
		if t == TypeFloat32 {
			return floatToFloat32(f)
		}
		return F64(f), 0
	}
	switch t {
	case TypeDecimal:
		return Decimal(d), 0
	case TypeBoolean:
		return boolFromNumber(d.IsZero(), d.Cmp(apd.New(1, 0)) == 0)
	case TypeText:
		var reduced apd.Decimal
		reduced.Reduce(d)
		return Str(reduced.Text('f')), 0
	}
	return Null, ImpossibleCast
}
