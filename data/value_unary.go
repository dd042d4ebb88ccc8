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
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Operator symbols carried by error payloads.
const (
	OpPlus      = "+"
	OpMinus     = "-"
	OpBitNot    = "~"
	OpFactorial = "!"
	OpNot       = "NOT"
	OpCast      = "CAST"
)

// UnaryPlus returns v unchanged when it is numeric.
func (v Value) UnaryPlus() (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if k := unaryKind(OpPlus, classOf(v.typ)); k != 0 {
		return Null, newValueError(k, OpPlus, v)
	}
	return v, nil
}

// UnaryMinus negates a numeric value. The minimum of a signed width and every
// non-zero unsigned value fail with UnaryMinusOverflow.
func (v Value) UnaryMinus() (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if k := unaryKind(OpMinus, classOf(v.typ)); k != 0 {
		return Null, newValueError(k, OpMinus, v)
	}
	var (
		r  Value
		ok = true
	)
	switch x := v.v.(type) {
	case int8:
		var n int8
		n, ok = negateSigned(x)
		r = I8(n)
	case int16:
		var n int16
		n, ok = negateSigned(x)
		r = I16(n)
	case int32:
		var n int32
		n, ok = negateSigned(x)
		r = I32(n)
	case int64:
		var n int64
		n, ok = negateSigned(x)
		r = I64(n)
	case float32:
		r = F32(-x)
	case float64:
		r = F64(-x)
	case *apd.Decimal:
		r = Decimal(new(apd.Decimal).Neg(x))
	default:
		n, _ := v.AsBigInt()
		var k ErrorKind
		if r, k = negateInt(v.typ, n); k != 0 {
			ok = false
		}
	}
	if !ok {
		return Null, newValueError(UnaryMinusOverflow, OpMinus, v)
	}
	return r, nil
}

// UnaryBitNot flips every bit of an integer value, keeping width and
// signedness.
func (v Value) UnaryBitNot() (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if k := unaryKind(OpBitNot, classOf(v.typ)); k != 0 {
		return Null, newValueError(k, OpBitNot, v)
	}
	switch x := v.v.(type) {
	case int8:
		return I8(^x), nil
	case int16:
		return I16(^x), nil
	case int32:
		return I32(^x), nil
	case int64:
		return I64(^x), nil
	case uint8:
		return U8(^x), nil
	case uint16:
		return U16(^x), nil
	case uint32:
		return U32(^x), nil
	case uint64:
		return U64(^x), nil
	case *big.Int:
		return bitNotInt(v.typ, x), nil
	}
	panic("data: unexpected integer payload " + v.String())
}

// UnaryFactorial computes n! as an INT128. Checks run in order: non-numeric,
// non-integer, negative, overflow.
func (v Value) UnaryFactorial() (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	n, k := factorialOperand(v)
	if k == 0 {
		n, k = factorialOf(n)
	}
	if k != 0 {
		return Null, newValueError(k, OpFactorial, v)
	}
	return I128(n), nil
}

// Not is logical negation.
func (v Value) Not() (Value, error) {
	switch x := v.v.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(!x), nil
	}
	return Null, newValueError(NotOnNonBoolean, OpNot, v)
}
