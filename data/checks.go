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
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// The predicates in this file are shared by the literal and the value path.
// They return an ErrorKind (zero on success) and leave the error payload to
// the caller.

// numericClass describes how an operand takes part in numeric operators.
type numericClass uint8

const (
	classNonNumeric numericClass = iota
	// classInteger covers the integer DataTypes.
	classInteger
	// classFractional covers FLOAT32, FLOAT and DECIMAL whatever their payload.
	classFractional
)

func classOf(t DataType) numericClass {
	switch {
	case t.IsInteger():
		return classInteger
	case t.IsFloat(), t == TypeDecimal:
		return classFractional
	default:
		return classNonNumeric
	}
}

// unaryKind gates a unary operator on the operand class.
func unaryKind(op string, c numericClass) ErrorKind {
	switch op {
	case OpPlus:
		if c == classNonNumeric {
			return UnaryPlusOnNonNumeric
		}
	case OpMinus:
		if c == classNonNumeric {
			return UnaryMinusOnNonNumeric
		}
	case OpBitNot:
		switch c {
		case classNonNumeric:
			return UnaryBitNotOnNonNumeric
		case classFractional:
			return UnaryBitNotOnNonInteger
		}
	case OpFactorial:
		if c == classNonNumeric {
			return FactorialOnNonNumeric
		}
	}
	return 0
}

// maxFactorialInput is the largest n whose factorial fits INT128.
const maxFactorialInput = 33

// factorialOf computes n! for an integral n, rejecting negative input and
// results outside INT128.
func factorialOf(n *big.Int) (*big.Int, ErrorKind) {
	if n.Sign() < 0 {
		return nil, FactorialOnNegativeNumeric
	}
	if !n.IsInt64() || n.Int64() > maxFactorialInput {
		return nil, FactorialOverflow
	}
	_, hi := intBounds(TypeInt128)
	r := big.NewInt(1)
	for i := int64(2); i <= n.Int64(); i++ {
		r.Mul(r, big.NewInt(i))
	}
	if r.Cmp(hi) > 0 {
		return nil, FactorialOverflow
	}
	return r, 0
}

// floatInteger returns the integral value of f, failing with nonInteger when
// f is NaN, infinite or has a fractional part.
func floatInteger(f float64, nonInteger ErrorKind) (*big.Int, ErrorKind) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, nonInteger
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, 0
}

// decimalIntegral is floatInteger for decimals.
func decimalIntegral(d *apd.Decimal, nonInteger ErrorKind) (*big.Int, ErrorKind) {
	if d.Form != apd.Finite {
		return nil, nonInteger
	}
	n, exact := decimalInteger(d)
	if !exact {
		return nil, nonInteger
	}
	return n, 0
}

// factorialOperand extracts the integral operand of a factorial.
func factorialOperand(v Value) (*big.Int, ErrorKind) {
	if k := unaryKind(OpFactorial, classOf(v.typ)); k != 0 {
		return nil, k
	}
	switch x := v.v.(type) {
	case float32:
		return floatInteger(float64(x), FactorialOnNonInteger)
	case float64:
		return floatInteger(x, FactorialOnNonInteger)
	case *apd.Decimal:
		return decimalIntegral(x, FactorialOnNonInteger)
	}
	n, _ := v.AsBigInt()
	return n, 0
}

// negateInt negates an integer of type t, failing when the result leaves t.
func negateInt(t DataType, n *big.Int) (Value, ErrorKind) {
	r, ok := checkedInt(t, new(big.Int).Neg(n))
	if !ok {
		return Null, UnaryMinusOverflow
	}
	return r, 0
}

// bitNotInt flips every bit of n within the width of t.
func bitNotInt(t DataType, n *big.Int) Value {
	_, signed, _ := t.intWidth()
	if signed {
		return intValue(t, new(big.Int).Not(n))
	}
	_, hi := intBounds(t)
	return intValue(t, hi.Sub(hi, n))
}
