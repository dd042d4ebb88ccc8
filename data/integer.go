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
	"fmt"
	"math/big"
)

// intBounds returns the inclusive range of an integer type.
func intBounds(t DataType) (lo, hi *big.Int) {
	bits, signed, ok := t.intWidth()
	if !ok {
		panic(fmt.Sprintf("data: %s is not an integer type", t))
	}
	one := big.NewInt(1)
	if signed {
		hi = new(big.Int).Lsh(one, uint(bits-1))
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, one)
		return lo, hi
	}
	hi = new(big.Int).Lsh(one, uint(bits))
	hi.Sub(hi, one)
	return new(big.Int), hi
}

// fitsInt reports whether n is representable in the integer type t.
func fitsInt(t DataType, n *big.Int) bool {
	lo, hi := intBounds(t)
	return n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
}

// intValue builds a value of integer type t from n, which must fit t.
func intValue(t DataType, n *big.Int) Value {
	switch t {
	case TypeInt8:
		return I8(int8(n.Int64()))
	case TypeInt16:
		return I16(int16(n.Int64()))
	case TypeInt32:
		return I32(int32(n.Int64()))
	case TypeInt64:
		return I64(n.Int64())
	case TypeInt128:
		return I128(n)
	case TypeUint8:
		return U8(uint8(n.Uint64()))
	case TypeUint16:
		return U16(uint16(n.Uint64()))
	case TypeUint32:
		return U32(uint32(n.Uint64()))
	case TypeUint64:
		return U64(n.Uint64())
	case TypeUint128:
		return U128(n)
	}
	panic(fmt.Sprintf("data: %s is not an integer type", t))
}

// checkedInt builds a value of integer type t from n, reporting false when n
// does not fit.
func checkedInt(t DataType, n *big.Int) (Value, bool) {
	if !fitsInt(t, n) {
		return Null, false
	}
	return intValue(t, n), true
}

type signedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// negateSigned negates x, reporting false when x is the minimum of its width.
func negateSigned[T signedInteger](x T) (T, bool) {
	r := -x
	if x != 0 && r == x {
		return x, false
	}
	return r, true
}
