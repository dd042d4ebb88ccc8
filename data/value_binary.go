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
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// BinaryOp is a binary operator.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEq
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpAnd
	OpOr
	OpConcat
)

// String returns the SQL symbol of the operator
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpEq:
		return "="
	case OpNotEq:
		return "<>"
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpConcat:
		return "||"
	default:
		return fmt.Sprintf("BinaryOp(%d)", uint8(op))
	}
}

// ParseBinaryOp resolves an operator symbol or keyword.
func ParseBinaryOp(s string) (BinaryOp, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSubtract, nil
	case "*":
		return OpMultiply, nil
	case "/":
		return OpDivide, nil
	case "%":
		return OpModulo, nil
	case "=", "==":
		return OpEq, nil
	case "<>", "!=":
		return OpNotEq, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLtEq, nil
	case ">":
		return OpGt, nil
	case ">=":
		return OpGtEq, nil
	case "AND", "&&":
		return OpAnd, nil
	case "OR":
		return OpOr, nil
	case "||", "CONCAT":
		return OpConcat, nil
	}
	return 0, fmt.Errorf("unknown binary operator: %s", s)
}

func (op BinaryOp) arithmetic() bool { return op >= OpAdd && op <= OpModulo }

func (op BinaryOp) comparison() bool { return op >= OpEq && op <= OpGtEq }

// decimalQuoContext rounds decimal quotients to 38 significant digits.
// Addition, subtraction and multiplication stay exact.
var decimalQuoContext = apd.BaseContext.WithPrecision(38)

// Binary applies op to v and o.
func (v Value) Binary(op BinaryOp, o Value) (Value, error) {
	var (
		r Value
		k ErrorKind
	)
	switch {
	case op.arithmetic():
		r, k = arithmetic(op, v, o)
	case op.comparison():
		r, k = compare(op, v, o)
	case op == OpAnd || op == OpOr:
		r, k = logical(op, v, o)
	case op == OpConcat:
		r, k = concat(v, o)
	default:
		panic(fmt.Sprintf("data: unexpected binary operator %s", op))
	}
	if k != 0 {
		return Null, &ValueError{Kind: k, Op: op.String(), Operand: v, Right: o}
	}
	return r, nil
}

// Promote returns the DataType both operands are widened to before a binary
// operator is applied.
func Promote(a, b DataType) (DataType, error) {
	t, k := promote(a, b)
	if k != 0 {
		return TypeNull, fmt.Errorf("%s and %s: %w", a, b, k)
	}
	return t, nil
}

func promote(a, b DataType) (DataType, ErrorKind) {
	if a == b {
		return a, 0
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return TypeNull, IncompatibleOperands
	}
	switch {
	case a == TypeDecimal || b == TypeDecimal:
		return TypeDecimal, 0
	case a.IsFloat() || b.IsFloat():
		return TypeFloat64, 0
	}
	ab, as, _ := a.intWidth()
	bb, bs, _ := b.intWidth()
	if as == bs {
		if as {
			t, _ := signedInt(max(ab, bb))
			return t, 0
		}
		t, _ := unsignedInt(max(ab, bb))
		return t, 0
	}
	sbits, ubits := ab, bb
	if !as {
		sbits, ubits = bb, ab
	}
	for w := 8; w <= 128; w *= 2 {
		if w >= sbits && w > ubits {
			t, _ := signedInt(w)
			return t, 0
		}
	}
	return TypeNull, IncompatibleOperands
}

func arithmetic(op BinaryOp, a, b Value) (Value, ErrorKind) {
	if (!a.IsNull() && !a.typ.IsNumeric()) || (!b.IsNull() && !b.typ.IsNumeric()) {
		return Null, BinaryOnNonNumeric
	}
	if a.IsNull() || b.IsNull() {
		return Null, 0
	}
	t, k := promote(a.typ, b.typ)
	if k != 0 {
		return Null, k
	}
	// NaN and infinities have no DECIMAL form.
	x, k := widen(a, t)
	if k != 0 {
		return Null, k
	}
	y, k := widen(b, t)
	if k != 0 {
		return Null, k
	}
	switch {
	case t.IsInteger():
		return intArithmetic(op, t, x, y)
	case t == TypeFloat32:
		return float32Arithmetic(op, x.v.(float32), y.v.(float32))
	case t == TypeFloat64:
		return float64Arithmetic(op, x.v.(float64), y.v.(float64))
	}
	return decimalArithmetic(op, x.v.(*apd.Decimal), y.v.(*apd.Decimal))
}

func widen(v Value, t DataType) (Value, ErrorKind) {
	if v.typ == t {
		return v, 0
	}
	w, k := castValue(v, t)
	if k != 0 {
		return Null, BinaryOverflow
	}
	return w, 0
}

func intArithmetic(op BinaryOp, t DataType, a, b Value) (Value, ErrorKind) {
	x, _ := a.AsBigInt()
	y, _ := b.AsBigInt()
	r := new(big.Int)
	switch op {
	case OpAdd:
		r.Add(x, y)
	case OpSubtract:
		r.Sub(x, y)
	case OpMultiply:
		r.Mul(x, y)
	case OpDivide, OpModulo:
		if y.Sign() == 0 {
			return Null, DivisorShouldNotBeZero
		}
		if op == OpDivide {
			r.Quo(x, y)
		} else {
			r.Rem(x, y)
		}
	}
	v, ok := checkedInt(t, r)
	if !ok {
		return Null, BinaryOverflow
	}
	return v, 0
}

func float64Arithmetic(op BinaryOp, x, y float64) (Value, ErrorKind) {
	switch op {
	case OpAdd:
		return F64(x + y), 0
	case OpSubtract:
		return F64(x - y), 0
	case OpMultiply:
		return F64(x * y), 0
	}
	if y == 0 {
		return Null, DivisorShouldNotBeZero
	}
	if op == OpDivide {
		return F64(x / y), 0
	}
	return F64(math.Mod(x, y)), 0
}

func float32Arithmetic(op BinaryOp, x, y float32) (Value, ErrorKind) {
	switch op {
	case OpAdd:
		return F32(x + y), 0
	case OpSubtract:
		return F32(x - y), 0
	case OpMultiply:
		return F32(x * y), 0
	}
	if y == 0 {
		return Null, DivisorShouldNotBeZero
	}
	if op == OpDivide {
		return F32(x / y), 0
	}
	return F32(float32(math.Mod(float64(x), float64(y)))), 0
}

func decimalArithmetic(op BinaryOp, x, y *apd.Decimal) (Value, ErrorKind) {
	var (
		r   apd.Decimal
		err error
	)
	switch op {
	case OpAdd:
		_, err = apd.BaseContext.Add(&r, x, y)
	case OpSubtract:
		_, err = apd.BaseContext.Sub(&r, x, y)
	case OpMultiply:
		_, err = apd.BaseContext.Mul(&r, x, y)
	case OpDivide, OpModulo:
		if y.IsZero() {
			return Null, DivisorShouldNotBeZero
		}
		if op == OpDivide {
			_, err = decimalQuoContext.Quo(&r, x, y)
		} else {
			_, err = decimalQuoContext.Rem(&r, x, y)
		}
	}
	if err != nil {
		return Null, BinaryOverflow
	}
	return Decimal(&r), 0
}

func compare(op BinaryOp, a, b Value) (Value, ErrorKind) {
	if a.IsNull() || b.IsNull() {
		return Null, 0
	}
	c, ordered, k := compareValues(a, b)
	if k != 0 {
		// kinds without an order still support equality
		switch op {
		case OpEq:
			return Bool(a.Equal(b)), 0
		case OpNotEq:
			return Bool(!a.Equal(b)), 0
		}
		return Null, k
	}
	if !ordered {
		// NaN is unordered: only <> holds
		return Bool(op == OpNotEq), 0
	}
	switch op {
	case OpEq:
		return Bool(c == 0), 0
	case OpNotEq:
		return Bool(c != 0), 0
	case OpLt:
		return Bool(c < 0), 0
	case OpLtEq:
		return Bool(c <= 0), 0
	case OpGt:
		return Bool(c > 0), 0
	}
	return Bool(c >= 0), 0
}

// Compare orders two non-NULL values. Numbers of different kinds compare by
// value; other kinds compare only within themselves.
func (v Value) Compare(o Value) (int, error) {
	c, ordered, k := compareValues(v, o)
	if k == 0 && !ordered {
		k = NonComparable
	}
	if k != 0 {
		return 0, &ValueError{Kind: k, Op: "COMPARE", Operand: v, Right: o}
	}
	return c, nil
}

// compareValues returns the ordering of a and b. ordered is false when a NaN
// is involved.
func compareValues(a, b Value) (c int, ordered bool, k ErrorKind) {
	if a.typ.IsNumeric() && b.typ.IsNumeric() {
		return compareNumbers(a, b)
	}
	switch x := a.v.(type) {
	case bool:
		if y, ok := b.v.(bool); ok {
			return compareBool(x, y), true, 0
		}
	case string:
		if y, ok := b.v.(string); ok {
			return strings.Compare(x, y), true, 0
		}
	case []byte:
		if y, ok := b.v.([]byte); ok {
			return bytes.Compare(x, y), true, 0
		}
	case time.Time:
		if y, ok := b.v.(time.Time); ok {
			return x.Compare(y), true, 0
		}
	case time.Duration:
		if y, ok := b.v.(time.Duration); ok {
			return compareOrdered(x, y), true, 0
		}
	case Interval:
		if y, ok := b.v.(Interval); ok {
			if x.Months != y.Months {
				return compareOrdered(x.Months, y.Months), true, 0
			}
			return compareOrdered(x.Duration, y.Duration), true, 0
		}
	case uuid.UUID:
		if y, ok := b.v.(uuid.UUID); ok {
			return bytes.Compare(x[:], y[:]), true, 0
		}
	}
	return 0, false, NonComparable
}

func compareNumbers(a, b Value) (int, bool, ErrorKind) {
	if a.typ.IsInteger() && b.typ.IsInteger() {
		x, _ := a.AsBigInt()
		y, _ := b.AsBigInt()
		return x.Cmp(y), true, 0
	}
	if a.typ.IsFloat() && b.typ.IsFloat() {
		x, _ := a.AsFloat64()
		y, _ := b.AsFloat64()
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false, 0
		}
		return compareOrdered(x, y), true, 0
	}
	x, ok := exactDecimal(a)
	if !ok {
		return 0, false, 0
	}
	y, ok := exactDecimal(b)
	if !ok {
		return 0, false, 0
	}
	return x.Cmp(y), true, 0
}

// exactDecimal converts a numeric value to a decimal without rounding.
// Infinite floats map to infinite decimals; NaN reports false.
func exactDecimal(v Value) (*apd.Decimal, bool) {
	switch x := v.v.(type) {
	case *apd.Decimal:
		return x, true
	case float32, float64:
		f, _ := v.AsFloat64()
		switch {
		case math.IsNaN(f):
			return nil, false
		case math.IsInf(f, 0):
			return &apd.Decimal{Form: apd.Infinite, Negative: f < 0}, true
		}
		d, err := new(apd.Decimal).SetFloat64(f)
		return d, err == nil
	}
	n, _ := v.AsBigInt()
	return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(n), 0), true
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	}
	return 1
}

func compareOrdered[T int32 | float64 | time.Duration](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// logical implements Kleene three-valued AND and OR.
func logical(op BinaryOp, a, b Value) (Value, ErrorKind) {
	x, xok := a.v.(bool)
	y, yok := b.v.(bool)
	if (!xok && !a.IsNull()) || (!yok && !b.IsNull()) {
		return Null, LogicalOnNonBoolean
	}
	// the dominant value decides regardless of NULL
	dominant := op == OpOr
	if (xok && x == dominant) || (yok && y == dominant) {
		return Bool(dominant), 0
	}
	if a.IsNull() || b.IsNull() {
		return Null, 0
	}
	return Bool(!dominant), 0
}

func concat(a, b Value) (Value, ErrorKind) {
	if a.IsNull() || b.IsNull() {
		return Null, 0
	}
	if a.typ == TypeList && b.typ == TypeList {
		x, y := a.v.([]Value), b.v.([]Value)
		l := make([]Value, 0, len(x)+len(y))
		l = append(append(l, x...), y...)
		return Value{typ: TypeList, v: l}, 0
	}
	if a.typ == TypeMap || a.typ == TypeList || b.typ == TypeMap || b.typ == TypeList {
		return Null, IncompatibleOperands
	}
	return Str(a.ToText() + b.ToText()), 0
}
