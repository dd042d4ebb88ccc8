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
	"errors"

	"github.com/cockroachdb/apd/v3"
)

// literalClass is classOf for literals. Every number is integral or
// fractional by its exact value.
func literalClass(l Literal) numericClass {
	d, ok := l.v.(*apd.Decimal)
	if !ok {
		return classNonNumeric
	}
	if _, exact := decimalInteger(d); exact {
		return classInteger
	}
	return classFractional
}

// UnaryPlus returns a number literal unchanged.
func (l Literal) UnaryPlus() (Literal, error) {
	if l.IsNull() {
		return NullLiteral, nil
	}
	if k := unaryKind(OpPlus, literalClass(l)); k != 0 {
		return NullLiteral, newLiteralError(k, OpPlus, l)
	}
	return l, nil
}

// UnaryMinus negates a number literal exactly. The result is bound to a
// width only when it is resolved, so -9223372036854775808 stays valid.
func (l Literal) UnaryMinus() (Literal, error) {
	if l.IsNull() {
		return NullLiteral, nil
	}
	if k := unaryKind(OpMinus, literalClass(l)); k != 0 {
		return NullLiteral, newLiteralError(k, OpMinus, l)
	}
	d := l.v.(*apd.Decimal)
	return Literal{kind: LiteralNumber, v: new(apd.Decimal).Neg(d)}, nil
}

// UnaryBitNot resolves the literal and flips its bits, so ~1 is I64(-2).
// Numbers that do not resolve to an integer fail with UnaryBitNotOnNonInteger.
func (l Literal) UnaryBitNot() (Value, error) {
	if l.IsNull() {
		return Null, nil
	}
	if k := unaryKind(OpBitNot, literalClass(l)); k != 0 {
		return Null, newLiteralError(k, OpBitNot, l)
	}
	v, err := l.ToValue()
	if err != nil {
		return Null, err
	}
	r, err := v.UnaryBitNot()
	return r, liftError(err, l)
}

// UnaryFactorial computes n! of an integral number literal as an INT128.
func (l Literal) UnaryFactorial() (Value, error) {
	if l.IsNull() {
		return Null, nil
	}
	k := unaryKind(OpFactorial, literalClass(l))
	if k == 0 && literalClass(l) == classFractional {
		k = FactorialOnNonInteger
	}
	if k != 0 {
		return Null, newLiteralError(k, OpFactorial, l)
	}
	n, _ := decimalInteger(l.v.(*apd.Decimal))
	r, k := factorialOf(n)
	if k != 0 {
		return Null, newLiteralError(k, OpFactorial, l)
	}
	return I128(r), nil
}

// Not negates a boolean literal.
func (l Literal) Not() (Literal, error) {
	switch x := l.v.(type) {
	case nil:
		return NullLiteral, nil
	case bool:
		return Boolean(!x), nil
	}
	return NullLiteral, newLiteralError(NotOnNonBoolean, OpNot, l)
}

// liftError rewrites a *ValueError raised while applying value semantics to a
// resolved literal into the equivalent *LiteralError.
func liftError(err error, operand Literal) error {
	var ve *ValueError
	if !errors.As(err, &ve) {
		return err
	}
	return &LiteralError{
		Kind:          ve.Kind,
		Op:            ve.Op,
		Operand:       operand,
		Target:        ve.Target,
		CaseSensitive: ve.CaseSensitive,
	}
}

// liftBinaryError is liftError for two operands.
func liftBinaryError(err error, left, right Literal) error {
	le, ok := liftError(err, left).(*LiteralError)
	if !ok {
		return err
	}
	le.Right = right
	return le
}
