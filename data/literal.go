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
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// LiteralKind tags a Literal.
type LiteralKind uint8

const (
	LiteralNull LiteralKind = iota
	LiteralBoolean
	LiteralNumber
	LiteralText
	LiteralBytea
)

// String returns kind name
func (k LiteralKind) String() string {
	switch k {
	case LiteralNull:
		return "Null"
	case LiteralBoolean:
		return "Boolean"
	case LiteralNumber:
		return "Number"
	case LiteralText:
		return "Text"
	case LiteralBytea:
		return "Bytea"
	default:
		return fmt.Sprintf("LiteralKind(%d)", uint8(k))
	}
}

// Literal is a constant that has not been bound to a DataType yet.
// Numbers keep their exact decimal value. The zero Literal is NULL.
type Literal struct {
	kind LiteralKind
	v    any
}

// NullLiteral is the NULL literal.
var NullLiteral = Literal{}

// Boolean builds a boolean literal.
func Boolean(b bool) Literal { return Literal{kind: LiteralBoolean, v: b} }

// Text builds a text literal.
func Text(s string) Literal { return Literal{kind: LiteralText, v: s} }

// Bytea builds a byte-string literal from a copy of b.
func Bytea(b []byte) Literal { return Literal{kind: LiteralBytea, v: bytes.Clone(b)} }

// Number builds a number literal from a copy of d.
func Number(d *apd.Decimal) Literal {
	if d == nil {
		return NullLiteral
	}
	return Literal{kind: LiteralNumber, v: new(apd.Decimal).Set(d)}
}

// NumberFromInt64 builds a number literal from an integer.
func NumberFromInt64(i int64) Literal {
	return Literal{kind: LiteralNumber, v: apd.New(i, 0)}
}

// NumberFromString parses decimal text such as "10", "-5.5" or "1e30"
// without losing precision. NaN and infinities are rejected.
func NumberFromString(s string) (Literal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return NullLiteral, fmt.Errorf("invalid number literal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return NullLiteral, fmt.Errorf("invalid number literal %q: not finite", s)
	}
	return Literal{kind: LiteralNumber, v: d}, nil
}

// Kind returns the literal kind
func (l Literal) Kind() LiteralKind { return l.kind }

// IsNull reports whether l is the NULL literal
func (l Literal) IsNull() bool { return l.kind == LiteralNull }

// AsBool returns the payload of a boolean literal.
func (l Literal) AsBool() (bool, bool) {
	b, ok := l.v.(bool)
	return b, ok
}

// AsText returns the payload of a text literal.
func (l Literal) AsText() (string, bool) {
	s, ok := l.v.(string)
	return s, ok && l.kind == LiteralText
}

// AsBytea returns a copy of the payload of a bytea literal.
func (l Literal) AsBytea() ([]byte, bool) {
	b, ok := l.v.([]byte)
	return bytes.Clone(b), ok
}

// AsNumber returns a copy of the payload of a number literal.
func (l Literal) AsNumber() (*apd.Decimal, bool) {
	d, ok := l.v.(*apd.Decimal)
	if !ok {
		return nil, false
	}
	return new(apd.Decimal).Set(d), true
}

// Equal reports structural equality of two literals. Numbers compare by value.
func (l Literal) Equal(o Literal) bool {
	if l.kind != o.kind {
		return false
	}
	switch a := l.v.(type) {
	case nil:
		return true
	case *apd.Decimal:
		return a.Cmp(o.v.(*apd.Decimal)) == 0
	case []byte:
		return bytes.Equal(a, o.v.([]byte))
	default:
		return l.v == o.v
	}
}

// String renders a debug form such as Number(10) or Text("ABC").
func (l Literal) String() string {
	switch l.kind {
	case LiteralNull:
		return "Null"
	case LiteralBoolean:
		return fmt.Sprintf("Boolean(%t)", l.v)
	case LiteralNumber:
		return "Number(" + l.v.(*apd.Decimal).Text('f') + ")"
	case LiteralText:
		return "Text(" + strconv.Quote(l.v.(string)) + ")"
	case LiteralBytea:
		return "Bytea(" + hex.EncodeToString(l.v.([]byte)) + ")"
	}
	return fmt.Sprintf("Literal(%v)", l.v)
}

// ToValue resolves the literal without a target type. Integral numbers that
// fit INT become I64, every other number becomes F64.
func (l Literal) ToValue() (Value, error) {
	switch l.kind {
	case LiteralNull:
		return Null, nil
	case LiteralBoolean:
		return Bool(l.v.(bool)), nil
	case LiteralText:
		return Str(l.v.(string)), nil
	case LiteralBytea:
		return Bytes(l.v.([]byte)), nil
	case LiteralNumber:
		d := l.v.(*apd.Decimal)
		if i, err := d.Int64(); err == nil {
			return I64(i), nil
		}
		f, err := d.Float64()
		if err != nil || math.IsInf(f, 0) {
			return Null, newLiteralError(LiteralNumberOutOfRange, "", l)
		}
		return F64(f), nil
	}
	panic(fmt.Sprintf("data: unexpected literal kind %s", l.kind))
}

// decimalInteger splits d into its integral part and reports whether d had
// no fractional part.
func decimalInteger(d *apd.Decimal) (*big.Int, bool) {
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	n, ok := new(big.Int).SetString(integ.Text('f'), 10)
	if !ok {
		panic(fmt.Sprintf("data: cannot convert %s to integer", integ.Text('f')))
	}
	return n, frac.IsZero()
}
