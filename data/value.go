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
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05.999999999"
)

// Value is a fully resolved runtime datum.
// The payload always has the Go type that matches typ:
//
//	TypeBoolean -> bool, TypeInt8 -> int8, ..., TypeInt128 -> *big.Int,
//	TypeFloat32 -> float32, TypeDecimal -> *apd.Decimal, TypeText -> string,
//	TypeDate/TypeTimestamp -> time.Time, TypeTime -> time.Duration, ...
//
// Values are immutable: constructors copy reference payloads and no method
// modifies the receiver. The zero Value is NULL.
type Value struct {
	typ DataType
	v   any
}

// Null is the NULL value.
var Null = Value{}

// Interval is a calendar interval: a month count plus an exact duration.
type Interval struct {
	Months   int32
	Duration time.Duration
}

// String renders the interval, e.g. "1 MONTH 2h0m0s".
func (i Interval) String() string {
	switch {
	case i.Months != 0 && i.Duration != 0:
		return fmt.Sprintf("%d MONTH %s", i.Months, i.Duration)
	case i.Months != 0:
		return fmt.Sprintf("%d MONTH", i.Months)
	default:
		return i.Duration.String()
	}
}

// Point is a two-dimensional coordinate.
type Point struct {
	X float64
	Y float64
}

// String renders the point in WKT form, e.g. "POINT(1 2)".
func (p Point) String() string {
	return "POINT(" + formatFloat(p.X, 64) + " " + formatFloat(p.Y, 64) + ")"
}

func Bool(b bool) Value           { return Value{typ: TypeBoolean, v: b} }
func I8(i int8) Value             { return Value{typ: TypeInt8, v: i} }
func I16(i int16) Value           { return Value{typ: TypeInt16, v: i} }
func I32(i int32) Value           { return Value{typ: TypeInt32, v: i} }
func I64(i int64) Value           { return Value{typ: TypeInt64, v: i} }
func U8(i uint8) Value            { return Value{typ: TypeUint8, v: i} }
func U16(i uint16) Value          { return Value{typ: TypeUint16, v: i} }
func U32(i uint32) Value          { return Value{typ: TypeUint32, v: i} }
func U64(i uint64) Value          { return Value{typ: TypeUint64, v: i} }
func F32(f float32) Value         { return Value{typ: TypeFloat32, v: f} }
func F64(f float64) Value         { return Value{typ: TypeFloat64, v: f} }
func Str(s string) Value          { return Value{typ: TypeText, v: s} }
func UuidValue(u uuid.UUID) Value { return Value{typ: TypeUuid, v: u} }
func PointValue(p Point) Value    { return Value{typ: TypePoint, v: p} }

// IntervalValue wraps an Interval.
func IntervalValue(i Interval) Value { return Value{typ: TypeInterval, v: i} }

// I128 builds an INT128 value. It panics if n is outside the INT128 range;
// use Cast for checked conversion.
func I128(n *big.Int) Value {
	if n == nil {
		return Null
	}
	if !fitsInt(TypeInt128, n) {
		panic(fmt.Sprintf("data: %s out of INT128 range", n))
	}
	return Value{typ: TypeInt128, v: new(big.Int).Set(n)}
}

// U128 builds a UINT128 value. It panics if n is outside the UINT128 range.
func U128(n *big.Int) Value {
	if n == nil {
		return Null
	}
	if !fitsInt(TypeUint128, n) {
		panic(fmt.Sprintf("data: %s out of UINT128 range", n))
	}
	return Value{typ: TypeUint128, v: new(big.Int).Set(n)}
}

// Decimal builds a DECIMAL value from a copy of d.
func Decimal(d *apd.Decimal) Value {
	if d == nil {
		return Null
	}
	return Value{typ: TypeDecimal, v: new(apd.Decimal).Set(d)}
}

// Bytes builds a BYTEA value from a copy of b.
func Bytes(b []byte) Value {
	return Value{typ: TypeBytea, v: bytes.Clone(b)}
}

// Date builds a DATE value; the time of day and location are dropped.
func Date(t time.Time) Value {
	y, m, d := t.Date()
	return Value{typ: TypeDate, v: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// TimeOfDay builds a TIME value from the offset since midnight.
// The offset is normalized into [0, 24h).
func TimeOfDay(d time.Duration) Value {
	d %= 24 * time.Hour
	if d < 0 {
		d += 24 * time.Hour
	}
	return Value{typ: TypeTime, v: d}
}

// Timestamp builds a TIMESTAMP value, normalized to UTC.
func Timestamp(t time.Time) Value {
	return Value{typ: TypeTimestamp, v: t.UTC()}
}

// MapValue builds a MAP value from a copy of m.
func MapValue(m map[string]Value) Value {
	c := make(map[string]Value, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Value{typ: TypeMap, v: c}
}

// ListValue builds a LIST value from a copy of l.
func ListValue(l []Value) Value {
	c := make([]Value, len(l))
	copy(c, l)
	return Value{typ: TypeList, v: c}
}

// Type returns the DataType tag of the value
func (v Value) Type() DataType { return v.typ }

// IsNull reports whether v is NULL
func (v Value) IsNull() bool { return v.typ == TypeNull }

// AsBool returns the payload of a BOOLEAN value.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// AsString returns the payload of a TEXT value.
func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// AsFloat64 returns the payload of a FLOAT32 or FLOAT value.
func (v Value) AsFloat64() (float64, bool) {
	switch f := v.v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}

// AsBigInt returns the payload of any integer value as a new big.Int.
func (v Value) AsBigInt() (*big.Int, bool) {
	switch i := v.v.(type) {
	case int8:
		return big.NewInt(int64(i)), true
	case int16:
		return big.NewInt(int64(i)), true
	case int32:
		return big.NewInt(int64(i)), true
	case int64:
		return big.NewInt(i), true
	case uint8:
		return new(big.Int).SetUint64(uint64(i)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(i)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(i)), true
	case uint64:
		return new(big.Int).SetUint64(i), true
	case *big.Int:
		return new(big.Int).Set(i), true
	}
	return nil, false
}

// AsDecimal returns the payload of a DECIMAL value as a copy.
func (v Value) AsDecimal() (*apd.Decimal, bool) {
	d, ok := v.v.(*apd.Decimal)
	if !ok {
		return nil, false
	}
	return new(apd.Decimal).Set(d), true
}

// AsMap returns the entries of a MAP value. The map is shared and must not
// be modified.
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.v.(map[string]Value)
	return m, ok
}

// AsList returns the elements of a LIST value. The slice is shared and must
// not be modified.
func (v Value) AsList() ([]Value, bool) {
	l, ok := v.v.([]Value)
	return l, ok
}

// Equal reports structural equality. Values of different DataTypes are never
// equal, even when they hold the same number.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}
	switch a := v.v.(type) {
	case nil:
		return o.v == nil
	case *big.Int:
		return a.Cmp(o.v.(*big.Int)) == 0
	case *apd.Decimal:
		return a.Cmp(o.v.(*apd.Decimal)) == 0
	case float32:
		b := o.v.(float32)
		return a == b || (a != a && b != b)
	case float64:
		b := o.v.(float64)
		return a == b || (math.IsNaN(a) && math.IsNaN(b))
	case []byte:
		return bytes.Equal(a, o.v.([]byte))
	case time.Time:
		return a.Equal(o.v.(time.Time))
	case map[string]Value:
		b := o.v.(map[string]Value)
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	case []Value:
		b := o.v.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	default:
		return v.v == o.v
	}
}

// String renders a debug form such as I64(10) or Str("Amelia").
func (v Value) String() string {
	switch v.typ {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return fmt.Sprintf("Bool(%t)", v.v)
	case TypeInt8:
		return "I8(" + v.ToText() + ")"
	case TypeInt16:
		return "I16(" + v.ToText() + ")"
	case TypeInt32:
		return "I32(" + v.ToText() + ")"
	case TypeInt64:
		return "I64(" + v.ToText() + ")"
	case TypeInt128:
		return "I128(" + v.ToText() + ")"
	case TypeUint8:
		return "U8(" + v.ToText() + ")"
	case TypeUint16:
		return "U16(" + v.ToText() + ")"
	case TypeUint32:
		return "U32(" + v.ToText() + ")"
	case TypeUint64:
		return "U64(" + v.ToText() + ")"
	case TypeUint128:
		return "U128(" + v.ToText() + ")"
	case TypeFloat32:
		return "F32(" + v.ToText() + ")"
	case TypeFloat64:
		return "F64(" + v.ToText() + ")"
	case TypeDecimal:
		return "Decimal(" + v.ToText() + ")"
	case TypeText:
		return "Str(" + strconv.Quote(v.v.(string)) + ")"
	case TypeBytea:
		return "Bytea(" + v.ToText() + ")"
	case TypeDate:
		return "Date(" + v.ToText() + ")"
	case TypeTime:
		return "Time(" + v.ToText() + ")"
	case TypeTimestamp:
		return "Timestamp(" + v.ToText() + ")"
	case TypeInterval:
		return "Interval(" + v.ToText() + ")"
	case TypeMap:
		return "Map(" + v.ToText() + ")"
	case TypeList:
		return "List(" + v.ToText() + ")"
	case TypePoint:
		return "Point(" + v.ToText() + ")"
	case TypeUuid:
		return "Uuid(" + v.ToText() + ")"
	}
	return fmt.Sprintf("Value(%v)", v.v)
}

// ToText renders v the way CAST(v AS TEXT) does.
func (v Value) ToText() string {
	switch x := v.v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case *big.Int:
		return x.String()
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case *apd.Decimal:
		return x.Text('f')
	case string:
		return x
	case []byte:
		return hex.EncodeToString(x)
	case time.Time:
		if v.typ == TypeDate {
			return x.Format(dateLayout)
		}
		return x.Format(timestampLayout)
	case time.Duration:
		return formatTimeOfDay(x)
	case Interval:
		return x.String()
	case Point:
		return x.String()
	case uuid.UUID:
		return x.String()
	case map[string]Value:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			sb.WriteString(x[k].jsonText())
		}
		sb.WriteByte('}')
		return sb.String()
	case []Value:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(e.jsonText())
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return fmt.Sprint(v.v)
}

// jsonText renders an element nested in a MAP or LIST. NaN and infinities
// have no JSON number form and are written as strings, so they read back as
// TEXT.
func (v Value) jsonText() string {
	switch v.typ {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return strconv.FormatBool(v.v.(bool))
	case TypeMap, TypeList:
		return v.ToText()
	}
	if f, ok := v.AsFloat64(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return strconv.Quote(v.ToText())
	}
	if v.typ.IsNumeric() {
		return v.ToText()
	}
	return strconv.Quote(v.ToText())
}

func formatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func formatTimeOfDay(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	ns := d - s*time.Second
	out := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	if ns > 0 {
		out += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return out
}
