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
	"encoding/hex"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Cast converts v into DataType t. NULL casts to NULL for every target.
// Narrowing never wraps: a value outside the target range fails with
// CastOutOfRange.
func (v Value) Cast(t DataType) (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if v.typ == t {
		return v, nil
	}
	r, k := castValue(v, t)
	if k != 0 {
		return Null, &ValueError{Kind: k, Op: OpCast, Operand: v, Target: t}
	}
	return r, nil
}

func castValue(v Value, t DataType) (Value, ErrorKind) {
	switch {
	case t.IsInteger():
		return castToInt(v, t)
	case t.IsFloat():
		return castToFloat(v, t)
	}
	switch t {
	case TypeDecimal:
		return castToDecimal(v)
	case TypeBoolean:
		return castToBool(v)
	case TypeText:
		return Str(v.ToText()), 0
	}
	if v.typ == TypeText {
		return parseText(v.v.(string), t)
	}
	switch x := v.v.(type) {
	case time.Time:
		switch t {
		case TypeDate:
			return Date(x), 0
		case TypeTimestamp:
			return Timestamp(x), 0
		case TypeTime:
			if v.typ == TypeTimestamp {
				return TimeOfDay(x.Sub(x.Truncate(24 * time.Hour))), 0
			}
		}
	case []byte:
		if t == TypeUuid {
			u, err := uuid.FromBytes(x)
			if err != nil {
				return Null, CastParseFailure
			}
			return UuidValue(u), 0
		}
	case uuid.UUID:
		if t == TypeBytea {
			return Bytes(x[:]), 0
		}
	}
	return Null, ImpossibleCast
}

func castToInt(v Value, t DataType) (Value, ErrorKind) {
	var n *big.Int
	switch x := v.v.(type) {
	case bool:
		n = big.NewInt(0)
		if x {
			n.SetInt64(1)
		}
	case float32, float64:
		f, _ := v.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Null, CastOutOfRange
		}
		n, _ = big.NewFloat(f).Int(nil)
	case *apd.Decimal:
		if x.Form != apd.Finite {
			return Null, CastOutOfRange
		}
		n, _ = decimalInteger(x)
	case string:
		var ok bool
		if n, ok = new(big.Int).SetString(strings.TrimSpace(x), 10); !ok {
			return Null, CastParseFailure
		}
	default:
		var ok bool
		if n, ok = v.AsBigInt(); !ok {
			return Null, ImpossibleCast
		}
	}
	r, ok := checkedInt(t, n)
	if !ok {
		return Null, CastOutOfRange
	}
	return r, 0
}

func castToFloat(v Value, t DataType) (Value, ErrorKind) {
	var f float64
	switch x := v.v.(type) {
	case bool:
		if x {
			f = 1
		}
	case float32:
		f = float64(x)
	case float64:
		f = x
	case *apd.Decimal:
		var err error
		if f, err = x.Float64(); err != nil {
			return Null, CastOutOfRange
		}
	case string:
		bitSize := 64
		if t == TypeFloat32 {
			bitSize = 32
		}
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(x), bitSize); err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Null, CastOutOfRange
			}
			return Null, CastParseFailure
		}
	default:
		n, ok := v.AsBigInt()
		if !ok {
			return Null, ImpossibleCast
		}
		f, _ = new(big.Float).SetInt(n).Float64()
	}
	if t == TypeFloat32 {
		return floatToFloat32(f)
	}
	return F64(f), 0
}

// floatToFloat32 narrows f, failing when its magnitude exceeds FLOAT32.
func floatToFloat32(f float64) (Value, ErrorKind) {
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return Null, CastOutOfRange
	}
	return F32(float32(f)), 0
}

func castToDecimal(v Value) (Value, ErrorKind) {
	switch x := v.v.(type) {
	case bool:
		if x {
			return Decimal(apd.New(1, 0)), 0
		}
		return Decimal(apd.New(0, 0)), 0
	case float32, float64:
		f, _ := v.AsFloat64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Null, CastOutOfRange
		}
		d, err := new(apd.Decimal).SetFloat64(f)
		if err != nil {
			return Null, CastOutOfRange
		}
		return Decimal(d), 0
	case string:
		d, _, err := apd.NewFromString(strings.TrimSpace(x))
		if err != nil || d.Form != apd.Finite {
			return Null, CastParseFailure
		}
		return Decimal(d), 0
	}
	n, ok := v.AsBigInt()
	if !ok {
		return Null, ImpossibleCast
	}
	return Decimal(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(n), 0)), 0
}

func castToBool(v Value) (Value, ErrorKind) {
	switch x := v.v.(type) {
	case string:
		switch strings.ToUpper(strings.TrimSpace(x)) {
		case "TRUE":
			return Bool(true), 0
		case "FALSE":
			return Bool(false), 0
		}
		return Null, CastParseFailure
	case float32, float64:
		f, _ := v.AsFloat64()
		return boolFromNumber(f == 0, f == 1)
	case *apd.Decimal:
		return boolFromNumber(x.IsZero(), x.Cmp(apd.New(1, 0)) == 0)
	}
	n, ok := v.AsBigInt()
	if !ok {
		return Null, ImpossibleCast
	}
	return boolFromNumber(n.Sign() == 0, n.IsInt64() && n.Int64() == 1)
}

func boolFromNumber(zero, one bool) (Value, ErrorKind) {
	switch {
	case zero:
		return Bool(false), 0
	case one:
		return Bool(true), 0
	}
	return Null, CastOutOfRange
}

// parseText converts TEXT into the non-numeric targets.
func parseText(s string, t DataType) (Value, ErrorKind) {
	switch t {
	case TypeBytea:
		b, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return Null, CastParseFailure
		}
		return Bytes(b), 0
	case TypeUuid:
		u, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return Null, CastParseFailure
		}
		return UuidValue(u), 0
	case TypeDate:
		ts, err := parseTimestamp(s)
		if err != nil {
			return Null, CastParseFailure
		}
		return Date(ts), 0
	case TypeTimestamp:
		ts, err := parseTimestamp(s)
		if err != nil {
			return Null, CastParseFailure
		}
		return Timestamp(ts), 0
	case TypeTime:
		d, err := parseTimeOfDay(s)
		if err != nil {
			return Null, CastParseFailure
		}
		return TimeOfDay(d), 0
	case TypeInterval:
		i, err := parseInterval(s)
		if err != nil {
			return Null, CastParseFailure
		}
		return IntervalValue(i), 0
	case TypeMap, TypeList:
		r, err := parseJSON(s)
		if err != nil || r.typ != t {
			return Null, CastParseFailure
		}
		return r, 0
	case TypePoint:
		p, err := parsePoint(s)
		if err != nil {
			return Null, CastParseFailure
		}
		return PointValue(p), 0
	}
	return Null, ImpossibleCast
}
