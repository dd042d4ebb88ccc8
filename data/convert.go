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
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/rulego/sqleval/utils/reflectutil"
	"github.com/spf13/cast"
)

// FromGo converts a native Go value, as found in map[string]interface{}
// records, into a Value.
//
//	int, int64       -> INT       uint, uint64 -> UINT64
//	float64          -> FLOAT     float32      -> FLOAT32
//	string           -> TEXT      []byte       -> BYTEA
//	time.Time        -> TIMESTAMP time.Duration -> INTERVAL
//	json.Number      -> INT when integral, FLOAT otherwise
//	map[string]any   -> MAP       []any        -> LIST
//
// Named types are converted through their underlying kind, structs become
// MAP values keyed by their json names.
func FromGo(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return I64(int64(v)), nil
	case int8:
		return I8(v), nil
	case int16:
		return I16(v), nil
	case int32:
		return I32(v), nil
	case int64:
		return I64(v), nil
	case uint:
		return U64(uint64(v)), nil
	case uint8:
		return U8(v), nil
	case uint16:
		return U16(v), nil
	case uint32:
		return U32(v), nil
	case uint64:
		return U64(v), nil
	case float32:
		return F32(v), nil
	case float64:
		return F64(v), nil
	case string:
		return Str(v), nil
	case []byte:
		return Bytes(v), nil
	case *big.Int:
		if r, ok := checkedInt(TypeInt128, v); ok {
			return r, nil
		}
		if r, ok := checkedInt(TypeUint128, v); ok {
			return r, nil
		}
		return Null, fmt.Errorf("integer %s exceeds 128 bits", v)
	case *apd.Decimal:
		return Decimal(v), nil
	case apd.Decimal:
		return Decimal(&v), nil
	case time.Time:
		return Timestamp(v), nil
	case time.Duration:
		return IntervalValue(Interval{Duration: v}), nil
	case Interval:
		return IntervalValue(v), nil
	case Point:
		return PointValue(v), nil
	case uuid.UUID:
		return UuidValue(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return I64(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Null, fmt.Errorf("invalid json number %q: %w", v, err)
		}
		return F64(f), nil
	case map[string]Value:
		return MapValue(v), nil
	case []Value:
		return ListValue(v), nil
	case map[string]interface{}:
		return mapFromGo(v)
	case map[interface{}]interface{}:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return Null, err
		}
		return mapFromGo(m)
	case []interface{}:
		return listFromGo(v)
	}
	return fromReflect(x)
}

func mapFromGo(m map[string]interface{}) (Value, error) {
	out := make(map[string]Value, len(m))
	for k, e := range m {
		v, err := FromGo(e)
		if err != nil {
			return Null, fmt.Errorf("map key %q: %w", k, err)
		}
		out[k] = v
	}
	return Value{typ: TypeMap, v: out}, nil
}

func listFromGo(l []interface{}) (Value, error) {
	out := make([]Value, len(l))
	for i, e := range l {
		v, err := FromGo(e)
		if err != nil {
			return Null, fmt.Errorf("list index %d: %w", i, err)
		}
		out[i] = v
	}
	return Value{typ: TypeList, v: out}, nil
}

// fromReflect handles pointers, named scalar types and typed slices/maps.
func fromReflect(x interface{}) (Value, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return Null, nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int64:
		return I64(rv.Int()), nil
	case reflect.Int8:
		return I8(int8(rv.Int())), nil
	case reflect.Int16:
		return I16(int16(rv.Int())), nil
	case reflect.Int32:
		return I32(int32(rv.Int())), nil
	case reflect.Uint, reflect.Uint64:
		return U64(rv.Uint()), nil
	case reflect.Uint8:
		return U8(uint8(rv.Uint())), nil
	case reflect.Uint16:
		return U16(uint16(rv.Uint())), nil
	case reflect.Uint32:
		return U32(uint32(rv.Uint())), nil
	case reflect.Float32:
		return F32(float32(rv.Float())), nil
	case reflect.Float64:
		return F64(rv.Float()), nil
	case reflect.String:
		return Str(rv.String()), nil
	case reflect.Slice, reflect.Array:
		l := make([]interface{}, rv.Len())
		for i := range l {
			l[i] = rv.Index(i).Interface()
		}
		return listFromGo(l)
	case reflect.Map:
		m := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := cast.ToStringE(iter.Key().Interface())
			if err != nil {
				return Null, fmt.Errorf("map key: %w", err)
			}
			m[k] = iter.Value().Interface()
		}
		return mapFromGo(m)
	case reflect.Struct:
		m, err := reflectutil.StructToMap(rv)
		if err != nil {
			return Null, err
		}
		return mapFromGo(m)
	}
	if s, err := cast.ToStringE(x); err == nil {
		return Str(s), nil
	}
	return Null, fmt.Errorf("unsupported go type %T", x)
}

// Interface converts v back into a native Go value. Integers wider than 64
// bits stay *big.Int, decimals stay *apd.Decimal.
func (v Value) Interface() interface{} {
	switch x := v.v.(type) {
	case *big.Int:
		return new(big.Int).Set(x)
	case *apd.Decimal:
		return new(apd.Decimal).Set(x)
	case []byte:
		return append([]byte(nil), x...)
	case map[string]Value:
		m := make(map[string]interface{}, len(x))
		for k, e := range x {
			m[k] = e.Interface()
		}
		return m
	case []Value:
		l := make([]interface{}, len(x))
		for i, e := range x {
			l[i] = e.Interface()
		}
		return l
	case time.Duration:
		if v.typ == TypeTime {
			return formatTimeOfDay(x)
		}
		return x
	case Interval:
		if x.Months == 0 {
			return x.Duration
		}
		return x
	}
	return v.v
}
