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
	"strings"
)

// DataType names one member of the value lattice.
// It is used by CAST targets, column declarations and as the tag of every Value.
type DataType uint8

const (
	// TypeNull tags the NULL value. It is never a valid CAST target.
	TypeNull DataType = iota
	TypeBoolean
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeInt128
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeUint128
	TypeFloat32
	TypeFloat64
	TypeDecimal
	TypeText
	TypeBytea
	TypeDate
	TypeTime
	TypeTimestamp
	TypeInterval
	TypeMap
	TypeList
	TypePoint
	TypeUuid
)

// String returns the SQL spelling of the type
func (t DataType) String() string {
	switch t {
	case TypeNull:
		return "NULL"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt8:
		return "INT8"
	case TypeInt16:
		return "INT16"
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT"
	case TypeInt128:
		return "INT128"
	case TypeUint8:
		return "UINT8"
	case TypeUint16:
		return "UINT16"
	case TypeUint32:
		return "UINT32"
	case TypeUint64:
		return "UINT64"
	case TypeUint128:
		return "UINT128"
	case TypeFloat32:
		return "FLOAT32"
	case TypeFloat64:
		return "FLOAT"
	case TypeDecimal:
		return "DECIMAL"
	case TypeText:
		return "TEXT"
	case TypeBytea:
		return "BYTEA"
	case TypeDate:
		return "DATE"
	case TypeTime:
		return "TIME"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeInterval:
		return "INTERVAL"
	case TypeMap:
		return "MAP"
	case TypeList:
		return "LIST"
	case TypePoint:
		return "POINT"
	case TypeUuid:
		return "UUID"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
}

// ParseDataType resolves a SQL type name, case-insensitively.
func ParseDataType(name string) (DataType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BOOLEAN", "BOOL":
		return TypeBoolean, nil
	case "INT8", "TINYINT":
		return TypeInt8, nil
	case "INT16", "SMALLINT":
		return TypeInt16, nil
	case "INT32":
		return TypeInt32, nil
	case "INT", "INTEGER", "INT64", "BIGINT":
		return TypeInt64, nil
	case "INT128":
		return TypeInt128, nil
	case "UINT8":
		return TypeUint8, nil
	case "UINT16":
		return TypeUint16, nil
	case "UINT32":
		return TypeUint32, nil
	case "UINT64":
		return TypeUint64, nil
	case "UINT128":
		return TypeUint128, nil
	case "FLOAT32", "REAL":
		return TypeFloat32, nil
	case "FLOAT", "FLOAT64", "DOUBLE":
		return TypeFloat64, nil
	case "DECIMAL", "NUMERIC":
		return TypeDecimal, nil
	case "TEXT", "VARCHAR", "STRING":
		return TypeText, nil
	case "BYTEA":
		return TypeBytea, nil
	case "DATE":
		return TypeDate, nil
	case "TIME":
		return TypeTime, nil
	case "TIMESTAMP":
		return TypeTimestamp, nil
	case "INTERVAL":
		return TypeInterval, nil
	case "MAP":
		return TypeMap, nil
	case "LIST":
		return TypeList, nil
	case "POINT":
		return TypePoint, nil
	case "UUID":
		return TypeUuid, nil
	default:
		return TypeNull, fmt.Errorf("unknown data type: %s", name)
	}
}

// intWidth reports the bit width and signedness of an integer type.
func (t DataType) intWidth() (bits int, signed bool, ok bool) {
	switch t {
	case TypeInt8:
		return 8, true, true
	case TypeInt16:
		return 16, true, true
	case TypeInt32:
		return 32, true, true
	case TypeInt64:
		return 64, true, true
	case TypeInt128:
		return 128, true, true
	case TypeUint8:
		return 8, false, true
	case TypeUint16:
		return 16, false, true
	case TypeUint32:
		return 32, false, true
	case TypeUint64:
		return 64, false, true
	case TypeUint128:
		return 128, false, true
	default:
		return 0, false, false
	}
}

// IsInteger reports whether t is one of the ten integer types.
func (t DataType) IsInteger() bool {
	_, _, ok := t.intWidth()
	return ok
}

// IsFloat reports whether t is FLOAT32 or FLOAT.
func (t DataType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsNumeric reports whether t is an integer, float or decimal type.
func (t DataType) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat() || t == TypeDecimal
}

// signedInt returns the signed integer type of the given width.
func signedInt(bits int) (DataType, bool) {
	switch bits {
	case 8:
		return TypeInt8, true
	case 16:
		return TypeInt16, true
	case 32:
		return TypeInt32, true
	case 64:
		return TypeInt64, true
	case 128:
		return TypeInt128, true
	}
	return TypeNull, false
}

// unsignedInt returns the unsigned integer type of the given width.
func unsignedInt(bits int) (DataType, bool) {
	switch bits {
	case 8:
		return TypeUint8, true
	case 16:
		return TypeUint16, true
	case 32:
		return TypeUint32, true
	case 64:
		return TypeUint64, true
	case 128:
		return TypeUint128, true
	}
	return TypeNull, false
}
