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
	"fmt"
	"strings"
)

// ErrorKind identifies a semantic failure independently of the evaluation path.
// It implements error so that errors.Is(err, data.FactorialOverflow) matches
// both *ValueError and *LiteralError.
type ErrorKind int

const (
	UnaryPlusOnNonNumeric ErrorKind = iota + 1
	UnaryMinusOnNonNumeric
	UnaryMinusOverflow
	UnaryBitNotOnNonNumeric
	UnaryBitNotOnNonInteger
	FactorialOnNonNumeric
	FactorialOnNonInteger
	FactorialOnNegativeNumeric
	FactorialOverflow
	NotOnNonBoolean
	LikeOnNonString
	ImpossibleCast
	CastOutOfRange
	CastParseFailure
	BinaryOnNonNumeric
	BinaryOverflow
	DivisorShouldNotBeZero
	IncompatibleOperands
	NonComparable
	LogicalOnNonBoolean
	LiteralNumberOutOfRange
)

// Category groups error kinds the way callers usually react to them.
type Category int

const (
	CategoryTypeMismatch Category = iota + 1
	CategoryDomain
	CategoryOverflow
	CategoryCast
)

// String returns category name
func (c Category) String() string {
	switch c {
	case CategoryTypeMismatch:
		return "TYPE_MISMATCH"
	case CategoryDomain:
		return "DOMAIN_VIOLATION"
	case CategoryOverflow:
		return "OVERFLOW"
	case CategoryCast:
		return "CAST_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Error returns the message of the kind.
func (k ErrorKind) Error() string {
	switch k {
	case UnaryPlusOnNonNumeric:
		return "unary plus operation on non-numeric value"
	case UnaryMinusOnNonNumeric:
		return "unary minus operation on non-numeric value"
	case UnaryMinusOverflow:
		return "unary minus operation overflow"
	case UnaryBitNotOnNonNumeric:
		return "unary bitwise not operation on non-numeric value"
	case UnaryBitNotOnNonInteger:
		return "unary bitwise not operation on non-integer value"
	case FactorialOnNonNumeric:
		return "factorial on non-numeric value"
	case FactorialOnNonInteger:
		return "factorial on non-integer value"
	case FactorialOnNegativeNumeric:
		return "factorial on negative value"
	case FactorialOverflow:
		return "factorial result overflow"
	case NotOnNonBoolean:
		return "NOT on non-boolean value"
	case LikeOnNonString:
		return "LIKE on non-string value"
	case ImpossibleCast:
		return "impossible cast"
	case CastOutOfRange:
		return "cast value out of target range"
	case CastParseFailure:
		return "cast failed to parse value"
	case BinaryOnNonNumeric:
		return "arithmetic operation on non-numeric value"
	case BinaryOverflow:
		return "arithmetic operation overflow"
	case DivisorShouldNotBeZero:
		return "divisor should not be zero"
	case IncompatibleOperands:
		return "incompatible operand types"
	case NonComparable:
		return "values are not comparable"
	case LogicalOnNonBoolean:
		return "logical operation on non-boolean value"
	case LiteralNumberOutOfRange:
		return "number literal out of range"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Category returns the category of the kind.
func (k ErrorKind) Category() Category {
	switch k {
	case UnaryMinusOverflow, FactorialOverflow, BinaryOverflow, LiteralNumberOutOfRange:
		return CategoryOverflow
	case FactorialOnNegativeNumeric, DivisorShouldNotBeZero:
		return CategoryDomain
	case ImpossibleCast, CastOutOfRange, CastParseFailure:
		return CategoryCast
	default:
		return CategoryTypeMismatch
	}
}

// ValueError is raised on the execution path. It carries the runtime operands.
type ValueError struct {
	Kind ErrorKind
	// Op is the operator symbol, e.g. "-", "!", "LIKE", "CAST".
	Op string
	// Operand is the single operand, the left operand or the LIKE base.
	Operand Value
	// Right is the right operand or the LIKE pattern.
	Right Value
	// Target is the CAST target.
	Target DataType
	// CaseSensitive distinguishes LIKE (true) from ILIKE (false).
	CaseSensitive bool
}

func (e *ValueError) Error() string {
	return formatError(e.Kind, e.Op, e.Operand.String(), e.Right.String(), e.Target)
}

// Unwrap returns the kind so errors.Is works on it.
func (e *ValueError) Unwrap() error { return e.Kind }

// LiteralError is raised on the fold path. It carries the unresolved literals.
type LiteralError struct {
	Kind          ErrorKind
	Op            string
	Operand       Literal
	Right         Literal
	Target        DataType
	CaseSensitive bool
}

func (e *LiteralError) Error() string {
	return formatError(e.Kind, e.Op, e.Operand.String(), e.Right.String(), e.Target)
}

// Unwrap returns the kind so errors.Is works on it.
func (e *LiteralError) Unwrap() error { return e.Kind }

func formatError(kind ErrorKind, op, operand, right string, target DataType) string {
	var sb strings.Builder
	sb.WriteString(kind.Error())
	switch {
	case kind.binary():
		fmt.Fprintf(&sb, ": %s %s %s", operand, op, right)
	case target != TypeNull:
		fmt.Fprintf(&sb, ": %s AS %s", operand, target)
	case op != "":
		fmt.Fprintf(&sb, ": %s %s", op, operand)
	default:
		fmt.Fprintf(&sb, ": %s", operand)
	}
	return sb.String()
}

// binary reports whether errors of this kind carry two operands.
func (k ErrorKind) binary() bool {
	switch k {
	case LikeOnNonString, BinaryOnNonNumeric, BinaryOverflow, DivisorShouldNotBeZero,
		IncompatibleOperands, NonComparable, LogicalOnNonBoolean:
		return true
	}
	return false
}

// KindOf extracts the ErrorKind from an error of either evaluation path.
func KindOf(err error) (ErrorKind, bool) {
	var k ErrorKind
	if errors.As(err, &k) {
		return k, true
	}
	return 0, false
}

func likeOp(caseSensitive bool) string {
	if caseSensitive {
		return "LIKE"
	}
	return "ILIKE"
}

func newValueError(kind ErrorKind, op string, operand Value) *ValueError {
	return &ValueError{Kind: kind, Op: op, Operand: operand}
}

func newLiteralError(kind ErrorKind, op string, operand Literal) *LiteralError {
	return &LiteralError{Kind: kind, Op: op, Operand: operand}
}
