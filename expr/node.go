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

package expr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rulego/sqleval/data"
)

// Expr is a node of an expression tree. The set of implementations is closed;
// the evaluator panics on anything else.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// UnaryOperator enumerates prefix and postfix operators.
type UnaryOperator uint8

const (
	// Minus is arithmetic negation, "-x"
	Minus UnaryOperator = iota + 1
	// Plus is the identity on numbers, "+x"
	Plus
	// BitwiseNot flips every bit of an integer, "~x"
	BitwiseNot
	// Factorial is the postfix "x!"
	Factorial
	// Not is boolean negation, "NOT x"
	Not
)

func (op UnaryOperator) String() string {
	switch op {
	case Minus:
		return data.OpMinus
	case Plus:
		return data.OpPlus
	case BitwiseNot:
		return data.OpBitNot
	case Factorial:
		return data.OpFactorial
	case Not:
		return data.OpNot
	}
	return fmt.Sprintf("UnaryOperator(%d)", uint8(op))
}

// Literal is a constant leaf
type Literal struct {
	Value data.Literal
}

// Identifier references a row column. Nested paths such as "device.info[0]"
// are resolved by the row.
type Identifier struct {
	Name string
}

// UnaryOp applies a unary operator
type UnaryOp struct {
	Op   UnaryOperator
	Expr Expr
}

// BinaryOp combines two operands
type BinaryOp struct {
	Left  Expr
	Op    data.BinaryOp
	Right Expr
}

// Like is "expr [NOT] LIKE pattern" or, when CaseSensitive is false, ILIKE.
type Like struct {
	Expr          Expr
	Pattern       Expr
	Negated       bool
	CaseSensitive bool
}

// Cast is "CAST(expr AS type)"
type Cast struct {
	Expr     Expr
	DataType data.DataType
}

// IsNull is "expr IS [NOT] NULL"
type IsNull struct {
	Expr    Expr
	Negated bool
}

// Nested is a parenthesized expression
type Nested struct {
	Expr Expr
}

// Constant holds the result of folding a constant subtree at plan time.
type Constant struct {
	Value Evaluated
}

func (*Literal) exprNode()    {}
func (*Identifier) exprNode() {}
func (*UnaryOp) exprNode()    {}
func (*BinaryOp) exprNode()   {}
func (*Like) exprNode()       {}
func (*Cast) exprNode()       {}
func (*IsNull) exprNode()     {}
func (*Nested) exprNode()     {}
func (*Constant) exprNode()   {}

func (e *Literal) String() string { return sqlLiteral(e.Value) }

func (e *Identifier) String() string { return e.Name }

func (e *UnaryOp) String() string {
	switch e.Op {
	case Factorial:
		return e.Expr.String() + "!"
	case Not:
		return "NOT " + e.Expr.String()
	}
	return e.Op.String() + e.Expr.String()
}

func (e *BinaryOp) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

func (e *Like) String() string {
	var sb strings.Builder
	sb.WriteString(e.Expr.String())
	if e.Negated {
		sb.WriteString(" NOT")
	}
	if e.CaseSensitive {
		sb.WriteString(" LIKE ")
	} else {
		sb.WriteString(" ILIKE ")
	}
	sb.WriteString(e.Pattern.String())
	return sb.String()
}

func (e *Cast) String() string {
	return "CAST(" + e.Expr.String() + " AS " + e.DataType.String() + ")"
}

func (e *IsNull) String() string {
	if e.Negated {
		return e.Expr.String() + " IS NOT NULL"
	}
	return e.Expr.String() + " IS NULL"
}

func (e *Nested) String() string { return "(" + e.Expr.String() + ")" }

func (e *Constant) String() string { return e.Value.String() }

// sqlLiteral renders a literal the way it would be written in SQL text.
func sqlLiteral(l data.Literal) string {
	switch l.Kind() {
	case data.LiteralNull:
		return "NULL"
	case data.LiteralBoolean:
		if b, _ := l.AsBool(); b {
			return "TRUE"
		}
		return "FALSE"
	case data.LiteralNumber:
		d, _ := l.AsNumber()
		return d.String()
	case data.LiteralText:
		s, _ := l.AsText()
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	case data.LiteralBytea:
		b, _ := l.AsBytea()
		return "X'" + strings.ToUpper(hex.EncodeToString(b)) + "'"
	}
	return l.String()
}

// Num builds a number literal from its SQL text. It panics if s is not a
// number, so it is meant for constants known to be valid.
func Num(s string) Expr {
	l, err := data.NumberFromString(s)
	if err != nil {
		panic(fmt.Sprintf("expr: Num(%q): %v", s, err))
	}
	return &Literal{Value: l}
}

// Text builds a text literal
func Text(s string) Expr { return &Literal{Value: data.Text(s)} }

// Bool builds a boolean literal
func Bool(b bool) Expr { return &Literal{Value: data.Boolean(b)} }

// Null builds the NULL literal
func Null() Expr { return &Literal{Value: data.NullLiteral} }

// Col references a column
func Col(name string) Expr { return &Identifier{Name: name} }

func unary(op UnaryOperator, e Expr) Expr { return &UnaryOp{Op: op, Expr: e} }

// Neg builds "-e"
func Neg(e Expr) Expr { return unary(Minus, e) }

// Pos builds "+e"
func Pos(e Expr) Expr { return unary(Plus, e) }

// BitNot builds "~e"
func BitNot(e Expr) Expr { return unary(BitwiseNot, e) }

// Fact builds "e!"
func Fact(e Expr) Expr { return unary(Factorial, e) }

// NotOf builds "NOT e"
func NotOf(e Expr) Expr { return unary(Not, e) }

// LikeOf builds "e LIKE pattern"
func LikeOf(e, pattern Expr) *Like {
	return &Like{Expr: e, Pattern: pattern, CaseSensitive: true}
}

// ILikeOf builds "e ILIKE pattern"
func ILikeOf(e, pattern Expr) *Like {
	return &Like{Expr: e, Pattern: pattern}
}

// CastAs builds "CAST(e AS t)"
func CastAs(e Expr, t data.DataType) Expr { return &Cast{Expr: e, DataType: t} }

// Binary builds "left op right"
func Binary(left Expr, op data.BinaryOp, right Expr) Expr {
	return &BinaryOp{Left: left, Op: op, Right: right}
}
