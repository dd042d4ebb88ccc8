package expr

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/rulego/sqleval/data"
	"github.com/rulego/sqleval/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval128(n int64) data.Value { return data.I128(big.NewInt(n)) }

func TestFactorialScenarios(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected data.Value
	}{
		{"10!", Fact(Num("10")), eval128(3628800)},
		{"4!", Fact(Num("4")), eval128(24)},
		{"0!", Fact(Num("0")), eval128(1)},
		{"integral decimal", Fact(Num("5.0")), eval128(120)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.expr, nil)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestFactorialErrors(t *testing.T) {
	_, errNeg := Evaluate(Fact(Num("-5")), nil)
	_, errBig := Evaluate(Fact(Num("1000")), nil)
	require.Error(t, errNeg)
	require.Error(t, errBig)

	assert.ErrorIs(t, errNeg, data.FactorialOnNegativeNumeric)
	assert.ErrorIs(t, errBig, data.FactorialOverflow)

	var le *data.LiteralError
	require.ErrorAs(t, errBig, &le)
	assert.True(t, data.NumberFromInt64(1000).Equal(le.Operand))
}

func TestBitNotScenarios(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected data.Value
	}{
		{"uint8", BitNot(CastAs(Num("1"), data.TypeUint8)), data.U8(254)},
		{"int8", BitNot(CastAs(Num("1"), data.TypeInt8)), data.I8(-2)},
		{"default int", BitNot(Num("1")), data.I64(-2)},
		{"double", BitNot(BitNot(CastAs(Num("7"), data.TypeUint16))), data.U16(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.expr, nil)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestLikeScenarios(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected bool
	}{
		{"suffix", LikeOf(Text("abc"), Text("%c")), true},
		{"not like", &Like{Expr: Text("abc"), Pattern: Text("_c"), Negated: true, CaseSensitive: true}, true},
		{"ilike", ILikeOf(Text("HELLO"), Text("%el%")), true},
		{"like is case sensitive", LikeOf(Text("HELLO"), Text("%el%")), false},
		{"not ilike", &Like{Expr: Text("HELLO"), Pattern: Text("h%"), Negated: true}, false},
		{"column", LikeOf(Col("name"), Text("A%")), true},
		{"column not like", &Like{Expr: Col("name"), Pattern: Text("%z"), Negated: true, CaseSensitive: true}, true},
	}
	row := NativeRow{"name": "Amelia"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.expr, row)
			require.NoError(t, err)
			assert.True(t, data.Bool(tt.expected).Equal(v), "got %s", v)
		})
	}
}

func TestLikeOnNonString(t *testing.T) {
	_, err := Evaluate(LikeOf(Text("ABC"), Num("10")), nil)
	var le *data.LiteralError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, data.LikeOnNonString, le.Kind)
	assert.True(t, data.Text("ABC").Equal(le.Operand))
	assert.True(t, data.NumberFromInt64(10).Equal(le.Right))
	assert.True(t, le.CaseSensitive)

	_, err = Evaluate(LikeOf(Col("name"), Num("10")), NativeRow{"name": "Amelia"})
	var ve *data.ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, data.LikeOnNonString, ve.Kind)
	assert.True(t, data.Str("Amelia").Equal(ve.Operand))
	assert.True(t, data.I64(10).Equal(ve.Right))
	assert.True(t, ve.CaseSensitive)
	assert.Equal(t, `LIKE on non-string value: Str("Amelia") LIKE I64(10)`, err.Error())

	_, err = Evaluate(ILikeOf(Col("n"), Text("%")), MapRow{"n": data.I32(1)})
	require.ErrorAs(t, err, &ve)
	assert.False(t, ve.CaseSensitive)
}

func TestMinusScenarios(t *testing.T) {
	v, err := Evaluate(Neg(Neg(Num("10"))), nil)
	require.NoError(t, err)
	assert.True(t, data.I64(10).Equal(v))

	v, err = Evaluate(Neg(Col("x")), MapRow{"x": data.I64(-10)})
	require.NoError(t, err)
	assert.True(t, data.I64(10).Equal(v))

	tests := []struct {
		name string
		expr Expr
		row  Row
	}{
		{"int8 min", Neg(CastAs(Num("-128"), data.TypeInt8)), nil},
		{"int min", Neg(CastAs(Num("-9223372036854775808"), data.TypeInt64)), nil},
		{"column", Neg(Col("x")), MapRow{"x": data.I16(-32768)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr, tt.row)
			assert.ErrorIs(t, err, data.UnaryMinusOverflow)
			var ve *data.ValueError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestBinaryBinding(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		row      Row
		expected data.Value
		kind     data.ErrorKind
	}{
		{"literal takes column width", Binary(Col("b"), data.OpAdd, Num("1")), MapRow{"b": data.U8(200)}, data.U8(201), 0},
		{"overflow in column width", Binary(Col("b"), data.OpAdd, Num("1")), MapRow{"b": data.U8(255)}, data.Null, data.BinaryOverflow},
		{"literal on the left", Binary(Num("2"), data.OpMultiply, Col("i")), MapRow{"i": data.I32(21)}, data.I32(42), 0},
		{"text parsed for comparison", Binary(Col("i"), data.OpEq, Text("5")), MapRow{"i": data.I32(5)}, data.Bool(true), 0},
		{"fraction does not bind to int", Binary(Col("i"), data.OpLt, Num("5.5")), MapRow{"i": data.I32(5)}, data.Bool(true), 0},
		{"null column", Binary(Col("missing"), data.OpAdd, Num("1")), EmptyRow{}, data.Null, 0},
		{"folded literals", Binary(Num("7"), data.OpModulo, Num("4")), nil, data.I64(3), 0},
		{"division by zero", Binary(Num("1"), data.OpDivide, Num("0")), nil, data.Null, data.DivisorShouldNotBeZero},
		{"unknown truth", Binary(Null(), data.OpOr, Bool(true)), nil, data.Bool(true), 0},
		{"concat", Binary(Col("s"), data.OpConcat, Num("1")), NativeRow{"s": "v"}, data.Str("v1"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.expr, tt.row)
			if tt.kind != 0 {
				assert.ErrorIs(t, err, tt.kind)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestCastAndIsNull(t *testing.T) {
	v, err := Evaluate(CastAs(Col("s"), data.TypeInt32), NativeRow{"s": "12"})
	require.NoError(t, err)
	assert.True(t, data.I32(12).Equal(v))

	_, err = Evaluate(CastAs(Num("300"), data.TypeUint8), nil)
	assert.ErrorIs(t, err, data.CastOutOfRange)
	var le *data.LiteralError
	assert.ErrorAs(t, err, &le)

	v, err = Evaluate(&IsNull{Expr: Col("missing")}, NativeRow{})
	require.NoError(t, err)
	assert.True(t, data.Bool(true).Equal(v))

	v, err = Evaluate(&IsNull{Expr: Num("1"), Negated: true}, nil)
	require.NoError(t, err)
	assert.True(t, data.Bool(true).Equal(v))
}

// literalExprs are evaluated once as written and once with every literal
// replaced by a column holding the literal's resolved value.
var literalExprs = []Expr{
	Neg(Num("10")),
	Neg(Num("-2.5")),
	Pos(Num("3")),
	Pos(Text("x")),
	Neg(Bool(true)),
	BitNot(Num("1")),
	BitNot(Num("0")),
	BitNot(Num("1.5")),
	BitNot(Text("a")),
	Fact(Num("10")),
	Fact(Num("33")),
	Fact(Num("34")),
	Fact(Num("-5")),
	Fact(Num("2.5")),
	Fact(Text("a")),
	NotOf(Bool(true)),
	NotOf(Null()),
	NotOf(Num("1")),
	LikeOf(Text("abc"), Text("%c")),
	ILikeOf(Text("HELLO"), Text("%el%")),
	LikeOf(Text("ABC"), Num("10")),
	LikeOf(Null(), Text("a")),
	&Like{Expr: Text("abc"), Pattern: Text("_c"), Negated: true, CaseSensitive: true},
	CastAs(Num("300"), data.TypeUint8),
	CastAs(Num("255"), data.TypeUint8),
	CastAs(Text("12"), data.TypeInt32),
	CastAs(Text("x"), data.TypeInt32),
	CastAs(Bool(true), data.TypeDate),
	Binary(Num("1"), data.OpAdd, Num("2")),
	Binary(Num("9223372036854775807"), data.OpAdd, Num("1")),
	Binary(Num("1"), data.OpDivide, Num("0")),
	Binary(Num("1.5"), data.OpLt, Num("2")),
	Binary(Text("a"), data.OpConcat, Num("1")),
	Binary(Bool(true), data.OpAnd, Null()),
	Binary(Text("a"), data.OpAdd, Num("1")),
	&IsNull{Expr: Null()},
	&Nested{Expr: Neg(Num("3"))},
}

// injectColumns replaces every literal of e with a column bound in row.
func injectColumns(t *testing.T, e Expr, row MapRow) Expr {
	switch n := e.(type) {
	case *Literal:
		name := fmt.Sprintf("c%d", len(row))
		v, err := n.Value.ToValue()
		require.NoError(t, err)
		row[name] = v
		return Col(name)
	case *UnaryOp:
		return &UnaryOp{Op: n.Op, Expr: injectColumns(t, n.Expr, row)}
	case *BinaryOp:
		l := injectColumns(t, n.Left, row)
		return &BinaryOp{Left: l, Op: n.Op, Right: injectColumns(t, n.Right, row)}
	case *Like:
		x := injectColumns(t, n.Expr, row)
		return &Like{Expr: x, Pattern: injectColumns(t, n.Pattern, row), Negated: n.Negated, CaseSensitive: n.CaseSensitive}
	case *Cast:
		return &Cast{Expr: injectColumns(t, n.Expr, row), DataType: n.DataType}
	case *IsNull:
		return &IsNull{Expr: injectColumns(t, n.Expr, row), Negated: n.Negated}
	case *Nested:
		return &Nested{Expr: injectColumns(t, n.Expr, row)}
	}
	t.Fatalf("unexpected node %T", e)
	return nil
}

func TestPathEquivalence(t *testing.T) {
	for _, e := range literalExprs {
		t.Run(e.String(), func(t *testing.T) {
			row := MapRow{}
			bound := injectColumns(t, e, row)

			folded, foldErr := Evaluate(e, nil)
			executed, execErr := Evaluate(bound, row)

			if foldErr != nil || execErr != nil {
				require.Error(t, foldErr, "execution path failed with %v", execErr)
				require.Error(t, execErr, "fold path failed with %v", foldErr)
				var le *data.LiteralError
				var ve *data.ValueError
				require.ErrorAs(t, foldErr, &le)
				require.ErrorAs(t, execErr, &ve)
				assert.Equal(t, le.Kind, ve.Kind)
				assert.Equal(t, le.Op, ve.Op)
				assert.Equal(t, le.CaseSensitive, ve.CaseSensitive)
				return
			}
			assert.True(t, folded.Equal(executed), "fold %s, execution %s", folded, executed)
		})
	}
}

func TestPrepare(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(WithLogger(logger.NewLogger(logger.DEBUG, &buf)))

	e := Binary(Col("x"), data.OpAdd, &Nested{Expr: Fact(Num("4"))})
	prepared, err := ev.Prepare(e)
	require.NoError(t, err)

	bin, ok := prepared.(*BinaryOp)
	require.True(t, ok)
	c, ok := bin.Right.(*Constant)
	require.True(t, ok, "constant subtree should be folded, got %T", bin.Right)
	assert.True(t, FromValue(eval128(24)).Equal(c.Value))
	assert.Contains(t, buf.String(), "folded (4!) into")
	assert.Equal(t, "x + I128(24)", prepared.String())

	for _, x := range []int64{0, 1, -30} {
		row := MapRow{"x": data.I64(x)}
		want, err := ev.Evaluate(e, row)
		require.NoError(t, err)
		got, err := ev.Evaluate(prepared, row)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "x=%d: want %s, got %s", x, want, got)
	}

	// columns and literals are left alone
	for _, leaf := range []Expr{Col("x"), Num("1")} {
		p, err := ev.Prepare(leaf)
		require.NoError(t, err)
		assert.Same(t, leaf, p)
	}
}

func TestPrepareSurfacesConstantErrors(t *testing.T) {
	var buf bytes.Buffer
	ev := NewEvaluator(WithLogger(logger.NewLogger(logger.WARN, &buf)))

	_, err := ev.Prepare(&IsNull{Expr: Binary(Col("x"), data.OpAdd, Fact(Num("1000")))})
	require.Error(t, err)
	assert.ErrorIs(t, err, data.FactorialOverflow)
	var le *data.LiteralError
	assert.ErrorAs(t, err, &le)
	assert.Contains(t, buf.String(), "[WARN]")
}

func TestFold(t *testing.T) {
	r, err := Fold(Neg(Num("5")))
	require.NoError(t, err)
	l, ok := r.Literal()
	require.True(t, ok, "negation of a literal stays a literal")
	assert.True(t, data.NumberFromInt64(-5).Equal(l))

	r, err = Fold(CastAs(Num("5"), data.TypeInt16))
	require.NoError(t, err)
	assert.False(t, r.IsLiteral())

	_, err = Fold(Binary(Col("x"), data.OpAdd, Num("1")))
	assert.True(t, errors.Is(err, ErrNotConstant))

	assert.True(t, IsConstant(Binary(Num("1"), data.OpAdd, Fact(Num("2")))))
	assert.False(t, IsConstant(&Like{Expr: Text("a"), Pattern: Col("p")}))
}

func TestRowErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	row := RowFunc(func(name string) (data.Value, error) {
		if name == "bad" {
			return data.Null, boom
		}
		return data.I64(1), nil
	})
	_, err := Evaluate(Binary(Col("ok"), data.OpAdd, Col("bad")), row)
	assert.ErrorIs(t, err, boom)

	_, err = Evaluate(Col("v"), NativeRow{"v": make(chan int)})
	assert.Error(t, err)
}

func TestNonFiniteFloatWithDecimal(t *testing.T) {
	row := MapRow{
		"inf": data.F64(math.Inf(1)),
		"nan": data.F64(math.NaN()),
		"d":   data.Decimal(apd.New(3, 0)),
	}
	for _, col := range []string{"inf", "nan"} {
		t.Run(col, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = Evaluate(Binary(Col(col), data.OpAdd, Col("d")), row)
			})
			assert.ErrorIs(t, err, data.BinaryOverflow)
		})
	}
}

func TestUnexpectedExpressionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "expr: unexpected expression *expr.UnaryOp", func() {
		_, _ = Evaluate(&UnaryOp{Op: Minus}, nil)
	})
	assert.Panics(t, func() {
		_, _ = Evaluate(&BinaryOp{Left: Num("1"), Op: data.OpAdd}, nil)
	})
}

func TestExprString(t *testing.T) {
	tests := []struct {
		expr     Expr
		expected string
	}{
		{Fact(Num("10")), "10!"},
		{BitNot(CastAs(Num("1"), data.TypeUint8)), "~CAST(1 AS UINT8)"},
		{&Like{Expr: Col("name"), Pattern: Text("it's%"), Negated: true}, "name NOT ILIKE 'it''s%'"},
		{NotOf(&IsNull{Expr: Col("a"), Negated: true}), "NOT a IS NOT NULL"},
		{Binary(Null(), data.OpAnd, Bool(false)), "NULL AND FALSE"},
		{Neg(&Nested{Expr: Num("-1.50")}), "-(-1.50)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.expr.String())
	}
}
