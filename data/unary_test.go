package data

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueUnaryMinus(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected Value
		kind     ErrorKind
	}{
		{"int64", I64(10), I64(-10), 0},
		{"double negation", I64(-10), I64(10), 0},
		{"int8 max", I8(127), I8(-127), 0},
		{"int8 min", I8(math.MinInt8), Null, UnaryMinusOverflow},
		{"int16 min", I16(math.MinInt16), Null, UnaryMinusOverflow},
		{"int32 min", I32(math.MinInt32), Null, UnaryMinusOverflow},
		{"int64 min", I64(math.MinInt64), Null, UnaryMinusOverflow},
		{"int128 min", I128(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))), Null, UnaryMinusOverflow},
		{"int128", I128(big.NewInt(5)), I128(big.NewInt(-5)), 0},
		{"uint zero", U32(0), U32(0), 0},
		{"uint non-zero", U8(1), Null, UnaryMinusOverflow},
		{"float", F64(1.5), F64(-1.5), 0},
		{"float32", F32(-2), F32(2), 0},
		{"decimal", Decimal(apd.New(15, -1)), Decimal(apd.New(-15, -1)), 0},
		{"null", Null, Null, 0},
		{"text", Str("a"), Null, UnaryMinusOnNonNumeric},
		{"bool", Bool(true), Null, UnaryMinusOnNonNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.value.UnaryMinus()
			if tt.kind != 0 {
				var ve *ValueError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.kind, ve.Kind)
				assert.Equal(t, OpMinus, ve.Op)
				assert.True(t, tt.value.Equal(ve.Operand))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestValueUnaryPlus(t *testing.T) {
	v, err := U16(3).UnaryPlus()
	require.NoError(t, err)
	assert.True(t, U16(3).Equal(v))

	v, err = Null.UnaryPlus()
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = Str("x").UnaryPlus()
	assert.ErrorIs(t, err, UnaryPlusOnNonNumeric)
}

func TestValueUnaryBitNot(t *testing.T) {
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	tests := []struct {
		name     string
		value    Value
		expected Value
		kind     ErrorKind
	}{
		{"uint8", U8(1), U8(254), 0},
		{"int8", I8(1), I8(-2), 0},
		{"int64", I64(1), I64(-2), 0},
		{"uint64 zero", U64(0), U64(math.MaxUint64), 0},
		{"int128", I128(big.NewInt(0)), I128(big.NewInt(-1)), 0},
		{"uint128", U128(big.NewInt(1)), U128(new(big.Int).Sub(maxU128, big.NewInt(1))), 0},
		{"null", Null, Null, 0},
		{"float", F64(1), Null, UnaryBitNotOnNonInteger},
		{"decimal", Decimal(apd.New(1, 0)), Null, UnaryBitNotOnNonInteger},
		{"text", Str("1"), Null, UnaryBitNotOnNonNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.value.UnaryBitNot()
			if tt.kind != 0 {
				assert.ErrorIs(t, err, tt.kind)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

// ~ keeps width and signedness and is its own inverse.
func TestBitNotInvolution(t *testing.T) {
	values := []Value{
		I8(math.MinInt8), I16(12345), I32(-1), I64(math.MaxInt64),
		I128(big.NewInt(-77)), U8(0), U16(math.MaxUint16), U32(7), U64(1 << 40),
		U128(big.NewInt(99)),
	}
	for _, v := range values {
		once, err := v.UnaryBitNot()
		require.NoError(t, err)
		assert.Equal(t, v.Type(), once.Type())
		twice, err := once.UnaryBitNot()
		require.NoError(t, err)
		assert.True(t, v.Equal(twice), "~~%s = %s", v, twice)
	}
}

func TestValueUnaryFactorial(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
		kind     ErrorKind
	}{
		{"ten", I64(10), "3628800", 0},
		{"four", U8(4), "24", 0},
		{"zero", I64(0), "1", 0},
		{"integral float", F64(5), "120", 0},
		{"integral decimal", Decimal(apd.New(300, -2)), "6", 0},
		{"largest", I64(33), "8683317618811886495518194401280000000", 0},
		{"overflow", I64(34), "", FactorialOverflow},
		{"huge", I64(1000), "", FactorialOverflow},
		{"negative", I64(-5), "", FactorialOnNegativeNumeric},
		{"fraction", F64(2.5), "", FactorialOnNonInteger},
		{"negative fraction", F64(-2.5), "", FactorialOnNonInteger},
		{"nan", F64(math.NaN()), "", FactorialOnNonInteger},
		{"decimal fraction", Decimal(apd.New(25, -1)), "", FactorialOnNonInteger},
		{"text", Str("5"), "", FactorialOnNonNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.value.UnaryFactorial()
			if tt.kind != 0 {
				var ve *ValueError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.kind, ve.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TypeInt128, v.Type())
			assert.Equal(t, tt.expected, v.ToText())
		})
	}
}

func TestFactorialMonotonic(t *testing.T) {
	prev := big.NewInt(0)
	for n := int64(1); n <= maxFactorialInput; n++ {
		v, err := I64(n).UnaryFactorial()
		require.NoError(t, err)
		got, _ := v.AsBigInt()
		assert.Equal(t, 1, got.Cmp(prev), "%d! must grow", n)
		prev = got
	}
}

func TestValueNot(t *testing.T) {
	v, err := Bool(true).Not()
	require.NoError(t, err)
	assert.True(t, Bool(false).Equal(v))

	v, err = Null.Not()
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = I64(1).Not()
	assert.ErrorIs(t, err, NotOnNonBoolean)
}

func TestLiteralUnary(t *testing.T) {
	t.Run("minus is exact", func(t *testing.T) {
		l, err := num(t, "9223372036854775808").UnaryMinus()
		require.NoError(t, err)
		v, err := l.Cast(TypeInt64)
		require.NoError(t, err)
		assert.True(t, I64(math.MinInt64).Equal(v))
	})
	t.Run("double minus", func(t *testing.T) {
		l, err := num(t, "-10").UnaryMinus()
		require.NoError(t, err)
		assert.True(t, num(t, "10").Equal(l))
	})
	t.Run("minus on text", func(t *testing.T) {
		_, err := Text("a").UnaryMinus()
		var le *LiteralError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, UnaryMinusOnNonNumeric, le.Kind)
		assert.True(t, Text("a").Equal(le.Operand))
	})
	t.Run("plus", func(t *testing.T) {
		l, err := num(t, "2.5").UnaryPlus()
		require.NoError(t, err)
		assert.True(t, num(t, "2.5").Equal(l))
		_, err = Boolean(true).UnaryPlus()
		assert.ErrorIs(t, err, UnaryPlusOnNonNumeric)
	})
	t.Run("bitnot resolves to int", func(t *testing.T) {
		v, err := num(t, "1").UnaryBitNot()
		require.NoError(t, err)
		assert.True(t, I64(-2).Equal(v))
	})
	t.Run("bitnot on fraction", func(t *testing.T) {
		_, err := num(t, "1.5").UnaryBitNot()
		var le *LiteralError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, UnaryBitNotOnNonInteger, le.Kind)
	})
	t.Run("factorial", func(t *testing.T) {
		v, err := num(t, "10").UnaryFactorial()
		require.NoError(t, err)
		assert.Equal(t, "I128(3628800)", v.String())
	})
	t.Run("factorial errors", func(t *testing.T) {
		cases := map[string]ErrorKind{
			"-5":   FactorialOnNegativeNumeric,
			"1000": FactorialOverflow,
			"2.5":  FactorialOnNonInteger,
			"1e40": FactorialOverflow,
		}
		for in, kind := range cases {
			_, err := num(t, in).UnaryFactorial()
			var le *LiteralError
			require.ErrorAs(t, err, &le, in)
			assert.Equal(t, kind, le.Kind, in)
			assert.Equal(t, OpFactorial, le.Op)
		}
		_, err := Text("5").UnaryFactorial()
		assert.ErrorIs(t, err, FactorialOnNonNumeric)
	})
	t.Run("not", func(t *testing.T) {
		l, err := Boolean(false).Not()
		require.NoError(t, err)
		assert.True(t, Boolean(true).Equal(l))
		_, err = num(t, "1").Not()
		assert.ErrorIs(t, err, NotOnNonBoolean)
	})
}
