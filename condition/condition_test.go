package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewExprCondition 测试创建表达式条件
func TestNewExprCondition(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "简单比较表达式", expression: "age > 18"},
		{name: "复杂逻辑表达式", expression: "age > 18 && name == 'John'"},
		{name: "包含函数的表达式", expression: "is_null(name)"},
		{name: "LIKE模式匹配", expression: "like(name, 'John%')"},
		{name: "无效表达式", expression: "age >", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cond)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cond)
			}
		})
	}
}

// TestExprCondition_Evaluate 测试表达式条件求值
func TestExprCondition_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		expected   bool
	}{
		{"数值比较 - 大于", "age > 18", map[string]interface{}{"age": 25}, true},
		{"数值比较 - 小于等于", "age <= 18", map[string]interface{}{"age": 16}, true},
		{"字符串相等比较", "name == 'John'", map[string]interface{}{"name": "John"}, true},
		{"逻辑AND - 假", "age > 18 && active == true", map[string]interface{}{"age": 25, "active": false}, false},
		{"逻辑OR - 真", "age < 18 || vip == true", map[string]interface{}{"age": 25, "vip": true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cond.Evaluate(tt.env))
		})
	}
}

// TestExprCondition_IsNull 测试is_null函数
func TestExprCondition_IsNull(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		expected   bool
	}{
		{"is_null - 空值", "is_null(name)", map[string]interface{}{"name": nil}, true},
		{"is_null - 非空值", "is_null(name)", map[string]interface{}{"name": "John"}, false},
		{"is_not_null - 空值", "is_not_null(name)", map[string]interface{}{"name": nil}, false},
		{"is_not_null - 非空值", "is_not_null(name)", map[string]interface{}{"name": "John"}, true},
		{"is_null - 缺失字段", "is_null(missing_field)", map[string]interface{}{"name": "John"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cond.Evaluate(tt.env))
		})
	}
}

// TestExprCondition_Like 测试LIKE系列函数
func TestExprCondition_Like(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		expected   bool
	}{
		{"LIKE - 前缀匹配", "like(name, 'John%')", map[string]interface{}{"name": "Johnson"}, true},
		{"LIKE - 后缀匹配", "like(name, '%son')", map[string]interface{}{"name": "Johnson"}, true},
		{"LIKE - 单字符匹配", "like(name, 'J_hn')", map[string]interface{}{"name": "John"}, true},
		{"LIKE - 不匹配", "like(name, 'Jane%')", map[string]interface{}{"name": "Johnson"}, false},
		{"LIKE - 区分大小写", "like(name, 'john%')", map[string]interface{}{"name": "Johnson"}, false},
		{"ILIKE - 忽略大小写", "ilike(name, 'JOHN%')", map[string]interface{}{"name": "Johnson"}, true},
		{"NOT LIKE", "not_like(name, '_c')", map[string]interface{}{"name": "abc"}, true},
		{"NOT ILIKE", "not_ilike(name, '%EL%')", map[string]interface{}{"name": "hello"}, false},
		{"LIKE - 空值", "like(name, '%')", map[string]interface{}{"name": nil}, false},
		{"LIKE - 组合条件", "like(email, '%@gmail.com') && age >= 18", map[string]interface{}{"email": "user@gmail.com", "age": 25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cond.Evaluate(tt.env))
		})
	}
}

// TestExprCondition_Operators 测试一元运算与类型转换函数
func TestExprCondition_Operators(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
	}{
		{"阶乘", "factorial(n) == 3628800", map[string]interface{}{"n": 10}},
		{"阶乘 - 小值", "factorial(4) == 24", nil},
		{"按位取反 UINT8", "bit_not(cast(1, 'UINT8')) == 254", nil},
		{"按位取反 INT8", "bit_not(cast(1, 'INT8')) == -2", nil},
		{"按位取反 默认整数", "bit_not(1) == -2", nil},
		{"取负", "neg(neg(x)) == 10", map[string]interface{}{"x": 10}},
		{"文本转换", "cast(s, 'INT32') + 1 == 13", map[string]interface{}{"s": "12"}},
		{"转换为文本", "cast(n, 'TEXT') == '42'", map[string]interface{}{"n": 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			ok, err := cond.EvaluateE(tt.env)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

// TestExprCondition_ErrorHandling 测试错误处理
func TestExprCondition_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]interface{}
		message    string
	}{
		{"阶乘负数", "factorial(n) > 0", map[string]interface{}{"n": -5}, "factorial on negative"},
		{"阶乘溢出", "factorial(n) > 0", map[string]interface{}{"n": 1000}, "factorial result overflow"},
		{"取负溢出", "neg(cast(-128, 'INT8')) > 0", nil, "unary minus operation overflow"},
		{"LIKE非字符串", "like(name, 10)", map[string]interface{}{"name": "Amelia"}, "LIKE on non-string value"},
		{"转换越界", "cast(300, 'UINT8') > 0", nil, "cast value out of target range"},
		{"未知类型", "cast(1, 'WIDGET') == 1", nil, "unknown data type"},
		{"参数个数", "factorial(1, 2) > 0", nil, "requires 1 parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewExprCondition(tt.expression)
			require.NoError(t, err)
			ok, err := cond.EvaluateE(tt.env)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.False(t, ok)
			assert.False(t, cond.Evaluate(tt.env))
		})
	}
}
