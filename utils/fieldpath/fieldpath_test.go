package fieldpath

import (
	"testing"

	"github.com/rulego/sqleval/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []FieldPart
		hasError bool
	}{
		{
			name:     "简单字段",
			path:     "name",
			expected: []FieldPart{{Kind: Field, Name: "name"}},
		},
		{
			name: "嵌套字段",
			path: "user.profile.name",
			expected: []FieldPart{
				{Kind: Field, Name: "user"},
				{Kind: Field, Name: "profile"},
				{Kind: Field, Name: "name"},
			},
		},
		{
			name: "数组索引",
			path: "data[0]",
			expected: []FieldPart{
				{Kind: Field, Name: "data"},
				{Kind: Index, Index: 0, Name: "0"},
			},
		},
		{
			name: "数组索引与字段",
			path: "users[1].name",
			expected: []FieldPart{
				{Kind: Field, Name: "users"},
				{Kind: Index, Index: 1, Name: "1"},
				{Kind: Field, Name: "name"},
			},
		},
		{
			name: "字符串键",
			path: "config['database']",
			expected: []FieldPart{
				{Kind: Field, Name: "config"},
				{Kind: Key, Name: "database"},
			},
		},
		{
			name: "双引号字符串键",
			path: `settings["timeout"]`,
			expected: []FieldPart{
				{Kind: Field, Name: "settings"},
				{Kind: Key, Name: "timeout"},
			},
		},
		{
			name: "带点的键",
			path: "m['a.b'].c",
			expected: []FieldPart{
				{Kind: Field, Name: "m"},
				{Kind: Key, Name: "a.b"},
				{Kind: Field, Name: "c"},
			},
		},
		{
			name: "负数索引",
			path: "items[-1]",
			expected: []FieldPart{
				{Kind: Field, Name: "items"},
				{Kind: Index, Index: -1, Name: "-1"},
			},
		},
		{
			name: "多维数组",
			path: "matrix[1][0]",
			expected: []FieldPart{
				{Kind: Field, Name: "matrix"},
				{Kind: Index, Index: 1, Name: "1"},
				{Kind: Index, Index: 0, Name: "0"},
			},
		},
		{name: "空路径", path: " ", hasError: true},
		{name: "空片段", path: "a..b", hasError: true},
		{name: "无效括号", path: "data[0", hasError: true},
		{name: "无效键格式", path: "data[abc]", hasError: true},
		{name: "括号后多余文本", path: "data[0]x", hasError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessor, err := ParseFieldPath(tt.path)
			if tt.hasError {
				require.Error(t, err)
				var accessErr *FieldAccessError
				assert.ErrorAs(t, err, &accessErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, accessor.Parts)
		})
	}
}

func TestGetNestedField(t *testing.T) {
	root, err := data.FromGo(map[string]interface{}{
		"device": map[string]interface{}{
			"info": map[string]interface{}{"name": "sensor-1", "tags": []interface{}{"a", "b"}},
		},
		"readings": []interface{}{
			map[string]interface{}{"temp": 21.5},
			map[string]interface{}{"temp": 22.0},
		},
		"matrix": []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
		"config": map[string]interface{}{"a.b": "dotted", "0": "zero"},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected data.Value
		found    bool
	}{
		{"嵌套字段", "device.info.name", data.Str("sensor-1"), true},
		{"数组索引访问", "device.info.tags[1]", data.Str("b"), true},
		{"数组元素字段", "readings[0].temp", data.F64(21.5), true},
		{"负数索引访问数组", "readings[-1].temp", data.F64(22), true},
		{"二维数组访问", "matrix[1][0]", data.I64(3), true},
		{"Map键访问", "config['a.b']", data.Str("dotted"), true},
		{"Map数字键", "config[0]", data.Str("zero"), true},
		{"不存在的字段", "device.missing", data.Null, false},
		{"超出索引范围", "readings[5]", data.Null, false},
		{"负数越界", "readings[-3]", data.Null, false},
		{"标量上取字段", "device.info.name.first", data.Null, false},
		{"列表上取字段", "readings.temp", data.Null, false},
		{"无效路径", "device[", data.Null, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found := GetNestedField(root, tt.path)
			assert.Equal(t, tt.found, found)
			assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
		})
	}
}

func TestIsNestedField(t *testing.T) {
	tests := []struct {
		field    string
		expected bool
	}{
		{"name", false},
		{"device.info", true},
		{"data[0]", true},
		{"config['k']", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsNestedField(tt.field), tt.field)
	}
}

func TestExtractTopLevelField(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"device.info.name", "device"},
		{"data[0].name", "data"},
		{"config['key']", "config"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractTopLevelField(tt.path), tt.path)
	}
}
