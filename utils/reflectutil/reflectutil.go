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

package reflectutil

import (
	"fmt"
	"reflect"
	"strings"
)

// StructToMap 将结构体的导出字段转换为map，键名优先使用json标签。
// 标签为"-"的字段被忽略，匿名嵌入的结构体字段被展开到同一层。
func StructToMap(v reflect.Value) (map[string]interface{}, error) {
	// 检查Value是否有效
	if !v.IsValid() {
		return nil, fmt.Errorf("invalid value")
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fmt.Errorf("nil %v", v.Kind())
		}
		v = v.Elem()
	}
	// 检查是否为结构体类型
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("value is not a struct, got %v", v.Kind())
	}
	m := make(map[string]interface{}, v.NumField())
	collectFields(v, m)
	return m, nil
}

func collectFields(v reflect.Value, m map[string]interface{}) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), m)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, skip := fieldName(f)
		if skip {
			continue
		}
		m[name] = v.Field(i).Interface()
	}
}

// fieldName 解析json标签，如 `json:"device_id,omitempty"`
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", true
	case "":
		return f.Name, false
	}
	return name, false
}
