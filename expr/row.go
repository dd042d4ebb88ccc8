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
	"fmt"

	"github.com/rulego/sqleval/data"
	"github.com/rulego/sqleval/utils/fieldpath"
)

// Row supplies column values to the execution path. A missing column is
// NULL, never an error; an error means the column exists but could not be
// converted to a Value.
type Row interface {
	Get(name string) (data.Value, error)
}

// RowFunc adapts a function to Row
type RowFunc func(name string) (data.Value, error)

// Get calls f(name)
func (f RowFunc) Get(name string) (data.Value, error) { return f(name) }

// EmptyRow has no columns
type EmptyRow struct{}

// Get always returns NULL
func (EmptyRow) Get(string) (data.Value, error) { return data.Null, nil }

// MapRow is a row of resolved values. Names such as "device.info[0]" are
// resolved through MAP and LIST values when no column has that exact name.
type MapRow map[string]data.Value

// Get returns the column or nested element, NULL when absent.
func (r MapRow) Get(name string) (data.Value, error) {
	if v, ok := r[name]; ok {
		return v, nil
	}
	if !fieldpath.IsNestedField(name) {
		return data.Null, nil
	}
	rest, ok := nestedRest(name)
	if !ok {
		return data.Null, nil
	}
	top, ok := r[fieldpath.ExtractTopLevelField(name)]
	if !ok {
		return data.Null, nil
	}
	v, _ := rest.Resolve(top)
	return v, nil
}

// NativeRow is a row of plain Go values, converted with data.FromGo on access.
type NativeRow map[string]interface{}

// Get converts the column or nested element, NULL when absent.
func (r NativeRow) Get(name string) (data.Value, error) {
	if x, ok := r[name]; ok {
		return convertColumn(name, x)
	}
	if !fieldpath.IsNestedField(name) {
		return data.Null, nil
	}
	rest, ok := nestedRest(name)
	if !ok {
		return data.Null, nil
	}
	top := fieldpath.ExtractTopLevelField(name)
	x, ok := r[top]
	if !ok {
		return data.Null, nil
	}
	root, err := convertColumn(top, x)
	if err != nil {
		return data.Null, err
	}
	v, _ := rest.Resolve(root)
	return v, nil
}

func convertColumn(name string, x interface{}) (data.Value, error) {
	v, err := data.FromGo(x)
	if err != nil {
		return data.Null, fmt.Errorf("column %s: %w", name, err)
	}
	return v, nil
}

// nestedRest parses name and drops its leading field, which the row looks up
// itself.
func nestedRest(name string) (*fieldpath.FieldAccessor, bool) {
	accessor, err := fieldpath.ParseFieldPath(name)
	if err != nil || len(accessor.Parts) == 0 || accessor.Parts[0].Kind != fieldpath.Field {
		return nil, false
	}
	return &fieldpath.FieldAccessor{Parts: accessor.Parts[1:]}, true
}
