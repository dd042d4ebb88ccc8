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

// Package fieldpath resolves column paths such as "device.info.name",
// "data[0]" or "config['key']" against MAP and LIST values.
package fieldpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rulego/sqleval/data"
)

// PartKind tags one step of a field path.
type PartKind uint8

const (
	// Field selects a MAP entry by name (dot notation)
	Field PartKind = iota + 1
	// Index selects a LIST element; negative indices count from the end
	Index
	// Key selects a MAP entry by quoted key
	Key
)

// FieldPart represents a single part of field path
type FieldPart struct {
	Kind  PartKind
	Name  string // field name or map key
	Index int    // list index when Kind is Index
}

// FieldAccessor is a parsed field path
type FieldAccessor struct {
	Parts []FieldPart
}

// FieldAccessError field access error
type FieldAccessError struct {
	Path    string
	Message string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("field path %q: %s", e.Path, e.Message)
}

// IsNestedField checks if field name contains dots or array indices (nested field)
func IsNestedField(fieldName string) bool {
	return strings.ContainsAny(fieldName, ".[")
}

// ParseFieldPath parses field path, supports dot notation, list indices and
// quoted map keys:
//   - a.b.c
//   - a.b[0], a.b[-1]
//   - a.b['key'], a.b["key"]
//   - a[0].b[1].c['key']
func ParseFieldPath(path string) (*FieldAccessor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &FieldAccessError{Path: path, Message: "empty path"}
	}
	accessor := &FieldAccessor{}
	for _, segment := range splitSegments(path) {
		if segment == "" {
			return nil, &FieldAccessError{Path: path, Message: "empty segment"}
		}
		if err := parseSegment(path, segment, accessor); err != nil {
			return nil, err
		}
	}
	return accessor, nil
}

// splitSegments splits on dots outside brackets, so "m['a.b']" stays whole.
func splitSegments(path string) []string {
	var (
		segments []string
		depth    int
		start    int
	)
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				segments = append(segments, path[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, path[start:])
}

// parseSegment parses "name", "name[0]['k']" or "[0]".
func parseSegment(path, segment string, accessor *FieldAccessor) error {
	bracket := strings.IndexByte(segment, '[')
	if bracket == -1 {
		accessor.Parts = append(accessor.Parts, FieldPart{Kind: Field, Name: segment})
		return nil
	}
	if bracket > 0 {
		accessor.Parts = append(accessor.Parts, FieldPart{Kind: Field, Name: segment[:bracket]})
	}
	remaining := segment[bracket:]
	for remaining != "" {
		if remaining[0] != '[' {
			return &FieldAccessError{Path: path, Message: "unexpected text after bracket"}
		}
		end := closingBracket(remaining)
		if end == -1 {
			return &FieldAccessError{Path: path, Message: "unmatched bracket in field path"}
		}
		part, err := parseBracketContent(path, remaining[1:end])
		if err != nil {
			return err
		}
		accessor.Parts = append(accessor.Parts, part)
		remaining = remaining[end+1:]
	}
	return nil
}

// closingBracket finds the ']' that closes s[0], skipping quoted keys.
func closingBracket(s string) int {
	var quote byte
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ']':
			return i
		}
	}
	return -1
}

// parseBracketContent parses content within brackets
func parseBracketContent(path, content string) (FieldPart, error) {
	content = strings.TrimSpace(content)
	if len(content) >= 2 && (content[0] == '\'' || content[0] == '"') && content[len(content)-1] == content[0] {
		return FieldPart{Kind: Key, Name: content[1 : len(content)-1]}, nil
	}
	if n, err := strconv.Atoi(content); err == nil {
		return FieldPart{Kind: Index, Index: n, Name: content}, nil
	}
	return FieldPart{}, &FieldAccessError{
		Path:    path,
		Message: "invalid bracket content, expected number or quoted string",
	}
}

// Resolve walks the accessor from root. It reports false when a step does
// not exist or the value at that step is not a MAP or LIST.
func (a *FieldAccessor) Resolve(root data.Value) (data.Value, bool) {
	current := root
	for _, part := range a.Parts {
		next, ok := step(current, part)
		if !ok {
			return data.Null, false
		}
		current = next
	}
	return current, true
}

func step(v data.Value, part FieldPart) (data.Value, bool) {
	if m, ok := v.AsMap(); ok {
		// a numeric index on a MAP is read as a key
		e, found := m[part.Name]
		return e, found
	}
	l, ok := v.AsList()
	if !ok || part.Kind != Index {
		return data.Null, false
	}
	i := part.Index
	if i < 0 {
		i += len(l)
	}
	if i < 0 || i >= len(l) {
		return data.Null, false
	}
	return l[i], true
}

// GetNestedField resolves path against the MAP root.
func GetNestedField(root data.Value, path string) (data.Value, bool) {
	accessor, err := ParseFieldPath(path)
	if err != nil {
		return data.Null, false
	}
	return accessor.Resolve(root)
}

// ExtractTopLevelField extracts top-level field name from nested field path
// Examples: "device.info.name" returns "device", "data[0].name" returns "data"
func ExtractTopLevelField(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}
