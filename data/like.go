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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Like matches v against a LIKE pattern. '%' matches any sequence of
// characters including none, '_' matches exactly one character and there is
// no escape character. With caseSensitive false it behaves as ILIKE.
// Both operands must be TEXT or NULL; NULL yields NULL.
func (v Value) Like(pattern Value, caseSensitive bool) (Value, error) {
	if !likeOperand(v.typ) || !likeOperand(pattern.typ) {
		return Null, &ValueError{
			Kind:          LikeOnNonString,
			Op:            likeOp(caseSensitive),
			Operand:       v,
			Right:         pattern,
			CaseSensitive: caseSensitive,
		}
	}
	if v.IsNull() || pattern.IsNull() {
		return Null, nil
	}
	return Bool(MatchLike(v.v.(string), pattern.v.(string), caseSensitive)), nil
}

// Like is Value.Like for two literals.
func (l Literal) Like(pattern Literal, caseSensitive bool) (Literal, error) {
	if !likeLiteral(l.kind) || !likeLiteral(pattern.kind) {
		return NullLiteral, &LiteralError{
			Kind:          LikeOnNonString,
			Op:            likeOp(caseSensitive),
			Operand:       l,
			Right:         pattern,
			CaseSensitive: caseSensitive,
		}
	}
	if l.IsNull() || pattern.IsNull() {
		return NullLiteral, nil
	}
	return Boolean(MatchLike(l.v.(string), pattern.v.(string), caseSensitive)), nil
}

func likeOperand(t DataType) bool { return t == TypeText || t == TypeNull }

func likeLiteral(k LiteralKind) bool { return k == LiteralText || k == LiteralNull }

// MatchLike reports whether text matches pattern. Case-insensitive matching
// lowers both sides with Unicode case rules first.
func MatchLike(text, pattern string, caseSensitive bool) bool {
	if !caseSensitive {
		// a cases.Caser keeps state and must not be shared
		lower := cases.Lower(language.Und)
		text = lower.String(text)
		pattern = lower.String(pattern)
	}
	return likeMatch([]rune(text), []rune(pattern))
}

// likeMatch is a backtracking matcher over runes. Only the most recent '%'
// is retried, which keeps matching linear in practice.
func likeMatch(text, pattern []rune) bool {
	ti, pi := 0, 0
	starP, starT := -1, 0
	for ti < len(text) {
		switch {
		case pi < len(pattern) && pattern[pi] == '%':
			starP, starT = pi, ti
			pi++
		case pi < len(pattern) && (pattern[pi] == '_' || pattern[pi] == text[ti]):
			ti++
			pi++
		case starP >= 0:
			// let the last '%' swallow one more character
			starT++
			ti, pi = starT, starP+1
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '%' {
		pi++
	}
	return pi == len(pattern)
}
