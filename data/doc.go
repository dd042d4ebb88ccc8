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

/*
Package data implements the value lattice of sqleval: runtime values, unresolved
literals, the DataType tags that name them, and every operation defined over them.

# Values, Literals and DataTypes

A Value is a fully resolved, immutable datum. Its DataType decides its width and
precision, and two values of different DataTypes are never equal:

	data.I64(5).Equal(data.U8(5)) // false

A Literal is a constant that has not been bound to a type yet. Numbers keep their
exact decimal text (backed by github.com/cockroachdb/apd/v3) until they are cast to
a DataType or resolved by default:

	lit, _ := data.NumberFromString("10")
	v, _ := lit.ToValue()          // I64(10)
	u, _ := lit.Cast(data.TypeUint8) // U8(10)

# Operations

• Casting - Value.Cast and Literal.Cast validate every source/target pair and never wrap
• Unary operators - UnaryMinus, UnaryPlus, UnaryBitNot, UnaryFactorial, Not
• Binary operators - arithmetic with overflow checks, comparison, AND/OR, concatenation
• Pattern matching - Like with '_' and '%' wildcards, ILIKE via case folding

Each operation exists on Value (execution path) and on Literal (fold path). Both
share the same domain predicates, so they accept and reject the same inputs; they
differ only in the error payload: *ValueError carries Values, *LiteralError carries
Literals. Both unwrap to an ErrorKind:

	_, err := data.I64(1000).UnaryFactorial()
	errors.Is(err, data.FactorialOverflow) // true
*/
package data
