// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

// CompiledFunc is the memoized, evaluation-ready form of an
// Expression. Compile() builds one once and Evaluate() prefers it
// over re-interpreting the tree on every call.
type CompiledFunc func(Record) (Value, error)

// Named is the minimal contract a Column needs from the table it is
// bound to. It exists to let sql/expression.Column reference its
// owning table without sql/expression importing the table package,
// which would create an import cycle (table imports sql/expression).
type Named interface {
	Name() string
}

// Expression is a node in the expression tree described in spec §4.A:
// constants, raw passthrough values, column references, unary and
// binary arithmetic, boolean logic and comparison, and aggregations
// all implement it.
//
// Name returns the expression's display name: its alias if Alias has
// been called, otherwise its structural name. OriginalName always
// returns the structural name regardless of alias, which is how
// Record.Get resolves an aliased lookup that misses by falling back
// to the pre-alias name.
type Expression interface {
	// Name is the alias if one was set via Alias, otherwise the
	// structural name.
	Name() string
	// OriginalName is the structural name, ignoring any alias.
	OriginalName() string
	// Evaluate computes the expression's value against rec, using
	// the memoized compiled closure if Compile has already been
	// called.
	Evaluate(rec Record) (Value, error)
	// Compile memoizes and returns a CompiledFunc equivalent to
	// Evaluate. Calling Compile more than once returns the same
	// closure; it never recompiles.
	Compile() CompiledFunc
	// Alias returns a shallow copy of the expression with its
	// display name overridden. The original expression, and any
	// other alias taken from it, are unaffected.
	Alias(alias string) Expression
}
