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

// ExpressionChildren is implemented by expressions built from one or
// more sub-expressions (arithmetic, comparisons, boolean logic,
// functions, aggregations). It lets a caller walk an expression tree
// without a type switch over every concrete kind in sql/expression
// and sql/aggregation.
type ExpressionChildren interface {
	Children() []Expression
}

// columnRef is implemented by leaf expressions that read a named
// column directly out of a Record, as opposed to producing a value
// from a literal (Constant, Raw).
type columnRef interface {
	IsColumnRef() bool
}

// ReferencedNames walks e's expression tree and returns the Name of
// every Column it reads from, in encounter order with duplicates
// removed. It is used by plan operators (Filter, OrderBy) to validate
// a predicate or sort key against an upstream schema before running
// it, per spec §4.B/§7's SchemaMismatch contract.
func ReferencedNames(e Expression) []string {
	seen := map[string]bool{}
	var names []string
	var walk func(Expression)
	walk = func(e Expression) {
		if e == nil {
			return
		}
		if ce, ok := e.(ExpressionChildren); ok {
			for _, c := range ce.Children() {
				walk(c)
			}
			return
		}
		if cr, ok := e.(columnRef); ok && cr.IsColumnRef() {
			name := e.Name()
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	walk(e)
	return names
}
