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

package aggregation

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

// Count counts records. If expr is non-nil, only records whose schema
// contains expr's column (per ColumnSet.IndexOf, checking a column's
// alias, its structural name and, for a bound Column, its bare name)
// are counted, regardless of
// whether the evaluated value is nil; if expr is nil every record
// counts (the count(*) shape). This is a schema-membership test, not
// a null check, grounded in original_source's CountAggregation
// delegating to ColumnSet.__contains__.
type Count struct {
	expr     sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// NewCount builds a Count aggregation. Pass nil to count every
// record regardless of any column's value.
func NewCount(expr sql.Expression) *Count { return &Count{expr: expr} }

func (c *Count) structural() string {
	if c.expr == nil {
		return "count(*)"
	}
	return fmt.Sprintf("count(%s)", c.expr.Name())
}

func (c *Count) Name() string         { return resolveName(c.alias, c.structural()) }
func (c *Count) OriginalName() string { return c.structural() }

func (c *Count) Evaluate(rec sql.Record) (sql.Value, error) {
	if c.compiled != nil {
		return c.compiled(rec)
	}
	return evaluateAsColumn(c.Name(), rec)
}

func (c *Count) Compile() sql.CompiledFunc {
	if c.compiled == nil {
		name := c.Name()
		c.compiled = func(rec sql.Record) (sql.Value, error) { return evaluateAsColumn(name, rec) }
	}
	return c.compiled
}

func (c *Count) Alias(alias string) sql.Expression {
	cp := *c
	cp.alias = &alias
	return &cp
}

// Children exposes expr, if any, so callers can walk the expression a
// Count aggregation reads from.
func (c *Count) Children() []sql.Expression {
	if c.expr == nil {
		return nil
	}
	return []sql.Expression{c.expr}
}

func (c *Count) Aggregate(records []sql.Record) (sql.Value, error) {
	if c.expr == nil {
		return int64(len(records)), nil
	}
	name := c.expr.Name()
	var n int64
	for _, rec := range records {
		if rec.Expressions().IndexOf(name) >= 0 {
			n++
		}
	}
	return n, nil
}
