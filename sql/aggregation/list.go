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

// List collects expr's evaluated value across a set of records into
// a slice, preserving input order. An empty input produces an empty,
// non-nil slice.
type List struct {
	expr     sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// NewList builds a List aggregation over expr.
func NewList(expr sql.Expression) *List { return &List{expr: expr} }

func (l *List) structural() string { return fmt.Sprintf("list(%s)", l.expr.Name()) }
func (l *List) Name() string       { return resolveName(l.alias, l.structural()) }
func (l *List) OriginalName() string {
	return l.structural()
}

func (l *List) Evaluate(rec sql.Record) (sql.Value, error) {
	if l.compiled != nil {
		return l.compiled(rec)
	}
	return evaluateAsColumn(l.Name(), rec)
}

func (l *List) Compile() sql.CompiledFunc {
	if l.compiled == nil {
		name := l.Name()
		l.compiled = func(rec sql.Record) (sql.Value, error) { return evaluateAsColumn(name, rec) }
	}
	return l.compiled
}

func (l *List) Alias(alias string) sql.Expression {
	cp := *l
	cp.alias = &alias
	return &cp
}

// Children exposes expr so callers can walk the expression a List
// aggregation reads from.
func (l *List) Children() []sql.Expression { return []sql.Expression{l.expr} }

func (l *List) Aggregate(records []sql.Record) (sql.Value, error) {
	out := make([]sql.Value, 0, len(records))
	for _, rec := range records {
		v, err := l.expr.Evaluate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
