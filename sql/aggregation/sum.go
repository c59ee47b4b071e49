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

// Package aggregation holds the four aggregation kinds spec §4.F
// names: Sum, Count, List and Dict. Each implements sql.Aggregation,
// so it can also stand in as a plain sql.Expression once
// sql/plan.Aggregated or sql/plan.GroupBy has written its reduced
// value back into an output record under its Name().
package aggregation

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

func resolveName(alias *string, structural string) string {
	if alias != nil {
		return *alias
	}
	return structural
}

// evaluateAsColumn implements the post-reduction Expression behavior
// shared by every aggregation kind: once a group has been reduced,
// later operators read the result back out of a record by name,
// exactly like a Column would.
func evaluateAsColumn(name string, rec sql.Record) (sql.Value, error) {
	return rec.Get(name)
}

// Sum adds together the numeric value of expr across a set of
// records. An empty input sums to int64(0).
type Sum struct {
	expr     sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// NewSum builds a Sum aggregation over expr.
func NewSum(expr sql.Expression) *Sum { return &Sum{expr: expr} }

func (s *Sum) structural() string { return fmt.Sprintf("sum(%s)", s.expr.Name()) }
func (s *Sum) Name() string       { return resolveName(s.alias, s.structural()) }
func (s *Sum) OriginalName() string {
	return s.structural()
}

func (s *Sum) Evaluate(rec sql.Record) (sql.Value, error) {
	if s.compiled != nil {
		return s.compiled(rec)
	}
	return evaluateAsColumn(s.Name(), rec)
}

func (s *Sum) Compile() sql.CompiledFunc {
	if s.compiled == nil {
		name := s.Name()
		s.compiled = func(rec sql.Record) (sql.Value, error) { return evaluateAsColumn(name, rec) }
	}
	return s.compiled
}

func (s *Sum) Alias(alias string) sql.Expression {
	cp := *s
	cp.alias = &alias
	return &cp
}

// Children exposes expr so callers can walk the expression a Sum
// aggregation reads from.
func (s *Sum) Children() []sql.Expression { return []sql.Expression{s.expr} }

func (s *Sum) Aggregate(records []sql.Record) (sql.Value, error) {
	var sumInt int64
	var sumFloat float64
	sawFloat := false
	for _, rec := range records {
		v, err := s.expr.Evaluate(rec)
		if err != nil {
			return nil, err
		}
		switch n := v.(type) {
		case int64:
			sumInt += n
		case float64:
			sawFloat = true
			sumFloat += n
		default:
			return nil, sql.ErrTypeMismatch.New(v, "numeric")
		}
	}
	if sawFloat {
		return sumFloat + float64(sumInt), nil
	}
	return sumInt, nil
}
