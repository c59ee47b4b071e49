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

// Package builder provides the fluent Select query builder of spec
// §4.G. It is named "builder" rather than "select" because select is
// a Go keyword.
package builder

import (
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/plan"
)

type joinKind int

const (
	joinHash joinKind = iota
	joinCondition
	joinCross
)

type joinSpec struct {
	kind              joinKind
	right             sql.RecordSet
	leftKey, rightKey sql.Expression
	cond              sql.Expression
	joinType          plan.JoinType
}

// Select accumulates the clauses of a query. Clauses may be added in
// any order; Execute always composes them in the fixed order spec
// §4.G mandates: every join (left to right, in the order added),
// then where, then group-by-and-aggregate (or a bare aggregate),
// then the column projection, then order-by.
type Select struct {
	source   sql.RecordSet
	joins    []joinSpec
	where    sql.Expression
	groupBy  []sql.Expression
	aggs     []sql.Aggregation
	columns  []sql.Expression
	ordering []plan.Ordering
}

// SelectFrom starts a query over source.
func SelectFrom(source sql.RecordSet) *Select {
	return &Select{source: source}
}

// Join adds an equi-join (a hash join) against right, matching rows
// where leftKey equals rightKey.
func (s *Select) Join(right sql.RecordSet, leftKey, rightKey sql.Expression, kind plan.JoinType) *Select {
	s.joins = append(s.joins, joinSpec{kind: joinHash, right: right, leftKey: leftKey, rightKey: rightKey, joinType: kind})
	return s
}

// JoinOn adds a nested-loop join against right, matching rows for
// which cond evaluates true over their merged record.
func (s *Select) JoinOn(right sql.RecordSet, cond sql.Expression, kind plan.JoinType) *Select {
	s.joins = append(s.joins, joinSpec{kind: joinCondition, right: right, cond: cond, joinType: kind})
	return s
}

// CrossJoin adds the Cartesian product against right.
func (s *Select) CrossJoin(right sql.RecordSet) *Select {
	s.joins = append(s.joins, joinSpec{kind: joinCross, right: right})
	return s
}

// Where sets the row filter predicate.
func (s *Select) Where(predicate sql.Expression) *Select {
	s.where = predicate
	return s
}

// GroupBy sets the grouping keys. Calling GroupBy without also
// calling Aggregate produces a query with no aggregation output
// (Execute then errors, since grouping without reduction is
// meaningless as a RecordSet).
func (s *Select) GroupBy(keys ...sql.Expression) *Select {
	s.groupBy = keys
	return s
}

// Aggregate sets the aggregations to reduce by. Combined with
// GroupBy, each group is reduced independently; alone, the whole
// input is reduced to one row.
func (s *Select) Aggregate(aggs ...sql.Aggregation) *Select {
	s.aggs = aggs
	return s
}

// Columns sets the output projection. Omitted entirely, Execute
// leaves the upstream schema as-is.
func (s *Select) Columns(exprs ...sql.Expression) *Select {
	s.columns = exprs
	return s
}

// OrderBy sets the sort keys, applied last.
func (s *Select) OrderBy(orderings ...plan.Ordering) *Select {
	s.ordering = orderings
	return s
}

// Execute composes every configured clause, in the fixed order
// documented on Select, and returns the resulting RecordSet.
func (s *Select) Execute() (sql.RecordSet, error) {
	rs := s.source

	for _, j := range s.joins {
		var err error
		switch j.kind {
		case joinHash:
			rs, err = plan.NewHashJoin(rs, j.right, j.leftKey, j.rightKey, j.joinType)
		case joinCondition:
			rs, err = plan.NewConditionJoin(rs, j.right, j.cond, j.joinType)
		case joinCross:
			rs, err = plan.NewCrossJoin(rs, j.right)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.where != nil {
		filtered, err := plan.NewFilter(rs, s.where)
		if err != nil {
			return nil, err
		}
		rs = filtered
	}

	switch {
	case len(s.groupBy) > 0:
		if len(s.aggs) == 0 {
			return nil, sql.ErrSchemaMismatch.New("group by without aggregation")
		}
		gb := plan.NewGroupBy(rs, s.groupBy)
		grouped, err := gb.Aggregate(s.aggs)
		if err != nil {
			return nil, err
		}
		rs = grouped
	case len(s.aggs) > 0:
		rs = plan.NewAggregated(rs, s.aggs)
	}

	if len(s.columns) > 0 {
		rs = plan.NewProjection(rs, s.columns)
	}

	if len(s.ordering) > 0 {
		ordered, err := plan.NewOrderBy(rs, s.ordering)
		if err != nil {
			return nil, err
		}
		rs = ordered
	}

	return rs, nil
}
