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

package plan

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

// JoinType identifies which of the five join flavors spec §4.E names
// a Join performs.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// Join combines rows of left and right, either by equality of two
// key expressions (a hash join, built with NewHashJoin) or by an
// arbitrary predicate over the merged row (a nested-loop join, built
// with NewConditionJoin or NewCrossJoin).
//
// Unmatched-row tracking for Left/Right/Full is done by index into
// the materialized left/right slices, the Go equivalent of the
// original's object-identity tracking: two rows with identical
// values are still tracked as distinct occurrences because they
// occupy distinct slice positions, not because of any property of
// their contents.
type Join struct {
	left, right       sql.RecordSet
	kind              JoinType
	leftKey, rightKey sql.Expression // hash join only
	cond              sql.Expression // condition/cross join only; nil means "always match"
	hash              bool
	schema            sql.ColumnSet
}

// NewHashJoin builds a Join of left and right of kind by equality of
// leftKey and rightKey. kind must be Inner, Left, Right or Full.
func NewHashJoin(left, right sql.RecordSet, leftKey, rightKey sql.Expression, kind JoinType) (*Join, error) {
	schema, err := mergedSchema(left, right)
	if err != nil {
		return nil, err
	}
	return &Join{
		left: left, right: right, kind: kind,
		leftKey: leftKey, rightKey: rightKey, hash: true,
		schema: schema,
	}, nil
}

// NewConditionJoin builds a nested-loop Join of left and right of
// kind, matching rows for which cond evaluates true over their
// merged record. kind must be Inner, Left, Right or Full.
func NewConditionJoin(left, right sql.RecordSet, cond sql.Expression, kind JoinType) (*Join, error) {
	schema, err := mergedSchema(left, right)
	if err != nil {
		return nil, err
	}
	return &Join{left: left, right: right, kind: kind, cond: cond, schema: schema}, nil
}

// NewCrossJoin builds the Cartesian product of left and right.
func NewCrossJoin(left, right sql.RecordSet) (*Join, error) {
	schema, err := mergedSchema(left, right)
	if err != nil {
		return nil, err
	}
	return &Join{left: left, right: right, kind: CrossJoin, schema: schema}, nil
}

// mergedSchema appends right's schema after left's, per spec §4.E: a
// join's output row contains every left-side field followed by every
// right-side field, each resolved from its originating side. Name
// collisions are normally resolved by Column.Name's table
// qualification once both sides are bound to distinct tables; a
// collision that survives that (two unbound expressions sharing a
// bare name, or a self-join of the same table) is an unresolvable
// sql.ErrSchemaMismatch, since the merged Record could no longer tell
// the two fields apart by name.
func mergedSchema(left, right sql.RecordSet) (sql.ColumnSet, error) {
	leftExprs, rightExprs := left.Expressions(), right.Expressions()
	schema := make(sql.ColumnSet, 0, len(leftExprs)+len(rightExprs))
	seen := make(map[string]bool, len(leftExprs))
	for _, e := range leftExprs {
		seen[e.Name()] = true
		schema = append(schema, e)
	}
	for _, e := range rightExprs {
		if seen[e.Name()] {
			return nil, sql.ErrSchemaMismatch.New(fmt.Sprintf("duplicate column %q in joined schema", e.Name()))
		}
		schema = append(schema, e)
	}
	return schema, nil
}

func nullRecord(schema sql.ColumnSet) sql.Record {
	data := make(map[string]sql.Value, len(schema))
	for _, e := range schema {
		data[e.Name()] = nil
	}
	return sql.NewRecord(schema, data)
}

func (j *Join) Expressions() sql.ColumnSet { return j.schema }

func (j *Join) Iterate() (sql.RecordIter, error) {
	leftRows, err := sql.Materialize(j.left)
	if err != nil {
		return nil, err
	}
	rightRows, err := sql.Materialize(j.right)
	if err != nil {
		return nil, err
	}

	var out []sql.Record
	leftMatched := make([]bool, len(leftRows))
	rightMatched := make([]bool, len(rightRows))

	if j.kind == CrossJoin {
		for i := range leftRows {
			for k := range rightRows {
				out = append(out, leftRows[i].Merge(rightRows[k]))
			}
		}
		return sql.NewSliceRecordSet(j.schema, out).Iterate()
	}

	if j.hash {
		index := make(map[sql.Value][]int, len(rightRows))
		for k, rrow := range rightRows {
			v, err := j.rightKey.Evaluate(rrow)
			if err != nil {
				return nil, err
			}
			index[v] = append(index[v], k)
		}
		for i, lrow := range leftRows {
			lv, err := j.leftKey.Evaluate(lrow)
			if err != nil {
				return nil, err
			}
			matches := index[lv]
			for _, k := range matches {
				out = append(out, lrow.Merge(rightRows[k]))
				leftMatched[i] = true
				rightMatched[k] = true
			}
		}
	} else {
		for i, lrow := range leftRows {
			for k, rrow := range rightRows {
				merged := lrow.Merge(rrow)
				ok := true
				if j.cond != nil {
					v, err := j.cond.Evaluate(merged)
					if err != nil {
						return nil, err
					}
					ok, err = asBool(v)
					if err != nil {
						return nil, err
					}
				}
				if ok {
					out = append(out, merged)
					leftMatched[i] = true
					rightMatched[k] = true
				}
			}
		}
	}

	if j.kind == LeftJoin || j.kind == FullJoin {
		nullRight := nullRecord(j.right.Expressions())
		for i, lrow := range leftRows {
			if !leftMatched[i] {
				out = append(out, lrow.Merge(nullRight))
			}
		}
	}
	if j.kind == RightJoin || j.kind == FullJoin {
		nullLeft := nullRecord(j.left.Expressions())
		for k, rrow := range rightRows {
			if !rightMatched[k] {
				out = append(out, nullLeft.Merge(rrow))
			}
		}
	}

	return sql.NewSliceRecordSet(j.schema, out).Iterate()
}
