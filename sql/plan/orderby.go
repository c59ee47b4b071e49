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
	"sort"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
)

// Ordering is one sort key: Expr's evaluated value, sorted descending
// when Desc is true.
//
// Desc gives a correct descending sort on any comparable value.
// Wrapping Expr in expression.Neg instead reverses the order only for
// numeric values; the builder has no shorthand that applies such a
// negation — see DESIGN.md open question 2.
type Ordering struct {
	Expr sql.Expression
	Desc bool
}

// OrderBy sorts src's materialized rows by orderings, applied in
// order as tie-breakers, and is itself a RecordSet over the sorted
// result.
type OrderBy struct {
	src       sql.RecordSet
	orderings []Ordering
}

// NewOrderBy builds an OrderBy of src by orderings, or an
// sql.ErrSchemaMismatch error if any ordering's Expr references a
// column not present in src's schema.
func NewOrderBy(src sql.RecordSet, orderings []Ordering) (*OrderBy, error) {
	schema := src.Expressions()
	for _, ord := range orderings {
		if err := validateAgainstSchema(schema, ord.Expr); err != nil {
			return nil, err
		}
	}
	return &OrderBy{src: src, orderings: orderings}, nil
}

func (o *OrderBy) Expressions() sql.ColumnSet { return o.src.Expressions() }

func (o *OrderBy) Iterate() (sql.RecordIter, error) {
	records, err := sql.Materialize(o.src)
	if err != nil {
		return nil, err
	}

	var sortErr error
	sort.SliceStable(records, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		for _, ord := range o.orderings {
			vi, err := ord.Expr.Evaluate(records[i])
			if err != nil {
				sortErr = err
				return false
			}
			vj, err := ord.Expr.Evaluate(records[j])
			if err != nil {
				sortErr = err
				return false
			}
			cmp, err := expression.Compare(vi, vj)
			if err != nil {
				sortErr = err
				return false
			}
			if cmp == 0 {
				continue
			}
			if ord.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return sql.NewSliceRecordSet(o.src.Expressions(), records).Iterate()
}
