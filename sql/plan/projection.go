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

// Package plan holds the pull-based relational operators of spec
// §4.E: Projection, Filter, OrderBy, GroupBy, Aggregated and Join.
// Each is a sql.RecordSet composed over one (or two, for Join) other
// sql.RecordSet, evaluating its own Expressions lazily as rows are
// pulled through Iterate.
package plan

import (
	"github.com/PrytkovD/oip/sql"
)

// Projection evaluates a fixed list of expressions against every row
// of src, producing one output column per expression under that
// expression's Name().
type Projection struct {
	src   sql.RecordSet
	exprs sql.ColumnSet
}

// NewProjection builds a Projection of exprs over src.
func NewProjection(src sql.RecordSet, exprs []sql.Expression) *Projection {
	return &Projection{src: src, exprs: sql.ColumnSet(exprs)}
}

func (p *Projection) Expressions() sql.ColumnSet { return p.exprs }

func (p *Projection) Iterate() (sql.RecordIter, error) {
	it, err := p.src.Iterate()
	if err != nil {
		return nil, err
	}
	return &projectionIter{exprs: p.exprs, src: it}, nil
}

type projectionIter struct {
	exprs sql.ColumnSet
	src   sql.RecordIter
}

func (it *projectionIter) Next() (sql.Record, error) {
	rec, err := it.src.Next()
	if err != nil {
		return sql.Record{}, err
	}
	data := make(map[string]sql.Value, len(it.exprs))
	for _, e := range it.exprs {
		v, err := e.Evaluate(rec)
		if err != nil {
			return sql.Record{}, err
		}
		data[e.Name()] = v
	}
	return sql.NewRecord(it.exprs, data), nil
}

func (it *projectionIter) Close() error { return it.src.Close() }
