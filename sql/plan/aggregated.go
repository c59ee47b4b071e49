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
	"io"

	"github.com/PrytkovD/oip/sql"
)

// Aggregated reduces the whole of src, with no grouping, to exactly
// one output row: one column per aggregation.
//
// Deviation from original_source (DESIGN.md open question 7):
// src is materialized exactly once and the resulting slice is reused
// across every aggregation, rather than re-iterating src fresh per
// aggregation.
type Aggregated struct {
	src  sql.RecordSet
	aggs sql.ColumnSet

	materialized []sql.Record
	done         bool
}

// NewAggregated builds an Aggregated reducing src by aggs.
func NewAggregated(src sql.RecordSet, aggs []sql.Aggregation) *Aggregated {
	cols := make(sql.ColumnSet, len(aggs))
	for i, a := range aggs {
		cols[i] = a
	}
	return &Aggregated{src: src, aggs: cols}
}

func (a *Aggregated) Expressions() sql.ColumnSet { return a.aggs }

func (a *Aggregated) Iterate() (sql.RecordIter, error) {
	if !a.done {
		records, err := sql.Materialize(a.src)
		if err != nil {
			return nil, err
		}
		a.materialized = records
		a.done = true
	}

	data := make(map[string]sql.Value, len(a.aggs))
	for _, e := range a.aggs {
		agg := e.(sql.Aggregation)
		v, err := agg.Aggregate(a.materialized)
		if err != nil {
			return nil, err
		}
		data[agg.Name()] = v
	}
	rec := sql.NewRecord(a.aggs, data)
	return &singleRecordIter{rec: rec}, nil
}

type singleRecordIter struct {
	rec  sql.Record
	done bool
}

func (it *singleRecordIter) Next() (sql.Record, error) {
	if it.done {
		return sql.Record{}, io.EOF
	}
	it.done = true
	return it.rec, nil
}

func (it *singleRecordIter) Close() error { return nil }
