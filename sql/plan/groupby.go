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
	"github.com/mitchellh/hashstructure"

	"github.com/PrytkovD/oip/sql"
)

// GroupBy is not itself a RecordSet (per spec §4.E, it is an
// intermediate value): it only becomes one once Aggregate is called,
// at which point it eagerly materializes src, buckets rows by their
// evaluated key tuple, and reduces each bucket with the supplied
// aggregations. Groups are emitted in first-seen order.
type GroupBy struct {
	src  sql.RecordSet
	keys []sql.Expression
}

// NewGroupBy builds a GroupBy of src keyed by keys.
func NewGroupBy(src sql.RecordSet, keys []sql.Expression) *GroupBy {
	return &GroupBy{src: src, keys: keys}
}

type groupBucket struct {
	keyValues []sql.Value
	records   []sql.Record
}

// Aggregate reduces each group with aggs and returns the result as a
// RecordSet whose schema is the group keys followed by the
// aggregations, matching the original's column order.
func (g *GroupBy) Aggregate(aggs []sql.Aggregation) (sql.RecordSet, error) {
	records, err := sql.Materialize(g.src)
	if err != nil {
		return nil, err
	}

	order := make([]uint64, 0)
	buckets := make(map[uint64]*groupBucket)

	for _, rec := range records {
		keyValues := make([]sql.Value, len(g.keys))
		for i, k := range g.keys {
			v, err := k.Evaluate(rec)
			if err != nil {
				return nil, err
			}
			keyValues[i] = v
		}
		h, err := hashstructure.Hash(keyValues, nil)
		if err != nil {
			return nil, sql.ErrTypeMismatch.New(err, "hashable group key")
		}
		b, ok := buckets[h]
		if !ok {
			b = &groupBucket{keyValues: keyValues}
			buckets[h] = b
			order = append(order, h)
		}
		b.records = append(b.records, rec)
	}

	schema := make(sql.ColumnSet, 0, len(g.keys)+len(aggs))
	schema = append(schema, g.keys...)
	for _, a := range aggs {
		schema = append(schema, a)
	}

	out := make([]sql.Record, 0, len(order))
	for _, h := range order {
		b := buckets[h]
		data := make(map[string]sql.Value, len(g.keys)+len(aggs))
		for i, k := range g.keys {
			data[k.Name()] = b.keyValues[i]
		}
		for _, a := range aggs {
			v, err := a.Aggregate(b.records)
			if err != nil {
				return nil, err
			}
			data[a.Name()] = v
		}
		out = append(out, sql.NewRecord(schema, data))
	}
	return sql.NewSliceRecordSet(schema, out), nil
}
