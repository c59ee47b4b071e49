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

import "io"

// RecordIter pulls Records one at a time. Next returns io.EOF once
// exhausted. Close releases any resources (e.g. open page files) the
// iterator holds; it is always safe to call, including after Next has
// returned io.EOF.
type RecordIter interface {
	Next() (Record, error)
	Close() error
}

// RecordSet is anything that can be iterated into a stream of
// Records that all share the same schema: a Table, or any relational
// operator in sql/plan composed over one.
type RecordSet interface {
	// Expressions is the record set's schema, in column order.
	Expressions() ColumnSet
	// Iterate opens a fresh RecordIter over the set. Each call starts
	// from the beginning; a RecordSet does not remember iterator
	// position between calls.
	Iterate() (RecordIter, error)
}

// Materialize drains rs into a slice. It is the Go equivalent of
// Python's list(record_set) and is used wherever an operator needs
// random access or multiple passes over its input (GroupBy, the
// non-key-based nested-loop join, Aggregated).
func Materialize(rs RecordSet) ([]Record, error) {
	it, err := rs.Iterate()
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []Record
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// SliceRecordSet is a RecordSet backed by an in-memory slice, used to
// wrap already-materialized rows (e.g. a GroupBy's computed groups,
// or a unit test fixture) behind the RecordSet interface.
type SliceRecordSet struct {
	schema  ColumnSet
	records []Record
}

// NewSliceRecordSet wraps records, which must already share schema,
// as a RecordSet.
func NewSliceRecordSet(schema ColumnSet, records []Record) *SliceRecordSet {
	return &SliceRecordSet{schema: schema, records: records}
}

func (s *SliceRecordSet) Expressions() ColumnSet { return s.schema }

func (s *SliceRecordSet) Iterate() (RecordIter, error) {
	return &sliceIter{records: s.records}, nil
}

type sliceIter struct {
	records []Record
	pos     int
}

func (it *sliceIter) Next() (Record, error) {
	if it.pos >= len(it.records) {
		return Record{}, io.EOF
	}
	rec := it.records[it.pos]
	it.pos++
	return rec, nil
}

func (it *sliceIter) Close() error { return nil }
