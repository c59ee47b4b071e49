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
	"strings"

	"github.com/PrytkovD/oip/sql"
)

// Filter passes through rows of src for which predicate evaluates to
// true, preserving src's schema and row order.
type Filter struct {
	src       sql.RecordSet
	predicate sql.Expression
}

// validateAgainstSchema returns sql.ErrSchemaMismatch if e references
// any column name not present in schema, per spec §4.B/§7: where() and
// order_by() must fail at build time rather than at evaluation time.
func validateAgainstSchema(schema sql.ColumnSet, e sql.Expression) error {
	var missing []string
	for _, name := range sql.ReferencedNames(e) {
		if schema.IndexOf(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return sql.ErrSchemaMismatch.New(strings.Join(missing, ", "))
	}
	return nil
}

// NewFilter builds a Filter of src by predicate, or an
// sql.ErrSchemaMismatch error if predicate references a column not
// present in src's schema.
func NewFilter(src sql.RecordSet, predicate sql.Expression) (*Filter, error) {
	if err := validateAgainstSchema(src.Expressions(), predicate); err != nil {
		return nil, err
	}
	return &Filter{src: src, predicate: predicate}, nil
}

func (f *Filter) Expressions() sql.ColumnSet { return f.src.Expressions() }

func (f *Filter) Iterate() (sql.RecordIter, error) {
	it, err := f.src.Iterate()
	if err != nil {
		return nil, err
	}
	return &filterIter{predicate: f.predicate, src: it}, nil
}

type filterIter struct {
	predicate sql.Expression
	src       sql.RecordIter
}

func (it *filterIter) Next() (sql.Record, error) {
	for {
		rec, err := it.src.Next()
		if err != nil {
			return sql.Record{}, err
		}
		v, err := it.predicate.Evaluate(rec)
		if err != nil {
			return sql.Record{}, err
		}
		ok, err := asBool(v)
		if err != nil {
			return sql.Record{}, err
		}
		if ok {
			return rec, nil
		}
	}
}

func (it *filterIter) Close() error { return it.src.Close() }

func asBool(v sql.Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, sql.ErrTypeMismatch.New(v, "bool")
	}
	return b, nil
}
