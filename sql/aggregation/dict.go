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
	"strings"

	"github.com/PrytkovD/oip/sql"
)

// Dict reduces a group of records to a map keyed by each of its
// expressions' Name(), holding that expression's last-evaluated value
// across the group.
//
// Deliberately preserved quirk (spec §9, carried unchanged from
// original_source's DictAggregation): the reduction is unconditional,
// not a key-collision fallback. For every expression, every record in
// the group is evaluated in order and silently overwrites the
// previous value stored under that expression's name; the map ends up
// holding whichever record happened to be last, not a meaningful
// aggregate. There is no warning and no error.
type Dict struct {
	exprs    []sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// NewDict builds a Dict aggregation over exprs. Each expression
// contributes its own key (its Name()) to the output map.
func NewDict(exprs ...sql.Expression) *Dict {
	return &Dict{exprs: exprs}
}

func (d *Dict) structural() string {
	names := make([]string, len(d.exprs))
	for i, e := range d.exprs {
		names[i] = e.Name()
	}
	return fmt.Sprintf("dict(%s)", strings.Join(names, ", "))
}

func (d *Dict) Name() string         { return resolveName(d.alias, d.structural()) }
func (d *Dict) OriginalName() string { return d.structural() }

func (d *Dict) Evaluate(rec sql.Record) (sql.Value, error) {
	if d.compiled != nil {
		return d.compiled(rec)
	}
	return evaluateAsColumn(d.Name(), rec)
}

func (d *Dict) Compile() sql.CompiledFunc {
	if d.compiled == nil {
		name := d.Name()
		d.compiled = func(rec sql.Record) (sql.Value, error) { return evaluateAsColumn(name, rec) }
	}
	return d.compiled
}

func (d *Dict) Alias(alias string) sql.Expression {
	cp := *d
	cp.alias = &alias
	return &cp
}

// Children exposes exprs so callers can walk the expressions a Dict
// aggregation reads from.
func (d *Dict) Children() []sql.Expression { return d.exprs }

// Aggregate builds the map[string]sql.Value: for each expression, for
// each record in the group (outer expression, inner record, matching
// the original's comprehension order), evaluate and overwrite the
// entry under that expression's name. The last record in the group
// wins per expression, unconditionally.
func (d *Dict) Aggregate(records []sql.Record) (sql.Value, error) {
	out := make(map[string]sql.Value, len(d.exprs))
	for _, e := range d.exprs {
		for _, rec := range records {
			v, err := e.Evaluate(rec)
			if err != nil {
				return nil, err
			}
			out[e.Name()] = v
		}
	}
	return out, nil
}
