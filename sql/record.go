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

// ColumnSet is an ordered, name-unique sequence of Expressions
// describing the shape of a Record or RecordSet. Order matters for
// CSV column layout and projection; lookups are by name or by an
// expression's own Name().
type ColumnSet []Expression

// Names returns the display name of every expression in the set, in
// order.
func (cs ColumnSet) Names() []string {
	names := make([]string, len(cs))
	for i, e := range cs {
		names[i] = e.Name()
	}
	return names
}

// IndexOf returns the position of the expression whose Name,
// OriginalName, or (for a bound Column) bare OwnName equals name, or
// -1 if none matches. The OwnName fallback lets a freshly built,
// unbound expression (e.g. a builder.Select predicate) reference a
// table-qualified schema column by its plain declared name.
func (cs ColumnSet) IndexOf(name string) int {
	for i, e := range cs {
		if e.Name() == name {
			return i
		}
	}
	for i, e := range cs {
		if e.OriginalName() == name {
			return i
		}
	}
	for i, e := range cs {
		if on, ok := e.(ownNamed); ok && on.OwnName() == name {
			return i
		}
	}
	return -1
}

// Record is one row: a tuple of values keyed by the column names of
// its schema. Records are produced and consumed by RecordSets and are
// the input to Expression.Evaluate.
type Record struct {
	schema ColumnSet
	data   map[string]Value
}

// NewRecord builds a Record over schema with the given data, keyed by
// column display name.
func NewRecord(schema ColumnSet, data map[string]Value) Record {
	return Record{schema: schema, data: data}
}

// Expressions returns the record's schema, satisfying the ColumnSet
// accessor every RecordSet shares.
func (r Record) Expressions() ColumnSet {
	return r.schema
}

// ownNamed is implemented by expressions (Column) that have a bare,
// unqualified name distinct from their table-qualified OriginalName.
// Get falls back to it so a caller supplying plain column names (a
// bulk insert, a REPL command) can still resolve a bound column's
// value without knowing its owning table.
type ownNamed interface {
	OwnName() string
}

// Get resolves a value by column display name, falling back first to
// each schema expression's OriginalName (an aliased lookup that
// misses still finds the pre-alias column, mirroring the original),
// then to its bare OwnName if it has one (a bound Column's
// table-qualified OriginalName otherwise would never match a caller's
// unqualified name).
func (r Record) Get(name string) (Value, error) {
	if v, ok := r.data[name]; ok {
		return v, nil
	}
	for _, e := range r.schema {
		if e.OriginalName() == name {
			if v, ok := r.data[e.Name()]; ok {
				return v, nil
			}
		}
	}
	for _, e := range r.schema {
		if on, ok := e.(ownNamed); ok && on.OwnName() == name {
			if v, ok := r.data[e.Name()]; ok {
				return v, nil
			}
		}
	}
	return nil, ErrUnknownField.New(name)
}

// GetExpr is sugar for Get(e.Name()).
func (r Record) GetExpr(e Expression) (Value, error) {
	return r.Get(e.Name())
}

// With returns a copy of r with name set to value, used by operators
// that build a derived record (Projection, Join) without mutating
// their input.
func (r Record) With(name string, value Value) Record {
	data := make(map[string]Value, len(r.data)+1)
	for k, v := range r.data {
		data[k] = v
	}
	data[name] = value
	return Record{schema: r.schema, data: data}
}

// Merge returns a new record combining r and other's data, with
// other's schema columns appended after r's. Used by joins to splice
// a left and right record into one wide row. Merge itself performs no
// collision detection: it trusts that the caller (sql/plan.Join, via
// mergedSchema) already rejected any schema with a duplicate column
// name, so a same-named key here can only be one genuinely identical
// field carried on both sides.
func (r Record) Merge(other Record) Record {
	schema := make(ColumnSet, 0, len(r.schema)+len(other.schema))
	schema = append(schema, r.schema...)
	schema = append(schema, other.schema...)
	data := make(map[string]Value, len(r.data)+len(other.data))
	for k, v := range r.data {
		data[k] = v
	}
	for k, v := range other.data {
		data[k] = v
	}
	return Record{schema: schema, data: data}
}
