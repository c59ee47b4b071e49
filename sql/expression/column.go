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

package expression

import "github.com/PrytkovD/oip/sql"

// Column references one field of a Record by name. It is the only
// expression kind a table's schema is built from; every other
// expression is either a literal or a composition of sub-expressions
// that eventually bottoms out at one or more Columns.
type Column struct {
	ownName  string
	typ      sql.Type
	table    sql.Named
	alias    *string
	compiled sql.CompiledFunc
}

// NewColumn declares an unbound column named name of type typ. Table
// binds it to a physical table via BindTable once the table exists.
func NewColumn(name string, typ sql.Type) *Column {
	return &Column{ownName: name, typ: typ}
}

// BindTable returns a copy of c bound to t, used by table.Table when
// it constructs its schema from caller-supplied unbound columns.
func (c *Column) BindTable(t sql.Named) *Column {
	cp := *c
	cp.table = t
	return &cp
}

// Type is the column's declared type.
func (c *Column) Type() sql.Type { return c.typ }

// Table is the table this column is bound to, or nil if unbound.
func (c *Column) Table() sql.Named { return c.table }

// OwnName is the column's bare, unqualified declared name, ignoring
// both any bound table and any alias. It is what a caller supplying
// data keyed by plain column names (e.g. table.Table.Insert) must
// use, since OriginalName is table-qualified once the column is
// bound.
func (c *Column) OwnName() string { return c.ownName }

// Name is the alias if one was set via Alias, otherwise OriginalName.
func (c *Column) Name() string { return resolveName(c.alias, c.OriginalName()) }

// OriginalName is the column's structural name ignoring any alias:
// "table.own_name" once bound via BindTable, or just own_name while
// unbound. Table-qualifying a bound column's structural name is what
// lets a join's merged schema distinguish two same-named columns
// coming from different tables.
func (c *Column) OriginalName() string {
	if c.table != nil {
		return c.table.Name() + "." + c.ownName
	}
	return c.ownName
}

// IsColumnRef marks Column as a leaf expression that names a schema
// column directly, so sql.ReferencedNames can tell it apart from a
// Constant or Raw literal when walking an expression tree.
func (c *Column) IsColumnRef() bool { return true }

func (c *Column) Evaluate(rec sql.Record) (sql.Value, error) {
	if c.compiled != nil {
		return c.compiled(rec)
	}
	return rec.Get(c.OriginalName())
}

func (c *Column) Compile() sql.CompiledFunc {
	if c.compiled == nil {
		name := c.OriginalName()
		c.compiled = func(rec sql.Record) (sql.Value, error) { return rec.Get(name) }
	}
	return c.compiled
}

func (c *Column) Alias(alias string) sql.Expression {
	cp := *c
	cp.alias = &alias
	return &cp
}
