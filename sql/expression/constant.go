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

// Package expression holds the concrete Expression implementations:
// literals, column references, unary/binary arithmetic, boolean
// logic and comparison, function calls, and a handful of predicate
// and conditional helpers. All of them implement sql.Expression.
package expression

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

func resolveName(alias *string, structural string) string {
	if alias != nil {
		return *alias
	}
	return structural
}

// Constant is an expression whose value does not depend on the
// record it is evaluated against: a literal baked into a query.
type Constant struct {
	value    sql.Value
	alias    *string
	compiled sql.CompiledFunc
}

// NewConstant wraps value as a Constant expression.
func NewConstant(value sql.Value) *Constant {
	return &Constant{value: value}
}

func (c *Constant) structural() string { return fmt.Sprint(c.value) }

func (c *Constant) Name() string         { return resolveName(c.alias, c.structural()) }
func (c *Constant) OriginalName() string { return c.structural() }

func (c *Constant) Evaluate(rec sql.Record) (sql.Value, error) {
	if c.compiled != nil {
		return c.compiled(rec)
	}
	return c.value, nil
}

func (c *Constant) Compile() sql.CompiledFunc {
	if c.compiled == nil {
		v := c.value
		c.compiled = func(sql.Record) (sql.Value, error) { return v, nil }
	}
	return c.compiled
}

func (c *Constant) Alias(alias string) sql.Expression {
	cp := *c
	cp.alias = &alias
	return &cp
}

// Raw is like Constant but carries an explicit structural name
// instead of deriving one from the value's string form. It is used
// to wrap an already-computed value (e.g. a synthesized join key)
// as an Expression without losing a meaningful name.
type Raw struct {
	value    sql.Value
	name     string
	alias    *string
	compiled sql.CompiledFunc
}

// NewRaw wraps value as an expression named name.
func NewRaw(value sql.Value, name string) *Raw {
	return &Raw{value: value, name: name}
}

func (r *Raw) Name() string         { return resolveName(r.alias, r.name) }
func (r *Raw) OriginalName() string { return r.name }

func (r *Raw) Evaluate(sql.Record) (sql.Value, error) {
	return r.value, nil
}

func (r *Raw) Compile() sql.CompiledFunc {
	if r.compiled == nil {
		v := r.value
		r.compiled = func(sql.Record) (sql.Value, error) { return v, nil }
	}
	return r.compiled
}

func (r *Raw) Alias(alias string) sql.Expression {
	cp := *r
	cp.alias = &alias
	return &cp
}
