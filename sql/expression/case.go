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

import (
	"fmt"

	"github.com/PrytkovD/oip/sql"
)

// caseExpr is a two-armed conditional: cond's bool result picks which
// of then/els to evaluate and return. It is not part of the original
// distilled spec but was present in original_source's expression
// tree; it is added here as a supplemented feature.
type caseExpr struct {
	cond, then, els sql.Expression
	alias           *string
	compiled        sql.CompiledFunc
}

// Case returns an expression that evaluates then if cond is true,
// els otherwise.
func Case(cond, then, els sql.Expression) sql.Expression {
	return &caseExpr{cond: cond, then: then, els: els}
}

func (c *caseExpr) structural() string {
	return fmt.Sprintf("case(%s, %s, %s)", c.cond.Name(), c.then.Name(), c.els.Name())
}

func (c *caseExpr) Name() string         { return resolveName(c.alias, c.structural()) }
func (c *caseExpr) OriginalName() string { return c.structural() }

// Children exposes cond, then and els for sql.ReferencedNames.
func (c *caseExpr) Children() []sql.Expression { return []sql.Expression{c.cond, c.then, c.els} }

func (c *caseExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if c.compiled != nil {
		return c.compiled(rec)
	}
	cv, err := c.cond.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	b, err := asBool(cv)
	if err != nil {
		return nil, err
	}
	if b {
		return c.then.Evaluate(rec)
	}
	return c.els.Evaluate(rec)
}

func (c *caseExpr) Compile() sql.CompiledFunc {
	if c.compiled == nil {
		cond := c.cond.Compile()
		then := c.then.Compile()
		els := c.els.Compile()
		c.compiled = func(rec sql.Record) (sql.Value, error) {
			cv, err := cond(rec)
			if err != nil {
				return nil, err
			}
			b, err := asBool(cv)
			if err != nil {
				return nil, err
			}
			if b {
				return then(rec)
			}
			return els(rec)
		}
	}
	return c.compiled
}

func (c *caseExpr) Alias(alias string) sql.Expression {
	cp := *c
	cp.alias = &alias
	return &cp
}
