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

// CmpOp identifies a comparison operator.
type CmpOp int

const (
	OpLt CmpOp = iota
	OpLe
	OpEq
	OpNe
	OpGt
	OpGe
)

var cmpSymbol = map[CmpOp]string{
	OpLt: "<", OpLe: "<=", OpEq: "==", OpNe: "!=", OpGt: ">", OpGe: ">=",
}

type cmpExpr struct {
	op          CmpOp
	left, right sql.Expression
	alias       *string
	compiled    sql.CompiledFunc
}

func newCmp(op CmpOp, l, r sql.Expression) sql.Expression {
	return &cmpExpr{op: op, left: l, right: r}
}

func Lt(l, r sql.Expression) sql.Expression { return newCmp(OpLt, l, r) }
func Le(l, r sql.Expression) sql.Expression { return newCmp(OpLe, l, r) }
func Eq(l, r sql.Expression) sql.Expression { return newCmp(OpEq, l, r) }
func Ne(l, r sql.Expression) sql.Expression { return newCmp(OpNe, l, r) }
func Gt(l, r sql.Expression) sql.Expression { return newCmp(OpGt, l, r) }
func Ge(l, r sql.Expression) sql.Expression { return newCmp(OpGe, l, r) }

func (c *cmpExpr) structural() string {
	return fmt.Sprintf("(%s %s %s)", c.left.Name(), cmpSymbol[c.op], c.right.Name())
}

func (c *cmpExpr) Name() string         { return resolveName(c.alias, c.structural()) }
func (c *cmpExpr) OriginalName() string { return c.structural() }

// Children exposes left and right for sql.ReferencedNames.
func (c *cmpExpr) Children() []sql.Expression { return []sql.Expression{c.left, c.right} }

// Compare orders two arbitrary values the way OrderBy needs to: both
// numeric (promoted to float64), both strings (lexically), or equal
// via Eq/Ne regardless of type. Returns -1, 0 or 1.
func Compare(l, r sql.Value) (int, error) {
	if lf, ok := asFloat(l); ok {
		if rf, ok := asFloat(r); ok {
			switch {
			case lf < rf:
				return -1, nil
			case lf > rf:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	if ls, ok := l.(string); ok {
		if rs, ok := r.(string); ok {
			switch {
			case ls < rs:
				return -1, nil
			case ls > rs:
				return 1, nil
			default:
				return 0, nil
			}
		}
	}
	return 0, sql.ErrTypeMismatch.New(fmt.Sprintf("%v, %v", l, r), "comparable")
}

func (c *cmpExpr) applyCmp(l, r sql.Value) (sql.Value, error) {
	if c.op == OpEq {
		return l == r, nil
	}
	if c.op == OpNe {
		return l != r, nil
	}
	cmp, err := Compare(l, r)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case OpLt:
		return cmp < 0, nil
	case OpLe:
		return cmp <= 0, nil
	case OpGt:
		return cmp > 0, nil
	case OpGe:
		return cmp >= 0, nil
	}
	return nil, sql.ErrTypeMismatch.New("unsupported comparison", "cmp")
}

func (c *cmpExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if c.compiled != nil {
		return c.compiled(rec)
	}
	l, err := c.left.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	r, err := c.right.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	return c.applyCmp(l, r)
}

func (c *cmpExpr) Compile() sql.CompiledFunc {
	if c.compiled == nil {
		left := c.left.Compile()
		right := c.right.Compile()
		c.compiled = func(rec sql.Record) (sql.Value, error) {
			l, err := left(rec)
			if err != nil {
				return nil, err
			}
			r, err := right(rec)
			if err != nil {
				return nil, err
			}
			return c.applyCmp(l, r)
		}
	}
	return c.compiled
}

func (c *cmpExpr) Alias(alias string) sql.Expression {
	cp := *c
	cp.alias = &alias
	return &cp
}
