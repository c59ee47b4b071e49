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

// UnaryOp identifies which numeric unary operator a unaryExpr applies.
type UnaryOp int

const (
	// OpNeg negates its operand (-x).
	OpNeg UnaryOp = iota
	// OpPos is a no-op numeric identity (+x), kept distinct from Neg
	// so a query can express it explicitly, as the original does.
	OpPos
	// OpInvert is the bitwise complement of an integer operand (~x).
	OpInvert
)

var unarySymbol = map[UnaryOp]string{OpNeg: "-", OpPos: "+", OpInvert: "~"}

type unaryExpr struct {
	op       UnaryOp
	operand  sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// Neg returns -e.
func Neg(e sql.Expression) sql.Expression { return &unaryExpr{op: OpNeg, operand: e} }

// Pos returns +e.
func Pos(e sql.Expression) sql.Expression { return &unaryExpr{op: OpPos, operand: e} }

// Invert returns ~e (bitwise complement, integer operands only).
func Invert(e sql.Expression) sql.Expression { return &unaryExpr{op: OpInvert, operand: e} }

func (u *unaryExpr) structural() string {
	return fmt.Sprintf("(%s%s)", unarySymbol[u.op], u.operand.Name())
}

func (u *unaryExpr) Name() string         { return resolveName(u.alias, u.structural()) }
func (u *unaryExpr) OriginalName() string { return u.structural() }

// Children exposes operand for sql.ReferencedNames.
func (u *unaryExpr) Children() []sql.Expression { return []sql.Expression{u.operand} }

func (u *unaryExpr) applyUnary(v sql.Value) (sql.Value, error) {
	switch u.op {
	case OpNeg:
		switch n := v.(type) {
		case int64:
			return -n, nil
		case float64:
			return -n, nil
		}
	case OpPos:
		switch v.(type) {
		case int64, float64:
			return v, nil
		}
	case OpInvert:
		if n, ok := v.(int64); ok {
			return ^n, nil
		}
	}
	return nil, sql.ErrTypeMismatch.New(v, "numeric")
}

func (u *unaryExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if u.compiled != nil {
		return u.compiled(rec)
	}
	v, err := u.operand.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	return u.applyUnary(v)
}

func (u *unaryExpr) Compile() sql.CompiledFunc {
	if u.compiled == nil {
		operand := u.operand.Compile()
		u.compiled = func(rec sql.Record) (sql.Value, error) {
			v, err := operand(rec)
			if err != nil {
				return nil, err
			}
			return u.applyUnary(v)
		}
	}
	return u.compiled
}

func (u *unaryExpr) Alias(alias string) sql.Expression {
	cp := *u
	cp.alias = &alias
	return &cp
}
