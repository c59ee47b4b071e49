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
	"math"

	"github.com/PrytkovD/oip/sql"
)

// ArithOp identifies a binary arithmetic operator.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpTrueDiv // always produces a float64, like Python's /
	OpFloorDiv
	OpMod
	OpPow
)

var arithSymbol = map[ArithOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpTrueDiv: "/",
	OpFloorDiv: "//", OpMod: "%", OpPow: "**",
}

type arithExpr struct {
	op          ArithOp
	left, right sql.Expression
	alias       *string
	compiled    sql.CompiledFunc
}

func newArith(op ArithOp, l, r sql.Expression) sql.Expression {
	return &arithExpr{op: op, left: l, right: r}
}

// Add returns l + r.
func Add(l, r sql.Expression) sql.Expression { return newArith(OpAdd, l, r) }

// Sub returns l - r.
func Sub(l, r sql.Expression) sql.Expression { return newArith(OpSub, l, r) }

// Mul returns l * r.
func Mul(l, r sql.Expression) sql.Expression { return newArith(OpMul, l, r) }

// TrueDiv returns l / r as a float64, regardless of operand types.
func TrueDiv(l, r sql.Expression) sql.Expression { return newArith(OpTrueDiv, l, r) }

// FloorDiv returns the floor of l / r.
func FloorDiv(l, r sql.Expression) sql.Expression { return newArith(OpFloorDiv, l, r) }

// Mod returns l % r.
func Mod(l, r sql.Expression) sql.Expression { return newArith(OpMod, l, r) }

// Pow returns l raised to the power r, as a float64.
func Pow(l, r sql.Expression) sql.Expression { return newArith(OpPow, l, r) }

func (a *arithExpr) structural() string {
	return fmt.Sprintf("(%s %s %s)", a.left.Name(), arithSymbol[a.op], a.right.Name())
}

func (a *arithExpr) Name() string         { return resolveName(a.alias, a.structural()) }
func (a *arithExpr) OriginalName() string { return a.structural() }

// Children exposes left and right for sql.ReferencedNames.
func (a *arithExpr) Children() []sql.Expression { return []sql.Expression{a.left, a.right} }

func asFloat(v sql.Value) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func (a *arithExpr) applyArith(l, r sql.Value) (sql.Value, error) {
	li, lIsInt := l.(int64)
	ri, rIsInt := r.(int64)
	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if !lok || !rok {
		return nil, sql.ErrTypeMismatch.New(fmt.Sprintf("%v, %v", l, r), "numeric")
	}

	switch a.op {
	case OpTrueDiv:
		if rf == 0 {
			return nil, sql.ErrTypeMismatch.New("division by zero", "nonzero")
		}
		return lf / rf, nil
	case OpPow:
		return math.Pow(lf, rf), nil
	}

	if lIsInt && rIsInt {
		switch a.op {
		case OpAdd:
			return li + ri, nil
		case OpSub:
			return li - ri, nil
		case OpMul:
			return li * ri, nil
		case OpFloorDiv:
			if ri == 0 {
				return nil, sql.ErrTypeMismatch.New("division by zero", "nonzero")
			}
			return int64(math.Floor(float64(li) / float64(ri))), nil
		case OpMod:
			if ri == 0 {
				return nil, sql.ErrTypeMismatch.New("modulo by zero", "nonzero")
			}
			return li % ri, nil
		}
	}

	switch a.op {
	case OpAdd:
		return lf + rf, nil
	case OpSub:
		return lf - rf, nil
	case OpMul:
		return lf * rf, nil
	case OpFloorDiv:
		if rf == 0 {
			return nil, sql.ErrTypeMismatch.New("division by zero", "nonzero")
		}
		return math.Floor(lf / rf), nil
	case OpMod:
		if rf == 0 {
			return nil, sql.ErrTypeMismatch.New("modulo by zero", "nonzero")
		}
		return math.Mod(lf, rf), nil
	}
	return nil, sql.ErrTypeMismatch.New(fmt.Sprintf("unsupported op %v", a.op), "arith")
}

func (a *arithExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if a.compiled != nil {
		return a.compiled(rec)
	}
	l, err := a.left.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	r, err := a.right.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	return a.applyArith(l, r)
}

func (a *arithExpr) Compile() sql.CompiledFunc {
	if a.compiled == nil {
		left := a.left.Compile()
		right := a.right.Compile()
		a.compiled = func(rec sql.Record) (sql.Value, error) {
			l, err := left(rec)
			if err != nil {
				return nil, err
			}
			r, err := right(rec)
			if err != nil {
				return nil, err
			}
			return a.applyArith(l, r)
		}
	}
	return a.compiled
}

func (a *arithExpr) Alias(alias string) sql.Expression {
	cp := *a
	cp.alias = &alias
	return &cp
}
