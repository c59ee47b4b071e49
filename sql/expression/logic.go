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

// BoolOp identifies a binary boolean operator.
type BoolOp int

const (
	OpAnd BoolOp = iota
	OpOr
	OpXor
)

var boolSymbol = map[BoolOp]string{OpAnd: "and", OpOr: "or", OpXor: "xor"}

type logicExpr struct {
	op          BoolOp
	left, right sql.Expression
	alias       *string
	compiled    sql.CompiledFunc
}

func asBool(v sql.Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, sql.ErrTypeMismatch.New(v, "bool")
	}
	return b, nil
}

func (l *logicExpr) structural() string {
	return fmt.Sprintf("(%s %s %s)", l.left.Name(), boolSymbol[l.op], l.right.Name())
}

func (l *logicExpr) Name() string         { return resolveName(l.alias, l.structural()) }
func (l *logicExpr) OriginalName() string { return l.structural() }

// Children exposes left and right for sql.ReferencedNames.
func (l *logicExpr) Children() []sql.Expression { return []sql.Expression{l.left, l.right} }

func (l *logicExpr) applyLogic(lv, rv sql.Value) (sql.Value, error) {
	lb, err := asBool(lv)
	if err != nil {
		return nil, err
	}
	rb, err := asBool(rv)
	if err != nil {
		return nil, err
	}
	switch l.op {
	case OpAnd:
		return lb && rb, nil
	case OpOr:
		return lb || rb, nil
	case OpXor:
		return lb != rb, nil
	}
	return nil, sql.ErrTypeMismatch.New("unsupported bool op", "logic")
}

func (l *logicExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if l.compiled != nil {
		return l.compiled(rec)
	}
	lv, err := l.left.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	rv, err := l.right.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	return l.applyLogic(lv, rv)
}

func (l *logicExpr) Compile() sql.CompiledFunc {
	if l.compiled == nil {
		left := l.left.Compile()
		right := l.right.Compile()
		l.compiled = func(rec sql.Record) (sql.Value, error) {
			lv, err := left(rec)
			if err != nil {
				return nil, err
			}
			rv, err := right(rec)
			if err != nil {
				return nil, err
			}
			return l.applyLogic(lv, rv)
		}
	}
	return l.compiled
}

func (l *logicExpr) Alias(alias string) sql.Expression {
	cp := *l
	cp.alias = &alias
	return &cp
}

// And returns l and r (both must evaluate to bool).
func And(l, r sql.Expression) sql.Expression { return &logicExpr{op: OpAnd, left: l, right: r} }

// Or returns l or r.
func Or(l, r sql.Expression) sql.Expression { return &logicExpr{op: OpOr, left: l, right: r} }

// Xor returns l xor r.
func Xor(l, r sql.Expression) sql.Expression { return &logicExpr{op: OpXor, left: l, right: r} }

// notExpr is boolean negation; kept separate from unaryExpr since it
// operates on bool rather than numeric operands.
type notExpr struct {
	operand  sql.Expression
	alias    *string
	compiled sql.CompiledFunc
}

// Not returns not e.
func Not(e sql.Expression) sql.Expression { return &notExpr{operand: e} }

func (n *notExpr) structural() string { return fmt.Sprintf("(not %s)", n.operand.Name()) }
func (n *notExpr) Name() string       { return resolveName(n.alias, n.structural()) }
func (n *notExpr) OriginalName() string {
	return n.structural()
}

// Children exposes operand for sql.ReferencedNames.
func (n *notExpr) Children() []sql.Expression { return []sql.Expression{n.operand} }

func (n *notExpr) Evaluate(rec sql.Record) (sql.Value, error) {
	if n.compiled != nil {
		return n.compiled(rec)
	}
	v, err := n.operand.Evaluate(rec)
	if err != nil {
		return nil, err
	}
	b, err := asBool(v)
	if err != nil {
		return nil, err
	}
	return !b, nil
}

func (n *notExpr) Compile() sql.CompiledFunc {
	if n.compiled == nil {
		operand := n.operand.Compile()
		n.compiled = func(rec sql.Record) (sql.Value, error) {
			v, err := operand(rec)
			if err != nil {
				return nil, err
			}
			b, err := asBool(v)
			if err != nil {
				return nil, err
			}
			return !b, nil
		}
	}
	return n.compiled
}

func (n *notExpr) Alias(alias string) sql.Expression {
	cp := *n
	cp.alias = &alias
	return &cp
}
