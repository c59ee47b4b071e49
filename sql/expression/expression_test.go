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

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
)

func schemaOf(exprs ...sql.Expression) sql.ColumnSet { return sql.ColumnSet(exprs) }

func TestConstantEvaluate(t *testing.T) {
	c := expression.NewConstant(int64(42))
	require.Equal(t, "42", c.Name())
	require.Equal(t, "42", c.OriginalName())

	v, err := c.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
}

func TestAliasDoesNotMutateOriginal(t *testing.T) {
	col := expression.NewColumn("age", sql.IntType)
	aliased := col.Alias("years")

	require.Equal(t, "age", col.Name())
	require.Equal(t, "years", aliased.Name())
	require.Equal(t, "age", aliased.OriginalName())
}

type fakeTable string

func (n fakeTable) Name() string { return string(n) }

func TestBoundColumnOriginalNameIsTableQualified(t *testing.T) {
	col := expression.NewColumn("id", sql.IntType).BindTable(fakeTable("people"))

	require.Equal(t, "id", col.OwnName())
	require.Equal(t, "people.id", col.OriginalName())
	require.Equal(t, "people.id", col.Name())
}

func TestAliasOnBoundColumnLeavesOriginalNameQualified(t *testing.T) {
	col := expression.NewColumn("id", sql.IntType).BindTable(fakeTable("people"))
	aliased := col.Alias("pid")

	require.Equal(t, "pid", aliased.Name())
	require.Equal(t, "people.id", aliased.OriginalName())
}

func TestAliasingSharedSubexpressionDoesNotCollide(t *testing.T) {
	base := expression.NewColumn("x", sql.IntType)
	left := base.Alias("left_x")
	right := base.Alias("right_x")

	require.Equal(t, "x", base.Name())
	require.Equal(t, "left_x", left.Name())
	require.Equal(t, "right_x", right.Name())
}

func TestArithmeticIntPromotion(t *testing.T) {
	l := expression.NewConstant(int64(3))
	r := expression.NewConstant(2.0)
	add := expression.Add(l, r)

	v, err := add.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

func TestFloorDivIntegerStaysInt(t *testing.T) {
	e := expression.FloorDiv(expression.NewConstant(int64(7)), expression.NewConstant(int64(2)))
	v, err := e.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestCompileIsMemoizedAndIdempotent(t *testing.T) {
	col := expression.NewColumn("name", sql.StringType)
	f1 := col.Compile()
	f2 := col.Compile()

	rec := sql.NewRecord(schemaOf(col), map[string]sql.Value{"name": "ada"})
	v1, err := f1(rec)
	require.NoError(t, err)
	v2, err := f2(rec)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}

func TestComparisonAndLogic(t *testing.T) {
	l := expression.NewConstant(int64(1))
	r := expression.NewConstant(int64(2))
	lt := expression.Lt(l, r)
	v, err := lt.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, true, v)

	and := expression.And(expression.NewConstant(true), expression.Not(expression.NewConstant(false)))
	v2, err := and.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, true, v2)
}

func TestCaseExpression(t *testing.T) {
	cond := expression.Gt(expression.NewConstant(int64(5)), expression.NewConstant(int64(3)))
	ce := expression.Case(cond, expression.NewConstant("big"), expression.NewConstant("small"))
	v, err := ce.Evaluate(sql.Record{})
	require.NoError(t, err)
	require.Equal(t, "big", v)
}

func TestIsNotNullAndIsIn(t *testing.T) {
	col := expression.NewColumn("tag", sql.StringType)
	rec := sql.NewRecord(schemaOf(col), map[string]sql.Value{"tag": "b"})

	notNull := expression.IsNotNull(col)
	v, err := notNull.Evaluate(rec)
	require.NoError(t, err)
	require.Equal(t, true, v)

	isIn := expression.IsIn(col, []sql.Value{"a", "b", "c"})
	v2, err := isIn.Evaluate(rec)
	require.NoError(t, err)
	require.Equal(t, true, v2)
}
