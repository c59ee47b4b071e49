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

package aggregation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/aggregation"
	"github.com/PrytkovD/oip/sql/expression"
)

func recordsOf(col *expression.Column, values ...sql.Value) []sql.Record {
	schema := sql.ColumnSet{col}
	recs := make([]sql.Record, len(values))
	for i, v := range values {
		recs[i] = sql.NewRecord(schema, map[string]sql.Value{col.Name(): v})
	}
	return recs
}

func TestSumEmptyIsZero(t *testing.T) {
	col := expression.NewColumn("n", sql.IntType)
	sum := aggregation.NewSum(col)
	v, err := sum.Aggregate(nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}

func TestSumMixedIntFloat(t *testing.T) {
	col := expression.NewColumn("n", sql.FloatType)
	sum := aggregation.NewSum(col)
	v, err := sum.Aggregate(recordsOf(col, int64(1), 2.5))
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestCountStar(t *testing.T) {
	col := expression.NewColumn("n", sql.IntType)
	count := aggregation.NewCount(nil)
	v, err := count.Aggregate(recordsOf(col, int64(1), int64(2), int64(3)))
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestListPreservesOrder(t *testing.T) {
	col := expression.NewColumn("n", sql.IntType)
	list := aggregation.NewList(col)
	v, err := list.Aggregate(recordsOf(col, int64(3), int64(1), int64(2)))
	require.NoError(t, err)
	require.Equal(t, []sql.Value{int64(3), int64(1), int64(2)}, v)
}

func TestDictKeysByExpressionNameLastRecordWinsUnconditionally(t *testing.T) {
	k := expression.NewColumn("k", sql.StringType)
	v := expression.NewColumn("v", sql.IntType)
	schema := sql.ColumnSet{k, v}

	recs := []sql.Record{
		sql.NewRecord(schema, map[string]sql.Value{"k": "a", "v": int64(1)}),
		sql.NewRecord(schema, map[string]sql.Value{"k": "b", "v": int64(2)}),
	}

	dict := aggregation.NewDict(k, v)
	got, err := dict.Aggregate(recs)
	require.NoError(t, err)

	// Each expression gets its own key (its Name()), overwritten by
	// every record in the group regardless of the evaluated values
	// differing between records - there is no real "key" in the
	// conventional sense, unlike a map built from two separate
	// key/value expressions.
	require.Equal(t, map[string]sql.Value{"k": "b", "v": int64(2)}, got)
}

func TestDictIsVariadicOverArbitraryExpressionCount(t *testing.T) {
	a := expression.NewColumn("a", sql.IntType)
	b := expression.NewColumn("b", sql.IntType)
	c := expression.NewColumn("c", sql.IntType)
	schema := sql.ColumnSet{a, b, c}

	recs := []sql.Record{
		sql.NewRecord(schema, map[string]sql.Value{"a": int64(1), "b": int64(2), "c": int64(3)}),
	}

	dict := aggregation.NewDict(a, b, c)
	got, err := dict.Aggregate(recs)
	require.NoError(t, err)
	require.Equal(t, map[string]sql.Value{"a": int64(1), "b": int64(2), "c": int64(3)}, got)
}

func TestCountSchemaMembershipIgnoresEvaluatedValue(t *testing.T) {
	col := expression.NewColumn("n", sql.IntType)
	schema := sql.ColumnSet{col}

	recs := []sql.Record{
		sql.NewRecord(schema, map[string]sql.Value{"n": nil}),
		sql.NewRecord(schema, map[string]sql.Value{"n": int64(1)}),
	}

	count := aggregation.NewCount(col)
	v, err := count.Aggregate(recs)
	require.NoError(t, err)
	require.Equal(t, int64(2), v, "both records carry n in their schema, regardless of value")
}

func TestCountSchemaMembershipExcludesMissingColumn(t *testing.T) {
	present := expression.NewColumn("n", sql.IntType)
	absent := expression.NewColumn("missing", sql.IntType)
	schema := sql.ColumnSet{present}

	recs := []sql.Record{sql.NewRecord(schema, map[string]sql.Value{"n": int64(1)})}

	count := aggregation.NewCount(absent)
	v, err := count.Aggregate(recs)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}
