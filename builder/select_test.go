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

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/builder"
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/aggregation"
	"github.com/PrytkovD/oip/sql/expression"
	"github.com/PrytkovD/oip/sql/plan"
)

func ordersAndItems() (sql.RecordSet, sql.RecordSet) {
	orderID := expression.NewColumn("id", sql.IntType)
	customer := expression.NewColumn("customer", sql.StringType)
	orderSchema := sql.ColumnSet{orderID, customer}
	orders := sql.NewSliceRecordSet(orderSchema, []sql.Record{
		sql.NewRecord(orderSchema, map[string]sql.Value{"id": int64(1), "customer": "ann"}),
		sql.NewRecord(orderSchema, map[string]sql.Value{"id": int64(2), "customer": "bo"}),
	})

	itemOrder := expression.NewColumn("order_id", sql.IntType)
	qty := expression.NewColumn("qty", sql.IntType)
	itemSchema := sql.ColumnSet{itemOrder, qty}
	items := sql.NewSliceRecordSet(itemSchema, []sql.Record{
		sql.NewRecord(itemSchema, map[string]sql.Value{"order_id": int64(1), "qty": int64(3)}),
		sql.NewRecord(itemSchema, map[string]sql.Value{"order_id": int64(1), "qty": int64(4)}),
		sql.NewRecord(itemSchema, map[string]sql.Value{"order_id": int64(2), "qty": int64(1)}),
	})
	return orders, items
}

func TestSelectJoinGroupByAggregateProjectOrder(t *testing.T) {
	orders, items := ordersAndItems()

	orderIDOnItems := expression.NewColumn("order_id", sql.IntType)
	orderIDOnOrders := expression.NewColumn("id", sql.IntType)
	customer := expression.NewColumn("customer", sql.StringType)
	qty := expression.NewColumn("qty", sql.IntType)

	result, err := builder.SelectFrom(orders).
		Join(items, orderIDOnOrders, orderIDOnItems, plan.InnerJoin).
		GroupBy(customer).
		Aggregate(aggregation.NewSum(qty).Alias("total_qty").(sql.Aggregation)).
		Columns(customer, expression.NewColumn("total_qty", sql.IntType)).
		OrderBy(plan.Ordering{Expr: expression.NewColumn("total_qty", sql.IntType), Desc: true}).
		Execute()
	require.NoError(t, err)

	out, err := sql.Materialize(result)
	require.NoError(t, err)
	require.Len(t, out, 2)

	first, _ := out[0].Get("total_qty")
	require.Equal(t, int64(7), first)
}

func TestWhereWithoutAggregation(t *testing.T) {
	orders, _ := ordersAndItems()
	customer := expression.NewColumn("customer", sql.StringType)

	result, err := builder.SelectFrom(orders).
		Where(expression.Eq(customer, expression.NewConstant("ann"))).
		Execute()
	require.NoError(t, err)

	out, err := sql.Materialize(result)
	require.NoError(t, err)
	require.Len(t, out, 1)
}
