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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
)

type fakeTable string

func (n fakeTable) Name() string { return string(n) }

func TestRecordGetResolvesQualifiedColumnByBareOwnName(t *testing.T) {
	id := expression.NewColumn("id", sql.IntType).BindTable(fakeTable("people"))
	schema := sql.ColumnSet{id}
	rec := sql.NewRecord(schema, map[string]sql.Value{"people.id": int64(1)})

	v, err := rec.Get("id")
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestRecordGetStillResolvesAliasByOriginalName(t *testing.T) {
	age := expression.NewColumn("age", sql.IntType).Alias("years")
	schema := sql.ColumnSet{age}
	rec := sql.NewRecord(schema, map[string]sql.Value{"years": int64(30)})

	v, err := rec.Get("age")
	require.NoError(t, err)
	require.Equal(t, int64(30), v)
}

func TestRecordGetUnknownFieldErrors(t *testing.T) {
	schema := sql.ColumnSet{expression.NewColumn("id", sql.IntType)}
	rec := sql.NewRecord(schema, map[string]sql.Value{"id": int64(1)})

	_, err := rec.Get("nope")
	require.Error(t, err)
	require.True(t, sql.ErrUnknownField.Is(err))
}

func TestColumnSetIndexOfMatchesBoundColumnByOwnName(t *testing.T) {
	id := expression.NewColumn("id", sql.IntType).BindTable(fakeTable("people"))
	name := expression.NewColumn("name", sql.StringType).BindTable(fakeTable("people"))
	schema := sql.ColumnSet{id, name}

	require.Equal(t, 0, schema.IndexOf("id"))
	require.Equal(t, 1, schema.IndexOf("people.name"))
	require.Equal(t, -1, schema.IndexOf("missing"))
}
