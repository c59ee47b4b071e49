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

package storage_test

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
	"github.com/PrytkovD/oip/storage"
)

type fakeTable struct {
	name string
	cols sql.ColumnSet
}

func (t *fakeTable) Name() string              { return t.name }
func (t *fakeTable) Expressions() sql.ColumnSet { return t.cols }

func newFakeTable(name string) *fakeTable {
	id := expression.NewColumn("id", sql.IntType)
	label := expression.NewColumn("label", sql.StringType)
	return &fakeTable{name: name, cols: sql.ColumnSet{id, label}}
}

func drain(t *testing.T, it sql.RecordIter) []sql.Record {
	t.Helper()
	var out []sql.Record
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
	return out
}

func TestInsertAndIterateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	schema := newFakeTable("widgets")
	st, err := storage.NewFilePageStorage(dir, schema, 2, 10, logrus.New(), nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, st.Insert(map[string]sql.Value{"id": int64(i), "label": "w"}))
	}
	require.NoError(t, st.Flush())

	it, err := st.Iterate()
	require.NoError(t, err)
	recs := drain(t, it)
	require.Len(t, recs, 5)
	for i, rec := range recs {
		v, err := rec.Get("id")
		require.NoError(t, err)
		require.Equal(t, int64(i), v)
	}
}

func TestIterateCoercesTypesAfterDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()
	schema := newFakeTable("widgets")
	st, err := storage.NewFilePageStorage(dir, schema, 100, 10, logrus.New(), nil)
	require.NoError(t, err)
	require.NoError(t, st.Insert(map[string]sql.Value{"id": int64(7), "label": "hi"}))
	require.NoError(t, st.Flush())

	// Reopen against the same directory to force a read from disk.
	reopened, err := storage.NewFilePageStorage(dir, schema, 100, 10, logrus.New(), nil)
	require.NoError(t, err)
	it, err := reopened.Iterate()
	require.NoError(t, err)
	recs := drain(t, it)
	require.Len(t, recs, 1)
	v, err := recs[0].Get("id")
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestSaveWritesHeaderLineLoadSkipsIt(t *testing.T) {
	dir := t.TempDir()
	schema := newFakeTable("widgets")
	st, err := storage.NewFilePageStorage(dir, schema, 100, 10, logrus.New(), nil)
	require.NoError(t, err)
	require.NoError(t, st.Insert(map[string]sql.Value{"id": int64(1), "label": "hi"}))
	require.NoError(t, st.Flush())

	raw, err := os.ReadFile(dir + "/widgets_0.csv")
	require.NoError(t, err)
	require.Contains(t, string(raw), `"id","label"`)

	reopened, err := storage.NewFilePageStorage(dir, schema, 100, 10, logrus.New(), nil)
	require.NoError(t, err)
	it, err := reopened.Iterate()
	require.NoError(t, err)
	recs := drain(t, it)
	require.Len(t, recs, 1)
	v, err := recs[0].Get("id")
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestReadErrorIsSwallowedAsEmptyPage(t *testing.T) {
	dir := t.TempDir()
	schema := newFakeTable("widgets")

	// Hand-write a malformed page file directly: a bare quote inside an
	// unquoted field, which encoding/csv rejects outright.
	require.NoError(t, os.WriteFile(dir+"/widgets_0.csv", []byte("1,b\"ad\n"), 0o644))

	st, err := storage.NewFilePageStorage(dir, schema, 100, 10, logrus.New(), nil)
	require.NoError(t, err)

	it, err := st.Iterate()
	require.NoError(t, err)
	recs := drain(t, it)
	require.Empty(t, recs)
}
