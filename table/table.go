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

// Package table binds a declared column schema to a paginated CSV
// store, per spec §4.D.
package table

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
	"github.com/PrytkovD/oip/storage"
)

// Table is a RecordSet whose rows live on disk, paginated, as the
// columns given to NewTable. It implements sql.RecordSet, sql.Named
// and storage.TableSchema.
type Table struct {
	name    string
	columns []*expression.Column
	schema  sql.ColumnSet
	storage *storage.FilePageStorage
}

// Option configures NewTable.
type Option func(*config)

type config struct {
	pageSize  int
	cacheSize int
	log       logrus.FieldLogger
	metrics   *storage.Metrics
}

// WithPageSize overrides the default page size (1000 rows).
func WithPageSize(n int) Option { return func(c *config) { c.pageSize = n } }

// WithCacheSize overrides the default resident-page cache size (4).
func WithCacheSize(n int) Option { return func(c *config) { c.cacheSize = n } }

// WithLogger overrides the default logger.
func WithLogger(log logrus.FieldLogger) Option { return func(c *config) { c.log = log } }

// WithMetrics overrides the default (registry-less) storage metrics.
func WithMetrics(m *storage.Metrics) Option { return func(c *config) { c.metrics = m } }

// NewTable declares a table named name with the given unbound columns,
// backed by a paginated CSV store under dir.
func NewTable(name string, cols []*expression.Column, dir string, opts ...Option) (*Table, error) {
	cfg := &config{pageSize: 1000, cacheSize: 4, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(cfg)
	}

	t := &Table{name: name}
	bound := make([]*expression.Column, len(cols))
	schema := make(sql.ColumnSet, len(cols))
	for i, c := range cols {
		b := c.BindTable(t)
		bound[i] = b
		schema[i] = b
	}
	t.columns = bound
	t.schema = schema

	st, err := storage.NewFilePageStorage(dir, t, cfg.pageSize, cfg.cacheSize, cfg.log, cfg.metrics)
	if err != nil {
		return nil, err
	}
	t.storage = st

	registerForFlush(t)
	return t, nil
}

// Name is the table's name, used for both the CSV page file prefix
// and as the sql.Named identity Columns bind to.
func (t *Table) Name() string { return t.name }

// Expressions is the table's column schema, in declared order.
func (t *Table) Expressions() sql.ColumnSet { return t.schema }

// Columns returns the table's bound columns as *expression.Column,
// for callers that need the typed accessor rather than the plain
// sql.Expression view Expressions gives.
func (t *Table) Columns() []*expression.Column { return t.columns }

// Iterate streams the table's rows from its paginated storage.
func (t *Table) Iterate() (sql.RecordIter, error) { return t.storage.Iterate() }

// Insert appends one row. Any declared column absent from data is
// filled with nil (spec §4.D's explicit contract, decided over a
// narrower reading of the original source — see DESIGN.md). Every
// present value is coerced to its column's declared type.
func (t *Table) Insert(data map[string]sql.Value) error {
	row := make(map[string]sql.Value, len(t.columns))
	for _, c := range t.columns {
		v, ok := data[c.OwnName()]
		if !ok {
			row[c.Name()] = nil
			continue
		}
		coerced, err := sql.Coerce(c.Type(), v)
		if err != nil {
			return err
		}
		row[c.Name()] = coerced
	}
	return t.storage.Insert(row)
}

// Flush writes every dirty resident page to disk without evicting
// anything from the cache.
func (t *Table) Flush() error { return t.storage.Flush() }

var (
	flushMu    sync.Mutex
	flushables []*Table
)

func registerForFlush(t *Table) {
	flushMu.Lock()
	defer flushMu.Unlock()
	flushables = append(flushables, t)
}

// FlushAll flushes every table created via NewTable in this process.
// It backs the process-exit hook described in spec §5: a failure
// flushing one table is aggregated with go-multierror rather than
// aborting the flush of the rest, and the caller (cmd/oipdb's signal
// handler) logs rather than propagates any error from this call, so
// one unwritable table can never block process shutdown.
func FlushAll() error {
	flushMu.Lock()
	defer flushMu.Unlock()
	var merr *multierror.Error
	for _, t := range flushables {
		if err := t.Flush(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}
