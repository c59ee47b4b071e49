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

package storage

import (
	"container/list"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/sql"
)

var pageFileRe = regexp.MustCompile(`^(.+)_([0-9]+)\.csv$`)

// FilePageStorage is a bounded-cache, paginated CSV store for one
// table's rows, per spec §4.C. Rows are appended to the last page
// until it reaches pageSize, then a new page is started. At most
// cacheSize pages are held in memory at once; eviction is a plain
// FIFO queue (the first page loaded is the first evicted), not an
// access-recency LRU, and an evicted dirty page is flushed to disk
// before being dropped.
type FilePageStorage struct {
	dir       string
	schema    TableSchema
	pageSize  int
	cacheSize int
	log       logrus.FieldLogger
	metrics   *Metrics

	pages     map[int]*Page
	fifo      *list.List
	fifoElems map[int]*list.Element
	numPages  int // total page count discovered/created, including evicted ones
}

// NewFilePageStorage opens (or creates) the paginated store for
// schema under dir, discovering any existing "<table>_<n>.csv" page
// files already on disk.
func NewFilePageStorage(dir string, schema TableSchema, pageSize, cacheSize int, log logrus.FieldLogger, metrics *Metrics) (*FilePageStorage, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	s := &FilePageStorage{
		dir:       dir,
		schema:    schema,
		pageSize:  pageSize,
		cacheSize: cacheSize,
		log:       log.WithField("table", schema.Name()),
		metrics:   metrics,
		pages:     make(map[int]*Page),
		fifo:      list.New(),
		fifoElems: make(map[int]*list.Element),
	}
	if err := s.discoverPages(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FilePageStorage) discoverPages() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return sql.ErrStorageIO.Wrap(err, s.dir)
	}
	maxNum := -1
	for _, e := range entries {
		m := pageFileRe.FindStringSubmatch(e.Name())
		if m == nil || m[1] != s.schema.Name() {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	s.numPages = maxNum + 1
	return nil
}

func (s *FilePageStorage) pagePath(num int) string {
	return filepath.Join(s.dir, s.schema.Name()+"_"+strconv.Itoa(num)+".csv")
}

// loadPage returns the in-memory Page for num, loading it from disk
// and admitting it to the cache (evicting the oldest page if full) if
// it isn't already resident.
func (s *FilePageStorage) loadPage(num int) (*Page, error) {
	if p, ok := s.pages[num]; ok {
		s.metrics.CacheHits.Inc()
		return p, nil
	}
	s.metrics.CacheMisses.Inc()

	p := newPage(num, s.pagePath(num), s.schema, s.log)
	p.Load()

	if len(s.pages) >= s.cacheSize && s.cacheSize > 0 {
		if err := s.evictOldest(); err != nil {
			return nil, err
		}
	}

	s.pages[num] = p
	s.fifoElems[num] = s.fifo.PushBack(num)
	return p, nil
}

func (s *FilePageStorage) evictOldest() error {
	front := s.fifo.Front()
	if front == nil {
		return nil
	}
	num := front.Value.(int)
	p := s.pages[num]
	s.metrics.Evictions.Inc()
	if p.dirty {
		if err := p.Save(); err != nil {
			return err
		}
	}
	s.fifo.Remove(front)
	delete(s.fifoElems, num)
	delete(s.pages, num)
	return nil
}

// Insert appends row to the last page, creating a new page first if
// the last one is full or none exist yet.
func (s *FilePageStorage) Insert(row map[string]sql.Value) error {
	if s.numPages == 0 {
		s.numPages = 1
	}
	last, err := s.loadPage(s.numPages - 1)
	if err != nil {
		return err
	}
	if last.Len() >= s.pageSize {
		s.numPages++
		last, err = s.loadPage(s.numPages - 1)
		if err != nil {
			return err
		}
	}
	last.Append(row)
	return nil
}

// Flush writes every dirty resident page to disk. It does not evict
// anything from the cache.
func (s *FilePageStorage) Flush() error {
	var merr *multierror.Error
	for _, p := range s.pages {
		if p.dirty {
			if err := p.Save(); err != nil {
				merr = multierror.Append(merr, err)
			}
		}
	}
	return merr.ErrorOrNil()
}

// Iterate walks every row of every page in page order, loading pages
// through the cache as it goes. Reaching the end of a full page
// flushes it and releases it from the cache immediately (matching
// the original's full-page-scan eviction discipline) rather than
// waiting for FIFO pressure.
func (s *FilePageStorage) Iterate() (sql.RecordIter, error) {
	return &storageIter{storage: s, pageNum: 0}, nil
}

type storageIter struct {
	storage *FilePageStorage
	pageNum int
	rowIdx  int
	page    *Page
}

func (it *storageIter) Next() (sql.Record, error) {
	for {
		if it.page == nil {
			if it.pageNum >= it.storage.numPages {
				return sql.Record{}, io.EOF
			}
			p, err := it.storage.loadPage(it.pageNum)
			if err != nil {
				return sql.Record{}, err
			}
			it.page = p
			it.rowIdx = 0
		}
		if it.rowIdx < it.page.Len() {
			row := it.page.Rows()[it.rowIdx]
			it.rowIdx++
			schema := it.storage.schema.Expressions()
			return sql.NewRecord(schema, row), nil
		}
		// Exhausted this page: flush it and release it from cache,
		// then move on to the next page number.
		if it.page.dirty {
			if err := it.page.Save(); err != nil {
				return sql.Record{}, err
			}
		}
		delete(it.storage.pages, it.page.num)
		if el, ok := it.storage.fifoElems[it.page.num]; ok {
			it.storage.fifo.Remove(el)
			delete(it.storage.fifoElems, it.page.num)
		}
		it.page = nil
		it.pageNum++
	}
}

func (it *storageIter) Close() error { return nil }
