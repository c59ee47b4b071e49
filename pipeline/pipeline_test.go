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

package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/pipeline"
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/expression"
)

func TestExtractTextStripsMarkup(t *testing.T) {
	html := `<html><head><style>.a{}</style></head><body><p>Hello <b>World</b></p><script>evil()</script></body></html>`
	got := pipeline.ExtractText(html)
	require.Equal(t, "Hello World", got)
}

func TestTokenizeFiltersStopwordsAndShortWords(t *testing.T) {
	tok := pipeline.NewTokenizer(3)
	got := tok.Tokenize("The cats and the dogs are in a box")
	require.Equal(t, []string{"cat", "dog", "box"}, got)
}

func TestCrawlPopulatesIndexes(t *testing.T) {
	tokens := exec.NewMemTokenIndex()
	pages := exec.NewMemPageIndex()
	downloader := &stubDownloader{pages: map[string]string{
		"http://a": "<p>cats like fish</p>",
		"http://b": "<p>dogs like bones</p>",
	}}

	c := pipeline.NewCrawler(downloader, pipeline.NewTokenizer(3), tokens, pages, nil, nil)
	err := c.Crawl(context.Background(), []string{"http://a", "http://b"}, 2)
	require.NoError(t, err)

	urls, err := pages.AllPageURLs()
	require.NoError(t, err)
	require.Len(t, urls, 2)

	catURLs, err := tokens.PageURLsByToken("cat")
	require.NoError(t, err)
	require.Equal(t, []string{"http://a"}, catURLs)
}

func TestCrawlStopsAtMaxPages(t *testing.T) {
	tokens := exec.NewMemTokenIndex()
	pages := exec.NewMemPageIndex()
	downloader := &stubDownloader{pages: map[string]string{
		"http://a": "<p>one</p>",
		"http://b": "<p>two</p>",
		"http://c": "<p>three</p>",
	}}

	c := pipeline.NewCrawler(downloader, pipeline.NewTokenizer(1), tokens, pages, nil, nil)
	err := c.Crawl(context.Background(), []string{"http://a", "http://b", "http://c"}, 2)
	require.NoError(t, err)

	urls, err := pages.AllPageURLs()
	require.NoError(t, err)
	require.Len(t, urls, 2)
}

type stubDownloader struct {
	pages map[string]string
}

func (s *stubDownloader) Download(_ context.Context, url string) (*pipeline.Page, error) {
	return &pipeline.Page{URL: url, Content: s.pages[url]}, nil
}

func TestComputeTFIDFScoresRareTermsHigher(t *testing.T) {
	pageURL := expression.NewColumn("page_url", sql.StringType)
	token := expression.NewColumn("token", sql.StringType)
	schema := sql.ColumnSet{pageURL, token}

	rows := []sql.Record{
		sql.NewRecord(schema, map[string]sql.Value{"page_url": "http://a", "token": "cat"}),
		sql.NewRecord(schema, map[string]sql.Value{"page_url": "http://a", "token": "cat"}),
		sql.NewRecord(schema, map[string]sql.Value{"page_url": "http://a", "token": "dog"}),
		sql.NewRecord(schema, map[string]sql.Value{"page_url": "http://b", "token": "dog"}),
	}
	occurrences := sql.NewSliceRecordSet(schema, rows)

	result, err := pipeline.ComputeTFIDF(occurrences)
	require.NoError(t, err)

	out, err := sql.Materialize(result)
	require.NoError(t, err)
	require.Len(t, out, 3) // one row per (page_url, token) pair in termFreq: (a,cat) (a,dog) (b,dog)

	var catScore, dogScore float64
	for _, r := range out {
		tok, _ := r.Get("token")
		score, _ := r.Get("tfidf")
		switch tok {
		case "cat":
			catScore = score.(float64)
		case "dog":
			dogScore = score.(float64)
		}
	}
	require.Greater(t, catScore, dogScore, "cat occurs on fewer pages, so its higher IDF should give it the higher score")
}
