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

package pipeline

import (
	"context"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/table"
)

const pagesDir = "pages"

// urlToFilePath derives a crawled page's on-disk storage path from
// its URL.
func urlToFilePath(pageURL string) string {
	return path.Join(pagesDir, url.QueryEscape(pageURL))
}

// Crawler downloads pages, tokenizes their content, and feeds a
// TokenIndex and PageIndex, optionally recording every (page, token)
// occurrence into a relational table for downstream TF-IDF scoring.
type Crawler struct {
	downloader  Downloader
	tokenizer   *Tokenizer
	tokens      exec.TokenIndex
	pages       exec.PageIndex
	occurrences *table.Table
	log         *logrus.Logger
}

// NewCrawler builds a Crawler. occurrences may be nil to skip
// recording per-token occurrence rows.
func NewCrawler(downloader Downloader, tokenizer *Tokenizer, tokens exec.TokenIndex, pages exec.PageIndex, occurrences *table.Table, log *logrus.Logger) *Crawler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Crawler{downloader: downloader, tokenizer: tokenizer, tokens: tokens, pages: pages, occurrences: occurrences, log: log}
}

// Crawl downloads urls in order, stopping once maxPages have been
// successfully crawled. A download failure is logged and the URL is
// skipped, matching the original crawler's catch-log-continue loop.
func (c *Crawler) Crawl(ctx context.Context, urls []string, maxPages int) error {
	crawled := 0
	for _, u := range urls {
		if crawled >= maxPages {
			break
		}

		page, err := c.downloader.Download(ctx, u)
		if err != nil {
			c.log.WithError(err).WithField("url", u).Warn("crawl: download failed, skipping")
			continue
		}

		if err := c.pages.AddEntry(page.URL, urlToFilePath(page.URL)); err != nil {
			return err
		}

		for _, token := range c.tokenizer.Tokenize(page.Content) {
			if err := c.tokens.AddEntry(token, page.URL); err != nil {
				return err
			}
			if c.occurrences != nil {
				if err := c.occurrences.Insert(map[string]sql.Value{"page_url": page.URL, "token": token}); err != nil {
					return err
				}
			}
		}

		crawled++
	}
	return nil
}
