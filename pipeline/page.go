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

// Package pipeline implements the supplemented crawl/tokenize/score
// pipeline of SPEC_FULL.md §5: downloading pages, extracting and
// tokenizing their text, feeding a boolquery/exec TokenIndex and
// PageIndex, and scoring indexed terms by TF-IDF over the relational
// engine.
package pipeline

// Page is a downloaded document: its source URL and its raw
// downloaded content (markup included; Tokenizer extracts the text).
type Page struct {
	URL     string
	Content string
}
