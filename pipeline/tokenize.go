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
	"regexp"
	"strings"

	"github.com/PrytkovD/oip/boolquery/exec"
)

var wordRe = regexp.MustCompile(`[A-Za-z]+`)

// stopWords is a small, fixed list standing in for the original's
// NLTK corpus-backed stopword set, which depends on a downloaded
// corpus no file in the retrieved pack provides.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "such": {},
	"that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "will": {}, "with": {},
}

// Tokenizer extracts filtered, normalized, lemmatized tokens from a
// Page's text content, grounded on SimpleTokenizer's extract ->
// tokenize -> normalize -> filter pipeline.
type Tokenizer struct {
	normalizer exec.Normalizer
	lemmatizer exec.Lemmatizer
	minLen     int
}

// NewTokenizer builds a Tokenizer with the default normalizer and
// lemmatizer and a minimum token length of minLen.
func NewTokenizer(minLen int) *Tokenizer {
	return &Tokenizer{
		normalizer: exec.DefaultNormalizer(),
		lemmatizer: exec.DefaultLemmatizer(),
		minLen:     minLen,
	}
}

// Tokenize returns the deduplication-free, in-order list of lemmas
// extracted from content, after stripping markup, splitting on
// non-letter runs, normalizing, stopword filtering, and
// min-length filtering.
func (t *Tokenizer) Tokenize(content string) []string {
	text := ExtractText(content)
	raw := wordRe.FindAllString(text, -1)

	tokens := make([]string, 0, len(raw))
	for _, word := range raw {
		normalized := t.normalizer.Normalize(word)
		if len(normalized) < t.minLen {
			continue
		}
		if _, stop := stopWords[normalized]; stop {
			continue
		}
		tokens = append(tokens, t.lemmatizer.Lemmatize(normalized))
	}
	return tokens
}
