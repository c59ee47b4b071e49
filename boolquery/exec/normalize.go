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

package exec

import "strings"

// Normalizer canonicalizes a raw token before it is looked up in or
// written to a TokenIndex, so that "Cat" and "cat" hit the same
// index entry.
type Normalizer interface {
	Normalize(token string) string
}

// Lemmatizer reduces a normalized token to its indexed lemma, so that
// "cats" and "cat" hit the same index entry.
type Lemmatizer interface {
	Lemmatize(token string) string
}

type lowercaseNormalizer struct{}

func (lowercaseNormalizer) Normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// DefaultNormalizer lowercases and trims a token.
func DefaultNormalizer() Normalizer { return lowercaseNormalizer{} }

var suffixes = []string{"ies", "es", "s", "ing", "ed"}

type suffixStripLemmatizer struct{}

// Lemmatize strips one common English inflectional suffix. This is a
// deliberately simple stand-in, not a dictionary-backed lemmatizer:
// it exists so the index has a single, consistent place to collapse
// "cats"/"cat" and similar pairs, not to handle irregular forms.
func (suffixStripLemmatizer) Lemmatize(token string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(token, suf) && len(token)-len(suf) >= 3 {
			if suf == "ies" {
				return token[:len(token)-3] + "y"
			}
			return token[:len(token)-len(suf)]
		}
	}
	return token
}

// DefaultLemmatizer returns the suffix-stripping stand-in lemmatizer.
func DefaultLemmatizer() Lemmatizer { return suffixStripLemmatizer{} }

func lemmaKey(normalizer Normalizer, lemmatizer Lemmatizer, token string) string {
	return lemmatizer.Lemmatize(normalizer.Normalize(token))
}
