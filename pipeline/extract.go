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
)

var (
	// Go's regexp has no backreferences, so each unwanted tag name is
	// spelled out in both the opening and closing alternative rather
	// than captured once and reused.
	scriptOrStyleRe = regexp.MustCompile(`(?is)<(?:script|style|noscript|head)[^>]*>.*?</(?:script|style|noscript|head)>`)
	tagRe           = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespaceRe    = regexp.MustCompile(`[ \t]+`)
)

// ExtractText strips markup from an HTML document, leaving its
// visible text. This is a regexp-based stand-in for a proper HTML
// parser: no third-party HTML parsing library is exercised anywhere
// else in the retrieved example pack, so this stays on the standard
// library rather than introducing an unvetted dependency for a single
// call site.
func ExtractText(html string) string {
	stripped := scriptOrStyleRe.ReplaceAllString(html, "")
	stripped = tagRe.ReplaceAllString(stripped, " ")

	var lines []string
	for _, line := range strings.Split(stripped, "\n") {
		line = whitespaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
