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

// Package storage implements the paginated, CSV-backed row storage
// described in spec §4.C: a bounded FIFO page cache over a directory
// of "<table>_<n>.csv" files.
package storage

import (
	"fmt"
	"strings"
)

// quoteAllRow renders fields as one CSV line with every field
// quoted, matching the original's QUOTE_ALL writer discipline so
// that an empty string and a missing value are never ambiguous on
// read-back.
func quoteAllRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("\"%s\"", strings.ReplaceAll(f, "\"", "\"\""))
	}
	return strings.Join(quoted, ",")
}
