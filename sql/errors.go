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

package sql

import "gopkg.in/src-d/go-errors.v1"

// ErrTypeMismatch is returned when a value cannot be coerced to a
// column's declared type, or when an operator is applied to operands
// of incompatible runtime types.
var ErrTypeMismatch = errors.NewKind("cannot coerce %v to %s")

// ErrUnknownField is returned when a Record is asked for a column name
// that is not present in its schema under its alias, its structural
// name or, for a bound Column, its bare name.
var ErrUnknownField = errors.NewKind("unknown field %q")

// ErrSchemaMismatch is returned when two record sets are combined
// (e.g. a join or a set operation) whose schemas are not compatible.
var ErrSchemaMismatch = errors.NewKind("schema mismatch: %s")

// ErrAggregationEmpty is returned by aggregations that refuse to
// produce a value over zero input records (Sum and Count tolerate an
// empty input; List and Dict do too, producing an empty collection).
var ErrAggregationEmpty = errors.NewKind("aggregation %s has no input records")

// ErrStorageIO is returned when a page write fails. Page read
// failures are deliberately swallowed as an empty page (see
// storage.Page), a preserved historical quirk; only writes propagate.
var ErrStorageIO = errors.NewKind("storage I/O error: %s")

// ErrParseError is returned by the Boolean query tokenizer/parser when
// input is rejected. pos is the 0-based rune offset into the query
// string of the token that triggered the failure.
var ErrParseError = errors.NewKind("parse error at position %d: %s")
