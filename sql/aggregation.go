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

// Aggregation is an Expression that reduces a slice of Records (a
// group, in GroupBy, or the whole input, in a bare Aggregated) down to
// a single Value, rather than evaluating one record at a time.
//
// It embeds Expression so an Aggregation can be used anywhere a
// projected column is expected (its Evaluate/Compile operate over a
// single record the way any other expression does, for use after
// aggregation has already happened and the reduced value has been
// written back into a record); Aggregate is the reduction step
// GroupBy/Aggregated call once per group.
type Aggregation interface {
	Expression
	// Aggregate reduces records down to a single Value. An empty
	// records slice is valid input; behavior is aggregation-specific
	// (Sum treats it as 0, Count as 0, List/Dict as empty).
	Aggregate(records []Record) (Value, error)
}
