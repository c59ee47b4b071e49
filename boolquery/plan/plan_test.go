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

package plan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery"
	"github.com/PrytkovD/oip/boolquery/plan"
)

func TestPlanWordIsIndexScan(t *testing.T) {
	got := plan.Plan(&boolquery.Word{Token: "cat"})
	require.Equal(t, plan.IndexScan{Value: "cat"}, got)
}

func TestPlanOrIsUnion(t *testing.T) {
	got := plan.Plan(&boolquery.Or{Left: &boolquery.Word{Token: "a"}, Right: &boolquery.Word{Token: "b"}})
	union, ok := got.(plan.Union)
	require.True(t, ok)
	require.Equal(t, plan.IndexScan{Value: "a"}, union.Left)
	require.Equal(t, plan.IndexScan{Value: "b"}, union.Right)
}

func TestPlanBareNotIsDifferenceFromSequentialScan(t *testing.T) {
	got := plan.Plan(&boolquery.Not{Operand: &boolquery.Word{Token: "a"}})
	diff, ok := got.(plan.Difference)
	require.True(t, ok)
	require.Equal(t, plan.SequentialScan{}, diff.Left)
	require.Equal(t, plan.IndexScan{Value: "a"}, diff.Right)
}

func TestPlanAndWithOneNotSideIsDifference(t *testing.T) {
	got := plan.Plan(&boolquery.And{
		Left:  &boolquery.Word{Token: "a"},
		Right: &boolquery.Not{Operand: &boolquery.Word{Token: "b"}},
	})
	diff, ok := got.(plan.Difference)
	require.True(t, ok)
	require.Equal(t, plan.IndexScan{Value: "a"}, diff.Left)
	require.Equal(t, plan.IndexScan{Value: "b"}, diff.Right)
}

func TestPlanAndWithBothNotSidesIsIntersect(t *testing.T) {
	got := plan.Plan(&boolquery.And{
		Left:  &boolquery.Not{Operand: &boolquery.Word{Token: "a"}},
		Right: &boolquery.Not{Operand: &boolquery.Word{Token: "b"}},
	})
	_, ok := got.(plan.Intersect)
	require.True(t, ok, "both-Not And should plan to Intersect, not be lowered through De Morgan")
}

func TestPlanEmptyIsNoop(t *testing.T) {
	got := plan.Plan(boolquery.Empty)
	require.Equal(t, plan.Noop{}, got)
}

// TestPlanNestedTreeMatchesExpectedShape plans a three-level query
// and diffs the whole tree at once via cmp.Diff, whose field-by-field
// output pinpoints which subtree diverges on a mismatch rather than
// just reporting the two top-level values aren't equal.
func TestPlanNestedTreeMatchesExpectedShape(t *testing.T) {
	n := &boolquery.And{
		Left: &boolquery.Or{
			Left:  &boolquery.Word{Token: "cat"},
			Right: &boolquery.Word{Token: "dog"},
		},
		Right: &boolquery.Not{Operand: &boolquery.Word{Token: "fish"}},
	}

	want := plan.Difference{
		Left: plan.Union{
			Left:  plan.IndexScan{Value: "cat"},
			Right: plan.IndexScan{Value: "dog"},
		},
		Right: plan.IndexScan{Value: "fish"},
	}

	got := plan.Plan(n)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("plan mismatch (-want +got):\n%s", diff)
	}
}
