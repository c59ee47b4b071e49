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

package exec_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery/exec"
	"github.com/PrytkovD/oip/boolquery/plan"
)

func setup(t *testing.T) (*exec.MemTokenIndex, *exec.MemPageIndex) {
	t.Helper()
	tokens := exec.NewMemTokenIndex()
	pages := exec.NewMemPageIndex()

	require.NoError(t, pages.AddEntry("http://a", "/data/a.html"))
	require.NoError(t, pages.AddEntry("http://b", "/data/b.html"))
	require.NoError(t, pages.AddEntry("http://c", "/data/c.html"))

	require.NoError(t, tokens.AddEntry("cats", "http://a"))
	require.NoError(t, tokens.AddEntry("dogs", "http://b"))
	require.NoError(t, tokens.AddEntry("cats", "http://b"))
	require.NoError(t, tokens.AddEntry("fish", "http://c"))

	return tokens, pages
}

func sorted(urls []string) []string {
	out := append([]string(nil), urls...)
	sort.Strings(out)
	return out
}

func TestExecuteIndexScanNormalizesAndLemmatizes(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.IndexScan{Value: "CAT"})
	require.NoError(t, err)
	require.Equal(t, []string{"http://a", "http://b"}, sorted(got))
}

func TestExecuteIntersect(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.Intersect{
		Left:  plan.IndexScan{Value: "cat"},
		Right: plan.IndexScan{Value: "dog"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"http://b"}, sorted(got))
}

func TestExecuteUnion(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.Union{
		Left:  plan.IndexScan{Value: "cat"},
		Right: plan.IndexScan{Value: "fish"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"http://a", "http://b", "http://c"}, sorted(got))
}

func TestExecuteDifference(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.Difference{
		Left:  plan.IndexScan{Value: "cat"},
		Right: plan.IndexScan{Value: "dog"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"http://a"}, sorted(got))
}

func TestExecuteSequentialScanReturnsAllPages(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.SequentialScan{})
	require.NoError(t, err)
	require.Equal(t, []string{"http://a", "http://b", "http://c"}, sorted(got))
}

func TestExecuteNoopReturnsEmpty(t *testing.T) {
	tokens, pages := setup(t)
	e := exec.NewExecutor(tokens, pages, nil, nil)

	got, err := e.Execute(context.Background(), plan.Noop{})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestAddEntryIsIdempotent(t *testing.T) {
	tokens := exec.NewMemTokenIndex()
	require.NoError(t, tokens.AddEntry("cat", "http://a"))
	require.NoError(t, tokens.AddEntry("cat", "http://a"))

	urls, err := tokens.PageURLsByToken("cat")
	require.NoError(t, err)
	require.Len(t, urls, 1)
}
