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

package boolquery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery"
	"github.com/PrytkovD/oip/sql"
)

func TestParseWordAndNotPrecedence(t *testing.T) {
	n, err := boolquery.Parse("a and b or not c")
	require.NoError(t, err)

	expected := &boolquery.Or{
		Left:  &boolquery.And{Left: &boolquery.Word{Token: "a"}, Right: &boolquery.Word{Token: "b"}},
		Right: &boolquery.Not{Operand: &boolquery.Word{Token: "c"}},
	}
	require.True(t, n.Equal(expected), "got %s", n)
}

func TestParseSymbolicOperators(t *testing.T) {
	n, err := boolquery.Parse("a && b || !c")
	require.NoError(t, err)

	expected := &boolquery.Or{
		Left:  &boolquery.And{Left: &boolquery.Word{Token: "a"}, Right: &boolquery.Word{Token: "b"}},
		Right: &boolquery.Not{Operand: &boolquery.Word{Token: "c"}},
	}
	require.True(t, n.Equal(expected))
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	n, err := boolquery.Parse("a and (b or c)")
	require.NoError(t, err)

	expected := &boolquery.And{
		Left:  &boolquery.Word{Token: "a"},
		Right: &boolquery.Or{Left: &boolquery.Word{Token: "b"}, Right: &boolquery.Word{Token: "c"}},
	}
	require.True(t, n.Equal(expected))
}

func TestParseEmptyInputIsEmptyNode(t *testing.T) {
	n, err := boolquery.Parse("   ")
	require.NoError(t, err)
	require.True(t, boolquery.IsEmpty(n))
}

func TestParseUnmatchedParenErrors(t *testing.T) {
	_, err := boolquery.Parse("(a and b")
	require.Error(t, err)
}

func TestParseDanglingOperatorErrors(t *testing.T) {
	_, err := boolquery.Parse("a and")
	require.Error(t, err)
}

func TestParseErrorCarriesRejectedTokenPosition(t *testing.T) {
	_, err := boolquery.Parse("a and )")
	require.Error(t, err)
	require.True(t, sql.ErrParseError.Is(err))
	require.Contains(t, err.Error(), "position 6")
}

func TestParseTrailingTokenErrorPositionsAtTheTrailer(t *testing.T) {
	_, err := boolquery.Parse("a b")
	require.Error(t, err)
	require.True(t, sql.ErrParseError.Is(err))
	require.Contains(t, err.Error(), "position 2")
}

func TestAndEqualIsCommutative(t *testing.T) {
	a := &boolquery.And{Left: &boolquery.Word{Token: "x"}, Right: &boolquery.Word{Token: "y"}}
	b := &boolquery.And{Left: &boolquery.Word{Token: "y"}, Right: &boolquery.Word{Token: "x"}}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestOrEqualIsCommutative(t *testing.T) {
	a := &boolquery.Or{Left: &boolquery.Word{Token: "x"}, Right: &boolquery.Word{Token: "y"}}
	b := &boolquery.Or{Left: &boolquery.Word{Token: "y"}, Right: &boolquery.Word{Token: "x"}}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestDifferentWordsAreNotEqual(t *testing.T) {
	a := &boolquery.Word{Token: "x"}
	b := &boolquery.Word{Token: "y"}
	require.False(t, a.Equal(b))
}
