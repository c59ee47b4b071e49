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

package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PrytkovD/oip/boolquery"
	"github.com/PrytkovD/oip/boolquery/simplify"
)

func TestSimplifyIdempotentAndSameWord(t *testing.T) {
	s := simplify.NewSeeded(1)
	a := &boolquery.Word{Token: "a"}
	n := &boolquery.And{Left: a, Right: &boolquery.Word{Token: "a"}}

	got := s.Simplify(n)
	require.True(t, got.Equal(a), "got %s", got)
}

func TestSimplifyIdentityDropsEmpty(t *testing.T) {
	s := simplify.NewSeeded(2)
	a := &boolquery.Word{Token: "a"}
	n := &boolquery.Or{Left: boolquery.Empty, Right: a}

	got := s.Simplify(n)
	require.True(t, got.Equal(a), "got %s", got)
}

func TestSimplifyDominationCollapsesToEmpty(t *testing.T) {
	s := simplify.NewSeeded(3)
	n := &boolquery.And{Left: boolquery.Empty, Right: &boolquery.Word{Token: "a"}}

	got := s.Simplify(n)
	require.True(t, boolquery.IsEmpty(got), "got %s", got)
}

func TestSimplifyComplementOnAndCollapsesToEmpty(t *testing.T) {
	s := simplify.NewSeeded(4)
	a := &boolquery.Word{Token: "a"}
	n := &boolquery.And{Left: a, Right: &boolquery.Not{Operand: &boolquery.Word{Token: "a"}}}

	got := s.Simplify(n)
	require.True(t, boolquery.IsEmpty(got), "got %s", got)
}

func TestSimplifyInvolutionCancelsDoubleNegation(t *testing.T) {
	s := simplify.NewSeeded(5)
	a := &boolquery.Word{Token: "a"}
	n := &boolquery.Not{Operand: &boolquery.Not{Operand: a}}

	got := s.Simplify(n)
	require.True(t, got.Equal(a), "got %s", got)
}

func TestSimplifyAbsorption(t *testing.T) {
	s := simplify.NewSeeded(6)
	a := &boolquery.Word{Token: "a"}
	b := &boolquery.Word{Token: "b"}
	n := &boolquery.And{Left: a, Right: &boolquery.Or{Left: a, Right: b}}

	got := s.Simplify(n)
	require.True(t, got.Equal(a), "got %s", got)
}

func TestSimplifyIsDeterministicForFixedSeed(t *testing.T) {
	a := &boolquery.Word{Token: "a"}
	b := &boolquery.Word{Token: "b"}
	n := &boolquery.And{Left: &boolquery.Or{Left: a, Right: b}, Right: &boolquery.Or{Left: a, Right: &boolquery.Not{Operand: b}}}

	got1 := simplify.NewSeeded(42).Simplify(n)
	got2 := simplify.NewSeeded(42).Simplify(n)
	require.Equal(t, got1.String(), got2.String())
}

func TestSimplifyReductionOnAndOfOrs(t *testing.T) {
	s := simplify.NewSeeded(7)
	a := &boolquery.Word{Token: "a"}
	b := &boolquery.Word{Token: "b"}
	n := &boolquery.And{
		Left:  &boolquery.Or{Left: a, Right: b},
		Right: &boolquery.Or{Left: a, Right: &boolquery.Not{Operand: b}},
	}

	got := s.Simplify(n)
	require.True(t, got.Equal(a), "got %s", got)
}
