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

package simplify

import (
	"math/rand"
	"sort"

	"github.com/sean-/seed"

	"github.com/PrytkovD/oip/boolquery"
)

// treeSize counts the nodes of n (Word/Empty count as 1, And/Or count
// their children plus 1, Not counts its child plus 1).
func treeSize(n boolquery.Node) int {
	switch t := n.(type) {
	case *boolquery.Word:
		return 1
	case *boolquery.And:
		return treeSize(t.Left) + treeSize(t.Right) + 1
	case *boolquery.Or:
		return treeSize(t.Left) + treeSize(t.Right) + 1
	case *boolquery.Not:
		return treeSize(t.Operand) + 1
	default:
		return 1
	}
}

// dedup removes nodes equal (under Node.Equal) to an earlier node in
// the slice, using Node.Hash() to bucket candidates so the comparison
// stays near-linear instead of O(n^2).
func dedup(nodes []boolquery.Node) []boolquery.Node {
	buckets := make(map[uint64][]boolquery.Node)
	out := make([]boolquery.Node, 0, len(nodes))
	for _, n := range nodes {
		h := n.Hash()
		seen := false
		for _, existing := range buckets[h] {
			if existing.Equal(n) {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		buckets[h] = append(buckets[h], n)
		out = append(out, n)
	}
	return out
}

// Simplifier runs the bounded search over reordering and
// simplification laws described in spec §4.I.
type Simplifier struct {
	rng         *rand.Rand
	maxAttempts int
}

// New builds a Simplifier seeded from OS entropy, suitable for
// production use where determinism across runs isn't required.
func New() *Simplifier {
	seed.MustInit()
	return &Simplifier{rng: rand.New(rand.NewSource(rand.Int63())), maxAttempts: 1}
}

// NewSeeded builds a Simplifier with a fixed seed, for deterministic
// tests.
func NewSeeded(seedValue int64) *Simplifier {
	return &Simplifier{rng: rand.New(rand.NewSource(seedValue)), maxAttempts: 1}
}

// Simplify runs the iterative bounded search: each round reorders
// every tree currently in the frontier in every way the reordering
// laws can reach in `iterations` coin flips, then simplifies each
// reordered tree to a fixed point (or `iterations` attempts,
// whichever comes first), keeps the smallest `iterations^2` distinct
// results, and stops once the best tree stops improving for
// maxAttempts rounds in a row or the frontier collapses to one tree.
func (s *Simplifier) Simplify(n boolquery.Node) boolquery.Node {
	size := treeSize(n)
	if size == 0 {
		return n
	}

	iterations := size
	maxFrontier := iterations * iterations

	frontier := []boolquery.Node{n}
	best := n
	attempts := 0

	for i := 0; i < size; i++ {
		var reordered []boolquery.Node
		for _, t := range frontier {
			for k := 0; k < iterations; k++ {
				reordered = append(reordered, applyReorderingRules(t, s.rng))
			}
		}
		reordered = dedup(reordered)

		simplified := make([]boolquery.Node, 0, len(reordered))
		for _, t := range reordered {
			cur := t
			for k := 0; k < iterations; k++ {
				before := cur
				cur = applySimplificationRules(cur)
				if cur.Equal(before) {
					break
				}
			}
			simplified = append(simplified, cur)
		}
		distinct := dedup(simplified)
		sort.Slice(distinct, func(a, b int) bool {
			return treeSize(distinct[a]) < treeSize(distinct[b])
		})
		if len(distinct) > maxFrontier {
			distinct = distinct[:maxFrontier]
		}
		frontier = distinct
		bestNew := frontier[0]

		if bestNew.Equal(best) {
			attempts++
			if attempts == s.maxAttempts {
				return best
			}
		}
		best = bestNew

		if len(distinct) == 1 {
			break
		}
	}

	return best
}

var defaultSimplifier = New()

// Simplify runs the default, OS-entropy-seeded Simplifier.
func Simplify(n boolquery.Node) boolquery.Node {
	return defaultSimplifier.Simplify(n)
}
