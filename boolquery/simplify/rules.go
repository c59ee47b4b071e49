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

// Package simplify implements the algebraic simplification laws of
// spec §4.I over boolquery ASTs: eight deterministic simplification
// laws (identity, domination, idempotent, complement, involution,
// distributive, absorption, reduction) and three probabilistic
// reordering laws (commutative, associative, De Morgan) that an
// iterative bounded search composes to shrink a query tree.
//
// Each law recurses into a node's children only where the original
// algorithm does: a law that overrides handling for And but not Or
// leaves Or subtrees untouched on that pass, by design — reordering
// passes (which do recurse through every connective) are what
// eventually expose those subtrees to the laws that skip them.
package simplify

import (
	"math/rand"

	"github.com/PrytkovD/oip/boolquery"
)

// rule is a single algebraic law: given a node, it returns an
// equivalent (deterministic laws) or possibly-reordered (randomized
// laws) node. Deterministic laws ignore rng.
type rule func(n boolquery.Node, rng *rand.Rand) boolquery.Node

func isNegationPair(a, b boolquery.Node) bool {
	if n, ok := a.(*boolquery.Not); ok && n.Operand.Equal(b) {
		return true
	}
	if n, ok := b.(*boolquery.Not); ok && n.Operand.Equal(a) {
		return true
	}
	return false
}

// identityLaw: 0 + A = A, A + 0 = A. Only Or is overridden.
func identityLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	or, ok := n.(*boolquery.Or)
	if !ok {
		return n
	}
	lhs := identityLaw(or.Left, nil)
	rhs := identityLaw(or.Right, nil)
	if boolquery.IsEmpty(lhs) {
		return rhs
	}
	if boolquery.IsEmpty(rhs) {
		return lhs
	}
	return &boolquery.Or{Left: lhs, Right: rhs}
}

// dominationLaw: A * 0 = 0, 0 * A = 0. Only And is overridden.
func dominationLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	and, ok := n.(*boolquery.And)
	if !ok {
		return n
	}
	lhs := dominationLaw(and.Left, nil)
	rhs := dominationLaw(and.Right, nil)
	if boolquery.IsEmpty(lhs) || boolquery.IsEmpty(rhs) {
		return boolquery.Empty
	}
	return &boolquery.And{Left: lhs, Right: rhs}
}

// idempotentLaw: A * A = A, A + A = A.
func idempotentLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := idempotentLaw(t.Left, nil)
		rhs := idempotentLaw(t.Right, nil)
		if lhs.Equal(rhs) {
			return lhs
		}
		return &boolquery.And{Left: lhs, Right: rhs}
	case *boolquery.Or:
		lhs := idempotentLaw(t.Left, nil)
		rhs := idempotentLaw(t.Right, nil)
		if lhs.Equal(rhs) {
			return lhs
		}
		return &boolquery.Or{Left: lhs, Right: rhs}
	default:
		return n
	}
}

// complementLaw: !A * A = 0, A * !A = 0, !A + A = A, A + !A = A.
func complementLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := complementLaw(t.Left, nil)
		rhs := complementLaw(t.Right, nil)
		if ln, ok := lhs.(*boolquery.Not); ok && ln.Operand.Equal(rhs) {
			return boolquery.Empty
		}
		if rn, ok := rhs.(*boolquery.Not); ok && rn.Operand.Equal(lhs) {
			return boolquery.Empty
		}
		return &boolquery.And{Left: lhs, Right: rhs}
	case *boolquery.Or:
		lhs := complementLaw(t.Left, nil)
		rhs := complementLaw(t.Right, nil)
		if ln, ok := lhs.(*boolquery.Not); ok && ln.Operand.Equal(rhs) {
			return rhs
		}
		if rn, ok := rhs.(*boolquery.Not); ok && rn.Operand.Equal(lhs) {
			return lhs
		}
		return &boolquery.Or{Left: lhs, Right: rhs}
	default:
		return n
	}
}

// involutionLaw: !!A = A, and !Empty = Empty (this algebra has no
// universal/top element, so negating Empty stays Empty). Only Not is
// overridden.
func involutionLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	not, ok := n.(*boolquery.Not)
	if !ok {
		return n
	}
	child := involutionLaw(not.Operand, nil)
	if boolquery.IsEmpty(child) {
		return boolquery.Empty
	}
	if inner, ok := child.(*boolquery.Not); ok {
		return inner.Operand
	}
	return &boolquery.Not{Operand: child}
}

// distributiveLaw factors a common term out of a same-shaped pair:
//
//	(A*B) * (A*C) = A * (B*C)   (and the three left/right variants)
//	(A+B) * (A+C) = A + (B*C)
//	(A*B) + (A*C) = A * (B+C)
//	(A+B) + (A+C) = A + (B+C)
func distributiveLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := distributiveLaw(t.Left, nil)
		rhs := distributiveLaw(t.Right, nil)
		if lAnd, ok := lhs.(*boolquery.And); ok {
			if rAnd, ok := rhs.(*boolquery.And); ok {
				switch {
				case lAnd.Left.Equal(rAnd.Left):
					return &boolquery.And{Left: lAnd.Left, Right: &boolquery.And{Left: lAnd.Right, Right: rAnd.Right}}
				case lAnd.Left.Equal(rAnd.Right):
					return &boolquery.And{Left: lAnd.Left, Right: &boolquery.And{Left: lAnd.Right, Right: rAnd.Left}}
				case lAnd.Right.Equal(rAnd.Left):
					return &boolquery.And{Left: lAnd.Right, Right: &boolquery.And{Left: lAnd.Left, Right: rAnd.Right}}
				case lAnd.Right.Equal(rAnd.Right):
					return &boolquery.And{Left: lAnd.Right, Right: &boolquery.And{Left: lAnd.Left, Right: rAnd.Left}}
				}
			}
		}
		if lOr, ok := lhs.(*boolquery.Or); ok {
			if rOr, ok := rhs.(*boolquery.Or); ok {
				switch {
				case lOr.Left.Equal(rOr.Left):
					return &boolquery.Or{Left: lOr.Left, Right: &boolquery.And{Left: lOr.Right, Right: rOr.Right}}
				case lOr.Left.Equal(rOr.Right):
					return &boolquery.Or{Left: lOr.Left, Right: &boolquery.And{Left: lOr.Right, Right: rOr.Left}}
				case lOr.Right.Equal(rOr.Left):
					return &boolquery.Or{Left: lOr.Right, Right: &boolquery.And{Left: lOr.Left, Right: rOr.Right}}
				case lOr.Right.Equal(rOr.Right):
					return &boolquery.Or{Left: lOr.Right, Right: &boolquery.And{Left: lOr.Left, Right: rOr.Left}}
				}
			}
		}
		return &boolquery.And{Left: lhs, Right: rhs}
	case *boolquery.Or:
		lhs := distributiveLaw(t.Left, nil)
		rhs := distributiveLaw(t.Right, nil)
		if lAnd, ok := lhs.(*boolquery.And); ok {
			if rAnd, ok := rhs.(*boolquery.And); ok {
				switch {
				case lAnd.Left.Equal(rAnd.Left):
					return &boolquery.And{Left: lAnd.Left, Right: &boolquery.Or{Left: lAnd.Right, Right: rAnd.Right}}
				case lAnd.Left.Equal(rAnd.Right):
					return &boolquery.And{Left: lAnd.Left, Right: &boolquery.Or{Left: lAnd.Right, Right: rAnd.Left}}
				case lAnd.Right.Equal(rAnd.Left):
					return &boolquery.And{Left: lAnd.Right, Right: &boolquery.Or{Left: lAnd.Left, Right: rAnd.Right}}
				case lAnd.Right.Equal(rAnd.Right):
					return &boolquery.And{Left: lAnd.Right, Right: &boolquery.Or{Left: lAnd.Left, Right: rAnd.Left}}
				}
			}
		}
		// The Python original checks isinstance(lhs, AndQueryNode) again
		// here, a dead branch that never matches an Or/Or pair. Fixed to
		// check Or/Or, which is what the comments above this block
		// describe.
		if lOr, ok := lhs.(*boolquery.Or); ok {
			if rOr, ok := rhs.(*boolquery.Or); ok {
				switch {
				case lOr.Left.Equal(rOr.Left):
					return &boolquery.Or{Left: lOr.Left, Right: &boolquery.Or{Left: lOr.Right, Right: rOr.Right}}
				case lOr.Left.Equal(rOr.Right):
					return &boolquery.Or{Left: lOr.Left, Right: &boolquery.Or{Left: lOr.Right, Right: rOr.Left}}
				case lOr.Right.Equal(rOr.Left):
					return &boolquery.Or{Left: lOr.Right, Right: &boolquery.Or{Left: lOr.Left, Right: rOr.Right}}
				case lOr.Right.Equal(rOr.Right):
					return &boolquery.Or{Left: lOr.Right, Right: &boolquery.Or{Left: lOr.Left, Right: rOr.Left}}
				}
			}
		}
		return &boolquery.Or{Left: lhs, Right: rhs}
	default:
		return n
	}
}

// absorptionLaw: A * (A + B) = A, A + (A * B) = A.
func absorptionLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := absorptionLaw(t.Left, nil)
		rhs := absorptionLaw(t.Right, nil)
		if rOr, ok := rhs.(*boolquery.Or); ok && (lhs.Equal(rOr.Left) || lhs.Equal(rOr.Right)) {
			return lhs
		}
		if lOr, ok := lhs.(*boolquery.Or); ok && (rhs.Equal(lOr.Left) || rhs.Equal(lOr.Right)) {
			return rhs
		}
		return &boolquery.And{Left: lhs, Right: rhs}
	case *boolquery.Or:
		lhs := absorptionLaw(t.Left, nil)
		rhs := absorptionLaw(t.Right, nil)
		if rAnd, ok := rhs.(*boolquery.And); ok && (lhs.Equal(rAnd.Left) || lhs.Equal(rAnd.Right)) {
			return lhs
		}
		if lAnd, ok := lhs.(*boolquery.And); ok && (rhs.Equal(lAnd.Left) || rhs.Equal(lAnd.Right)) {
			return rhs
		}
		return &boolquery.Or{Left: lhs, Right: rhs}
	default:
		return n
	}
}

// reductionLaw: (A+B) * (A+!B) = A, and its commutations; dually
// (A*B) + (A*!B) = A. The Python original's last branch of each
// visit method duplicates an earlier condition instead of checking
// the fourth combination; fixed here to cover all four.
func reductionLaw(n boolquery.Node, _ *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := reductionLaw(t.Left, nil)
		rhs := reductionLaw(t.Right, nil)
		lOr, lok := lhs.(*boolquery.Or)
		rOr, rok := rhs.(*boolquery.Or)
		if !lok || !rok {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		switch {
		case lOr.Left.Equal(rOr.Left) && isNegationPair(lOr.Right, rOr.Right):
			return lOr.Left
		case lOr.Left.Equal(rOr.Right) && isNegationPair(lOr.Right, rOr.Left):
			return lOr.Left
		case lOr.Right.Equal(rOr.Left) && isNegationPair(lOr.Left, rOr.Right):
			return lOr.Right
		case lOr.Right.Equal(rOr.Right) && isNegationPair(lOr.Left, rOr.Left):
			return lOr.Right
		}
		return &boolquery.And{Left: lhs, Right: rhs}
	case *boolquery.Or:
		lhs := reductionLaw(t.Left, nil)
		rhs := reductionLaw(t.Right, nil)
		lAnd, lok := lhs.(*boolquery.And)
		rAnd, rok := rhs.(*boolquery.And)
		if !lok || !rok {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		switch {
		case lAnd.Left.Equal(rAnd.Left) && isNegationPair(lAnd.Right, rAnd.Right):
			return lAnd.Left
		case lAnd.Left.Equal(rAnd.Right) && isNegationPair(lAnd.Right, rAnd.Left):
			return lAnd.Left
		case lAnd.Right.Equal(rAnd.Left) && isNegationPair(lAnd.Left, rAnd.Right):
			return lAnd.Right
		case lAnd.Right.Equal(rAnd.Right) && isNegationPair(lAnd.Left, rAnd.Left):
			return lAnd.Right
		}
		return &boolquery.Or{Left: lhs, Right: rhs}
	default:
		return n
	}
}

// commutativeLaw: A*B = B*A, A+B = B+A. A reordering law: it flips a
// coin on every node to decide whether to swap, so it contributes
// different orderings across search iterations rather than a single
// canonical one.
func commutativeLaw(n boolquery.Node, rng *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := commutativeLaw(t.Left, rng)
		rhs := commutativeLaw(t.Right, rng)
		if rng.Float64() < 0.5 {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		return &boolquery.And{Left: rhs, Right: lhs}
	case *boolquery.Or:
		lhs := commutativeLaw(t.Left, rng)
		rhs := commutativeLaw(t.Right, rng)
		if rng.Float64() < 0.5 {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		return &boolquery.Or{Left: rhs, Right: lhs}
	default:
		return n
	}
}

// associativeLaw: (A*B)*C = A*(B*C), (A+B)+C = A+(B+C). A reordering
// law; regroups with 50% probability when either side is itself the
// same connective.
func associativeLaw(n boolquery.Node, rng *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := associativeLaw(t.Left, rng)
		rhs := associativeLaw(t.Right, rng)
		lAnd, lok := lhs.(*boolquery.And)
		rAnd, rok := rhs.(*boolquery.And)
		if !lok && !rok {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		if rng.Float64() < 0.5 {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		if lok {
			return &boolquery.And{Left: lAnd.Left, Right: &boolquery.And{Left: lAnd.Right, Right: rhs}}
		}
		return &boolquery.And{Left: &boolquery.And{Left: lhs, Right: rAnd.Left}, Right: rAnd.Right}
	case *boolquery.Or:
		lhs := associativeLaw(t.Left, rng)
		rhs := associativeLaw(t.Right, rng)
		lOr, lok := lhs.(*boolquery.Or)
		rOr, rok := rhs.(*boolquery.Or)
		if !lok && !rok {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		if rng.Float64() < 0.5 {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		if lok {
			return &boolquery.Or{Left: lOr.Left, Right: &boolquery.Or{Left: lOr.Right, Right: rhs}}
		}
		return &boolquery.Or{Left: &boolquery.Or{Left: lhs, Right: rOr.Left}, Right: rOr.Right}
	default:
		return n
	}
}

// deMorgansLaw: !A*!B = !(A+B), !A+!B = !(A*B), and the inverse
// expansions on Not. A reordering law: each direction only fires with
// 50% probability per visited node. The Python original's expansion
// of !(A+B) incorrectly produced another Or instead of an And; fixed
// here.
func deMorgansLaw(n boolquery.Node, rng *rand.Rand) boolquery.Node {
	switch t := n.(type) {
	case *boolquery.And:
		lhs := deMorgansLaw(t.Left, rng)
		rhs := deMorgansLaw(t.Right, rng)
		lNot, lok := lhs.(*boolquery.Not)
		rNot, rok := rhs.(*boolquery.Not)
		if !lok || !rok {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		if rng.Float64() < 0.5 {
			return &boolquery.And{Left: lhs, Right: rhs}
		}
		return &boolquery.Not{Operand: &boolquery.Or{Left: lNot.Operand, Right: rNot.Operand}}
	case *boolquery.Or:
		lhs := deMorgansLaw(t.Left, rng)
		rhs := deMorgansLaw(t.Right, rng)
		lNot, lok := lhs.(*boolquery.Not)
		rNot, rok := rhs.(*boolquery.Not)
		if !lok || !rok {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		if rng.Float64() < 0.5 {
			return &boolquery.Or{Left: lhs, Right: rhs}
		}
		return &boolquery.Not{Operand: &boolquery.And{Left: lNot.Operand, Right: rNot.Operand}}
	case *boolquery.Not:
		child := deMorgansLaw(t.Operand, rng)
		switch c := child.(type) {
		case *boolquery.And:
			if rng.Float64() < 0.5 {
				return &boolquery.Not{Operand: c}
			}
			return &boolquery.Or{Left: &boolquery.Not{Operand: c.Left}, Right: &boolquery.Not{Operand: c.Right}}
		case *boolquery.Or:
			if rng.Float64() < 0.5 {
				return &boolquery.Not{Operand: c}
			}
			return &boolquery.And{Left: &boolquery.Not{Operand: c.Left}, Right: &boolquery.Not{Operand: c.Right}}
		default:
			return &boolquery.Not{Operand: child}
		}
	default:
		return n
	}
}

var simplificationRules = []rule{
	identityLaw,
	dominationLaw,
	idempotentLaw,
	complementLaw,
	involutionLaw,
	distributiveLaw,
	absorptionLaw,
	reductionLaw,
}

var reorderingRules = []rule{
	commutativeLaw,
	associativeLaw,
	deMorgansLaw,
}

func applySimplificationRules(n boolquery.Node) boolquery.Node {
	for _, r := range simplificationRules {
		n = r(n, nil)
	}
	return n
}

func applyReorderingRules(n boolquery.Node, rng *rand.Rand) boolquery.Node {
	for _, r := range reorderingRules {
		n = r(n, rng)
	}
	return n
}
