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

// Package plan lowers a simplified boolquery.Node into a physical
// plan over set operations (spec §4.J): sequential scans, index
// scans, and set intersection/union/difference.
package plan

import "github.com/PrytkovD/oip/boolquery"

// Node is a physical plan node.
type Node interface {
	isPlanNode()
}

// SequentialScan yields every indexed page URL.
type SequentialScan struct{}

// IndexScan yields the page URLs for a single indexed word.
type IndexScan struct {
	Value string
}

// Intersect yields the set intersection of Left and Right.
type Intersect struct {
	Left, Right Node
}

// Union yields the set union of Left and Right.
type Union struct {
	Left, Right Node
}

// Difference yields Left minus Right.
type Difference struct {
	Left, Right Node
}

// Noop yields the empty set.
type Noop struct{}

func (SequentialScan) isPlanNode() {}
func (IndexScan) isPlanNode()      {}
func (Intersect) isPlanNode()      {}
func (Union) isPlanNode()          {}
func (Difference) isPlanNode()     {}
func (Noop) isPlanNode()           {}

// Plan lowers a boolquery.Node into a Node tree.
//
//   - Word      -> IndexScan
//   - Or        -> Union
//   - Not       -> Difference(SequentialScan, plan(operand))
//   - Empty     -> Noop
//   - And where neither side is Not, or both sides are Not ->
//     Intersect(plan(lhs), plan(rhs)). The both-Not case is left as
//     an Intersect of two Differences rather than lowered through De
//     Morgan into a Union — the simplifier is responsible for any De
//     Morgan rewriting before a tree reaches the planner.
//   - And where exactly one side is Not -> Difference(plan(other
//     side), plan(negated operand)), skipping the Not lowering that
//     would otherwise produce a redundant double Difference.
func Plan(n boolquery.Node) Node {
	switch t := n.(type) {
	case *boolquery.Word:
		return IndexScan{Value: t.Token}
	case *boolquery.Or:
		return Union{Left: Plan(t.Left), Right: Plan(t.Right)}
	case *boolquery.Not:
		return Difference{Left: SequentialScan{}, Right: Plan(t.Operand)}
	case *boolquery.And:
		lhsNot, lhsIsNot := t.Left.(*boolquery.Not)
		rhsNot, rhsIsNot := t.Right.(*boolquery.Not)
		switch {
		case lhsIsNot && !rhsIsNot:
			return Difference{Left: Plan(t.Right), Right: Plan(lhsNot.Operand)}
		case rhsIsNot && !lhsIsNot:
			return Difference{Left: Plan(t.Left), Right: Plan(rhsNot.Operand)}
		default:
			return Intersect{Left: Plan(t.Left), Right: Plan(t.Right)}
		}
	default:
		return Noop{}
	}
}
