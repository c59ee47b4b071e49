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

package boolquery

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Node is a Boolean query AST node: Word, And, Or, Not or Empty.
// And/Or equality and hashing are commutative (order-independent),
// since the algebra this AST represents treats them as such.
type Node interface {
	fmt.Stringer
	Equal(other Node) bool
	Hash() uint64
}

const (
	saltAnd uint64 = 0x9e3779b97f4a7c15
	saltOr  uint64 = 0xc2b2ae3d27d4eb4f
	saltNot uint64 = 0x165667b19e3779f9
)

// Word is a single indexed term.
type Word struct {
	Token string
}

func (w *Word) String() string { return w.Token }
func (w *Word) Hash() uint64   { return xxhash.Sum64String("word:" + w.Token) }
func (w *Word) Equal(other Node) bool {
	o, ok := other.(*Word)
	return ok && o.Token == w.Token
}

// And is a commutative conjunction of Left and Right.
type And struct {
	Left, Right Node
}

func (a *And) String() string { return fmt.Sprintf("(%s and %s)", a.Left, a.Right) }
func (a *And) Hash() uint64   { return a.Left.Hash() ^ a.Right.Hash() ^ saltAnd }
func (a *And) Equal(other Node) bool {
	o, ok := other.(*And)
	if !ok {
		return false
	}
	return (a.Left.Equal(o.Left) && a.Right.Equal(o.Right)) ||
		(a.Left.Equal(o.Right) && a.Right.Equal(o.Left))
}

// Or is a commutative disjunction of Left and Right.
type Or struct {
	Left, Right Node
}

func (o *Or) String() string { return fmt.Sprintf("(%s or %s)", o.Left, o.Right) }
func (o *Or) Hash() uint64   { return o.Left.Hash() ^ o.Right.Hash() ^ saltOr }
func (o *Or) Equal(other Node) bool {
	t, ok := other.(*Or)
	if !ok {
		return false
	}
	return (o.Left.Equal(t.Left) && o.Right.Equal(t.Right)) ||
		(o.Left.Equal(t.Right) && o.Right.Equal(t.Left))
}

// Not is a negation of Operand.
type Not struct {
	Operand Node
}

func (n *Not) String() string { return fmt.Sprintf("(not %s)", n.Operand) }
func (n *Not) Hash() uint64   { return n.Operand.Hash() ^ saltNot }
func (n *Not) Equal(other Node) bool {
	o, ok := other.(*Not)
	return ok && n.Operand.Equal(o.Operand)
}

// emptyNode is the singleton Empty node: a query that matches
// nothing, the result of simplifying a contradiction like "a and not
// a".
type emptyNode struct{}

// Empty is the singleton Empty node.
var Empty Node = emptyNode{}

func (emptyNode) String() string { return "<empty>" }
func (emptyNode) Hash() uint64   { return 0 }
func (emptyNode) Equal(other Node) bool {
	_, ok := other.(emptyNode)
	return ok
}

// IsEmpty reports whether n is the Empty singleton.
func IsEmpty(n Node) bool {
	_, ok := n.(emptyNode)
	return ok
}
