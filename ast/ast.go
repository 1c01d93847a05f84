// Package ast defines the generic abstract syntax tree node produced by the
// parse package: a node kind paired with a byte span and an ordered
// sequence of children.
package ast

// Node is a single AST node, parameterized over the user-supplied node kind
// N. Internal nodes may have an empty Children slice; leaf nodes
// correspond to a single consumed token.
//
// Invariants (maintained by the combinators that build Node values and not
// checked by Node itself): Start <= End; a node's span contains every child's span;
// children are ordered by non-decreasing Start, and adjacent children never
// overlap.
type Node[N comparable] struct {
	Kind     N
	Start    uint32
	End      uint32
	Children []Node[N]
}

// IsLeaf reports whether this node has no children.
func (n Node[N]) IsLeaf() bool {
	return len(n.Children) == 0
}

// Null reports whether Kind equals the zero value of N. Grammars are
// expected to reserve the zero value of N as the "no kind" sentinel, the Go
// equivalent of the spec's N::null().
func (n Node[N]) Null() bool {
	var zero N
	return n.Kind == zero
}
