package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// the children of the visited node are skipped. Otherwise the returned
// Visitor is used to visit each child.
type Visitor[N comparable] interface {
	Visit(node Node[N]) (w Visitor[N])
}

// Walk traverses an AST in depth-first order starting at node, the generic
// equivalent of the teacher's per-node-type switch (our nodes are uniform,
// so there is only one case: recurse into Children).
func Walk[N comparable](v Visitor[N], node Node[N]) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range node.Children {
		Walk(v, child)
	}
}

// VisitorFunc adapts a plain function to the Visitor interface; returning
// nil from fn stops descent into that node's children.
type VisitorFunc[N comparable] func(node Node[N]) Visitor[N]

func (f VisitorFunc[N]) Visit(node Node[N]) Visitor[N] {
	return f(node)
}

// Inspect calls fn for every node in the tree in depth-first order; fn
// returns false to skip that node's children.
func Inspect[N comparable](node Node[N], fn func(Node[N]) bool) {
	Walk(inspector[N](fn), node)
}

type inspector[N comparable] func(Node[N]) bool

func (f inspector[N]) Visit(node Node[N]) Visitor[N] {
	if f(node) {
		return f
	}
	return nil
}
