package parse

import "github.com/cloudcmds/parsekit/ast"

// NodeProd runs Inner; on success it wraps Inner's produced children in a
// single ast.Node of Kind spanning from the start position's byte offset to
// the end position's byte offset. This is the spec's "Node" combinator,
// renamed here to avoid colliding with ast.Node.
type NodeProd[T comparable, N comparable] struct {
	base
	Inner Production[T, N]
	Kind  N
}

// NewNodeProd builds a NodeProd wrapping inner's output in a node of kind.
func NewNodeProd[T comparable, N comparable](name string, inner Production[T, N], kind N) *NodeProd[T, N] {
	return &NodeProd[T, N]{base: base{name: name}, Inner: inner, Kind: kind}
}

func (p *NodeProd[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		res := p.Inner.Eval(ctx, pos)
		if !res.Matched {
			fail := failed[N](res.DeepestPos, p.name)
			fail.Expected = res.Expected
			return fail
		}
		start := uint32(0)
		if pos < ctx.Len() {
			start = ctx.Pos(pos).Start
		}
		end := start
		if res.EndPos > pos {
			if res.EndPos-1 < ctx.Len() {
				end = ctx.Pos(res.EndPos - 1).End
			} else if ctx.Len() > 0 {
				end = ctx.Pos(ctx.Len() - 1).End
			}
		}
		wrapped := ast.Node[N]{Kind: p.Kind, Start: start, End: end, Children: res.Nodes}
		return matched(res.EndPos, []ast.Node[N]{wrapped})
	})
}
