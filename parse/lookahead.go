package parse

import "github.com/cloudcmds/parsekit/ast"

// Lookahead evaluates Inner and discards its position advance: on success
// it contributes, at most, a single zero-width ASTNode of NodeKind at the
// current position and never consumes a token. On failure it propagates the
// failure untouched.
type Lookahead[T comparable, N comparable] struct {
	base
	Inner    Production[T, N]
	NodeKind *N
}

// NewLookahead builds a Lookahead over inner, emitting nothing on success.
func NewLookahead[T comparable, N comparable](name string, inner Production[T, N]) *Lookahead[T, N] {
	return &Lookahead[T, N]{base: base{name: name}, Inner: inner}
}

// NewLookaheadNode builds a Lookahead that emits a zero-width node of
// nodeKind at the lookahead position on success.
func NewLookaheadNode[T comparable, N comparable](name string, inner Production[T, N], nodeKind N) *Lookahead[T, N] {
	return &Lookahead[T, N]{base: base{name: name}, Inner: inner, NodeKind: &nodeKind}
}

func (p *Lookahead[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		res := p.Inner.Eval(ctx, pos)
		if !res.Matched {
			fail := failed[N](res.DeepestPos, p.name)
			fail.Expected = res.Expected
			return fail
		}
		var nodes []ast.Node[N]
		if p.NodeKind != nil {
			offset := uint32(0)
			if pos < ctx.Len() {
				offset = ctx.Pos(pos).Start
			}
			nodes = []ast.Node[N]{{Kind: *p.NodeKind, Start: offset, End: offset}}
		}
		return matched(pos, nodes)
	})
}
