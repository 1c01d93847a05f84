package parse

import "github.com/cloudcmds/parsekit/ast"

// TokenField matches a single token of the given kind. On success it
// advances one position; if NodeKind is non-nil it emits a single leaf
// ASTNode spanning the consumed token's byte range.
type TokenField[T comparable, N comparable] struct {
	base
	Kind     T
	NodeKind *N
}

// NewTokenField builds a TokenField that matches kind and emits nothing.
func NewTokenField[T comparable, N comparable](name string, kind T) *TokenField[T, N] {
	return &TokenField[T, N]{base: base{name: name}, Kind: kind}
}

// NewTokenFieldNode builds a TokenField that, on match, emits a leaf node of
// nodeKind spanning the consumed token.
func NewTokenFieldNode[T comparable, N comparable](name string, kind T, nodeKind N) *TokenField[T, N] {
	return &TokenField[T, N]{base: base{name: name}, Kind: kind, NodeKind: &nodeKind}
}

func (p *TokenField[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		if pos >= ctx.Len() {
			return failed[N](pos, p.name)
		}
		tok := ctx.Pos(pos)
		if tok.Kind != p.Kind {
			return failed[N](pos, p.name)
		}
		var nodes []ast.Node[N]
		if p.NodeKind != nil {
			nodes = []ast.Node[N]{{Kind: *p.NodeKind, Start: tok.Start, End: tok.End}}
		}
		return matched(pos+1, nodes)
	})
}

// TokenFieldSet matches a token whose kind is a key of Kinds, emitting a
// leaf node tagged with the associated node kind. Used for operator sets
// that attach semantic tags (e.g. every comparison operator becomes a
// Comparator node, tagged by which operator it was).
type TokenFieldSet[T comparable, N comparable] struct {
	base
	Kinds map[T]N
}

// NewTokenFieldSet builds a TokenFieldSet from a token-kind -> node-kind map.
func NewTokenFieldSet[T comparable, N comparable](name string, kinds map[T]N) *TokenFieldSet[T, N] {
	return &TokenFieldSet[T, N]{base: base{name: name}, Kinds: kinds}
}

func (p *TokenFieldSet[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		if pos >= ctx.Len() {
			return failed[N](pos, p.name)
		}
		tok := ctx.Pos(pos)
		nodeKind, ok := p.Kinds[tok.Kind]
		if !ok {
			return failed[N](pos, p.name)
		}
		return matched(pos+1, []ast.Node[N]{{Kind: nodeKind, Start: tok.Start, End: tok.End}})
	})
}

// EOFProd matches iff the current token is the eof sentinel. It does not
// advance and emits nothing.
type EOFProd[T comparable, N comparable] struct {
	base
	EOF T
}

// NewEOFProd builds an EOFProd recognizing eof as the end-of-stream kind.
func NewEOFProd[T comparable, N comparable](eof T) *EOFProd[T, N] {
	return &EOFProd[T, N]{base: base{name: "EOF"}, EOF: eof}
}

func (p *EOFProd[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		if pos >= ctx.Len() || ctx.Pos(pos).Kind != p.EOF {
			return failed[N](pos, p.name)
		}
		return matched[N](pos, nil)
	})
}
