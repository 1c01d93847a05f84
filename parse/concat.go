package parse

import "github.com/cloudcmds/parsekit/ast"

// Concat matches iff every child matches in order, starting each child from
// the cumulative position reached by the previous one. It is transparent:
// its output is the concatenation of its children's node sequences.
//
// Concat supports deferred initialization so that cyclic grammars (e.g.
// expression -> parenthesized-expression -> expression) can be built:
// construct one with NewDeferredConcat, share the handle into whatever
// parent productions need it, and assign its children afterward with
// SetChildren. Evaluating a Concat before SetChildren is called is a
// ConfigurationError (UninitializedProduction), not a normal failure.
type Concat[T comparable, N comparable] struct {
	base
	children    []Production[T, N]
	initialized bool
}

// NewConcat builds an already-initialized Concat from children.
func NewConcat[T comparable, N comparable](name string, children ...Production[T, N]) *Concat[T, N] {
	return &Concat[T, N]{base: base{name: name}, children: children, initialized: true}
}

// NewDeferredConcat builds an uninitialized Concat. Call SetChildren before
// it is ever evaluated.
func NewDeferredConcat[T comparable, N comparable](name string) *Concat[T, N] {
	return &Concat[T, N]{base: base{name: name}}
}

// SetChildren assigns this Concat's children, completing a deferred
// initialization. Safe to call only once, before any parse begins — per
// §3/§5 a grammar DAG is read-only once parsing starts.
func (p *Concat[T, N]) SetChildren(children ...Production[T, N]) {
	p.children = children
	p.initialized = true
}

func (p *Concat[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		if !p.initialized {
			panic(fault{err: uninitializedProductionError(p.name)})
		}
		var nodes []ast.Node[N]
		current := pos
		var worst Outcome[N]
		haveWorst := false
		for _, child := range p.children {
			res := child.Eval(ctx, current)
			if haveWorst {
				worst = deeper(worst, res)
			} else {
				worst = res
				haveWorst = true
			}
			if !res.Matched {
				fail := failed[N](worst.DeepestPos, p.name)
				fail.Expected = worst.Expected
				return fail
			}
			nodes = append(nodes, res.Nodes...)
			current = res.EndPos
		}
		return matched(current, nodes)
	})
}
