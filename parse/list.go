package parse

import "github.com/cloudcmds/parsekit/ast"

// List repeats Inner greedily from the current position, stopping when
// Inner fails or an iteration consumes zero tokens (which would otherwise
// loop forever — see the design notes on List's zero-width-inner case).
// At least MinCount successful iterations are required.
type List[T comparable, N comparable] struct {
	base
	Inner    Production[T, N]
	MinCount int
}

// NewList builds a List repeating inner, requiring at least minCount
// successful iterations (0 means the list may be empty).
func NewList[T comparable, N comparable](name string, inner Production[T, N], minCount int) *List[T, N] {
	return &List[T, N]{base: base{name: name}, Inner: inner, MinCount: minCount}
}

func (p *List[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		var nodes []ast.Node[N]
		current := pos
		count := 0
		var lastFail Outcome[N]
		haveFail := false
		for {
			res := p.Inner.Eval(ctx, current)
			if !res.Matched {
				lastFail, haveFail = res, true
				break
			}
			if res.EndPos == current {
				// Zero-consumption iteration: stop immediately rather than
				// looping forever.
				break
			}
			nodes = append(nodes, res.Nodes...)
			current = res.EndPos
			count++
		}
		if count < p.MinCount {
			pos := pos
			expected := map[string]struct{}{p.name: {}}
			if haveFail {
				pos = lastFail.DeepestPos
				expected = lastFail.Expected
			}
			return Outcome[N]{DeepestPos: pos, Expected: expected}
		}
		return matched(current, nodes)
	})
}

// SeparatedList alternates Element and Separator, starting with Element. At
// least one Element is required; an empty list is not a match.
//
// When Inclusive is true, a trailing separator is not allowed: if, after
// consuming a separator, the following Element fails, the whole list
// rewinds to just after the last successful Element rather than failing
// outright. When Inclusive is false, a trailing separator is permitted and
// simply becomes part of the consumed range without contributing a node.
type SeparatedList[T comparable, N comparable] struct {
	base
	Element   Production[T, N]
	Separator Production[T, N]
	Inclusive bool
}

// NewSeparatedList builds a SeparatedList of element, divided by separator.
func NewSeparatedList[T comparable, N comparable](name string, element, separator Production[T, N], inclusive bool) *SeparatedList[T, N] {
	return &SeparatedList[T, N]{base: base{name: name}, Element: element, Separator: separator, Inclusive: inclusive}
}

func (p *SeparatedList[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		first := p.Element.Eval(ctx, pos)
		if !first.Matched {
			fail := failed[N](first.DeepestPos, p.name)
			fail.Expected = first.Expected
			return fail
		}
		nodes := append([]ast.Node[N]{}, first.Nodes...)
		current := first.EndPos
		for {
			sep := p.Separator.Eval(ctx, current)
			if !sep.Matched {
				break
			}
			afterSep := sep.EndPos
			elem := p.Element.Eval(ctx, afterSep)
			if !elem.Matched {
				if p.Inclusive {
					// Rewind: a trailing separator is not allowed to end
					// the list.
					break
				}
				// Non-inclusive: a trailing separator is fine, consume it
				// and stop.
				current = afterSep
				break
			}
			nodes = append(nodes, elem.Nodes...)
			current = elem.EndPos
		}
		return matched(current, nodes)
	})
}
