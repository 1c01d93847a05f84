package parse

import "github.com/cloudcmds/parsekit/ast"

// SuffixOption pairs a suffix production with the node kind Suffixes should
// wrap the head+suffix span in when that suffix matches.
type SuffixOption[T comparable, N comparable] struct {
	Suffix   Production[T, N]
	WrapKind N
}

// Suffixes parses Head once, then tries each suffix option in order. On the
// first suffix match it wraps the concatenation of head's and the suffix's
// output in a single ASTNode of WrapKind spanning both. If no suffix
// matches: when Optional is true, Head's output is returned unwrapped; when
// Optional is false, the deepest suffix failure is returned.
//
// This is how left-recursive-looking constructs (postfix call/index chains,
// binary operator chains written suffix-first) are expressed without actual
// left recursion: the head is parsed once, then suffixes attach iteratively
// by each suffix option itself being built from a Suffixes over a shorter
// head — see examples/jsgrammar for the worked binary-expression case.
type Suffixes[T comparable, N comparable] struct {
	base
	Head     Production[T, N]
	Optional bool
	Options  []SuffixOption[T, N]
}

// NewSuffixes builds a Suffixes combinator.
func NewSuffixes[T comparable, N comparable](name string, head Production[T, N], optional bool, options ...SuffixOption[T, N]) *Suffixes[T, N] {
	return &Suffixes[T, N]{base: base{name: name}, Head: head, Optional: optional, Options: options}
}

func (p *Suffixes[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		head := p.Head.Eval(ctx, pos)
		if !head.Matched {
			fail := failed[N](head.DeepestPos, p.name)
			fail.Expected = head.Expected
			return fail
		}
		var worst Outcome[N]
		haveWorst := false
		for _, opt := range p.Options {
			res := opt.Suffix.Eval(ctx, head.EndPos)
			if res.Matched {
				nodes := append(append([]ast.Node[N]{}, head.Nodes...), res.Nodes...)
				startTok := ctx.Pos(pos)
				var endOffset uint32
				if res.EndPos > pos && res.EndPos-1 < ctx.Len() {
					endOffset = ctx.Pos(res.EndPos - 1).End
				} else {
					endOffset = startTok.Start
				}
				wrapped := ast.Node[N]{Kind: opt.WrapKind, Start: startTok.Start, End: endOffset, Children: nodes}
				return matched(res.EndPos, []ast.Node[N]{wrapped})
			}
			if haveWorst {
				worst = deeper(worst, res)
			} else {
				worst = res
				haveWorst = true
			}
		}
		if p.Optional {
			return head
		}
		pos := pos
		expected := map[string]struct{}{p.name: {}}
		if haveWorst {
			pos = worst.DeepestPos
			expected = worst.Expected
		}
		return Outcome[N]{DeepestPos: pos, Expected: expected}
	})
}
