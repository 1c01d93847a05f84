package parse

// Nullable turns inner into a production that always matches: if inner
// fails, Nullable matches at pos with no nodes and no advance. Used for
// optional whitespace in scopes where the structural filter is disabled.
type Nullable[T comparable, N comparable] struct {
	base
	Inner Production[T, N]
}

// NewNullable wraps inner so that it never fails.
func NewNullable[T comparable, N comparable](name string, inner Production[T, N]) *Nullable[T, N] {
	return &Nullable[T, N]{base: base{name: name}, Inner: inner}
}

func (p *Nullable[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		res := p.Inner.Eval(ctx, pos)
		if res.Matched {
			return res
		}
		return matched[N](pos, nil)
	})
}

// NonStructural evaluates Inner with the structural filter disabled: Inner
// sees every token, including ones the tokenizer's is_structural predicate
// marked as filtered (whitespace, comments, line breaks). The parent
// resumes on the structural view at the raw end position Inner reached,
// skipping past whatever non-structural tokens that covered.
type NonStructural[T comparable, N comparable] struct {
	base
	Inner Production[T, N]
}

// NewNonStructural wraps inner so it evaluates against the raw token view.
func NewNonStructural[T comparable, N comparable](name string, inner Production[T, N]) *NonStructural[T, N] {
	return &NonStructural[T, N]{base: base{name: name}, Inner: inner}
}

func (p *NonStructural[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		rawPos, leave := ctx.enterRaw(pos)
		res := p.Inner.Eval(ctx, rawPos)
		if !res.Matched {
			leave(rawPos)
			fail := failed[N](res.DeepestPos, p.name)
			fail.Expected = res.Expected
			return fail
		}
		structuralEnd := leave(res.EndPos)
		return matched(structuralEnd, res.Nodes)
	})
}
