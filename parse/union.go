package parse

// Union tries each alternative in declared order at the same starting
// position, returning the first match. If every alternative fails, it
// returns the deepest failure among them (§4.3, testable property 5:
// ordered choice — a match always honors declaration order over length).
type Union[T comparable, N comparable] struct {
	base
	children []Production[T, N]
}

// NewUnion builds a Union over children, tried in the given order.
func NewUnion[T comparable, N comparable](name string, children ...Production[T, N]) *Union[T, N] {
	return &Union[T, N]{base: base{name: name}, children: children}
}

func (p *Union[T, N]) Eval(ctx *Context[T, N], pos int) Outcome[N] {
	return evalProduction[T, N](ctx, p, p.level, pos, func() Outcome[N] {
		var worst Outcome[N]
		haveWorst := false
		for _, child := range p.children {
			res := child.Eval(ctx, pos)
			if res.Matched {
				return res
			}
			if haveWorst {
				worst = deeper(worst, res)
			} else {
				worst = res
				haveWorst = true
			}
		}
		if !haveWorst {
			return failed[N](pos, p.name)
		}
		fail := failed[N](worst.DeepestPos, p.name)
		fail.Expected = worst.Expected
		return fail
	})
}
