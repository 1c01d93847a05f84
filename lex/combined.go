package lex

import "github.com/cloudcmds/parsekit/errz"

// CombinedTokenizer owns a set of named lexical states, each with its own
// matcher list, plus an explicit stack initialized to the default state.
// StateMixin actions on the winning matcher push/pop the stack, letting the
// grammar switch lexical modes mid-stream (e.g. entering a template-literal
// expression hole).
type CombinedTokenizer[T comparable] struct {
	defaultState string
	states       map[string][]Matcher[T]
	eof          T
}

// NewCombinedTokenizer creates a CombinedTokenizer whose stack starts in
// defaultState.
func NewCombinedTokenizer[T comparable](defaultState string, eof T) *CombinedTokenizer[T] {
	return &CombinedTokenizer[T]{
		defaultState: defaultState,
		states:       make(map[string][]Matcher[T]),
		eof:          eof,
	}
}

// AddState registers the matcher list used while id is on top of the stack.
func (c *CombinedTokenizer[T]) AddState(id string, matchers ...Matcher[T]) {
	c.states[id] = matchers
}

// Tokenize runs the CombinedTokenizer loop described in §4.2: at each step
// it dispatches to the matcher list of the stack-top state, and applies
// whatever Action the winning matcher (typically a StateMixin) attaches.
func (c *CombinedTokenizer[T]) Tokenize(input []byte) ([]Lex[T], error) {
	stack := []string{c.defaultState}
	mc := &MatchContext[T]{}
	offset := 0
	for offset < len(input) {
		top := stack[len(stack)-1]
		matchers, ok := c.states[top]
		if !ok {
			return nil, errz.Newf(errz.UninitializedProduction, "tokenizer state %q was never registered", top)
		}
		newOffset, action, matched := c.step(matchers, input, offset, mc)
		if !matched {
			return nil, unexpectedCharacter[T](input, offset)
		}
		switch action.Kind {
		case ActionPush:
			stack = append(stack, action.State)
		case ActionPop:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
		offset = newOffset
	}
	mc.Emitted = append(mc.Emitted, Lex[T]{Kind: c.eof, Start: uint32(len(input)), End: uint32(len(input))})
	return mc.Emitted, nil
}

func (c *CombinedTokenizer[T]) step(matchers []Matcher[T], input []byte, offset int, mc *MatchContext[T]) (int, Action, bool) {
	for _, m := range matchers {
		res, ok := m.Match(input, offset, mc)
		if !ok || res.End <= offset {
			continue
		}
		if !res.Discard {
			mc.Emitted = append(mc.Emitted, res.Lex)
		}
		return res.End, res.Action, true
	}
	return offset, Action{}, false
}
