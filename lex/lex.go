// Package lex implements the lexeme-matcher layer: pluggable matchers
// composed by a Tokenizer or CombinedTokenizer into a flat stream of Lex
// values, driving a pushdown stack of lexical states where needed (e.g.
// template literals whose body and interpolations are lexed differently).
package lex

import "fmt"

// Lex is a single lexeme: a token kind paired with the byte range it
// covers in the input. Start and End are offsets into that input.
type Lex[T comparable] struct {
	Kind  T
	Start uint32
	End   uint32
}

func (l Lex[T]) String() string {
	return fmt.Sprintf("%v[%d,%d)", l.Kind, l.Start, l.End)
}

// Action describes a tokenizer-state-stack mutation a StateMixin applies
// after its inner matcher succeeds.
type Action struct {
	Kind    ActionKind
	State   string // target state for ActionPush; ignored otherwise
	Discard bool   // suppress emission of the lex that triggered this action
}

// ActionKind enumerates the stack operations a StateMixin can request.
type ActionKind int

const (
	// NoAction leaves the state stack untouched.
	NoAction ActionKind = iota
	// ActionPush pushes State onto the stack.
	ActionPush
	// ActionPop pops the current state off the stack.
	ActionPop
)

// MatchContext is passed to every Matcher so that lookback-sensitive
// matchers (Middleware) can inspect what has already been emitted.
type MatchContext[T comparable] struct {
	// Emitted holds every lex emitted so far in this tokenization. Lexes
	// suppressed by a StateMixin action with Discard set are not included.
	Emitted []Lex[T]
}

// LastStructural returns the most recently emitted lex whose kind satisfies
// isStructural, or the zero Lex and false if none has been emitted yet.
func (mc *MatchContext[T]) LastStructural(isStructural func(T) bool) (Lex[T], bool) {
	for i := len(mc.Emitted) - 1; i >= 0; i-- {
		if isStructural(mc.Emitted[i].Kind) {
			return mc.Emitted[i], true
		}
	}
	var zero Lex[T]
	return zero, false
}

// Matcher attempts to match at the given offset in input. ok=false means no
// match was found and no input was consumed. On success it returns the
// produced lex's kind and the new offset; Action and Discard, when set by a
// StateMixin wrapper, direct the tokenizer driver's stack and emission.
type Matcher[T comparable] interface {
	Match(input []byte, offset int, mc *MatchContext[T]) (result MatchResult[T], ok bool)
}

// MatchResult is what a successful Matcher.Match produces.
type MatchResult[T comparable] struct {
	Lex     Lex[T]
	End     int // offset immediately after the match; must be > offset
	Discard bool
	Action  Action
}
