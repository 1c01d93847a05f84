package lex

import (
	"github.com/cloudcmds/parsekit/errz"
	"github.com/cloudcmds/parsekit/token"
)

// TokenSource is the contract a parse.DefaultParser drives: turn input bytes
// into a contiguous lex stream ending in an eof sentinel. Both Tokenizer and
// CombinedTokenizer satisfy it.
type TokenSource[T comparable] interface {
	Tokenize(input []byte) ([]Lex[T], error)
}

// Tokenizer is the single-state tokenizer driver: matchers are trialed in
// declared order at the current offset, and the first non-empty success
// wins. Order is significant — callers must list more specific patterns
// before more general ones.
type Tokenizer[T comparable] struct {
	matchers []Matcher[T]
	eof      T
}

// NewTokenizer builds a Tokenizer that emits eof when it reaches the end of
// input.
func NewTokenizer[T comparable](eof T, matchers ...Matcher[T]) *Tokenizer[T] {
	return &Tokenizer[T]{matchers: matchers, eof: eof}
}

// Tokenize runs the tokenizer loop described in §4.2 over input.
func (t *Tokenizer[T]) Tokenize(input []byte) ([]Lex[T], error) {
	mc := &MatchContext[T]{}
	offset := 0
	for offset < len(input) {
		newOffset, ok := step(t.matchers, input, offset, mc)
		if !ok {
			return nil, unexpectedCharacter[T](input, offset)
		}
		offset = newOffset
	}
	mc.Emitted = append(mc.Emitted, Lex[T]{Kind: t.eof, Start: uint32(len(input)), End: uint32(len(input))})
	return mc.Emitted, nil
}

// step trials matchers in order at offset. On success it appends the
// produced lex to mc.Emitted (unless discarded) and returns the new offset.
func step[T comparable](matchers []Matcher[T], input []byte, offset int, mc *MatchContext[T]) (int, bool) {
	for _, m := range matchers {
		res, ok := m.Match(input, offset, mc)
		if !ok || res.End <= offset {
			continue
		}
		if !res.Discard {
			mc.Emitted = append(mc.Emitted, res.Lex)
		}
		return res.End, true
	}
	return offset, false
}

func unexpectedCharacter[T comparable](input []byte, offset int) error {
	return errz.Newf(errz.UnexpectedCharacter, "unexpected character %q", input[offset]).
		WithPosition(token.Position{Offset: offset}, "")
}
