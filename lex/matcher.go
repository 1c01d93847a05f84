package lex

import (
	"regexp"
	"sort"

	"github.com/cloudcmds/parsekit/errz"
)

// Pattern matches an anchored regular expression at the current offset and
// emits one lex of Kind on success. The pattern is anchored internally so
// callers never need to prefix their regex with ^.
type Pattern[T comparable] struct {
	Kind T
	re   *regexp.Regexp
}

// NewPattern compiles expr as an anchored regex. Returns errz.InvalidPattern
// if expr does not compile.
func NewPattern[T comparable](kind T, expr string) (*Pattern[T], error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, errz.Newf(errz.InvalidPattern, "invalid pattern for %v: %s", kind, err)
	}
	return &Pattern[T]{Kind: kind, re: re}, nil
}

// MustPattern is like NewPattern but panics on error; intended for grammar
// construction at package init time where the pattern is a literal.
func MustPattern[T comparable](kind T, expr string) *Pattern[T] {
	p, err := NewPattern(kind, expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern[T]) Match(input []byte, offset int, _ *MatchContext[T]) (MatchResult[T], bool) {
	loc := p.re.FindIndex(input[offset:])
	if loc == nil || loc[1] == 0 {
		return MatchResult[T]{}, false
	}
	end := offset + loc[1]
	return MatchResult[T]{
		Lex: Lex[T]{Kind: p.Kind, Start: uint32(offset), End: uint32(end)},
		End: end,
	}, true
}

// Punctuations matches the longest of a fixed set of string literals at the
// current offset, so that e.g. "<=" wins over "<" when both are registered.
type Punctuations[T comparable] struct {
	literals []string
	kinds    map[string]T
}

// NewPunctuations builds a Punctuations matcher from literal->kind pairs.
// Returns errz.DuplicatePunctuation if a literal is registered twice.
func NewPunctuations[T comparable](entries map[string]T) (*Punctuations[T], error) {
	p := &Punctuations[T]{kinds: make(map[string]T, len(entries))}
	for lit, kind := range entries {
		if _, exists := p.kinds[lit]; exists {
			return nil, errz.Newf(errz.DuplicatePunctuation, "duplicate punctuation literal %q", lit)
		}
		p.kinds[lit] = kind
		p.literals = append(p.literals, lit)
	}
	sort.Slice(p.literals, func(i, j int) bool {
		return len(p.literals[i]) > len(p.literals[j])
	})
	return p, nil
}

func (p *Punctuations[T]) Match(input []byte, offset int, _ *MatchContext[T]) (MatchResult[T], bool) {
	for _, lit := range p.literals {
		end := offset + len(lit)
		if end > len(input) {
			continue
		}
		if string(input[offset:end]) == lit {
			kind := p.kinds[lit]
			return MatchResult[T]{
				Lex: Lex[T]{Kind: kind, Start: uint32(offset), End: uint32(end)},
				End: end,
			}, true
		}
	}
	return MatchResult[T]{}, false
}

// Mapper runs Inner, then replaces the produced kind with an override when
// the matched text exactly equals one of Overrides' keys. Used to recognize
// keywords on top of a generic identifier Pattern.
type Mapper[T comparable] struct {
	Inner     Matcher[T]
	Overrides map[string]T
}

// NewMapper builds a Mapper over inner. It performs no validation and always
// returns a nil error: overrides is a Go map, which cannot hold the same key
// twice, so there is no duplicate for it to report.
func NewMapper[T comparable](inner Matcher[T], overrides map[string]T) (*Mapper[T], error) {
	return &Mapper[T]{Inner: inner, Overrides: overrides}, nil
}

func (m *Mapper[T]) Match(input []byte, offset int, mc *MatchContext[T]) (MatchResult[T], bool) {
	res, ok := m.Inner.Match(input, offset, mc)
	if !ok {
		return res, false
	}
	text := string(input[res.Lex.Start:res.Lex.End])
	if kind, found := m.Overrides[text]; found {
		res.Lex.Kind = kind
	}
	return res, true
}

// Middleware conditionally enables Inner based on the lexes already
// emitted in this tokenization (e.g. regex-vs-division disambiguation looks
// at the previous structural token).
type Middleware[T comparable] struct {
	Inner     Matcher[T]
	Predicate func(mc *MatchContext[T]) bool
}

func (m *Middleware[T]) Match(input []byte, offset int, mc *MatchContext[T]) (MatchResult[T], bool) {
	if !m.Predicate(mc) {
		return MatchResult[T]{}, false
	}
	return m.Inner.Match(input, offset, mc)
}

// StateMixin runs Inner; on success it looks up the produced kind in
// Actions and attaches the resulting stack Action (push/pop/none) and
// Discard flag to the result for the tokenizer driver to apply.
type StateMixin[T comparable] struct {
	Inner   Matcher[T]
	Actions map[T]Action
}

func (m *StateMixin[T]) Match(input []byte, offset int, mc *MatchContext[T]) (MatchResult[T], bool) {
	res, ok := m.Inner.Match(input, offset, mc)
	if !ok {
		return res, false
	}
	action := m.Actions[res.Lex.Kind]
	res.Action = action
	res.Discard = action.Discard
	return res, true
}
