package parse

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cloudcmds/parsekit/ast"
	"github.com/cloudcmds/parsekit/lex"
	"github.com/cloudcmds/parsekit/plog"
)

// ByteKind represents a single input byte as a token kind for lexerless
// parsing: ordinary bytes carry their own numeric value (0-255); ByteEOF is
// the reserved sentinel returned past the end of input, chosen outside that
// range so it can never collide with a real byte.
type ByteKind int32

// ByteEOF is the reserved eof sentinel for lexerless parsing.
const ByteEOF ByteKind = -1

// DefaultParser drives a tokenizer and a grammar together: Parse tokenizes
// input via source, builds the structural/raw views, and evaluates root
// against them. AddDebugProduction registers additional named productions
// (not necessarily reachable from root) that DebugProductionAt can evaluate
// directly — the mechanism cmd/parsekit's debug command is built on.
type DefaultParser[T comparable, N comparable] struct {
	source       lex.TokenSource[T]
	isStructural func(T) bool
	eof          T
	root         Production[T, N]
	log          plog.Sink
	debug        map[string]Production[T, N]
}

// NewDefaultParser builds a DefaultParser. isStructural reports whether a
// token kind participates in the structural view that root is evaluated
// against; tokens it excludes (whitespace, comments) are still present on
// the raw view a NonStructural production can reach.
func NewDefaultParser[T comparable, N comparable](source lex.TokenSource[T], isStructural func(T) bool, eof T, root Production[T, N]) *DefaultParser[T, N] {
	return &DefaultParser[T, N]{
		source:       source,
		isStructural: isStructural,
		eof:          eof,
		root:         root,
		log:          plog.NopSink{},
		debug:        map[string]Production[T, N]{},
	}
}

// SetLog installs sink to receive every production's log events, subject to
// each production's own SetLog level (plog.Off by default).
func (p *DefaultParser[T, N]) SetLog(sink plog.Sink) { p.log = sink }

// AddDebugProduction registers prod under its own name for later direct
// evaluation via DebugProductionAt, independent of whether root reaches it.
func (p *DefaultParser[T, N]) AddDebugProduction(prod Production[T, N]) {
	p.debug[prod.Name()] = prod
}

// Parse tokenizes input, then evaluates root against it from position 0.
// filename is only used to annotate error positions.
func (p *DefaultParser[T, N]) Parse(filename string, input []byte) (ast.Node[N], error) {
	raw, err := p.source.Tokenize(input)
	if err != nil {
		return ast.Node[N]{}, err
	}
	structural := filterStructural(raw, p.isStructural)
	ctx := newContext[T, N](structural, raw, p.isStructural, p.log, uuid.NewString())
	return parseOutcome[T, N](ctx, p.root, len(structural), p.eof, filename, input)
}

// TokenizeAndParse is a convenience wrapper around Parse for callers who
// have already validated their input (test helpers, the REPL) and would
// rather not thread an error return through every call site. It panics with
// the error Parse would have returned.
func (p *DefaultParser[T, N]) TokenizeAndParse(filename string, input []byte) ast.Node[N] {
	node, err := p.Parse(filename, input)
	if err != nil {
		panic(err)
	}
	return node
}

// DebugProductionAt tokenizes input and evaluates the debug production
// registered under name starting at the structural position pos, without
// requiring root to reach it. Used for interactively exercising one rule of
// a grammar in isolation.
func (p *DefaultParser[T, N]) DebugProductionAt(name string, pos int, input []byte) (Outcome[N], error) {
	prod, ok := p.debug[name]
	if !ok {
		return Outcome[N]{}, fmt.Errorf("parsekit: no debug production registered for %q", name)
	}
	raw, err := p.source.Tokenize(input)
	if err != nil {
		return Outcome[N]{}, err
	}
	structural := filterStructural(raw, p.isStructural)
	ctx := newContext[T, N](structural, raw, p.isStructural, p.log, uuid.NewString())
	return debugEval[T, N](ctx, prod, pos)
}

// LexerlessParser parses directly over input bytes, skipping a separate
// tokenization pass: every byte becomes its own Lex[ByteKind] with kind set
// to its numeric value, followed by a ByteEOF sentinel. Intended for
// grammars where a lexeme layer adds no value over matching byte ranges
// directly (whitespace-sensitive formats, binary framing).
type LexerlessParser[N comparable] struct {
	root  Production[ByteKind, N]
	log   plog.Sink
	debug map[string]Production[ByteKind, N]
}

// NewLexerlessParser builds a LexerlessParser over root.
func NewLexerlessParser[N comparable](root Production[ByteKind, N]) *LexerlessParser[N] {
	return &LexerlessParser[N]{root: root, log: plog.NopSink{}, debug: map[string]Production[ByteKind, N]{}}
}

// SetLog installs sink to receive every production's log events.
func (p *LexerlessParser[N]) SetLog(sink plog.Sink) { p.log = sink }

// AddDebugProduction registers prod for later direct evaluation via
// DebugProductionAt.
func (p *LexerlessParser[N]) AddDebugProduction(prod Production[ByteKind, N]) {
	p.debug[prod.Name()] = prod
}

// Parse evaluates root directly against input's bytes.
func (p *LexerlessParser[N]) Parse(filename string, input []byte) (ast.Node[N], error) {
	raw := bytesToLexes(input)
	ctx := newContext[ByteKind, N](raw, raw, alwaysStructural, p.log, uuid.NewString())
	return parseOutcome[ByteKind, N](ctx, p.root, len(raw), ByteEOF, filename, input)
}

// TokenizeAndParse is a convenience wrapper around Parse that panics with
// the error Parse would have returned, for callers who have already
// validated their input.
func (p *LexerlessParser[N]) TokenizeAndParse(filename string, input []byte) ast.Node[N] {
	node, err := p.Parse(filename, input)
	if err != nil {
		panic(err)
	}
	return node
}

// DebugProductionAt evaluates the debug production registered under name
// starting at byte position pos.
func (p *LexerlessParser[N]) DebugProductionAt(name string, pos int, input []byte) (Outcome[N], error) {
	prod, ok := p.debug[name]
	if !ok {
		return Outcome[N]{}, fmt.Errorf("parsekit: no debug production registered for %q", name)
	}
	raw := bytesToLexes(input)
	ctx := newContext[ByteKind, N](raw, raw, alwaysStructural, p.log, uuid.NewString())
	return debugEval[ByteKind, N](ctx, prod, pos)
}

func alwaysStructural(ByteKind) bool { return true }

func bytesToLexes(input []byte) []lex.Lex[ByteKind] {
	lexes := make([]lex.Lex[ByteKind], 0, len(input)+1)
	for i, b := range input {
		lexes = append(lexes, lex.Lex[ByteKind]{Kind: ByteKind(b), Start: uint32(i), End: uint32(i + 1)})
	}
	end := uint32(len(input))
	lexes = append(lexes, lex.Lex[ByteKind]{Kind: ByteEOF, Start: end, End: end})
	return lexes
}

func filterStructural[T comparable](raw []lex.Lex[T], isStructural func(T) bool) []lex.Lex[T] {
	structural := make([]lex.Lex[T], 0, len(raw))
	for _, l := range raw {
		if isStructural(l.Kind) {
			structural = append(structural, l)
		}
	}
	return structural
}

// parseOutcome evaluates root at position 0 on ctx, recovering a fault
// panic into a returned error, and converts the resulting Outcome into
// either the parsed root node or a *errz.StructuredError describing the
// deepest failure (including trailing input root didn't consume).
func parseOutcome[T comparable, N comparable](ctx *Context[T, N], root Production[T, N], length int, eof T, filename string, input []byte) (node ast.Node[N], err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()
	outcome := root.Eval(ctx, 0)
	file := newFileResolver(filename, input)
	if !outcome.Matched {
		return ast.Node[N]{}, unexpectedTokenError[T, N](ctx, outcome, eof, file)
	}
	// The tokenizer contract guarantees the last structural token is the eof
	// sentinel, which EOFProd matches without advancing past it — so a
	// clean parse always ends exactly one short of length, not at it.
	lastPos := length - 1
	if lastPos < 0 {
		lastPos = 0
	}
	if outcome.EndPos < lastPos {
		trailing := Outcome[N]{DeepestPos: outcome.EndPos, Expected: map[string]struct{}{"end of input": {}}}
		return ast.Node[N]{}, unexpectedTokenError[T, N](ctx, trailing, eof, file)
	}
	if len(outcome.Nodes) == 1 {
		return outcome.Nodes[0], nil
	}
	return ast.Node[N]{Children: outcome.Nodes}, nil
}

// debugEval evaluates prod at pos on ctx, recovering a fault panic into a
// returned error.
func debugEval[T comparable, N comparable](ctx *Context[T, N], prod Production[T, N], pos int) (outcome Outcome[N], err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()
	outcome = prod.Eval(ctx, pos)
	return outcome, nil
}
