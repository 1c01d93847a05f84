package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/parsekit/lex"
	"github.com/cloudcmds/parsekit/parse"
)

type tkind int

const (
	tEOF tkind = iota
	tA
	tB
	tComma
)

type nkind int

const (
	nNone nkind = iota
	nLeaf
	nList
)

func isStructural(tkind) bool { return true }

// fixedSource is a lex.TokenSource stub that ignores its input and always
// tokenizes the kinds baked into it via withLexes.
type fixedSource struct {
	lexes []lex.Lex[tkind]
}

func (s fixedSource) Tokenize(input []byte) ([]lex.Lex[tkind], error) {
	return s.lexes, nil
}

func withLexes(kinds ...tkind) fixedSource {
	lexes := make([]lex.Lex[tkind], len(kinds))
	for i, k := range kinds {
		lexes[i] = lex.Lex[tkind]{Kind: k, Start: uint32(i), End: uint32(i + 1)}
	}
	return fixedSource{lexes: lexes}
}

func TestTokenFieldMatchesAndEmitsLeaf(t *testing.T) {
	a := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", a, eof)
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tEOF), isStructural, tEOF, root)

	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	// The leaf is the only node either production contributed, so Parse
	// returns it unwrapped rather than synthesizing a root wrapper.
	assert.Equal(t, nLeaf, result.Kind)
	assert.True(t, result.IsLeaf())
}

func TestTokenizeAndParseReturnsSameNodeAsParse(t *testing.T) {
	a := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", a, eof)
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tEOF), isStructural, tEOF, root)

	result := parser.TokenizeAndParse("t.in", nil)
	assert.Equal(t, nLeaf, result.Kind)
}

func TestTokenizeAndParsePanicsOnParseError(t *testing.T) {
	a := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", a, eof)
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tB, tEOF), isStructural, tEOF, root)

	assert.Panics(t, func() {
		parser.TokenizeAndParse("t.in", nil)
	})
}

func TestUnionPrefersFirstMatchOverLonger(t *testing.T) {
	// Both alternatives can match at position 0; Union must honor
	// declaration order, not pick whichever consumes more.
	short := parse.NewTokenFieldNode[tkind, nkind]("short", tA, nLeaf)
	long := parse.NewConcat[tkind, nkind]("long",
		parse.NewTokenFieldNode[tkind, nkind]("a2", tA, nLeaf),
		parse.NewTokenFieldNode[tkind, nkind]("b2", tB, nLeaf))
	union := parse.NewUnion[tkind, nkind]("alt", short, long)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", union, eof)

	// This input would also satisfy "long", but since "short" is listed
	// first it must win even though it leaves "b" as trailing input.
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tB, tEOF), isStructural, tEOF, root)
	_, err := parser.Parse("t.in", nil)
	require.Error(t, err, "short should match first and leave trailing input")
}

func TestUnionFallsThroughToDeeperFailure(t *testing.T) {
	altA := parse.NewTokenFieldNode[tkind, nkind]("only-a", tA, nLeaf)
	altAB := parse.NewConcat[tkind, nkind]("a-then-b",
		parse.NewTokenFieldNode[tkind, nkind]("a3", tA, nLeaf),
		parse.NewTokenFieldNode[tkind, nkind]("b3", tB, nLeaf))
	union := parse.NewUnion[tkind, nkind]("alt", altAB, altA)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", union, eof)

	// Only "a" present: altAB fails deeper (after consuming "a", looking
	// for "b"), altA matches outright.
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tEOF), isStructural, tEOF, root)
	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	assert.Equal(t, nLeaf, result.Kind)
}

func TestListRequiresMinCount(t *testing.T) {
	item := parse.NewTokenFieldNode[tkind, nkind]("item", tA, nLeaf)
	list := parse.NewList[tkind, nkind]("list", item, 2)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", list, eof)

	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tEOF), isStructural, tEOF, root)
	_, err := parser.Parse("t.in", nil)
	assert.Error(t, err, "one match is below MinCount of 2")

	parser2 := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tA, tEOF), isStructural, tEOF, root)
	_, err = parser2.Parse("t.in", nil)
	assert.NoError(t, err)
}

func TestDeferredConcatCycle(t *testing.T) {
	// expr -> "a" | "(" expr ")"  — built with a deferred Concat so expr can
	// refer to itself.
	aLeaf := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	paren := parse.NewDeferredConcat[tkind, nkind]("paren")
	expr := parse.NewUnion[tkind, nkind]("expr", aLeaf, paren)
	paren.SetChildren(
		parse.NewTokenField[tkind, nkind]("open", tB),
		expr,
		parse.NewTokenField[tkind, nkind]("close", tComma),
	)
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", expr, eof)

	// "b a ," == "(" "a" ")" using tB/tComma as stand-in brackets.
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tB, tA, tComma, tEOF), isStructural, tEOF, root)
	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	assert.Equal(t, nLeaf, result.Kind)
}

func TestUninitializedConcatFails(t *testing.T) {
	deferred := parse.NewDeferredConcat[tkind, nkind]("never-set")
	eof := parse.NewEOFProd[tkind, nkind](tEOF)
	root := parse.NewConcat[tkind, nkind]("root", deferred, eof)
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tEOF), isStructural, tEOF, root)
	_, err := parser.Parse("t.in", nil)
	require.Error(t, err)
}

func TestDebugProductionAtEvaluatesIndependentlyOfRoot(t *testing.T) {
	a := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	b := parse.NewTokenFieldNode[tkind, nkind]("b", tB, nLeaf)
	root := parse.NewConcat[tkind, nkind]("root", a, parse.NewEOFProd[tkind, nkind](tEOF))

	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tB, tEOF), isStructural, tEOF, root)
	parser.AddDebugProduction(b)

	outcome, err := parser.DebugProductionAt("b", 0, nil)
	require.NoError(t, err)
	assert.True(t, outcome.Matched)

	// Root itself should fail against the same input, since it expects "a".
	_, err = parser.Parse("t.in", nil)
	assert.Error(t, err)
}

func TestDebugProductionAtUnknownNameErrors(t *testing.T) {
	root := parse.NewEOFProd[tkind, nkind](tEOF)
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tEOF), isStructural, tEOF, root)
	_, err := parser.DebugProductionAt("nonexistent", 0, nil)
	assert.Error(t, err)
}

func TestNullableAlwaysMatches(t *testing.T) {
	b := parse.NewTokenFieldNode[tkind, nkind]("b", tB, nLeaf)
	opt := parse.NewNullable[tkind, nkind]("opt-b", b)
	root := parse.NewConcat[tkind, nkind]("root", opt, parse.NewEOFProd[tkind, nkind](tEOF))

	// Present: Nullable contributes b's node as the sole node, so Parse
	// returns it unwrapped.
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tB, tEOF), isStructural, tEOF, root)
	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	assert.Equal(t, nLeaf, result.Kind)

	// Absent: Nullable still matches, contributing nothing, so the overall
	// parse still succeeds.
	parser2 := parse.NewDefaultParser[tkind, nkind](withLexes(tEOF), isStructural, tEOF, root)
	result2, err := parser2.Parse("t.in", nil)
	require.NoError(t, err)
	assert.Empty(t, result2.Children)
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	peek := parse.NewLookahead[tkind, nkind]("peek-a", parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf))
	a := parse.NewTokenFieldNode[tkind, nkind]("a2", tA, nLeaf)
	root := parse.NewConcat[tkind, nkind]("root", peek, a, parse.NewEOFProd[tkind, nkind](tEOF))

	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tEOF), isStructural, tEOF, root)
	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	// The lookahead contributes no node and doesn't consume the token, so
	// the single "a" leaf comes entirely from the TokenField after it; with
	// only one contributed node overall, Parse returns it unwrapped.
	assert.Equal(t, nLeaf, result.Kind)
	assert.True(t, result.IsLeaf())
}

func TestSeparatedListNonInclusiveAllowsTrailingSeparator(t *testing.T) {
	element := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	sep := parse.NewTokenField[tkind, nkind]("comma", tComma)
	list := parse.NewSeparatedList[tkind, nkind]("list", element, sep, false)
	root := parse.NewConcat[tkind, nkind]("root", list, parse.NewEOFProd[tkind, nkind](tEOF))

	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tComma, tA, tComma, tEOF), isStructural, tEOF, root)
	result, err := parser.Parse("t.in", nil)
	require.NoError(t, err)
	require.Len(t, result.Children, 2)
}

func TestSeparatedListInclusiveRejectsTrailingSeparator(t *testing.T) {
	element := parse.NewTokenFieldNode[tkind, nkind]("a", tA, nLeaf)
	sep := parse.NewTokenField[tkind, nkind]("comma", tComma)
	list := parse.NewSeparatedList[tkind, nkind]("list", element, sep, true)
	root := parse.NewConcat[tkind, nkind]("root", list, parse.NewEOFProd[tkind, nkind](tEOF))

	// Inclusive rewinds before the trailing separator, leaving it as
	// unconsumed trailing input, so the overall parse must fail.
	parser := parse.NewDefaultParser[tkind, nkind](withLexes(tA, tComma, tA, tComma, tEOF), isStructural, tEOF, root)
	_, err := parser.Parse("t.in", nil)
	assert.Error(t, err)
}
