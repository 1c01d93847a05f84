// Package parse implements the production-combinator engine: a composable
// set of parsing operators that together form a recursive-descent parser
// over a token stream, with per-parse memoization, shared sub-productions
// (forming cycles through deferred Concat), and "deepest failure" error
// reporting.
package parse

import (
	"sort"

	"github.com/cloudcmds/parsekit/ast"
	"github.com/cloudcmds/parsekit/plog"
)

// Production is the single operation every combinator implements: given a
// starting token index, either match (advancing to EndPos and contributing
// Nodes) or fail (recording how far it got and what it expected there).
type Production[T comparable, N comparable] interface {
	// Name identifies this production for logging and error messages.
	Name() string
	// Eval attempts to match starting at pos on ctx's current view.
	Eval(ctx *Context[T, N], pos int) Outcome[N]
	// SetLog configures this production's log level.
	SetLog(level plog.Level)
}

// Outcome is the result of evaluating a Production at a position: either a
// match (Matched=true, EndPos/Nodes populated) or a failure (Matched=false,
// DeepestPos/Expected populated with the furthest point this exploration
// reached and what was expected there).
type Outcome[N comparable] struct {
	Matched  bool
	EndPos   int
	Nodes    []ast.Node[N]

	DeepestPos int
	Expected   map[string]struct{}
}

// ExpectedNames returns the expected-symbol set as a sorted slice, suitable
// for error messages.
func (o Outcome[N]) ExpectedNames() []string {
	if len(o.Expected) == 0 {
		return nil
	}
	names := make([]string, 0, len(o.Expected))
	for name := range o.Expected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func matched[N comparable](endPos int, nodes []ast.Node[N]) Outcome[N] {
	return Outcome[N]{Matched: true, EndPos: endPos, Nodes: nodes}
}

func failed[N comparable](pos int, expectedSymbol string) Outcome[N] {
	return Outcome[N]{
		DeepestPos: pos,
		Expected:   map[string]struct{}{expectedSymbol: {}},
	}
}

// deeper returns whichever of a, b reached further; on a tie it keeps a (the
// first-seen one, per §4.3's Union semantics) but merges b's expected set
// into it so diagnostics reflect every alternative that was tried at that
// furthest point.
func deeper[N comparable](a, b Outcome[N]) Outcome[N] {
	if b.DeepestPos > a.DeepestPos {
		return b
	}
	if b.DeepestPos < a.DeepestPos {
		return a
	}
	merged := a
	if len(b.Expected) > 0 {
		set := make(map[string]struct{}, len(a.Expected)+len(b.Expected))
		for k := range a.Expected {
			set[k] = struct{}{}
		}
		for k := range b.Expected {
			set[k] = struct{}{}
		}
		merged.Expected = set
	}
	return merged
}

// base is embedded by every combinator to supply Name/SetLog and a stable
// identity for the cache key (the combinator's own pointer).
type base struct {
	name  string
	level plog.Level
}

func (b *base) Name() string { return b.name }

func (b *base) SetLog(level plog.Level) { b.level = level }
