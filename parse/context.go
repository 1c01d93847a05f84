package parse

import (
	"fmt"
	"sort"

	"github.com/cloudcmds/parsekit/errz"
	"github.com/cloudcmds/parsekit/lex"
	"github.com/cloudcmds/parsekit/plog"
)

// Context carries everything a single parse invocation shares across every
// combinator it drives: the structural and raw token views, the cache, the
// log sink, and which view is currently active (NonStructural flips this
// for the duration of evaluating its child).
type Context[T comparable, N comparable] struct {
	structural []lex.Lex[T]
	raw        []lex.Lex[T]

	// structToRaw[i] is the raw index of structural token i. Strictly
	// increasing, since the structural view is an order-preserving
	// subsequence of the raw view.
	structToRaw []int

	cache     *parseCache[T, N]
	log       plog.Sink
	sessionID string

	viewRaw bool
}

// fault is a sentinel panic value for the two parse-time errors that
// short-circuit the whole parse rather than failing one alternative: an
// uninitialized deferred Concat, and unbounded (direct) recursion.
type fault struct {
	err error
}

func newContext[T comparable, N comparable](structural, raw []lex.Lex[T], isStructural func(T) bool, log plog.Sink, sessionID string) *Context[T, N] {
	structToRaw := make([]int, 0, len(structural))
	ri := 0
	for si := range structural {
		for ri < len(raw) && !isStructural(raw[ri].Kind) {
			ri++
		}
		structToRaw = append(structToRaw, ri)
		ri++
	}
	return &Context[T, N]{
		structural:  structural,
		raw:         raw,
		structToRaw: structToRaw,
		cache:       newParseCache[T, N](),
		log:         log,
		sessionID:   sessionID,
	}
}

// Pos returns the lex at the current view's index pos.
func (c *Context[T, N]) Pos(pos int) lex.Lex[T] {
	if c.viewRaw {
		return c.raw[pos]
	}
	return c.structural[pos]
}

// Len returns the length of the currently active view.
func (c *Context[T, N]) Len() int {
	if c.viewRaw {
		return len(c.raw)
	}
	return len(c.structural)
}

// enterRaw switches to the raw view for the duration of evaluating a
// NonStructural child, translating a structural position into its raw
// equivalent, and returns the function that translates the child's raw end
// position back onto the structural view (to be called on the way out).
func (c *Context[T, N]) enterRaw(structuralPos int) (rawPos int, leave func(rawEnd int) int) {
	wasRaw := c.viewRaw
	if wasRaw {
		// Already inside a NonStructural scope: positions are raw already.
		return structuralPos, func(rawEnd int) int { return rawEnd }
	}
	c.viewRaw = true
	rawPos = c.structToRaw[structuralPos]
	return rawPos, func(rawEnd int) int {
		c.viewRaw = wasRaw
		return c.structuralCeil(rawEnd)
	}
}

// structuralCeil returns the smallest structural index i with
// structToRaw[i] >= rawPos, or len(structural) if none exists.
func (c *Context[T, N]) structuralCeil(rawPos int) int {
	return sort.Search(len(c.structToRaw), func(i int) bool {
		return c.structToRaw[i] >= rawPos
	})
}

// evalProduction is the shared cache/log/recursion wrapper every
// combinator's exported Eval delegates to. fn performs the actual matching
// logic and is only ever invoked once per (prod, pos, view).
func evalProduction[T comparable, N comparable](ctx *Context[T, N], prod Production[T, N], level plog.Level, pos int, fn func() Outcome[N]) Outcome[N] {
	key := cacheKey[T, N]{prod: prod, pos: pos, raw: ctx.viewRaw}
	if entry, ok := ctx.cache.entries[key]; ok {
		if entry.state == pending {
			panic(fault{err: errz.Newf(errz.UnboundedRecursion,
				"%s re-entered at the same position it is still evaluating (position %d)", prod.Name(), pos)})
		}
		if level == plog.Verbose {
			ctx.emit(prod.Name(), pos, "cache-hit", level)
		}
		return entry.result
	}
	entry := &cacheEntry[N]{state: pending}
	ctx.cache.entries[key] = entry

	if level == plog.Default || level == plog.Verbose {
		ctx.emit(prod.Name(), pos, "enter", level)
	}

	result := fn()

	entry.state = done
	entry.result = result

	switch {
	case result.Matched && level != plog.Off:
		ctx.emit(prod.Name(), pos, "match", level)
	case !result.Matched && (level == plog.Default || level == plog.Verbose):
		ctx.emit(prod.Name(), pos, "fail", level)
	}
	return result
}

func (c *Context[T, N]) emit(symbol string, pos int, outcome string, level plog.Level) {
	c.log.Log(plog.Event{Session: c.sessionID, Symbol: symbol, Position: pos, Outcome: outcome, Level: level})
}

func (f fault) String() string {
	return fmt.Sprintf("parsekit: %s", f.err)
}
