package parse

import "github.com/cloudcmds/parsekit/errz"

func uninitializedProductionError(name string) error {
	return errz.Newf(errz.UninitializedProduction, "production %q was never initialized via SetChildren", name)
}

// unexpectedTokenError builds the user-visible ParseError for a top-level
// parse failure, choosing UnexpectedEOF when the deepest point is the eof
// sentinel.
func unexpectedTokenError[T comparable, N comparable](ctx *Context[T, N], outcome Outcome[N], eof T, file *fileResolver) *errz.StructuredError {
	pos := outcome.DeepestPos
	kind := errz.UnexpectedToken
	var actual string
	if pos < ctx.Len() {
		tok := ctx.Pos(pos)
		if tok.Kind == eof {
			kind = errz.UnexpectedEOF
		}
		actual = file.text(int(tok.Start), int(tok.End))
	} else {
		kind = errz.UnexpectedEOF
	}
	expected := outcome.ExpectedNames()
	err := errz.Newf(kind, "unexpected token").WithExpected(expected)
	if file != nil {
		offset := offsetForToken(file, ctx, pos)
		err = err.WithPosition(file.position(offset), file.line(offset))
	}
	if actual != "" {
		err = err.WithSuggestionsFor(actual)
	}
	return err
}
