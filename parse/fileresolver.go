package parse

import "github.com/cloudcmds/parsekit/token"

// fileResolver turns byte offsets into human-readable positions and source
// snippets for error reporting. It wraps the input bytes alongside a
// token.File index of line starts.
type fileResolver struct {
	file *token.File
	src  []byte
}

func newFileResolver(name string, src []byte) *fileResolver {
	return &fileResolver{file: token.NewFile(name, src), src: src}
}

// text returns the source text in [start, end), or "" if the range is
// invalid.
func (f *fileResolver) text(start, end int) string {
	if f == nil || start < 0 || end > len(f.src) || start > end {
		return ""
	}
	return string(f.src[start:end])
}

// position resolves offset to a line/column Position.
func (f *fileResolver) position(offset int) token.Position {
	return f.file.Resolve(offset)
}

// line returns the full line of source text containing offset.
func (f *fileResolver) line(offset int) string {
	pos := f.file.Resolve(offset)
	lineStart := offset - pos.Column
	if lineStart < 0 {
		lineStart = 0
	}
	if lineStart > len(f.src) {
		lineStart = len(f.src)
	}
	lineEnd := lineStart
	for lineEnd < len(f.src) && f.src[lineEnd] != '\n' {
		lineEnd++
	}
	return string(f.src[lineStart:lineEnd])
}

// offsetForToken returns the byte offset pos resolves to on ctx's current
// view: the start of the token at pos, or the end of input if pos is past
// the last token.
func offsetForToken[T comparable, N comparable](f *fileResolver, ctx *Context[T, N], pos int) int {
	if pos < ctx.Len() {
		return int(ctx.Pos(pos).Start)
	}
	return len(f.src)
}
