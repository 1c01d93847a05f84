// Package errz defines the error taxonomy returned by the lex and parse
// packages, along with a terminal-friendly formatter for turning one into a
// message with a source snippet and a caret.
package errz

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/parsekit/token"
)

// ErrorKind categorizes a StructuredError per the error taxonomy in the
// library's design notes.
type ErrorKind int

const (
	// InvalidPattern: a matcher's regex or punctuation literal was invalid.
	// Returned by the matcher constructor, not at parse time.
	InvalidPattern ErrorKind = iota
	// DuplicatePunctuation: two Punctuations entries collided on the same literal.
	DuplicatePunctuation
	// DuplicateMapping: two Mapper override entries collided on the same text.
	DuplicateMapping
	// UninitializedProduction: a deferred Concat was evaluated before SetChildren.
	UninitializedProduction
	// UnboundedRecursion: the same (production, position) was re-entered
	// while its result was still pending.
	UnboundedRecursion
	// UnexpectedCharacter: no tokenizer matcher advanced at an offset.
	UnexpectedCharacter
	// UnexpectedToken: the deepest parse failure, reported at parse end.
	UnexpectedToken
	// UnexpectedEOF: like UnexpectedToken, but the deepest point was EOF.
	UnexpectedEOF
)

// String returns the human-readable name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidPattern:
		return "invalid pattern"
	case DuplicatePunctuation:
		return "duplicate punctuation"
	case DuplicateMapping:
		return "duplicate mapping"
	case UninitializedProduction:
		return "uninitialized production"
	case UnboundedRecursion:
		return "unbounded recursion"
	case UnexpectedCharacter:
		return "unexpected character"
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	default:
		return "error"
	}
}

// IsConfiguration reports whether this kind is a construction-time /
// configuration fault rather than a runtime parse outcome.
func (k ErrorKind) IsConfiguration() bool {
	switch k {
	case InvalidPattern, DuplicatePunctuation, DuplicateMapping, UninitializedProduction:
		return true
	default:
		return false
	}
}

// StructuredError is the single rich error type returned by this module's
// public API. Its Kind selects which row of the §7 taxonomy it represents.
type StructuredError struct {
	Kind        ErrorKind
	Message     string
	Position    token.Position
	Source      string   // the line of source text containing Position, if known
	Expected    []string // symbols expected at the deepest failure point
	Suggestions []string // "did you mean" candidates drawn from Expected
	Cause       error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if !e.Position.IsValid() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d:%d)", e.Kind, e.Message, e.Position.LineNumber(), e.Position.ColumnNumber())
}

// Unwrap returns the underlying cause, if any.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage renders a multi-line message with a source snippet,
// a caret at the failure column, the expected-symbol set, and any
// "did you mean" suggestions.
func (e *StructuredError) FriendlyErrorMessage() string {
	var b strings.Builder
	if !e.Position.IsValid() {
		fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s (%d:%d)\n", e.Kind, e.Message, e.Position.LineNumber(), e.Position.ColumnNumber())
	}
	if e.Source != "" {
		b.WriteString(" | ")
		b.WriteString(e.Source)
		b.WriteString("\n")
		if e.Position.Column >= 0 {
			b.WriteString(" | ")
			b.WriteString(strings.Repeat(" ", e.Position.Column))
			b.WriteString("^\n")
		}
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, "expected one of: %s\n", strings.Join(e.Expected, ", "))
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "did you mean: %s?\n", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

// New builds a StructuredError with no position information; callers
// typically chain WithPosition/WithExpected/WithCause afterward.
func New(kind ErrorKind, message string) *StructuredError {
	return &StructuredError{Kind: kind, Message: message}
}

// Newf builds a StructuredError with a formatted message.
func Newf(kind ErrorKind, format string, args ...any) *StructuredError {
	return &StructuredError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithPosition attaches a resolved source position and the source line text.
func (e *StructuredError) WithPosition(pos token.Position, sourceLine string) *StructuredError {
	e.Position = pos
	e.Source = sourceLine
	return e
}

// WithExpected attaches the expected-symbol set gathered at the deepest
// failure point.
func (e *StructuredError) WithExpected(expected []string) *StructuredError {
	e.Expected = expected
	return e
}

// WithSuggestionsFor computes "did you mean" suggestions by comparing the
// text actually found at the failure point against the expected-symbol set.
func (e *StructuredError) WithSuggestionsFor(actualText string) *StructuredError {
	e.Suggestions = SuggestSimilar(actualText, e.Expected)
	return e
}

// WithCause wraps an underlying error.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}
