package errz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/parsekit/errz"
	"github.com/cloudcmds/parsekit/token"
)

func TestErrorWithoutPosition(t *testing.T) {
	err := errz.New(errz.UnexpectedEOF, "ran out of input")
	assert.Equal(t, "unexpected end of input: ran out of input", err.Error())
}

func TestErrorWithPosition(t *testing.T) {
	file := token.NewFile("f.js", []byte("a+b"))
	err := errz.Newf(errz.UnexpectedToken, "unexpected %q", "+").
		WithPosition(file.Resolve(1), "a+b")
	assert.Equal(t, `unexpected token: unexpected "+" (1:2)`, err.Error())
}

func TestFriendlyErrorMessageIncludesSuggestions(t *testing.T) {
	file := token.NewFile("f.js", []byte("iff (true) {}"))
	err := errz.New(errz.UnexpectedToken, `unexpected "iff"`).
		WithPosition(file.Resolve(0), "iff (true) {}").
		WithExpected([]string{"if", "while"}).
		WithSuggestionsFor("iff")

	msg := err.FriendlyErrorMessage()
	assert.Contains(t, msg, "expected one of: if, while")
	assert.Contains(t, msg, "did you mean: if?")
	assert.Contains(t, msg, "^")
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("root cause")
	err := errz.New(errz.UninitializedProduction, "not ready").WithCause(cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestIsConfigurationClassifiesConstructionErrors(t *testing.T) {
	assert.True(t, errz.InvalidPattern.IsConfiguration())
	assert.True(t, errz.DuplicatePunctuation.IsConfiguration())
	assert.True(t, errz.DuplicateMapping.IsConfiguration())
	assert.True(t, errz.UninitializedProduction.IsConfiguration())
	assert.False(t, errz.UnboundedRecursion.IsConfiguration())
	assert.False(t, errz.UnexpectedToken.IsConfiguration())
	assert.False(t, errz.UnexpectedEOF.IsConfiguration())
	assert.False(t, errz.UnexpectedCharacter.IsConfiguration())
}

func TestErrorKindStringNames(t *testing.T) {
	require.Equal(t, "invalid pattern", errz.InvalidPattern.String())
	require.Equal(t, "unexpected end of input", errz.UnexpectedEOF.String())
}
