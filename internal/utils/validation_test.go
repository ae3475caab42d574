package utils

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/crudgen/internal/errors"
)

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NotEmpty("prefix")).Add(HasPrefix("prefix", "/"))

	assert.NoError(t, chain.Validate("/api"))

	err := chain.Validate("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid prefix: expected a non-empty value")

	err = chain.Validate("api")
	var verr *errors.ValidationError
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, "prefix", verr.Field)
	assert.Equal(t, "api", verr.Actual)
}

func TestMatchesRegex(t *testing.T) {
	v := MatchesRegex("name", `^[a-z]+$`, "lowercase letters")

	assert.NoError(t, v("model"))
	err := v("Model")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected lowercase letters")
}

func TestOptional(t *testing.T) {
	v := Optional(HasPrefix("path", "/"))

	assert.NoError(t, v(""))
	assert.NoError(t, v("/x"))
	assert.Error(t, v("x"))
}

func TestEach(t *testing.T) {
	v := Each(NotEmpty("indicator"))

	assert.NoError(t, v([]string{"model", "dto"}))
	assert.NoError(t, v(nil))

	err := v([]string{"", "model", " "})
	var multi *errors.MultipleErrors
	require.True(t, stderrors.As(err, &multi))
	assert.Len(t, multi.Errors, 2)
}
