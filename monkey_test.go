/*
File   : monkey_test.go
Package: monkey
*/
package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/object"
	"monkey/token"
)

func TestTokenize_EndsWithEOF(t *testing.T) {
	toks := Tokenize("let x = 1;")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Type)
}

func TestParse_CollectsErrors(t *testing.T) {
	_, errs := Parse("let x 5;")
	assert.NotEmpty(t, errs)
}

func TestRunSource_Success(t *testing.T) {
	env := object.NewEnvironment()
	result := RunSource(`let a = [1,2,3]; a[10]`, env, "test.monkey")
	assert.Empty(t, result.ParseErrors)
	assert.Nil(t, result.RuntimeErr)
	assert.Equal(t, object.NULL, result.Value)
}

func TestRunSource_ParseFailureSkipsEval(t *testing.T) {
	env := object.NewEnvironment()
	result := RunSource(`let x 5;`, env, "test.monkey")
	assert.NotEmpty(t, result.ParseErrors)
	assert.Nil(t, result.Value)
	assert.Nil(t, result.RuntimeErr)
}

func TestRunSource_RuntimeFailure(t *testing.T) {
	env := object.NewEnvironment()
	result := RunSource(`10 / 0`, env, "test.monkey")
	require.NotNil(t, result.RuntimeErr)
	assert.Equal(t, object.DivisionByZero, result.RuntimeErr.Kind)
}

func TestRunSource_EnvPersistsAcrossCalls(t *testing.T) {
	env := object.NewEnvironment()
	RunSource(`let a = 41;`, env, "test.monkey")
	result := RunSource(`a + 1`, env, "test.monkey")
	require.NotNil(t, result.Value)
	assert.Equal(t, int64(42), result.Value.(*object.Integer).Value)
}
