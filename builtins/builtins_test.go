/*
File   : builtins/builtins_test.go
Package: builtins
*/
package builtins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/object"
)

func call(t *testing.T, name string, args ...object.Object) object.Object {
	t.Helper()
	b, ok := Lookup(name)
	require.True(t, ok, "builtin %q must exist", name)
	return b.Fn(args...)
}

func TestLen(t *testing.T) {
	assert.Equal(t, int64(5), call(t, "len", &object.String{Value: "hello"}).(*object.Integer).Value)
	assert.Equal(t, int64(3), call(t, "len", &object.Array{Elements: []object.Object{object.NULL, object.NULL, object.NULL}}).(*object.Integer).Value)

	err, ok := call(t, "len", object.TRUE).(*object.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, object.InvalidArgumentType, err.Kind)

	errCount, ok := call(t, "len").(*object.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, object.WrongArgumentCount, errCount.Kind)
}

func TestFirstLastRest(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}, &object.Integer{Value: 2}, &object.Integer{Value: 3}}}

	assert.Equal(t, int64(1), call(t, "first", arr).(*object.Integer).Value)
	assert.Equal(t, int64(3), call(t, "last", arr).(*object.Integer).Value)

	rest := call(t, "rest", arr).(*object.Array)
	require.Equal(t, 2, len(rest.Elements))
	assert.Equal(t, int64(2), rest.Elements[0].(*object.Integer).Value)

	empty := &object.Array{}
	assert.Equal(t, object.NULL, call(t, "first", empty))
	assert.Equal(t, object.NULL, call(t, "last", empty))
	assert.Equal(t, object.NULL, call(t, "rest", empty))
}

func TestRestOnSingleElementArrayIsEmptyArray(t *testing.T) {
	single := &object.Array{Elements: []object.Object{&object.Integer{Value: 9}}}
	rest := call(t, "rest", single).(*object.Array)
	assert.Equal(t, 0, len(rest.Elements))
}

func TestPush(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}}}
	pushed := call(t, "push", arr, &object.Integer{Value: 2}).(*object.Array)
	require.Equal(t, 2, len(pushed.Elements))
	assert.Equal(t, 1, len(arr.Elements), "push must not mutate the original array")
}

func TestPuts(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	result := call(t, "puts", &object.String{Value: "hi"})
	assert.Equal(t, object.NULL, result)
	assert.Equal(t, "hi\n", buf.String())
}
