/*
File   : object/object_test.go
Package: object
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashKey_SameValueSameKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestHash_SetPreservesInsertionOrderAndLastWriteWins(t *testing.T) {
	h := NewHash()
	a := &String{Value: "a"}
	b := &String{Value: "b"}

	h.Set(a, a.HashKey(), &Integer{Value: 1})
	h.Set(b, b.HashKey(), &Integer{Value: 2})
	h.Set(a, a.HashKey(), &Integer{Value: 3})

	assert.Equal(t, 2, len(h.Order))
	assert.Equal(t, a.HashKey(), h.Order[0])
	assert.Equal(t, b.HashKey(), h.Order[1])
	assert.Equal(t, int64(3), h.Pairs[a.HashKey()].Value.(*Integer).Value)
	assert.Equal(t, "{a: 3, b: 2}", h.Inspect())
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		obj  Object
		want bool
	}{
		{NULL, false},
		{FALSE, false},
		{TRUE, true},
		{&Integer{Value: 0}, true},
		{&String{Value: ""}, true},
		{&Array{}, true},
		{NewHash(), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTruthy(tt.obj))
	}
}

func TestEnvironment_GetWalksOuterChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("y", &Integer{Value: 2})

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*Integer).Value)

	_, ok = outer.Get("y")
	assert.False(t, ok)
}

func TestArray_Inspect(t *testing.T) {
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Boolean{Value: true}, &String{Value: "x"}}}
	assert.Equal(t, "[1, true, x]", arr.Inspect())
}

func TestBuiltin_Inspect(t *testing.T) {
	b := &Builtin{Name: "len"}
	assert.Equal(t, "builtin function", b.Inspect())
}
