package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_PutKeepsInsertionOrder(t *testing.T) {
	v := New(2)
	v.Put("b", 1)
	v.Put("a", "x")
	v.Put("b", 2)

	assert.Equal(t, []string{"b", "a"}, v.Keys())
	got, ok := v.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, v.Len())
}

func TestValues_ZeroValueUsable(t *testing.T) {
	var v Values
	v.PutNull("n")

	got, ok := v.Get("n")
	assert.True(t, ok)
	assert.Nil(t, got)
	assert.True(t, v.Contains("n"))
}

func TestValues_Remove(t *testing.T) {
	v := New(0)
	v.Put("a", 1)
	v.Put("b", 2)
	v.Put("c", 3)

	v.Remove("b")
	v.Remove("missing")

	assert.Equal(t, []string{"a", "c"}, v.Keys())
	got, ok := v.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, got)
	assert.False(t, v.Contains("b"))
}

func TestValues_MapAndArgs(t *testing.T) {
	v := New(0)
	v.Put("z", "last")
	v.Put("a", int64(1))

	assert.Equal(t, map[string]any{"z": "last", "a": int64(1)}, v.Map())
	assert.Equal(t, []string{"a", "z"}, v.SortedKeys())
	assert.Equal(t, []any{int64(1), nil, "last"}, v.Args("a", "missing", "z"))
}

func TestValues_KeysIsACopy(t *testing.T) {
	v := New(0)
	v.Put("a", 1)
	keys := v.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, v.Keys())
}
