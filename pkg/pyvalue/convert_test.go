package pyvalue_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-pygen/pkg/pyvalue"
)

func TestFromGoScalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    any
		wantKind pyvalue.Kind
	}{
		{"nil", nil, pyvalue.KindNone},
		{"bool", true, pyvalue.KindBool},
		{"int", 42, pyvalue.KindInt},
		{"int8", int8(1), pyvalue.KindInt},
		{"int16", int16(1), pyvalue.KindInt},
		{"int32", int32(1), pyvalue.KindInt},
		{"int64", int64(1), pyvalue.KindInt},
		{"uint", uint(1), pyvalue.KindInt},
		{"uint8", uint8(1), pyvalue.KindInt},
		{"uint16", uint16(1), pyvalue.KindInt},
		{"uint32", uint32(1), pyvalue.KindInt},
		{"uint64", uint64(1), pyvalue.KindInt},
		{"float32", float32(0.5), pyvalue.KindFloat},
		{"float64", 0.5, pyvalue.KindFloat},
		{"string", "hello", pyvalue.KindStr},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			value, err := pyvalue.FromGo(tc.input)
			require.NoError(t, err, spew.Sdump(tc.input))
			assert.Equal(t, tc.wantKind, value.Kind())
		})
	}
}

func TestFromGoScalarValues(t *testing.T) {
	t.Parallel()

	n, err := pyvalue.FromGo(42)
	require.NoError(t, err)
	got, err := n.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	s, err := pyvalue.FromGo("text")
	require.NoError(t, err)
	text, err := s.AsStr()
	require.NoError(t, err)
	assert.Equal(t, "text", text)
}

func TestFromGoSequences(t *testing.T) {
	t.Parallel()

	list, err := pyvalue.FromGo([]any{1, "two", true})
	require.NoError(t, err)
	assert.Equal(t, pyvalue.KindList, list.Kind())

	elems, err := list.Elems()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, pyvalue.KindInt, elems[0].Kind())
	assert.Equal(t, pyvalue.KindStr, elems[1].Kind())
	assert.Equal(t, pyvalue.KindBool, elems[2].Kind())

	strs, err := pyvalue.FromGo([]string{"a", "b"})
	require.NoError(t, err)
	elems, err = strs.Elems()
	require.NoError(t, err)
	require.Len(t, elems, 2)
	assert.Equal(t, pyvalue.KindStr, elems[0].Kind())
}

func TestFromGoMappings(t *testing.T) {
	t.Parallel()

	t.Run("string keys sorted", func(t *testing.T) {
		t.Parallel()

		dict, err := pyvalue.FromGo(map[string]any{"b": 2, "a": 1})
		require.NoError(t, err)

		entries, err := dict.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)

		first, err := entries[0].Key.AsStr()
		require.NoError(t, err)
		assert.Equal(t, "a", first, spew.Sdump(entries))
	})

	t.Run("dynamic keys convert recursively", func(t *testing.T) {
		t.Parallel()

		dict, err := pyvalue.FromGo(map[any]any{1: "one", 2: "two"})
		require.NoError(t, err)

		entries, err := dict.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, pyvalue.KindInt, entries[0].Key.Kind())
	})

	t.Run("yaml style string keys", func(t *testing.T) {
		t.Parallel()

		dict, err := pyvalue.FromGo(map[any]any{"x": 1})
		require.NoError(t, err)

		entries, err := dict.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, pyvalue.KindStr, entries[0].Key.Kind())
	})
}

func TestFromGoErrors(t *testing.T) {
	t.Parallel()

	_, err := pyvalue.FromGo(struct{ X int }{X: 1})
	assert.Error(t, err)

	_, err = pyvalue.FromGo([]any{1, make(chan int)})
	assert.Error(t, err)

	_, err = pyvalue.FromGo(uint64(math.MaxUint64))
	assert.Error(t, err)
}

func TestFromGoPassthrough(t *testing.T) {
	t.Parallel()

	original := pyvalue.PairOf(pyvalue.Int(1), pyvalue.Int(2))
	value, err := pyvalue.FromGo(original)
	require.NoError(t, err)
	assert.Equal(t, pyvalue.KindPair, value.Kind())
}

func TestMustFromGoPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		pyvalue.MustFromGo(make(chan int))
	})
}
