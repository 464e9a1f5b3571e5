package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/quest-lang/quest-go"
	"github.com/quest-lang/quest-go/testutils"
)

// TestRegexMatch tests the match method: whole match first, then each
// capture group, null for groups that did not participate, empty list for no
// match.
func TestRegexMatch(t *testing.T) {
	rt := testutils.TestingRuntime()

	captures := func(t *testing.T, pattern, input string) []*quest.Object {
		rx, err := rt.NewRegex(pattern)
		require.NoError(t, err)
		r, err := rt.CallAttr(rx, "match", rt.NewText(input))
		require.NoError(t, err)
		l, ok := r.Value.([]*quest.Object)
		require.True(t, ok)
		return l
	}

	t.Run("Groups", func(t *testing.T) {
		got := captures(t, `(\w+) (\w+)`, "Sam W")
		require.Len(t, got, 3)
		assert.Equal(t, "Sam W", got[0].Value)
		assert.Equal(t, "Sam", got[1].Value)
		assert.Equal(t, "W", got[2].Value)
	})
	t.Run("UnmatchedGroup", func(t *testing.T) {
		got := captures(t, `(a)|(b)`, "a")
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].Value)
		assert.Equal(t, "a", got[1].Value)
		assert.Same(t, rt.Nil, got[2], "a group that did not participate is null, not empty")
	})
	t.Run("NoMatch", func(t *testing.T) {
		assert.Empty(t, captures(t, `\d+`, "no digits"))
	})
	t.Run("ArgumentStringifies", func(t *testing.T) {
		rx, err := rt.NewRegex(`\d+`)
		require.NoError(t, err)
		r, err := rt.CallAttr(rx, "match", rt.NewNumber(42))
		require.NoError(t, err)
		l := r.Value.([]*quest.Object)
		require.Len(t, l, 1)
		assert.Equal(t, "42", l[0].Value)
	})
}

// TestRegexDoesMatch tests the boolean match check.
func TestRegexDoesMatch(t *testing.T) {
	rt := testutils.TestingRuntime()
	rx, err := rt.NewRegex(`^[a-z]+$`)
	require.NoError(t, err)

	r, err := rt.CallAttr(rx, "does_match", rt.NewText("hello"))
	require.NoError(t, err)
	assert.Same(t, rt.True, r)
	r, err = rt.CallAttr(rx, "does_match", rt.NewText("Hello"))
	require.NoError(t, err)
	assert.Same(t, rt.False, r)
}

// TestRegexText tests stringification and the shared inspect path.
func TestRegexText(t *testing.T) {
	rt := testutils.TestingRuntime()
	rx, err := rt.NewRegex(`\w+`)
	require.NoError(t, err)
	s, err := rt.AsText(rx)
	require.NoError(t, err)
	assert.Equal(t, `/\w+/`, s)
	s, err = rt.Inspect(rx)
	require.NoError(t, err)
	assert.Equal(t, `/\w+/`, s)
}

// TestRegexEqual tests pattern-text equality.
func TestRegexEqual(t *testing.T) {
	rt := testutils.TestingRuntime()
	a, err := rt.NewRegex(`\d+`)
	require.NoError(t, err)
	b, err := rt.NewRegex(`\d+`)
	require.NoError(t, err)
	c, err := rt.NewRegex(`\w+`)
	require.NoError(t, err)

	eq, err := rt.CallAttr(a, "==", b)
	require.NoError(t, err)
	assert.Same(t, rt.True, eq, "distinct objects, same pattern")
	eq, err = rt.CallAttr(a, "==", c)
	require.NoError(t, err)
	assert.Same(t, rt.False, eq)
	eq, err = rt.CallAttr(a, "==", rt.NewText(`\d+`))
	require.NoError(t, err)
	assert.Same(t, rt.False, eq, "a regex never equals a non-regex")
}

// TestRegexBadPattern tests that compilation failure is an error, not a
// value.
func TestRegexBadPattern(t *testing.T) {
	rt := testutils.TestingRuntime()
	_, err := rt.NewRegex(`(`)
	require.Error(t, err)
}

// TestRegexGlobal tests that the prototype is reachable from the Kernel.
func TestRegexGlobal(t *testing.T) {
	rt := testutils.TestingRuntime()
	v, owner := rt.GetAttr(rt.Kernel, "Regex")
	require.NotNil(t, owner)
	assert.Same(t, rt.Regex, v)
}
