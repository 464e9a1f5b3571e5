package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/quest-lang/quest-go"
	"github.com/quest-lang/quest-go/testutils"
)

// TestExtendAdditive tests that extend layers a capability without
// disturbing anything previously resolvable.
func TestExtendAdditive(t *testing.T) {
	rt := testutils.TestingRuntime()
	base := rt.NewObject()
	base.SetOwn("old", rt.NewText("kept"))
	o := rt.NewObject()
	rt.Becomes(o, base)
	o.SetOwn("own", rt.NewText("mine"))

	mixin := rt.NewObject()
	mixin.SetOwn("fresh", rt.NewText("granted"))
	rt.Extend(o, mixin)

	for attr, want := range map[string]string{"old": "kept", "own": "mine", "fresh": "granted"} {
		v, owner := rt.GetAttr(o, attr)
		require.NotNil(t, owner, "attribute %q must resolve", attr)
		assert.Equal(t, want, v.Value)
	}
	assert.Equal(t, []*quest.Object{base, mixin}, o.Protos())
}

// TestExtendNotIdempotent tests that extending twice appends twice; lookups
// stay correct.
func TestExtendNotIdempotent(t *testing.T) {
	rt := testutils.TestingRuntime()
	o := rt.NewObject()
	m := rt.NewObject()
	m.SetOwn("cap", rt.NewText("here"))
	rt.Extend(o, m)
	rt.Extend(o, m)
	assert.Len(t, o.Protos(), 3) // Basic plus the mixin twice
	v, owner := rt.GetAttr(o, "cap")
	require.Same(t, m, owner)
	assert.Equal(t, "here", v.Value)
}

// TestBecomesReplacing tests that becomes discards all previous parents in
// one step while own attributes stay untouched.
func TestBecomesReplacing(t *testing.T) {
	rt := testutils.TestingRuntime()
	old := rt.NewObject()
	old.SetOwn("legacy", rt.NewText("gone after"))
	o := rt.NewObject()
	rt.Becomes(o, old)
	o.SetOwn("own", rt.NewText("mine"))

	replacement := rt.NewObject()
	replacement.SetOwn("modern", rt.NewText("present"))
	rt.Becomes(o, replacement)

	_, owner := rt.GetAttr(o, "legacy")
	assert.Nil(t, owner, "old parents' attributes must stop resolving")
	v, owner := rt.GetAttr(o, "modern")
	require.Same(t, replacement, owner)
	assert.Equal(t, "present", v.Value)
	v, owner = rt.GetAttr(o, "own")
	require.Same(t, o, owner)
	assert.Equal(t, "mine", v.Value)
}

// TestBecomesSharedOnKept tests that an attribute present on both old and
// new parents keeps resolving across a rebase.
func TestBecomesSharedOnKept(t *testing.T) {
	rt := testutils.TestingRuntime()
	old := rt.NewObject()
	old.SetOwn("shared", rt.NewText("old copy"))
	next := rt.NewObject()
	next.SetOwn("shared", rt.NewText("new copy"))
	o := rt.NewObject()
	rt.Becomes(o, old)
	rt.Becomes(o, next)
	v, owner := rt.GetAttr(o, "shared")
	require.Same(t, next, owner)
	assert.Equal(t, "new copy", v.Value)
}

// TestSetParentsRebases tests that assigning the reserved __parents__
// attribute is the in-language spelling of becomes.
func TestSetParentsRebases(t *testing.T) {
	rt := testutils.TestingRuntime()
	p1 := rt.NewObject()
	p2 := rt.NewObject()
	o := rt.NewObject()

	t.Run("List", func(t *testing.T) {
		rt.SetAttr(o, "__parents__", rt.NewList(p1, p2))
		assert.Equal(t, []*quest.Object{p1, p2}, o.Protos())
	})
	t.Run("SingleObject", func(t *testing.T) {
		rt.SetAttr(o, "__parents__", p1)
		assert.Equal(t, []*quest.Object{p1}, o.Protos())
	})
}

// TestMixinDispatch tests that extend and becomes are themselves reachable
// through ordinary attribute dispatch on Basic.
func TestMixinDispatch(t *testing.T) {
	rt := testutils.TestingRuntime()
	o := rt.NewObject()
	m := rt.NewObject()
	m.SetOwn("cap", rt.NewText("granted"))

	r, err := rt.CallAttr(o, "extend", m)
	require.NoError(t, err)
	assert.Same(t, o, r)
	v, owner := rt.GetAttr(o, "cap")
	require.NotNil(t, owner)
	assert.Equal(t, "granted", v.Value)

	q := rt.NewObject()
	q.SetOwn("other", rt.NewText("replacement"))
	_, err = rt.CallAttr(o, "becomes", q)
	require.NoError(t, err)
	assert.Equal(t, []*quest.Object{q}, o.Protos())
	_, owner = rt.GetAttr(o, "cap")
	assert.Nil(t, owner)
}
