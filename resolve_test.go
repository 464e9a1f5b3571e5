package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/quest-lang/quest-go"
	"github.com/quest-lang/quest-go/testutils"
)

// TestGetAttr tests that resolution finds local and ancestor attributes with
// local attributes always winning and parents searched in declaration order.
func TestGetAttr(t *testing.T) {
	rt := testutils.TestingRuntime()

	parent1 := rt.NewObject()
	parent1.SetOwn("x", rt.NewText("p1 x"))
	parent1.SetOwn("y", rt.NewText("p1 y"))
	parent2 := rt.NewObject()
	parent2.SetOwn("y", rt.NewText("p2 y"))
	parent2.SetOwn("z", rt.NewText("p2 z"))
	o := rt.NewObject()
	rt.Becomes(o, parent1, parent2)
	o.SetOwn("x", rt.NewText("local x"))

	cases := map[string]struct {
		attr  string
		value string
		owner *quest.Object
	}{
		"LocalShadowsParent": {"x", "local x", o},
		"DeclOrderTieBreak":  {"y", "p1 y", parent1},
		"LaterParent":        {"z", "p2 z", parent2},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			v, owner := rt.GetAttr(o, c.attr)
			require.NotNil(t, owner, "attribute %q must resolve", c.attr)
			assert.Same(t, c.owner, owner)
			assert.Equal(t, c.value, v.Value)
		})
	}

	t.Run("Never", func(t *testing.T) {
		v, owner := rt.GetAttr(o, "fail to find")
		assert.Nil(t, v)
		assert.Nil(t, owner)
	})
}

// TestGetAttrDepthFirst tests that a grandparent of an earlier parent beats
// a later parent.
func TestGetAttrDepthFirst(t *testing.T) {
	rt := testutils.TestingRuntime()
	grandparent := rt.NewObject()
	grandparent.SetOwn("w", rt.NewText("deep"))
	early := rt.NewObject()
	rt.Becomes(early, grandparent)
	late := rt.NewObject()
	late.SetOwn("w", rt.NewText("shallow"))
	o := rt.NewObject()
	rt.Becomes(o, early, late)

	v, owner := rt.GetAttr(o, "w")
	require.NotNil(t, owner)
	assert.Same(t, grandparent, owner, "depth-first order: earlier parent's chain wins")
	assert.Equal(t, "deep", v.Value)
}

// TestGetAttrCycle tests that resolution terminates on cyclic parent graphs,
// both for hits and for misses.
func TestGetAttrCycle(t *testing.T) {
	rt := testutils.TestingRuntime()
	a := rt.NewObject()
	b := rt.NewObject()
	rt.Becomes(a, b)
	rt.Becomes(b, a)
	b.SetOwn("z", rt.NewText("found"))

	t.Run("Hit", func(t *testing.T) {
		v, owner := rt.GetAttr(a, "z")
		require.Same(t, b, owner)
		assert.Equal(t, "found", v.Value)
	})
	t.Run("Miss", func(t *testing.T) {
		_, owner := rt.GetAttr(a, "nothing here")
		assert.Nil(t, owner)
	})
	t.Run("SelfParent", func(t *testing.T) {
		s := rt.NewObject()
		rt.Becomes(s, s)
		_, owner := rt.GetAttr(s, "nothing here")
		assert.Nil(t, owner)
	})
}

// TestGetAttrDuplicateParents tests that a parent listed twice still
// resolves correctly.
func TestGetAttrDuplicateParents(t *testing.T) {
	rt := testutils.TestingRuntime()
	p := rt.NewObject()
	p.SetOwn("dup", rt.NewText("once"))
	o := rt.NewObject()
	rt.Becomes(o, p, p)
	v, owner := rt.GetAttr(o, "dup")
	require.Same(t, p, owner)
	assert.Equal(t, "once", v.Value)
}

// TestGetLocal tests that local lookup never consults parents.
func TestGetLocal(t *testing.T) {
	rt := testutils.TestingRuntime()
	p := rt.NewObject()
	p.SetOwn("inherited", rt.NewText("from parent"))
	o := rt.NewObject()
	rt.Becomes(o, p)
	o.SetOwn("local", rt.NewText("mine"))

	cases := map[string]struct {
		attr string
		ok   bool
	}{
		"Local":    {"local", true},
		"Ancestor": {"inherited", false},
		"Never":    {"fail to find", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := rt.GetLocal(o, c.attr)
			assert.Equal(t, c.ok, ok)
		})
	}
}

// TestResolveNotFound tests that the error-flavored resolver reports misses
// as NotFound.
func TestResolveNotFound(t *testing.T) {
	rt := testutils.TestingRuntime()
	o := rt.NewObject()
	_, err := rt.Resolve(o, "absent")
	require.Error(t, err)
	assert.True(t, quest.IsNotFound(err))
}

// TestReservedAttrs tests the synthesized __id__ and __parents__ attributes.
func TestReservedAttrs(t *testing.T) {
	rt := testutils.TestingRuntime()
	p := rt.NewObject()
	o := rt.NewObject()
	rt.Becomes(o, p)

	t.Run("ID", func(t *testing.T) {
		v, owner := rt.GetAttr(o, "__id__")
		require.Same(t, o, owner)
		assert.Equal(t, float64(o.UniqueID()), v.Value)
	})
	t.Run("IDShadowProof", func(t *testing.T) {
		o.SetOwn("__id__", rt.NewNumber(-12))
		v, _ := rt.GetAttr(o, "__id__")
		assert.Equal(t, float64(o.UniqueID()), v.Value, "reads give the original id regardless of assignment")
	})
	t.Run("Parents", func(t *testing.T) {
		v, owner := rt.GetAttr(o, "__parents__")
		require.Same(t, o, owner)
		l, ok := v.Value.([]*quest.Object)
		require.True(t, ok)
		require.Len(t, l, 1)
		assert.Same(t, p, l[0])
	})
}

// TestAttrMissingHook tests the __attr_missing__ hook: consulted after own
// attributes, before parents, only when defined directly on the receiver,
// and declined by returning null.
func TestAttrMissingHook(t *testing.T) {
	rt := quest.NewRuntime()
	o := rt.NewObject()
	o.SetOwn("have", rt.NewText("own"))
	o.SetOwn("__attr_missing__", rt.NewFn("hook", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		name, _ := args[0].Value.(string)
		if name == "ghost" {
			return rt.NewText("synthesized"), nil
		}
		return rt.Nil, nil
	}))

	t.Run("Synthesized", func(t *testing.T) {
		v, owner := rt.GetAttr(o, "ghost")
		require.Same(t, o, owner)
		assert.Equal(t, "synthesized", v.Value)
	})
	t.Run("OwnStillWins", func(t *testing.T) {
		v, _ := rt.GetAttr(o, "have")
		assert.Equal(t, "own", v.Value)
	})
	t.Run("DeclinedFallsThrough", func(t *testing.T) {
		p := rt.NewObject()
		p.SetOwn("deep", rt.NewText("parental"))
		rt.Becomes(o, p)
		v, owner := rt.GetAttr(o, "deep")
		require.Same(t, p, owner)
		assert.Equal(t, "parental", v.Value)
	})
	t.Run("NotInheritedHook", func(t *testing.T) {
		child := rt.NewObject()
		rt.Becomes(child, o)
		_, owner := rt.GetAttr(child, "ghost")
		assert.Nil(t, owner, "the hook fires only for the object defining it")
	})
}
