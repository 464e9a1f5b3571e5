package quest

import (
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Object is the basic type of Quest. Everything is an Object.
//
// An object owns an ordered attribute map and an ordered list of parents.
// Attribute lookups that miss the object's own attributes delegate to the
// parents in declaration order, so an object's parents determine its
// behavior; they are shared by reference, never copied or owned.
//
// Always obtain objects from a Runtime's constructors. Objects are not safe
// for concurrent use; the runtime model is a single logical thread of
// control.
type Object struct {
	// attrs is the object's own attributes.
	attrs attrs
	// parents is the object's parent list, in resolution order.
	parents []*Object

	// Value is the object's primitive value, if any. The runtime stores
	// float64 for numbers, string for texts, bool for booleans, Fn for
	// callables, and []*Object for lists; embedders may store anything.
	Value interface{}

	// id is the object's unique ID.
	id uintptr
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// UniqueID returns the object's unique ID. Reading the reserved __id__
// attribute yields the same value regardless of any attribute assigned over
// it.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// GetOwn returns the value of an attribute on o itself, without consulting
// parents or reserved attributes.
func (o *Object) GetOwn(name string) (*Object, bool) {
	return o.attrs.get(name)
}

// HasOwn reports whether o itself has the attribute, without consulting
// parents.
func (o *Object) HasOwn(name string) bool {
	return o.attrs.has(name)
}

// SetOwn sets an attribute on o itself. An existing attribute is overwritten
// in place; a new one is appended, preserving insertion order. Parents are
// never mutated. Most callers want Runtime.SetAttr, which additionally
// interprets the reserved __parents__ name.
func (o *Object) SetOwn(name string, value *Object) {
	o.attrs.set(name, value)
}

// DeleteOwn removes an attribute from o itself, reporting whether it was
// present. Attributes of parents are unaffected and remain resolvable.
func (o *Object) DeleteOwn(name string) bool {
	return o.attrs.delete(name)
}

// AttrNames returns the names of o's own attributes in insertion order.
func (o *Object) AttrNames() []string {
	return o.attrs.names()
}

// ForeachOwn calls f for each of o's own attributes in insertion order until
// f returns false.
func (o *Object) ForeachOwn(f func(name string, value *Object) bool) {
	o.attrs.foreach(f)
}

// Protos returns a copy of o's parent list.
func (o *Object) Protos() []*Object {
	r := make([]*Object, len(o.parents))
	copy(r, o.parents)
	return r
}

// ForeachParent calls f for each of o's parents in resolution order until f
// returns false.
func (o *Object) ForeachParent(f func(p *Object) bool) {
	for _, p := range o.parents {
		if !f(p) {
			return
		}
	}
}

// Extend appends mixin to o's parent list, leaving existing parents and own
// attributes untouched. Extending twice with the same mixin appends it twice;
// resolution stays correct via its visited set, just wastefully.
func (o *Object) Extend(mixin *Object) {
	o.parents = append(o.parents, mixin)
}

// Becomes replaces o's parent list wholesale with the given parents. Anything
// previously resolvable only through the old parents stops resolving; own
// attributes are untouched. The replacement is a single step, never a
// partially updated list.
func (o *Object) Becomes(parents ...*Object) {
	r := make([]*Object, len(parents))
	copy(r, parents)
	o.parents = r
}

// IsKindOf reports whether o is kind or has kind anywhere among its
// ancestors.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil {
		return false
	}
	// Not on the lookup hot path, so traversal order doesn't matter; any
	// order visiting each ancestor once will do.
	stack := []*Object{o}
	set := contains.Set{}
	set.Add(o.UniqueID())
	for len(stack) > 0 {
		obj := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if obj == kind {
			return true
		}
		for _, p := range obj.parents {
			if set.Add(p.UniqueID()) {
				stack = append(stack, p)
			}
		}
	}
	return false
}
