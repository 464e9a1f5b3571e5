package quest

import (
	"math"
	"strings"
)

// NewList creates a List object holding the given elements. The reserved
// __parents__ attribute resolves to one of these.
func (rt *Runtime) NewList(elems ...*Object) *Object {
	v := make([]*Object, len(elems))
	copy(v, elems)
	return &Object{
		parents: []*Object{rt.List},
		Value:   v,
		id:      nextObject(),
	}
}

// initList builds the List prototype.
func (rt *Runtime) initList() {
	rt.List.Becomes(rt.Basic)
	rt.List.SetOwn("name", rt.NewText("List"))
	rt.List.SetOwn("len", rt.NewFn("List len", ListLen))
	rt.List.SetOwn("get", rt.NewFn("List get", ListGet))
	rt.List.SetOwn("@text", rt.NewFn("List @text", ListText))
	rt.List.SetOwn("@bool", rt.NewFn("List @bool", ListBool))
}

// listSelf returns the receiver's elements.
func listSelf(rt *Runtime, self *Object) ([]*Object, error) {
	v, ok := self.Value.([]*Object)
	if !ok {
		return nil, newUnsupportedOp("list method", rt.describe(self))
	}
	return v, nil
}

// ListLen is a List method.
//
// len is the number of elements.
func ListLen(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := listSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(float64(len(v))), nil
}

// ListGet is a List method.
//
// get returns the element at the given index, or null when out of range.
func ListGet(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := listSelf(rt, self)
	if err != nil {
		return nil, err
	}
	i, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	// Range-check before converting; int(i) for a NaN, infinite, or
	// out-of-range float64 is implementation-defined.
	if math.IsNaN(i) || i < 0 || i >= float64(len(v)) {
		return rt.Nil, nil
	}
	return v[int(i)], nil
}

// ListText is a List method.
//
// @text renders the elements' inspect forms between brackets.
func ListText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := listSelf(rt, self)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(v))
	for i, e := range v {
		s, err := rt.Inspect(e)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return rt.NewText("[" + strings.Join(parts, ", ") + "]"), nil
}

// ListBool is a List method.
//
// @bool is false only for the empty list.
func ListBool(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := listSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.Bool(len(v) != 0), nil
}
