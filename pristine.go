package quest

import (
	"strconv"

	"github.com/zephyrtronium/contains"
)

// initPristine builds the root of the parent graph. Pristine carries only
// the bare minimum: the attribute meta-methods through which everything else
// can be reached from inside the language.
func (rt *Runtime) initPristine() {
	get := rt.NewFn("Pristine __get_attr__", PristineGetAttr)
	set := rt.NewFn("Pristine __set_attr__", PristineSetAttr)
	rt.Pristine.SetOwn("name", rt.NewText("Pristine"))
	rt.Pristine.SetOwn("inspect", rt.NewFn("Pristine inspect", PristineInspect))
	rt.Pristine.SetOwn("__keys__", rt.NewFn("Pristine __keys__", PristineKeys))
	rt.Pristine.SetOwn("__call_attr__", rt.NewFn("Pristine __call_attr__", PristineCallAttr))
	rt.Pristine.SetOwn("__get_attr__", get)
	rt.Pristine.SetOwn("__set_attr__", set)
	rt.Pristine.SetOwn("__has_attr__", rt.NewFn("Pristine __has_attr__", PristineHasAttr))
	rt.Pristine.SetOwn("__del_attr__", rt.NewFn("Pristine __del_attr__", PristineDelAttr))
	// :: and .= are the infix spellings of attribute access.
	rt.Pristine.SetOwn("::", get)
	rt.Pristine.SetOwn(".=", set)
}

// PristineInspect is a Pristine method.
//
// inspect returns a debugging representation of the receiver. Texts are
// quoted; everything else uses its @text form.
func PristineInspect(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	s, err := rt.Inspect(self)
	if err != nil {
		return nil, err
	}
	return rt.NewText(s), nil
}

// Inspect returns the debugging representation of an object: quoted for
// texts, the @text form otherwise.
func (rt *Runtime) Inspect(o *Object) (string, error) {
	if s, ok := o.Value.(string); ok {
		return strconv.Quote(s), nil
	}
	return rt.AsText(o)
}

// PristineGetAttr is a Pristine method.
//
// __get_attr__ resolves the named attribute on the receiver or its
// ancestors. Unlike operator dispatch, the attribute is returned without
// activation; a miss is a NotFound error.
func PristineGetAttr(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	name, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.Resolve(self, name)
}

// PristineSetAttr is a Pristine method.
//
// __set_attr__ sets an attribute on the receiver only, never a parent, and
// returns the assigned value. Assigning __parents__ rebases the receiver.
func PristineSetAttr(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	name, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	v, err := argAt(args, 1)
	if err != nil {
		return nil, err
	}
	rt.SetAttr(self, name, v)
	return v, nil
}

// PristineHasAttr is a Pristine method.
//
// __has_attr__ reports whether the named attribute resolves on the receiver
// or its ancestors.
func PristineHasAttr(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	name, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	_, owner := rt.GetAttr(self, name)
	return rt.Bool(owner != nil), nil
}

// PristineDelAttr is a Pristine method.
//
// __del_attr__ removes an attribute from the receiver only and returns the
// removed value. Deleting an attribute a parent still has leaves it
// resolvable. Deleting an absent attribute is a NotFound error.
func PristineDelAttr(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	name, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	v, ok := self.GetOwn(name)
	if !ok {
		return nil, newNotFound(name)
	}
	self.DeleteOwn(name)
	return v, nil
}

// PristineCallAttr is a Pristine method.
//
// __call_attr__ resolves the named attribute and invokes it with the
// receiver and the remaining arguments, so obj.__call_attr__('+', 4) is the
// same as obj + 4 unless something has been overwritten.
func PristineCallAttr(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	name, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.CallAttr(self, name, args[1:]...)
}

// PristineKeys is a Pristine method.
//
// __keys__ returns the receiver's attribute names in insertion order. With a
// true argument, ancestors' names are appended in resolution order, each
// name listed once.
func PristineKeys(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	includeParents := false
	if len(args) > 0 {
		includeParents = rt.Truthy(args[0])
	}
	seen := make(map[string]bool, self.attrs.len())
	var names []string
	collect := func(o *Object) {
		o.attrs.foreach(func(name string, _ *Object) bool {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			return true
		})
	}
	collect(self)
	if includeParents {
		set := contains.Set{}
		set.Add(self.UniqueID())
		stack := make([]*Object, 0, len(self.parents))
		for i := len(self.parents) - 1; i >= 0; i-- {
			stack = append(stack, self.parents[i])
		}
		for len(stack) > 0 {
			o := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !set.Add(o.UniqueID()) {
				continue
			}
			collect(o)
			for i := len(o.parents) - 1; i >= 0; i-- {
				stack = append(stack, o.parents[i])
			}
		}
	}
	elems := make([]*Object, len(names))
	for i, name := range names {
		elems[i] = rt.NewText(name)
	}
	return rt.NewList(elems...), nil
}
