package quest

import (
	"github.com/cockroachdb/errors"
)

// An Fn is a statically compiled function which can be invoked as a Quest
// callable. The receiver is passed explicitly as self; there is no hidden
// context. Fns return a value or an error, never both.
type Fn func(rt *Runtime, self *Object, args ...*Object) (*Object, error)

// NewFn creates a callable object wrapping f. The name appears in the
// object's textual forms and in errors.
func (rt *Runtime) NewFn(name string, f Fn) *Object {
	o := &Object{
		parents: []*Object{rt.Function},
		Value:   f,
		id:      nextObject(),
	}
	o.attrs.set("name", rt.NewText(name))
	return o
}

// initFunction builds the prototype of native callables. Invoking a
// function's "()" through dispatch reaches the function itself.
func (rt *Runtime) initFunction() {
	rt.Function.Becomes(rt.Basic)
	rt.Function.SetOwn("name", rt.NewText("Fn"))
	rt.Function.SetOwn("()", rt.NewFn("Fn ()", FnCall))
	rt.Function.SetOwn("@text", rt.NewFn("Fn @text", FnText))
}

// FnCall is an Fn method.
//
// () invokes the receiving function with the given arguments. The receiver
// passed to the function is the function object itself; bound callables
// carry their subject in their own attributes.
func FnCall(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	if f, ok := self.Value.(Fn); ok {
		return f(rt, self, args...)
	}
	return nil, newUnsupportedOp("()", rt.describe(self))
}

// FnText is an Fn method.
//
// @text is the function's name.
func FnText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	if v, ok := self.GetOwn("name"); ok {
		if s, ok := v.Value.(string); ok {
			return rt.NewText(s), nil
		}
	}
	return rt.NewText(rt.describe(self)), nil
}

// maxActivateDepth bounds chains of callable objects whose "()" resolves to
// yet another non-native callable.
const maxActivateDepth = 32

// Activate invokes a callable value with the given receiver. A native Fn is
// called directly. Any other object is invoked through its own "()"
// attribute with itself as the receiver, which is how callables built inside
// the language (bound functions) work.
func (rt *Runtime) Activate(value, self *Object, args ...*Object) (*Object, error) {
	for depth := 0; depth < maxActivateDepth; depth++ {
		if f, ok := value.Value.(Fn); ok {
			return f(rt, self, args...)
		}
		v, owner := rt.GetAttr(value, "()")
		if owner == nil {
			return nil, newUnsupportedOp("()", rt.describe(value))
		}
		self, value = value, v
	}
	return nil, errors.Newf("callable chain deeper than %d while activating %s", maxActivateDepth, rt.describe(self))
}

// CallAttr resolves an attribute on obj and invokes it with obj as the
// receiver. A resolution miss is reported as NotFound.
func (rt *Runtime) CallAttr(obj *Object, name string, args ...*Object) (*Object, error) {
	v, owner := rt.GetAttr(obj, name)
	if owner == nil {
		return nil, newNotFound(name)
	}
	return rt.Activate(v, obj, args...)
}

// argAt returns the nth argument, or an error if there are not enough.
func argAt(args []*Object, n int) (*Object, error) {
	if n >= len(args) {
		return nil, errors.Newf("missing argument %d", n)
	}
	return args[n], nil
}

// numberArgAt returns the nth argument's numeric value.
func numberArgAt(rt *Runtime, args []*Object, n int) (float64, error) {
	o, err := argAt(args, n)
	if err != nil {
		return 0, err
	}
	v, ok := o.Value.(float64)
	if !ok {
		return 0, errors.Newf("argument %d must be Number, not %s", n, rt.TypeName(o))
	}
	return v, nil
}

// textArgAt returns the nth argument's string value.
func textArgAt(rt *Runtime, args []*Object, n int) (string, error) {
	o, err := argAt(args, n)
	if err != nil {
		return "", err
	}
	v, ok := o.Value.(string)
	if !ok {
		return "", errors.Newf("argument %d must be Text, not %s", n, rt.TypeName(o))
	}
	return v, nil
}
