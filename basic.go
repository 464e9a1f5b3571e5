package quest

// initBasic builds the default parent of plain objects. Basic adds identity
// equality, boolean conversion, and the mixin composition methods on top of
// Pristine's meta-methods.
func (rt *Runtime) initBasic() {
	rt.Basic.Becomes(rt.Pristine)
	rt.Basic.SetOwn("name", rt.NewText("Basic"))
	rt.Basic.SetOwn("==", rt.NewFn("Basic ==", BasicEqual))
	rt.Basic.SetOwn("!=", rt.NewFn("Basic !=", BasicNotEqual))
	rt.Basic.SetOwn("@bool", rt.NewFn("Basic @bool", BasicBool))
	rt.Basic.SetOwn("extend", rt.NewFn("Basic extend", BasicExtend))
	rt.Basic.SetOwn("becomes", rt.NewFn("Basic becomes", BasicBecomes))
}

// BasicEqual is a Basic method.
//
// == compares by identity. Value types override this with value equality;
// equality is never derived from <=>.
func BasicEqual(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	return rt.Bool(self == other), nil
}

// BasicNotEqual is a Basic method.
//
// != is the negation of whatever == resolves to on the receiver.
func BasicNotEqual(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	r, err := rt.CallAttr(self, "==", other)
	if err != nil {
		return nil, err
	}
	return rt.Bool(!rt.Truthy(r)), nil
}

// BasicBool is a Basic method.
//
// @bool is true for any object that doesn't override it.
func BasicBool(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	return rt.True, nil
}

// BasicExtend is a Basic method.
//
// extend appends the argument to the receiver's parents, layering an
// additional capability without disturbing existing inheritance. Returns the
// receiver.
func BasicExtend(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	mixin, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	rt.Extend(self, mixin)
	return self, nil
}

// BasicBecomes is a Basic method.
//
// becomes replaces the receiver's parents wholesale with the argument: a
// List supplies the whole new parent list, and any other object becomes the
// sole parent. Returns the receiver.
func BasicBecomes(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	p, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	if l, ok := p.Value.([]*Object); ok {
		rt.Becomes(self, l...)
	} else {
		rt.Becomes(self, p)
	}
	return self, nil
}
