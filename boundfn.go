package quest

// NewBound creates a callable that fixes owner as the implicit first argument
// of fn. The binding is carried in ordinary attributes, __bound_object_owner__
// and __bound_object__, so scripts can inspect and rebind it.
func (rt *Runtime) NewBound(owner, fn *Object) *Object {
	o := &Object{
		parents: []*Object{rt.BoundFunction},
		id:      nextObject(),
	}
	o.attrs.set("__bound_object_owner__", owner)
	o.attrs.set("__bound_object__", fn)
	return o
}

// initBoundFunction builds the prototype of bound callables. A bound callable
// has no primitive value; activation reaches it through its "()" attribute,
// which forwards to the unbound callable with the owner prepended.
func (rt *Runtime) initBoundFunction() {
	rt.BoundFunction.Becomes(rt.Function)
	rt.BoundFunction.SetOwn("name", rt.NewText("BoundFn"))
	rt.BoundFunction.SetOwn("()", rt.NewFn("BoundFn ()", BoundFnCall))
}

// BoundFnCall is a BoundFn method.
//
// () invokes the bound callable with the bound owner followed by the explicit
// arguments. The receiver the caller supplied is irrelevant; the binding
// decides.
func BoundFnCall(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	owner, err := rt.Resolve(self, "__bound_object_owner__")
	if err != nil {
		return nil, err
	}
	fn, err := rt.Resolve(self, "__bound_object__")
	if err != nil {
		return nil, err
	}
	return rt.CallAttr(fn, "()", append([]*Object{owner}, args...)...)
}
