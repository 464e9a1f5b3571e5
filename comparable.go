package quest

// initComparable builds the Comparable mixin: a capability object whose
// comparison operators are derived purely from the host's <=>. An object
// that extends Comparable must itself provide a resolvable <=>; if it
// doesn't, every derived comparison fails with UnsupportedOp("<=>").
// Equality is deliberately not derived.
func (rt *Runtime) initComparable() {
	derive := func(name string, pass func(c int) bool) *Object {
		return rt.NewFn("Comparable "+name, func(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
			other, err := argAt(args, 0)
			if err != nil {
				return nil, err
			}
			c, err := rt.Compare(self, other)
			if err != nil {
				return nil, err
			}
			return rt.Bool(pass(c)), nil
		})
	}
	rt.Comparable.Becomes(rt.Basic)
	rt.Comparable.SetOwn("name", rt.NewText("Comparable"))
	rt.Comparable.SetOwn("<", derive("<", func(c int) bool { return c < 0 }))
	rt.Comparable.SetOwn("<=", derive("<=", func(c int) bool { return c <= 0 }))
	rt.Comparable.SetOwn(">", derive(">", func(c int) bool { return c > 0 }))
	rt.Comparable.SetOwn(">=", derive(">=", func(c int) bool { return c >= 0 }))
}
