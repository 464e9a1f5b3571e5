package quest

// initBoolean builds the Boolean prototype and the true and false
// singletons.
func (rt *Runtime) initBoolean() {
	rt.Boolean.Becomes(rt.Basic)
	rt.Boolean.SetOwn("name", rt.NewText("Boolean"))
	rt.Boolean.SetOwn("@text", rt.NewFn("Boolean @text", BooleanText))
	rt.Boolean.SetOwn("not", rt.NewFn("Boolean not", BooleanNot))

	rt.True.Becomes(rt.Boolean)
	rt.True.Value = true
	rt.False.Becomes(rt.Boolean)
	rt.False.Value = false
}

// BooleanText is a Boolean method.
//
// @text is "true" or "false".
func BooleanText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	if v, ok := self.Value.(bool); ok {
		if v {
			return rt.NewText("true"), nil
		}
		return rt.NewText("false"), nil
	}
	return rt.NewText(rt.describe(self)), nil
}

// BooleanNot is a Boolean method.
//
// not is the opposite singleton.
func BooleanNot(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	return rt.Bool(!rt.Truthy(self)), nil
}

// initNull builds the Null prototype and the null singleton. Null is falsey
// and stringifies as "null"; the runtime's resolver also treats it as the
// "declined" result of an __attr_missing__ hook.
func (rt *Runtime) initNull() {
	rt.Null.Becomes(rt.Basic)
	rt.Null.SetOwn("name", rt.NewText("Null"))
	rt.Null.SetOwn("@text", rt.NewFn("Null @text", NullText))
	rt.Null.SetOwn("@bool", rt.NewFn("Null @bool", NullBool))

	rt.Nil.Becomes(rt.Null)
}

// NullText is a Null method.
//
// @text is "null".
func NullText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	return rt.NewText("null"), nil
}

// NullBool is a Null method.
//
// @bool is false.
func NullBool(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	return rt.False, nil
}
