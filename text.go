package quest

import (
	"strings"
)

// NewText creates a Text object with the given value. Short common texts are
// memoized by the runtime. Texts should be treated as immutable.
func (rt *Runtime) NewText(value string) *Object {
	if x, ok := rt.textMemo[value]; ok {
		return x
	}
	return rt.newText(value)
}

func (rt *Runtime) newText(value string) *Object {
	return &Object{
		parents: []*Object{rt.Text},
		Value:   value,
		id:      nextObject(),
	}
}

// initText builds the Text prototype. Texts order lexically through
// Comparable.
func (rt *Runtime) initText() {
	rt.Text.Becomes(rt.Comparable, rt.Basic)
	rt.Text.SetOwn("name", rt.NewText("Text"))
	rt.Text.SetOwn("<=>", rt.NewFn("Text <=>", TextCompare))
	rt.Text.SetOwn("==", rt.NewFn("Text ==", TextEqual))
	rt.Text.SetOwn("+", rt.NewFn("Text +", TextConcat))
	rt.Text.SetOwn("len", rt.NewFn("Text len", TextLen))
	rt.Text.SetOwn("@text", rt.NewFn("Text @text", TextText))
	rt.Text.SetOwn("@bool", rt.NewFn("Text @bool", TextBool))
}

// textSelf returns the receiver's string value.
func textSelf(rt *Runtime, self *Object) (string, error) {
	v, ok := self.Value.(string)
	if !ok {
		return "", newUnsupportedOp("text method", rt.describe(self))
	}
	return v, nil
}

// TextCompare is a Text method.
//
// <=> orders texts lexically by bytes.
func TextCompare(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := textSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := textArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(float64(strings.Compare(a, b))), nil
}

// TextEqual is a Text method.
//
// == compares by string value; a non-Text argument is unequal.
func TextEqual(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := textSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	b, ok := other.Value.(string)
	return rt.Bool(ok && a == b), nil
}

// TextConcat is a Text method.
//
// + concatenates the receiver with the argument's @text form.
func TextConcat(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := textSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	b, err := rt.AsText(other)
	if err != nil {
		return nil, err
	}
	return rt.NewText(a + b), nil
}

// TextLen is a Text method.
//
// len is the length of the text in bytes.
func TextLen(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := textSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(float64(len(v))), nil
}

// TextText is a Text method.
//
// @text is the text itself.
func TextText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	if _, ok := self.Value.(string); ok {
		return self, nil
	}
	return nil, newUnsupportedOp("text method", rt.describe(self))
}

// TextBool is a Text method.
//
// @bool is false only for the empty text.
func TextBool(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := textSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.Bool(v != ""), nil
}
