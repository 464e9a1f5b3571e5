package quest

import (
	"strconv"
)

// NewNumber creates a Number object with the given value. If the value is
// memoized by the runtime, that object is returned; otherwise a new object
// is allocated. Numbers should be treated as immutable.
func (rt *Runtime) NewNumber(value float64) *Object {
	if x, ok := rt.numberMemo[value]; ok {
		return x
	}
	return rt.newNumber(value)
}

func (rt *Runtime) newNumber(value float64) *Object {
	return &Object{
		parents: []*Object{rt.Number},
		Value:   value,
		id:      nextObject(),
	}
}

// initNumber builds the Number prototype. Numbers inherit the comparison
// operators from Comparable and supply the <=> they are derived from.
func (rt *Runtime) initNumber() {
	rt.Number.Becomes(rt.Comparable, rt.Basic)
	rt.Number.SetOwn("name", rt.NewText("Number"))
	rt.Number.SetOwn("<=>", rt.NewFn("Number <=>", NumberCompare))
	rt.Number.SetOwn("==", rt.NewFn("Number ==", NumberEqual))
	rt.Number.SetOwn("+", rt.NewFn("Number +", NumberAdd))
	rt.Number.SetOwn("-", rt.NewFn("Number -", NumberSub))
	rt.Number.SetOwn("*", rt.NewFn("Number *", NumberMul))
	rt.Number.SetOwn("/", rt.NewFn("Number /", NumberDiv))
	rt.Number.SetOwn("@text", rt.NewFn("Number @text", NumberText))
	rt.Number.SetOwn("@bool", rt.NewFn("Number @bool", NumberBool))
}

// numberSelf returns the receiver's numeric value.
func numberSelf(rt *Runtime, self *Object) (float64, error) {
	v, ok := self.Value.(float64)
	if !ok {
		return 0, newUnsupportedOp("number method", rt.describe(self))
	}
	return v, nil
}

// NumberCompare is a Number method.
//
// <=> returns the three-way ordering of the receiver and the argument as -1,
// 0, or 1.
func NumberCompare(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	switch {
	case a < b:
		return rt.NewNumber(-1), nil
	case a > b:
		return rt.NewNumber(1), nil
	}
	return rt.NewNumber(0), nil
}

// NumberEqual is a Number method.
//
// == compares by numeric value; a non-Number argument is unequal rather than
// an error.
func NumberEqual(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	b, ok := other.Value.(float64)
	return rt.Bool(ok && a == b), nil
}

// NumberAdd is a Number method.
//
// + sums the receiver and the argument.
func NumberAdd(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(a + b), nil
}

// NumberSub is a Number method.
//
// - subtracts the argument from the receiver.
func NumberSub(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(a - b), nil
}

// NumberMul is a Number method.
//
// * multiplies the receiver and the argument.
func NumberMul(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(a * b), nil
}

// NumberDiv is a Number method.
//
// / divides the receiver by the argument. Division by zero follows IEEE 754,
// as the original does.
func NumberDiv(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	b, err := numberArgAt(rt, args, 0)
	if err != nil {
		return nil, err
	}
	return rt.NewNumber(a / b), nil
}

// NumberText is a Number method.
//
// @text renders the number in the shortest representation that round-trips.
func NumberText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.NewText(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// NumberBool is a Number method.
//
// @bool is false only for zero.
func NumberBool(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	v, err := numberSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.Bool(v != 0), nil
}
