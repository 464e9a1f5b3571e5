package quest

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Operator describes one piece of built-in syntax dispatched through
// ordinary attribute lookup.
type Operator struct {
	// Calls is the canonical attribute the operator resolves.
	Calls string
	// OnType dispatches on the type of the left operand rather than the
	// operand itself, with the operand prepended to the arguments. Only the
	// literal-suffix operator ":" does this.
	OnType bool
	// Fallback reports whether a missing attribute falls back to a default
	// instead of an UnsupportedOp error. Only stringification does.
	Fallback bool
}

// OpTable maps built-in operator syntax to canonical attributes. Every
// operator is "just" an attribute lookup, so user objects participate in
// built-in syntax with no special-casing beyond this table.
type OpTable struct {
	Operators map[string]Operator
}

func (rt *Runtime) initOpTable() {
	rt.Operators = OpTable{Operators: map[string]Operator{
		"()":    {Calls: "()"},
		"<=>":   {Calls: "<=>"},
		"<":     {Calls: "<"},
		"<=":    {Calls: "<="},
		">":     {Calls: ">"},
		">=":    {Calls: ">="},
		":":     {Calls: ":", OnType: true},
		"@text": {Calls: "@text", Fallback: true},
	}}
}

// PerformOp dispatches operator syntax on a receiver: the operator's
// canonical attribute is resolved on the receiver (or on its type, for ":")
// and the result is invoked receiver first. A missing canonical attribute is
// an UnsupportedOp error naming the exact operator, except for @text, whose
// fallback is mandatory.
func (rt *Runtime) PerformOp(op string, recv *Object, args ...*Object) (*Object, error) {
	oper, ok := rt.Operators.Operators[op]
	if !ok {
		return nil, errors.Newf("unknown operator %q", op)
	}
	target := recv
	if oper.OnType {
		target = rt.TypeOf(recv)
		args = append([]*Object{recv}, args...)
	}
	v, owner := rt.GetAttr(target, oper.Calls)
	if owner == nil {
		if oper.Fallback {
			return rt.NewText(rt.describe(recv)), nil
		}
		return nil, newUnsupportedOp(op, rt.describe(recv))
	}
	rt.log.Debug("dispatch",
		zap.String("op", op),
		zap.Uintptr("receiver", recv.id),
		zap.Uintptr("owner", owner.id))
	return rt.Activate(v, target, args...)
}

// Call invokes obj through its "()" attribute with obj as the receiver
// followed by the explicit arguments. This is the construction operation for
// objects whose "()" builds instances.
func (rt *Runtime) Call(obj *Object, args ...*Object) (*Object, error) {
	return rt.PerformOp("()", obj, args...)
}

// Compare dispatches a <=> b and reduces the result to its sign: -1, 0, or
// 1. The <=> attribute must resolve on a and return a Number; only the sign
// of that number is meaningful.
func (rt *Runtime) Compare(a, b *Object) (int, error) {
	r, err := rt.PerformOp("<=>", a, b)
	if err != nil {
		return 0, err
	}
	v, ok := r.Value.(float64)
	if !ok {
		return 0, errors.Newf("<=> on %s returned %s, not a Number", rt.describe(a), rt.describe(r))
	}
	switch {
	case v < 0:
		return -1, nil
	case v > 0:
		return 1, nil
	}
	return 0, nil
}

// Less dispatches a < b.
func (rt *Runtime) Less(a, b *Object) (*Object, error) {
	return rt.PerformOp("<", a, b)
}

// LessEqual dispatches a <= b.
func (rt *Runtime) LessEqual(a, b *Object) (*Object, error) {
	return rt.PerformOp("<=", a, b)
}

// Greater dispatches a > b.
func (rt *Runtime) Greater(a, b *Object) (*Object, error) {
	return rt.PerformOp(">", a, b)
}

// GreaterEqual dispatches a >= b.
func (rt *Runtime) GreaterEqual(a, b *Object) (*Object, error) {
	return rt.PerformOp(">=", a, b)
}

// ColonCall dispatches a : b. Unlike every other operator, ":" resolves on
// the type of the left operand rather than the operand itself and is invoked
// with (type, a, b); redefining ":" on a value prototype therefore changes
// what literal-suffix syntax means for all of that type's values.
func (rt *Runtime) ColonCall(a, b *Object) (*Object, error) {
	return rt.PerformOp(":", a, b)
}

// TypeOf returns the type of an object: its first parent, the conventional
// place for a value's class object. A parentless object is its own type.
func (rt *Runtime) TypeOf(o *Object) *Object {
	if len(o.parents) == 0 {
		return o
	}
	return o.parents[0]
}

// TypeName returns the name of an object's type by resolving its name
// attribute. Every prototype the runtime builds carries one; objects with no
// resolvable name are plain Objects.
func (rt *Runtime) TypeName(o *Object) string {
	if v, owner := rt.GetAttr(o, "name"); owner != nil {
		if s, ok := v.Value.(string); ok {
			return s
		}
	}
	return "Object"
}

// AsText stringifies an object through its @text attribute. An object
// without a resolvable @text still stringifies: the fallback is the same
// default textual form inspect uses. Every object is printable.
func (rt *Runtime) AsText(o *Object) (string, error) {
	r, err := rt.PerformOp("@text", o)
	if err != nil {
		return "", err
	}
	s, ok := r.Value.(string)
	if !ok {
		return "", errors.Newf("@text on %s returned %s, not a Text", rt.describe(o), rt.describe(r))
	}
	return s, nil
}

// describe renders the default textual form of an object, used for the @text
// fallback and for naming receivers in errors.
func (rt *Runtime) describe(o *Object) string {
	if o == nil {
		return "null"
	}
	return fmt.Sprintf("%s_%#x", rt.TypeName(o), o.id)
}
