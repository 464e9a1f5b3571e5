package quest

import (
	"fmt"
	"strings"
)

// initKernel builds the globals object an evaluator exposes to scripts: the
// singletons, the prototype tower, and the external-collaborator primitives
// print, disp, assert, and ifl.
func (rt *Runtime) initKernel() {
	rt.Kernel.Becomes(rt.Basic)
	disp := rt.NewFn("Kernel disp", KernelDisp)
	rt.Kernel.SetOwn("name", rt.NewText("Kernel"))
	rt.Kernel.SetOwn("true", rt.True)
	rt.Kernel.SetOwn("false", rt.False)
	rt.Kernel.SetOwn("null", rt.Nil)
	rt.Kernel.SetOwn("Pristine", rt.Pristine)
	rt.Kernel.SetOwn("Basic", rt.Basic)
	rt.Kernel.SetOwn("Comparable", rt.Comparable)
	rt.Kernel.SetOwn("Fn", rt.Function)
	rt.Kernel.SetOwn("BoundFn", rt.BoundFunction)
	rt.Kernel.SetOwn("List", rt.List)
	rt.Kernel.SetOwn("Number", rt.Number)
	rt.Kernel.SetOwn("Text", rt.Text)
	rt.Kernel.SetOwn("Boolean", rt.Boolean)
	rt.Kernel.SetOwn("Null", rt.Null)
	rt.Kernel.SetOwn("Regex", rt.Regex)
	rt.Kernel.SetOwn("print", disp)
	rt.Kernel.SetOwn("disp", disp)
	rt.Kernel.SetOwn("assert", rt.NewFn("Kernel assert", KernelAssert))
	rt.Kernel.SetOwn("ifl", rt.NewFn("Kernel ifl", KernelIfl))
	rt.Kernel.SetOwn("object", rt.NewFn("Kernel object", KernelObject))
}

// Print writes the @text forms of the arguments, separated by spaces and
// followed by a newline, to the runtime's output sink. Objects without @text
// use the default textual form; printing never fails for lack of one.
func (rt *Runtime) Print(args ...*Object) error {
	parts := make([]string, len(args))
	for i, a := range args {
		s, err := rt.AsText(a)
		if err != nil {
			return err
		}
		parts[i] = s
	}
	_, err := fmt.Fprintln(rt.out, strings.Join(parts, " "))
	return err
}

// Assert returns an AssertionFailed error carrying expr when cond is falsey.
// The failure is fatal to the enclosing evaluation; callers must not swallow
// it.
func (rt *Runtime) Assert(cond *Object, expr string) error {
	if !rt.Truthy(cond) {
		return newAssertionFailed(expr)
	}
	return nil
}

// IfL is the boolean-select primitive: a when cond is truthy, otherwise b.
// Both branches are already evaluated; there is no laziness.
func (rt *Runtime) IfL(cond, a, b *Object) *Object {
	if rt.Truthy(cond) {
		return a
	}
	return b
}

// KernelDisp is a Kernel method.
//
// disp prints the @text forms of its arguments. print is the same function.
func KernelDisp(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	if err := rt.Print(args...); err != nil {
		return nil, err
	}
	return rt.Nil, nil
}

// KernelAssert is a Kernel method.
//
// assert fails the enclosing evaluation when its argument is falsey and
// otherwise returns it. A second argument supplies the failure text.
func KernelAssert(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	cond, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	expr := ""
	if len(args) > 1 {
		expr, err = rt.AsText(args[1])
		if err != nil {
			return nil, err
		}
	} else {
		expr, err = rt.Inspect(cond)
		if err != nil {
			return nil, err
		}
	}
	if err := rt.Assert(cond, expr); err != nil {
		return nil, err
	}
	return cond, nil
}

// KernelIfl is a Kernel method.
//
// ifl selects its second or third argument by the truth of the first.
func KernelIfl(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	cond, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	a, err := argAt(args, 1)
	if err != nil {
		return nil, err
	}
	b, err := argAt(args, 2)
	if err != nil {
		return nil, err
	}
	return rt.IfL(cond, a, b), nil
}

// KernelObject is a Kernel method.
//
// object constructs a fresh empty object parented to Basic, the explicit
// construction operation for scripts with no class at hand.
func KernelObject(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	return rt.NewObject(), nil
}
