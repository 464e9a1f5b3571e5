// Command quest-demo runs the classic Quest demonstration scenes against the
// object runtime: a class built from a plain object, the Comparable mixin,
// and literal-suffix hijacking through the ":" operator.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	quest "github.com/quest-lang/quest-go"
)

func main() {
	verbose := flag.Bool("v", false, "log resolution and dispatch events")
	flag.Parse()

	rt := quest.NewRuntime()
	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "quest-demo:", err)
			os.Exit(1)
		}
		defer log.Sync()
		rt.SetLogger(log)
	}

	if err := run(rt); err != nil {
		fmt.Fprintln(os.Stderr, "quest-demo:", err)
		os.Exit(1)
	}
}

func run(rt *quest.Runtime) error {
	if err := people(rt); err != nil {
		return err
	}
	if err := comparableAges(rt); err != nil {
		return err
	}
	return clockLiterals(rt)
}

// people builds a Person "class" the way Quest scripts do: a plain object
// holding the instance methods, a constructor in its "()" attribute, and
// instances rebased onto it.
func people(rt *quest.Runtime) error {
	person := rt.NewObject()
	rt.SetAttr(person, "name", rt.NewText("Person"))
	rt.SetAttr(person, "@text", rt.NewFn("Person @text", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		first, err := rt.Resolve(self, "first_name")
		if err != nil {
			return nil, err
		}
		last, err := rt.Resolve(self, "last_name")
		if err != nil {
			return nil, err
		}
		f, err := rt.AsText(first)
		if err != nil {
			return nil, err
		}
		l, err := rt.AsText(last)
		if err != nil {
			return nil, err
		}
		return rt.NewText(f + " " + l), nil
	}))
	rt.SetAttr(person, "()", rt.NewFn("Person ()", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		o := rt.NewObject()
		// A fresh instance detaches from its default parent and attaches to
		// the instance-methods object.
		rt.Becomes(o, self)
		if len(args) > 0 {
			rt.SetAttr(o, "first_name", args[0])
		}
		if len(args) > 1 {
			rt.SetAttr(o, "last_name", args[1])
		}
		return o, nil
	}))

	sam, err := rt.Call(person, rt.NewText("Sam"), rt.NewText("W"))
	if err != nil {
		return err
	}
	return rt.Print(sam)
}

// comparableAges extends a prototype with Comparable and a <=> over ages,
// then checks the derived operators agree with the sign of <=>.
func comparableAges(rt *quest.Runtime) error {
	aged := rt.NewObject()
	rt.Extend(aged, rt.Comparable)
	rt.SetAttr(aged, "<=>", rt.NewFn("aged <=>", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		mine, err := rt.Resolve(self, "age")
		if err != nil {
			return nil, err
		}
		other, err := argAtResolve(rt, args, "age")
		if err != nil {
			return nil, err
		}
		return rt.CallAttr(mine, "-", other)
	}))

	a := rt.NewObject()
	rt.Becomes(a, aged)
	rt.SetAttr(a, "age", rt.NewNumber(20))
	b := rt.NewObject()
	rt.Becomes(b, aged)
	rt.SetAttr(b, "age", rt.NewNumber(22))

	younger, err := rt.Less(a, b)
	if err != nil {
		return err
	}
	if err := rt.Assert(younger, "a < b"); err != nil {
		return err
	}
	older, err := rt.Greater(a, b)
	if err != nil {
		return err
	}
	if err := rt.Assert(rt.Bool(!rt.Truthy(older)), "not (a > b)"); err != nil {
		return err
	}
	return rt.Print(rt.NewText("20 < 22:"), younger)
}

func argAtResolve(rt *quest.Runtime, args []*quest.Object, name string) (*quest.Object, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing argument 0")
	}
	return rt.Resolve(args[0], name)
}

// clockLiterals redefines ":" on the Number prototype, which hijacks the
// literal-suffix syntax for every number: 12 : 30 becomes a wall-clock text.
func clockLiterals(rt *quest.Runtime) error {
	rt.SetAttr(rt.Number, ":", rt.NewFn("Number :", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		// self is the Number prototype; the operands follow.
		h, err := rt.AsText(args[0])
		if err != nil {
			return nil, err
		}
		m, err := rt.AsText(args[1])
		if err != nil {
			return nil, err
		}
		return rt.NewText(h + ":" + m), nil
	}))

	clock, err := rt.ColonCall(rt.NewNumber(12), rt.NewNumber(30))
	if err != nil {
		return err
	}
	return rt.Print(rt.NewText("the time is"), clock)
}
