// Package testutils provides utilities for testing the Quest object runtime
// in Go.
package testutils

import (
	"bytes"
	"sync"

	quest "github.com/quest-lang/quest-go"
)

// testRT is the runtime used for all tests.
var testRT *quest.Runtime

var testRTInit sync.Once

// TestingRuntime returns a runtime for testing. The runtime is shared by all
// tests that use this package.
func TestingRuntime() *quest.Runtime {
	testRTInit.Do(ResetTestingRuntime)
	return testRT
}

// ResetTestingRuntime reinitializes the runtime returned by TestingRuntime.
// It is not safe to call this in parallel tests.
func ResetTestingRuntime() {
	testRT = quest.NewRuntime()
}

// CaptureOutput redirects the runtime's print sink to a fresh buffer and
// returns it.
func CaptureOutput(rt *quest.Runtime) *bytes.Buffer {
	var buf bytes.Buffer
	rt.SetOutput(&buf)
	return &buf
}

// ConstFn builds a callable that ignores its arguments and returns v.
func ConstFn(rt *quest.Runtime, name string, v *quest.Object) *quest.Object {
	return rt.NewFn(name, func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		return v, nil
	})
}

// AgedPrototype builds a mixin host for comparison tests: an object
// extending Comparable whose <=> is the difference of the operands' age
// attributes.
func AgedPrototype(rt *quest.Runtime) *quest.Object {
	aged := rt.NewObject()
	rt.Extend(aged, rt.Comparable)
	rt.SetAttr(aged, "<=>", rt.NewFn("aged <=>", func(rt *quest.Runtime, self *quest.Object, args ...*quest.Object) (*quest.Object, error) {
		mine, err := rt.Resolve(self, "age")
		if err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, &quest.NotFound{Name: "age"}
		}
		other, err := rt.Resolve(args[0], "age")
		if err != nil {
			return nil, err
		}
		return rt.CallAttr(mine, "-", other)
	}))
	return aged
}

// AgedInstance builds an instance of the given aged prototype with the given
// age.
func AgedInstance(rt *quest.Runtime, aged *quest.Object, age float64) *quest.Object {
	o := rt.NewObject()
	rt.Becomes(o, aged)
	rt.SetAttr(o, "age", rt.NewNumber(age))
	return o
}
