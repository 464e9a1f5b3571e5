package quest

import (
	"io"
	"os"
	"sort"

	"github.com/zephyrtronium/contains"
	"go.uber.org/zap"
)

// Runtime is the interpreter context for Quest objects. It owns the prototype
// tower, the operator table, and the memo caches for common values.
//
// A Runtime and the objects it creates belong to a single logical thread of
// control; nothing here locks.
type Runtime struct {
	// Pristine is the root of the parent graph. It carries only the
	// attribute meta-methods (__get_attr__ and friends).
	Pristine *Object
	// Basic is the usual default parent of plain objects.
	Basic *Object
	// Kernel holds the globals an evaluator exposes to scripts.
	Kernel *Object

	// Comparable is the mixin deriving the comparison operators from <=>.
	Comparable *Object

	// Prototypes of the primitive value types.
	Function      *Object
	BoundFunction *Object
	List          *Object
	Number        *Object
	Text          *Object
	Boolean       *Object
	Null          *Object
	Regex         *Object

	// Singleton values.
	True  *Object
	False *Object
	Nil   *Object

	// Operators maps built-in syntax to canonical attributes.
	Operators OpTable

	// Common numbers and texts to avoid needing new objects for each use.
	numberMemo map[float64]*Object
	textMemo   map[string]*Object

	// protoSet is the per-lookup visited set. Resolution never re-enters the
	// runtime while it is in use, so one set per runtime suffices.
	protoSet contains.Set

	out io.Writer
	log *zap.Logger
}

// NewRuntime prepares a runtime with the full prototype tower initialized.
func NewRuntime() *Runtime {
	rt := &Runtime{
		Pristine:      &Object{id: nextObject()},
		Basic:         &Object{id: nextObject()},
		Kernel:        &Object{id: nextObject()},
		Comparable:    &Object{id: nextObject()},
		Function:      &Object{id: nextObject()},
		BoundFunction: &Object{id: nextObject()},
		List:          &Object{id: nextObject()},
		Number:        &Object{id: nextObject()},
		Text:          &Object{id: nextObject()},
		Boolean:       &Object{id: nextObject()},
		Null:          &Object{id: nextObject()},
		Regex:         &Object{id: nextObject()},

		True:  &Object{id: nextObject()},
		False: &Object{id: nextObject()},
		Nil:   &Object{id: nextObject()},

		// Memoize all integers in [-1, 255] plus the empty text and all
		// single-byte texts.
		numberMemo: make(map[float64]*Object, 257),
		textMemo:   make(map[string]*Object, 129),

		out: os.Stdout,
		log: zap.NewNop(),
	}
	rt.initOpTable()
	rt.initPristine()
	rt.initBasic()
	rt.initComparable()
	rt.initFunction()
	rt.initBoundFunction()
	rt.initList()
	rt.initNumber()
	rt.initText()
	rt.initBoolean()
	rt.initNull()
	rt.initRegex()
	rt.initKernel()

	for i := float64(-1); i <= 255; i++ {
		rt.memoizeNumber(i)
	}
	rt.memoizeText("")
	for i := rune(0); i <= 127; i++ {
		rt.memoizeText(string(i))
	}
	return rt
}

// SetLogger replaces the runtime's logger. The runtime emits debug-level
// events on resolution, dispatch, and parent rebasing; the default logger
// discards everything.
func (rt *Runtime) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	rt.log = log
}

// SetOutput redirects the print and disp kernel primitives. The default is
// standard output.
func (rt *Runtime) SetOutput(w io.Writer) {
	rt.out = w
}

// memoizeNumber creates a quick-access Number with the given value.
func (rt *Runtime) memoizeNumber(v float64) {
	rt.numberMemo[v] = rt.newNumber(v)
}

// memoizeText creates a quick-access Text with the given value.
func (rt *Runtime) memoizeText(v string) {
	rt.textMemo[v] = rt.newText(v)
}

// Slots is a convenience mapping for initializing several attributes at once.
type Slots = map[string]*Object

// NewObject creates an empty object whose only parent is Basic.
func (rt *Runtime) NewObject() *Object {
	return &Object{
		parents: []*Object{rt.Basic},
		id:      nextObject(),
	}
}

// ObjectWith creates an object with the given attributes and parents. With no
// parents the object delegates to Basic. Attributes initialized from the map
// are stored in sorted name order; use SetAttr afterward where insertion
// order matters.
func (rt *Runtime) ObjectWith(slots Slots, parents ...*Object) *Object {
	if len(parents) == 0 {
		parents = []*Object{rt.Basic}
	}
	o := &Object{id: nextObject()}
	o.Becomes(parents...)
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o.attrs.set(name, slots[name])
	}
	return o
}

// Extend appends mixin to obj's parent list, granting obj every capability
// resolvable on the mixin without disturbing existing parents or own
// attributes.
func (rt *Runtime) Extend(obj, mixin *Object) {
	obj.Extend(mixin)
	rt.log.Debug("extend",
		zap.Uintptr("object", obj.id),
		zap.Uintptr("mixin", mixin.id))
}

// Becomes replaces obj's parent list wholesale, detaching it from everything
// its previous parents provided.
func (rt *Runtime) Becomes(obj *Object, parents ...*Object) {
	obj.Becomes(parents...)
	rt.log.Debug("becomes",
		zap.Uintptr("object", obj.id),
		zap.Int("parents", len(parents)))
}

// Bool converts a Go bool to the corresponding Quest singleton.
func (rt *Runtime) Bool(c bool) *Object {
	if c {
		return rt.True
	}
	return rt.False
}

// Truthy reports the boolean interpretation of an object. The false, null,
// zero, and empty-text values are false; an object may override the default
// with a @bool attribute; everything else is true.
func (rt *Runtime) Truthy(o *Object) bool {
	if o == nil || o == rt.Nil || o == rt.False {
		return false
	}
	if o == rt.True {
		return true
	}
	switch v := o.Value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	}
	if v, owner := rt.GetAttr(o, "@bool"); owner != nil {
		r, err := rt.Activate(v, o)
		if err != nil {
			return true
		}
		if b, ok := r.Value.(bool); ok {
			return b
		}
		return r != rt.Nil && r != rt.False
	}
	return true
}
