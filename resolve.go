package quest

import (
	"go.uber.org/zap"
)

// GetAttr resolves an attribute on obj, checking obj's own attributes and
// then its ancestors depth first in declaration order without visiting any
// object twice. The owner is the object which actually had the attribute;
// owner is nil if and only if the attribute was not found. Local attributes
// always win, and among parents the first match in declaration order wins;
// there is no diamond merging.
//
// Two reserved names are synthesized before own attributes are consulted:
// __id__, the object's identity as a Number, and __parents__, a fresh List of
// its current parents. An object defining __attr_missing__ has that hook
// invoked with the unresolved name before its parents are searched; any
// non-null result resolves the lookup.
func (rt *Runtime) GetAttr(obj *Object, name string) (value, owner *Object) {
	if obj == nil {
		return nil, nil
	}
	if v, ok := rt.reservedAttr(obj, name); ok {
		return v, obj
	}
	if v, ok := obj.attrs.get(name); ok {
		return v, obj
	}
	if v, ok := rt.attrMissing(obj, name); ok {
		return v, obj
	}
	rt.protoSet.Reset()
	rt.protoSet.Add(obj.id)
	value, owner = rt.getAttrAncestor(obj, name)
	if owner == nil {
		rt.log.Debug("resolve miss",
			zap.String("attr", name),
			zap.Uintptr("object", obj.id))
	}
	return value, owner
}

// getAttrAncestor searches obj's parents for an attribute. The caller must
// have reset protoSet and added obj itself.
func (rt *Runtime) getAttrAncestor(obj *Object, name string) (value, owner *Object) {
	for _, p := range obj.parents {
		if !rt.protoSet.Add(p.id) {
			continue
		}
		if v, ok := p.attrs.get(name); ok {
			return v, p
		}
		if v, o := rt.getAttrAncestor(p, name); o != nil {
			return v, o
		}
	}
	return nil, nil
}

// reservedAttr synthesizes the reserved attributes every object has.
func (rt *Runtime) reservedAttr(o *Object, name string) (*Object, bool) {
	switch name {
	case "__id__":
		return rt.NewNumber(float64(o.id)), true
	case "__parents__":
		return rt.NewList(o.parents...), true
	}
	return nil, false
}

// attrMissing invokes obj's own __attr_missing__ hook, if it defines one
// directly, with the unresolved name. A null result means the hook declined.
// The hook runs before parent traversal starts, so it is free to perform its
// own resolutions.
func (rt *Runtime) attrMissing(obj *Object, name string) (*Object, bool) {
	if name == "__attr_missing__" {
		return nil, false
	}
	hook, ok := obj.attrs.get("__attr_missing__")
	if !ok {
		return nil, false
	}
	r, err := rt.Activate(hook, obj, rt.NewText(name))
	if err != nil || r == nil || r == rt.Nil {
		return nil, false
	}
	return r, true
}

// GetLocal checks only obj's own attributes, with no parent traversal and no
// reserved names.
func (rt *Runtime) GetLocal(obj *Object, name string) (value *Object, ok bool) {
	if obj == nil {
		return nil, false
	}
	return obj.attrs.get(name)
}

// Resolve is GetAttr with the miss escalated to a NotFound error, for
// callers that treat absence as failure rather than as
// absence-of-capability.
func (rt *Runtime) Resolve(obj *Object, name string) (*Object, error) {
	v, owner := rt.GetAttr(obj, name)
	if owner == nil {
		return nil, newNotFound(name)
	}
	return v, nil
}

// SetAttr sets an attribute on obj, overwriting in place or appending in
// insertion order. Parents are never mutated. Assigning the reserved
// __parents__ name rebases the object instead: a List value supplies the
// whole new parent list and any other object becomes the sole parent.
func (rt *Runtime) SetAttr(obj *Object, name string, value *Object) {
	if name == "__parents__" {
		if l, ok := value.Value.([]*Object); ok {
			rt.Becomes(obj, l...)
		} else {
			rt.Becomes(obj, value)
		}
		return
	}
	obj.attrs.set(name, value)
}
