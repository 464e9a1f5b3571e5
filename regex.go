package quest

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// NewRegex creates a Regex object by compiling the given pattern. A pattern
// that does not compile is an error, not a value.
func (rt *Runtime) NewRegex(pattern string) (*Object, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "bad regex %q", pattern)
	}
	return &Object{
		parents: []*Object{rt.Regex},
		Value:   re,
		id:      nextObject(),
	}, nil
}

// initRegex builds the Regex prototype.
func (rt *Runtime) initRegex() {
	rt.Regex.Becomes(rt.Basic)
	rt.Regex.SetOwn("name", rt.NewText("Regex"))
	rt.Regex.SetOwn("==", rt.NewFn("Regex ==", RegexEqual))
	rt.Regex.SetOwn("match", rt.NewFn("Regex match", RegexMatch))
	rt.Regex.SetOwn("does_match", rt.NewFn("Regex does_match", RegexDoesMatch))
	rt.Regex.SetOwn("@text", rt.NewFn("Regex @text", RegexText))
}

// regexSelf returns the receiver's compiled pattern.
func regexSelf(rt *Runtime, self *Object) (*regexp.Regexp, error) {
	v, ok := self.Value.(*regexp.Regexp)
	if !ok {
		return nil, newUnsupportedOp("regex method", rt.describe(self))
	}
	return v, nil
}

// RegexEqual is a Regex method.
//
// == compares by pattern text; a non-Regex argument is unequal.
func RegexEqual(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	a, err := regexSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	b, ok := other.Value.(*regexp.Regexp)
	return rt.Bool(ok && a.String() == b.String()), nil
}

// RegexMatch is a Regex method.
//
// match returns a List of the capture groups of the first match against the
// argument's @text form: the whole match first, then each group, with null
// for groups that did not participate. No match is an empty List.
func RegexMatch(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	re, err := regexSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	s, err := rt.AsText(other)
	if err != nil {
		return nil, err
	}
	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return rt.NewList(), nil
	}
	elems := make([]*Object, 0, len(idx)/2)
	for i := 0; i < len(idx); i += 2 {
		if idx[i] < 0 {
			elems = append(elems, rt.Nil)
			continue
		}
		elems = append(elems, rt.NewText(s[idx[i]:idx[i+1]]))
	}
	return rt.NewList(elems...), nil
}

// RegexDoesMatch is a Regex method.
//
// does_match reports whether the argument's @text form matches.
func RegexDoesMatch(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	re, err := regexSelf(rt, self)
	if err != nil {
		return nil, err
	}
	other, err := argAt(args, 0)
	if err != nil {
		return nil, err
	}
	s, err := rt.AsText(other)
	if err != nil {
		return nil, err
	}
	return rt.Bool(re.MatchString(s)), nil
}

// RegexText is a Regex method.
//
// @text renders the pattern between slashes.
func RegexText(rt *Runtime, self *Object, args ...*Object) (*Object, error) {
	re, err := regexSelf(rt, self)
	if err != nil {
		return nil, err
	}
	return rt.NewText("/" + re.String() + "/"), nil
}
