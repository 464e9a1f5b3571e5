package quest

// attrs is the ordered attribute mapping owned by a single object. Lookup is
// by exact string equality and iteration follows insertion order. Overwriting
// an attribute keeps its original position; deleting and re-adding moves it
// to the end.
type attrs struct {
	index   map[string]int
	entries []attrEntry
}

type attrEntry struct {
	name  string
	value *Object
}

// get returns the value of a local attribute.
func (a *attrs) get(name string) (*Object, bool) {
	i, ok := a.index[name]
	if !ok {
		return nil, false
	}
	return a.entries[i].value, true
}

// has reports whether the attribute exists locally.
func (a *attrs) has(name string) bool {
	_, ok := a.index[name]
	return ok
}

// set overwrites an existing attribute in place or appends a new one.
func (a *attrs) set(name string, value *Object) {
	if i, ok := a.index[name]; ok {
		a.entries[i].value = value
		return
	}
	if a.index == nil {
		a.index = map[string]int{}
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, attrEntry{name: name, value: value})
}

// delete removes an attribute if it exists and reports whether it did.
func (a *attrs) delete(name string) bool {
	i, ok := a.index[name]
	if !ok {
		return false
	}
	delete(a.index, name)
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].name] = j
	}
	return true
}

// names returns the attribute names in insertion order.
func (a *attrs) names() []string {
	r := make([]string, len(a.entries))
	for i, e := range a.entries {
		r[i] = e.name
	}
	return r
}

// foreach calls f for each attribute in insertion order until f returns
// false.
func (a *attrs) foreach(f func(name string, value *Object) bool) {
	for _, e := range a.entries {
		if !f(e.name, e.value) {
			return
		}
	}
}

// len returns the number of local attributes.
func (a *attrs) len() int {
	return len(a.entries)
}
