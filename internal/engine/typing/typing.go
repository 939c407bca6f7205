// Package typing manages the attributes applied to newly inserted text: the
// base typing attributes the host editor would use on its own, overlaid by
// the activation stack that plugins push attributes onto.
package typing

import "github.com/dshills/inkwell/internal/engine/attrtext"

// Transformer rewrites a base typing attribute set.
type Transformer func(attrtext.AttrSet) attrtext.AttrSet

// Typing holds the base typing attributes and the activation stack. The
// activation stack is insertion-ordered: activating an existing name
// overwrites its value in place without changing its position. Typing is
// independent of the text buffer; it only affects future insertions.
type Typing struct {
	base   attrtext.AttrSet
	names  []string
	values map[string]attrtext.Value
}

// New creates a Typing with no base attributes and an empty stack.
func New() *Typing {
	return &Typing{
		base:   attrtext.AttrSet{},
		values: make(map[string]attrtext.Value),
	}
}

// Activate adds an attribute to be applied to all subsequent insertions.
// If the name is already active, its value is replaced and its position in
// the activation order is preserved.
func (t *Typing) Activate(name string, v attrtext.Value) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = v
}

// Deactivate removes an active attribute. Absent names are a no-op.
func (t *Typing) Deactivate(name string) {
	if _, ok := t.values[name]; !ok {
		return
	}
	delete(t.values, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			break
		}
	}
}

// DeactivateAll clears the activation stack. The base typing attributes are
// untouched.
func (t *Typing) DeactivateAll() {
	t.names = nil
	t.values = make(map[string]attrtext.Value)
}

// Active returns the active attribute names in activation order.
func (t *Typing) Active() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// IsActive returns true if the named attribute is on the stack.
func (t *Typing) IsActive(name string) bool {
	_, ok := t.values[name]
	return ok
}

// ActiveValue returns the value of an active attribute.
func (t *Typing) ActiveValue(name string) (attrtext.Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Len returns the number of active attributes.
func (t *Typing) Len() int {
	return len(t.names)
}

// Base returns a copy of the base typing attributes.
func (t *Typing) Base() attrtext.AttrSet {
	return t.base.Clone()
}

// TransformBase replaces the base typing attributes with the output of the
// transformer applied to the current base. A nil transformer or a nil
// result leaves the base empty rather than nil.
func (t *Typing) TransformBase(fn Transformer) {
	if fn == nil {
		return
	}
	next := fn(t.base.Clone())
	if next == nil {
		next = attrtext.AttrSet{}
	}
	t.base = next.Clone()
}

// Effective returns the attribute set applied to plain-text insertions: the
// base typing attributes overlaid by the activation stack. On name
// collisions the stack wins.
func (t *Typing) Effective() attrtext.AttrSet {
	out := t.base.Clone()
	for _, name := range t.names {
		out[name] = t.values[name]
	}
	return out
}
