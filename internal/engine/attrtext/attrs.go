package attrtext

import (
	"sort"
	"strings"
)

// AttrSet maps attribute names to values. A nil AttrSet behaves like an
// empty one for read operations.
type AttrSet map[string]Value

// Clone returns an independent copy of the set. Cloning nil yields an
// empty, non-nil set.
func (a AttrSet) Clone() AttrSet {
	out := make(AttrSet, len(a))
	for name, v := range a {
		out[name] = v
	}
	return out
}

// Equal returns true if both sets contain the same names and values.
func (a AttrSet) Equal(other AttrSet) bool {
	if len(a) != len(other) {
		return false
	}
	for name, v := range a {
		ov, ok := other[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Merge returns a copy of the set with the overlay applied on top.
// On name collisions the overlay wins.
func (a AttrSet) Merge(overlay AttrSet) AttrSet {
	out := a.Clone()
	for name, v := range overlay {
		out[name] = v
	}
	return out
}

// With returns a copy of the set with the given attribute added or replaced.
func (a AttrSet) With(name string, v Value) AttrSet {
	out := a.Clone()
	out[name] = v
	return out
}

// Without returns a copy of the set with the given attribute removed.
func (a AttrSet) Without(name string) AttrSet {
	out := a.Clone()
	delete(out, name)
	return out
}

// Has returns true if the set contains the given attribute name.
func (a AttrSet) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Names returns the attribute names in sorted order.
func (a AttrSet) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a human-readable representation of the set.
func (a AttrSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range a.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(a[name].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
