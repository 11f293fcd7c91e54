package keys

import (
	"sort"
	"strings"
)

// modifierOrder fixes how modifiers print ahead of the main key.
var modifierOrder = map[string]int{
	Control: 0,
	Meta:    1,
	Alt:     2,
	Shift:   3,
}

// Set is a set of canonical key identifiers. Treat it as immutable once built.
type Set map[string]struct{}

// NewSet builds a set from key names, normalizing each one.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		s[Normalize(n)] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s)
}

// ContainsAll reports whether every key of other is present in s.
func (s Set) ContainsAll(other Set) bool {
	for k := range other {
		if !s.Has(k) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same keys.
func (s Set) Equal(other Set) bool {
	return s.Len() == other.Len() && s.ContainsAll(other)
}

// Sorted returns the keys with modifiers first, in a stable order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, iMod := modifierOrder[out[i]]
		oj, jMod := modifierOrder[out[j]]
		switch {
		case iMod && jMod:
			return oi < oj
		case iMod:
			return true
		case jMod:
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// String renders the set as "control+shift+n".
func (s Set) String() string {
	return strings.Join(s.Sorted(), "+")
}
