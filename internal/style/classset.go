package style

import "strings"

// ClassSet is an insertion-ordered set of class names. Order is part of the
// output contract: later classes in the same specificity tier override
// earlier ones in the stylesheet.
type ClassSet struct {
	names []string
	index map[string]struct{}
}

// NewClassSet returns a set seeded with names.
func NewClassSet(names ...string) *ClassSet {
	s := &ClassSet{index: make(map[string]struct{}, len(names))}
	s.Add(names...)
	return s
}

// Add appends names not already present. Empty names are skipped.
func (s *ClassSet) Add(names ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.index[name]; ok {
			continue
		}
		s.index[name] = struct{}{}
		s.names = append(s.names, name)
	}
}

// Merge appends every name of other in its order.
func (s *ClassSet) Merge(other *ClassSet) {
	if other == nil {
		return
	}
	s.Add(other.names...)
}

// Has reports membership.
func (s *ClassSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Len returns the number of names.
func (s *ClassSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// List returns a copy of the names in insertion order.
func (s *ClassSet) List() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String joins the names for a class attribute.
func (s *ClassSet) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.names, " ")
}
