// Package collections holds small generic containers shared across the
// server. Nothing here is safe for concurrent mutation; callers own locking.
package collections

// Set stores unique comparable values. The zero value is not usable; build
// one with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet builds a set seeded with vs.
func NewSet[T comparable](vs ...T) Set[T] {
	s := Set[T]{}
	s.Add(vs...)
	return s
}

// Add inserts vs, ignoring values already present.
func (s Set[T]) Add(vs ...T) {
	for _, v := range vs {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Members returns the values in unspecified order.
func (s Set[T]) Members() []T {
	r := make([]T, 0, len(s))
	for v := range s {
		r = append(r, v)
	}
	return r
}
