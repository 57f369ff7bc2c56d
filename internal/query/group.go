package query

import "iter"

// Lookup maps keys to the elements that share them. Keys are kept in order
// of first occurrence; each group keeps its elements in input order.
type Lookup[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// GroupBy partitions seq by the key computed with key.
func GroupBy[T any, K comparable](seq []T, key func(T) K) *Lookup[K, T] {
	l := &Lookup[K, T]{groups: make(map[K][]T)}
	for _, v := range seq {
		k := key(v)
		if _, ok := l.groups[k]; !ok {
			l.keys = append(l.keys, k)
		}
		l.groups[k] = append(l.groups[k], v)
	}
	return l
}

// Keys returns the group keys in first-occurrence order.
func (l *Lookup[K, T]) Keys() []K {
	out := make([]K, len(l.keys))
	copy(out, l.keys)
	return out
}

// Get returns the group for k.
func (l *Lookup[K, T]) Get(k K) ([]T, bool) {
	g, ok := l.groups[k]
	if !ok {
		return nil, false
	}
	out := make([]T, len(g))
	copy(out, g)
	return out, true
}

// Len returns the number of groups.
func (l *Lookup[K, T]) Len() int {
	return len(l.keys)
}

// All iterates groups in key order. Each yielded slice is a copy.
func (l *Lookup[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range l.keys {
			if !yield(k, append([]T(nil), l.groups[k]...)) {
				return
			}
		}
	}
}

// Map copies the groups into a plain map. Key order is lost.
func (l *Lookup[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(l.groups))
	for k, g := range l.groups {
		out[k] = append([]T(nil), g...)
	}
	return out
}
