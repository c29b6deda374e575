// internal/common/set.go
package common

// OrderedSet is an insertion-ordered set: a slice for iteration order plus a
// membership index. Iteration always follows first insertion.
type OrderedSet[K comparable] struct {
	items []K
	index map[K]struct{}
}

func NewOrderedSet[K comparable](items ...K) *OrderedSet[K] {
	s := &OrderedSet[K]{index: make(map[K]struct{}, len(items))}
	s.Add(items...)
	return s
}

// Add inserts each item not already present and returns how many were new.
func (s *OrderedSet[K]) Add(items ...K) int {
	if s.index == nil {
		s.index = make(map[K]struct{}, len(items))
	}
	added := 0
	for _, k := range items {
		if _, ok := s.index[k]; ok {
			continue
		}
		s.index[k] = struct{}{}
		s.items = append(s.items, k)
		added++
	}
	return added
}

func (s *OrderedSet[K]) Has(k K) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[k]
	return ok
}

func (s *OrderedSet[K]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the members in first-seen order.
func (s *OrderedSet[K]) Items() []K {
	if s == nil {
		return nil
	}
	out := make([]K, len(s.items))
	copy(out, s.items)
	return out
}
