package coatcheck

// slot is one storage cell: either it holds a live value, or it records
// the index of the next free slot. The empty slots form a singly linked
// free list threaded through the storage itself, rooted at the store's
// nextFree field and terminated by an index equal to len(slots).
type slot[V any] struct {
	value    V
	nextFree int
	full     bool
}

// fill stores value into an empty slot and returns the free-list link the
// slot was holding.
func (s *slot[V]) fill(value V) int {
	if s.full {
		panic("coatcheck: fill of a full slot")
	}

	next := s.nextFree
	s.value = value
	s.nextFree = 0
	s.full = true

	return next
}

// empty takes the value out of a full slot, leaving it linked to
// nextFree. The stored value is zeroed so the store drops its reference.
func (s *slot[V]) empty(nextFree int) V {
	if !s.full {
		panic("coatcheck: empty of an empty slot")
	}

	value := s.value

	var zero V
	s.value = zero
	s.nextFree = nextFree
	s.full = false

	return value
}
