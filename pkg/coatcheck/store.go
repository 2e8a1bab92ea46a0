package coatcheck

import (
	"math"
	"slices"

	"github.com/yndnr/coatcheck-go/pkg/tagger"
)

// Store holds checked-in values and validates the tickets it has issued.
//
// Invariants:
//   - live equals the number of full slots.
//   - following nextFree links from the store's nextFree field visits
//     every empty slot exactly once before reaching len(slots).
//   - a ticket carrying this store's tag refers to a full slot, unless it
//     has been forged or reused after a claim (both are checked panics).
type Store[V any] struct {
	tag      tagger.Tag
	slots    []slot[V]
	live     int
	nextFree int
}

// New constructs an empty store with a freshly drawn instance tag.
// The store does not allocate until the first check-in.
func New[V any]() *Store[V] {
	return WithCapacity[V](0)
}

// WithCapacity constructs an empty store whose storage can hold capacity
// values before reallocating. The capacity is a hint, not a bound: the
// store grows past it on demand.
func WithCapacity[V any](capacity int) *Store[V] {
	return &Store[V]{
		tag:   tagger.Next(),
		slots: make([]slot[V], 0, capacity),
	}
}

// Len reports the number of checked-in values, which always equals the
// number of outstanding tickets.
func (s *Store[V]) Len() int {
	return s.live
}

// IsEmpty reports whether no values are checked in.
func (s *Store[V]) IsEmpty() bool {
	return s.live == 0
}

// Cap reports how many values the storage can hold before reallocating.
func (s *Store[V]) Cap() int {
	return cap(s.slots)
}

// Reserve ensures at least additional more check-ins can occur before the
// backing storage must grow. Empty slots already on the free list count
// toward the reservation, since reuse satisfies future check-ins too.
// The storage may grow by more than requested to amortize reallocation.
func (s *Store[V]) Reserve(additional int) {
	spare := len(s.slots) - s.live
	if spare < additional {
		s.slots = slices.Grow(s.slots, additional-spare)
	}
}

// ReserveExact is Reserve without the amortization headroom: the storage
// grows to hold exactly additional more check-ins beyond the current
// spare slots. Prefer Reserve when more check-ins will follow.
func (s *Store[V]) ReserveExact(additional int) {
	spare := len(s.slots) - s.live
	need := additional - spare
	if need <= 0 || cap(s.slots)-len(s.slots) >= need {
		return
	}

	grown := make([]slot[V], len(s.slots), len(s.slots)+need)
	copy(grown, s.slots)
	s.slots = grown
}

// Check stores value and returns the ticket that can later reference or
// claim it. The slot at the head of the free list is reused when one
// exists; otherwise storage grows by one slot. O(1) amortized.
//
// Check panics if the index space would overflow, which is unrecoverable:
// the store cannot address more slots.
func (s *Store[V]) Check(value V) *Ticket {
	index := s.nextFree

	if index == len(s.slots) {
		if index == math.MaxInt {
			panic("coatcheck: store index space overflow")
		}
		s.slots = append(s.slots, slot[V]{value: value, full: true})
		s.nextFree = index + 1
	} else {
		s.nextFree = s.slots[index].fill(value)
	}

	s.live++

	return &Ticket{tag: s.tag, index: index}
}

// Claim exchanges a ticket for its value, removing the value from the
// store and recycling its slot.
//
// A ticket from another store fails with a *ClaimError (matching
// ErrWrongStore) and is returned unconsumed inside the error, so it can
// be retried against the store that issued it. On success the ticket is
// consumed and cannot be presented again.
func (s *Store[V]) Claim(t *Ticket) (V, error) {
	if t.tag != s.tag {
		var zero V
		return zero, &ClaimError{kind: KindWrongStore, ticket: t}
	}

	sl := s.slotFor(t)
	value := sl.empty(s.nextFree)
	s.nextFree = t.index
	s.live--
	t.claimed = true

	return value, nil
}

// Get returns a copy of the value the ticket refers to, leaving it in the
// store. A ticket from another store fails with a *AccessError.
func (s *Store[V]) Get(t *Ticket) (V, error) {
	if t.tag != s.tag {
		var zero V
		return zero, &AccessError{kind: KindWrongStore}
	}

	return s.slotFor(t).value, nil
}

// Ref returns a pointer to the value the ticket refers to, for in-place
// reads and writes. A ticket from another store fails with a
// *AccessError.
//
// The pointer is valid only until the store next grows, claims, or is
// dropped; callers must not retain it across those.
func (s *Store[V]) Ref(t *Ticket) (*V, error) {
	if t.tag != s.tag {
		return nil, &AccessError{kind: KindWrongStore}
	}

	return &s.slotFor(t).value, nil
}

// At is the indexing form of Ref: presenting a foreign ticket is treated
// as a programmer error and panics instead of returning an error. Use Get
// or Ref to route mis-delivered tickets without aborting.
func (s *Store[V]) At(t *Ticket) *V {
	v, err := s.Ref(t)
	if err != nil {
		panic("coatcheck: ticket for wrong store")
	}
	return v
}

// ContainsTicket reports whether this store issued the ticket. A true
// result implies, by the store's invariants, that the ticket refers to a
// live value.
func (s *Store[V]) ContainsTicket(t *Ticket) bool {
	return t.tag == s.tag
}

// slotFor resolves a tag-validated ticket to its slot. Tickets cannot be
// forged or duplicated through the public API, so after the tag matches
// the slot must be full; anything else means the ticket was reused after
// a claim or built by reaching into another package's memory, and panics.
func (s *Store[V]) slotFor(t *Ticket) *slot[V] {
	if t.claimed {
		panic("coatcheck: ticket already claimed")
	}
	if t.index >= len(s.slots) || !s.slots[t.index].full {
		panic("coatcheck: forged ticket")
	}
	return &s.slots[t.index]
}
