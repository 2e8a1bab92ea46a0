package coatcheck

import (
	"fmt"
	"iter"
	"strings"
)

// All returns the live values in increasing slot order. The sequence is
// finite, yields exactly Len() values, and can be ranged over more than
// once. Values are copies; use Mut for in-place access.
func (s *Store[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(s.slots[i].value) {
				return
			}
		}
	}
}

// Mut returns pointers to the live values in increasing slot order, for
// in-place mutation. The store must not be structurally modified (checked
// into, claimed from, or dropped) while ranging.
func (s *Store[V]) Mut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range s.slots {
			if s.slots[i].full && !yield(&s.slots[i].value) {
				return
			}
		}
	}
}

// Drain moves the live values out of the store in increasing slot order.
// Each value is removed as it is yielded; stopping early leaves the rest
// checked in. Tickets for drained values are dead and must not be
// presented again.
func (s *Store[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.slots {
			if !s.slots[i].full {
				continue
			}
			value := s.slots[i].empty(s.nextFree)
			s.nextFree = i
			s.live--
			if !yield(value) {
				return
			}
		}
	}
}

// Values returns the live values as a freshly allocated slice, in
// increasing slot order.
func (s *Store[V]) Values() []V {
	values := make([]V, 0, s.live)
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// CheckAll lazily checks in every value the sequence produces, yielding
// one ticket per value.
//
// Nothing is stored until the returned sequence is consumed: ranging over
// only a prefix checks in only that prefix, and an unconsumed tail is
// never stored. Take your tickets.
func (s *Store[V]) CheckAll(values iter.Seq[V]) iter.Seq[*Ticket] {
	return func(yield func(*Ticket) bool) {
		for v := range values {
			if !yield(s.Check(v)) {
				return
			}
		}
	}
}

// CheckSlice checks in every element of values, pre-reserving storage for
// all of them, and returns the tickets in matching order.
func (s *Store[V]) CheckSlice(values []V) []*Ticket {
	s.Reserve(len(values))

	tickets := make([]*Ticket, 0, len(values))
	for _, v := range values {
		tickets = append(tickets, s.Check(v))
	}
	return tickets
}

// String formats the live values in slot order, for debugging.
func (s *Store[V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte('}')
	return b.String()
}
