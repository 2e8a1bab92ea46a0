package coatcheck

import "github.com/yndnr/coatcheck-go/pkg/tagger"

// Ticket is the opaque capability returned by Store.Check. It authorizes
// exactly one future access or claim against the slot it was issued for,
// in the store that issued it.
//
// Tickets cannot be constructed or inspected by callers, and a successful
// Claim consumes the ticket: using it again panics. Go cannot forbid the
// copy of the struct the pointer refers to at compile time, so the
// consumed state is tracked on the ticket itself and checked at runtime.
type Ticket struct {
	tag     tagger.Tag
	index   int
	claimed bool
}

// String deliberately reveals nothing about the ticket's contents.
func (t *Ticket) String() string {
	return "Ticket"
}
