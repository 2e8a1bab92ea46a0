package coatcheck

import "errors"

// ErrWrongStore matches, via errors.Is, any error returned because a
// ticket was presented to a store that did not issue it.
var ErrWrongStore = errors.New("coatcheck: ticket belongs to another store")

// Kind classifies a recoverable store error.
type Kind uint8

const (
	// KindWrongStore indicates the ticket's tag did not match the store.
	KindWrongStore Kind = iota + 1
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindWrongStore:
		return "wrong store"
	default:
		return "unknown"
	}
}

// ClaimError is returned by Store.Claim when the ticket was issued by a
// different store. The ticket is not consumed: Ticket returns it so the
// caller can retry against the right store or discard it.
type ClaimError struct {
	kind   Kind
	ticket *Ticket
}

// Error implements the error interface.
func (e *ClaimError) Error() string {
	return "coatcheck: claim failed: " + e.kind.String()
}

// Kind reports why the claim failed.
func (e *ClaimError) Kind() Kind {
	return e.kind
}

// Ticket returns the presented ticket, unchanged and still usable.
func (e *ClaimError) Ticket() *Ticket {
	return e.ticket
}

// Is supports errors.Is(err, ErrWrongStore).
func (e *ClaimError) Is(target error) bool {
	return target == ErrWrongStore && e.kind == KindWrongStore
}

// AccessError is returned by Store.Get and Store.Ref when the ticket was
// issued by a different store.
type AccessError struct {
	kind Kind
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return "coatcheck: access denied: " + e.kind.String()
}

// Kind reports why access was denied.
func (e *AccessError) Kind() Kind {
	return e.kind
}

// Is supports errors.Is(err, ErrWrongStore).
func (e *AccessError) Is(target error) bool {
	return target == ErrWrongStore && e.kind == KindWrongStore
}
