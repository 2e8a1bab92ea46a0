// Package coatcheck provides a slot-based value store that exchanges
// stored values for unforgeable tickets.
//
// A Store hands out a Ticket for every value checked in, and later
// exchanges the ticket back for the value. It replaces map-based
// ID-to-value registries in situations where the caller does not need to
// choose the key, only to reference a previously stored value: because
// the store picks its own indices, storage is a flat slice with freed
// slots recycled through an intrusive free list, and lookups are a tag
// comparison plus an index.
//
// Tickets carry the issuing store's instance tag, so a ticket presented
// to the wrong store is rejected with a recoverable error instead of
// silently returning a stranger's value. Within the right store a ticket
// is consumed by a successful Claim and cannot be used again.
//
// A Store is not safe for concurrent use; callers that share one across
// goroutines must synchronize. It never blocks, never shrinks, and holds
// exclusive ownership of every value inside it.
package coatcheck
