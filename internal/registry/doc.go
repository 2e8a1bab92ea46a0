// Package registry provides an event callback registry backed by a
// coatcheck store.
//
// Callers subscribe callbacks and receive opaque subscription handles;
// a handle unsubscribes exactly one callback, and publishing an event
// fires every live callback in registration slot order. The store picks
// its own slot indices, so there is no key bookkeeping and freed slots
// are recycled.
package registry
