// Package shutdown coordinates process teardown.
//
// A Handler collects cleanup hooks and runs them in reverse registration
// order when the process receives SIGINT or SIGTERM, or when shutdown is
// triggered programmatically. Hooks share a single deadline.
package shutdown
