// Package workbench drives synthetic check-in/claim workloads against a
// coatcheck store and reports throughput.
//
// A run checks batches of fixed-size payloads into a store, claims them
// all back, and repeats until the configured operation count is reached.
// An optional rate limit paces the batches so a run can be held at a
// steady load while metrics are scraped.
package workbench
