// Package benchmark holds cross-package benchmarks for the coatcheck
// store, including a comparison against a plain map keyed by counter.
package benchmark
