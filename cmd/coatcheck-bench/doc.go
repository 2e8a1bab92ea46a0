// Package main provides the entry point for coatcheck-bench.
//
// coatcheck-bench runs synthetic check-in/claim workloads against a
// coatcheck store and reports throughput. With --metrics-addr it also
// exposes the run's counters in Prometheus exposition format.
package main
