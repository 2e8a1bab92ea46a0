// Package metric provides Prometheus metrics for the coatcheck tools.
//
// It exposes check-in/claim rates, rejection counts, and the live value
// gauge in Prometheus format.
package metric
