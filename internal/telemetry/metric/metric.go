package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every metric this package registers.
const namespace = "coatcheck"

// Registry holds the application metrics.
type Registry struct {
	// CheckIns counts values checked into stores.
	CheckIns prometheus.Counter

	// Claims counts values claimed back out of stores.
	Claims prometheus.Counter

	// WrongStore counts tickets rejected because they were presented
	// to a store that did not issue them.
	WrongStore prometheus.Counter

	// LiveValues tracks the number of currently checked-in values.
	LiveValues prometheus.Gauge

	// Publishes counts registry event publications.
	Publishes prometheus.Counter

	reg *prometheus.Registry
}

// NewRegistry creates the metrics and registers them with a private
// Prometheus registry.
func NewRegistry() *Registry {
	r := &Registry{
		CheckIns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Total values checked in.",
		}),
		Claims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_total",
			Help:      "Total values claimed back.",
		}),
		WrongStore: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wrong_store_total",
			Help:      "Total tickets rejected by a store that did not issue them.",
		}),
		LiveValues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_values",
			Help:      "Values currently checked in.",
		}),
		Publishes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publishes_total",
			Help:      "Total registry event publications.",
		}),
		reg: prometheus.NewRegistry(),
	}

	r.reg.MustRegister(r.CheckIns, r.Claims, r.WrongStore, r.LiveValues, r.Publishes)

	return r
}

// Handler returns an HTTP handler serving the registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gather collects the current metric values, mainly for tests.
func (r *Registry) Gather() (map[string]float64, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return values, nil
}
