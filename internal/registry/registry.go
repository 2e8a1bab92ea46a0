package registry

import (
	"errors"
	"sync"

	"github.com/yndnr/coatcheck-go/internal/telemetry/logger"
	"github.com/yndnr/coatcheck-go/internal/telemetry/metric"
	"github.com/yndnr/coatcheck-go/pkg/coatcheck"
)

// ErrNotSubscribed is returned when a subscription does not belong to
// this registry.
var ErrNotSubscribed = errors.New("registry: subscription belongs to another registry")

// Event is what subscribers receive on publish.
type Event struct {
	Topic   string
	Payload any
}

// Callback handles a published event.
type Callback func(Event)

// Subscription is the handle returned by Subscribe. It wraps the store
// ticket for type safety and is spent by a successful Unsubscribe.
type Subscription struct {
	ticket *coatcheck.Ticket
}

// Registry dispatches events to subscribed callbacks.
//
// The underlying store is not internally synchronized, so the registry
// serializes all operations with its own mutex.
type Registry struct {
	mu        sync.Mutex
	callbacks *coatcheck.Store[Callback]
	log       logger.Logger
	metrics   *metric.Registry
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithMetrics attaches a metrics registry.
func WithMetrics(m *metric.Registry) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		callbacks: coatcheck.New[Callback](),
		log:       logger.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Subscribe registers cb and returns the handle that can later remove it.
func (r *Registry) Subscribe(cb Callback) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket := r.callbacks.Check(cb)

	if r.metrics != nil {
		r.metrics.CheckIns.Inc()
		r.metrics.LiveValues.Set(float64(r.callbacks.Len()))
	}
	r.log.Debug("callback subscribed", "subscribers", r.callbacks.Len())

	return &Subscription{ticket: ticket}
}

// Unsubscribe removes the callback the subscription refers to. The
// subscription is spent on success. A subscription from another registry
// fails with ErrNotSubscribed and stays usable against its own registry.
func (r *Registry) Unsubscribe(sub *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.callbacks.Claim(sub.ticket)
	if err != nil {
		if r.metrics != nil {
			r.metrics.WrongStore.Inc()
		}
		r.log.Warn("unsubscribe rejected", "error", err)
		return errors.Join(ErrNotSubscribed, err)
	}

	if r.metrics != nil {
		r.metrics.Claims.Inc()
		r.metrics.LiveValues.Set(float64(r.callbacks.Len()))
	}
	r.log.Debug("callback unsubscribed", "subscribers", r.callbacks.Len())

	return nil
}

// Publish fires every live callback in registration slot order and
// reports how many ran. Callbacks run with the registry lock held and
// must not call back into the registry.
func (r *Registry) Publish(ev Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	fired := 0
	for cb := range r.callbacks.All() {
		cb(ev)
		fired++
	}

	if r.metrics != nil {
		r.metrics.Publishes.Inc()
	}
	r.log.Debug("event published", "topic", ev.Topic, "fired", fired)

	return fired
}

// Len reports the number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.callbacks.Len()
}
