package workbench

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/coatcheck-go/internal/telemetry/logger"
	"github.com/yndnr/coatcheck-go/internal/telemetry/metric"
	"github.com/yndnr/coatcheck-go/pkg/coatcheck"
)

// Report summarizes a completed run.
type Report struct {
	// RunID identifies the run in logs and downstream tooling.
	RunID string

	// CheckIns and Claims are the operation totals. They are equal
	// for a run that finished, since every batch is claimed back.
	CheckIns int
	Claims   int

	Elapsed   time.Duration
	OpsPerSec float64
}

// Runner executes the configured workload.
type Runner struct {
	cfg     Config
	log     logger.Logger
	metrics *metric.Registry
	limiter *rate.Limiter
}

// Option configures the Runner.
type Option func(*Runner)

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithMetrics attaches a metrics registry.
func WithMetrics(m *metric.Registry) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg: cfg,
		log: logger.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if cfg.Rate > 0 {
		// Burst of one: each batch waits for its own slot.
		r.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	return r, nil
}

// Run executes the workload and returns its report. A canceled context
// stops the run between batches.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID, err := newRunID()
	if err != nil {
		return nil, fmt.Errorf("workbench: run id: %w", err)
	}

	r.log.Info("run starting",
		"run_id", runID,
		"ops", r.cfg.Ops,
		"batch", r.cfg.Batch,
		"value_size", r.cfg.ValueSize,
		"rate", r.cfg.Rate)

	payload := make([]byte, r.cfg.ValueSize)
	if _, err := rand.Read(payload); err != nil {
		return nil, fmt.Errorf("workbench: payload: %w", err)
	}

	store := coatcheck.WithCapacity[[]byte](r.cfg.Batch)
	tickets := make([]*coatcheck.Ticket, 0, r.cfg.Batch)

	report := &Report{RunID: runID}
	start := time.Now()

	for report.CheckIns < r.cfg.Ops {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("workbench: run %s interrupted: %w", runID, err)
			}
		} else if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("workbench: run %s interrupted: %w", runID, err)
		}

		n := min(r.cfg.Batch, r.cfg.Ops-report.CheckIns)

		tickets = tickets[:0]
		for range n {
			tickets = append(tickets, store.Check(payload))
		}
		report.CheckIns += n

		for _, t := range tickets {
			if _, err := store.Claim(t); err != nil {
				return nil, fmt.Errorf("workbench: run %s: %w", runID, err)
			}
		}
		report.Claims += n

		if r.metrics != nil {
			r.metrics.CheckIns.Add(float64(n))
			r.metrics.Claims.Add(float64(n))
		}
	}

	if !store.IsEmpty() {
		return nil, fmt.Errorf("workbench: run %s left %d values checked in", runID, store.Len())
	}

	report.Elapsed = time.Since(start)
	report.OpsPerSec = float64(report.CheckIns+report.Claims) / report.Elapsed.Seconds()

	r.log.Info("run finished",
		"run_id", runID,
		"checkins", report.CheckIns,
		"claims", report.Claims,
		"elapsed", report.Elapsed,
		"ops_per_sec", report.OpsPerSec)

	return report, nil
}

// newRunID mints a ULID for the run.
func newRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
