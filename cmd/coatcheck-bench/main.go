package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/coatcheck-go/internal/infra/buildinfo"
	"github.com/yndnr/coatcheck-go/internal/infra/confloader"
	"github.com/yndnr/coatcheck-go/internal/infra/shutdown"
	"github.com/yndnr/coatcheck-go/internal/telemetry/logger"
	"github.com/yndnr/coatcheck-go/internal/telemetry/metric"
	"github.com/yndnr/coatcheck-go/internal/workbench"
)

// appConfig is the full configuration tree, loadable from file and
// environment with COATCHECK_ prefixed variables.
type appConfig struct {
	Bench workbench.Config `koanf:"bench"`
	Log   struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
	Metrics struct {
		Addr string `koanf:"addr"`
	} `koanf:"metrics"`
}

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:    "coatcheck-bench",
		Usage:   "coatcheck store workload driver",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				EnvVars: []string{"COATCHECK_CONFIG"},
			},
			&cli.IntFlag{
				Name:  "ops",
				Usage: "Total check-ins to perform",
			},
			&cli.IntFlag{
				Name:  "batch",
				Usage: "Values checked in before each claim-back pass",
			},
			&cli.IntFlag{
				Name:  "value-size",
				Usage: "Payload size in bytes",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "Batches per second, 0 for unpaced",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: json, text",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Address to serve /metrics on (e.g. :9090)",
			},
			&cli.BoolFlag{
				Name:  "hold",
				Usage: "Keep serving /metrics after the run until interrupted",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("coatcheck-bench starting", "version", info.Version, "commit", info.Commit)

	metrics := metric.NewRegistry()
	handler := shutdown.NewHandler(10 * time.Second)

	if cfg.Metrics.Addr != "" {
		startMetricsServer(cfg.Metrics.Addr, metrics, handler, log)
	}

	runner, err := workbench.NewRunner(cfg.Bench,
		workbench.WithLogger(log),
		workbench.WithMetrics(metrics))
	if err != nil {
		return err
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d check-ins, %d claims in %v (%.0f ops/sec)\n",
		report.RunID, report.CheckIns, report.Claims, report.Elapsed, report.OpsPerSec)

	if cfg.Metrics.Addr != "" && c.Bool("hold") {
		log.Info("holding for scrapes, press Ctrl+C to stop", "addr", cfg.Metrics.Addr)
		return handler.Wait()
	}

	handler.Trigger()
	return handler.Wait()
}

// loadConfig layers defaults, the config file, environment variables,
// and explicit flags, in that order.
func loadConfig(c *cli.Context) (*appConfig, error) {
	cfg := &appConfig{Bench: *workbench.Default()}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if c.IsSet("ops") {
		cfg.Bench.Ops = c.Int("ops")
	}
	if c.IsSet("batch") {
		cfg.Bench.Batch = c.Int("batch")
	}
	if c.IsSet("value-size") {
		cfg.Bench.ValueSize = c.Int("value-size")
	}
	if c.IsSet("rate") {
		cfg.Bench.Rate = c.Float64("rate")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}
	if c.IsSet("metrics-addr") {
		cfg.Metrics.Addr = c.String("metrics-addr")
	}

	if err := cfg.Bench.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// startMetricsServer serves the registry on addr and wires its teardown
// into the shutdown handler.
func startMetricsServer(addr string, metrics *metric.Registry, handler *shutdown.Handler, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	handler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down metrics server")
		return srv.Shutdown(ctx)
	})

	go func() {
		log.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "error", err)
		}
	}()
}
