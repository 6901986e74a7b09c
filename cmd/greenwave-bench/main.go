// Command greenwave-bench compares the random and heuristic initial-solution
// constructors on random traffic networks and optionally refines both with
// local search.
//
// Configuration is layered: defaults, then a YAML file (--config or
// GREENWAVE_CONFIG), then flags. A .env file in the working directory is
// loaded first when present.
//
//	greenwave-bench --vertices 50 --runs 20 --cycle 30 --parallel 4
//	greenwave-bench --config experiment.yaml --store sqlite --dsn bench.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/greenwave/bench"
	"github.com/katalvlaran/greenwave/storage"
)

const (
	exitOK           = 0
	exitWrongArgs    = 1
	exitRuntimeError = 2
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options are the resolved command-line settings.
type options struct {
	cfg         bench.Config
	store       string
	dsn         string
	metricsAddr string
	logLevel    string
	quiet       bool
}

// parseOptions layers config file, environment and flags over the defaults.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("greenwave-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  = fs.String("config", getEnv("GREENWAVE_CONFIG", ""), "YAML experiment file")
		vertices    = fs.Int("vertices", bench.DefaultVertices, "lights per network")
		runs        = fs.Int("runs", bench.DefaultRuns, "number of runs")
		cycle       = fs.Int("cycle", bench.DefaultCycle, "cycle length in ticks")
		seed        = fs.Int64("seed", 0, "experiment seed; 0 picks one")
		parallel    = fs.Int("parallel", 1, "concurrent runs")
		tuples      = fs.Int("tuples", 1, "candidate timing pairs per vertex in the heuristic constructor")
		localSearch = fs.Bool("local-search", false, "refine constructed plans with local search")
		store       = fs.String("store", getEnv("GREENWAVE_STORE", storage.BackendMemory), "record store: memory, sqlite or postgres")
		dsn         = fs.String("dsn", getEnv("GREENWAVE_DSN", ""), "sqlite file or postgres URL")
		metricsAddr = fs.String("metrics-addr", getEnv("GREENWAVE_METRICS_ADDR", ""), "serve Prometheus metrics on this address during the run")
		logLevel    = fs.String("log-level", getEnv("GREENWAVE_LOG_LEVEL", "info"), "debug, info, warn or error")
		quiet       = fs.Bool("quiet", false, "no terminal report")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := bench.DefaultConfig()
	if *configPath != "" {
		loaded, err := bench.LoadConfig(*configPath)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}

	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vertices":
			cfg.Vertices = *vertices
		case "runs":
			cfg.Runs = *runs
		case "cycle":
			cfg.Cycle = *cycle
		case "seed":
			cfg.Seed = *seed
		case "parallel":
			cfg.Parallel = *parallel
		case "tuples":
			cfg.TuplesPerIteration = *tuples
		case "local-search":
			cfg.LocalSearch.Enabled = *localSearch
		}
	})
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	return options{
		cfg:         cfg,
		store:       *store,
		dsn:         *dsn,
		metricsAddr: *metricsAddr,
		logLevel:    *logLevel,
		quiet:       *quiet,
	}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitWrongArgs
	}

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitWrongArgs
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(ctx, opts, stdout, logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		return exitRuntimeError
	}
	return exitOK
}

func execute(ctx context.Context, opts options, stdout io.Writer, logger *zap.Logger) error {
	store, err := storage.NewStore(opts.store, opts.dsn)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	runnerOpts := []bench.RunnerOption{
		bench.WithRecordSink(store),
		bench.WithObserver(bench.NewLogObserver(logger)),
	}
	if !opts.quiet {
		runnerOpts = append(runnerOpts, bench.WithObserver(bench.NewTerminalObserver(stdout, "initial solution construction")))
	}

	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err := bench.NewMetricsObserver(reg)
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, bench.WithObserver(m))

		shutdown := serveMetrics(opts.metricsAddr, reg, logger)
		defer shutdown()
	}

	runner, err := bench.NewRunner(opts.cfg, runnerOpts...)
	if err != nil {
		return err
	}
	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("records stored",
		zap.String("store", opts.store),
		zap.String("experiment_id", res.Experiment.ID),
		zap.Int("records", len(res.Records)),
	)
	return nil
}

// serveMetrics exposes reg on addr/metrics until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log := logger.With(zap.String("component", "metrics"), zap.String("addr", addr))
	go func() {
		log.Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
