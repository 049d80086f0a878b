// cmd/uuidhunt/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uuidhunt/internal/adapters/output"
	"uuidhunt/internal/candidates"
	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/core/usecases"
	"uuidhunt/internal/ignore"
	"uuidhunt/internal/platform/config"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/lines"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/registry"
	"uuidhunt/internal/platform/resilience"
	"uuidhunt/internal/platform/ui"

	// Import resolvers for auto-registration via init()
	_ "uuidhunt/internal/resolvers/mojang"
	_ "uuidhunt/internal/resolvers/mowojang"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errSetup marca los fallos previos al pipeline (exit 2).
var errSetup = errors.New("setup failed")

func main() {
	// 1. Load centralized config
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: uuidhunt -h for help")
		os.Exit(exitCode(err))
	}
	if cfg.Core.PrintHelp {
		config.PrintHelp(os.Stdout)
		return
	}
	if cfg.Core.PrintVersion {
		config.PrintVersion(os.Stdout, cfg.Version)
		return
	}

	// 2. Shared logger
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.Core.LogLevel))

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.Core.TimeoutS)
	defer cancel()

	runErr := run(ctx, cfg, logger)
	if runErr != nil {
		logger.Err(runErr, "phase", "run")
	}
	cancel()
	os.Exit(exitCode(runErr))
}

// run ejecuta una búsqueda completa con cfg ya validada.
func run(ctx context.Context, cfg config.Config, logger logx.Logger) error {
	logger.Debug("uuidhunt starting",
		"version", version,
		"commit", commit,
		"resolver", cfg.Lookup.Resolver,
		"threads", cfg.Core.Threads,
	)

	// 4. Resolver from registry with resilience wrapper
	lookup, meta, err := buildResolver(cfg, logger)
	if err != nil {
		return fmt.Errorf("%w: %w", errSetup, err)
	}

	// 5. Inputs: wordlist, suffixes, ignore set
	gen, words, err := buildCandidates(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", errSetup, err)
	}
	total := candidates.Count(gen.All())
	if err := words.Err(); err != nil {
		return fmt.Errorf("%w: wordlist: %w", errSetup, err)
	}
	if total == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNoCandidates, words.Path())
	}
	logger.Debug("candidates ready", "total", total, "suffixes", len(gen.Suffixes()))

	ignored, err := ignore.Load(cfg.Input.Ignored, cfg.Input.IgnoredTruncation, logger)
	if err != nil {
		return fmt.Errorf("%w: ignored list: %w", errSetup, err)
	}

	// 6. Output and colours
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	mode, err := ui.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	ui.ConfigureColor(ui.ColorEnabled(mode, os.Stderr))

	var outFile *os.File
	if cfg.Output.Path == output.Stdout {
		outFile = os.Stdout
	}
	writer, err := output.Open(output.Options{
		Path:   cfg.Output.Path,
		Format: format,
		Color:  ui.ColorEnabled(mode, outFile),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errSetup, err)
	}

	// 7. Pipeline and presenter
	pipeline := usecases.NewPipeline(usecases.PipelineOptions{
		Lookup:          lookup,
		Writer:          writer,
		Workers:         cfg.Core.Threads,
		ShutdownTimeout: cfg.Resilience.ShutdownTimeout,
		Ignore:          ignored,
		ShowIgnored:     cfg.Output.ShowIgnored,
		Logger:          logger,
	})

	presenter := newPresenter(cfg, pipeline.Stats())
	defer presenter.Close()

	endpoint := cfg.Lookup.Endpoint
	if endpoint == "" {
		endpoint = meta.DefaultEndpoint
	}
	presenter.Start(ui.RunInfo{
		Version:    version,
		Resolver:   cfg.Lookup.Resolver,
		Endpoint:   endpoint,
		Workers:    cfg.Core.Threads,
		Batch:      lookup.MaxBatch(),
		Candidates: total,
		Ignored:    ignored.Len(),
		Truncation: ignored.Truncation(),
		Output:     writer.Path(),
		Format:     string(writer.Format()),
	})
	if ignored.Skipped() > 0 {
		presenter.Warning(fmt.Sprintf("%d malformed entries skipped in the ignored list", ignored.Skipped()))
	}

	// 8. Execute
	stats, runErr := pipeline.Run(ctx, gen.All())
	if err := words.Err(); err != nil && runErr == nil {
		runErr = fmt.Errorf("%w: wordlist: %w", errSetup, err)
	}
	if err := writer.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}

	presenter.Finish(stats)
	switch {
	case errors.Is(runErr, domain.ErrFatalEndpoint):
		presenter.Error("endpoint stopped serving lookups, partial results kept in " + writer.Path())
	case errors.Is(runErr, context.Canceled):
		presenter.Warning("interrupted, partial results kept in " + writer.Path())
	case errors.Is(runErr, context.DeadlineExceeded):
		presenter.Warning("global timeout reached, partial results kept in " + writer.Path())
	}

	logger.Debug("uuidhunt finished",
		"elapsed_ms", stats.Elapsed.Milliseconds(),
		"requests", stats.Requests,
		"found", stats.Found,
		"written", stats.Written,
		"breaker", lookup.GetCircuitBreaker().State().String(),
	)
	return runErr
}

// buildResolver construye el resolver del registry envuelto con reintentos
// y circuit breaker.
func buildResolver(cfg config.Config, logger logx.Logger) (*resilience.RetryableResolver, ports.ResolverMetadata, error) {
	meta, ok := registry.Global().GetMetadata(cfg.Lookup.Resolver)
	if !ok {
		return nil, meta, fmt.Errorf("%w: unknown resolver %q (available: %v)",
			domain.ErrInvalidConfig, cfg.Lookup.Resolver, registry.Global().List())
	}

	client, err := httpclient.New(httpclient.Config{
		Timeout:         cfg.Lookup.RequestTimeout,
		UserAgent:       cfg.Network.UserAgent,
		RateLimit:       cfg.Lookup.Rate,
		RateLimitBurst:  1,
		ProxyURL:        cfg.Network.ProxyURL,
		MaxConnsPerHost: cfg.Core.Threads,
	}, logger)
	if err != nil {
		return nil, meta, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	resolver, err := registry.Global().Build(cfg.Lookup.Resolver, ports.ResolverConfig{
		Endpoint: cfg.Lookup.Endpoint,
		Batch:    cfg.Lookup.Batch,
		Timeout:  cfg.Lookup.RequestTimeout,
		Client:   client,
		Logger:   logger,
	})
	if err != nil {
		return nil, meta, fmt.Errorf("failed to build resolver: %w", err)
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxRetries = cfg.Resilience.MaxRetries
	retry.InitialBackoff = cfg.Resilience.Backoff
	retry.MaxBackoff = cfg.Resilience.MaxBackoff

	cb := resilience.NewCircuitBreaker(cfg.Resilience.BreakerThreshold)
	logger.Debug("wrapped resolver with resilience",
		"resolver", resolver.Name(),
		"max_retries", retry.MaxRetries,
		"breaker", cfg.Resilience.BreakerThreshold,
	)
	return resilience.NewRetryableResolver(resolver, retry, cb, logger), meta, nil
}

// buildCandidates abre la wordlist y el archivo de sufijos.
func buildCandidates(cfg config.Config) (*candidates.Generator, *lines.Source, error) {
	words, err := lines.Open(cfg.Input.Wordlist)
	if err != nil {
		return nil, nil, fmt.Errorf("wordlist: %w", err)
	}

	opts := []candidates.Option{
		candidates.WithBounds(candidates.Bounds{Min: cfg.Names.MinLength, Max: cfg.Names.MaxLength}),
	}
	if cfg.Input.Suffixes != "" {
		suffixes, err := lines.ReadAll(cfg.Input.Suffixes)
		if err != nil {
			return nil, nil, fmt.Errorf("suffixes: %w", err)
		}
		opts = append(opts, candidates.WithSuffixes(suffixes))
	}
	return candidates.New(words.All(), opts...), words, nil
}

func newPresenter(cfg config.Config, stats *usecases.Stats) ui.Presenter {
	if cfg.Core.Quiet {
		return ui.NewNoopPresenter()
	}
	return ui.NewPTermPresenter(os.Stderr, stats.Snapshot, ui.DefaultRefresh, ui.IsTerminal(os.Stderr))
}

// exitCode traduce el error de la ejecución al código de salida.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, errSetup),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrMissingConfig),
		errors.Is(err, domain.ErrNoCandidates):
		return 2
	default:
		return 1
	}
}

// rootContextWithSignals creates a root context with optional timeout and signal cancellation.
// Returns a context and cancel function that cleans up all resources (signals, goroutines).
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	// System signal channel
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}
