// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/ignore"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/logx"
)

// PipelineOptions configura el pipeline.
type PipelineOptions struct {
	Lookup          Lookuper
	Writer          ports.RecordWriter
	Workers         int
	ShutdownTimeout time.Duration
	Ignore          *ignore.Set
	ShowIgnored     bool
	Logger          logx.Logger
}

// Pipeline conecta generador → pool → sink con dos canales acotados.
type Pipeline struct {
	opts   PipelineOptions
	stats  *Stats
	logger logx.Logger
}

// NewPipeline crea el pipeline. Las estadísticas empiezan a contar aquí.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	return &Pipeline{
		opts:   opts,
		stats:  NewStats(),
		logger: opts.Logger.With("component", "pipeline"),
	}
}

// Stats retorna los contadores vivos (para el presenter).
func (p *Pipeline) Stats() *Stats { return p.stats }

// Run ejecuta la búsqueda completa de candidates.
//
// Errores: ErrOutputWrite si el writer falló, ErrFatalEndpoint si el
// endpoint dejó de servir, ctx.Err() si se canceló. La salida escrita
// hasta ese momento se conserva en todos los casos.
func (p *Pipeline) Run(ctx context.Context, candidates iter.Seq[domain.Candidate]) (domain.RunStats, error) {
	lookupPool := NewPool(p.opts.Lookup, PoolConfig{
		Workers:         p.opts.Workers,
		ShutdownTimeout: p.opts.ShutdownTimeout,
		Stats:           p.stats,
		Logger:          p.opts.Logger,
	})
	sink := NewSink(p.opts.Writer, SinkConfig{
		Ignore:      p.opts.Ignore,
		ShowIgnored: p.opts.ShowIgnored,
		Stats:       p.stats,
		Logger:      p.opts.Logger,
	})

	queue := make(chan domain.Candidate, lookupPool.QueueSize())
	outcomes := make(chan domain.Outcome, lookupPool.QueueSize())

	p.logger.Info("pipeline started", "workers", lookupPool.Workers(), "resolver_batch", p.opts.Lookup.MaxBatch())

	g, gctx := errgroup.WithContext(ctx)

	// Stage 1: generador
	g.Go(func() error {
		defer close(queue)
		fed := 0
		for c := range candidates {
			select {
			case queue <- c:
				fed++
			case <-gctx.Done():
				p.logger.Debug("intake cancelled", "fed", fed)
				return nil
			case <-lookupPool.Stopped():
				p.logger.Debug("intake stopped", "fed", fed)
				return nil
			}
		}
		p.logger.Debug("candidates exhausted", "fed", fed)
		return nil
	})

	// Stage 2: pool
	g.Go(func() error {
		lookupPool.Run(gctx, queue, outcomes)
		return nil
	})

	// Stage 3: sink
	g.Go(func() error {
		return sink.Run(outcomes, lookupPool.Stop)
	})

	waitErr := g.Wait()
	stats := p.stats.Snapshot()

	p.logger.Info("pipeline finished",
		"requests", stats.Requests,
		"found", stats.Found,
		"ignored", stats.Ignored,
		"errors", stats.Errors(),
		"duration", stats.Elapsed.Round(time.Millisecond).String(),
	)

	switch {
	case waitErr != nil:
		return stats, waitErr
	case lookupPool.Err() != nil:
		return stats, fatalError(lookupPool.Err())
	case ctx.Err() != nil:
		return stats, ctx.Err()
	}
	return stats, nil
}

func fatalError(err error) error {
	if errors.Is(err, domain.ErrFatalEndpoint) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrFatalEndpoint, err)
}
