// internal/core/usecases/pool.go
package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/logx"
)

// DefaultWorkers es el número de workers si no se configura otro.
const DefaultWorkers = 80

// DefaultShutdownTimeout es el margen que tienen las búsquedas en curso al parar.
const DefaultShutdownTimeout = 10 * time.Second

// Lookuper resuelve un lote de nombres reportando cuántas peticiones consumió.
// resilience.RetryableResolver lo implementa.
type Lookuper interface {
	MaxBatch() int
	Lookup(ctx context.Context, names []string) ([]domain.Profile, int, error)
}

// PoolConfig configura el pool de búsquedas.
type PoolConfig struct {
	Workers         int
	ShutdownTimeout time.Duration
	Stats           *Stats
	Logger          logx.Logger
}

// Pool drena candidatos con exactamente Workers goroutines. Cada worker
// tiene como mucho una búsqueda en curso.
type Pool struct {
	lookup          Lookuper
	workers         int
	batch           int
	shutdownTimeout time.Duration
	stats           *Stats
	logger          logx.Logger

	stopOnce sync.Once
	stopped  chan struct{}

	fatalMu  sync.Mutex
	fatalErr error
}

// NewPool crea el pool.
func NewPool(lookup Lookuper, cfg PoolConfig) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.NewNop()
	}
	batch := lookup.MaxBatch()
	if batch < 1 {
		batch = 1
	}

	return &Pool{
		lookup:          lookup,
		workers:         cfg.Workers,
		batch:           batch,
		shutdownTimeout: cfg.ShutdownTimeout,
		stats:           cfg.Stats,
		logger:          cfg.Logger.With("component", "pool"),
		stopped:         make(chan struct{}),
	}
}

// Workers retorna el número de workers.
func (p *Pool) Workers() int { return p.workers }

// QueueSize retorna la capacidad recomendada de los canales (2x workers).
func (p *Pool) QueueSize() int { return p.workers * 2 }

// Stop deja de aceptar candidatos. Es idempotente.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

// Stopped se cierra cuando el pool deja de aceptar candidatos.
func (p *Pool) Stopped() <-chan struct{} { return p.stopped }

// Err retorna el primer error fatal observado, o nil.
func (p *Pool) Err() error {
	p.fatalMu.Lock()
	defer p.fatalMu.Unlock()
	return p.fatalErr
}

// Run consume in hasta que se agota, se cancela ctx o se llama a Stop, y
// emite un outcome por cada candidato tomado. Cierra out al terminar.
func (p *Pool) Run(ctx context.Context, in <-chan domain.Candidate, out chan<- domain.Outcome) {
	defer close(out)

	lookupCtx, cancel := p.lookupContext(ctx)
	defer cancel()

	p.logger.Debug("starting workers", "workers", p.workers, "batch", p.batch)

	wp := pool.New().WithMaxGoroutines(p.workers)
	for id := 0; id < p.workers; id++ {
		wp.Go(func() {
			p.worker(ctx, lookupCtx, id, in, out)
		})
	}
	wp.Wait()

	p.logger.Debug("workers stopped")
}

// lookupContext sobrevive a la cancelación de ctx durante shutdownTimeout,
// para que las búsquedas en curso puedan terminar.
func (p *Pool) lookupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go func() {
		select {
		case <-lctx.Done():
			return
		case <-ctx.Done():
		case <-p.stopped:
		}

		timer := time.NewTimer(p.shutdownTimeout)
		defer timer.Stop()
		select {
		case <-timer.C:
			p.logger.Debug("shutdown timeout reached, cancelling in-flight lookups")
			cancel()
		case <-lctx.Done():
		}
	}()
	return lctx, cancel
}

func (p *Pool) worker(ctx, lookupCtx context.Context, id int, in <-chan domain.Candidate, out chan<- domain.Outcome) {
	for {
		batch, ok := p.next(ctx, in)
		if !ok {
			return
		}
		// pudo pararse mientras se esperaba el lote
		if p.intakeClosed(ctx) {
			p.logger.Debug("dropping dequeued candidates after stop", "worker_id", id, "count", len(batch))
			return
		}

		for _, o := range p.resolve(lookupCtx, batch) {
			p.stats.RecordOutcome(o)
			out <- o
		}
	}
}

func (p *Pool) intakeClosed(ctx context.Context) bool {
	select {
	case <-p.stopped:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// next toma un candidato bloqueando y completa el lote con los que ya
// estén en cola, sin esperar.
func (p *Pool) next(ctx context.Context, in <-chan domain.Candidate) ([]domain.Candidate, bool) {
	if p.intakeClosed(ctx) {
		return nil, false
	}

	var first domain.Candidate
	select {
	case <-ctx.Done():
		return nil, false
	case <-p.stopped:
		return nil, false
	case c, ok := <-in:
		if !ok {
			return nil, false
		}
		first = c
	}

	batch := make([]domain.Candidate, 1, p.batch)
	batch[0] = first
	for len(batch) < p.batch {
		select {
		case c, ok := <-in:
			if !ok {
				return batch, true
			}
			batch = append(batch, c)
		default:
			return batch, true
		}
	}
	return batch, true
}

// resolve hace una búsqueda para el lote y produce un outcome por candidato.
func (p *Pool) resolve(ctx context.Context, batch []domain.Candidate) []domain.Outcome {
	names := make([]string, len(batch))
	for i, c := range batch {
		names[i] = c.String()
	}

	profiles, attempts, err := p.lookup.Lookup(ctx, names)
	p.stats.AddRequests(attempts)

	outcomes := make([]domain.Outcome, 0, len(batch))
	if err != nil {
		for _, c := range batch {
			outcomes = append(outcomes, domain.FailedOutcome(c, err, attempts))
		}
		if outcomes[0].Status == domain.StatusFatalError {
			p.fail(err)
		}
		return outcomes
	}

	byName := make(map[string]domain.Profile, len(profiles))
	for _, prof := range profiles {
		byName[strings.ToLower(prof.Name)] = prof
	}
	for _, c := range batch {
		if prof, ok := byName[strings.ToLower(c.String())]; ok {
			outcomes = append(outcomes, domain.FoundOutcome(c, prof, attempts))
			continue
		}
		outcomes = append(outcomes, domain.NotFoundOutcome(c, attempts))
	}
	return outcomes
}

// fail guarda el primer error fatal y para la ingesta.
func (p *Pool) fail(err error) {
	p.fatalMu.Lock()
	first := p.fatalErr == nil
	if first {
		p.fatalErr = err
	}
	p.fatalMu.Unlock()

	if first {
		p.logger.Warn("fatal endpoint error, stopping intake", "error", err.Error())
	}
	p.Stop()
}
