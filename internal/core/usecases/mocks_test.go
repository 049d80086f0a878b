// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/resilience"
	"uuidhunt/internal/testutil"
)

// fakeResolver es un ports.Resolver en memoria que registra cada llamada y
// la concurrencia máxima observada.
type fakeResolver struct {
	maxBatch int
	delay    time.Duration
	// respond decide la respuesta; call empieza en 1
	respond func(call int, names []string) ([]domain.Profile, error)

	mu    sync.Mutex
	calls [][]string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newFakeResolver(respond func(call int, names []string) ([]domain.Profile, error)) *fakeResolver {
	if respond == nil {
		respond = registered
	}
	return &fakeResolver{maxBatch: 1, respond: respond}
}

func (f *fakeResolver) Name() string  { return "fake" }
func (f *fakeResolver) MaxBatch() int { return f.maxBatch }

func (f *fakeResolver) Resolve(ctx context.Context, names []string) ([]domain.Profile, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		max := f.maxInFlight.Load()
		if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), names...))
	call := len(f.calls)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.respond(call, names)
}

func (f *fakeResolver) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

// registered responde con los perfiles de testutil.FixtureProfiles.
func registered(_ int, names []string) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, name := range names {
		for canonical, id := range testutil.FixtureProfiles {
			if strings.EqualFold(canonical, name) {
				out = append(out, domain.Profile{Name: canonical, ID: id})
			}
		}
	}
	return out, nil
}

// failing responde siempre con err.
func failing(err error) func(int, []string) ([]domain.Profile, error) {
	return func(int, []string) ([]domain.Profile, error) {
		return nil, err
	}
}

// memoryWriter guarda los registros; falla en la escritura número failOn (1-based).
type memoryWriter struct {
	mu      sync.Mutex
	records []domain.OutputRecord
	writes  int
	failOn  int
	closed  bool
}

func (w *memoryWriter) Write(rec domain.OutputRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	if w.failOn > 0 && w.writes >= w.failOn {
		return fmt.Errorf("disk full")
	}
	w.records = append(w.records, rec)
	return nil
}

func (w *memoryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *memoryWriter) Records() []domain.OutputRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.OutputRecord(nil), w.records...)
}

// fastRetry envuelve r con backoff de milisegundos.
func fastRetry(r *fakeResolver, retries, breaker int) *resilience.RetryableResolver {
	return resilience.NewRetryableResolver(r, resilience.RetryConfig{
		MaxRetries:     retries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		Multiplier:     2,
	}, resilience.NewCircuitBreaker(breaker), logx.NewNop())
}

// manyCandidates genera n candidatos distintos.
func manyCandidates(n int) []domain.Candidate {
	out := make([]domain.Candidate, n)
	for i := range out {
		out[i] = domain.Candidate(fmt.Sprintf("user_%04d", i))
	}
	return out
}
