// internal/core/usecases/stats.go
package usecases

import (
	"sync/atomic"
	"time"

	"uuidhunt/internal/core/domain"
)

// Stats agrupa los contadores compartidos por el pool y el sink.
// Todos los métodos son seguros para uso concurrente.
type Stats struct {
	started time.Time

	requests  atomic.Int64
	outcomes  atomic.Int64
	found     atomic.Int64
	ignored   atomic.Int64
	written   atomic.Int64
	notFound  atomic.Int64
	transient atomic.Int64
	fatal     atomic.Int64
}

// NewStats crea los contadores; el reloj empieza ahora.
func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

// AddRequests suma peticiones emitidas.
func (s *Stats) AddRequests(n int) {
	if n > 0 {
		s.requests.Add(int64(n))
	}
}

// RecordOutcome cuenta un outcome según su estado.
func (s *Stats) RecordOutcome(o domain.Outcome) {
	s.outcomes.Add(1)
	switch o.Status {
	case domain.StatusFound:
		s.found.Add(1)
	case domain.StatusNotFound:
		s.notFound.Add(1)
	case domain.StatusTransientError:
		s.transient.Add(1)
	case domain.StatusFatalError:
		s.fatal.Add(1)
	}
}

// RecordIgnored cuenta un encontrado presente en la lista de ignorados.
func (s *Stats) RecordIgnored() { s.ignored.Add(1) }

// RecordWritten cuenta un registro escrito.
func (s *Stats) RecordWritten() { s.written.Add(1) }

// Snapshot retorna los valores actuales.
func (s *Stats) Snapshot() domain.RunStats {
	return domain.RunStats{
		Requests:        s.requests.Load(),
		Outcomes:        s.outcomes.Load(),
		Found:           s.found.Load(),
		Ignored:         s.ignored.Load(),
		Written:         s.written.Load(),
		NotFound:        s.notFound.Load(),
		TransientErrors: s.transient.Load(),
		FatalErrors:     s.fatal.Load(),
		Elapsed:         time.Since(s.started),
	}
}
