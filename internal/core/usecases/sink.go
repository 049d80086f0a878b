// internal/core/usecases/sink.go
package usecases

import (
	"fmt"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/ignore"
	"uuidhunt/internal/platform/logx"
)

// SinkConfig configura el sink de resultados.
type SinkConfig struct {
	// Ignore nil equivale a un conjunto vacío
	Ignore *ignore.Set
	// ShowIgnored escribe los ignorados marcados en vez de descartarlos
	ShowIgnored bool
	Stats       *Stats
	Logger      logx.Logger
}

// Sink es el único goroutine que escribe. Filtra contra la lista de
// ignorados y entrega un registro por Write.
type Sink struct {
	writer      ports.RecordWriter
	ignored     *ignore.Set
	showIgnored bool
	stats       *Stats
	logger      logx.Logger
}

// NewSink crea el sink.
func NewSink(writer ports.RecordWriter, cfg SinkConfig) *Sink {
	if cfg.Ignore == nil {
		cfg.Ignore = ignore.Empty(0)
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.NewNop()
	}
	return &Sink{
		writer:      writer,
		ignored:     cfg.Ignore,
		showIgnored: cfg.ShowIgnored,
		stats:       cfg.Stats,
		logger:      cfg.Logger.With("component", "sink"),
	}
}

// Run consume outcomes hasta que in se cierra. Si el writer falla deja de
// escribir, llama a abort una vez y sigue drenando para no bloquear a los
// workers. Retorna el primer error de escritura envuelto en ErrOutputWrite.
func (s *Sink) Run(in <-chan domain.Outcome, abort func()) error {
	var writeErr error

	for o := range in {
		switch o.Status {
		case domain.StatusNotFound:
			continue

		case domain.StatusTransientError:
			s.logger.Warn("lookup failed", "name", o.Candidate.String(), "attempts", o.Attempts, "error", errString(o.Err))
			continue

		case domain.StatusFatalError:
			s.logger.Err(o.Err, "name", o.Candidate.String(), "attempts", o.Attempts)
			continue
		}

		if o.Profile == nil {
			continue
		}

		ignored := s.ignored.Contains(o.Profile.ID)
		if ignored {
			s.stats.RecordIgnored()
			if !s.showIgnored {
				s.logger.Debug("ignored identifier", "name", o.Profile.Name, "id", o.Profile.ID)
				continue
			}
		}

		if writeErr != nil {
			continue
		}
		if err := s.writer.Write(domain.NewOutputRecord(o, ignored)); err != nil {
			writeErr = fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
			s.logger.Err(writeErr, "name", o.Profile.Name)
			if abort != nil {
				abort()
			}
			continue
		}
		s.stats.RecordWritten()
	}

	return writeErr
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
