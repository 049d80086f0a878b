// internal/platform/ui/presenter.go
package ui

import (
	"fmt"
	"time"

	"uuidhunt/internal/core/domain"
)

// Presenter muestra el progreso de una ejecución en la terminal.
type Presenter interface {
	// Start muestra la configuración y arranca la línea de estado
	Start(info RunInfo)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish detiene la línea de estado y muestra el resumen
	Finish(stats domain.RunStats)

	// Close libera recursos; es seguro llamarlo tras Finish
	Close() error
}

// StatsFunc retorna una foto de los contadores actuales.
type StatsFunc func() domain.RunStats

// RunInfo describe la ejecución al arrancar.
type RunInfo struct {
	Version    string
	Resolver   string
	Endpoint   string
	Workers    int
	Batch      int
	Candidates int
	Ignored    int
	Truncation int
	Output     string
	Format     string
}

// FormatStatus es la línea de estado: reqs | found (total) | ignored | errors.
func FormatStatus(s domain.RunStats) string {
	return fmt.Sprintf("%s reqs | %s found (%d total) | %s ignored | %s errors | %.1f req/s",
		StylePrimary.Sprint(s.Requests),
		StyleSuccess.Sprint(s.Fresh()),
		s.Found,
		StyleSecondary.Sprint(s.Ignored),
		errorStyle(s.Errors()).Sprint(s.Errors()),
		s.RequestRate(),
	)
}

func errorStyle(n int64) interface{ Sprint(a ...any) string } {
	if n > 0 {
		return StyleError
	}
	return StyleSecondary
}

// formatDuration formatea una duración de manera legible
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
