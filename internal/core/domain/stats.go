// internal/core/domain/stats.go
package domain

import "time"

// RunStats es una foto de los contadores de una ejecución.
type RunStats struct {
	// Requests peticiones emitidas al endpoint (incluye reintentos)
	Requests int64
	// Outcomes candidatos resueltos, con o sin éxito
	Outcomes int64
	// Found perfiles encontrados, ignorados incluidos
	Found int64
	// Ignored encontrados que están en la lista de ignorados
	Ignored int64
	// Written registros entregados al writer
	Written  int64
	NotFound int64
	// TransientErrors candidatos que agotaron los reintentos
	TransientErrors int64
	FatalErrors     int64
	Elapsed         time.Duration
}

// Fresh retorna los encontrados que no están ignorados.
func (s RunStats) Fresh() int64 {
	return s.Found - s.Ignored
}

// Errors retorna el total de candidatos fallidos.
func (s RunStats) Errors() int64 {
	return s.TransientErrors + s.FatalErrors
}

// RequestRate retorna peticiones por segundo.
func (s RunStats) RequestRate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Requests) / s.Elapsed.Seconds()
}
