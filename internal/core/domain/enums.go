// internal/core/domain/enums.go
package domain

// Status clasifica el resultado de resolver un candidato.
type Status string

const (
	// StatusFound el endpoint devolvió un identificador
	StatusFound Status = "found"

	// StatusNotFound el nombre no está registrado
	StatusNotFound Status = "not_found"

	// StatusTransientError se agotaron los reintentos
	StatusTransientError Status = "transient_error"

	// StatusFatalError el endpoint no puede atender más búsquedas
	StatusFatalError Status = "fatal_error"
)

// IsValid verifica si el estado es válido.
func (s Status) IsValid() bool {
	switch s {
	case StatusFound, StatusNotFound, StatusTransientError, StatusFatalError:
		return true
	default:
		return false
	}
}

// IsError indica si el estado representa un fallo de búsqueda.
func (s Status) IsError() bool {
	return s == StatusTransientError || s == StatusFatalError
}

// String retorna la representación string del estado.
func (s Status) String() string {
	return string(s)
}
