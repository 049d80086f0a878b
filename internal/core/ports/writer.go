// internal/core/ports/writer.go
package ports

import "uuidhunt/internal/core/domain"

// RecordWriter es el port de salida del sink. Cada Write emite un registro
// completo con una sola escritura al destino subyacente.
type RecordWriter interface {
	Write(rec domain.OutputRecord) error
	Close() error
}

