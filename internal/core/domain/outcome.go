// internal/core/domain/outcome.go
package domain

import (
	"uuidhunt/internal/platform/errors"
)

// Outcome es el resultado de resolver exactamente un candidato.
type Outcome struct {
	Candidate Candidate

	// Profile es nil salvo en StatusFound
	Profile *Profile

	Status Status

	// Err describe el último fallo en los estados de error
	Err error

	// Attempts número de peticiones que consumió el candidato
	Attempts int
}

// FoundOutcome crea un outcome resuelto.
func FoundOutcome(c Candidate, p Profile, attempts int) Outcome {
	return Outcome{Candidate: c, Profile: &p, Status: StatusFound, Attempts: attempts}
}

// NotFoundOutcome crea un outcome para un nombre no registrado.
func NotFoundOutcome(c Candidate, attempts int) Outcome {
	return Outcome{Candidate: c, Status: StatusNotFound, Attempts: attempts}
}

// FailedOutcome clasifica err como fatal o transitorio.
func FailedOutcome(c Candidate, err error, attempts int) Outcome {
	status := StatusTransientError
	if errors.IsFatal(err) || errors.Is(err, ErrFatalEndpoint) {
		status = StatusFatalError
	}
	return Outcome{Candidate: c, Status: status, Err: err, Attempts: attempts}
}

// OutputRecord es lo que el sink entrega al writer para un outcome Found.
type OutputRecord struct {
	Candidate  Candidate
	Name       string
	Identifier string
	Ignored    bool
}

// NewOutputRecord construye el registro de salida de un outcome Found.
func NewOutputRecord(o Outcome, ignored bool) OutputRecord {
	rec := OutputRecord{Candidate: o.Candidate, Name: o.Candidate.String(), Ignored: ignored}
	if o.Profile != nil {
		rec.Name = o.Profile.Name
		rec.Identifier = o.Profile.ID
	}
	return rec
}
