// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Run errors
	ErrFatalEndpoint = errors.New("endpoint cannot serve further lookups")
	ErrNoCandidates  = errors.New("wordlist produced no candidates")
	ErrOutputWrite   = errors.New("failed to write output record")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// Identifier errors
	ErrInvalidIdentifier = errors.New("invalid profile identifier")
	ErrEmptyName         = errors.New("profile name cannot be empty")
)
