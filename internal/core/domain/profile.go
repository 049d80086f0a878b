// internal/core/domain/profile.go
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Candidate es un nombre de cuenta ya saneado, listo para buscarse.
type Candidate string

// String retorna el nombre.
func (c Candidate) String() string {
	return string(c)
}

// Profile es la respuesta del endpoint para un nombre registrado.
type Profile struct {
	// Name tal como lo devuelve el endpoint (capitalización canónica)
	Name string

	// ID en forma canónica con guiones y minúsculas
	ID string
}

// NewProfile valida y normaliza un par nombre/identificador.
// Acepta el identificador con o sin guiones.
func NewProfile(name, rawID string) (Profile, error) {
	if strings.TrimSpace(name) == "" {
		return Profile{}, ErrEmptyName
	}
	id, err := NormalizeID(rawID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Name: name, ID: id}, nil
}

// NormalizeID convierte cualquier forma aceptada por uuid.Parse a la
// forma canónica xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func NormalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return parsed.String(), nil
}

// HexID retorna el identificador sin guiones, como se escribe en las listas de ignorados.
func (p Profile) HexID() string {
	return strings.ReplaceAll(p.ID, "-", "")
}

// Matches compara nombres sin distinguir mayúsculas.
func (p Profile) Matches(name string) bool {
	return strings.EqualFold(p.Name, name)
}
