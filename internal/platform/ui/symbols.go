// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"uuidhunt/internal/core/domain"
)

// Iconos del panel de arranque y del resumen
const (
	IconTarget     = "◎"
	IconWorkers    = "⚙"
	IconCandidates = "≡"
	IconIgnored    = "⊘"
	IconOutput     = "→"
	IconRequests   = "⇅"
	IconTime       = "⏱"
)

// StatusSymbol retorna el símbolo Unicode de cada estado, ya coloreado.
func StatusSymbol(s domain.Status) string {
	return StatusStyle(s).Sprint(rawSymbol(s))
}

func rawSymbol(s domain.Status) string {
	switch s {
	case domain.StatusFound:
		return "✓"
	case domain.StatusNotFound:
		return "·"
	case domain.StatusTransientError:
		return "⚠"
	case domain.StatusFatalError:
		return "✗"
	default:
		return "?"
	}
}

// StatusStyle retorna un pterm.Style configurado para el estado
func StatusStyle(s domain.Status) *pterm.Style {
	switch s {
	case domain.StatusFound:
		return pterm.NewStyle(pterm.FgGreen)
	case domain.StatusNotFound:
		return pterm.NewStyle(pterm.FgGray)
	case domain.StatusTransientError:
		return pterm.NewStyle(pterm.FgYellow)
	case domain.StatusFatalError:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}
