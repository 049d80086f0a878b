// internal/platform/ui/colors.go
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Paleta
var (
	// EmberOrange headers y elementos principales
	EmberOrange = pterm.NewRGB(255, 107, 53)

	// InfernoRed errores
	InfernoRed = pterm.NewRGB(215, 38, 56)

	// MoltenGold warnings, lookups fallidos
	MoltenGold = pterm.NewRGB(255, 182, 39)

	// AshGray texto secundario e ignorados
	AshGray = pterm.NewRGB(128, 128, 128)

	// GhostCyan encontrados
	GhostCyan = pterm.NewRGB(0, 206, 209)
)

// Estilos
var (
	StylePrimary   = EmberOrange.ToRGBStyle()
	StyleSuccess   = GhostCyan.ToRGBStyle()
	StyleWarning   = MoltenGold.ToRGBStyle()
	StyleError     = InfernoRed.ToRGBStyle()
	StyleSecondary = AshGray.ToRGBStyle()

	// StyleIgnored marca los registros que ya estaban en la lista de ignorados
	StyleIgnored = pterm.NewStyle(pterm.FgGray)
)

// ColorMode controla cuándo se emite color.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode valida un modo de color.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (auto, always, never)", s)
	}
}

// ColorEnabled resuelve el modo: auto solo colorea si f es una terminal.
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return IsTerminal(f)
	}
}

// IsTerminal indica si f es una terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColor activa o desactiva el color de pterm globalmente.
func ConfigureColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
		return
	}
	pterm.DisableColor()
}

// Ignored renderiza un registro ignorado.
func Ignored(s string) string {
	return StyleIgnored.Sprint(s)
}
