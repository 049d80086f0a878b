// internal/adapters/output/format.go
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"uuidhunt/internal/core/domain"
)

// Format es el formato de cada registro de salida.
type Format string

const (
	// FormatPair uuid:name (default)
	FormatPair Format = "pair"
	// FormatID solo el uuid
	FormatID Format = "id"
	// FormatJSONL un objeto JSON por línea
	FormatJSONL Format = "jsonl"
	// FormatCSV name,id,ignored
	FormatCSV Format = "csv"
)

// Formats lista los formatos soportados.
func Formats() []string {
	return []string{string(FormatPair), string(FormatID), string(FormatJSONL), string(FormatCSV)}
}

// ParseFormat valida un nombre de formato.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPair, FormatID, FormatJSONL, FormatCSV:
		return f, nil
	case "":
		return FormatPair, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(Formats(), ", "))
}

// IsText indica si el formato marca los ignorados con estilo o sufijo.
func (f Format) IsText() bool {
	return f == FormatPair || f == FormatID
}

// Header retorna la cabecera del formato, o nil si no tiene.
func (f Format) Header() []byte {
	if f == FormatCSV {
		return []byte("name,id,ignored\n")
	}
	return nil
}

// jsonRecord es la forma de un registro jsonl.
type jsonRecord struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	Ignored bool   `json:"ignored"`
}

// encoder convierte un registro en una línea completa, con el salto final.
type encoder func(rec domain.OutputRecord) ([]byte, error)

// ignoredMarker se añade a los ignorados en formatos de texto sin color.
const ignoredMarker = " [ignored]"

func newEncoder(f Format, highlight func(string) string) encoder {
	switch f {
	case FormatJSONL:
		return func(rec domain.OutputRecord) ([]byte, error) {
			b, err := json.Marshal(jsonRecord{Name: rec.Name, ID: rec.Identifier, Ignored: rec.Ignored})
			if err != nil {
				return nil, err
			}
			return append(b, '\n'), nil
		}

	case FormatCSV:
		return func(rec domain.OutputRecord) ([]byte, error) {
			var buf bytes.Buffer
			w := csv.NewWriter(&buf)
			if err := w.Write([]string{rec.Name, rec.Identifier, strconv.FormatBool(rec.Ignored)}); err != nil {
				return nil, err
			}
			w.Flush()
			return buf.Bytes(), w.Error()
		}
	}

	return func(rec domain.OutputRecord) ([]byte, error) {
		line := rec.Identifier
		if f == FormatPair {
			line = rec.Identifier + ":" + rec.Name
		}
		if rec.Ignored {
			// sin color efectivo el estilo no cambia nada: usar el sufijo
			if styled := applyHighlight(highlight, line); styled != line {
				line = styled
			} else {
				line += ignoredMarker
			}
		}
		return []byte(line + "\n"), nil
	}
}

func applyHighlight(highlight func(string) string, s string) string {
	if highlight == nil {
		return s
	}
	return highlight(s)
}
