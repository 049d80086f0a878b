// internal/adapters/output/writer.go
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/ui"
)

// Stdout es el path que selecciona la salida estándar.
const Stdout = "-"

// Options configura un writer de resultados.
type Options struct {
	// Path del archivo; "-" = stdout
	Path   string
	Format Format
	// Color renderiza los ignorados con el estilo de la UI en vez del sufijo
	Color  bool
	Logger logx.Logger
}

// Writer implementa ports.RecordWriter. Cada registro se codifica entero
// y se emite con una sola llamada a Write del destino.
type Writer struct {
	mu     sync.Mutex
	dst    io.Writer
	closer io.Closer
	encode encoder
	format Format
	path   string
}

// Open abre el destino en modo append. Si el archivo ya existe lo avisa:
// los nuevos resultados se añaden al final.
func Open(opts Options) (*Writer, error) {
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	opts.Format = format

	if opts.Path == "" || opts.Path == Stdout {
		w := NewWriter(os.Stdout, opts)
		w.path = Stdout
		if err := w.writeHeader(); err != nil {
			return nil, err
		}
		return w, nil
	}

	info, statErr := os.Stat(opts.Path)
	exists := statErr == nil
	if exists && info.IsDir() {
		return nil, fmt.Errorf("output %s is a directory", opts.Path)
	}
	if exists {
		opts.Logger.Warn("output file already exists, found uuids will be appended", "path", opts.Path)
	}

	f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	w := NewWriter(f, opts)
	w.closer = f
	w.path = opts.Path
	if !exists || info.Size() == 0 {
		if err := w.writeHeader(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return w, nil
}

// NewWriter envuelve dst sin cabecera ni cierre; útil para tests y pipes.
func NewWriter(dst io.Writer, opts Options) *Writer {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		format = FormatPair
	}
	var highlight func(string) string
	if opts.Color && format.IsText() {
		highlight = ui.Ignored
	}
	return &Writer{
		dst:    dst,
		encode: newEncoder(format, highlight),
		format: format,
		path:   opts.Path,
	}
}

func (w *Writer) writeHeader() error {
	header := w.format.Header()
	if header == nil {
		return nil
	}
	if _, err := w.dst.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Write emite un registro completo.
func (w *Writer) Write(rec domain.OutputRecord) error {
	line, err := w.encode(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record for %s: %w", rec.Name, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.dst.Write(line); err != nil {
		return fmt.Errorf("failed to write record for %s: %w", rec.Name, err)
	}
	return nil
}

// Close sincroniza y cierra el archivo; stdout no se cierra.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closer == nil {
		return nil
	}
	if f, ok := w.closer.(*os.File); ok {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("failed to sync output: %w", err)
		}
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}

// Path retorna el destino ("-" para stdout).
func (w *Writer) Path() string { return w.path }

// Format retorna el formato del writer.
func (w *Writer) Format() Format { return w.format }
