// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"uuidhunt/internal/core/domain"
)

// DefaultRefresh es cada cuánto se redibuja la línea de estado.
const DefaultRefresh = time.Second

// PTermPresenter dibuja una línea de estado periódica y el resumen final
// con pterm. Escribe en out (normalmente stderr) para no mezclarse con la
// salida de resultados.
type PTermPresenter struct {
	mu sync.Mutex

	out      io.Writer
	stats    StatsFunc
	refresh  time.Duration
	inPlace  bool
	lastLine int

	started bool
	stop    chan struct{}
	done    chan struct{}
}

// NewPTermPresenter crea el presenter. inPlace reescribe la línea con \r
// (terminal); si no, imprime una línea por refresco.
func NewPTermPresenter(out io.Writer, stats StatsFunc, refresh time.Duration, inPlace bool) *PTermPresenter {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return &PTermPresenter{
		out:     out,
		stats:   stats,
		refresh: refresh,
		inPlace: inPlace,
	}
}

// Start muestra el banner y la configuración, y arranca el ticker.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	pterm.Fprintln(p.out, StylePrimary.Sprint(Banner(info.Version)))

	lines := []string{
		fmt.Sprintf("%s resolver:   %s (%s)", IconTarget, StyleSuccess.Sprint(info.Resolver), info.Endpoint),
		fmt.Sprintf("%s workers:    %d, batch %d", IconWorkers, info.Workers, info.Batch),
		fmt.Sprintf("%s candidates: %d", IconCandidates, info.Candidates),
	}
	if info.Ignored > 0 {
		trunc := "full ids"
		if info.Truncation > 0 {
			trunc = fmt.Sprintf("first %d hex digits", info.Truncation)
		}
		lines = append(lines, fmt.Sprintf("%s ignored:    %d (%s)", IconIgnored, info.Ignored, trunc))
	}
	lines = append(lines, fmt.Sprintf("%s output:     %s [%s]", IconOutput, info.Output, info.Format))
	pterm.Fprintln(p.out, strings.Join(lines, "\n"))
	pterm.Fprintln(p.out)

	if p.stats == nil {
		return
	}
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go p.loop(p.stop, p.done)
}

// loop recibe sus canales por parámetro: halt pone p.stop a nil mientras
// el ticker puede estar esperando p.mu.
func (p *PTermPresenter) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			select {
			case <-stop:
				p.mu.Unlock()
				return
			default:
			}
			p.renderStatus(p.stats())
			p.mu.Unlock()
		}
	}
}

// renderStatus escribe la línea de estado; requiere p.mu.
func (p *PTermPresenter) renderStatus(s domain.RunStats) {
	line := FormatStatus(s)
	if !p.inPlace {
		pterm.Fprintln(p.out, line)
		return
	}
	pterm.Fprint(p.out, "\r"+line+clearToEOL)
	p.lastLine = len(line)
}

// clearStatus borra la línea en curso antes de imprimir otra cosa; requiere p.mu.
func (p *PTermPresenter) clearStatus() {
	if p.inPlace && p.lastLine > 0 {
		pterm.Fprint(p.out, "\r"+clearToEOL)
		p.lastLine = 0
	}
}

const clearToEOL = "\x1b[K"

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) { p.message(pterm.Info.Sprint(msg)) }

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) { p.message(pterm.Warning.Sprint(msg)) }

// Error muestra un error
func (p *PTermPresenter) Error(msg string) { p.message(pterm.Error.Sprint(msg)) }

func (p *PTermPresenter) message(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearStatus()
	pterm.Fprintln(p.out, s)
}

// Finish detiene el ticker y muestra el resumen.
func (p *PTermPresenter) Finish(stats domain.RunStats) {
	p.halt()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.clearStatus()

	pterm.Fprintln(p.out, FormatStatus(stats))
	pterm.Fprintln(p.out)
	pterm.Fprintln(p.out, StylePrimary.Sprint("Summary"))

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(SummaryTable(stats)).
		Srender()
	if err != nil {
		pterm.Fprintln(p.out, err.Error())
		return
	}
	pterm.Fprintln(p.out, table)
}

// SummaryTable construye las filas del resumen final.
func SummaryTable(s domain.RunStats) pterm.TableData {
	data := pterm.TableData{
		{"", "Metric", "Value"},
		{StatusSymbol(domain.StatusFound), "Found", fmt.Sprintf("%d", s.Fresh())},
		{IconIgnored, "Ignored", fmt.Sprintf("%d", s.Ignored)},
		{StatusSymbol(domain.StatusNotFound), "Not found", fmt.Sprintf("%d", s.NotFound)},
		{IconOutput, "Written", fmt.Sprintf("%d", s.Written)},
		{IconRequests, "Requests", fmt.Sprintf("%d (%.1f/s)", s.Requests, s.RequestRate())},
		{IconTime, "Duration", formatDuration(s.Elapsed)},
	}
	if s.TransientErrors > 0 {
		data = append(data, []string{StatusSymbol(domain.StatusTransientError), "Failed lookups", fmt.Sprintf("%d", s.TransientErrors)})
	}
	if s.FatalErrors > 0 {
		data = append(data, []string{StatusSymbol(domain.StatusFatalError), "Fatal errors", fmt.Sprintf("%d", s.FatalErrors)})
	}
	return data
}

// halt para el ticker y espera a que salga.
func (p *PTermPresenter) halt() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop = nil
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Close detiene el ticker si sigue activo.
func (p *PTermPresenter) Close() error {
	p.halt()
	return nil
}
