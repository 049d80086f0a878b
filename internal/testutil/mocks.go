// internal/testutil/mocks.go
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// Nota: Los mocks específicos de domain/ports están en sus respectivos paquetes
// Este archivo contiene solo utilidades genéricas sin dependencias circulares

// RecordedRequest es una petición recibida por FakeEndpoint.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// FakeEndpoint es un servidor httptest que registra cada petición y mide
// cuántas atiende a la vez.
type FakeEndpoint struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

// NewFakeEndpoint arranca el servidor; se cierra solo al terminar el test.
func NewFakeEndpoint(t *testing.T, handler http.HandlerFunc) *FakeEndpoint {
	t.Helper()
	f := &FakeEndpoint{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := f.inFlight.Add(1)
		defer f.inFlight.Add(-1)
		for {
			max := f.maxInFlight.Load()
			if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
				break
			}
		}

		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		f.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// Calls retorna el número de peticiones recibidas.
func (f *FakeEndpoint) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests retorna una copia de las peticiones recibidas.
func (f *FakeEndpoint) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest retorna la última petición (vacía si no hubo ninguna).
func (f *FakeEndpoint) LastRequest() RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RecordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

// MaxInFlight retorna el máximo de peticiones concurrentes observado.
func (f *FakeEndpoint) MaxInFlight() int {
	return int(f.maxInFlight.Load())
}

// StatusHandler responde siempre con code y body.
func StatusHandler(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, body)
	}
}
