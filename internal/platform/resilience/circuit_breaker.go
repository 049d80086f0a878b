// internal/platform/resilience/circuit_breaker.go
package resilience

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// State representa el estado del circuit breaker.
type State int

const (
	StateClosed State = iota // Normal operation
	StateOpen                // Endpoint considerado muerto
)

// CircuitBreaker cuenta búsquedas agotadas consecutivas. Al alcanzar el
// umbral se abre y permanece abierto: un endpoint que falla K veces seguidas
// tras todos sus reintentos no se vuelve a probar en esta ejecución.
type CircuitBreaker struct {
	mu              sync.RWMutex
	state           State
	failureCount    int
	totalFailures   int
	lastFailureTime time.Time
	lastSuccessTime time.Time
	openedAt        time.Time

	// Config
	failureThreshold int // Failures to open circuit
}

// NewCircuitBreaker crea un nuevo circuit breaker. Un umbral <= 0 retorna
// nil, que equivale a breaker deshabilitado: todos los métodos aceptan nil.
func NewCircuitBreaker(failureThreshold int) *CircuitBreaker {
	if failureThreshold <= 0 {
		return nil
	}
	return &CircuitBreaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
	}
}

// Allow verifica si una request puede pasar.
func (cb *CircuitBreaker) Allow() bool {
	if cb == nil {
		return true
	}
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state == StateClosed
}

// RecordSuccess registra una búsqueda respondida (encontrada o no).
func (cb *CircuitBreaker) RecordSuccess() {
	if cb == nil {
		return
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastSuccessTime = time.Now()
	if cb.state == StateClosed {
		cb.failureCount = 0
	}
}

// RecordFailure registra una búsqueda agotada y reporta si este fallo abrió el circuito.
func (cb *CircuitBreaker) RecordFailure() bool {
	if cb == nil {
		return false
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()
	cb.failureCount++
	cb.totalFailures++

	if cb.state == StateClosed && cb.failureCount >= cb.failureThreshold {
		cb.state = StateOpen
		cb.openedAt = cb.lastFailureTime
		return true
	}
	return false
}

// State retorna el estado actual del circuit breaker.
func (cb *CircuitBreaker) State() State {
	if cb == nil {
		return StateClosed
	}
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Reset resetea el circuit breaker al estado cerrado.
func (cb *CircuitBreaker) Reset() {
	if cb == nil {
		return
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.state = StateClosed
	cb.failureCount = 0
	cb.openedAt = time.Time{}
}

// Threshold retorna el número de fallos consecutivos que abre el circuito.
func (cb *CircuitBreaker) Threshold() int {
	if cb == nil {
		return 0
	}
	return cb.failureThreshold
}

// Stats retorna estadísticas del circuit breaker.
func (cb *CircuitBreaker) Stats() CircuitBreakerStats {
	if cb == nil {
		return CircuitBreakerStats{}
	}
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return CircuitBreakerStats{
		State:               cb.state,
		ConsecutiveFailures: cb.failureCount,
		TotalFailures:       cb.totalFailures,
		LastFailureTime:     cb.lastFailureTime,
		LastSuccessTime:     cb.lastSuccessTime,
		OpenedAt:            cb.openedAt,
	}
}

// CircuitBreakerStats contiene estadísticas del circuit breaker.
type CircuitBreakerStats struct {
	State               State
	ConsecutiveFailures int
	TotalFailures       int
	LastFailureTime     time.Time
	LastSuccessTime     time.Time
	OpenedAt            time.Time
}

// String retorna una representación legible del estado.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
