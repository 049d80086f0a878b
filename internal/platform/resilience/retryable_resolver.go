// internal/platform/resilience/retryable_resolver.go
package resilience

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/logx"
)

// RetryConfig controla los reintentos de una búsqueda.
type RetryConfig struct {
	// MaxRetries intentos extra tras el primero
	MaxRetries int

	// InitialBackoff espera antes del primer reintento
	InitialBackoff time.Duration

	// MaxBackoff tope de espera entre reintentos
	MaxBackoff time.Duration

	// Multiplier crecimiento exponencial (default 2)
	Multiplier float64

	// Jitter factor de aleatorización en [0, 1)
	Jitter float64
}

// DefaultRetryConfig retorna la política por defecto.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2,
		Jitter:         0.2,
	}
}

// RetryableResolver envuelve un Resolver con reintentos y circuit breaker.
type RetryableResolver struct {
	resolver       ports.Resolver
	config         RetryConfig
	circuitBreaker *CircuitBreaker
	logger         logx.Logger
}

// NewRetryableResolver crea un nuevo RetryableResolver. cb puede ser nil.
func NewRetryableResolver(resolver ports.Resolver, config RetryConfig, cb *CircuitBreaker, logger logx.Logger) *RetryableResolver {
	def := DefaultRetryConfig()
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.InitialBackoff <= 0 {
		config.InitialBackoff = def.InitialBackoff
	}
	if config.MaxBackoff < config.InitialBackoff {
		config.MaxBackoff = config.InitialBackoff
	}
	if config.Multiplier < 1.0 {
		config.Multiplier = def.Multiplier
	}
	if config.Jitter < 0 || config.Jitter >= 1 {
		config.Jitter = def.Jitter
	}
	if logger == nil {
		logger = logx.NewNop()
	}

	return &RetryableResolver{
		resolver:       resolver,
		config:         config,
		circuitBreaker: cb,
		logger:         logger.With("component", "retryable-resolver", "resolver", resolver.Name()),
	}
}

// Name retorna el nombre del resolver subyacente.
func (r *RetryableResolver) Name() string {
	return r.resolver.Name()
}

// MaxBatch retorna el tamaño de lote del resolver subyacente.
func (r *RetryableResolver) MaxBatch() int {
	return r.resolver.MaxBatch()
}

// Resolve implementa ports.Resolver descartando el número de intentos.
func (r *RetryableResolver) Resolve(ctx context.Context, names []string) ([]domain.Profile, error) {
	profiles, _, err := r.Lookup(ctx, names)
	return profiles, err
}

// Lookup resuelve names reintentando fallos transitorios. Retorna los
// perfiles, el número de peticiones emitidas y el último error.
//
// Un 404 (ErrNotFound) es una respuesta válida: todos los nombres quedan
// como no encontrados. Los errores fatales no se reintentan. Si el circuit
// breaker está o queda abierto el error envuelve domain.ErrFatalEndpoint.
func (r *RetryableResolver) Lookup(ctx context.Context, names []string) ([]domain.Profile, int, error) {
	if !r.circuitBreaker.Allow() {
		return nil, 0, r.openError()
	}

	attempts := 0
	operation := func() ([]domain.Profile, error) {
		attempts++
		profiles, err := r.resolver.Resolve(ctx, names)
		switch {
		case err == nil:
			return profiles, nil
		case errors.IsNotFound(err):
			return nil, nil
		case ctx.Err() != nil:
			return nil, backoff.Permanent(ctx.Err())
		case !errors.IsTransient(err):
			return nil, backoff.Permanent(err)
		default:
			return nil, err
		}
	}

	notify := func(err error, delay time.Duration) {
		r.logger.Debug("retrying lookup",
			"names", len(names),
			"attempt", attempts,
			"delay_ms", delay.Milliseconds(),
			"error", err.Error(),
		)
	}

	profiles, err := backoff.RetryNotifyWithData(operation, r.policy(ctx), notify)
	if err == nil {
		r.circuitBreaker.RecordSuccess()
		if attempts > 1 {
			r.logger.Debug("lookup succeeded after retry", "attempts", attempts)
		}
		return profiles, attempts, nil
	}

	if ctx.Err() != nil || errors.IsFatal(err) {
		return nil, attempts, err
	}

	err = fmt.Errorf("lookup failed after %d attempts: %w", attempts, err)
	if r.circuitBreaker.RecordFailure() {
		r.logger.Warn("circuit breaker opened",
			"consecutive_failures", r.circuitBreaker.Threshold(),
			"last_error", err.Error(),
		)
		return nil, attempts, fmt.Errorf("%w: %w", r.openError(), err)
	}
	return nil, attempts, err
}

// policy construye el backoff exponencial acotado por MaxRetries y ctx.
func (r *RetryableResolver) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.config.InitialBackoff
	b.MaxInterval = r.config.MaxBackoff
	b.Multiplier = r.config.Multiplier
	b.RandomizationFactor = r.config.Jitter
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.config.MaxRetries)), ctx)
}

func (r *RetryableResolver) openError() error {
	return fmt.Errorf("%w: %w after %d consecutive failed lookups",
		domain.ErrFatalEndpoint, ErrCircuitOpen, r.circuitBreaker.Threshold())
}

// GetCircuitBreaker retorna el circuit breaker (útil para testing/monitoring).
func (r *RetryableResolver) GetCircuitBreaker() *CircuitBreaker {
	return r.circuitBreaker
}
