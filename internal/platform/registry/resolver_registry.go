// internal/platform/registry/resolver_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/logx"
)

// ResolverRegistry gestiona el registro y construcción de resolvers.
// Cada paquete de resolver se registra desde init(); el main elige uno por nombre.
type ResolverRegistry struct {
	mu        sync.RWMutex
	factories map[string]ports.ResolverFactory
	metadata  map[string]ports.ResolverMetadata
	logger    logx.Logger
}

// globalRegistry es la instancia global del registry.
var globalRegistry *ResolverRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ResolverRegistry {
	once.Do(func() {
		globalRegistry = NewResolverRegistry(logx.New())
	})
	return globalRegistry
}

// NewResolverRegistry crea un nuevo registry de resolvers.
func NewResolverRegistry(logger logx.Logger) *ResolverRegistry {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &ResolverRegistry{
		factories: make(map[string]ports.ResolverFactory),
		metadata:  make(map[string]ports.ResolverMetadata),
		logger:    logger.With("component", "resolver-registry"),
	}
}

// Register registra una factory con su metadata.
func (r *ResolverRegistry) Register(name string, factory ports.ResolverFactory, meta ports.ResolverMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("resolver name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for resolver %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("resolver %s is already registered", name)
	}

	if meta.Name == "" {
		meta.Name = name
	}
	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("resolver registered", "name", name, "max_batch", meta.MaxBatch)

	return nil
}

// MustRegister es Register para init(): un registro inválido es un bug.
func (r *ResolverRegistry) MustRegister(name string, factory ports.ResolverFactory, meta ports.ResolverMetadata) {
	if err := r.Register(name, factory, meta); err != nil {
		panic(err)
	}
}

// Build construye el resolver name. Un Endpoint vacío toma el de la metadata.
func (r *ResolverRegistry) Build(name string, cfg ports.ResolverConfig) (ports.Resolver, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	meta := r.metadata[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: unknown resolver %q (available: %v)", domain.ErrInvalidConfig, name, r.List())
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = meta.DefaultEndpoint
	}
	if cfg.Logger == nil {
		cfg.Logger = r.logger
	}

	resolver, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build resolver %s: %w", name, err)
	}

	r.logger.Debug("resolver built",
		"name", name,
		"endpoint", cfg.Endpoint,
		"max_batch", resolver.MaxBatch(),
	)
	return resolver, nil
}

// List retorna los nombres de todos los resolvers registrados.
func (r *ResolverRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un resolver.
func (r *ResolverRegistry) GetMetadata(name string) (ports.ResolverMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un resolver está registrado.
func (r *ResolverRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los resolvers registrados (útil para testing).
func (r *ResolverRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ports.ResolverFactory)
	r.metadata = make(map[string]ports.ResolverMetadata)
}
