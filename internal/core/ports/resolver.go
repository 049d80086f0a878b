// internal/core/ports/resolver.go
package ports

import (
	"context"
	"time"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
)

// Resolver es el port primario hacia un endpoint remoto de búsqueda.
// Cualquier endpoint (mowojang, mojang, bulk) debe implementar esta interfaz.
type Resolver interface {
	// Name retorna el nombre único del resolver (ej: "mowojang", "mojang")
	Name() string

	// MaxBatch número máximo de nombres por petición (1 = sin batching)
	MaxBatch() int

	// Resolve busca names en una sola petición. Retorna los perfiles
	// encontrados; los nombres ausentes del resultado son NotFound.
	// Un error aplica a todos los nombres de la petición.
	Resolve(ctx context.Context, names []string) ([]domain.Profile, error)
}

// ResolverConfig contiene la configuración con la que se construye un resolver.
type ResolverConfig struct {
	// Endpoint base; vacío = el default del resolver
	Endpoint string

	// Batch tamaño de lote pedido (solo resolvers bulk, se recorta a su máximo)
	Batch int

	// Timeout por petición, usado si Client es nil
	Timeout time.Duration

	// Client compartido (rate limit, proxy, user-agent)
	Client *httpclient.Client

	Logger logx.Logger
}

// DefaultResolverConfig retorna una configuración por defecto.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		Batch:   1,
		Timeout: 15 * time.Second,
		Logger:  logx.NewNop(),
	}
}

// ResolverFactory es una función que crea una instancia de Resolver.
type ResolverFactory func(cfg ResolverConfig) (Resolver, error)

// ResolverMetadata contiene metadatos sobre un resolver.
type ResolverMetadata struct {
	Name            string
	Description     string
	DefaultEndpoint string
	MaxBatch        int
	RequiresAuth    bool
}
