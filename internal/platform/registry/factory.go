// internal/platform/registry/factory.go
package registry

import (
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/httpclient"
)

// MaxBatch es el mayor lote que acepta cualquier resolver. Los resolvers
// sin bulk ignoran Batch.
const MaxBatch = 10

// Validated rechaza endpoints y lotes inválidos antes de construir.
func Validated(next ports.ResolverFactory) ports.ResolverFactory {
	return func(cfg ports.ResolverConfig) (ports.Resolver, error) {
		if err := ValidateEndpoint("endpoint", cfg.Endpoint); err != nil {
			return nil, err
		}
		if cfg.Batch != 0 {
			if err := ValidateIntRange("batch", cfg.Batch, 1, MaxBatch); err != nil {
				return nil, err
			}
		}
		return next(cfg)
	}
}

// ClientFor usa el cliente compartido o crea uno con el timeout pedido.
func ClientFor(cfg ports.ResolverConfig) (*httpclient.Client, error) {
	if cfg.Client != nil {
		return cfg.Client, nil
	}
	hc := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}
	return httpclient.New(hc, cfg.Logger)
}
