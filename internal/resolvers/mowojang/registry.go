package mowojang

import (
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/registry"
)

// Auto-registro de los resolvers al importar el package
func init() {
	registry.Global().MustRegister("mowojang", registry.Validated(factory), ports.ResolverMetadata{
		Description:     "One GET per name against the mowojang profile mirror",
		DefaultEndpoint: DefaultEndpoint,
		MaxBatch:        1,
	})

	registry.Global().MustRegister("mowojang-bulk", registry.Validated(bulkFactory), ports.ResolverMetadata{
		Description:     "Batched POST of up to 10 names against mowojang",
		DefaultEndpoint: DefaultEndpoint,
		MaxBatch:        MaxBulk,
	})
}
