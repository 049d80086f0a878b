package mowojang

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/registry"
)

// BulkResolver envía varios nombres en un POST y recibe el array de los registrados.
type BulkResolver struct {
	client   *httpclient.Client
	endpoint string
	batch    int
	logger   logx.Logger
}

// NewBulk crea el resolver bulk. batch se recorta a [1, MaxBulk].
func NewBulk(client *httpclient.Client, endpoint string, batch int, logger logx.Logger) *BulkResolver {
	if logger == nil {
		logger = logx.NewNop()
	}
	if batch <= 0 || batch > MaxBulk {
		batch = MaxBulk
	}
	return &BulkResolver{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		batch:    batch,
		logger:   logger.With("resolver", "mowojang-bulk"),
	}
}

// Name retorna el nombre del resolver.
func (b *BulkResolver) Name() string { return "mowojang-bulk" }

// MaxBatch retorna el tamaño de lote.
func (b *BulkResolver) MaxBatch() int { return b.batch }

// Resolve hace POST {endpoint} con ["name", ...]. Los nombres ausentes de
// la respuesta no están registrados; las entradas que no corresponden a
// ningún nombre pedido se descartan.
func (b *BulkResolver) Resolve(ctx context.Context, names []string) ([]domain.Profile, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if len(names) > b.batch {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "batch of %d exceeds limit %d", len(names), b.batch)
	}

	payload, err := json.Marshal(names)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	resp, err := b.client.PostJSON(ctx, b.endpoint, payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent {
		httpclient.Drain(resp)
		return nil, nil
	}
	if err := httpclient.CheckStatus(resp); err != nil {
		httpclient.Drain(resp)
		return nil, errors.Wrapf(err, "bulk lookup of %d names", len(names))
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	profiles, err := ParseProfiles(body)
	if err != nil {
		return nil, fmt.Errorf("bulk lookup of %d names: %w", len(names), err)
	}

	return b.match(names, profiles), nil
}

// match conserva un perfil por nombre pedido, comparando sin mayúsculas.
func (b *BulkResolver) match(names []string, profiles []domain.Profile) []domain.Profile {
	byName := make(map[string]domain.Profile, len(profiles))
	for _, p := range profiles {
		byName[strings.ToLower(p.Name)] = p
	}

	out := make([]domain.Profile, 0, len(byName))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if p, ok := byName[key]; ok {
			out = append(out, p)
		}
	}
	if extra := len(byName) - len(out); extra > 0 {
		b.logger.Debug("dropping profiles for names that were not requested", "count", extra)
	}
	return out
}

func bulkFactory(cfg ports.ResolverConfig) (ports.Resolver, error) {
	client, err := registry.ClientFor(cfg)
	if err != nil {
		return nil, err
	}
	return NewBulk(client, cfg.Endpoint, cfg.Batch, cfg.Logger), nil
}
