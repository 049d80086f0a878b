// Package mowojang resolves names against the mowojang mirror of the
// Mojang profile API. Two resolvers are registered: "mowojang" issues one
// GET per name, "mowojang-bulk" POSTs up to ten names per request.
package mowojang

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/registry"
)

const (
	// DefaultEndpoint es la instancia pública de mowojang.
	DefaultEndpoint = "https://mowojang.matdoes.dev"

	// MaxBulk es el máximo de nombres que acepta una petición bulk.
	MaxBulk = 10
)

// Resolver consulta un nombre por petición.
type Resolver struct {
	client   *httpclient.Client
	endpoint string
	logger   logx.Logger
}

// New crea el resolver de una petición por nombre.
func New(client *httpclient.Client, endpoint string, logger logx.Logger) *Resolver {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Resolver{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger.With("resolver", "mowojang"),
	}
}

// Name retorna el nombre del resolver.
func (r *Resolver) Name() string { return "mowojang" }

// MaxBatch es 1: un GET por nombre.
func (r *Resolver) MaxBatch() int { return 1 }

// Resolve busca cada nombre con GET {endpoint}/{name}. En la práctica el
// pool entrega un solo nombre; varios se consultan en secuencia.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, name := range names {
		p, found, err := r.resolveOne(ctx, name)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Resolver) resolveOne(ctx context.Context, name string) (domain.Profile, bool, error) {
	resp, err := r.client.GetJSON(ctx, r.endpoint+"/"+url.PathEscape(name))
	if err != nil {
		return domain.Profile{}, false, err
	}

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotFound:
		httpclient.Drain(resp)
		return domain.Profile{}, false, nil
	}
	if err := httpclient.CheckStatus(resp); err != nil {
		httpclient.Drain(resp)
		return domain.Profile{}, false, errors.Wrapf(err, "lookup %s", name)
	}

	body, err := httpclient.ReadBody(resp)
	if err != nil {
		return domain.Profile{}, false, err
	}
	p, err := ParseProfile(body)
	if err != nil {
		return domain.Profile{}, false, errors.Wrapf(err, "lookup %s", name)
	}
	if !p.Matches(name) {
		r.logger.Debug("endpoint answered for another name", "requested", name, "returned", p.Name)
		return domain.Profile{}, false, errors.Wrapf(errors.ErrInvalidResponse, "asked for %s, got %s", name, p.Name)
	}
	return p, true, nil
}

// factory construye el resolver desde la configuración del registry.
func factory(cfg ports.ResolverConfig) (ports.Resolver, error) {
	client, err := registry.ClientFor(cfg)
	if err != nil {
		return nil, err
	}
	return New(client, cfg.Endpoint, cfg.Logger), nil
}
