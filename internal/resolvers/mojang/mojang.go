// Package mojang resolves names against the official Mojang profile API.
package mojang

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/registry"
)

// DefaultEndpoint es la API pública de Mojang.
const DefaultEndpoint = "https://api.mojang.com"

const profilePath = "/users/profiles/minecraft/"

// Auto-registro del resolver al importar el package
func init() {
	registry.Global().MustRegister("mojang", registry.Validated(factory), ports.ResolverMetadata{
		Description:     "Official Mojang API, one GET per name (strict rate limits)",
		DefaultEndpoint: DefaultEndpoint,
		MaxBatch:        1,
	})
}

// Resolver consulta GET {endpoint}/users/profiles/minecraft/{name}.
type Resolver struct {
	client   *httpclient.Client
	endpoint string
	logger   logx.Logger
}

// New crea el resolver.
func New(client *httpclient.Client, endpoint string, logger logx.Logger) *Resolver {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Resolver{
		client:   client,
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger.With("resolver", "mojang"),
	}
}

func factory(cfg ports.ResolverConfig) (ports.Resolver, error) {
	client, err := registry.ClientFor(cfg)
	if err != nil {
		return nil, err
	}
	return New(client, cfg.Endpoint, cfg.Logger), nil
}

// Name retorna el nombre del resolver.
func (r *Resolver) Name() string { return "mojang" }

// MaxBatch es 1.
func (r *Resolver) MaxBatch() int { return 1 }

// Resolve consulta cada nombre en secuencia.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, name := range names {
		p, found, err := r.lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Resolver) lookup(ctx context.Context, name string) (domain.Profile, bool, error) {
	resp, err := r.client.GetJSON(ctx, r.endpoint+profilePath+url.PathEscape(name))
	if err != nil {
		return domain.Profile{}, false, err
	}

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotFound:
		httpclient.Drain(resp)
		return domain.Profile{}, false, nil
	case http.StatusBadRequest:
		// Mojang contesta 400 a nombres que no cumplen sus reglas
		body, _ := httpclient.ReadBody(resp)
		r.logger.Debug("name rejected by endpoint", "name", name,
			"message", gjson.GetBytes(body, "errorMessage").String())
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
	if !gjson.ValidBytes(body) {
		return domain.Profile{}, false, errors.Wrapf(errors.ErrInvalidResponse, "lookup %s: body is not valid JSON", name)
	}

	res := gjson.GetManyBytes(body, "id", "name")
	if res[0].String() == "" || res[1].String() == "" {
		return domain.Profile{}, false, errors.Wrapf(errors.ErrInvalidResponse, "lookup %s: missing id or name", name)
	}
	p, err := domain.NewProfile(res[1].String(), res[0].String())
	if err != nil {
		return domain.Profile{}, false, errors.Wrapf(errors.ErrInvalidResponse, "lookup %s: %v", name, err)
	}
	if !p.Matches(name) {
		return domain.Profile{}, false, errors.Wrapf(errors.ErrInvalidResponse, "asked for %s, got %s", name, p.Name)
	}
	return p, true, nil
}
