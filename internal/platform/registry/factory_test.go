// internal/platform/registry/factory_test.go
package registry

import (
	"context"
	"testing"
	"time"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/testutil"
)

type factoryStubResolver struct{}

func (factoryStubResolver) Name() string  { return "stub" }
func (factoryStubResolver) MaxBatch() int { return 1 }
func (factoryStubResolver) Resolve(context.Context, []string) ([]domain.Profile, error) {
	return nil, nil
}

func TestValidated(t *testing.T) {
	var calls int
	build := Validated(func(ports.ResolverConfig) (ports.Resolver, error) {
		calls++
		return factoryStubResolver{}, nil
	})

	tests := []struct {
		name      string
		cfg       ports.ResolverConfig
		expectErr bool
	}{
		{"valid", ports.ResolverConfig{Endpoint: "https://api.example.test", Batch: MaxBatch}, false},
		{"batch unset", ports.ResolverConfig{Endpoint: "https://api.example.test"}, false},
		{"bad endpoint", ports.ResolverConfig{Endpoint: "not a url", Batch: 1}, true},
		{"batch too large", ports.ResolverConfig{Endpoint: "https://api.example.test", Batch: MaxBatch + 1}, true},
		{"negative batch", ports.ResolverConfig{Endpoint: "https://api.example.test", Batch: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls
			_, err := build(tt.cfg)
			if tt.expectErr {
				testutil.AssertErrorIs(t, err, domain.ErrInvalidConfig, "rejected")
				testutil.AssertEqual(t, calls, before, "factory not reached")
				return
			}
			testutil.AssertNoError(t, err, "accepted")
			testutil.AssertEqual(t, calls, before+1, "factory reached")
		})
	}
}

func TestClientFor(t *testing.T) {
	shared, err := httpclient.New(httpclient.DefaultConfig(), logx.NewNop())
	testutil.AssertNoError(t, err, "shared client")

	got, err := ClientFor(ports.ResolverConfig{Client: shared})
	testutil.AssertNoError(t, err, "shared")
	testutil.AssertTrue(t, got == shared, "shared client reused")

	got, err = ClientFor(ports.ResolverConfig{Timeout: 2 * time.Second, Logger: logx.NewNop()})
	testutil.AssertNoError(t, err, "fallback")
	testutil.AssertNotNil(t, got, "fallback client built")
	testutil.AssertTrue(t, got != shared, "fresh client")
}
