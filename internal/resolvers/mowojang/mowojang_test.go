package mowojang

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/core/ports"
	"uuidhunt/internal/platform/errors"
	"uuidhunt/internal/platform/httpclient"
	"uuidhunt/internal/platform/logx"
	"uuidhunt/internal/platform/registry"
	"uuidhunt/internal/testutil"
)

func newClient(t *testing.T) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(httpclient.DefaultConfig(), logx.NewNop())
	testutil.AssertNoError(t, err, "client")
	return c
}

// profileHandler answers GET /{name} from the fixture profiles.
func profileHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	for registered, id := range testutil.FixtureProfiles {
		if strings.EqualFold(registered, name) {
			fmt.Fprintf(w, `{"id":%q,"name":%q}`, strings.ReplaceAll(id, "-", ""), registered)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func TestResolver_Found(t *testing.T) {
	endpoint := testutil.NewFakeEndpoint(t, profileHandler)
	r := New(newClient(t), endpoint.URL+"/", nil)

	profiles, err := r.Resolve(context.Background(), []string{"notch"})
	testutil.AssertNoError(t, err, "lookup should succeed")
	testutil.AssertLen(t, profiles, 1, "one profile")
	testutil.AssertEqual(t, profiles[0].Name, "Notch", "canonical name")
	testutil.AssertEqual(t, profiles[0].ID, testutil.FixtureProfiles["Notch"], "canonical id")
	testutil.AssertEqual(t, endpoint.LastRequest().Path, "/notch", "GET path")
	testutil.AssertEqual(t, endpoint.LastRequest().Method, http.MethodGet, "method")
}

func TestResolver_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404", testutil.StatusHandler(http.StatusNotFound, `{"error":"not found"}`)},
		{"204", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := testutil.NewFakeEndpoint(t, tt.handler)
			r := New(newClient(t), endpoint.URL, logx.NewNop())

			profiles, err := r.Resolve(context.Background(), []string{"zz_nobody_zz"})
			testutil.AssertNoError(t, err, "not found is not an error")
			testutil.AssertLen(t, profiles, 0, "no profiles")
		})
	}
}

func TestResolver_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, "", errors.ErrRateLimit},
		{"server error", http.StatusBadGateway, "", errors.ErrServiceUnavailable},
		{"forbidden", http.StatusForbidden, "", errors.ErrUnauthorized},
		{"gone", http.StatusGone, "", errors.ErrEndpointGone},
		{"malformed json", http.StatusOK, `{"id":`, errors.ErrInvalidResponse},
		{"missing id", http.StatusOK, `{"name":"Notch"}`, errors.ErrInvalidResponse},
		{"bad uuid", http.StatusOK, `{"id":"xyz","name":"Notch"}`, errors.ErrInvalidResponse},
		{"other name", http.StatusOK, `{"id":"069a79f444e94726a5befca90e38aaf5","name":"jeb_"}`, errors.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := testutil.NewFakeEndpoint(t, testutil.StatusHandler(tt.status, tt.body))
			r := New(newClient(t), endpoint.URL, logx.NewNop())

			_, err := r.Resolve(context.Background(), []string{"Notch"})
			testutil.AssertErrorIs(t, err, tt.wantErr, "error classification")
		})
	}
}

func TestResolver_EscapesName(t *testing.T) {
	endpoint := testutil.NewFakeEndpoint(t, profileHandler)
	r := New(newClient(t), endpoint.URL, logx.NewNop())

	_, err := r.Resolve(context.Background(), []string{"a/b"})
	testutil.AssertNoError(t, err, "request should complete")
	testutil.AssertEqual(t, endpoint.Calls(), 1, "single request")
}

func TestBulkResolver_Resolve(t *testing.T) {
	endpoint := testutil.NewFakeEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		var names []string
		testutil.AssertNoError(t, json.NewDecoder(r.Body).Decode(&names), "body is a JSON array")
		var parts []string
		for _, n := range names {
			for registered, id := range testutil.FixtureProfiles {
				if strings.EqualFold(registered, n) {
					parts = append(parts, fmt.Sprintf(`{"id":%q,"name":%q}`, id, registered))
				}
			}
		}
		parts = append(parts, `{"id":"61699b2ed3274a019f1e0ea8c3f06bc6","name":"NotAsked"}`)
		fmt.Fprintf(w, "[%s]", strings.Join(parts, ","))
	})
	r := NewBulk(newClient(t), endpoint.URL, 10, logx.NewNop())

	profiles, err := r.Resolve(context.Background(), []string{"notch", "zz_nobody_zz", "JEB_"})
	testutil.AssertNoError(t, err, "bulk lookup")
	testutil.AssertLen(t, profiles, 2, "only requested, registered names")
	testutil.AssertEqual(t, profiles[0].Name, "Notch", "request order kept")
	testutil.AssertEqual(t, profiles[1].Name, "jeb_", "case-insensitive match")

	req := endpoint.LastRequest()
	testutil.AssertEqual(t, req.Method, http.MethodPost, "method")
	testutil.AssertEqual(t, req.Header.Get("Content-Type"), "application/json", "content type")
	testutil.AssertEqual(t, string(req.Body), `["notch","zz_nobody_zz","JEB_"]`, "payload")
}

func TestBulkResolver_Limits(t *testing.T) {
	endpoint := testutil.NewFakeEndpoint(t, testutil.StatusHandler(http.StatusOK, `[]`))

	testutil.AssertEqual(t, NewBulk(newClient(t), endpoint.URL, 0, nil).MaxBatch(), MaxBulk, "zero batch defaults to max")
	testutil.AssertEqual(t, NewBulk(newClient(t), endpoint.URL, 50, nil).MaxBatch(), MaxBulk, "oversized batch clamped")

	r := NewBulk(newClient(t), endpoint.URL, 3, nil)
	_, err := r.Resolve(context.Background(), []string{"a1a", "b2b", "c3c", "d4d"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidInput, "oversized request refused")
	testutil.AssertEqual(t, endpoint.Calls(), 0, "nothing sent")

	profiles, err := r.Resolve(context.Background(), nil)
	testutil.AssertNoError(t, err, "empty batch")
	testutil.AssertLen(t, profiles, 0, "no profiles")
}

func TestBulkResolver_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not an array", http.StatusOK, `{"id":"x"}`, errors.ErrInvalidResponse},
		{"bad element", http.StatusOK, `[{"id":"nope","name":"Notch"}]`, errors.ErrInvalidResponse},
		{"unauthorized", http.StatusUnauthorized, "", errors.ErrUnauthorized},
		{"unavailable", http.StatusServiceUnavailable, "", errors.ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := testutil.NewFakeEndpoint(t, testutil.StatusHandler(tt.status, tt.body))
			r := NewBulk(newClient(t), endpoint.URL, 10, nil)

			_, err := r.Resolve(context.Background(), []string{"Notch"})
			testutil.AssertErrorIs(t, err, tt.wantErr, "error classification")
		})
	}
}

func TestParseProfiles(t *testing.T) {
	profiles, err := ParseProfiles([]byte(`[{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}]`))
	testutil.AssertNoError(t, err, "valid array")
	testutil.AssertEqual(t, profiles, []domain.Profile{{Name: "Notch", ID: testutil.FixtureProfiles["Notch"]}}, "parsed")

	empty, err := ParseProfiles(nil)
	testutil.AssertNoError(t, err, "empty body")
	testutil.AssertLen(t, empty, 0, "no profiles")

	null, err := ParseProfiles([]byte("null"))
	testutil.AssertNoError(t, err, "null body")
	testutil.AssertLen(t, null, 0, "no profiles")
}

func TestRegistration(t *testing.T) {
	for _, name := range []string{"mowojang", "mowojang-bulk"} {
		t.Run(name, func(t *testing.T) {
			testutil.AssertTrue(t, registry.Global().IsRegistered(name), "registered at init")

			r, err := registry.Global().Build(name, ports.ResolverConfig{Logger: logx.NewNop()})
			testutil.AssertNoError(t, err, "build with defaults")
			testutil.AssertEqual(t, r.Name(), name, "resolver name")
		})
	}

	_, err := registry.Global().Build("mowojang-bulk", ports.ResolverConfig{Batch: 11})
	testutil.AssertErrorIs(t, err, domain.ErrInvalidConfig, "batch above 10 rejected")

	_, err = registry.Global().Build("mowojang", ports.ResolverConfig{Endpoint: "not a url"})
	testutil.AssertErrorIs(t, err, domain.ErrInvalidConfig, "bad endpoint rejected")
}
