package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loykin/demosync/internal/openapi"
	"github.com/loykin/demosync/internal/payload"
	"github.com/loykin/demosync/internal/postman"
	"github.com/loykin/demosync/internal/postmantest"
	"github.com/tidwall/gjson"
)

const (
	testKey       = "PMAK-test"
	testWorkspace = "ws-1"
)

func basePlan(dir string) Plan {
	return Plan{
		EnvironmentName: "Enterprise Demo Environment",
		CollectionName:  "Enterprise Demo Collection",
		BaseURL:         "https://api.example.com",
		APIKeyValue:     "demo-key",
		ManifestPath:    filepath.Join(dir, DefaultManifest),
	}
}

func TestPublish_CreatesAndWritesManifest(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()
	dir := t.TempDir()

	var out bytes.Buffer
	p := New(srv.Client(testWorkspace), openapi.NewLoader(), &out)
	m, err := p.Publish(context.Background(), basePlan(dir))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, DefaultManifest))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("manifest json: %v", err)
	}
	if got != *m || got.EnvironmentUID == "" || got.CollectionUID == "" {
		t.Fatalf("unexpected manifest %+v (returned %+v)", got, m)
	}
	if !strings.Contains(string(data), `"environment_uid"`) || !strings.Contains(string(data), `"collection_uid"`) {
		t.Fatalf("unexpected manifest keys: %s", data)
	}

	calls := srv.Calls()
	if len(calls) != 2 || calls[0].Path != "/environments" || calls[1].Path != "/collections" {
		t.Fatalf("unexpected calls %+v", calls)
	}
	if !strings.Contains(out.String(), "Creating environment") {
		t.Fatalf("expected progress output, got %q", out.String())
	}
}

func TestPublish_UpdatesWhenUIDsGiven(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()
	envUID := srv.Seed(postman.KindEnvironment, "Enterprise Demo Environment")
	collUID := srv.Seed(postman.KindCollection, "Enterprise Demo Collection")

	plan := basePlan(t.TempDir())
	plan.EnvironmentUID = envUID
	plan.CollectionUID = collUID

	m, err := New(srv.Client(testWorkspace), openapi.NewLoader(), nil).Publish(context.Background(), plan)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if m.EnvironmentUID != envUID || m.CollectionUID != collUID {
		t.Fatalf("unexpected manifest %+v", m)
	}
	for _, c := range srv.Calls() {
		if c.Method != http.MethodPut {
			t.Fatalf("expected only PUT calls, got %s %s", c.Method, c.Path)
		}
	}
	if gjson.GetBytes(srv.Payload(postman.KindCollection, collUID), "item.#").Int() != 2 {
		t.Fatalf("expected static template stored")
	}
}

func TestPublish_EndpointsMode(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()

	plan := basePlan(t.TempDir())
	plan.Mode = ModeEndpoints
	plan.Endpoints = []string{"/health", "/orders/recent"}

	m, err := New(srv.Client(testWorkspace), openapi.NewLoader(), nil).Publish(context.Background(), plan)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	stored := srv.Payload(postman.KindCollection, m.CollectionUID)
	if gjson.GetBytes(stored, "item.1.name").String() != "GET /orders/recent" {
		t.Fatalf("unexpected stored collection %s", stored)
	}
	if gjson.GetBytes(stored, "item.1.request.url.path.1").String() != "recent" {
		t.Fatalf("unexpected path split %s", stored)
	}
}

func TestPublish_OpenAPIMode(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()
	srv.SetImportResult(json.RawMessage(`{"info":{"name":"Enterprise Petstore","schema":"x"},"item":[{"name":"pets"}]}`))

	dir := t.TempDir()
	spec := filepath.Join(dir, "openapi.yaml")
	if err := os.WriteFile(spec, []byte("openapi: 3.0.0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	plan := basePlan(dir)
	plan.Mode = ModeOpenAPI
	plan.OpenAPISource = spec
	plan.Governance = true
	plan.ShowPayloads = true

	var out bytes.Buffer
	m, err := New(srv.Client(testWorkspace), openapi.NewLoader(), &out).Publish(context.Background(), plan)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	calls := srv.Calls()
	if calls[0].Path != "/import/openapi" {
		t.Fatalf("expected import before upserts, got %+v", calls[0])
	}
	stored := srv.Payload(postman.KindCollection, m.CollectionUID)
	if gjson.GetBytes(stored, "item.0.name").String() != "pets" {
		t.Fatalf("imported collection not forwarded verbatim: %s", stored)
	}
	if !strings.Contains(out.String(), `"name": "pets"`) {
		t.Fatalf("expected indented payload dump, got %q", out.String())
	}
}

func TestPublish_MissingOpenAPIFileAborts(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()
	dir := t.TempDir()

	plan := basePlan(dir)
	plan.Mode = ModeOpenAPI
	plan.OpenAPISource = filepath.Join(dir, "missing.yaml")

	if _, err := New(srv.Client(testWorkspace), openapi.NewLoader(), nil).Publish(context.Background(), plan); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if len(srv.Calls()) != 0 {
		t.Fatalf("expected no remote calls, got %+v", srv.Calls())
	}
	if _, err := os.Stat(plan.ManifestPath); !os.IsNotExist(err) {
		t.Fatalf("manifest must not be written on failure")
	}
}

func TestPublish_OpenAPIWithoutLoaderFails(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()

	plan := basePlan(t.TempDir())
	plan.Mode = ModeOpenAPI
	plan.OpenAPISource = "https://example.com/openapi.yaml"

	if _, err := New(srv.Client(testWorkspace), nil, nil).Publish(context.Background(), plan); !errors.Is(err, ErrNoSourceLoader) {
		t.Fatalf("expected ErrNoSourceLoader, got %v", err)
	}
	if len(srv.Calls()) != 0 {
		t.Fatalf("expected no remote calls, got %+v", srv.Calls())
	}
}

func TestPublish_GovernanceRejects(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()

	plan := basePlan(t.TempDir())
	plan.CollectionName = "Demo Collection"
	plan.Governance = true

	_, err := New(srv.Client(testWorkspace), openapi.NewLoader(), nil).Publish(context.Background(), plan)
	var ge *payload.GovernanceError
	if !errors.As(err, &ge) {
		t.Fatalf("expected governance error, got %v", err)
	}
	if len(srv.Calls()) != 0 {
		t.Fatalf("governance failure must happen before any upsert")
	}
}

func TestPublish_CollectionFailureSkipsManifest(t *testing.T) {
	srv := postmantest.New(testKey)
	defer srv.Close()
	srv.FailOn(http.MethodPost, "/collections", http.StatusInternalServerError)

	plan := basePlan(t.TempDir())
	_, err := New(srv.Client(testWorkspace), openapi.NewLoader(), nil).Publish(context.Background(), plan)
	if !postman.IsStatus(err, http.StatusInternalServerError) {
		t.Fatalf("expected 500 status error, got %v", err)
	}
	if _, err := os.Stat(plan.ManifestPath); !os.IsNotExist(err) {
		t.Fatalf("manifest must not be written on failure")
	}
	if names := srv.Names(postman.KindEnvironment); len(names) != 1 {
		t.Fatalf("environment created before failure should remain, got %v", names)
	}
}
