package openapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const petstore = "openapi: 3.0.0\ninfo:\n  title: Petstore\n  version: 1.0.0\npaths: {}\n"

func TestLoad_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "petstore.yaml")
	if err := os.WriteFile(path, []byte(petstore), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != petstore {
		t.Fatalf("expected raw document, got %q", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "not a regular file") {
		t.Fatalf("expected regular file error, got %v", err)
	}
}

func TestLoad_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openapi.yaml" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(petstore))
	}))
	defer srv.Close()

	got, err := NewLoader().Load(context.Background(), srv.URL+"/openapi.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != petstore {
		t.Fatalf("unexpected document %q", got)
	}

	if _, err := NewLoader().Load(context.Background(), srv.URL+"/missing.yaml"); err == nil {
		t.Fatalf("expected error for 404 source")
	}
}

func TestLoad_RemoteKeepsSurroundingWhitespace(t *testing.T) {
	doc := "\n  " + petstore + "\n\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	got, err := NewLoader().Load(context.Background(), srv.URL+"/openapi.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != doc {
		t.Fatalf("document altered in transit: %q", got)
	}
}

func TestIsRemote(t *testing.T) {
	if !IsRemote("https://petstore3.swagger.io/api/v3/openapi.json") || !IsRemote("http://localhost/spec") {
		t.Fatalf("expected remote")
	}
	if IsRemote("./specs/openapi.yaml") {
		t.Fatalf("expected local")
	}
}
