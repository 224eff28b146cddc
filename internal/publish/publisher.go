// Package publish builds demo payloads and creates or updates them remotely.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/loykin/demosync/internal/common"
	"github.com/loykin/demosync/internal/payload"
	"github.com/loykin/demosync/internal/postman"
)

// Mode selects how the collection payload is produced.
type Mode int

const (
	// ModeStatic uses the two-request template.
	ModeStatic Mode = iota
	// ModeEndpoints turns Plan.Endpoints into GET items.
	ModeEndpoints
	// ModeOpenAPI imports Plan.OpenAPISource through the vendor API.
	ModeOpenAPI
)

func (m Mode) String() string {
	switch m {
	case ModeEndpoints:
		return "endpoints"
	case ModeOpenAPI:
		return "openapi"
	default:
		return "static"
	}
}

// ErrNoSourceLoader is returned for an OpenAPI plan on a Publisher built without a loader.
var ErrNoSourceLoader = errors.New("no openapi source loader configured")

// API is the subset of the vendor client a publish run needs.
type API interface {
	UpsertEnvironment(ctx context.Context, uid string, env postman.Environment) (string, error)
	UpsertCollection(ctx context.Context, uid string, coll any) (string, error)
	ImportOpenAPI(ctx context.Context, name, document string) (json.RawMessage, error)
}

// SourceLoader reads an OpenAPI document from a URL or path.
type SourceLoader interface {
	Load(ctx context.Context, source string) (string, error)
}

// Plan describes one publish run.
type Plan struct {
	EnvironmentName string
	CollectionName  string
	BaseURL         string
	APIKeyValue     string

	Mode          Mode
	Endpoints     []string
	OpenAPISource string

	// Non-empty UIDs turn the corresponding create into an update.
	EnvironmentUID string
	CollectionUID  string

	// Governance enables the collection naming check.
	Governance bool
	// ShowPayloads prints both payloads as indented JSON before sending.
	ShowPayloads bool
	// ManifestPath is written after both upserts succeed; empty skips it.
	ManifestPath string
}

// Publisher runs plans against an API.
type Publisher struct {
	api    API
	loader SourceLoader
	out    io.Writer
	logger *common.Logger
}

// New returns a Publisher printing progress to out.
func New(api API, loader SourceLoader, out io.Writer) *Publisher {
	if out == nil {
		out = io.Discard
	}
	return &Publisher{
		api:    api,
		loader: loader,
		out:    out,
		logger: common.GetLogger().WithComponent("publish"),
	}
}

// BuildCollection produces the collection payload for plan. The result is a
// postman.Collection, or raw JSON when the collection was imported.
func (p *Publisher) BuildCollection(ctx context.Context, plan Plan) (any, error) {
	switch plan.Mode {
	case ModeEndpoints:
		return payload.EndpointCollection(plan.CollectionName, plan.Endpoints), nil
	case ModeOpenAPI:
		if p.loader == nil {
			return nil, ErrNoSourceLoader
		}
		doc, err := p.loader.Load(ctx, plan.OpenAPISource)
		if err != nil {
			return nil, err
		}
		raw, err := p.api.ImportOpenAPI(ctx, plan.CollectionName, doc)
		if err != nil {
			return nil, fmt.Errorf("failed to import openapi document: %w", err)
		}
		return raw, nil
	default:
		return payload.StaticCollection(plan.CollectionName), nil
	}
}

// Publish builds both payloads, upserts them and writes the manifest.
// Any failure aborts the run before the manifest is written.
func (p *Publisher) Publish(ctx context.Context, plan Plan) (*Manifest, error) {
	logger := p.logger.With("mode", plan.Mode.String())

	p.printf("Building environment payload...\n")
	env := payload.BuildEnvironment(plan.EnvironmentName, plan.BaseURL, plan.APIKeyValue)
	if plan.ShowPayloads {
		p.dump(env)
	}

	p.printf("Building collection payload...\n")
	coll, err := p.BuildCollection(ctx, plan)
	if err != nil {
		return nil, err
	}
	if plan.ShowPayloads {
		p.dump(coll)
	}

	if plan.Governance {
		if err := payload.CheckGovernance(payload.CollectionName(coll)); err != nil {
			return nil, err
		}
	}

	p.printf("%s environment...\n", verb(plan.EnvironmentUID))
	envUID, err := p.api.UpsertEnvironment(ctx, plan.EnvironmentUID, env)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert environment %q: %w", plan.EnvironmentName, err)
	}
	logger.Info("environment published", "name", plan.EnvironmentName, "uid", envUID)

	p.printf("%s collection...\n", verb(plan.CollectionUID))
	collUID, err := p.api.UpsertCollection(ctx, plan.CollectionUID, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert collection %q: %w", plan.CollectionName, err)
	}
	logger.Info("collection published", "name", plan.CollectionName, "uid", collUID)

	m := &Manifest{EnvironmentUID: envUID, CollectionUID: collUID}
	if plan.ManifestPath != "" {
		if err := WriteManifest(plan.ManifestPath, *m); err != nil {
			return nil, err
		}
		logger.Debug("manifest written", "path", plan.ManifestPath)
	}
	return m, nil
}

func verb(uid string) string {
	if uid != "" {
		return "Updating"
	}
	return "Creating"
}

func (p *Publisher) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Publisher) dump(v any) {
	var data []byte
	var err error
	if raw, ok := v.(json.RawMessage); ok {
		data, err = indentRaw(raw)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		p.logger.Warn("failed to render payload", "error", err)
		return
	}
	p.printf("%s\n", data)
}

func indentRaw(raw json.RawMessage) ([]byte, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, "", "  ")
}
