// Package wizard gathers live-demo inputs and turns them into a publish plan.
package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/loykin/demosync/internal/publish"
	"github.com/loykin/demosync/internal/util"
)

const (
	DefaultCustomer      = "Customer Demo"
	DefaultBatchCustomer = "Customer"
	DefaultBaseURL       = "https://api.example.com"
	DefaultAPIKeyValue   = "demo-key"
	DefaultEndpoint      = "/health"
)

// Answers are the inputs of one wizard run.
type Answers struct {
	Customer      string
	BaseURL       string
	APIKeyValue   string
	UseOpenAPI    bool
	OpenAPISource string
	Endpoints     []string
}

// EnvironmentName is "<customer> – Demo Environment".
func (a Answers) EnvironmentName() string {
	return a.Customer + " – Demo Environment"
}

// CollectionName is "Enterprise – <customer> Demo Collection".
func (a Answers) CollectionName() string {
	return "Enterprise – " + a.Customer + " Demo Collection"
}

// Plan converts the answers into a create-only publish plan.
func (a Answers) Plan(manifestPath string) publish.Plan {
	plan := publish.Plan{
		EnvironmentName: a.EnvironmentName(),
		CollectionName:  a.CollectionName(),
		BaseURL:         a.BaseURL,
		APIKeyValue:     a.APIKeyValue,
		Mode:            publish.ModeEndpoints,
		Endpoints:       a.Endpoints,
		ManifestPath:    manifestPath,
	}
	if a.UseOpenAPI && a.OpenAPISource != "" {
		plan.Mode = publish.ModeOpenAPI
		plan.OpenAPISource = a.OpenAPISource
	}
	return plan
}

// Gather asks the wizard questions in order. Empty answers take defaults.
// Endpoint paths are read until a blank answer and are only asked for when
// no OpenAPI document is used.
func Gather(p Prompter, out io.Writer) (Answers, error) {
	if out == nil {
		out = io.Discard
	}
	var a Answers
	ask := func(title string) (string, error) {
		v, err := p.Ask(title)
		if err != nil {
			return "", fmt.Errorf("prompt %q: %w", title, err)
		}
		return strings.TrimSpace(v), nil
	}

	v, err := ask("Customer / project name (e.g., Acme Freight):")
	if err != nil {
		return a, err
	}
	a.Customer = util.TrimWithDefault(v, DefaultCustomer)

	if v, err = ask("Base API URL (e.g., https://api.acme.com):"); err != nil {
		return a, err
	}
	a.BaseURL = util.TrimWithDefault(v, DefaultBaseURL)

	if v, err = ask("Sample API key or token placeholder (optional, press Enter for 'demo-key'):"); err != nil {
		return a, err
	}
	a.APIKeyValue = util.TrimWithDefault(v, DefaultAPIKeyValue)

	if v, err = ask("Do you have an OpenAPI spec? (y/N):"); err != nil {
		return a, err
	}
	a.UseOpenAPI = strings.ToLower(v) == "y"

	if a.UseOpenAPI {
		if a.OpenAPISource, err = ask("OpenAPI URL or local path:"); err != nil {
			return a, err
		}
		return a, nil
	}

	_, _ = fmt.Fprintln(out, "Enter 1–3 key endpoint paths (e.g., /health, /users). Leave blank to finish.")
	for {
		if v, err = ask("Endpoint path:"); err != nil {
			return a, err
		}
		if v == "" {
			break
		}
		a.Endpoints = append(a.Endpoints, util.EnsureLeadingSlash(v))
	}
	if len(a.Endpoints) == 0 {
		a.Endpoints = []string{DefaultEndpoint}
	}
	return a, nil
}

// Batch builds answers from non-interactive inputs. Endpoints are used as
// given, without trimming or slash normalization.
func Batch(customer, baseURL, apiKeyValue string, endpoints []string) Answers {
	return Answers{
		Customer:    customer,
		BaseURL:     baseURL,
		APIKeyValue: apiKeyValue,
		Endpoints:   endpoints,
	}
}
