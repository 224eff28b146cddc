// Package payload builds the environment and collection documents sent to
// the vendor API.
package payload

import (
	"strings"

	"github.com/loykin/demosync/internal/postman"
)

const (
	baseURLVar = "{{base_url}}"
	apiKeyVar  = "{{api_key}}"
)

// BuildEnvironment returns an environment holding exactly the base_url and
// api_key variables, both enabled.
func BuildEnvironment(name, baseURL, apiKey string) postman.Environment {
	return postman.Environment{
		Name: name,
		Values: []postman.Variable{
			{Key: "base_url", Value: baseURL, Enabled: true},
			{Key: "api_key", Value: apiKey, Enabled: true},
		},
	}
}

// StaticCollection returns the two-request demo template.
func StaticCollection(name string) postman.Collection {
	return postman.Collection{
		Info: info(name),
		Item: []postman.Item{
			getItem("Health Check", "/health"),
			getItem("Get Users", "/users"),
		},
	}
}

// EndpointCollection turns each endpoint path into one GET item named
// "GET <path>". The output has one item per input path, in order.
func EndpointCollection(name string, endpoints []string) postman.Collection {
	items := make([]postman.Item, 0, len(endpoints))
	for _, p := range endpoints {
		items = append(items, getItem("GET "+p, p))
	}
	return postman.Collection{Info: info(name), Item: items}
}

// SplitPath splits an endpoint path on "/" after removing leading slashes.
func SplitPath(p string) []string {
	return strings.Split(strings.TrimLeft(p, "/"), "/")
}

func info(name string) postman.CollectionInfo {
	return postman.CollectionInfo{Name: name, Schema: postman.CollectionSchema}
}

func getItem(name, path string) postman.Item {
	return postman.Item{
		Name: name,
		Request: postman.Request{
			Method: "GET",
			Header: []postman.Header{{Key: "X-API-Key", Value: apiKeyVar}},
			URL: postman.URL{
				Raw:  baseURLVar + path,
				Host: []string{baseURLVar},
				Path: SplitPath(path),
			},
		},
	}
}
