package postman

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type importRequest struct {
	Type  string `json:"type"`
	Input string `json:"input"`
	Name  string `json:"name"`
}

// ImportOpenAPI forwards an OpenAPI document as raw text to the vendor's
// conversion endpoint and returns the first converted collection verbatim.
func (c *Client) ImportOpenAPI(ctx context.Context, name, document string) (json.RawMessage, error) {
	c.logger.Debug("importing openapi document", "name", name, "size", len(document))
	resp, err := c.request(ctx).
		SetQueryParam("workspace", c.workspace).
		SetBody(importRequest{Type: "string", Input: document, Name: name}).
		Post("/import/openapi")
	if err != nil {
		return nil, fmt.Errorf("import openapi: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	coll := gjson.GetBytes(resp.Body(), "collections.0.collection")
	if !coll.Exists() {
		return nil, ErrNoImportedCollection
	}
	return json.RawMessage(coll.Raw), nil
}
