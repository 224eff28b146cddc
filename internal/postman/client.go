package postman

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/loykin/demosync/internal/common"
	"github.com/loykin/demosync/internal/httpc"
	"github.com/tidwall/gjson"
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	WorkspaceID string
	TLSConfig   *tls.Config
	Timeout     time.Duration
}

// Client talks to the vendor REST API on behalf of one workspace.
// Calls are sequential and blocking; no retries are attempted.
type Client struct {
	http      *resty.Client
	workspace string
	logger    *common.Logger
}

// New builds a Client from opts. An empty BaseURL selects DefaultBaseURL.
func New(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	h := &httpc.Httpc{BaseURL: base, APIKey: opts.APIKey, TlsConfig: opts.TLSConfig, Timeout: opts.Timeout}
	return NewWithResty(h.New(), opts.WorkspaceID)
}

// NewWithResty wraps an already configured resty client.
func NewWithResty(rc *resty.Client, workspaceID string) *Client {
	return &Client{
		http:      rc,
		workspace: workspaceID,
		logger:    common.GetLogger().WithComponent("postman").WithWorkspace(workspaceID),
	}
}

// Workspace returns the workspace the client is scoped to.
func (c *Client) Workspace() string {
	return c.workspace
}

func (c *Client) request(ctx context.Context) *resty.Request {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.http.R().SetContext(ctx)
}

// Create issues POST /<kinds>?workspace=<id> with the payload wrapped under
// the kind's envelope key and returns the new UID.
func (c *Client) Create(ctx context.Context, kind Kind, payload any) (string, error) {
	path := "/" + kind.Plural()
	c.logger.Debug("creating resource", "kind", kind, "path", path)
	resp, err := c.request(ctx).
		SetQueryParam("workspace", c.workspace).
		SetBody(map[string]any{string(kind): payload}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", kind, err)
	}
	return c.uidFrom(kind, resp)
}

// Update issues PUT /<kinds>/<uid> and returns the UID echoed by the API.
func (c *Client) Update(ctx context.Context, kind Kind, uid string, payload any) (string, error) {
	path := "/" + kind.Plural() + "/{uid}"
	c.logger.Debug("updating resource", "kind", kind, "uid", uid)
	resp, err := c.request(ctx).
		SetPathParam("uid", uid).
		SetBody(map[string]any{string(kind): payload}).
		Put(path)
	if err != nil {
		return "", fmt.Errorf("update %s %s: %w", kind, uid, err)
	}
	return c.uidFrom(kind, resp)
}

// Upsert updates the resource identified by uid, or creates one when uid is empty.
func (c *Client) Upsert(ctx context.Context, kind Kind, uid string, payload any) (string, error) {
	if uid != "" {
		return c.Update(ctx, kind, uid, payload)
	}
	return c.Create(ctx, kind, payload)
}

// UpsertEnvironment creates or updates an environment.
func (c *Client) UpsertEnvironment(ctx context.Context, uid string, env Environment) (string, error) {
	return c.Upsert(ctx, KindEnvironment, uid, env)
}

// UpsertCollection creates or updates a collection. payload is either a
// Collection or the raw JSON of an imported collection.
func (c *Client) UpsertCollection(ctx context.Context, uid string, payload any) (string, error) {
	return c.Upsert(ctx, KindCollection, uid, payload)
}

func (c *Client) uidFrom(kind Kind, resp *resty.Response) (string, error) {
	if err := checkResponse(resp); err != nil {
		return "", err
	}
	uid := gjson.GetBytes(resp.Body(), string(kind)+".uid")
	if !uid.Exists() || uid.String() == "" {
		return "", fmt.Errorf("%s response has no uid", kind)
	}
	return uid.String(), nil
}

// List returns every resource of kind in the workspace.
func (c *Client) List(ctx context.Context, kind Kind) ([]Summary, error) {
	resp, err := c.request(ctx).
		SetQueryParam("workspace", c.workspace).
		Get("/" + kind.Plural())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Plural(), err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	var out []Summary
	gjson.GetBytes(resp.Body(), kind.Plural()).ForEach(func(_, v gjson.Result) bool {
		out = append(out, Summary{
			ID:   v.Get("id").String(),
			UID:  v.Get("uid").String(),
			Name: v.Get("name").String(),
		})
		return true
	})
	c.logger.Debug("listed resources", "kind", kind, "count", len(out))
	return out, nil
}

// FindByName returns the first resource whose name equals name exactly, or
// nil when none matches.
func (c *Client) FindByName(ctx context.Context, kind Kind, name string) (*Summary, error) {
	items, err := c.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Name == name {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Delete issues DELETE /<kinds>/<uid>.
func (c *Client) Delete(ctx context.Context, kind Kind, uid string) error {
	resp, err := c.request(ctx).
		SetPathParam("uid", uid).
		Delete("/" + kind.Plural() + "/{uid}")
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, uid, err)
	}
	return checkResponse(resp)
}
