// Package postmantest provides an in-memory fake of the vendor API for tests.
package postmantest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/loykin/demosync/internal/postman"
	"github.com/tidwall/gjson"
)

// Call is one request observed by the fake.
type Call struct {
	Method    string
	Path      string
	Workspace string
	Header    http.Header
	Body      []byte
}

type resource struct {
	postman.Summary
	Payload json.RawMessage
}

// Server is a fake vendor API backed by gin. Workspace scoping is recorded
// but not enforced: every resource is visible to every workspace.
type Server struct {
	*httptest.Server

	APIKey string

	mu       sync.Mutex
	seq      int
	calls    []Call
	store    map[postman.Kind][]*resource
	failures map[string]int
	imported json.RawMessage
	noImport bool
}

// New starts a fake that accepts apiKey in the X-Api-Key header.
func New(apiKey string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		APIKey:   apiKey,
		store:    map[postman.Kind][]*resource{},
		failures: map[string]int{},
	}
	r := gin.New()
	r.Use(s.record, s.authenticate, s.inject)
	for _, kind := range []postman.Kind{postman.KindEnvironment, postman.KindCollection} {
		g := r.Group("/" + kind.Plural())
		g.GET("", func(c *gin.Context) { s.list(c, kind) })
		g.POST("", func(c *gin.Context) { s.create(c, kind) })
		g.PUT("/:uid", func(c *gin.Context) { s.update(c, kind) })
		g.DELETE("/:uid", func(c *gin.Context) { s.remove(c, kind) })
	}
	r.POST("/import/openapi", s.importOpenAPI)
	s.Server = httptest.NewServer(r)
	return s
}

// Client returns a postman.Client pointed at the fake.
func (s *Server) Client(workspaceID string) *postman.Client {
	return postman.New(postman.Options{BaseURL: s.URL, APIKey: s.APIKey, WorkspaceID: workspaceID})
}

// Seed adds an existing resource and returns its uid.
func (s *Server) Seed(kind postman.Kind, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(kind, name, nil).UID
}

// FailOn makes method+path (e.g. "DELETE", "/collections/c-2") answer status.
func (s *Server) FailOn(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// SetImportResult overrides the collection returned by /import/openapi.
// A nil raw value makes the import answer with an empty collections list.
func (s *Server) SetImportResult(raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imported = raw
	s.noImport = raw == nil
}

// Calls returns a copy of every request observed so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Names returns the names of the stored resources of kind, in insertion order.
func (s *Server) Names(kind postman.Kind) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, r := range s.store[kind] {
		out = append(out, r.Name)
	}
	return out
}

// Payload returns the last payload stored for uid.
func (s *Server) Payload(kind postman.Kind, uid string) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := s.find(kind, uid); r != nil {
		return r.Payload
	}
	return nil
}

func (s *Server) add(kind postman.Kind, name string, payload json.RawMessage) *resource {
	s.seq++
	prefix := "env"
	if kind == postman.KindCollection {
		prefix = "col"
	}
	id := fmt.Sprintf("%s-%d", prefix, s.seq)
	r := &resource{Summary: postman.Summary{ID: id, UID: "owner-" + id, Name: name}, Payload: payload}
	s.store[kind] = append(s.store[kind], r)
	return r
}

func (s *Server) find(kind postman.Kind, uid string) *resource {
	for _, r := range s.store[kind] {
		if r.UID == uid {
			return r
		}
	}
	return nil
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Set("body", body)
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Workspace: c.Query("workspace"),
		Header:    c.Request.Header.Clone(),
		Body:      body,
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) authenticate(c *gin.Context) {
	if c.GetHeader("X-Api-Key") != s.APIKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"name": "AuthenticationError"}})
		return
	}
	c.Next()
}

func (s *Server) inject(c *gin.Context) {
	s.mu.Lock()
	status, ok := s.failures[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()
	if ok {
		c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"name": "injectedFailure"}})
		return
	}
	c.Next()
}

func requestBody(c *gin.Context) []byte {
	v, _ := c.Get("body")
	b, _ := v.([]byte)
	return b
}

func (s *Server) list(c *gin.Context, kind postman.Kind) {
	s.mu.Lock()
	out := make([]postman.Summary, 0, len(s.store[kind]))
	for _, r := range s.store[kind] {
		out = append(out, r.Summary)
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{kind.Plural(): out})
}

func (s *Server) create(c *gin.Context, kind postman.Kind) {
	payload := gjson.GetBytes(requestBody(c), string(kind))
	if !payload.IsObject() {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"name": "malformedRequestError"}})
		return
	}
	name := payload.Get("name").String()
	if kind == postman.KindCollection {
		name = payload.Get("info.name").String()
	}
	s.mu.Lock()
	r := s.add(kind, name, json.RawMessage(payload.Raw))
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{string(kind): r.Summary})
}

func (s *Server) update(c *gin.Context, kind postman.Kind) {
	payload := gjson.GetBytes(requestBody(c), string(kind))
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(kind, c.Param("uid"))
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"name": "instanceNotFoundError"}})
		return
	}
	r.Payload = json.RawMessage(payload.Raw)
	c.JSON(http.StatusOK, gin.H{string(kind): r.Summary})
}

func (s *Server) remove(c *gin.Context, kind postman.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid := c.Param("uid")
	items := s.store[kind]
	for i, r := range items {
		if r.UID == uid {
			s.store[kind] = append(items[:i], items[i+1:]...)
			c.JSON(http.StatusOK, gin.H{string(kind): gin.H{"id": r.ID, "uid": r.UID}})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"name": "instanceNotFoundError"}})
}

func (s *Server) importOpenAPI(c *gin.Context) {
	body := requestBody(c)
	if gjson.GetBytes(body, "type").String() != "string" || !gjson.GetBytes(body, "input").Exists() {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"name": "paramMissingError"}})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noImport {
		c.JSON(http.StatusOK, gin.H{"collections": []any{}})
		return
	}
	coll := s.imported
	if coll == nil {
		name := gjson.GetBytes(body, "name").String()
		coll, _ = json.Marshal(postman.Collection{
			Info: postman.CollectionInfo{Name: name, Schema: postman.CollectionSchema},
			Item: []postman.Item{},
		})
	}
	c.JSON(http.StatusOK, gin.H{"collections": []gin.H{{"id": "imported", "collection": coll}}})
}
