package postman

// CollectionSchema is the v2.1 collection schema every built collection declares.
const CollectionSchema = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// DefaultBaseURL is the public vendor API endpoint.
const DefaultBaseURL = "https://api.getpostman.com"

// Kind names a remote resource type. Its value is the envelope key used in
// request and response bodies.
type Kind string

const (
	KindEnvironment Kind = "environment"
	KindCollection  Kind = "collection"
)

// Plural returns the URL segment and list key for the kind.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Variable is one key/value entry of an environment.
type Variable struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

// Environment is a named set of variables substituted into request templates.
type Environment struct {
	Name   string     `json:"name"`
	Values []Variable `json:"values"`
}

// Header is a request header template.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// URL is the structured URL of a request template.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

// Request is an HTTP request template.
type Request struct {
	Method string   `json:"method"`
	Header []Header `json:"header"`
	URL    URL      `json:"url"`
}

// Item is a named request inside a collection.
type Item struct {
	Name    string  `json:"name"`
	Request Request `json:"request"`
}

// CollectionInfo holds the collection name and schema URI.
type CollectionInfo struct {
	Name   string `json:"name"`
	Schema string `json:"schema"`
}

// Collection is a named, ordered list of request templates.
type Collection struct {
	Info CollectionInfo `json:"info"`
	Item []Item         `json:"item"`
}

// Summary is the listing view of a remote environment or collection.
type Summary struct {
	ID   string `json:"id"`
	UID  string `json:"uid"`
	Name string `json:"name"`
}
