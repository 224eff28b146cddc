package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/loykin/demosync/internal/postman"
	"github.com/spf13/viper"
)

// Settings holds every recognized environment variable.
type Settings struct {
	APIKey      string `mapstructure:"postman_api_key"`
	WorkspaceID string `mapstructure:"postman_workspace_id"`
	APIBase     string `mapstructure:"postman_api_base"`

	// publish
	EnvName         string `mapstructure:"env_name"`
	CollectionName  string `mapstructure:"collection_name"`
	ServiceBaseURL  string `mapstructure:"service_base_url"`
	ServiceAPIKey   string `mapstructure:"service_api_key"`
	EnvUID          string `mapstructure:"postman_env_uid"`
	CollectionUID   string `mapstructure:"postman_collection_uid"`
	OpenAPISpecPath string `mapstructure:"openapi_spec_path"`
	Governance      bool   `mapstructure:"governance_check"`

	// wizard-ci
	CustomerName string   `mapstructure:"customer_name"`
	BaseURL      string   `mapstructure:"base_url"`
	APIKeyValue  string   `mapstructure:"api_key_value"`
	Endpoints    []string `mapstructure:"endpoints"`
}

var defaults = map[string]any{
	"postman_api_base":       postman.DefaultBaseURL,
	"env_name":               "Enterprise Demo Environment",
	"collection_name":        "Enterprise Demo Collection",
	"service_base_url":       "https://api.example.com",
	"service_api_key":        "demo-key",
	"postman_env_uid":        "",
	"postman_collection_uid": "",
	"openapi_spec_path":      "",
	"governance_check":       false,
	"customer_name":          "Customer",
	"base_url":               "https://api.example.com",
	"api_key_value":          "demo-key",
	"endpoints":              "/health,/users",
}

// ErrMissingRequired is wrapped by Validate for every unset required variable.
var ErrMissingRequired = errors.New("required environment variable not set")

// Bind registers every setting key with v, bound to its upper-case
// environment variable and default.
func Bind(v *viper.Viper) {
	for _, key := range []string{"postman_api_key", "postman_workspace_id"} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}
	for key, def := range defaults {
		_ = v.BindEnv(key, strings.ToUpper(key))
		v.SetDefault(key, def)
	}
}

// Load binds v and decodes it into Settings. ENDPOINTS is split on commas
// without trimming.
func Load(v *viper.Viper) (*Settings, error) {
	Bind(v)
	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

// Validate fails when a required variable is missing.
func (s *Settings) Validate() error {
	var missing []string
	if strings.TrimSpace(s.APIKey) == "" {
		missing = append(missing, "POSTMAN_API_KEY")
	}
	if strings.TrimSpace(s.WorkspaceID) == "" {
		missing = append(missing, "POSTMAN_WORKSPACE_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}
