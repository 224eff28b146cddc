package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/loykin/demosync/internal/config"
	"github.com/loykin/demosync/internal/httpc"
	"github.com/loykin/demosync/internal/openapi"
	"github.com/loykin/demosync/internal/postman"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runtime is what every subcommand needs before talking to the vendor API.
type runtime struct {
	settings *config.Settings
	client   *postman.Client
	loader   *openapi.Loader
}

// loadConfigDoc reads the optional --config file and applies the
// --log-level/--log-format overrides on top of it.
func loadConfigDoc(v *viper.Viper) (*config.ConfigDoc, error) {
	doc := &config.ConfigDoc{}
	if path := strings.TrimSpace(v.GetString("config")); path != "" {
		if err := doc.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if lvl := strings.TrimSpace(v.GetString("log_level")); lvl != "" {
		doc.Logging.Level = lvl
	}
	if f := strings.TrimSpace(v.GetString("log_format")); f != "" {
		doc.Logging.Format = f
	}
	return doc, nil
}

// setup configures logging, loads and validates settings and builds the
// vendor client. Missing required variables fail here, before any request.
func setup(v *viper.Viper) (*runtime, error) {
	doc, err := loadConfigDoc(v)
	if err != nil {
		return nil, err
	}
	if err := doc.SetupLogging(); err != nil {
		return nil, err
	}
	s, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts, err := config.ClientOptions(s, doc.Client)
	if err != nil {
		return nil, err
	}
	// The OpenAPI fetch shares TLS and timeout options but never the vendor API key.
	fetch := &httpc.Httpc{TlsConfig: opts.TLSConfig, Timeout: opts.Timeout}
	return &runtime{
		settings: s,
		client:   postman.New(opts),
		loader:   openapi.NewLoaderWithResty(fetch.New()),
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
