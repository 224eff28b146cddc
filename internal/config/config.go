package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/loykin/demosync/internal/common"
	"github.com/loykin/demosync/internal/httpc"
	"github.com/loykin/demosync/internal/postman"
	"github.com/loykin/demosync/internal/util"
	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level"`          // error, warn, info, debug
	Format        string `yaml:"format"`         // text, json, color
	MaskSensitive *bool  `yaml:"mask_sensitive"` // defaults to true
	Color         *bool  `yaml:"color"`          // colorize text output
}

type ClientConfig struct {
	Insecure      bool   `yaml:"insecure"`
	MinTLSVersion string `yaml:"min_tls_version"`
	// Timeout is a duration string; empty keeps the HTTP client default.
	Timeout string `yaml:"timeout"`
}

// ConfigDoc is the optional YAML config file.
type ConfigDoc struct {
	Logging LoggingConfig `yaml:"logging"`
	Client  ClientConfig  `yaml:"client"`
}

func (c *ConfigDoc) Load(path string) error {
	clean := filepath.Clean(path)
	if info, statErr := os.Stat(clean); statErr != nil || !info.Mode().IsRegular() {
		if statErr != nil {
			return statErr
		}
		return fmt.Errorf("not a regular file: %s", clean)
	}
	// #nosec G304 -- config path is provided intentionally by the user/CI; cleaned and validated above
	f, err := os.Open(clean)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", clean, err)
	}
	return nil
}

func (c *ConfigDoc) parseLogLevel() (common.LogLevel, error) {
	switch util.TrimAndLower(c.Logging.Level) {
	case "error":
		return common.LogLevelError, nil
	case "warn", "warning":
		return common.LogLevelWarn, nil
	case "info", "":
		return common.LogLevelInfo, nil
	case "debug":
		return common.LogLevelDebug, nil
	default:
		return common.LogLevelInfo, fmt.Errorf("invalid logging level: %s (valid: error, warn, info, debug)", c.Logging.Level)
	}
}

// NewLogger builds the logger described by the logging block.
func (c *ConfigDoc) NewLogger() (*common.Logger, error) {
	level, err := c.parseLogLevel()
	if err != nil {
		return nil, err
	}
	var logger *common.Logger
	format := util.TrimAndLower(c.Logging.Format)
	switch format {
	case "json":
		logger = common.NewJSONLogger(level)
	case "color", "colour":
		logger = common.NewColorLogger(level)
	case "text", "":
		if c.Logging.Color != nil && *c.Logging.Color {
			logger = common.NewColorLogger(level)
		} else {
			logger = common.NewLogger(level)
		}
	default:
		return nil, fmt.Errorf("invalid logging format: %s (valid: text, json, color)", c.Logging.Format)
	}
	masking := true
	if c.Logging.MaskSensitive != nil {
		masking = *c.Logging.MaskSensitive
	}
	logger.EnableMasking(masking)
	return logger, nil
}

// SetupLogging installs the configured logger as the global default.
func (c *ConfigDoc) SetupLogging() error {
	logger, err := c.NewLogger()
	if err != nil {
		return err
	}
	common.SetDefaultLogger(logger)
	logger.Debug("logging configured",
		"level", logger.Level().String(),
		"format", util.TrimWithDefault(c.Logging.Format, "text"))
	return nil
}

// TLSConfig returns nil when no TLS option is set.
func (c ClientConfig) TLSConfig() (*tls.Config, error) {
	if !c.Insecure && c.MinTLSVersion == "" {
		return nil, nil
	}
	cfg := &tls.Config{}
	if c.Insecure {
		cfg.InsecureSkipVerify = true // #nosec G402 -- opt-in for self-hosted gateways
	}
	if c.MinTLSVersion != "" {
		v := httpc.ParseTLSVersion(c.MinTLSVersion)
		if v == 0 {
			return nil, fmt.Errorf("invalid min_tls_version: %s", c.MinTLSVersion)
		}
		cfg.MinVersion = v
	}
	return cfg, nil
}

// TimeoutDuration parses Timeout; empty yields zero.
func (c ClientConfig) TimeoutDuration() (time.Duration, error) {
	s, ok := util.TrimEmptyCheck(c.Timeout)
	if !ok {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid client timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// ClientOptions combines settings and client options into vendor client options.
func ClientOptions(s *Settings, c ClientConfig) (postman.Options, error) {
	tlsCfg, err := c.TLSConfig()
	if err != nil {
		return postman.Options{}, err
	}
	timeout, err := c.TimeoutDuration()
	if err != nil {
		return postman.Options{}, err
	}
	return postman.Options{
		BaseURL:     s.APIBase,
		APIKey:      s.APIKey,
		WorkspaceID: s.WorkspaceID,
		TLSConfig:   tlsCfg,
		Timeout:     timeout,
	}, nil
}
