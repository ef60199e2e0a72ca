// internal/core/config.go
package core

import (
	"encoding/json"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every request option forwarded to the HTTP transport.
// Fields are enumerated on purpose: no open-ended option maps, no
// process-wide defaults shared between targets.
type Config struct {
	Timeout           Duration          `json:"timeout" yaml:"timeout"`
	Proxy             string            `json:"proxy" yaml:"proxy"`
	UserAgent         string            `json:"user_agent" yaml:"user_agent"`
	Headers           map[string]string `json:"headers" yaml:"headers"`
	BasicAuthUser     string            `json:"basic_auth_user" yaml:"basic_auth_user"`
	BasicAuthPass     string            `json:"basic_auth_pass" yaml:"basic_auth_pass"`
	TLSInsecure       bool              `json:"tls_insecure" yaml:"tls_insecure"`
	MaxBodySize       int64             `json:"max_body_size" yaml:"max_body_size"`
	DisableKeepAlives bool              `json:"disable_keep_alives" yaml:"disable_keep_alives"`
	FollowRedirects   bool              `json:"follow_redirects" yaml:"follow_redirects"`
}

// Duration wraps time.Duration so config files can say "10s" or "500ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// DefaultMaxBodySize caps GET bodies when HEAD support is unreliable and
// large downloads may follow.
const DefaultMaxBodySize int64 = 5 << 20

func DefaultConfig() *Config {
	return &Config{
		Timeout:     Duration(30 * time.Second),
		UserAgent:   "CMSScanner/1.0",
		MaxBodySize: DefaultMaxBodySize,
	}
}

// LoadConfig reads a YAML or JSON config file, picked by extension.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := DefaultConfig()
	if len(path) > 5 && path[len(path)-5:] == ".yaml" {
		err = yaml.NewDecoder(f).Decode(cfg)
	} else {
		err = json.NewDecoder(f).Decode(cfg)
	}
	if err != nil {
		return nil, err
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	return cfg, nil
}
