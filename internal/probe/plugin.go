// internal/probe/plugin.go
package probe

import (
	"time"

	"github.com/jciason/CMSScanner/internal/core"
)

type webTargetProbePlugin struct{}

func (p *webTargetProbePlugin) Name() string { return "WebTargetProbe" }
func (p *webTargetProbePlugin) Description() string {
	return "Probes a target URL: reachability, auth requirements, HEAD support and 404 baseline"
}
func (p *webTargetProbePlugin) Category() string { return "reconnaissance" }
func (p *webTargetProbePlugin) Options() []core.ModuleOption {
	return []core.ModuleOption{
		{Name: "timeout", Type: "string", Default: "30s", Description: "Timeout per request", Required: false},
		{Name: "user_agent", Type: "string", Default: "CMSScanner/1.0", Description: "User-Agent header", Required: false},
		{Name: "tls_insecure", Type: "bool", Default: false, Description: "Skip TLS certificate verification", Required: false},
	}
}
func (p *webTargetProbePlugin) Run(target string, options map[string]interface{}) (interface{}, error) {
	cfg := core.DefaultConfig()

	if timeoutStr, ok := options["timeout"].(string); ok && timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			cfg.Timeout = core.Duration(timeout)
		}
	}
	if ua, ok := options["user_agent"].(string); ok && ua != "" {
		cfg.UserAgent = ua
	}
	if insecure, ok := options["tls_insecure"].(bool); ok {
		cfg.TLSInsecure = insecure
	}

	t, err := NewTarget(target, cfg)
	if err != nil {
		return nil, err
	}
	return t.Summarize(), nil
}

func init() {
	core.RegisterPlugin(&webTargetProbePlugin{})
}
