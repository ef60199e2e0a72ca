// internal/probe/report.go
package probe

import (
	"fmt"
	"strings"
)

// Report summarizes one target probe for the CLI and output formatters.
type Report struct {
	Target          string `json:"target"`
	ResolvedAddress string `json:"resolved_address"`
	Online          bool   `json:"online"`
	HTTPAuth        bool   `json:"http_auth"`
	Forbidden       bool   `json:"forbidden"`
	ProxyAuth       bool   `json:"proxy_auth"`
	StandingMethod  string `json:"standing_method"`
	NotFoundStatus  int    `json:"not_found_status"`
	NotFoundBodyLen int    `json:"not_found_body_len"`
}

// Summarize runs the full probe sequence against the target.
func (t *Target) Summarize() *Report {
	r := &Report{
		Target:          t.URL(),
		ResolvedAddress: t.ResolvedAddress(),
		Online:          t.IsOnline(),
	}
	if !r.Online {
		return r
	}
	r.HTTPAuth = t.RequiresHTTPAuth()
	r.Forbidden = t.IsForbidden()
	r.ProxyAuth = t.RequiresProxyAuth()
	r.StandingMethod = t.StandingMethod()
	baseline := t.NotFoundBaseline()
	r.NotFoundStatus = baseline.StatusCode
	r.NotFoundBodyLen = len(baseline.Body)
	return r
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s (%s)\n", r.Target, r.ResolvedAddress)
	if !r.Online {
		b.WriteString("Status: offline (no HTTP response)")
		return b.String()
	}
	b.WriteString("Status: online\n")
	if r.HTTPAuth {
		b.WriteString("HTTP authentication required (401)\n")
	}
	if r.Forbidden {
		b.WriteString("Access forbidden (403)\n")
	}
	if r.ProxyAuth {
		b.WriteString("Proxy authentication required (407)\n")
	}
	fmt.Fprintf(&b, "Standing method: %s\n", r.StandingMethod)
	fmt.Fprintf(&b, "Not-found baseline: status %d, %d body bytes", r.NotFoundStatus, r.NotFoundBodyLen)
	return b.String()
}
