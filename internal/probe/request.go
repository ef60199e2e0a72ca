// internal/probe/request.go
package probe

import (
	"io"
	"net/http"

	"github.com/jciason/CMSScanner/internal/core"
	"github.com/jciason/CMSScanner/internal/core/logger"
)

// Response is the surface returned to callers: which method actually produced
// it, the status code (0 on transport failure) and the body bytes (empty for
// HEAD responses by protocol).
type Response struct {
	Method     string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Offline reports whether the response stands for a transport failure rather
// than an HTTP answer.
func (r *Response) Offline() bool { return r.StatusCode == 0 }

// RequestOptions are per-call overrides layered on top of the target config.
type RequestOptions struct {
	Headers     map[string]string
	MaxBodySize int64
}

// request performs a single HTTP request. Transport failures are not errors:
// they come back as a Response with status 0 and an empty body, so the
// classifier predicates can treat them as "offline".
func (t *Target) request(method, rawurl string, opts RequestOptions) *Response {
	log := logger.GetLogger()

	req, err := http.NewRequest(method, rawurl, nil)
	if err != nil {
		log.Debugf("%s %s: building request failed: %v", method, rawurl, err)
		return &Response{Method: method}
	}

	if t.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", t.cfg.UserAgent)
	}
	for k, v := range t.cfg.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if t.cfg.BasicAuthUser != "" {
		req.SetBasicAuth(t.cfg.BasicAuthUser, t.cfg.BasicAuthPass)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		log.Debugf("%s %s: %v", method, rawurl, err)
		return &Response{Method: method}
	}
	defer resp.Body.Close()

	var body []byte
	if method != http.MethodHead {
		limit := opts.MaxBodySize
		if limit <= 0 {
			limit = t.cfg.MaxBodySize
		}
		if limit <= 0 {
			limit = core.DefaultMaxBodySize
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, limit))
		if err != nil {
			log.Debugf("%s %s: reading body: %v", method, rawurl, err)
			body = nil
		}
	}

	return &Response{
		Method:     method,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
}
