// internal/probe/target.go
package probe

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/idna"

	"github.com/jciason/CMSScanner/internal/core"
	"github.com/jciason/CMSScanner/internal/httpclient"
)

// Target represents one web endpoint being probed. It is safe for use by
// concurrent callers: the memoized fields are guarded by sync.Once and the
// config is read-only after construction.
type Target struct {
	rawURL     string
	normalized *url.URL
	cfg        *core.Config
	client     *http.Client

	baselineOnce sync.Once
	baseline     *Response

	methodOnce sync.Once
	standing   requestParams
}

// NewTarget builds a Target from a base URL and request config.
// A nil config means defaults.
func NewTarget(rawURL string, cfg *core.Config) (*Target, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	t := &Target{
		cfg:    cfg,
		client: httpclient.New(cfg),
	}
	if err := t.SetURL(rawURL); err != nil {
		return nil, err
	}
	return t, nil
}

// SetURL parses and normalizes the base URL: punycode-encoded host labels,
// percent-encoded path, trailing slash on a bare root. Query, fragment and
// userinfo are dropped; credentials belong in Config.BasicAuthUser/Pass, not
// in the URL. On error the target keeps its previous URL state untouched.
func (t *Target) SetURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return core.ErrInvalidURL
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return core.ErrInvalidURL
	}

	host := u.Hostname()
	if strings.Contains(host, ":") {
		// IPv6 literal: Hostname() strips the brackets, put them back.
		host = "[" + host + "]"
	} else {
		host, err = idna.ToASCII(host)
		if err != nil || host == "" {
			return core.ErrInvalidURL
		}
	}
	if port := u.Port(); port != "" {
		host = host + ":" + port
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	t.rawURL = rawURL
	t.normalized = &url.URL{
		Scheme:  u.Scheme,
		Host:    host,
		Path:    mustPathUnescape(path),
		RawPath: path,
	}
	return nil
}

// RawURL returns the URL exactly as supplied by the caller.
func (t *Target) RawURL() string { return t.rawURL }

// URL returns the normalized base URL.
func (t *Target) URL() string { return t.normalized.String() }

// BuildURL returns an absolute URL for the given path. An empty path yields
// the normalized base URL. A path starting with "/" replaces the base path
// (host-root relative); anything else is appended to the base path. Every
// segment is percent-encoded for transport.
func (t *Target) BuildURL(path string) string {
	if path == "" {
		return t.URL()
	}

	encoded := encodePath(path)
	if strings.HasPrefix(path, "/") {
		return t.normalized.Scheme + "://" + t.normalized.Host + encoded
	}

	base := t.normalized.EscapedPath()
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return t.normalized.Scheme + "://" + t.normalized.Host + base + encoded
}

// encodePath percent-encodes each path segment, leaving the "/" separators
// alone. Raw "%" is encoded to %25, never treated as an existing escape.
func encodePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func mustPathUnescape(escaped string) string {
	unescaped, err := url.PathUnescape(escaped)
	if err != nil {
		return escaped
	}
	return unescaped
}
