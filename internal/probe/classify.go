// internal/probe/classify.go
package probe

import "net/http"

// The classifier predicates issue a GET per call and are deliberately not
// memoized: auth and reachability may legitimately change during a scan.
// They take an optional path, defaulting to the target root.

func (t *Target) classify(path []string) *Response {
	p := ""
	if len(path) > 0 {
		p = path[0]
	}
	return t.request(http.MethodGet, t.BuildURL(p), RequestOptions{})
}

// IsOnline reports whether any HTTP response came back at all. Every non-zero
// status counts, error ranges included: a 500 is still a server talking.
func (t *Target) IsOnline(path ...string) bool {
	return t.classify(path).StatusCode != 0
}

// RequiresHTTPAuth reports a 401 challenge on the given path.
func (t *Target) RequiresHTTPAuth(path ...string) bool {
	return t.classify(path).StatusCode == http.StatusUnauthorized
}

// IsForbidden reports a 403 on the given path.
func (t *Target) IsForbidden(path ...string) bool {
	return t.classify(path).StatusCode == http.StatusForbidden
}

// RequiresProxyAuth reports a 407 challenge on the given path.
func (t *Target) RequiresProxyAuth(path ...string) bool {
	return t.classify(path).StatusCode == http.StatusProxyAuthRequired
}
