// internal/probe/prober.go
package probe

import (
	"math/rand"
	"net/http"
)

// requestParams is the standing decision for lightweight probes: which method
// to lead with, and the body cap when the server's HEAD support is unreliable.
type requestParams struct {
	Method      string
	MaxBodySize int64
}

const notFoundPathLength = 16

const alnum = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomAlnum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[rand.Intn(len(alnum))]
	}
	return string(b)
}

// standingParams decides once, from a real HEAD probe against the homepage,
// whether HEAD requests can be trusted. A dropped (status 0), 405 or 501
// answer forces GET with a body cap for the target's lifetime; anything else
// means the server handles HEAD sensibly.
func (t *Target) standingParams() requestParams {
	t.methodOnce.Do(func() {
		res := t.request(http.MethodHead, t.URL(), RequestOptions{})
		switch res.StatusCode {
		case 0, http.StatusMethodNotAllowed, http.StatusNotImplemented:
			t.standing = requestParams{Method: http.MethodGet, MaxBodySize: t.cfg.MaxBodySize}
		default:
			t.standing = requestParams{Method: http.MethodHead}
		}
	})
	return t.standing
}

// StandingMethod reports the method the adaptive requester leads with,
// deciding it on first use.
func (t *Target) StandingMethod() string {
	return t.standingParams().Method
}

// Probe requests the given path with the standing method. When leading with
// HEAD, the HEAD response is final only if its status is among acceptedCodes
// (default 200); otherwise a GET follows and its response is returned. The
// returned Response carries the method that actually produced it.
func (t *Target) Probe(path string, acceptedCodes []int, headOpts, getOpts RequestOptions) *Response {
	if len(acceptedCodes) == 0 {
		acceptedCodes = []int{http.StatusOK}
	}

	params := t.standingParams()
	if params.Method == http.MethodHead {
		res := t.request(http.MethodHead, t.BuildURL(path), headOpts)
		if containsCode(acceptedCodes, res.StatusCode) {
			return res
		}
	} else if getOpts.MaxBodySize <= 0 {
		getOpts.MaxBodySize = params.MaxBodySize
	}

	return t.request(http.MethodGet, t.BuildURL(path), getOpts)
}

// NotFoundBaseline captures, once, the server's answer for a virtually
// guaranteed-nonexistent path. The memoized response is what downstream
// heuristics compare against to spot soft 404s; repeatability matters more
// than freshness, so there is never a second network call.
func (t *Target) NotFoundBaseline() *Response {
	t.baselineOnce.Do(func() {
		path := randomAlnum(notFoundPathLength) + ".html"
		t.baseline = t.request(http.MethodGet, t.BuildURL(path), RequestOptions{
			MaxBodySize: t.cfg.MaxBodySize,
		})
	})
	return t.baseline
}

func containsCode(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
