package api

import "net/http"

// TokenSource supplies the current bearer token, or "" when no session
// exists. The session container implements this.
type TokenSource interface {
	Token() string
}

// bearerTransport is the outbound stage: it attaches the bearer token to
// every request that has one available. A missing token is not an error, the
// header is simply omitted. An Authorization header already present on the
// request wins over the token source.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") == "" {
		if token := t.tokens.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}
