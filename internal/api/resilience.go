package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

// resilientTransport is the inbound stage. Two rules, checked in order:
//
//  1. A network-level failure (the attempt returned an error, no HTTP
//     response exists) is taken as a possibly cold backend: the warm-up
//     coordinator is triggered, its outcome ignored, and the request
//     re-issued exactly once. A second failure propagates as-is.
//  2. Once the final outcome is known — retried or not — a 401 response fires
//     the unauthorized hook. The response is still returned to the caller.
//
// The order matters: a connection failure must never be read as an
// authorization failure, and a 401 on the retried request is treated exactly
// like a 401 on a first attempt.
//
// Each attempt runs under its own timeout, so the retry gets a fresh budget
// after the warm-up wait instead of inheriting a nearly spent one.
type resilientTransport struct {
	base           http.RoundTripper
	warmup         *WarmupCoordinator
	onUnauthorized func()
	attemptTimeout time.Duration
	log            logging.Logger
}

func (t *resilientTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	resp, err := t.attempt(req)
	if err != nil && ctx.Err() == nil {
		if retry, ok := rewind(req); ok {
			t.log.Warn(ctx, "request failed at network level, warming up backend",
				"method", req.Method, "url", req.URL.String(), "error", err)
			t.warmup.Trigger(ctx)
			resp, err = t.attempt(retry)
		}
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.log.Warn(ctx, "request rejected as unauthorized, ending session",
			"method", req.Method, "url", req.URL.String())
		t.onUnauthorized()
	}
	return resp, nil
}

// attempt issues req once under the per-attempt timeout. The timeout context
// stays alive until the response body is closed.
func (t *resilientTransport) attempt(req *http.Request) (*http.Response, error) {
	cancel := context.CancelFunc(func() {})
	if t.attemptTimeout > 0 {
		var ctx context.Context
		ctx, cancel = context.WithTimeout(req.Context(), t.attemptTimeout)
		req = req.Clone(ctx)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

// rewind produces a re-issuable copy of req with a fresh body. Requests
// without a body always qualify; requests with one need GetBody (set by
// http.NewRequest for the buffered readers this client uses).
func rewind(req *http.Request) (*http.Request, bool) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	clone.Body = body
	return clone, true
}
