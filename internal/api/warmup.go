package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

// warmupTimeout bounds the wake request on its own: a sleeping backend can
// take a while to come up, longer than ordinary API calls are allowed.
const warmupTimeout = 60 * time.Second

// WarmupCoordinator wakes a backend that may have gone idle. Concurrent
// demands share a single in-flight wake request; once it settles, the next
// demand starts a fresh one. At most one wake request is outstanding
// system-wide at any instant.
type WarmupCoordinator struct {
	origin string
	client *http.Client
	group  singleflight.Group
	log    logging.Logger
}

// NewWarmupCoordinator builds a coordinator for the given API origin. The
// wake request uses its own plain HTTP client so it never re-enters the
// resilience chain that triggered it.
func NewWarmupCoordinator(origin string, log logging.Logger) *WarmupCoordinator {
	return &WarmupCoordinator{
		origin: strings.TrimRight(origin, "/"),
		client: &http.Client{Timeout: warmupTimeout},
		log:    log,
	}
}

// Trigger demands a warm backend and waits until the shared wake request
// settles or ctx is done. The wake outcome is logged, never surfaced: callers
// retry their own request regardless and learn the truth from that.
func (w *WarmupCoordinator) Trigger(ctx context.Context) {
	ch := w.group.DoChan("warmup", func() (any, error) {
		return nil, w.wake()
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			w.log.Warn(ctx, "warm-up request failed", "error", res.Err)
		} else {
			w.log.Debug(ctx, "backend warmed up", "shared", res.Shared)
		}
	case <-ctx.Done():
		// The caller gave up; the in-flight wake continues for others.
	}
}

// wake issues the actual request. No auth header is needed; the body and
// status are not interpreted beyond success/failure.
func (w *WarmupCoordinator) wake() error {
	req, err := http.NewRequest(http.MethodPost, w.origin+"/api/warmup", nil)
	if err != nil {
		return err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected warm-up status %s", resp.Status)
	}
	return nil
}
