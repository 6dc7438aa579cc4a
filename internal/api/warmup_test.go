package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopadmin/internal/logging"
)

func TestWarmupCoordinator_WakesBackend(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/warmup", r.URL.Path)
		hits.Add(1)
	}))
	defer srv.Close()

	w := NewWarmupCoordinator(srv.URL, logging.Discard())
	w.Trigger(context.Background())

	require.Equal(t, int32(1), hits.Load())
}

func TestWarmupCoordinator_ConcurrentTriggersShareOneRequest(t *testing.T) {
	var hits atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(entered)
		}
		<-release
	}))
	defer srv.Close()

	w := NewWarmupCoordinator(srv.URL, logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Trigger(context.Background())
		}()
	}

	// all five triggers pile up behind the single in-flight wake
	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), hits.Load())
}

func TestWarmupCoordinator_SettledTicketIsNotReused(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	w := NewWarmupCoordinator(srv.URL, logging.Discard())
	w.Trigger(context.Background())
	w.Trigger(context.Background())

	require.Equal(t, int32(2), hits.Load())
}

func TestWarmupCoordinator_FailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := NewWarmupCoordinator(srv.URL, logging.Discard())
	// must return normally: the caller's own retry learns the truth
	w.Trigger(context.Background())
}

func TestWarmupCoordinator_CanceledCallerReturnsEarly(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	w := NewWarmupCoordinator(srv.URL, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Trigger(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Trigger did not return after context cancellation")
	}
}
