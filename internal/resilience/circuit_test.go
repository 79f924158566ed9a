package resilience

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBreakerOpensOnFailureRatio(t *testing.T) {
	ctx := context.Background()
	b := NewBreaker(4, 0.5, time.Hour)

	for i := 0; i < 2; i++ {
		b.Report(ctx, true)
	}
	for i := 0; i < 2; i++ {
		b.Report(ctx, false)
	}

	require.False(t, b.Allow(ctx), "breaker should be open at 50% failures")
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	ctx := context.Background()
	b := NewBreaker(1, 0.5, 10*time.Millisecond)

	b.Report(ctx, false)
	require.False(t, b.Allow(ctx))

	time.Sleep(20 * time.Millisecond)
	require.True(t, b.Allow(ctx), "cool-off elapsed, one probe admitted")

	b.Report(ctx, true)
	require.True(t, b.Allow(ctx), "successful probe closes the breaker")
}

func TestBreakerReopensOnFailedProbe(t *testing.T) {
	ctx := context.Background()
	b := NewBreaker(1, 0.5, 10*time.Millisecond)

	b.Report(ctx, false)
	time.Sleep(20 * time.Millisecond)
	require.True(t, b.Allow(ctx))

	b.Report(ctx, false)
	require.False(t, b.Allow(ctx), "failed probe must reopen the breaker")
}

func TestHTTPClientSingleAttempt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cl := HTTPClient{Client: srv.Client(), Breaker: NewBreaker(10, 0.9, time.Hour)}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := cl.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, int32(1), hits.Load(), "no retries at this layer")
}

func TestHTTPClientRejectsWhenOpen(t *testing.T) {
	ctx := context.Background()
	b := NewBreaker(1, 0.5, time.Hour)
	b.Report(ctx, false)

	cl := HTTPClient{Client: http.DefaultClient, Breaker: b}
	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:0/", nil)
	require.NoError(t, err)

	_, err = cl.Do(ctx, req)
	require.ErrorIs(t, err, ErrOpenCircuit)
}
