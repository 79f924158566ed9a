package resilience

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// HTTPClient wraps an http.Client with a per-call timeout and a circuit
// breaker. There is deliberately no retry loop: the terminal surfaces an
// upstream failure to the operator and lets them decide, so every call is a
// single attempt.
type HTTPClient struct {
	Client  *http.Client
	Breaker *Breaker
	Timeout time.Duration
}

// Do executes the request once. When the breaker is open ErrOpenCircuit is
// returned without touching the network. A 5xx response counts as a breaker
// failure but is still handed back to the caller for status mapping.
func (cl HTTPClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if cl.Client == nil {
		return nil, errors.New("resilience: http client not configured")
	}
	breaker := cl.Breaker
	if breaker == nil {
		// closed breaker that never trips
		breaker = NewBreaker(1, 1, time.Second)
	}
	target := breaker.targetLabel()
	if !breaker.Allow(ctx) {
		RequestsTotal.WithLabelValues(target, "rejected").Inc()
		return nil, ErrOpenCircuit
	}

	callCtx := ctx
	var cancel context.CancelFunc
	if cl.Timeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, cl.Timeout)
		defer cancel()
	}
	resp, err := cl.Client.Do(req.WithContext(callCtx))
	switch {
	case err != nil:
		breaker.Report(ctx, false)
		RequestsTotal.WithLabelValues(target, "error").Inc()
		return nil, err
	case resp.StatusCode >= http.StatusInternalServerError:
		breaker.Report(ctx, false)
		RequestsTotal.WithLabelValues(target, "upstream_error").Inc()
		return resp, nil
	default:
		breaker.Report(ctx, true)
		RequestsTotal.WithLabelValues(target, "ok").Inc()
		return resp, nil
	}
}
