// Package upstream implements the HTTP client for the store API: the
// catalog, tax and order collaborators the terminal consumes. The terminal
// never owns this data; it reads catalog snapshots and submits completed
// sales.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/express-pos/terminal/internal/catalog"
	"github.com/express-pos/terminal/internal/common"
	"github.com/express-pos/terminal/internal/order"
	"github.com/express-pos/terminal/internal/resilience"
	"github.com/express-pos/terminal/internal/sale"
)

// Config groups Client construction parameters.
type Config struct {
	BaseURL string
	// Token is an optional pre-issued API token; Login replaces it.
	Token   string
	Timeout time.Duration
	Log     zerolog.Logger
}

// Client talks to the store API. It implements catalog.Provider,
// catalog.TaxProvider and sale.Submitter.
type Client struct {
	baseURL string
	token   string
	http    resilience.HTTPClient
	log     zerolog.Logger
}

// New constructs a Client with an otel-instrumented transport and a circuit
// breaker guarding the store API.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	breaker := resilience.NewBreaker(5, 0.5, 30*time.Second).
		WithTarget("store-api").
		WithLogger(cfg.Log)
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http: resilience.HTTPClient{
			Client:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
			Breaker: breaker,
			Timeout: timeout,
		},
		log: cfg.Log,
	}
}

// SetToken replaces the bearer token used on subsequent calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates the operator and stores the issued token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/user", nil, in, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return fmt.Errorf("store api login: empty token: %w", common.ErrUpstream)
	}
	c.token = out.Token
	return nil
}

// ListProducts fetches the current catalog snapshot.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/api/product", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCategories fetches the store's categories.
func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var out []catalog.Category
	if err := c.do(ctx, http.MethodGet, "/api/category", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product; common.ErrNotFound when it was deleted.
func (c *Client) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	var out catalog.Product
	if err := c.do(ctx, http.MethodGet, "/api/product/"+id, nil, nil, &out); err != nil {
		return catalog.Product{}, err
	}
	return out, nil
}

// GetTaxConfig fetches the store-wide tax configuration.
func (c *Client) GetTaxConfig(ctx context.Context) (catalog.TaxConfig, error) {
	var out catalog.TaxConfig
	if err := c.do(ctx, http.MethodGet, "/api/store/tax", nil, nil, &out); err != nil {
		return catalog.TaxConfig{}, err
	}
	return out, nil
}

// GetOrder fetches a persisted order for reprinting.
func (c *Client) GetOrder(ctx context.Context, id string) (order.Order, error) {
	var out order.Order
	if err := c.do(ctx, http.MethodGet, "/api/order/"+id, nil, nil, &out); err != nil {
		return order.Order{}, err
	}
	return out, nil
}

// SubmitOrder persists a completed sale. The idempotency key from the sale
// session travels as a header so a resubmitted request cannot double-charge.
func (c *Client) SubmitOrder(ctx context.Context, in sale.SubmitInput) (order.Order, error) {
	taxRate := decimal.Zero
	if in.Tax.Enabled {
		taxRate = in.Tax.Rate
	}
	products := make([]order.Item, 0, len(in.Lines))
	for _, l := range in.Lines {
		products = append(products, order.Item{ProductID: l.ProductID, Price: l.UnitPrice, Count: l.Count})
	}
	body := map[string]any{
		"products":    products,
		"taxRate":     taxRate,
		"discount":    in.Discount,
		"paymentType": in.PaymentType,
	}
	header := http.Header{}
	if in.IdempotencyKey != "" {
		header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	var out order.Order
	if err := c.do(ctx, http.MethodPost, "/api/order", header, body, &out); err != nil {
		return order.Order{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("store api %s %s: encode body: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("store api %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("store api %s %s: %w: %w", method, path, err, common.ErrUpstream)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("store api %s %s: %w", method, path, common.ErrNotFound)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("store api %s %s: %s: %w", method, path, resp.Status, common.ErrUpstream)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("store api %s %s: decode response: %w: %w", method, path, err, common.ErrUpstream)
	}
	return nil
}
