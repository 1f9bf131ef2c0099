// Package client is a typed Go client for the inventory backend's REST
// API, covering the same calls the admin console issues.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client wraps interactions with the inventory API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Options customises client construction.
type Options struct {
	BaseURL string
	// HTTPClient overrides the default client; mainly for tests.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil. Zero means 30 seconds.
	Timeout time.Duration
}

// New constructs a client for the given backend.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: opts.BaseURL, httpClient: httpClient}
}

// Items fetches the item catalog.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var list []Item
	if err := c.getJSON(ctx, "/api/items", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Ledgers fetches the party reference set.
func (c *Client) Ledgers(ctx context.Context) ([]Ledger, error) {
	var list []Ledger
	if err := c.getJSON(ctx, "/api/ledgers", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Districts fetches the district master.
func (c *Client) Districts(ctx context.Context) ([]District, error) {
	var list []District
	if err := c.getJSON(ctx, "/api/districts", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Orders fetches order headers.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var list []Order
	if err := c.getJSON(ctx, "/api/orders", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// OrdersWithItems fetches headers enriched with line metadata.
func (c *Client) OrdersWithItems(ctx context.Context) ([]OrderSummary, error) {
	var list []OrderSummary
	if err := c.getJSON(ctx, "/api/orders/with-items/all", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// OrderWithItems fetches a single order with its lines for editing.
func (c *Client) OrderWithItems(ctx context.Context, id int64) (OrderWithItems, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/with-items/%d", id), nil)
	if err != nil {
		return OrderWithItems{}, err
	}
	var order OrderWithItems
	if err := json.Unmarshal(env.Data, &order); err != nil {
		return OrderWithItems{}, &NetworkError{Op: "get order", Err: err}
	}
	return order, nil
}

// CreateOrder submits a new order with its lines.
func (c *Client) CreateOrder(ctx context.Context, payload SubmitPayload) (int64, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/orders/bulk", payload)
	if err != nil {
		return 0, err
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &created); err != nil {
			return 0, &NetworkError{Op: "create order", Err: err}
		}
	}
	return created.ID, nil
}

// UpdateOrder replaces an order's header and lines.
func (c *Client) UpdateOrder(ctx context.Context, id int64, payload SubmitPayload) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/bulk/%d", id), payload)
	return err
}

// DeleteOrder removes an order and its lines.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/bulk/%d", id), nil)
	return err
}

// UpdatePayment applies a payment patch and returns the updated order.
func (c *Client) UpdatePayment(ctx context.Context, id int64, req PaymentRequest) (Order, error) {
	env, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/orders/%d/payment", id), req)
	if err != nil {
		return Order{}, err
	}
	var order Order
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &order); err != nil {
			return Order{}, &NetworkError{Op: "update payment", Err: err}
		}
	}
	return order, nil
}

// getJSON handles the bare-array reference endpoints.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: "GET " + path, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return c.errorFrom(resp, "GET "+path)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &NetworkError{Op: "GET " + path, Err: err}
	}
	return nil
}

// do handles the enveloped order endpoints.
func (c *Client) do(ctx context.Context, method, path string, body any) (envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return envelope{}, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return envelope{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	op := method + " " + path
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, &NetworkError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode >= 400 || (decodeErr == nil && !env.Success) {
		return envelope{}, &NetworkError{Op: op, Status: resp.StatusCode, Message: env.Message}
	}
	if decodeErr != nil {
		return envelope{}, &NetworkError{Op: op, Status: resp.StatusCode, Err: decodeErr}
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// errorFrom extracts the backend's message so callers can show it
// verbatim; a generic status error is the fallback.
func (c *Client) errorFrom(resp *http.Response, op string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return &NetworkError{Op: op, Status: resp.StatusCode, Message: env.Message}
	}
	var problem struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(raw, &problem); err == nil && (problem.Detail != "" || problem.Title != "") {
		msg := problem.Detail
		if msg == "" {
			msg = problem.Title
		}
		return &NetworkError{Op: op, Status: resp.StatusCode, Message: msg}
	}
	return &NetworkError{Op: op, Status: resp.StatusCode}
}
