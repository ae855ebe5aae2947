// Package client talks to the nursery REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// TokenSource yields the current bearer token, or "" when signed out.
type TokenSource func() string

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      TokenSource
	Log        zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout bounds every request. Without it requests have no deadline
// beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTPClient = &http.Client{Timeout: d}
		}
	}
}

func WithToken(ts TokenSource) Option {
	return func(c *Client) { c.Token = ts }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.Log = l }
}

// UseToken swaps the token source after construction, for callers whose
// session store itself wraps the client.
func (c *Client) UseToken(ts TokenSource) {
	c.Token = ts
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type ordersEnvelope struct {
	Orders []types.Order `json:"orders"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Debug().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.Log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Message != "" {
			return &APIError{Status: status, Message: eb.Message}
		}
		if eb.Error != "" {
			return &APIError{Status: status, Message: eb.Error}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" || strings.HasPrefix(msg, "{") {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) Login(ctx context.Context, p types.LoginPayload) (types.AuthResult, error) {
	var env dataEnvelope[types.AuthResult]
	err := c.sendJSON(ctx, http.MethodPost, EndpointLogin, p, &env)
	return env.Data, err
}

// Register posts the signup form as multipart/form-data.
func (c *Client) Register(ctx context.Context, p types.SignupPayload) (types.AuthResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"email", p.Email},
		{"mobile", p.Mobile},
		{"ward", p.Address.Ward},
		{"name", p.Name},
		{"password", p.Password},
		{"pinCode", p.Address.PinCode},
		{"area", p.Address.Area},
		{"city", p.Address.City},
		{"state", p.Address.State},
		{"country", p.Address.Country},
		{"latitude", strconv.FormatFloat(p.Location.Latitude, 'f', -1, 64)},
		{"longitude", strconv.FormatFloat(p.Location.Longitude, 'f', -1, 64)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return types.AuthResult{}, fmt.Errorf("encode signup form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return types.AuthResult{}, fmt.Errorf("encode signup form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, EndpointSignup, &buf, w.FormDataContentType())
	if err != nil {
		return types.AuthResult{}, err
	}
	var env dataEnvelope[types.AuthResult]
	err = c.do(req, &env)
	return env.Data, err
}

func (c *Client) Categories(ctx context.Context) ([]types.APICategory, error) {
	var env dataEnvelope[[]types.APICategory]
	err := c.getJSON(ctx, EndpointCategories, &env)
	return env.Data, err
}

func (c *Client) Items(ctx context.Context) ([]types.Plant, error) {
	var env dataEnvelope[[]types.Plant]
	err := c.getJSON(ctx, EndpointItems, &env)
	return env.Data, err
}

func (c *Client) CreateOrder(ctx context.Context, r types.CreateOrderRequest) (types.Order, error) {
	var env dataEnvelope[types.Order]
	err := c.sendJSON(ctx, http.MethodPost, EndpointCreate, r, &env)
	return env.Data, err
}

// MyOrders reads the "orders" key, unlike every other endpoint.
func (c *Client) MyOrders(ctx context.Context) ([]types.Order, error) {
	var env ordersEnvelope
	err := c.getJSON(ctx, EndpointMyOrders, &env)
	return env.Orders, err
}

func (c *Client) OrderByID(ctx context.Context, id string) (types.Order, error) {
	var env dataEnvelope[types.Order]
	err := c.getJSON(ctx, orderPath(id), &env)
	return env.Data, err
}

func (c *Client) CancelOrder(ctx context.Context, id string) (types.Order, error) {
	var env dataEnvelope[types.Order]
	err := c.sendJSON(ctx, http.MethodPatch, cancelPath(id), struct{}{}, &env)
	return env.Data, err
}
