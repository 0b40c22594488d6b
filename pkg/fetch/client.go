package fetch

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the per-request identifier on outbound calls.
const HeaderRequestID = "X-Request-Id"

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 30 * time.Second

// Response captures the parts of an HTTP response the scripts print.
type Response struct {
	Status    int
	Header    http.Header
	Body      []byte
	RequestID string
	Duration  time.Duration
}

// Client issues single HTTP requests. It never retries.
type Client struct {
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request deadline. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client with a pooled transport and DefaultTimeout.
func NewClient(opts ...Option) *Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	c := &Client{
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
			},
		},
		timeout: DefaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches rawURL. In JSON mode the request asks for application/json.
func (c *Client) Get(ctx context.Context, rawURL string, jsonMode bool) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, err
	}
	if jsonMode {
		req.Header.Set("Accept", "application/json")
	}
	return c.Do(ctx, req)
}

// PostForm sends form as an application/x-www-form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(ctx, req)
}

// Do executes req once and reads the whole body.
func (c *Client) Do(ctx context.Context, req *http.Request) (Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		c.logger.Debug("http request failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID, "err", err)
		return Response{RequestID: requestID, Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		return Response{RequestID: requestID, Duration: duration}, err
	}

	c.logger.Debug("http request",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", duration,
	)

	return Response{
		Status:    resp.StatusCode,
		Header:    resp.Header.Clone(),
		Body:      body,
		RequestID: requestID,
		Duration:  duration,
	}, nil
}
