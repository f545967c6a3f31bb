package exchangerateHost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"service-exchangerate/internal"
	"service-exchangerate/internal/logger"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	ServiceHost  = "api.exchangerate.host"
	maxBodyBytes = 4 << 20
)

// HTTPDoer is the transport the client sends its GET requests through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	// Host is the service host name, without scheme.
	Host string

	httpClient HTTPDoer
	metrics    *Metrics

	mu      sync.RWMutex
	options internal.ServiceOptions
}

var _ internal.RequestBuilder = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(opts ...Option) *Client {
	c := &Client{
		Host: ServiceHost,
		httpClient: &http.Client{
			Timeout:   20 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) SetOptions(patch internal.OptionsPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = c.options.Merge(patch)
}

func (c *Client) Options() internal.ServiceOptions {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options
}

// URL builds the request URL. The configured access key always goes last and
// replaces any access_key the caller passed.
func (c *Client) URL(path string, params internal.QueryParams) string {
	opts := c.Options()

	q := params.Clone()
	q.Del(internal.OptionAccessKey)
	q.Set(internal.OptionAccessKey, opts.AccessKey)

	return opts.Scheme() + "://" + c.Host + "/" + path + "?" + q.Encode()
}

func (c *Client) MakeRequest(ctx context.Context, path string, params internal.QueryParams) (*internal.Envelope, error) {
	started := time.Now()
	env, status, err := c.do(ctx, path, params)
	c.metrics.observe(path, outcomeOf(err), time.Since(started))

	logger.Log.Debug().
		Str("path", path).
		Str("scheme", c.Options().Scheme()).
		Int("status", status).
		Dur("duration", time.Since(started)).
		Err(err).
		Msg("exchangerate.host request")

	return env, err
}

func (c *Client) do(ctx context.Context, path string, params internal.QueryParams) (*internal.Envelope, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(path, params), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var env internal.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("unmarshal response: %w", err)
	}

	if !env.Success {
		if env.Error == nil {
			return nil, resp.StatusCode, &internal.ServiceError{Info: "request was not successful"}
		}
		return nil, resp.StatusCode, &internal.ServiceError{
			Code: env.Error.Code,
			Type: env.Error.Type,
			Info: env.Error.Info,
		}
	}
	return &env, resp.StatusCode, nil
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("exchangerate.host http %d: %s", e.StatusCode, e.Body)
}
