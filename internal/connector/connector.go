package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"inventory-dashboard-connector/internal/telemetry"
)

// tokenHeader is the header the API reads the session token from.
const tokenHeader = "x-access-token"

// Connector is the single point of contact between dashboard code and the
// remote inventory API. It translates typed calls into HTTP requests,
// normalizes the snake_case wire payloads into the domain model, and
// surfaces failures through the TransportError/RemoteError taxonomy.
//
// A Connector is stateless apart from its configuration and the shared
// TokenStore, so one instance can be handed to every consumer.
type Connector struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger
	metrics    *telemetry.ConnectorTelemetry
}

// Option configures a Connector.
type Option func(*Connector)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connector) { c.httpClient = client }
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Connector) { c.httpClient.Timeout = d }
}

// WithLogger replaces the connector's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Connector) { c.logger = logger }
}

// WithTelemetry attaches request metrics.
func WithTelemetry(metrics *telemetry.ConnectorTelemetry) Option {
	return func(c *Connector) { c.metrics = metrics }
}

// New creates a connector for the API at baseURL. The token store holds the
// session token across calls; use NewMemoryTokenStore for a per-process
// session or NewFileTokenStore to persist it.
func New(baseURL string, tokens TokenStore, opts ...Option) *Connector {
	c := &Connector{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProbeDatabase checks that the API can reach its database. Any 2xx counts
// as up.
func (c *Connector) ProbeDatabase(ctx context.Context) error {
	return c.get(ctx, "db-connectivity", "/api/db_connectivity", nil, false, nil)
}

// ProbeServer checks that the API itself is responding.
func (c *Connector) ProbeServer(ctx context.Context) error {
	return c.get(ctx, "server-connectivity", "/api/server_connectivity", nil, false, nil)
}

// intValues encodes ids as repeated occurrences of key, the array format the
// server expects (key=1&key=2, never comma-joined or bracket-indexed).
func intValues(key string, ids []int) url.Values {
	q := url.Values{}
	for _, id := range ids {
		q.Add(key, strconv.Itoa(id))
	}
	return q
}

// stringValues encodes vals as repeated occurrences of key.
func stringValues(key string, vals []string) url.Values {
	q := url.Values{}
	for _, v := range vals {
		q.Add(key, v)
	}
	return q
}

// get issues a GET request and decodes the 2xx payload into out when out is
// non-nil.
func (c *Connector) get(ctx context.Context, op, path string, query url.Values, auth bool, out any) error {
	return c.send(ctx, op, http.MethodGet, path, query, nil, auth, out)
}

// send is the single transport path every operation goes through: build the
// request, attach the session token when required, issue it once, and map
// the outcome onto the error taxonomy. No retries happen here; each call is
// attempted exactly once.
func (c *Connector) send(ctx context.Context, op, method, path string, query url.Values, body any, auth bool, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		// Read the store immediately before sending; login/logout may have
		// run since this operation was scheduled.
		token, ok := c.tokens.Token()
		if !ok {
			return fmt.Errorf("%s: no session token: %w", op, ErrUnauthenticated)
		}
		req.Header.Set(tokenHeader, token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordRequest(ctx, telemetry.RequestMetrics{
			Operation: op,
			Method:    method,
			Duration:  time.Since(start),
			ErrorKind: "transport",
		})
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordRequest(ctx, telemetry.RequestMetrics{
			Operation:  op,
			Method:     method,
			StatusCode: resp.StatusCode,
			Duration:   time.Since(start),
			ErrorKind:  "transport",
		})
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.RecordRequest(ctx, telemetry.RequestMetrics{
			Operation:  op,
			Method:     method,
			StatusCode: resp.StatusCode,
			Duration:   time.Since(start),
			ErrorKind:  "remote",
		})
		c.logger.Warn("API request rejected", "operation", op, "status", resp.StatusCode)
		return newRemoteError(op, resp.StatusCode, respBody)
	}

	c.metrics.RecordRequest(ctx, telemetry.RequestMetrics{
		Operation:  op,
		Method:     method,
		StatusCode: resp.StatusCode,
		Duration:   time.Since(start),
	})
	c.logger.Debug("API request completed", "operation", op, "status", resp.StatusCode)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
