// Package transport executes GraphQL documents over HTTP against a
// Hasura-style endpoint. It carries no query logic: callers hand it
// compiled document text plus variables and receive the raw data payload
// or a typed failure.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Config contains configuration for the GraphQL client.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	// REQUIRED: MUST be non-empty.
	Endpoint string

	// Headers are added to every request, e.g. x-hasura-admin-secret.
	// OPTIONAL.
	Headers map[string]string

	// HTTPClient performs the requests.
	// OPTIONAL: Uses http.DefaultClient if nil.
	HTTPClient *http.Client

	// Logger for request logging.
	// OPTIONAL: Uses slog.Default() if nil.
	Logger *slog.Logger
}

// ErrMissingEndpoint indicates Config validation failed.
var ErrMissingEndpoint = errors.New("transport: endpoint is required")

// Error reports errors returned in the GraphQL response body. The
// request reached the endpoint; the server rejected the document.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// StatusError reports a non-success HTTP response with no usable
// GraphQL envelope.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "graphql: unexpected status " + strconv.Itoa(e.Code)
}

// Client executes GraphQL documents against a single endpoint.
// Safe for concurrent use.
type Client struct {
	endpoint string
	headers  map[string]string
	httpc    *http.Client
	log      *slog.Logger
}

// New creates a client from the config.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: cfg.Endpoint,
		headers:  cfg.Headers,
		httpc:    httpc,
		log:      logger,
	}, nil
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

type responseError struct {
	Message string `json:"message"`
}

// Execute posts the document and returns the raw data payload.
// GraphQL-level failures return *Error with the upstream messages; HTTP
// failures return *StatusError or the wrapped client error. Execute does
// not retry.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("transport: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.log.DebugContext(ctx, "executing graphql document", "endpoint", c.endpoint, "bytes", len(body))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("transport: decode response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, &Error{Messages: msgs}
	}
	return []byte(parsed.Data), nil
}
