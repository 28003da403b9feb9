package facetql

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// Executor runs a GraphQL document against an endpoint and returns the
// response data payload, or an error on transport or protocol failure.
// *transport.Client satisfies it.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error)
}

// FetchCounts executes a compiled facet query and decodes the response.
// Transport and protocol failures pass through unwrapped so callers can
// match the transport package's error types.
func FetchCounts(ctx context.Context, ex Executor, q *FacetQuery) (CountTable, error) {
	data, err := ex.Execute(ctx, q.Text, nil)
	if err != nil {
		return CountTable{}, err
	}

	var raw RawCounts
	if err := json.Unmarshal(data, &raw); err != nil {
		return CountTable{}, fmt.Errorf("decode facet counts: %w", err)
	}
	return q.Decode(raw), nil
}
