package catalog

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// Executor runs a GraphQL document and returns the response data payload.
// *transport.Client satisfies it.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error)
}

// metadataQuery fetches every dimension's option list in one shot.
const metadataQuery = `query FilterCatalog {
  types { id name }
  sectors { id name }
  statuses { id name }
  tags { id name category { id name } }
}`

// Load fetches the whole option catalog once. The result is long-lived
// and read-only; callers decide when to refresh by calling Load again.
func Load(ctx context.Context, ex Executor) (*Catalog, error) {
	data, err := ex.Execute(ctx, metadataQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch filter catalog: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode filter catalog: %w", err)
	}
	return &cat, nil
}
