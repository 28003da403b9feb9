package catalog

import "github.com/venturegraph/facetql/internal/serialize"

// Snapshot encodes the catalog as compressed MessagePack so a caller can
// persist the long-lived option lists between sessions.
func (c *Catalog) Snapshot() ([]byte, error) {
	return serialize.Encode(c)
}

// FromSnapshot restores a catalog produced by Snapshot.
func FromSnapshot(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := serialize.Decode(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
