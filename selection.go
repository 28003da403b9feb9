package facetql

import "strings"

// Dimension identifies one filterable axis of the listing.
type Dimension int

const (
	DimensionType Dimension = iota
	DimensionSector
	DimensionStatus
	DimensionTag
)

// dimensionNone marks "no dimension excluded" in cross-filter assembly.
const dimensionNone Dimension = -1

// dimensionOrder fixes the traversal order for predicate assembly and
// alias generation. Query-text determinism depends on it, so selections
// and catalogs are always walked through this array, never through a map.
var dimensionOrder = [...]Dimension{DimensionType, DimensionSector, DimensionStatus, DimensionTag}

// String returns the dimension's alias prefix.
func (d Dimension) String() string {
	switch d {
	case DimensionType:
		return "type"
	case DimensionSector:
		return "sector"
	case DimensionStatus:
		return "status"
	case DimensionTag:
		return "tag"
	}
	return "unknown"
}

// Selection is the user's current filter choice. Slice fields hold opaque
// option identifiers in click order; duplicates are harmless and kept.
// Nil or empty slices and whitespace-only search contribute no predicate.
// Selections are read by the compilers, never mutated.
type Selection struct {
	Types    []string
	Sectors  []string
	Statuses []string
	Tags     []string
	Search   string
}

// ids returns the identifiers selected in one dimension.
func (s Selection) ids(d Dimension) []string {
	switch d {
	case DimensionType:
		return s.Types
	case DimensionSector:
		return s.Sectors
	case DimensionStatus:
		return s.Statuses
	case DimensionTag:
		return s.Tags
	}
	return nil
}

// searchTerm returns the trimmed free-text search, or "" when absent.
func (s Selection) searchTerm() string {
	return strings.TrimSpace(s.Search)
}
