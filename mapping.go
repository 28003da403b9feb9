package facetql

// Mapping binds the filter dimensions to a concrete GraphQL schema: the
// field path each dimension filters on, the searchable name field, and
// the root fields used by the listing and aggregate queries.
type Mapping struct {
	// RootField is the listing query root (e.g. "companies").
	// REQUIRED for ListingQuery.
	RootField string

	// AggregateField is the aggregate count root (e.g. "companies_aggregate").
	// REQUIRED for CompileFacets.
	AggregateField string

	// BoolExpType is the GraphQL input type of the where argument,
	// declared for the bound $where variable of the listing query.
	BoolExpType string

	// NameField is the text field targeted by free-text search.
	NameField string

	// TypePath, SectorPath and StatusPath hold the foreign-key field of
	// each scalar dimension. TagPath traverses the tag join relation
	// (e.g. company_tags -> tag_id).
	TypePath   []string
	SectorPath []string
	StatusPath []string
	TagPath    []string

	// ListFields is the selection set of the listing query.
	ListFields []string
}

// DefaultMapping returns the stock company-directory schema binding.
func DefaultMapping() Mapping {
	return Mapping{
		RootField:      "companies",
		AggregateField: "companies_aggregate",
		BoolExpType:    "companies_bool_exp",
		NameField:      "name",
		TypePath:       []string{"type_id"},
		SectorPath:     []string{"sector_id"},
		StatusPath:     []string{"status_id"},
		TagPath:        []string{"company_tags", "tag_id"},
		ListFields:     []string{"id", "name"},
	}
}

// path returns the filter field path of one dimension.
func (m Mapping) path(d Dimension) []string {
	switch d {
	case DimensionType:
		return m.TypePath
	case DimensionSector:
		return m.SectorPath
	case DimensionStatus:
		return m.StatusPath
	case DimensionTag:
		return m.TagPath
	}
	return nil
}
