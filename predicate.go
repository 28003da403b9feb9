package facetql

import "github.com/venturegraph/facetql/filter"

// Builder compiles filter selections into where-expressions and facet
// count queries for one schema mapping. Builders hold no mutable state
// and are safe for concurrent use.
type Builder struct {
	m Mapping
}

// NewBuilder creates a builder for the given schema mapping.
// If m is nil, DefaultMapping is used.
func NewBuilder(m *Mapping) *Builder {
	if m == nil {
		return &Builder{m: DefaultMapping()}
	}
	return &Builder{m: *m}
}

// Predicate converts a selection into a single boolean where-expression.
// The function is total: any Selection value yields a valid expression,
// and an empty selection yields filter.Empty. Conditions appear in the
// fixed dimension order (type, sector, status, tag, search) and collapse
// per filter.Combine, so equal selections render identically.
func (b *Builder) Predicate(sel Selection) filter.Expression {
	return filter.Combine(b.conditions(sel, dimensionNone)...)
}

// conditions collects one membership condition per active dimension in
// the fixed dimension order, then the search condition. skip excludes one
// dimension's own selection, which is how facet counts stay visible for
// options the user has not picked yet.
func (b *Builder) conditions(sel Selection, skip Dimension) []filter.Expression {
	var conds []filter.Expression
	for _, d := range dimensionOrder {
		if d == skip {
			continue
		}
		ids := sel.ids(d)
		if len(ids) == 0 {
			continue
		}
		conds = append(conds, &filter.FieldMatch{
			Path:  b.m.path(d),
			Op:    filter.OpIn,
			Value: filter.Strings(ids),
		})
	}
	if term := sel.searchTerm(); term != "" {
		conds = append(conds, &filter.FieldMatch{
			Path:  []string{b.m.NameField},
			Op:    filter.OpILike,
			Value: filter.String("%" + term + "%"),
		})
	}
	return conds
}
