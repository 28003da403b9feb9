package facetql

import (
	"strconv"
	"strings"

	"github.com/venturegraph/facetql/catalog"
	"github.com/venturegraph/facetql/filter"
)

// totalAlias names the grand-total aggregate of the facet document.
const totalAlias = "total"

// AggregateCount is the per-alias payload of a facet aggregate response.
type AggregateCount struct {
	Count int `json:"_count"`
}

// RawCounts is the flat alias-to-count mapping returned by the facet
// query, one entry per aliased aggregate field.
type RawCounts map[string]*AggregateCount

// count reads one alias, defaulting a missing or null entry to zero.
func (r RawCounts) count(alias string) int {
	if c, ok := r[alias]; ok && c != nil {
		return c.Count
	}
	return 0
}

// CountTable holds decoded facet counts: one option-id keyed mapping per
// dimension plus the grand total. Every non-placeholder catalog option
// has an entry, defaulting to zero when its alias was missing.
type CountTable struct {
	Types    map[string]int
	Sectors  map[string]int
	Statuses map[string]int
	Tags     map[string]int
	Total    int
}

// dim returns the mapping of one dimension.
func (t *CountTable) dim(d Dimension) map[string]int {
	switch d {
	case DimensionType:
		return t.Types
	case DimensionSector:
		return t.Sectors
	case DimensionStatus:
		return t.Statuses
	case DimensionTag:
		return t.Tags
	}
	return nil
}

// FacetQuery is a compiled facet count query: the document text plus the
// decoder state. The filtered option lists are computed once at compile
// time and reused by Decode, so alias generation and decoding can never
// drift apart.
type FacetQuery struct {
	// Text is the full GraphQL document, with every filter inlined as a
	// literal argument. Structurally equal inputs produce byte-identical
	// text, so Text (or QueryKey of it) is a valid cache key.
	Text string

	options [len(dimensionOrder)][]catalog.Option
}

// CompileFacets generates the cross-filtered facet count document for the
// current selection over the catalog's options.
//
// For every option O of dimension D the document carries one aliased
// aggregate whose predicate combines all other dimensions' selections and
// the search term with an equality match on O. D's own selection is left
// out, so counts show what the result set would contain if O were added,
// and picks within a dimension never suppress their siblings. A final
// "total" alias carries the full predicate over the whole selection.
//
// Placeholder options never receive an alias. An empty or nil catalog
// compiles to a document holding only the total alias.
func (b *Builder) CompileFacets(sel Selection, cat *catalog.Catalog) *FacetQuery {
	q := &FacetQuery{}
	for i, d := range dimensionOrder {
		q.options[i] = dropPlaceholders(dimensionOptions(cat, d))
	}

	var sb strings.Builder
	sb.WriteString("query FacetCounts {\n")
	for i, d := range dimensionOrder {
		for j, opt := range q.options[i] {
			conds := b.conditions(sel, d)
			conds = append(conds, &filter.FieldMatch{
				Path:  b.m.path(d),
				Op:    filter.OpEq,
				Value: filter.String(opt.ID),
			})
			b.writeAggregate(&sb, facetAlias(d, j), filter.Combine(conds...))
		}
	}
	b.writeAggregate(&sb, totalAlias, b.Predicate(sel))
	sb.WriteString("}\n")

	q.Text = sb.String()
	return q
}

// Decode converts the raw alias-to-count response into a CountTable by
// re-walking the option lists that produced the aliases. Missing or null
// aliases decode as zero; Decode never fails.
func (q *FacetQuery) Decode(raw RawCounts) CountTable {
	table := CountTable{
		Types:    make(map[string]int, len(q.options[0])),
		Sectors:  make(map[string]int, len(q.options[1])),
		Statuses: make(map[string]int, len(q.options[2])),
		Tags:     make(map[string]int, len(q.options[3])),
	}
	for i, d := range dimensionOrder {
		counts := table.dim(d)
		for j, opt := range q.options[i] {
			counts[opt.ID] = raw.count(facetAlias(d, j))
		}
	}
	table.Total = raw.count(totalAlias)
	return table
}

// facetAlias derives the alias of one option: the dimension prefix plus
// the option's position in the filtered, ordered list.
func facetAlias(d Dimension, i int) string {
	return d.String() + "_" + strconv.Itoa(i)
}

// writeAggregate appends one aliased aggregate field with its filter
// inlined as a literal argument. Inlining is what lets every alias carry
// an independent filter inside a single document.
func (b *Builder) writeAggregate(sb *strings.Builder, alias string, where filter.Expression) {
	sb.WriteString("  ")
	sb.WriteString(alias)
	sb.WriteString(": ")
	sb.WriteString(b.m.AggregateField)
	sb.WriteString("(filter_input: { where: ")
	sb.WriteString(filter.Literal(where))
	sb.WriteString(" }) { _count }\n")
}

// dimensionOptions returns the catalog's ordered option list for one
// dimension. A nil catalog has no options.
func dimensionOptions(cat *catalog.Catalog, d Dimension) []catalog.Option {
	if cat == nil {
		return nil
	}
	switch d {
	case DimensionType:
		return cat.Types
	case DimensionSector:
		return cat.Sectors
	case DimensionStatus:
		return cat.Statuses
	case DimensionTag:
		return cat.TagOptions()
	}
	return nil
}

// dropPlaceholders filters out sentinel options, preserving order.
func dropPlaceholders(opts []catalog.Option) []catalog.Option {
	kept := make([]catalog.Option, 0, len(opts))
	for _, o := range opts {
		if o.Placeholder() {
			continue
		}
		kept = append(kept, o)
	}
	return kept
}
