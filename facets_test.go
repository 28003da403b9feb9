package facetql

import (
	"strings"
	"testing"

	"github.com/venturegraph/facetql/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Types: []catalog.Option{
			{ID: "1", Name: "Startup"},
			{ID: "2", Name: "Scaleup"},
		},
		Sectors: []catalog.Option{
			{ID: "3", Name: "Energy"},
		},
	}
}

func TestCompileFacetsAliases(t *testing.T) {
	b := NewBuilder(nil)

	q := b.CompileFacets(Selection{Types: []string{"2"}}, testCatalog())

	for _, alias := range []string{"type_0:", "type_1:", "sector_0:", "total:"} {
		if !strings.Contains(q.Text, alias) {
			t.Errorf("expected alias %q in document:\n%s", alias, q.Text)
		}
	}
	for _, alias := range []string{"status_0:", "tag_0:", "type_2:", "sector_1:"} {
		if strings.Contains(q.Text, alias) {
			t.Errorf("unexpected alias %q in document:\n%s", alias, q.Text)
		}
	}
}

func TestCompileFacetsDocumentShape(t *testing.T) {
	b := NewBuilder(nil)

	q := b.CompileFacets(Selection{}, &catalog.Catalog{
		Types: []catalog.Option{{ID: "1", Name: "Startup"}},
	})

	expected := "query FacetCounts {\n" +
		"  type_0: companies_aggregate(filter_input: { where: { type_id: { _eq: \"1\" } } }) { _count }\n" +
		"  total: companies_aggregate(filter_input: { where: {} }) { _count }\n" +
		"}\n"
	if q.Text != expected {
		t.Errorf("expected document:\n%s\ngot:\n%s", expected, q.Text)
	}
}

func TestCompileFacetsCrossFiltering(t *testing.T) {
	b := NewBuilder(nil)

	q := b.CompileFacets(Selection{Types: []string{"A"}, Sectors: []string{"B"}}, testCatalog())

	lines := strings.Split(q.Text, "\n")
	var sectorLine, typeLine string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "sector_0:") {
			sectorLine = l
		}
		if strings.HasPrefix(strings.TrimSpace(l), "type_0:") {
			typeLine = l
		}
	}
	if sectorLine == "" || typeLine == "" {
		t.Fatalf("missing aliases in document:\n%s", q.Text)
	}

	// A sector facet keeps the types membership predicate but replaces
	// the sector selection with per-option equality.
	if !strings.Contains(sectorLine, `type_id: { _in: ["A"] }`) {
		t.Errorf("sector facet must keep the types predicate: %s", sectorLine)
	}
	if strings.Contains(sectorLine, `sector_id: { _in:`) {
		t.Errorf("sector facet must not include the sector membership predicate: %s", sectorLine)
	}
	if !strings.Contains(sectorLine, `sector_id: { _eq: "3" }`) {
		t.Errorf("sector facet must test equality on the option id: %s", sectorLine)
	}

	// Symmetrically for the type facets.
	if strings.Contains(typeLine, `type_id: { _in:`) {
		t.Errorf("type facet must not include the type membership predicate: %s", typeLine)
	}
	if !strings.Contains(typeLine, `sector_id: { _in: ["B"] }`) {
		t.Errorf("type facet must keep the sectors predicate: %s", typeLine)
	}
}

func TestCompileFacetsSearchAppliesToAllDimensions(t *testing.T) {
	b := NewBuilder(nil)

	q := b.CompileFacets(Selection{Search: "sol"}, testCatalog())

	for _, l := range strings.Split(q.Text, "\n") {
		trimmed := strings.TrimSpace(l)
		if !strings.Contains(trimmed, ": companies_aggregate(") {
			continue
		}
		if strings.HasPrefix(trimmed, "total:") {
			continue
		}
		if !strings.Contains(l, `name: { _ilike: "%sol%" }`) {
			t.Errorf("facet alias missing search predicate: %s", l)
		}
	}
}

func TestCompileFacetsPlaceholderExclusion(t *testing.T) {
	b := NewBuilder(nil)

	cat := &catalog.Catalog{
		Types: []catalog.Option{
			{ID: "1", Name: " "},
			{ID: "2", Name: "0"},
			{ID: "3", Name: "Startup"},
		},
	}
	q := b.CompileFacets(Selection{}, cat)

	// Only the one real option gets an alias, at index 0.
	if !strings.Contains(q.Text, `type_0: companies_aggregate(filter_input: { where: { type_id: { _eq: "3" } } })`) {
		t.Errorf("expected alias for the non-placeholder option:\n%s", q.Text)
	}
	if strings.Contains(q.Text, "type_1:") {
		t.Errorf("placeholder options must not receive aliases:\n%s", q.Text)
	}

	table := q.Decode(RawCounts{"type_0": {Count: 4}})
	if len(table.Types) != 1 {
		t.Fatalf("expected 1 type entry, got %d", len(table.Types))
	}
	if table.Types["3"] != 4 {
		t.Errorf("expected types[3]=4, got %d", table.Types["3"])
	}
	if _, ok := table.Types["1"]; ok {
		t.Error("placeholder option must not appear in the count table")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	b := NewBuilder(nil)

	cat := &catalog.Catalog{
		Types: []catalog.Option{
			{ID: "1", Name: "A"},
			{ID: "2", Name: "B"},
		},
	}
	q := b.CompileFacets(Selection{Sectors: []string{"9"}}, cat)

	table := q.Decode(RawCounts{
		"type_0": {Count: 5},
		"type_1": {Count: 0},
		"total":  {Count: 7},
	})

	if table.Types["1"] != 5 || table.Types["2"] != 0 {
		t.Errorf("expected types {1:5 2:0}, got %v", table.Types)
	}
	if table.Total != 7 {
		t.Errorf("expected total 7, got %d", table.Total)
	}
	if len(table.Sectors) != 0 || len(table.Statuses) != 0 || len(table.Tags) != 0 {
		t.Errorf("expected empty maps for catalog-less dimensions, got %v", table)
	}
}

func TestDecodeMissingAliasDefaultsToZero(t *testing.T) {
	b := NewBuilder(nil)

	cat := &catalog.Catalog{
		Types: []catalog.Option{
			{ID: "1", Name: "A"},
			{ID: "2", Name: "B"},
		},
	}
	q := b.CompileFacets(Selection{}, cat)

	table := q.Decode(RawCounts{
		"type_0": {Count: 5},
		"total":  nil, // null count
	})

	if got, ok := table.Types["2"]; !ok || got != 0 {
		t.Errorf("expected types[2]=0 for missing alias, got %d (present=%v)", got, ok)
	}
	if table.Total != 0 {
		t.Errorf("expected total 0 for null alias, got %d", table.Total)
	}
}

func TestDecodeNilResponse(t *testing.T) {
	b := NewBuilder(nil)

	q := b.CompileFacets(Selection{}, testCatalog())
	table := q.Decode(nil)

	if table.Types["1"] != 0 || table.Types["2"] != 0 || table.Sectors["3"] != 0 {
		t.Errorf("expected all-zero table, got %v", table)
	}
	if table.Total != 0 {
		t.Errorf("expected total 0, got %d", table.Total)
	}
}

func TestCompileFacetsEmptyCatalog(t *testing.T) {
	b := NewBuilder(nil)

	for _, cat := range []*catalog.Catalog{nil, {}} {
		q := b.CompileFacets(Selection{Types: []string{"2"}}, cat)

		expected := "query FacetCounts {\n" +
			"  total: companies_aggregate(filter_input: { where: { type_id: { _in: [\"2\"] } } }) { _count }\n" +
			"}\n"
		if q.Text != expected {
			t.Errorf("expected total-only document, got:\n%s", q.Text)
		}
	}
}

func TestCompileFacetsTagJoinPath(t *testing.T) {
	b := NewBuilder(nil)

	cat := &catalog.Catalog{
		Tags: []catalog.Tag{
			{Option: catalog.Option{ID: "9", Name: "Solar"}, Category: &catalog.Option{ID: "c1", Name: "Tech"}},
		},
	}
	q := b.CompileFacets(Selection{}, cat)

	if !strings.Contains(q.Text, `tag_0: companies_aggregate(filter_input: { where: { company_tags: { tag_id: { _eq: "9" } } } })`) {
		t.Errorf("expected tag facet through the join relation:\n%s", q.Text)
	}

	table := q.Decode(RawCounts{"tag_0": {Count: 2}})
	if table.Tags["9"] != 2 {
		t.Errorf("expected tags[9]=2, got %d", table.Tags["9"])
	}
}

func TestCompileFacetsDeterministic(t *testing.T) {
	b := NewBuilder(nil)
	sel := Selection{Types: []string{"2"}, Tags: []string{"9"}, Search: "sol"}

	first := b.CompileFacets(sel, testCatalog())
	second := b.CompileFacets(sel, testCatalog())

	if first.Text != second.Text {
		t.Error("structurally equal inputs must produce byte-identical documents")
	}
	if QueryKey(first.Text) != QueryKey(second.Text) {
		t.Error("expected identical cache keys for identical documents")
	}
}

func TestQueryKeyDistinguishesDocuments(t *testing.T) {
	if QueryKey("a") == QueryKey("b") {
		t.Error("expected different keys for different documents")
	}
	if len(QueryKey("a")) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(QueryKey("a")))
	}
}
