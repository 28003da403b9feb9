package facetql

import "strings"

// ListingQuery returns the primary listing document and its variables.
// Unlike the facet document, the where-expression travels as the bound
// $where variable, so the document text is constant across selections
// and the expression reuses its JSON form.
func (b *Builder) ListingQuery(sel Selection, limit, offset int) (string, map[string]any) {
	var sb strings.Builder
	sb.WriteString("query Listing($where: ")
	sb.WriteString(b.m.BoolExpType)
	sb.WriteString(", $limit: Int, $offset: Int) {\n  ")
	sb.WriteString(b.m.RootField)
	sb.WriteString("(where: $where, limit: $limit, offset: $offset) {\n")
	for _, f := range b.m.ListFields {
		sb.WriteString("    ")
		sb.WriteString(f)
		sb.WriteByte('\n')
	}
	sb.WriteString("  }\n}\n")

	vars := map[string]any{
		"where":  b.Predicate(sel),
		"limit":  limit,
		"offset": offset,
	}
	return sb.String(), vars
}
