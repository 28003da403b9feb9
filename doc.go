// Package facetql compiles filter selections into Hasura-style GraphQL
// where-expressions and cross-filtered facet count queries.
//
// The package turns a user's filter choices (type, sector, status, tag,
// free-text search) into:
//   - A boolean where-expression for the primary listing query, passed as
//     a bound variable
//   - A single aggregate document that counts, for every option of every
//     dimension, the results that option would match if added to the
//     current selection, plus a grand total
//   - A decoder that maps the flat aliased count response back into a
//     dimension-keyed count table
//
// Both compilers are pure: no I/O, no shared state, safe for concurrent
// use. Structurally equal inputs always produce byte-identical query text,
// so external caches can key on the document (see QueryKey).
//
// # Quick Start
//
//	b := facetql.NewBuilder(nil)
//	sel := facetql.Selection{Types: []string{"2"}, Search: "solar"}
//
//	// Primary listing query, where-expression bound as $where.
//	doc, vars := b.ListingQuery(sel, 25, 0)
//	data, err := client.Execute(ctx, doc, vars)
//
//	// Cross-filtered facet counts.
//	q := b.CompileFacets(sel, cat)
//	table, err := facetql.FetchCounts(ctx, client, q)
//	fmt.Println(table.Sectors["3"], table.Total)
//
// The transport package provides the HTTP client, and the catalog package
// loads and snapshots the option catalog the facet compiler enumerates.
package facetql
