// Package filter provides boolean filter expressions for Hasura-style
// GraphQL APIs.
//
// This package enables callers to:
//   - Build strongly-typed boolean expression trees over named fields
//   - Render expressions as inline GraphQL argument literals
//   - Marshal the same expressions as JSON for bound query variables
//
// # Basic Usage
//
// Build an expression and render it inline:
//
//	expr := filter.Combine(
//	    &filter.FieldMatch{
//	        Path:  []string{"sector_id"},
//	        Op:    filter.OpIn,
//	        Value: filter.Strings([]string{"3", "7"}),
//	    },
//	    &filter.FieldMatch{
//	        Path:  []string{"name"},
//	        Op:    filter.OpILike,
//	        Value: filter.String("%solar%"),
//	    },
//	)
//
//	arg := filter.Literal(expr)
//	// { _and: [{ sector_id: { _in: ["3", "7"] } }, { name: { _ilike: "%solar%" } }] }
//
// # Combination Rules
//
// Combine collapses degenerate groups so rendered documents stay minimal:
//   - No conditions: Empty, rendered as {}
//   - One condition: the condition itself, no _and wrapper
//   - Two or more: an And group, rendered as { _and: [...] }
//
// # Serialization Equivalence
//
// Every expression marshals to JSON through the same Value tree used for
// literal rendering, so a filter passed as a bound variable matches the
// inlined form structurally. Object field order is preserved in both forms.
package filter
