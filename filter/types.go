package filter

// Operator identifies a field comparison operator in the Hasura-style
// boolean expression grammar.
type Operator string

const (
	// OpEq matches a field equal to a single value.
	OpEq Operator = "_eq"
	// OpIn matches a field contained in a set of values.
	OpIn Operator = "_in"
	// OpILike matches a text field against a case-insensitive pattern.
	OpILike Operator = "_ilike"
)

// Expression is the interface implemented by all filter expression nodes.
// Use type assertions or type switches to access specific node data.
type Expression interface {
	// Render returns the expression as a Value ready for literal
	// rendering or JSON marshaling.
	Render() Value

	// expressionMarker is a marker method to prevent external implementation.
	expressionMarker()
}

// Empty is the expression that matches everything. It renders as the
// empty object literal.
type Empty struct{}

// Render returns the empty object.
func (Empty) Render() Value { return Object() }

func (Empty) expressionMarker() {}

// MarshalJSON serializes the empty match as {}.
func (e Empty) MarshalJSON() ([]byte, error) { return e.Render().MarshalJSON() }

// FieldMatch is a single comparison of a field against a value.
// Path holds the field path from the query root; paths longer than one
// element traverse nested relations (e.g. company_tags -> tag_id).
type FieldMatch struct {
	Path  []string
	Op    Operator
	Value Value
}

// Render nests the operator object under the field path, innermost first.
func (m *FieldMatch) Render() Value {
	v := Object(ObjectField{Key: string(m.Op), Value: m.Value})
	for i := len(m.Path) - 1; i >= 0; i-- {
		v = Object(ObjectField{Key: m.Path[i], Value: v})
	}
	return v
}

func (*FieldMatch) expressionMarker() {}

// MarshalJSON serializes the match for bound-variable payloads.
func (m *FieldMatch) MarshalJSON() ([]byte, error) { return m.Render().MarshalJSON() }

// And is a conjunction of two or more sub-expressions. Construct groups
// through Combine, which maintains the arity invariant: an And never
// wraps zero or one children.
type And struct {
	Children []Expression
}

// Render returns the { _and: [...] } form with children in order.
func (a *And) Render() Value {
	items := make([]Value, 0, len(a.Children))
	for _, c := range a.Children {
		items = append(items, c.Render())
	}
	return Object(ObjectField{Key: "_and", Value: List(items...)})
}

func (*And) expressionMarker() {}

// MarshalJSON serializes the conjunction for bound-variable payloads.
func (a *And) MarshalJSON() ([]byte, error) { return a.Render().MarshalJSON() }

// Combine conjoins expressions, collapsing degenerate groups:
// no conditions yield Empty, a single condition is returned bare, and
// two or more are wrapped in an And. Nil and Empty inputs are skipped.
func Combine(exprs ...Expression) Expression {
	kept := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		switch e.(type) {
		case nil, Empty, *Empty:
			continue
		}
		kept = append(kept, e)
	}
	switch len(kept) {
	case 0:
		return Empty{}
	case 1:
		return kept[0]
	}
	return &And{Children: kept}
}

// Literal renders an expression in the inline GraphQL argument syntax.
// A nil expression renders as the empty object.
func Literal(e Expression) string {
	if e == nil {
		return Object().Literal()
	}
	return e.Render().Literal()
}
