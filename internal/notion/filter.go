package notion

// Filter is a database query filter. Either And is set (compound) or
// Property+RichText are set (single equality condition).
type Filter struct {
	And      []Filter       `json:"and,omitempty"`
	Property string         `json:"property,omitempty"`
	RichText *TextCondition `json:"rich_text,omitempty"`
}

// TextCondition is an equality match on a rich_text property.
type TextCondition struct {
	Equals string `json:"equals"`
}

// TextEquals builds an equality filter on a rich_text property.
func TextEquals(property, value string) Filter {
	return Filter{
		Property: property,
		RichText: &TextCondition{Equals: value},
	}
}

// And combines filters into a conjunction. A single filter is returned
// unwrapped; Notion rejects an `and` with fewer than two conditions.
func And(filters ...Filter) *Filter {
	switch len(filters) {
	case 0:
		return nil
	case 1:
		return &filters[0]
	}
	return &Filter{And: filters}
}
