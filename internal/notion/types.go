package notion

// Page is a Notion page: one stored record.
type Page struct {
	ID         string              `json:"id"`
	Archived   bool                `json:"archived"`
	Properties map[string]Property `json:"properties"`
}

// Property is a page property. Only rich_text properties are used here.
type Property struct {
	RichText []RichText `json:"rich_text"`
}

// RichText is one span of a rich_text property.
type RichText struct {
	Text TextContent `json:"text"`
}

// TextContent holds the plain content of a rich_text span.
type TextContent struct {
	Content string `json:"content"`
}

// TextProperty builds a single-span rich_text property from a string.
func TextProperty(content string) Property {
	return Property{
		RichText: []RichText{{Text: TextContent{Content: content}}},
	}
}

// Text returns the concatenated plain text of a named property, or empty
// if the property is absent.
func (p Page) Text(name string) string {
	prop, ok := p.Properties[name]
	if !ok {
		return ""
	}
	var out string
	for _, rt := range prop.RichText {
		out += rt.Text.Content
	}
	return out
}

// HasProperty reports whether the page carries a named property with at
// least one text span.
func (p Page) HasProperty(name string) bool {
	prop, ok := p.Properties[name]
	return ok && len(prop.RichText) > 0
}
