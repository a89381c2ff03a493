// Package category defines the four prompt categories and the data tables
// that drive them: sample prompts, completion instructions, default
// adjectives, and which optional record fields apply. All category-specific
// behavior in the rest of the codebase is driven by these descriptors rather
// than branching on the category key.
package category

import "fmt"

// Category identifies one of the four prompt categories. The key doubles as
// the `page` tag value stored on every record.
type Category string

const (
	Vision  Category = "vision"
	Text    Category = "text"
	Image   Category = "image"
	Chatbot Category = "chatbot"
)

// All returns the categories in display order.
func All() []Category {
	return []Category{Vision, Text, Image, Chatbot}
}

// Parse validates a category key.
func Parse(s string) (Category, error) {
	switch Category(s) {
	case Vision, Text, Image, Chatbot:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Instruction is a system+user message pair for a single-turn completion.
// User is a format string with one %s slot for the teacher's input.
type Instruction struct {
	System string
	User   string
}

// Sample is one entry in a category's fixed sample-prompt table.
type Sample struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// Descriptor holds everything that varies between categories.
type Descriptor struct {
	Key   Category
	Title string

	// HasStudentView is true for categories whose saved records carry a
	// derived student-facing summary (all but Image).
	HasStudentView bool

	// HasAdjectives is true for Image, whose records carry a JSON-encoded
	// adjective list instead of a student view.
	HasAdjectives bool

	// ExamplePrompt seeds the draft when the teacher types directly.
	ExamplePrompt string

	// Draft generates a prompt from a topic (AI-assisted authoring).
	Draft Instruction

	// StudentView rewrites the final prompt for student consumption.
	// Zero value when HasStudentView is false.
	StudentView Instruction

	Samples           []Sample
	DefaultAdjectives []string
}

// Get returns the descriptor for a category.
func Get(c Category) Descriptor {
	return descriptors[c]
}

// SampleByTitle looks up a sample prompt in the category's table.
func (d Descriptor) SampleByTitle(title string) (Sample, bool) {
	for _, s := range d.Samples {
		if s.Title == title {
			return s, true
		}
	}
	return Sample{}, false
}
