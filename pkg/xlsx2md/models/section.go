// Package models defines data structures for test-documentation extraction.
package models

// DiagramRef represents an image asset referenced from a section.
type DiagramRef struct {
	// Name is the display name from the diagram table.
	Name string `json:"name"`
	// URI is the asset path, prefixed with the record's root path.
	URI string `json:"uri"`
}

// Subsection represents a labeled, non-bold field within a section.
type Subsection struct {
	// Title is the label from column B.
	Title string `json:"title"`
	// Contents is the value to the right of the label.
	Contents string `json:"contents,omitempty"`
}

// Section represents a block opened by a bold header cell.
type Section struct {
	// Title is the bold header text.
	Title string `json:"title"`
	// Contents is the inline value or the value of a "Description" row.
	// Empty when the header's value slot is a placeholder.
	Contents string `json:"contents,omitempty"`
	// Diagrams contains the resolved "Diagram reference" entries.
	Diagrams []DiagramRef `json:"diagrams,omitempty"`
	// Subsections contains labeled fields in row order.
	Subsections []Subsection `json:"subsections,omitempty"`
}
