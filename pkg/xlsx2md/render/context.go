package render

import "github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"

// Context flattens a record into the key-value tree the templates expect.
// Optional values are always present; empty ones are falsy in mustache.
// Leaving a key out would make mustache resolve it from an enclosing
// section instead.
func Context(rec *models.Record) map[string]any {
	return map[string]any{
		"ID":          rec.ID,
		"Name":        rec.Name,
		"Parent":      rec.Parent,
		"title":       rec.Title,
		"linkTitle":   rec.LinkTitle,
		"date":        rec.Date,
		"description": rec.Description,
		"subsections": sectionsContext(rec.Sections),
	}
}

func sectionsContext(sections []models.Section) []map[string]any {
	result := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		diagrams := make([]map[string]any, 0, len(s.Diagrams))
		for _, d := range s.Diagrams {
			diagrams = append(diagrams, map[string]any{
				"diagram_name": d.Name,
				"diagram_uri":  d.URI,
			})
		}
		result = append(result, map[string]any{
			"section_title": s.Title,
			"contents":      s.Contents,
			"diagrams":      diagrams,
			"subsections":   subsectionsContext(s.Subsections),
		})
	}
	return result
}

func subsectionsContext(subsections []models.Subsection) []map[string]any {
	result := make([]map[string]any, 0, len(subsections))
	for _, s := range subsections {
		result = append(result, map[string]any{
			"section_title": s.Title,
			"contents":      s.Contents,
			"diagrams":      []map[string]any{},
			"subsections":   []map[string]any{},
		})
	}
	return result
}
