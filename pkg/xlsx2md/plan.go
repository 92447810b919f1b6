package xlsx2md

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// Output file base names.
const (
	// LeafIndex names the document of a node without children.
	LeafIndex = "index"
	// BranchIndex names the document of a node with children.
	BranchIndex = "_index"
)

// Plan assigns every record of doc a place in the output tree. Nothing is
// placed when the document has no Test Case. Experiment Specifications
// whose parent is not a placed Test Specification are dropped.
func Plan(doc *Document) []models.Placement {
	if doc == nil || doc.TestCase == nil {
		return nil
	}

	// Placements are keyed per kind, so ids only collide within a kind.
	type key struct {
		kind models.RecordKind
		dir  string
	}
	var order []key
	byKey := make(map[key]*models.Placement)
	place := func(p models.Placement) {
		k := key{kind: p.Record.Kind, dir: p.Dir}
		if _, dup := byKey[k]; dup {
			logrus.WithFields(logrus.Fields{
				"kind":  p.Record.Kind,
				"id":    p.Record.ID,
				"sheet": p.Record.Sheet,
			}).Warn("duplicate record id, later sheet replaces earlier one")
		} else {
			order = append(order, k)
		}
		byKey[k] = &p
	}

	root := models.Placement{Record: doc.TestCase, Filename: LeafIndex}
	if len(doc.TestSpecifications) > 0 {
		root.Filename = BranchIndex
	}
	place(root)

	specs := make(map[string]bool)
	for _, ts := range doc.TestSpecifications {
		place(models.Placement{Record: ts, Dir: ts.ID, Filename: LeafIndex})
		specs[ts.ID] = true
	}

	for _, es := range doc.ExperimentSpecifications {
		if !specs[es.Parent] {
			logrus.WithFields(logrus.Fields{
				"id":     es.ID,
				"parent": es.Parent,
				"sheet":  es.Sheet,
			}).Debug("parent Test Specification not found, dropping experiment")
			continue
		}
		byKey[key{kind: models.KindTestSpecification, dir: es.Parent}].Filename = BranchIndex
		place(models.Placement{Record: es, Dir: filepath.Join(es.Parent, es.ID), Filename: LeafIndex})
	}

	placements := make([]models.Placement, 0, len(order))
	for _, k := range order {
		placements = append(placements, *byKey[k])
	}
	return placements
}

// Enrich fills the header fields of rec. Header values are quote-escaped
// for single-quoted front matter.
func Enrich(rec *models.Record, date string) {
	rec.Title = EscapeQuotes(string(rec.Kind) + " " + rec.ID)
	rec.LinkTitle = EscapeQuotes(rec.ID)
	rec.Date = EscapeQuotes(date)
	rec.Description = EscapeQuotes(rec.Name)
}

// EscapeQuotes doubles single quotes.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
