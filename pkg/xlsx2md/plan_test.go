package xlsx2md

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

func record(kind models.RecordKind, id, parent string) *models.Record {
	return &models.Record{Kind: kind, ID: id, Parent: parent, Name: id + " name"}
}

// layout renders placements as "dir/filename" strings.
func layout(placements []models.Placement) []string {
	var result []string
	for _, p := range placements {
		result = append(result, filepath.ToSlash(filepath.Join(p.Dir, p.Filename)))
	}
	return result
}

func TestPlanLoneTestCase(t *testing.T) {
	placements := Plan(&Document{TestCase: record(models.KindTestCase, "TC1", "")})
	assert.Equal(t, []string{"index"}, layout(placements))
}

func TestPlanNoTestCase(t *testing.T) {
	doc := &Document{
		TestSpecifications:       []*models.Record{record(models.KindTestSpecification, "TS1", "")},
		ExperimentSpecifications: []*models.Record{record(models.KindExperimentSpecification, "ES1", "TS1")},
	}
	assert.Empty(t, Plan(doc))
	assert.Empty(t, Plan(nil))
}

func TestPlanPromotion(t *testing.T) {
	doc := &Document{
		TestCase: record(models.KindTestCase, "TC1", ""),
		TestSpecifications: []*models.Record{
			record(models.KindTestSpecification, "TS1", "TC1"),
			record(models.KindTestSpecification, "TS2", "TC1"),
		},
	}
	assert.Equal(t, []string{"_index", "TS1/index", "TS2/index"}, layout(Plan(doc)))

	doc.ExperimentSpecifications = []*models.Record{
		record(models.KindExperimentSpecification, "ES1", "TS2"),
		record(models.KindExperimentSpecification, "ES2", "TS2"),
	}
	assert.Equal(t, []string{"_index", "TS1/index", "TS2/_index", "TS2/ES1/index", "TS2/ES2/index"}, layout(Plan(doc)))
}

func TestPlanOrphanExperiment(t *testing.T) {
	doc := &Document{
		TestCase:           record(models.KindTestCase, "TC1", ""),
		TestSpecifications: []*models.Record{record(models.KindTestSpecification, "TS1", "TC1")},
		ExperimentSpecifications: []*models.Record{
			record(models.KindExperimentSpecification, "ES9", "TS9"),
		},
	}
	assert.Equal(t, []string{"_index", "TS1/index"}, layout(Plan(doc)))
}

func TestEnrich(t *testing.T) {
	rec := &models.Record{Kind: models.KindTestCase, ID: "TC1", Name: "User's login"}
	Enrich(rec, "2024-03-01")

	assert.Equal(t, "Test Case TC1", rec.Title)
	assert.Equal(t, "TC1", rec.LinkTitle)
	assert.Equal(t, "2024-03-01", rec.Date)
	assert.Equal(t, "User''s login", rec.Description)
	assert.Equal(t, "User's login", rec.Name)
}

func TestEscapeQuotes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain", "plain"},
		{"it's", "it''s"},
		{"''", "''''"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, EscapeQuotes(tt.input), "EscapeQuotes(%q)", tt.input)
	}
}

func TestPlanIDsSharedAcrossKinds(t *testing.T) {
	doc := &Document{
		TestCase: record(models.KindTestCase, "X1", ""),
		TestSpecifications: []*models.Record{
			record(models.KindTestSpecification, "X1", "X1"),
			record(models.KindTestSpecification, "TS2", "X1"),
		},
		ExperimentSpecifications: []*models.Record{
			record(models.KindExperimentSpecification, "TS2", "X1"),
			record(models.KindExperimentSpecification, "ES1", "TS2"),
		},
	}

	placements := Plan(doc)
	assert.Equal(t, []string{"_index", "X1/_index", "TS2/_index", "X1/TS2/index", "TS2/ES1/index"}, layout(placements))
	assert.Equal(t, models.KindTestCase, placements[0].Record.Kind)
	assert.Equal(t, models.KindExperimentSpecification, placements[3].Record.Kind)
}

func TestPlanDuplicateIDWithinKind(t *testing.T) {
	first := record(models.KindTestSpecification, "TS1", "TC1")
	second := record(models.KindTestSpecification, "TS1", "TC1")
	second.Name = "replacement"
	doc := &Document{
		TestCase:           record(models.KindTestCase, "TC1", ""),
		TestSpecifications: []*models.Record{first, second},
	}

	placements := Plan(doc)
	require.Len(t, placements, 2)
	assert.Equal(t, "replacement", placements[1].Record.Name)
}
