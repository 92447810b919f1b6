package xlsx2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

func TestFilter(t *testing.T) {
	rec := &models.Record{Kind: models.KindTestSpecification, ID: "TS1", Name: "Happy Path", Parent: "TC1", Sheet: "Spec 1"}

	tests := []struct {
		source   string
		expected bool
	}{
		{`kind == "Test Specification"`, true},
		{`id startsWith "ES"`, false},
		{`parent == "TC1" && name contains "Happy"`, true},
		{`sheet == "Spec 2"`, false},
	}

	for _, tt := range tests {
		f, err := NewFilter(tt.source)
		require.NoError(t, err, tt.source)
		keep, err := f.Keep(rec)
		require.NoError(t, err, tt.source)
		assert.Equal(t, tt.expected, keep, tt.source)
	}
}

func TestFilterEmpty(t *testing.T) {
	f, err := NewFilter("")
	require.NoError(t, err)
	assert.Nil(t, f)

	keep, err := f.Keep(&models.Record{ID: "X"})
	require.NoError(t, err)
	assert.True(t, keep)
}

func TestFilterInvalid(t *testing.T) {
	_, err := NewFilter(`id +`)
	assert.Error(t, err)

	_, err = NewFilter(`id`)
	assert.Error(t, err, "non-bool expressions are rejected at compile time")
}
