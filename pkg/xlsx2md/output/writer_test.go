package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

func TestWrite(t *testing.T) {
	root := t.TempDir()
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)

	require.NoError(t, os.WriteFile(filepath.Join(root, "_index.md"), []byte("stale"), 0o644))

	w := &Writer{Root: root, Log: logger}
	written, err := w.Write([]models.OutputFile{
		{Dir: "", Filename: "_index", Ext: "md", Content: "root"},
		{Dir: "TS1", Filename: "_index", Ext: "md", Content: "spec"},
		{Dir: filepath.Join("TS1", "ES1"), Filename: "index", Ext: "md", Content: "exp"},
	})
	require.NoError(t, err)
	assert.Len(t, written, 3)

	for path, content := range map[string]string{
		"_index.md":        "root",
		"TS1/_index.md":    "spec",
		"TS1/ES1/index.md": "exp",
	} {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
		require.NoError(t, err)
		assert.Equal(t, content, string(data), path)
	}
	assert.Contains(t, logs.String(), "ES1")
}

func TestWriteFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "TS1")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	w := &Writer{Root: root, Log: logrus.New()}
	written, err := w.Write([]models.OutputFile{
		{Filename: "index", Ext: "md", Content: "root"},
		{Dir: "TS1", Filename: "index", Ext: "md", Content: "spec"},
		{Dir: "TS2", Filename: "index", Ext: "md", Content: "never"},
	})

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, blocker, werr.Path)
	assert.Equal(t, []string{filepath.Join(root, "index.md")}, written)
	assert.NoFileExists(t, filepath.Join(root, "TS2", "index.md"))
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = ToJSON([]models.Placement{{
		Record:   &models.Record{Kind: models.KindTestCase, ID: "TC1", Sections: []models.Section{}},
		Filename: "index",
	}}, true)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "TC1"`)
	assert.Contains(t, string(data), `"filename": "index"`)
}
