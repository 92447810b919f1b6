package xlsx2md

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "templates", opts.TemplateDir)
	assert.Equal(t, "md", opts.Extension)
	assert.NoError(t, opts.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xlsx2md.yaml")
	require.NoError(t, os.WriteFile(path, []byte("templates: /srv/tpl\nfilter: kind == \"Test Case\"\ndate: \"2024-03-01\"\n"), 0o644))

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/tpl", opts.TemplateDir)
	assert.Equal(t, "md", opts.Extension, "unset keys keep defaults")
	assert.Equal(t, `kind == "Test Case"`, opts.Filter)
	assert.Equal(t, "2024-03-01", opts.Date)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("date: 01/03/2024\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("templates: [\n"), 0o644))
	_, err = LoadConfig(broken)
	assert.Error(t, err)
}

func TestRunDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	mtime := time.Date(2023, 11, 5, 12, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	date, err := DefaultOptions().RunDate(path)
	require.NoError(t, err)
	assert.Equal(t, "2023-11-05", date)

	opts := DefaultOptions()
	opts.Date = "2024-01-02"
	date, err = opts.RunDate(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", date)
}
