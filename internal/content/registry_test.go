package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocale(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en.json", `{"hero_title": "Time your sprints", "cta": "Download"}`)
	writeLocale(t, dir, "no.json", `{"hero_title": "Ta tiden på sprintene dine"}`)
	writeLocale(t, dir, "notes.txt", "ignored")

	reg, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "no"}, reg.Locales())
	assert.True(t, reg.Has("no"))
	assert.False(t, reg.Has("de"))
}

func TestTranslateFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "en.json", `{"hero_title": "Time your sprints", "cta": "Download"}`)
	writeLocale(t, dir, "no.json", `{"hero_title": "Ta tiden på sprintene dine"}`)

	reg, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "Ta tiden på sprintene dine", reg.T("no", "hero_title"))
	// Missing key falls back to the default locale.
	assert.Equal(t, "Download", reg.T("no", "cta"))
	// Unknown locale falls back entirely.
	assert.Equal(t, "Time your sprints", reg.T("de", "hero_title"))
	// Unknown key everywhere returns the key itself.
	assert.Equal(t, "missing_key", reg.T("en", "missing_key"))
}

func TestLoadDirRequiresDefaultLocale(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "no.json", `{"hero_title": "Ta tiden"}`)

	_, err := LoadDir(dir)
	assert.Error(t, err)
}
