package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
storage:
  driver: "memory"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.HTTP.UserAgent)
	assert.Equal(t, 3, cfg.Scrape.MaxPostingsPerSource)
	assert.Equal(t, 30, cfg.Scrape.ApplicationWindowDays)
	assert.Equal(t, 5, cfg.Scheduler.ScanIntervalM)
	assert.Equal(t, 60, cfg.Scheduler.RetentionDays)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	path := writeTempConfig(t, `
storage:
  driver: "postgres"
  dsn: "postgres://localhost"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}

func TestLoadConfigRequiresDSNForMSSQL(t *testing.T) {
	path := writeTempConfig(t, `
storage:
  driver: "mssql"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.dsn")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSourceCatalogBuiltIn(t *testing.T) {
	entries, err := LoadSourceCatalog("")
	require.NoError(t, err)
	assert.Len(t, entries, 25)

	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.URL)
		names[e.Name] = struct{}{}
	}
	assert.Contains(t, names, "고용노동부")
	assert.Contains(t, names, "행정안전부")
}

func TestLoadSourceCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: "외교부"
  url: "https://www.mofa.go.kr"
`), 0o644))

	entries, err := LoadSourceCatalog(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "외교부", entries[0].Name)
}

func TestLoadSourceCatalogRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: "외교부"
  url: "https://www.mofa.go.kr"
- name: "외교부"
  url: "https://other.go.kr"
`), 0o644))

	_, err := LoadSourceCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
