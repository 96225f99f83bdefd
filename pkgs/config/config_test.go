package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{".txt", ".qtidat"}, cfg.Extensions)
	assert.Equal(t, "standard_by_element.csv", cfg.Output.StandardByElement)
	assert.Equal(t, "summary.json", cfg.Output.Summary)
	assert.Zero(t, cfg.Workers)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("extensions: [\".dat\"]\nworkers: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{".dat"}, cfg.Extensions)
	assert.Equal(t, 2, cfg.Workers)
	// unset outputs fall back to defaults
	assert.Equal(t, "xtal_by_element.csv", cfg.Output.XtalByElement)
}

func TestParseOutputOverride(t *testing.T) {
	cfg, err := Parse([]byte("output:\n  dir: /tmp/out\n  summary: all.json\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, "all.json", cfg.Output.Summary)
	assert.Equal(t, "standard_by_element.csv", cfg.Output.StandardByElement)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("extentions: [\".dat\"]\n"))
	assert.Error(t, err)
}

func TestParseEmptyFileIsAllDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empaparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
