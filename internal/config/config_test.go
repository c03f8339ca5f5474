package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "docsync.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Empty(t, cfg.Scanner.Exclude)
	assert.Equal(t, ".docsync.log", cfg.Log.Filename)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 28, cfg.Log.MaxAge)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsync.yaml")
	content := "project:\n" +
		"  root: ./service\n" +
		"scanner:\n" +
		"  exclude:\n" +
		"    - fixtures\n" +
		"    - migrations\n" +
		"report:\n" +
		"  path: out/report.json\n" +
		"log:\n" +
		"  level: debug\n" +
		"  compress: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "./service", cfg.Project.Root)
	assert.Equal(t, []string{"fixtures", "migrations"}, cfg.Scanner.Exclude)
	assert.Equal(t, "out/report.json", cfg.Report.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Compress)

	// Keys the file does not mention keep their defaults.
	assert.Equal(t, ".docsync.log", cfg.Log.Filename)
	assert.Equal(t, 10, cfg.Log.MaxSize)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644))

	t.Setenv("DOCSYNC_LOG_LEVEL", "debug")
	t.Setenv("DOCSYNC_PROJECT_ROOT", "/srv/app")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/app", cfg.Project.Root)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unbalanced"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
