package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// mockConfigPaths points both layers into tempDir for the duration of the test.
func mockConfigPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "user", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockConfigPaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user", userConfigDir), `
host: bench-01
theme: light
simulationSteps:
  - delay: 10ms
    line: quick
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "bench-01", loaded.Host)
	assert.Equal(t, ThemeLight, loaded.Theme)
	assert.Equal(t, GetDefaultConfig().ContactEmail, loaded.ContactEmail)
	require.Len(t, loaded.SimulationSteps, 1)
	assert.Equal(t, 10*time.Millisecond, loaded.SimulationSteps[0].Delay)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user", userConfigDir), `
host: from-user
narrowWidth: 80
`)
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
host: from-project
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-project", loaded.Host)
	assert.Equal(t, 80, loaded.NarrowWidth)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), "host: [unterminated")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidTheme(t *testing.T) {
	tempDir := t.TempDir()
	mockConfigPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "user", userConfigDir), "theme: sepia\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := createTempConfigFile(t, dir, "resumePath: /tmp/cv.pdf\n")

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cv.pdf", loaded.ResumePath)
	assert.Equal(t, "simon-ws", loaded.Host)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	got, err := ExpandHome("~/Downloads")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/Downloads", got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
