package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(t *testing.T) *AppConfig {
	t.Helper()
	t.Setenv("LAZYTS_CONFIG_DIR", t.TempDir())

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	require.NoError(t, err)
	return conf
}

func TestNewAppConfigCreatesConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	assert.Equal(t, os.Getenv("LAZYTS_CONFIG_DIR"), conf.ConfigDir)
	assert.Equal(t, "projectDir", conf.ProjectDir)
	assert.FileExists(t, conf.ConfigFilename())

	defaults := GetDefaultConfig()
	assert.Equal(t, &defaults, conf.UserConfig)
}

func TestNewAppConfigDebug(t *testing.T) {
	t.Setenv("DEBUG", "TRUE")
	conf := newTestAppConfig(t)
	assert.True(t, conf.Debug)
}

func TestNewAppConfigMergesUserConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAZYTS_CONFIG_DIR", dir)

	content := `
language: pl
validation:
  checks:
    accelerators: "off"
  failOnWarnings: true
commandTemplates:
  lrelease: lrelease-qt5 {{ .File }} -qm {{ .Output }}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	require.NoError(t, err)

	userConfig := conf.UserConfig
	assert.Equal(t, "pl", userConfig.Language)
	assert.True(t, userConfig.Validation.FailOnWarnings)
	assert.Equal(t, "off", userConfig.Validation.Checks["accelerators"])
	assert.Equal(t, "error", userConfig.Validation.Checks["duplicates"])
	assert.Equal(t, "lrelease-qt5 {{ .File }} -qm {{ .Output }}", userConfig.CommandTemplates.Lrelease)
	assert.Equal(t, "linguist {{ .File }}", userConfig.CommandTemplates.Linguist)
	assert.Equal(t, 10, userConfig.Stats.Graph.Height)
}

func TestNewAppConfigRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAZYTS_CONFIG_DIR", dir)

	content := "validation:\n  checks:\n    spelling: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644))

	_, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	assert.Error(t, err)
}

func TestWritingToConfigFile(t *testing.T) {
	conf := newTestAppConfig(t)

	testFn := func(t *testing.T, ac *AppConfig, newValue bool) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Validation.FailOnWarnings = newValue
			return nil
		}

		require.NoError(t, ac.WriteToUserConfig(updateFn))

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		require.NoError(t, err)

		sampleUC := UserConfig{}
		require.NoError(t, yaml.NewDecoder(file).Decode(&sampleUC))
		require.NoError(t, file.Close())

		assert.Equal(t, newValue, sampleUC.Validation.FailOnWarnings)
	}

	// insert value into an empty file
	testFn(t, conf, true)

	// modifying an existing file that already has 'failOnWarnings'
	testFn(t, conf, false)
}

func TestNewAppConfigAppliesProjectConfig(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("LAZYTS_CONFIG_DIR", configDir)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("locales:\n  prefix: App\n  sourceLanguage: de\n"), 0o644))

	projectDir := t.TempDir()
	content := "locales:\n  prefix: MEGASyncStrings\nvalidation:\n  checks:\n    whitespace: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ProjectConfigFilename), []byte(content), 0o644))

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, projectDir)
	require.NoError(t, err)

	assert.Equal(t, "MEGASyncStrings", conf.UserConfig.Locales.Prefix)
	assert.Equal(t, "de", conf.UserConfig.Locales.SourceLanguage)
	assert.Equal(t, "error", conf.UserConfig.Validation.Checks["whitespace"])
	assert.Equal(t, "warning", conf.UserConfig.Validation.Checks["accelerators"])
}

func TestNewAppConfigRejectsMalformedProjectConfig(t *testing.T) {
	t.Setenv("LAZYTS_CONFIG_DIR", t.TempDir())

	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ProjectConfigFilename), []byte("locales: [\n"), 0o644))

	_, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, projectDir)
	assert.Error(t, err)
}
