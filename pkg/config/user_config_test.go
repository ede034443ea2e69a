package config

import (
	"testing"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())
}

func TestDefaultConfigMatchesDefaultValidateOptions(t *testing.T) {
	config := GetDefaultConfig()
	opts, err := config.Validation.Options()
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultValidateOptions(), opts)
}

func TestDefaultConfigSurvivesYaml(t *testing.T) {
	config := GetDefaultConfig()
	out, err := yaml.Marshal(config)
	require.NoError(t, err)

	decoded := UserConfig{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, config, decoded)
}

func TestValidate(t *testing.T) {
	type scenario struct {
		name          string
		update        func(*UserConfig)
		expectedError string
	}

	scenarios := []scenario{
		{
			"default",
			func(*UserConfig) {},
			"",
		},
		{
			"unknown check",
			func(c *UserConfig) { c.Validation.Checks["spelling"] = "error" },
			"Unrecognized check 'spelling' in validation.checks. Permitted checks are: header, duplicates, placeholders, emptyTranslations, accelerators, numerus, whitespace",
		},
		{
			"unknown severity",
			func(c *UserConfig) { c.Validation.Checks["numerus"] = "fatal" },
			`validation.checks.numerus: unknown severity "fatal", expected one of error, warning, off`,
		},
		{
			"empty lrelease",
			func(c *UserConfig) { c.CommandTemplates.Lrelease = " " },
			"commandTemplates.lrelease must not be empty",
		},
		{
			"unknown stat path",
			func(c *UserConfig) { c.Stats.Columns = append(c.Stats.Columns, ColumnConfig{Title: "Done", StatPath: "Done"}) },
			"Unrecognized stat path 'Done' for column 'Done'",
		},
		{
			"text stat path",
			func(c *UserConfig) { c.Stats.Columns = []ColumnConfig{{Title: "Name", StatPath: "Name"}} },
			"stat path 'Name' for column 'Name' is not a number",
		},
		{
			"negative graph height",
			func(c *UserConfig) { c.Stats.Graph.Height = -1 },
			"stats.graph.height must not be negative, got -1",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.update(&config)
			err := config.Validate()
			if s.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, s.expectedError)
			}
		})
	}
}

func TestOptionsLeavesUnmentionedChecksOff(t *testing.T) {
	opts, err := ValidationConfig{Checks: map[string]string{"placeholders": "warn"}}.Options()
	require.NoError(t, err)
	assert.Equal(t, map[catalog.IssueKind]catalog.Severity{catalog.IssuePlaceholders: catalog.Warning}, opts.Severities)
}
