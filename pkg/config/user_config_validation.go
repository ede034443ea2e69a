package config

import (
	"fmt"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/mcuadros/go-lookup"
	"github.com/samber/lo"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if _, err := config.Validation.Options(); err != nil {
		return err
	}

	if err := validateCommandTemplates(config.CommandTemplates); err != nil {
		return err
	}

	if err := validateColumns(config.Stats.Columns); err != nil {
		return err
	}

	if config.Stats.Graph.Height < 0 {
		return fmt.Errorf("stats.graph.height must not be negative, got %d", config.Stats.Graph.Height)
	}

	return nil
}

// Options turns the configured checks into validation options. Checks the
// config doesn't mention are off.
func (v ValidationConfig) Options() (catalog.ValidateOptions, error) {
	known := lo.Map(catalog.IssueKinds(), func(kind catalog.IssueKind, _ int) string {
		return string(kind)
	})

	opts := catalog.ValidateOptions{Severities: map[catalog.IssueKind]catalog.Severity{}}
	for name, value := range v.Checks {
		if !lo.Contains(known, name) {
			return opts, fmt.Errorf("Unrecognized check '%s' in validation.checks. Permitted checks are: %s", name, strings.Join(known, ", "))
		}
		severity, err := catalog.ParseSeverity(value)
		if err != nil {
			return opts, fmt.Errorf("validation.checks.%s: %s", name, err.Error())
		}
		opts.Severities[catalog.IssueKind(name)] = severity
	}

	return opts, nil
}

func validateCommandTemplates(templates CommandTemplatesConfig) error {
	if strings.TrimSpace(templates.Lrelease) == "" {
		return fmt.Errorf("commandTemplates.lrelease must not be empty")
	}
	return nil
}

func validateColumns(columns []ColumnConfig) error {
	for _, column := range columns {
		value, err := lookup.LookupString(catalog.Stats{}, column.StatPath)
		if err != nil {
			return fmt.Errorf("Unrecognized stat path '%s' for column '%s'", column.StatPath, column.Title)
		}
		if !value.CanInt() {
			return fmt.Errorf("stat path '%s' for column '%s' is not a number", column.StatPath, column.Title)
		}
	}
	return nil
}
