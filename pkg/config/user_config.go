package config

import (
	"time"
)

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazyts --config`. Be careful: if for example you set a `commandTemplates:` yaml key but then give it no child values, it will scrap all of the defaults and releasing will fail
type UserConfig struct {
	// Language is the language lazyts itself talks to you in. 'auto' picks it from your environment
	Language string `yaml:"language,omitempty"`

	// Gui is for configuring the colors used when printing reports
	Gui GuiConfig `yaml:"gui,omitempty"`

	// Parsing determines how forgiving we are when reading .ts files
	Parsing ParsingConfig `yaml:"parsing,omitempty"`

	// Validation determines which checks run, and whether their findings are errors or warnings
	Validation ValidationConfig `yaml:"validation,omitempty"`

	// Locales tells `lazyts languages` how your translation files are named
	Locales LocalesConfig `yaml:"locales,omitempty"`

	// CommandTemplates determines what commands actually get called when we hand off to the Qt tools
	CommandTemplates CommandTemplatesConfig `yaml:"commandTemplates,omitempty"`

	// OS determines what defaults are set for opening files
	OS OSConfig `yaml:"oS,omitempty"`

	// Stats determines the columns of the stats table and the look of the completion graph
	Stats StatsConfig `yaml:"stats,omitempty"`

	// Watch determines how often `lazyts watch` looks at your files
	Watch WatchConfig `yaml:"watch,omitempty"`
}

// ThemeConfig is for setting the colors of report text. Each entry is a color or attribute such as 'red' or 'bold'
type ThemeConfig struct {
	ErrorColor   []string `yaml:"errorColor,omitempty"`
	WarningColor []string `yaml:"warningColor,omitempty"`
	HeaderColor  []string `yaml:"headerColor,omitempty"`
}

// GuiConfig is for configuring visual things like colors
type GuiConfig struct {
	// Theme determines what colors and color attributes errors, warnings and table headers have
	Theme ThemeConfig `yaml:"theme,omitempty"`

	// NoColor disables colors entirely, which is handy when piping output to a file
	NoColor bool `yaml:"noColor,omitempty"`
}

// ParsingConfig determines how .ts files are read
type ParsingConfig struct {
	// Strict makes an unknown translation type an error instead of treating the translation as unfinished
	Strict bool `yaml:"strict,omitempty"`
}

// ValidationConfig determines which checks run
type ValidationConfig struct {
	// Checks maps a check name to one of 'error', 'warning' or 'off'. The checks are header, duplicates, placeholders, emptyTranslations, accelerators, numerus and whitespace
	Checks map[string]string `yaml:"checks,omitempty"`

	// FailOnWarnings makes `lazyts validate` exit non-zero on warnings too
	FailOnWarnings bool `yaml:"failOnWarnings,omitempty"`
}

// LocalesConfig describes a directory of translation files
type LocalesConfig struct {
	// Prefix is the part of the file name before the language code, e.g. 'MEGASyncStrings' for MEGASyncStrings_ka.ts. Leave it empty to load every .ts file
	Prefix string `yaml:"prefix,omitempty"`

	// SourceLanguage is the language your source strings are written in
	SourceLanguage string `yaml:"sourceLanguage,omitempty"`
}

// CommandTemplatesConfig determines what commands actually get called when we run certain commands
type CommandTemplatesConfig struct {
	// Lrelease compiles a .ts file into a .qm file. You can use {{ .File }} and {{ .Output }}
	Lrelease string `yaml:"lrelease,omitempty"`

	// Linguist opens a .ts file for editing. You can use {{ .File }}
	Linguist string `yaml:"linguist,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command for opening a file
	OpenCommand string `yaml:"openCommand,omitempty"`
}

// ColumnConfig is one column of the stats table
type ColumnConfig struct {
	// Title is shown in the header row
	Title string `yaml:"title,omitempty"`

	// StatPath is the path to the value within a context's stats, e.g. 'Unfinished'. Methods can't be used, but 'Total', 'Finished', 'Unfinished', 'Obsolete', 'Vanished' and 'Untranslated' are all available
	StatPath string `yaml:"statPath,omitempty"`
}

// GraphConfig specifies how to draw the completion graph
type GraphConfig struct {
	// Height sets the height of the graph in ascii characters
	Height int `yaml:"height,omitempty"`

	// Caption sets the caption of the graph
	Caption string `yaml:"caption,omitempty"`

	// Color is any color attribute, e.g. 'blue', 'green'
	Color string `yaml:"color,omitempty"`
}

// StatsConfig contains the stuff relating to stats and graphs
type StatsConfig struct {
	// Columns are the columns of the stats table, after the context name
	Columns []ColumnConfig `yaml:"columns,omitempty"`

	// Graph configures the completion graph drawn by `lazyts stats --graph`
	Graph GraphConfig `yaml:"graph,omitempty"`
}

// WatchConfig contains the polling settings of `lazyts watch`
type WatchConfig struct {
	// Interval is how often we look for changes
	Interval time.Duration `yaml:"interval,omitempty"`

	// Throttle is the minimum time between two validation runs
	Throttle time.Duration `yaml:"throttle,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Language: "auto",
		Gui: GuiConfig{
			Theme: ThemeConfig{
				ErrorColor:   []string{"red", "bold"},
				WarningColor: []string{"yellow"},
				HeaderColor:  []string{"blue", "bold"},
			},
		},
		Validation: ValidationConfig{
			Checks: map[string]string{
				"header":            "warning",
				"duplicates":        "error",
				"placeholders":      "error",
				"emptyTranslations": "warning",
				"accelerators":      "warning",
				"numerus":           "warning",
				"whitespace":        "warning",
			},
		},
		Locales: LocalesConfig{
			SourceLanguage: "en",
		},
		CommandTemplates: CommandTemplatesConfig{
			Lrelease: "lrelease {{ .File }} -qm {{ .Output }}",
			Linguist: "linguist {{ .File }}",
		},
		OS: GetPlatformDefaultConfig(),
		Stats: StatsConfig{
			Columns: []ColumnConfig{
				{Title: "Total", StatPath: "Total"},
				{Title: "Finished", StatPath: "Finished"},
				{Title: "Unfinished", StatPath: "Unfinished"},
				{Title: "Obsolete", StatPath: "Obsolete"},
			},
			Graph: GraphConfig{
				Height:  10,
				Caption: "Completion (%)",
				Color:   "green",
			},
		},
		Watch: WatchConfig{
			Interval: time.Second,
			Throttle: 500 * time.Millisecond,
		},
	}
}
