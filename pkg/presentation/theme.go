// Package presentation turns catalogs, issues and stats into the text lazyts
// prints.
package presentation

import (
	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/christophe-duc/lazyts/pkg/utils"
	"github.com/fatih/color"
)

// Theme holds the colors of report text
type Theme struct {
	Error   *color.Color
	Warning *color.Color
	Header  *color.Color
	noColor bool
}

// NewTheme builds a theme from the user config
func NewTheme(guiConfig config.GuiConfig) *Theme {
	theme := &Theme{
		Error:   color.New(utils.GetColorAttributes(guiConfig.Theme.ErrorColor)...),
		Warning: color.New(utils.GetColorAttributes(guiConfig.Theme.WarningColor)...),
		Header:  color.New(utils.GetColorAttributes(guiConfig.Theme.HeaderColor)...),
		noColor: guiConfig.NoColor,
	}
	if guiConfig.NoColor {
		for _, c := range []*color.Color{theme.Error, theme.Warning, theme.Header} {
			c.DisableColor()
		}
	}
	return theme
}

// Severity colors text by the severity of an issue
func (t *Theme) Severity(severity catalog.Severity, text string) string {
	switch severity {
	case catalog.Error:
		return utils.ColoredStringDirect(text, t.Error)
	case catalog.Warning:
		return utils.ColoredStringDirect(text, t.Warning)
	}
	return text
}

// Colored colors text with a color attribute from the config, unless colors are off
func (t *Theme) Colored(text string, key string) string {
	if t.noColor {
		return text
	}
	return utils.ColoredString(text, utils.GetColorAttribute(key))
}

// Headers colors every header cell
func (t *Theme) Headers(headers []string) []string {
	colored := make([]string, len(headers))
	for i, header := range headers {
		colored[i] = utils.ColoredStringDirect(header, t.Header)
	}
	return colored
}
