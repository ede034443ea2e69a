package presentation

import (
	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/christophe-duc/lazyts/pkg/locale"
	"github.com/christophe-duc/lazyts/pkg/utils"
)

// RenderLanguages lists the loaded locales with their native names and how
// complete each one is
func RenderLanguages(theme *Theme, tr *i18n.TranslationSet, registry *locale.Registry) (string, error) {
	rows := [][]string{theme.Headers([]string{tr.LanguageColumn, tr.NameColumn, tr.CompletionColumn})}

	for _, code := range registry.Codes() {
		l, _ := registry.Locale(code)
		stats := catalog.ComputeStats(l.Catalog)
		rows = append(rows, []string{code, locale.NativeName(code), formatPercentage(stats.Summary.Completion())})
	}

	return utils.RenderAlignedTable(rows, nil)
}
