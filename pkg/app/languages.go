package app

import (
	"fmt"

	"github.com/christophe-duc/lazyts/pkg/locale"
	"github.com/christophe-duc/lazyts/pkg/presentation"
)

// LocaleOptions says where the .ts files of an application live. Empty
// fields fall back to the locales section of the config.
type LocaleOptions struct {
	Dir            string
	Prefix         string
	SourceLanguage string
}

func (app *App) loadRegistry(opts LocaleOptions) (*locale.Registry, error) {
	localesConfig := app.Config.UserConfig.Locales

	prefix := opts.Prefix
	if prefix == "" {
		prefix = localesConfig.Prefix
	}
	sourceLanguage := opts.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = localesConfig.SourceLanguage
	}

	return locale.LoadDir(app.Log, opts.Dir, prefix, sourceLanguage)
}

// Languages lists the languages found in a directory, followed by the one
// we'd pick for the current user
func (app *App) Languages(opts LocaleOptions) error {
	registry, err := app.loadRegistry(opts)
	if err != nil {
		return err
	}

	table, err := presentation.RenderLanguages(app.Theme, app.Tr, registry)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, table)

	detected, err := app.detectLanguage()
	if err != nil {
		app.Log.Info(err)
		return nil
	}
	fmt.Fprintf(app.Out, app.Tr.BestMatch+"\n", detected, registry.Match(detected))
	return nil
}

// Translate prints the translation of a message in whichever loaded
// language best serves someone asking for the given one
func (app *App) Translate(opts LocaleOptions, language, context, source string) error {
	registry, err := app.loadRegistry(opts)
	if err != nil {
		return err
	}

	code := registry.Match(language)
	app.Log.Infof("translating to %s for %s", code, language)
	fmt.Fprintln(app.Out, registry.Translate(code, context, source))
	return nil
}
