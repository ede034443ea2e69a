package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/commands"
	"github.com/christophe-duc/lazyts/pkg/presentation"
	"github.com/go-errors/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// LookupOptions says which message to look up and how to fill it in
type LookupOptions struct {
	File    string
	Context string
	Source  string
	Comment string

	// HasCount picks a plural form by Count and substitutes %n
	HasCount bool
	Count    int

	// Args replace %1, %2 and so on, lowest number first
	Args []string
}

// Lookup prints the translation of a single message
func (app *App) Lookup(opts LookupOptions) error {
	c, err := app.Parser.ParseFile(opts.File)
	if err != nil {
		return err
	}
	idx := catalog.NewIndex(c)

	var text string
	if opts.HasCount {
		text = catalog.ArgCount(idx.LookupN(opts.Context, opts.Source, opts.Comment, opts.Count), opts.Count)
	} else {
		text = idx.LookupComment(opts.Context, opts.Source, opts.Comment)
	}
	if len(opts.Args) > 0 {
		text = catalog.Arg(text, opts.Args...)
	}

	fmt.Fprintln(app.Out, text)
	return nil
}

// Validate prints the issues of every file. It fails when any file has an
// error, or a warning if the config says warnings fail too.
func (app *App) Validate(paths []string) error {
	opts, err := app.Config.UserConfig.Validation.Options()
	if err != nil {
		return err
	}

	total := presentation.IssueCounts{}
	for _, path := range paths {
		counts, err := app.validateFile(path, opts)
		if err != nil {
			return err
		}
		total.Errors += counts.Errors
		total.Warnings += counts.Warnings
	}

	if total.Errors > 0 || (app.Config.UserConfig.Validation.FailOnWarnings && total.Warnings > 0) {
		return commands.NewComplexError(commands.ErrCodeValidationFailed, app.Tr.ValidationFailed)
	}
	return nil
}

func (app *App) validateFile(path string, opts catalog.ValidateOptions) (presentation.IssueCounts, error) {
	c, err := app.Parser.ParseFile(path)
	if err != nil {
		return presentation.IssueCounts{}, err
	}

	issues := catalog.Validate(c, opts)
	app.Log.WithField("path", path).Infof("%d issue(s)", len(issues))
	fmt.Fprintln(app.Out, presentation.RenderIssues(app.Theme, app.Tr, path, issues))
	return presentation.CountIssues(issues), nil
}

// Stats prints the progress table of every file, optionally with a
// completion graph over its contexts
func (app *App) Stats(paths []string, graph bool) error {
	statsConfig := app.Config.UserConfig.Stats

	for i, path := range paths {
		c, err := app.Parser.ParseFile(path)
		if err != nil {
			return err
		}
		stats := catalog.ComputeStats(c)

		table, err := presentation.RenderStatsTable(app.Theme, app.Tr, statsConfig.Columns, stats)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(app.Out)
		}
		fmt.Fprintln(app.Out, app.Theme.Headers([]string{path})[0])
		fmt.Fprintln(app.Out, table)

		if graph && len(stats.Contexts) > 0 {
			fmt.Fprintln(app.Out)
			fmt.Fprintln(app.Out, presentation.RenderCompletionGraph(app.Theme, statsConfig.Graph, stats))
		}
	}
	return nil
}

// Check prints a diff for every file that is not laid out the way lupdate
// writes it, and fails if there was any
func (app *App) Check(paths []string) error {
	failed := 0
	for _, path := range paths {
		diff, err := app.canonicalDiff(path)
		if err != nil {
			return err
		}
		if diff == "" {
			continue
		}
		failed++
		fmt.Fprintf(app.Out, app.Tr.NotCanonical+"\n", path)
		fmt.Fprint(app.Out, diff)
	}

	if failed > 0 {
		return commands.NewComplexError(commands.ErrCodeNotCanonical, fmt.Sprintf(app.Tr.FilesNotCanonical, failed))
	}
	return nil
}

func (app *App) canonicalDiff(path string) (string, error) {
	original, canonical, err := app.canonicalForm(path)
	if err != nil {
		return "", err
	}
	if bytes.Equal(original, canonical) {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(canonical)),
		FromFile: path,
		ToFile:   path + " (canonical)",
		Context:  2,
	})
	if err != nil {
		return "", errors.Wrap(err, 0)
	}
	return diff, nil
}

func (app *App) canonicalForm(path string) ([]byte, []byte, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, 0)
	}

	c, err := app.Parser.Parse(original)
	if err != nil {
		return nil, nil, errors.WrapPrefix(err, path, 0)
	}
	return original, catalog.Marshal(c), nil
}

// Format rewrites every file in the canonical layout
func (app *App) Format(paths []string) error {
	for _, path := range paths {
		original, canonical, err := app.canonicalForm(path)
		if err != nil {
			return err
		}
		if bytes.Equal(original, canonical) {
			fmt.Fprintf(app.Out, app.Tr.Unchanged+"\n", path)
			continue
		}

		if err := os.WriteFile(path, canonical, 0o644); err != nil {
			return errors.Wrap(err, 0)
		}
		app.Log.WithField("path", path).Info("formatted")
		fmt.Fprintf(app.Out, app.Tr.Formatted+"\n", path)
	}
	return nil
}

// Release compiles every file with lrelease
func (app *App) Release(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return errors.Wrap(err, 0)
		}

		qmPath, err := app.OSCommand.Release(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.Out, app.Tr.Released+"\n", qmPath)
	}
	return nil
}

// Edit opens a file in Qt Linguist and validates it once the editor exits
func (app *App) Edit(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, 0)
	}

	if err := app.OSCommand.OpenInLinguist(path); err != nil {
		return err
	}
	return app.Validate([]string{path})
}
