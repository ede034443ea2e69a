package app

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/commands"
	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/christophe-duc/lazyts/pkg/log"
	"github.com/christophe-duc/lazyts/pkg/presentation"
	"github.com/christophe-duc/lazyts/pkg/tasks"
	"github.com/christophe-duc/lazyts/pkg/utils"
	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	closers []io.Closer

	Config      *config.AppConfig
	Log         *logrus.Entry
	OSCommand   *commands.OSCommand
	Tr          *i18n.TranslationSet
	Theme       *presentation.Theme
	Parser      *catalog.Parser
	TaskManager *tasks.TaskManager
	Out         io.Writer

	// detectLanguage returns the IETF tag of the user's language, e.g. ka-GE
	detectLanguage func() (string, error)
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers:        []io.Closer{},
		Config:         config,
		Out:            os.Stdout,
		detectLanguage: jibber_jabber.DetectIETF,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}
	app.OSCommand = commands.NewOSCommand(app.Log, config)
	app.Theme = presentation.NewTheme(config.UserConfig.Gui)
	app.Parser = catalog.NewParser(catalog.WithStrictParsing(config.UserConfig.Parsing.Strict))

	app.TaskManager = tasks.NewTaskManager(app.Log, app.Tr, app.Out)
	app.closers = append(app.closers, app.TaskManager)

	return app, nil
}

// SetOutput redirects everything the app prints
func (app *App) SetOutput(out io.Writer) {
	app.Out = out
	app.TaskManager.Out = out
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "no such file or directory",
			newError:      app.Tr.FileNotFound,
		},
		{
			originalError: "XML syntax error",
			newError:      app.Tr.MalformedCatalog,
		},
		{
			originalError: "expected element type <TS>",
			newError:      app.Tr.MalformedCatalog,
		},
		{
			originalError: "executable file not found",
			newError:      app.Tr.LreleaseNotFound,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}

// CatalogFiles returns the files a command works on. Without explicit files
// we take every .ts file of the configured prefix in the project directory.
func (app *App) CatalogFiles(files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	pattern := "*.ts"
	if prefix := app.Config.UserConfig.Locales.Prefix; prefix != "" {
		pattern = prefix + "_*.ts"
	}
	matches, err := filepath.Glob(filepath.Join(app.Config.ProjectDir, pattern))
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no translation files matching %s found in %s", pattern, app.Config.ProjectDir)
	}
	sort.Strings(matches)
	return matches, nil
}
