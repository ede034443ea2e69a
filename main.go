package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/christophe-duc/lazyts/pkg/app"
	"github.com/christophe-duc/lazyts/pkg/commands"
	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag     = false
	debuggingFlag  = false
	openConfigFlag = false

	files          []string
	context        string
	source         string
	comment        string
	count          = -1
	args           []string
	graph          = false
	dir            = "."
	prefix         string
	sourceLanguage string
	language       string
	file           string
)

type command struct {
	subcommand *flaggy.Subcommand
	run        func(app *app.App) error
}

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	// flag descriptions are shown before the user config is read, so we go
	// by the language of the environment
	quietLog := logrus.New()
	quietLog.Out = io.Discard
	tr, _ := i18n.NewTranslationSetFromConfig(logrus.NewEntry(quietLog), "auto")

	flaggy.SetName("lazyts")
	flaggy.SetDescription(tr.AppDescription)
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/christophe-duc/lazyts"

	flaggy.Bool(&configFlag, "c", "config", tr.ConfigFlag)
	flaggy.Bool(&debuggingFlag, "d", "debug", tr.DebugFlag)
	flaggy.Bool(&openConfigFlag, "o", "open-config", tr.OpenConfigFlag)
	flaggy.SetVersion(info)

	subcommands := newCommands(tr)
	for _, c := range subcommands {
		flaggy.AttachSubcommand(c.subcommand, 1)
	}

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	projectDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err.Error())
	}

	appConfig, err := config.NewAppConfig("lazyts", version, commit, date, buildSource, debuggingFlag, projectDir)
	if err != nil {
		log.Fatal(err.Error())
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		err = run(app, subcommands)
	}
	_ = app.Close()

	if err != nil {
		var complexErr commands.ComplexError
		if xerrors.As(err, &complexErr) {
			log.Println(complexErr.Message)
			os.Exit(1)
		}

		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		newErr := errors.Wrap(err, 0)
		stackTrace := newErr.ErrorStack()
		// the development log keeps it; stderr gets it below
		app.Log.Info(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}

func run(app *app.App, subcommands []command) error {
	if openConfigFlag {
		return app.OSCommand.OpenFile(app.Config.ConfigFilename())
	}

	for _, c := range subcommands {
		if c.subcommand.Used {
			return c.run(app)
		}
	}

	flaggy.ShowHelpAndExit("")
	return nil
}

func newCommands(tr *i18n.TranslationSet) []command {
	withFiles := func(sc *flaggy.Subcommand) {
		sc.StringSlice(&files, "f", "file", tr.FilesArg)
	}
	withLocales := func(sc *flaggy.Subcommand) {
		sc.String(&dir, "D", "dir", tr.DirArg)
		sc.String(&prefix, "p", "prefix", tr.PrefixFlag)
		sc.String(&sourceLanguage, "s", "source-language", tr.SourceLanguageFlag)
	}
	localeOptions := func() app.LocaleOptions {
		return app.LocaleOptions{Dir: dir, Prefix: prefix, SourceLanguage: sourceLanguage}
	}
	onFiles := func(f func(app *app.App, paths []string) error) func(app *app.App) error {
		return func(app *app.App) error {
			paths, err := app.CatalogFiles(files)
			if err != nil {
				return err
			}
			return f(app, paths)
		}
	}

	lookup := flaggy.NewSubcommand("lookup")
	lookup.Description = tr.LookupDescription
	lookup.AddPositionalValue(&file, "file", 1, true, tr.FileArg)
	lookup.AddPositionalValue(&context, "context", 2, true, tr.ContextArg)
	lookup.AddPositionalValue(&source, "source", 3, true, tr.SourceArg)
	lookup.String(&comment, "m", "comment", tr.CommentFlag)
	lookup.Int(&count, "n", "count", tr.CountFlag)
	lookup.StringSlice(&args, "a", "arg", tr.ArgFlag)

	validate := flaggy.NewSubcommand("validate")
	validate.Description = tr.ValidateDescription
	withFiles(validate)

	stats := flaggy.NewSubcommand("stats")
	stats.Description = tr.StatsDescription
	withFiles(stats)
	stats.Bool(&graph, "g", "graph", tr.GraphFlag)

	check := flaggy.NewSubcommand("check")
	check.Description = tr.CheckDescription
	withFiles(check)

	format := flaggy.NewSubcommand("fmt")
	format.Description = tr.FmtDescription
	withFiles(format)

	release := flaggy.NewSubcommand("release")
	release.Description = tr.ReleaseDescription
	withFiles(release)

	languages := flaggy.NewSubcommand("languages")
	languages.Description = tr.LanguagesDescription
	withLocales(languages)

	translate := flaggy.NewSubcommand("translate")
	translate.Description = tr.TranslateDescription
	translate.AddPositionalValue(&language, "language", 1, true, tr.LanguageArg)
	translate.AddPositionalValue(&context, "context", 2, true, tr.ContextArg)
	translate.AddPositionalValue(&source, "source", 3, true, tr.SourceArg)
	withLocales(translate)

	edit := flaggy.NewSubcommand("edit")
	edit.Description = tr.EditDescription
	edit.AddPositionalValue(&file, "file", 1, true, tr.FileArg)

	watch := flaggy.NewSubcommand("watch")
	watch.Description = tr.WatchDescription
	withFiles(watch)

	return []command{
		{lookup, func(app *app.App) error {
			return app.Lookup(appLookupOptions())
		}},
		{validate, onFiles(func(app *app.App, paths []string) error {
			return app.Validate(paths)
		})},
		{stats, onFiles(func(app *app.App, paths []string) error {
			return app.Stats(paths, graph)
		})},
		{check, onFiles(func(app *app.App, paths []string) error {
			return app.Check(paths)
		})},
		{format, onFiles(func(app *app.App, paths []string) error {
			return app.Format(paths)
		})},
		{release, onFiles(func(app *app.App, paths []string) error {
			return app.Release(paths)
		})},
		{languages, func(app *app.App) error {
			return app.Languages(localeOptions())
		}},
		{translate, func(app *app.App) error {
			return app.Translate(localeOptions(), language, context, source)
		}},
		{edit, func(app *app.App) error {
			return app.Edit(file)
		}},
		{watch, onFiles(func(app *app.App, paths []string) error {
			return app.Watch(paths, interrupted())
		})},
	}
}

func appLookupOptions() app.LookupOptions {
	return app.LookupOptions{
		File:     file,
		Context:  context,
		Source:   source,
		Comment:  comment,
		HasCount: count >= 0,
		Count:    count,
		Args:     args,
	}
}

// interrupted is closed on ctrl+c or SIGTERM
func interrupted() <-chan struct{} {
	stop := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		close(stop)
	}()
	return stop
}
