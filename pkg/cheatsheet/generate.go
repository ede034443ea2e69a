// This "script" generates a file called Commands_{{.LANG}}.md
// in the docs/commands directory of the project.
//
// The content of this generated file is a command cheatsheet.
//
// To generate the cheatsheets run:
//   go run scripts/cheatsheet/main.go generate

package cheatsheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

const (
	generateCheatsheetCmd = "go run scripts/cheatsheet/main.go generate"
)

type flagDoc struct {
	names       string
	description string
}

type commandDoc struct {
	name        string
	usage       string
	description string
	flags       []flagDoc
}

func Generate() error {
	dir, err := GetCommandsDir()
	if err != nil {
		return err
	}
	return generateAtDir(dir)
}

func generateAtDir(dir string) error {
	log := logrus.New()
	log.Out = io.Discard

	languages := []string{}
	for lang := range i18n.GetTranslationSets() {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	for _, lang := range languages {
		tr := i18n.NewTranslationSet(logrus.NewEntry(log), lang)

		content := formatSections(tr, getGlobalFlags(tr), getCommandDocs(tr))
		content = fmt.Sprintf(
			"_This file is auto-generated. To update, make the changes in the "+
				"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
			generateCheatsheetCmd,
			content,
		)

		path := filepath.Join(dir, "Commands_"+lang+".md")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return errors.Wrap(err, 0)
		}
	}
	return nil
}

func getGlobalFlags(tr *i18n.TranslationSet) []flagDoc {
	return []flagDoc{
		{"-c, --config", tr.ConfigFlag},
		{"-d, --debug", tr.DebugFlag},
		{"-o, --open-config", tr.OpenConfigFlag},
	}
}

func getCommandDocs(tr *i18n.TranslationSet) []commandDoc {
	filesFlag := flagDoc{"-f, --file", tr.FilesArg}
	localeFlags := []flagDoc{
		{"-D, --dir", tr.DirArg},
		{"-p, --prefix", tr.PrefixFlag},
		{"-s, --source-language", tr.SourceLanguageFlag},
	}

	return []commandDoc{
		{
			name:        "lookup",
			usage:       "lazyts lookup <file> <context> <source>",
			description: tr.LookupDescription,
			flags: []flagDoc{
				{"-m, --comment", tr.CommentFlag},
				{"-n, --count", tr.CountFlag},
				{"-a, --arg", tr.ArgFlag},
			},
		},
		{name: "validate", usage: "lazyts validate", description: tr.ValidateDescription, flags: []flagDoc{filesFlag}},
		{name: "stats", usage: "lazyts stats", description: tr.StatsDescription, flags: []flagDoc{filesFlag, {"-g, --graph", tr.GraphFlag}}},
		{name: "check", usage: "lazyts check", description: tr.CheckDescription, flags: []flagDoc{filesFlag}},
		{name: "fmt", usage: "lazyts fmt", description: tr.FmtDescription, flags: []flagDoc{filesFlag}},
		{name: "release", usage: "lazyts release", description: tr.ReleaseDescription, flags: []flagDoc{filesFlag}},
		{name: "languages", usage: "lazyts languages", description: tr.LanguagesDescription, flags: localeFlags},
		{name: "translate", usage: "lazyts translate <language> <context> <source>", description: tr.TranslateDescription, flags: localeFlags},
		{name: "edit", usage: "lazyts edit <file>", description: tr.EditDescription},
		{name: "watch", usage: "lazyts watch", description: tr.WatchDescription, flags: []flagDoc{filesFlag}},
	}
}

func formatTitle(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

func formatFlag(flag flagDoc) string {
	return fmt.Sprintf("  <kbd>%s</kbd>: %s\n", flag.names, flag.description)
}

func formatFlags(flags []flagDoc) string {
	if len(flags) == 0 {
		return ""
	}
	content := "<pre>\n"
	for _, flag := range flags {
		content += formatFlag(flag)
	}
	return content + "</pre>\n"
}

func formatSections(tr *i18n.TranslationSet, globalFlags []flagDoc, commands []commandDoc) string {
	content := fmt.Sprintf("# lazyts %s\n", tr.CommandsTitle)

	content += formatTitle(tr.GlobalFlagsTitle)
	content += formatFlags(globalFlags)

	for _, command := range commands {
		content += formatTitle(command.name)
		content += command.description + "\n\n"
		content += fmt.Sprintf("%s: `%s`\n", tr.UsageTitle, command.usage)
		if len(command.flags) > 0 {
			content += "\n" + formatFlags(command.flags)
		}
	}

	return content
}
