package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		AppDescription:       "The lazier way to look after Qt Linguist translation files",
		LookupDescription:    "Print the translation of a source string",
		ValidateDescription:  "Check translation files for broken placeholders, duplicates and other mistakes",
		StatsDescription:     "Print how far along the translation of each context is",
		CheckDescription:     "Check that files are in the canonical lupdate layout",
		FmtDescription:       "Rewrite files in the canonical lupdate layout",
		ReleaseDescription:   "Compile files into .qm binaries using lrelease",
		LanguagesDescription: "List the languages translated in a directory",
		WatchDescription:     "Validate files again whenever they change",
		TranslateDescription: "Print the translation of a source string in the language that best matches the one asked for",
		EditDescription:      "Open a file in Qt Linguist and validate it once you're done",

		ConfigFlag:         "Print the current default config",
		DebugFlag:          "Write a debug log to the config directory",
		CommentFlag:        "Disambiguation comment of the message",
		CountFlag:          "Count used to pick the plural form",
		ArgFlag:            "Value substituted for %1, %2, ... in order",
		GraphFlag:          "Draw a completion graph",
		PrefixFlag:         "File name prefix, e.g. MEGASyncStrings for MEGASyncStrings_ka.ts",
		SourceLanguageFlag: "Language the source strings are written in",
		OpenConfigFlag:     "Open the config file",

		FileArg:     "The .ts file",
		FilesArg:    "The .ts files",
		ContextArg:  "The context, usually a class name",
		SourceArg:   "The source text",
		DirArg:      "The directory holding the .ts files",
		LanguageArg: "The wanted language, e.g. pt_BR or ka-GE",

		ContextColumn:    "Context",
		LanguageColumn:   "Language",
		NameColumn:       "Name",
		CompletionColumn: "Done",
		TotalRow:         "Total",

		NoIssues:          "%s: no issues",
		IssueSummary:      "%s: %d error(s), %d warning(s)",
		ValidationFailed:  "validation failed",
		NotCanonical:      "%s is not in the canonical layout",
		FilesNotCanonical: "%d file(s) not in the canonical layout, run `lazyts fmt` to fix them",
		Formatted:         "formatted %s",
		Unchanged:         "%s unchanged",
		Released:          "released %s",
		Watching:          "watching %d file(s), press ctrl+c to stop",
		FileChanged:       "%s changed",
		BestMatch:         "best match for %s: %s",

		CommandsTitle:    "Commands",
		GlobalFlagsTitle: "Global flags",
		UsageTitle:       "Usage",

		ErrorOccurred:        "An error occurred! Please create an issue at https://github.com/christophe-duc/lazyts/issues",
		CannotKillChildError: "Waited three seconds for child process to stop. There may be an orphan process that continues to run on your system.",
		FileNotFound:         "Could not find the file. Check the path and try again.",
		MalformedCatalog:     "The file is not a well formed .ts file. Open it in Qt Linguist or run lupdate to repair it.",
		LreleaseNotFound:     "Could not find lrelease. Install the Qt Linguist tools or set commandTemplates.lrelease in your config.",
	}
}
