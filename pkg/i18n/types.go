package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	AppDescription       string
	LookupDescription    string
	ValidateDescription  string
	StatsDescription     string
	CheckDescription     string
	FmtDescription       string
	ReleaseDescription   string
	LanguagesDescription string
	WatchDescription     string
	TranslateDescription string
	EditDescription      string

	ConfigFlag         string
	DebugFlag          string
	CommentFlag        string
	CountFlag          string
	ArgFlag            string
	GraphFlag          string
	PrefixFlag         string
	SourceLanguageFlag string
	OpenConfigFlag     string

	FileArg     string
	FilesArg    string
	ContextArg  string
	SourceArg   string
	DirArg      string
	LanguageArg string

	ContextColumn    string
	LanguageColumn   string
	NameColumn       string
	CompletionColumn string
	TotalRow         string

	NoIssues          string
	IssueSummary      string
	ValidationFailed  string
	NotCanonical      string
	FilesNotCanonical string
	Formatted         string
	Unchanged         string
	Released          string
	Watching          string
	FileChanged       string
	BestMatch         string

	CommandsTitle    string
	GlobalFlagsTitle string
	UsageTitle       string

	ErrorOccurred        string
	CannotKillChildError string
	FileNotFound         string
	MalformedCatalog     string
	LreleaseNotFound     string
}
