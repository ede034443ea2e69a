package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		AppDescription:       "Leniwszy sposób dbania o pliki tłumaczeń Qt Linguist",
		LookupDescription:    "Wypisz tłumaczenie tekstu źródłowego",
		ValidateDescription:  "Sprawdź pliki tłumaczeń pod kątem zepsutych symboli zastępczych, duplikatów i innych błędów",
		StatsDescription:     "Wypisz postęp tłumaczenia każdego kontekstu",
		CheckDescription:     "Sprawdź, czy pliki mają kanoniczny układ lupdate",
		FmtDescription:       "Zapisz pliki w kanonicznym układzie lupdate",
		ReleaseDescription:   "Skompiluj pliki do plików .qm za pomocą lrelease",
		LanguagesDescription: "Wypisz języki przetłumaczone w katalogu",
		WatchDescription:     "Sprawdzaj pliki ponownie po każdej zmianie",
		TranslateDescription: "Wypisz tłumaczenie tekstu źródłowego w języku najlepiej pasującym do żądanego",
		EditDescription:      "Otwórz plik w Qt Linguist i sprawdź go po zakończeniu edycji",

		ConfigFlag:         "Wypisz domyślną konfigurację",
		DebugFlag:          "Zapisuj dziennik debugowania w katalogu konfiguracji",
		CommentFlag:        "Komentarz rozróżniający wiadomość",
		CountFlag:          "Liczba wybierająca formę mnogą",
		ArgFlag:            "Wartość wstawiana kolejno za %1, %2, ...",
		GraphFlag:          "Narysuj wykres postępu",
		PrefixFlag:         "Przedrostek nazwy pliku, np. MEGASyncStrings dla MEGASyncStrings_ka.ts",
		SourceLanguageFlag: "Język tekstów źródłowych",
		OpenConfigFlag:     "Otwórz plik konfiguracji",

		FileArg:     "Plik .ts",
		FilesArg:    "Pliki .ts",
		ContextArg:  "Kontekst, zwykle nazwa klasy",
		SourceArg:   "Tekst źródłowy",
		DirArg:      "Katalog z plikami .ts",
		LanguageArg: "Żądany język, np. pt_BR albo ka-GE",

		ContextColumn:    "Kontekst",
		LanguageColumn:   "Język",
		NameColumn:       "Nazwa",
		CompletionColumn: "Gotowe",
		TotalRow:         "Razem",

		NoIssues:          "%s: brak problemów",
		IssueSummary:      "%s: błędy: %d, ostrzeżenia: %d",
		ValidationFailed:  "walidacja nie powiodła się",
		NotCanonical:      "%s nie ma kanonicznego układu",
		FilesNotCanonical: "pliki bez kanonicznego układu: %d, uruchom `lazyts fmt`, aby je poprawić",
		Formatted:         "sformatowano %s",
		Unchanged:         "%s bez zmian",
		Released:          "skompilowano %s",
		Watching:          "obserwowane pliki: %d, naciśnij ctrl+c, aby zakończyć",
		FileChanged:       "zmieniono %s",
		BestMatch:         "najlepsze dopasowanie dla %s: %s",

		CommandsTitle:    "Polecenia",
		GlobalFlagsTitle: "Flagi globalne",
		UsageTitle:       "Użycie",

		ErrorOccurred:        "Wystąpił błąd! Zgłoś go na https://github.com/christophe-duc/lazyts/issues",
		CannotKillChildError: "Proces potomny nie zatrzymał się w ciągu trzech sekund. W systemie może nadal działać osierocony proces.",
		FileNotFound:         "Nie znaleziono pliku. Sprawdź ścieżkę i spróbuj ponownie.",
		MalformedCatalog:     "Plik nie jest poprawnym plikiem .ts. Otwórz go w Qt Linguist albo uruchom lupdate, aby go naprawić.",
		LreleaseNotFound:     "Nie znaleziono lrelease. Zainstaluj narzędzia Qt Linguist albo ustaw commandTemplates.lrelease w konfiguracji.",
	}
}
