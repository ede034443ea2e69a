package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// the names the desktop client shows in its language picker. Anything else
// is named by x/text.
var nativeNames = map[string]string{
	"ar":    "العربية",
	"bg":    "български",
	"cs":    "Čeština",
	"de":    "Deutsch",
	"ee":    "Eesti",
	"en":    "English",
	"es":    "Español",
	"fa":    "فارسی",
	"fi":    "Suomi",
	"fr":    "Français",
	"he":    "עברית",
	"hr":    "Hrvatski",
	"hu":    "Magyar",
	"id":    "Bahasa Indonesia",
	"it":    "Italiano",
	"ja":    "日本語",
	"ka":    "ქართული",
	"ko":    "한국어",
	"nl":    "Nederlands",
	"pl":    "Polski",
	"pt_BR": "Português Brasil",
	"pt":    "Português",
	"ro":    "Română",
	"ru":    "Pусский",
	"sk":    "Slovenský",
	"sl":    "Slovenščina",
	"sr":    "српски",
	"sv":    "Svenska",
	"th":    "ภาษาไทย",
	"tl":    "Tagalog",
	"tr":    "Türkçe",
	"uk":    "Українська",
	"vi":    "Tiếng Việt",
	"zh_CN": "简体中文",
	"zh_TW": "中文繁體",
}

// NativeName returns the name of a language in that language, e.g. ქართული for
// ka. An unknown code is returned as is.
func NativeName(code string) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
