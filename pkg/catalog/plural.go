package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// probing this many integers finds every integer plural form CLDR defines
const pluralProbeLimit = 200

// pluralRules maps a count to the index of the numerus form a language uses
// for it. Most languages get their forms from the CLDR cardinal categories,
// ordered zero, one, two, few, many, other. Languages in linguistRules use
// Qt Linguist's own table instead.
type pluralRules struct {
	tag      language.Tag
	forms    []plural.Form
	linguist *linguistRule
}

// linguistRule is the numerus table Qt Linguist uses for a language whose
// forms differ from CLDR in count or order
type linguistRule struct {
	forms int
	index func(n int) int
}

var linguistRules = map[string]linguistRule{
	// singular, plural, nullar
	"lv": {3, func(n int) int {
		switch {
		case n%10 == 1 && n%100 != 11:
			return 0
		case n != 0:
			return 1
		}
		return 2
	}},
	// singular, dual, plural
	"ga": {3, func(n int) int {
		switch n {
		case 1:
			return 0
		case 2:
			return 1
		}
		return 2
	}},
	// singular, paucal, plural
	"ro": {3, func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 0 || (n%100 >= 1 && n%100 <= 19):
			return 1
		}
		return 2
	}},
	// singular, paucal, greater paucal, plural
	"mt": {4, func(n int) int {
		switch {
		case n == 1:
			return 0
		case n == 0 || (n%100 >= 1 && n%100 <= 10):
			return 1
		case n%100 >= 11 && n%100 <= 19:
			return 2
		}
		return 3
	}},
}

// ParseLanguage reads a catalog language code such as "pt_BR" or "ka". Codes
// x/text cannot make sense of come back as English, whose rules match the
// source text fallback.
func ParseLanguage(code string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil || tag == language.Und {
		return language.English
	}
	return tag
}

func newPluralRules(code string) pluralRules {
	tag := ParseLanguage(code)

	seen := map[plural.Form]bool{}
	forms := []plural.Form{}
	for n := 0; n < pluralProbeLimit; n++ {
		form := plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)
		if !seen[form] {
			seen[form] = true
			forms = append(forms, form)
		}
	}

	sort.Slice(forms, func(i, j int) bool {
		return formRank(forms[i]) < formRank(forms[j])
	})

	rules := pluralRules{tag: tag, forms: forms}
	if base, confidence := tag.Base(); confidence != language.No {
		if rule, ok := linguistRules[base.String()]; ok {
			rules.linguist = &rule
		}
	}
	return rules
}

func formRank(f plural.Form) int {
	switch f {
	case plural.Zero:
		return 0
	case plural.One:
		return 1
	case plural.Two:
		return 2
	case plural.Few:
		return 3
	case plural.Many:
		return 4
	}
	return 5
}

func (r pluralRules) count() int {
	if r.linguist != nil {
		return r.linguist.forms
	}
	return len(r.forms)
}

func (r pluralRules) index(n int) int {
	if n < 0 {
		n = -n
	}
	if r.linguist != nil {
		return r.linguist.index(n)
	}
	form := plural.Cardinal.MatchPlural(r.tag, n, 0, 0, 0, 0)
	for i, f := range r.forms {
		if f == form {
			return i
		}
	}
	return len(r.forms) - 1
}

// NumerusFormCount returns how many numerus forms a translation into the
// given language should have
func NumerusFormCount(languageCode string) int {
	return newPluralRules(languageCode).count()
}
