package i18n

import (
	"sort"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// ISO 639-1 codes of the languages lazyts itself is translated to
const (
	EN = "en"
	PL = "pl"
)

// NewTranslationSetFromConfig picks the translation set for the configured
// language. 'auto' detects the language from the environment. Region and
// script subtags are ignored, so pl_PL gets the Polish set.
func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string) (*TranslationSet, error) {
	if configLanguage == "auto" || configLanguage == "" {
		return NewTranslationSet(log, detectLanguage(jibber_jabber.DetectIETF)), nil
	}

	if code, ok := matchLanguage(configLanguage); ok {
		return NewTranslationSet(log, code), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

// NewTranslationSet merges the set of the given language over english, so
// strings nobody translated yet stay readable
func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	log.Info("language: " + language)

	baseSet := englishSet()
	otherSet := getTranslationSet(language)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return &baseSet
}

// GetTranslationSets gets all the translation sets, keyed by language code
func GetTranslationSets() map[string]TranslationSet {
	return map[string]TranslationSet{
		PL: polishSet(),
		EN: englishSet(),
	}
}

func getTranslationSet(languageCode string) TranslationSet {
	if set, ok := GetTranslationSets()[languageCode]; ok {
		return set
	}
	return englishSet()
}

// getSupportedLanguages returns the codes we have a set for, english first
// so the matcher falls back to it
func getSupportedLanguages() []string {
	codes := lo.Without(lo.Keys(GetTranslationSets()), EN)
	sort.Strings(codes)
	return append([]string{EN}, codes...)
}

// matchLanguage finds the set for a tag like pl, PL, pl_PL or pl-PL
func matchLanguage(tag string) (string, bool) {
	desired, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return EN, false
	}

	supported := getSupportedLanguages()
	tags := lo.Map(supported, func(code string, _ int) language.Tag {
		return language.Make(code)
	})

	_, index, confidence := language.NewMatcher(tags).Match(desired)
	if confidence == language.No {
		return EN, false
	}
	return supported[index], true
}

// detectLanguage maps the user language from the environment to one of ours
func detectLanguage(langDetector func() (string, error)) string {
	userLang, err := langDetector()
	if err != nil {
		return EN
	}

	code, _ := matchLanguage(userLang)
	return code
}
