// Package locale keeps the catalogs of every language an application ships
// and picks the one to use for a user.
package locale

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Locale is a loaded catalog along with its lookup index
type Locale struct {
	Code    string
	Path    string
	Catalog *catalog.Catalog
	Index   *catalog.Index
}

// Registry holds one Locale per language code
type Registry struct {
	Log            *logrus.Entry
	sourceLanguage string
	locales        map[string]*Locale
	mu             deadlock.RWMutex
}

// NewRegistry creates an empty registry. Lookups for the source language, or
// for a language nobody translated to, return the source text.
func NewRegistry(log *logrus.Entry, sourceLanguage string) *Registry {
	return &Registry{
		Log:            log,
		sourceLanguage: sourceLanguage,
		locales:        map[string]*Locale{},
	}
}

// LoadDir loads every <prefix>_<code>.ts file in dir. With an empty prefix
// every .ts file is loaded.
func LoadDir(log *logrus.Entry, dir, prefix, sourceLanguage string) (*Registry, error) {
	pattern := "*.ts"
	if prefix != "" {
		pattern = prefix + "_*.ts"
	}

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no translation files matching %s found in %s", pattern, dir)
	}
	sort.Strings(paths)

	registry := NewRegistry(log, sourceLanguage)
	for _, path := range paths {
		c, err := catalog.ParseFile(path)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(codeFor(path, prefix, c), path, c); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// codeFor prefers the language attribute of the catalog and falls back to
// the file name
func codeFor(path, prefix string, c *catalog.Catalog) string {
	if c.Language != "" {
		return c.Language
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if prefix != "" {
		return strings.TrimPrefix(name, prefix+"_")
	}
	return name
}

// Add registers a catalog under a language code
func (r *Registry) Add(code, path string, c *catalog.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.locales[code]; ok {
		return errors.Errorf("language %s is defined by both %s and %s", code, existing.Path, path)
	}

	r.locales[code] = &Locale{
		Code:    code,
		Path:    path,
		Catalog: c,
		Index:   catalog.NewIndex(c),
	}
	r.Log.WithField("path", path).Info("loaded language " + code)
	return nil
}

// SourceLanguage is the language lookups fall back to
func (r *Registry) SourceLanguage() string {
	return r.sourceLanguage
}

// Codes returns the loaded language codes in alphabetical order
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := lo.Keys(r.locales)
	sort.Strings(codes)
	return codes
}

// Locale returns the locale loaded for a code
func (r *Registry) Locale(code string) (*Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.locales[code]
	return l, ok
}

// Match returns the loaded language code that best serves a user who
// prefers the given languages, most preferred first. When nothing matches,
// or the source language is the better match, the source language is
// returned.
func (r *Registry) Match(preferred ...string) string {
	codes := r.Codes()

	supported := []language.Tag{catalog.ParseLanguage(r.sourceLanguage)}
	for _, code := range codes {
		supported = append(supported, catalog.ParseLanguage(code))
	}

	desired := []language.Tag{}
	for _, p := range preferred {
		tag, err := language.Parse(strings.ReplaceAll(p, "_", "-"))
		if err != nil {
			r.Log.Warnf("ignoring unknown language %q", p)
			continue
		}
		desired = append(desired, tag)
	}
	if len(desired) == 0 {
		return r.sourceLanguage
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No || index == 0 {
		return r.sourceLanguage
	}
	return codes[index-1]
}

// Translate looks source up in the catalog of the given language
func (r *Registry) Translate(code, context, source string) string {
	l, ok := r.Locale(code)
	if !ok {
		return source
	}
	return l.Index.Lookup(context, source)
}
