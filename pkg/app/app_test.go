package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is written to by the watch goroutines while the test reads it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestApp(t *testing.T) (*App, *syncBuffer) {
	t.Helper()

	app, err := NewApp(commands.NewDummyAppConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	out := &syncBuffer{}
	app.SetOutput(out)
	return app, out
}

func fixture(name string) string {
	return filepath.Join("..", "catalog", "testdata", name)
}

const nonCanonicalCatalog = `<?xml version="1.0" encoding="utf-8"?><!DOCTYPE TS><TS version="2.1" language="pl"><context><name>InfoDialog</name><message><source>Yes</source><translation>Tak</translation></message></context></TS>`

func writeCatalog(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "App_pl.ts")
	require.NoError(t, catalog.WriteFile(path, c))
	return path
}

func polishCatalog(messages ...*catalog.Message) *catalog.Catalog {
	return &catalog.Catalog{
		Version:        "2.1",
		Language:       "pl",
		SourceLanguage: "en",
		Contexts:       []*catalog.Context{{Name: "InfoDialog", Messages: messages}},
	}
}

func TestLookup(t *testing.T) {
	type scenario struct {
		opts     LookupOptions
		expected string
	}

	scenarios := []scenario{
		{
			LookupOptions{File: fixture("MEGASyncStrings_ka.ts"), Context: "SettingsDialog", Source: "%1 (%2%) of %3 used"},
			"%3-დან გამოყენებულია %1 (%2%)\n",
		},
		{
			LookupOptions{File: fixture("MEGASyncStrings_ka.ts"), Context: "SettingsDialog", Source: "%1 (%2%) of %3 used", Args: []string{"5 GB", "50", "10 GB"}},
			"10 GB-დან გამოყენებულია 5 GB (50%)\n",
		},
		{
			LookupOptions{File: fixture("MEGASyncStrings_id.ts"), Context: "NoSuchDialog", Source: "OK"},
			"OK\n",
		},
	}

	for _, s := range scenarios {
		app, out := newTestApp(t)
		require.NoError(t, app.Lookup(s.opts))
		assert.Equal(t, s.expected, out.String())
	}
}

func TestLookupCount(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{
		Source:       "%n file(s)",
		Numerus:      true,
		NumerusForms: []string{"%n plik", "%n pliki", "%n plików"},
	}))

	for count, expected := range map[int]string{1: "1 plik\n", 3: "3 pliki\n", 5: "5 plików\n"} {
		app, out := newTestApp(t)
		require.NoError(t, app.Lookup(LookupOptions{File: path, Context: "InfoDialog", Source: "%n file(s)", HasCount: true, Count: count}))
		assert.Equal(t, expected, out.String())
	}
}

func TestLookupMissingFile(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.Lookup(LookupOptions{File: filepath.Join(t.TempDir(), "nope.ts")})
	require.Error(t, err)

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.Equal(t, app.Tr.FileNotFound, message)
}

func TestValidate(t *testing.T) {
	app, out := newTestApp(t)
	assert.NoError(t, app.Validate([]string{fixture("MEGASyncStrings_id.ts"), fixture("MEGASyncStrings_ka.ts")}))
	assert.Contains(t, out.String(), "MEGASyncStrings_ka.ts")
	assert.NotContains(t, out.String(), ": error [")

	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "%1 of %2", Translation: "%1 z"}))
	app, out = newTestApp(t)
	err := app.Validate([]string{path})
	assert.True(t, commands.HasErrorCode(err, commands.ErrCodeValidationFailed))
	assert.Contains(t, out.String(), "error [placeholders] InfoDialog \"%1 of %2\": missing %2")
}

func TestValidateFailOnWarnings(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "&Yes", Translation: "Tak"}))

	app, _ := newTestApp(t)
	assert.NoError(t, app.Validate([]string{path}))

	app, _ = newTestApp(t)
	app.Config.UserConfig.Validation.FailOnWarnings = true
	assert.True(t, commands.HasErrorCode(app.Validate([]string{path}), commands.ErrCodeValidationFailed))
}

func TestValidateMalformedFile(t *testing.T) {
	type scenario struct {
		name    string
		content string
	}

	scenarios := []scenario{
		{"unclosed elements", "<TS><context>"},
		{"not a catalog", `<?xml version="1.0"?><resources><string name="ok">OK</string></resources>`},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "App_pl.ts")
			require.NoError(t, os.WriteFile(path, []byte(s.content), 0o644))

			app, _ := newTestApp(t)
			err := app.Validate([]string{path})
			require.Error(t, err)

			message, known := app.KnownError(err)
			assert.True(t, known)
			assert.Equal(t, app.Tr.MalformedCatalog, message)
		})
	}
}

func TestStats(t *testing.T) {
	app, out := newTestApp(t)
	require.NoError(t, app.Stats([]string{fixture("MEGASyncStrings_ka.ts")}, true))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, fixture("MEGASyncStrings_ka.ts")+"\n"))
	assert.Contains(t, output, "Total")
	assert.Contains(t, output, "Completion (%)")
}

func TestCheckAndFormat(t *testing.T) {
	app, out := newTestApp(t)
	assert.NoError(t, app.Check([]string{fixture("MEGASyncStrings_id.ts")}))
	assert.Empty(t, out.String())

	path := filepath.Join(t.TempDir(), "App_pl.ts")
	require.NoError(t, os.WriteFile(path, []byte(nonCanonicalCatalog), 0o644))

	app, out = newTestApp(t)
	err := app.Check([]string{path})
	assert.True(t, commands.HasErrorCode(err, commands.ErrCodeNotCanonical))
	assert.Contains(t, out.String(), path+" is not in the canonical layout")
	assert.Contains(t, out.String(), "+++ "+path+" (canonical)")

	app, out = newTestApp(t)
	require.NoError(t, app.Format([]string{path}))
	assert.Equal(t, "formatted "+path+"\n", out.String())

	app, out = newTestApp(t)
	require.NoError(t, app.Format([]string{path}))
	assert.Equal(t, path+" unchanged\n", out.String())
	assert.NoError(t, app.Check([]string{path}))

	c, err := catalog.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Tak", catalog.NewIndex(c).Lookup("InfoDialog", "Yes"))
}

func TestRelease(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "Yes", Translation: "Tak"}))

	app, out := newTestApp(t)
	app.Config.UserConfig.CommandTemplates.Lrelease = "touch {{ .Output }}"
	require.NoError(t, app.Release([]string{path}))

	qmPath := commands.QmPath(path)
	assert.Equal(t, "released "+qmPath+"\n", out.String())
	assert.FileExists(t, qmPath)
}

func TestReleaseWithoutLrelease(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "Yes", Translation: "Tak"}))

	app, _ := newTestApp(t)
	app.Config.UserConfig.CommandTemplates.Lrelease = "lazyts-missing-lrelease {{ .File }}"
	err := app.Release([]string{path})
	require.Error(t, err)

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.Equal(t, app.Tr.LreleaseNotFound, message)
}

func TestEdit(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "%1 of %2", Translation: "%1 z"}))

	app, out := newTestApp(t)
	app.Config.UserConfig.CommandTemplates.Linguist = "true {{ .File }}"
	err := app.Edit(path)
	assert.True(t, commands.HasErrorCode(err, commands.ErrCodeValidationFailed))
	assert.Contains(t, out.String(), "missing %2")
}

func TestLanguages(t *testing.T) {
	type scenario struct {
		detected string
		err      error
		expected string
	}

	scenarios := []scenario{
		{"ka-GE", nil, "best match for ka-GE: ka\n"},
		{"fr-FR", nil, "best match for fr-FR: en\n"},
		{"", errors.New("no LANG"), ""},
	}

	for _, s := range scenarios {
		app, out := newTestApp(t)
		app.detectLanguage = func() (string, error) { return s.detected, s.err }

		require.NoError(t, app.Languages(LocaleOptions{Dir: filepath.Join("..", "catalog", "testdata"), Prefix: "MEGASyncStrings"}))

		output := out.String()
		assert.Contains(t, output, "ქართული")
		assert.Contains(t, output, "Bahasa Indonesia")
		if s.expected == "" {
			assert.NotContains(t, output, "best match")
		} else {
			assert.True(t, strings.HasSuffix(output, s.expected), output)
		}
	}
}

func TestTranslate(t *testing.T) {
	type scenario struct {
		language string
		expected string
	}

	scenarios := []scenario{
		{"ka_GE", "%3-დან გამოყენებულია %1 (%2%)\n"},
		{"id", "%1 (%2%) dari %3 terpakai\n"},
		{"fr", "%1 (%2%) of %3 used\n"},
	}

	for _, s := range scenarios {
		app, out := newTestApp(t)
		opts := LocaleOptions{Dir: filepath.Join("..", "catalog", "testdata"), Prefix: "MEGASyncStrings"}
		require.NoError(t, app.Translate(opts, s.language, "SettingsDialog", "%1 (%2%) of %3 used"))
		assert.Equal(t, s.expected, out.String(), s.language)
	}
}

func TestWatch(t *testing.T) {
	path := writeCatalog(t, polishCatalog(&catalog.Message{Source: "Yes", Translation: "Tak"}))

	app, out := newTestApp(t)
	app.Config.UserConfig.Watch.Interval = 10 * time.Millisecond
	app.Config.UserConfig.Watch.Throttle = 10 * time.Millisecond

	stop := make(chan struct{})
	done := make(chan error)
	go func() {
		done <- app.Watch([]string{path}, stop)
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "watching 1 file(s)")
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, catalog.WriteFile(path, polishCatalog(&catalog.Message{Source: "%1 of %2", Translation: "%1 z"})))

	assert.Eventually(t, func() bool {
		output := out.String()
		return strings.Contains(output, path+" changed") && strings.Contains(output, "missing %2")
	}, 2*time.Second, 10*time.Millisecond)

	close(stop)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestCatalogFiles(t *testing.T) {
	app, _ := newTestApp(t)
	files, err := app.CatalogFiles([]string{"a.ts"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.ts"}, files)

	app.Config.ProjectDir = filepath.Join("..", "catalog", "testdata")
	app.Config.UserConfig.Locales.Prefix = "MEGASyncStrings"
	files, err = app.CatalogFiles(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{fixture("MEGASyncStrings_id.ts"), fixture("MEGASyncStrings_ka.ts")}, files)

	app.Config.ProjectDir = t.TempDir()
	_, err = app.CatalogFiles(nil)
	assert.Error(t, err)
}
