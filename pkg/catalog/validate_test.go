package catalog

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	c := &Catalog{
		Language: "pl",
		Contexts: []*Context{
			{
				Name: "InfoDialog",
				Messages: []*Message{
					{Source: "%1 of %2", Translation: "%1 z %2"},
					{Source: "%1 of %2 (%3/s)", Translation: "%1 z %2"},
					{Source: "Usage: %1", Translation: "Wykorzystano: %1 %1", Status: Unfinished},
					{Source: "%1 of %2", Translation: "%1 z %2"},
					{Source: "Paused", Translation: ""},
					{Source: "&Yes", Translation: "Tak"},
					{Source: "Read & Write", Translation: "Odczyt & zapis"},
					{Source: "Name: ", Translation: "Nazwa:"},
					{Source: "%n file(s)", Numerus: true, NumerusForms: []string{"plik", "%n pliki"}},
					{Source: "Gone %1", Translation: "Zniknął", Status: Obsolete},
				},
			},
		},
	}

	issues := Validate(c, DefaultValidateOptions())

	type found struct {
		kind     IssueKind
		severity Severity
		source   string
	}
	actual := lo.Map(issues, func(issue Issue, _ int) found {
		return found{issue.Kind, issue.Severity, issue.Source}
	})

	assert.Equal(t, []found{
		{IssuePlaceholders, Error, "%1 of %2 (%3/s)"},
		{IssuePlaceholders, Warning, "Usage: %1"},
		{IssueDuplicates, Error, "%1 of %2"},
		{IssueEmptyTranslations, Warning, "Paused"},
		{IssueAccelerators, Warning, "&Yes"},
		{IssueWhitespace, Warning, "Name: "},
		{IssueNumerus, Warning, "%n file(s)"},
	}, actual)

	assert.Equal(t, "missing %3", issues[0].Detail)
	assert.Equal(t, "unexpected %1", issues[1].Detail)
	assert.Equal(t, "InfoDialog", issues[0].Context)
}

func TestValidateSeverities(t *testing.T) {
	c := &Catalog{
		Contexts: []*Context{
			{
				Name:     "A",
				Messages: []*Message{{Source: "%1 used", Translation: "dipakai"}},
			},
		},
	}

	issues := Validate(c, DefaultValidateOptions())
	require.Len(t, issues, 2)
	assert.Equal(t, IssueHeader, issues[0].Kind)
	assert.Equal(t, IssuePlaceholders, issues[1].Kind)

	opts := DefaultValidateOptions()
	opts.Severities[IssueHeader] = Off
	opts.Severities[IssuePlaceholders] = Warning
	issues = Validate(c, opts)
	require.Len(t, issues, 1)
	assert.Equal(t, Warning, issues[0].Severity)

	assert.Empty(t, Validate(c, ValidateOptions{}))
}

func TestValidateFixturesHaveNoErrors(t *testing.T) {
	for _, name := range []string{"MEGASyncStrings_id.ts", "MEGASyncStrings_ka.ts"} {
		issues := Validate(loadFixture(t, name), DefaultValidateOptions())
		errs := lo.Filter(issues, func(issue Issue, _ int) bool {
			return issue.Severity == Error
		})
		assert.Empty(t, errs, name)
	}
}

func TestHasAccelerator(t *testing.T) {
	type scenario struct {
		text     string
		expected bool
	}

	scenarios := []scenario{
		{"&Yes", true},
		{"Save &As...", true},
		{"Read & Write", false},
		{"Tom && Jerry", false},
		{"a&nbsp;b", false},
		{"trailing &", false},
		{"&&&Open", true},
		{"", false},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, HasAccelerator(s.text), s.text)
	}
}

func TestParseSeverity(t *testing.T) {
	for input, expected := range map[string]Severity{"error": Error, "Warning": Warning, "warn": Warning, "off": Off, "": Off} {
		severity, err := ParseSeverity(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, severity)
	}

	_, err := ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestValidateNumerusFormsFollowLinguist(t *testing.T) {
	irish := func(forms ...string) *Catalog {
		return &Catalog{
			Language: "ga",
			Contexts: []*Context{
				{
					Name:     "TransferManager",
					Messages: []*Message{{Source: "%n file(s)", Numerus: true, NumerusForms: forms}},
				},
			},
		}
	}

	assert.Empty(t, Validate(irish("%n chomhad", "%n chomhad", "%n comhad"), DefaultValidateOptions()))

	issues := Validate(irish("%n chomhad", "%n chomhad", "%n chomhad", "%n gcomhad", "%n comhad"), DefaultValidateOptions())
	require.Len(t, issues, 1)
	assert.Equal(t, IssueNumerus, issues[0].Kind)
	assert.Equal(t, "expected 3 numerus forms, found 5", issues[0].Detail)
}

func TestValidateChecksEveryLengthVariant(t *testing.T) {
	c := &Catalog{
		Language: "id",
		Contexts: []*Context{
			{
				Name: "InfoDialog",
				Messages: []*Message{
					{Source: "%1 syncs", Variants: true, LengthVariants: []string{"%1 sinkronisasi", "sink"}},
				},
			},
		},
	}

	issues := Validate(c, DefaultValidateOptions())
	require.Len(t, issues, 1)
	assert.Equal(t, IssuePlaceholders, issues[0].Kind)
	assert.Equal(t, "missing %1", issues[0].Detail)
}
