package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-errors/errors"
	"github.com/samber/lo"
)

// Severity says how much an issue matters
type Severity int

const (
	// Off disables a check
	Off Severity = iota
	// Warning issues are reported but do not fail validation
	Warning
	// Error issues fail validation
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "off"
}

// ParseSeverity reads a severity as written in the user config
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "off", "":
		return Off, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	}
	return Off, errors.Errorf("unknown severity %q, expected one of error, warning, off", s)
}

// IssueKind names a check
type IssueKind string

const (
	IssuePlaceholders      IssueKind = "placeholders"
	IssueDuplicates        IssueKind = "duplicates"
	IssueEmptyTranslations IssueKind = "emptyTranslations"
	IssueAccelerators      IssueKind = "accelerators"
	IssueNumerus           IssueKind = "numerus"
	IssueWhitespace        IssueKind = "whitespace"
	IssueHeader            IssueKind = "header"
)

// IssueKinds lists every check in the order they are reported
func IssueKinds() []IssueKind {
	return []IssueKind{
		IssueHeader,
		IssueDuplicates,
		IssuePlaceholders,
		IssueEmptyTranslations,
		IssueAccelerators,
		IssueNumerus,
		IssueWhitespace,
	}
}

// Issue is a single validation finding
type Issue struct {
	Kind     IssueKind
	Severity Severity
	Context  string
	Source   string
	Detail   string
}

// ValidateOptions holds the severity of each check. Checks that are missing
// from the map are off.
type ValidateOptions struct {
	Severities map[IssueKind]Severity
}

// DefaultValidateOptions turns every check on
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{
		Severities: map[IssueKind]Severity{
			IssueHeader:            Warning,
			IssueDuplicates:        Error,
			IssuePlaceholders:      Error,
			IssueEmptyTranslations: Warning,
			IssueAccelerators:      Warning,
			IssueNumerus:           Warning,
			IssueWhitespace:        Warning,
		},
	}
}

type validator struct {
	opts    ValidateOptions
	numerus int
	issues  []Issue
}

// Validate checks the active messages of a catalog. Obsolete messages are
// history and are never reported.
func Validate(c *Catalog, opts ValidateOptions) []Issue {
	v := &validator{
		opts:    opts,
		numerus: NumerusFormCount(c.Language),
		issues:  []Issue{},
	}

	if c.Language == "" {
		v.report(IssueHeader, "", "", "catalog has no language attribute")
	}

	seen := map[entryKey]bool{}
	c.Each(func(ctx *Context, msg *Message) {
		if !msg.IsActive() {
			return
		}

		key := entryKey{context: ctx.Name, source: msg.Source, comment: msg.Comment}
		if seen[key] {
			v.report(IssueDuplicates, ctx.Name, msg.Source, "message is defined more than once in this context")
		}
		seen[key] = true

		v.checkMessage(ctx, msg)
	})

	return v.issues
}

func (v *validator) report(kind IssueKind, context, source, detail string) {
	v.reportFor(nil, kind, context, source, detail)
}

// reportFor records an issue at the configured severity. An error found in
// an unfinished message is only a warning as it is still under review.
func (v *validator) reportFor(msg *Message, kind IssueKind, context, source, detail string) {
	severity := v.opts.Severities[kind]
	if severity == Off {
		return
	}
	if msg != nil && msg.Status == Unfinished && severity == Error {
		severity = Warning
	}
	v.issues = append(v.issues, Issue{
		Kind:     kind,
		Severity: severity,
		Context:  context,
		Source:   source,
		Detail:   detail,
	})
}

func (v *validator) checkMessage(ctx *Context, msg *Message) {
	if !msg.IsTranslated() {
		if msg.Status == Finished && msg.Source != "" {
			v.reportFor(msg, IssueEmptyTranslations, ctx.Name, msg.Source, "finished message has no translation")
		}
		return
	}

	if msg.Numerus && len(msg.NumerusForms) != v.numerus {
		v.reportFor(msg, IssueNumerus, ctx.Name, msg.Source,
			fmt.Sprintf("expected %d numerus forms, found %d", v.numerus, len(msg.NumerusForms)))
	}

	for _, text := range msg.Texts() {
		if text == "" {
			continue
		}
		v.checkPlaceholders(ctx, msg, text)
		v.checkAccelerator(ctx, msg, text)
		v.checkWhitespace(ctx, msg, text)
	}
}

func (v *validator) checkPlaceholders(ctx *Context, msg *Message, text string) {
	diff := ComparePlaceholders(msg.Source, text)
	if msg.Numerus {
		// a numerus form may spell out the count instead of using %n
		diff.Missing = lo.Without(diff.Missing, "%n")
	}
	if diff.Empty() {
		return
	}

	parts := []string{}
	if len(diff.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(diff.Missing, " "))
	}
	if len(diff.Extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(diff.Extra, " "))
	}
	v.reportFor(msg, IssuePlaceholders, ctx.Name, msg.Source, strings.Join(parts, ", "))
}

func (v *validator) checkAccelerator(ctx *Context, msg *Message, text string) {
	inSource := HasAccelerator(msg.Source)
	inTranslation := HasAccelerator(text)
	if inSource == inTranslation {
		return
	}
	detail := "translation adds an accelerator"
	if inSource {
		detail = "translation drops the accelerator"
	}
	v.reportFor(msg, IssueAccelerators, ctx.Name, msg.Source, detail)
}

func (v *validator) checkWhitespace(ctx *Context, msg *Message, text string) {
	if msg.Source == "" {
		return
	}
	if startsWithSpace(msg.Source) != startsWithSpace(text) {
		v.reportFor(msg, IssueWhitespace, ctx.Name, msg.Source, "leading whitespace differs from source")
	}
	if endsWithSpace(msg.Source) != endsWithSpace(text) {
		v.reportFor(msg, IssueWhitespace, ctx.Name, msg.Source, "trailing whitespace differs from source")
	}
}

var entityPattern = regexp.MustCompile(`^&(#[0-9]+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

// HasAccelerator reports whether text carries a keyboard mnemonic such as the
// Y of "&Yes". A doubled ampersand is a literal one, and so is an ampersand
// followed by a space or starting an HTML entity.
func HasAccelerator(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != '&' {
			continue
		}
		if i+1 >= len(text) {
			return false
		}
		next := text[i+1]
		if next == '&' {
			i++
			continue
		}
		if next == ' ' || entityPattern.MatchString(text[i:]) {
			continue
		}
		return true
	}
	return false
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

