/*
Package catalog reads, writes and queries Qt Linguist translation catalogs
(.ts files).

A Catalog is the document as written by lupdate: an ordered list of contexts,
each holding an ordered list of messages. Catalogs are plain data; build an
Index from one to perform lookups.
*/
package catalog

// DefaultVersion is the TS format version written when a catalog has none.
const DefaultVersion = "2.1"

// Catalog is one translation file for a single target language
type Catalog struct {
	Version        string
	Language       string
	SourceLanguage string
	Contexts       []*Context
	Extras         []RawElement
}

// Context groups the messages of one dialog or widget
type Context struct {
	Name     string
	Comment  string
	Messages []*Message
	Extras   []RawElement
}

// Location points at the place in the application source a message was
// extracted from
type Location struct {
	Filename string
	Line     string
}

// Message is one translatable unit
type Message struct {
	ID        string
	Locations []Location

	Source    string
	OldSource string

	// Comment disambiguates identical source texts within a context and is
	// part of the lookup key
	Comment           string
	OldComment        string
	ExtraComment      string
	TranslatorComment string

	Translation string

	// Variants messages hold translations of decreasing length in
	// LengthVariants and leave Translation empty
	Variants       bool
	LengthVariants []string

	Numerus      bool
	NumerusForms []string
	// NumerusVariants is nil unless some numerus form has length variants.
	// It then has one entry per form, nil for forms without variants, and
	// NumerusForms holds the first non-empty variant of each.
	NumerusVariants [][]string

	Status Status
	Extras []RawElement
}

// RawElement is an element lazyts doesn't interpret, like <userdata> or
// <extra-po-flags>. It is written back as it was read.
type RawElement struct {
	Name     string
	Attrs    []Attr
	InnerXML string
}

// Attr is an attribute of a RawElement
type Attr struct {
	Name  string
	Value string
}

// IsActive tells us whether the message takes part in lookups
func (m *Message) IsActive() bool {
	return !m.Status.IsObsolete()
}

// IsTranslated returns true when there is some non-empty translation text
func (m *Message) IsTranslated() bool {
	if m.Numerus {
		for _, form := range m.NumerusForms {
			if form != "" {
				return true
			}
		}
		return false
	}
	if m.Variants {
		return firstNonEmpty(m.LengthVariants, "") != ""
	}
	return m.Translation != ""
}

// Text is the translation used by lookups: the first non-empty length
// variant of a variants message, otherwise Translation
func (m *Message) Text() string {
	if m.Variants {
		return firstNonEmpty(m.LengthVariants, "")
	}
	return m.Translation
}

// Texts returns every translation text of the message, one per numerus form
// for numerus messages and one per length variant
func (m *Message) Texts() []string {
	switch {
	case m.Numerus && m.NumerusVariants != nil:
		texts := []string{}
		for i, form := range m.NumerusForms {
			if i < len(m.NumerusVariants) && m.NumerusVariants[i] != nil {
				texts = append(texts, m.NumerusVariants[i]...)
			} else {
				texts = append(texts, form)
			}
		}
		return texts
	case m.Numerus:
		return m.NumerusForms
	case m.Variants:
		return m.LengthVariants
	}
	return []string{m.Translation}
}

// Context returns the context with the given name, or nil
func (c *Catalog) Context(name string) *Context {
	for _, ctx := range c.Contexts {
		if ctx.Name == name {
			return ctx
		}
	}
	return nil
}

// Messages returns every message of every context in document order
func (c *Catalog) Messages() []*Message {
	messages := []*Message{}
	for _, ctx := range c.Contexts {
		messages = append(messages, ctx.Messages...)
	}
	return messages
}

// Each calls f for every message along with its context, in document order
func (c *Catalog) Each(f func(ctx *Context, msg *Message)) {
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			f(ctx, msg)
		}
	}
}
