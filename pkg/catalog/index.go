package catalog

// Entry is an active, translated message as seen by lookups
type Entry struct {
	Context      string
	Source       string
	Comment      string
	Translation  string
	NumerusForms []string
	Numerus      bool
	Status       Status
}

// NeedsReview is true for translations that are used but not yet finished
func (e Entry) NeedsReview() bool {
	return e.Status == Unfinished
}

type entryKey struct {
	context string
	source  string
	comment string
}

// Index is an immutable lookup table built from a catalog. It is safe for
// concurrent use. Every miss falls back to the source text.
type Index struct {
	language       string
	sourceLanguage string
	entries        map[entryKey]Entry
	plurals        pluralRules
}

// NewIndex builds the lookup table of a catalog. Obsolete and untranslated
// messages are left out, and length variant messages are looked up by their
// first non-empty variant; when several messages share a key the first one in
// document order wins. Later changes to the catalog do not affect the index.
func NewIndex(c *Catalog) *Index {
	idx := &Index{
		language:       c.Language,
		sourceLanguage: c.SourceLanguage,
		entries:        map[entryKey]Entry{},
		plurals:        newPluralRules(c.Language),
	}

	c.Each(func(ctx *Context, msg *Message) {
		if !msg.IsActive() || !msg.IsTranslated() {
			return
		}
		key := entryKey{context: ctx.Name, source: msg.Source, comment: msg.Comment}
		if _, exists := idx.entries[key]; exists {
			return
		}
		idx.entries[key] = Entry{
			Context:      ctx.Name,
			Source:       msg.Source,
			Comment:      msg.Comment,
			Translation:  msg.Text(),
			NumerusForms: append([]string(nil), msg.NumerusForms...),
			Numerus:      msg.Numerus,
			Status:       msg.Status,
		}
	})

	return idx
}

// Language is the target language of the indexed catalog
func (idx *Index) Language() string {
	return idx.language
}

// SourceLanguage is the language of the source texts
func (idx *Index) SourceLanguage() string {
	return idx.sourceLanguage
}

// Len returns the number of entries available for lookup
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Find returns the entry for the given key. A disambiguation comment that
// matches nothing is retried without the comment.
func (idx *Index) Find(context, source, comment string) (Entry, bool) {
	if entry, ok := idx.entries[entryKey{context: context, source: source, comment: comment}]; ok {
		return entry, true
	}
	if comment != "" {
		entry, ok := idx.entries[entryKey{context: context, source: source}]
		return entry, ok
	}
	return Entry{}, false
}

// Lookup returns the translation of source in context, or source itself when
// there is none
func (idx *Index) Lookup(context, source string) string {
	return idx.LookupComment(context, source, "")
}

// LookupComment is like Lookup for messages with a disambiguation comment
func (idx *Index) LookupComment(context, source, comment string) string {
	entry, ok := idx.Find(context, source, comment)
	if !ok {
		return source
	}
	if entry.Numerus {
		return firstNonEmpty(entry.NumerusForms, source)
	}
	return entry.Translation
}

// LookupN returns the numerus form matching n. Plain messages ignore n.
func (idx *Index) LookupN(context, source, comment string, n int) string {
	entry, ok := idx.Find(context, source, comment)
	if !ok {
		return source
	}
	if !entry.Numerus {
		return entry.Translation
	}

	i := idx.plurals.index(n)
	if i >= len(entry.NumerusForms) {
		i = len(entry.NumerusForms) - 1
	}
	if i < 0 || entry.NumerusForms[i] == "" {
		return source
	}
	return entry.NumerusForms[i]
}

func firstNonEmpty(texts []string, fallback string) string {
	for _, text := range texts {
		if text != "" {
			return text
		}
	}
	return fallback
}
