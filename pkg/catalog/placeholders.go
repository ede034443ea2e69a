package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Placeholder is one positional marker in a message, as substituted by
// QString::arg at render time
type Placeholder struct {
	// Text is the marker as written, e.g. "%1", "%L2" or "%n"
	Text string
	// Offset is the byte offset of the marker in the message
	Offset int
}

// Key identifies the argument the marker is replaced with. The localized
// form %L1 refers to the same argument as %1.
func (p Placeholder) Key() string {
	return strings.Replace(p.Text, "%L", "%", 1)
}

// number is the argument number of the marker. %n has none.
func (p Placeholder) number() (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(p.Key(), "%"))
	return n, err == nil
}

// Placeholders returns the markers of text in order of appearance. A marker
// is a percent sign, an optional L, then either one or two digits or n. Any
// other percent sign is literal text, so "%2%" yields just %2.
func Placeholders(text string) []Placeholder {
	placeholders := []Placeholder{}

	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			continue
		}

		j := i + 1
		if j < len(text) && text[j] == 'L' {
			j++
		}
		if j >= len(text) {
			break
		}

		end := j
		switch {
		case text[j] == 'n':
			end = j + 1
		case isDigit(text[j]):
			end = j + 1
			if end < len(text) && isDigit(text[end]) {
				end++
			}
		default:
			continue
		}

		if text[j] == '0' && end == j+1 {
			// %0 is not a marker
			continue
		}

		placeholders = append(placeholders, Placeholder{Text: text[i:end], Offset: i})
		i = end - 1
	}

	return placeholders
}

// PlaceholderKeys returns the sorted marker keys of text, duplicates included
func PlaceholderKeys(text string) []string {
	keys := []string{}
	for _, p := range Placeholders(text) {
		keys = append(keys, p.Key())
	}
	sort.Strings(keys)
	return keys
}

// PlaceholderDiff tells which markers of the source went missing in the
// translation and which ones the translation added. Both are multisets, so a
// marker used twice in the translation but once in the source is an extra.
type PlaceholderDiff struct {
	Missing []string
	Extra   []string
}

// Empty is true when source and translation use the same markers
func (d PlaceholderDiff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// ComparePlaceholders diffs the markers of source and translation. The order
// of markers is free, translators reorder them all the time.
func ComparePlaceholders(source, translation string) PlaceholderDiff {
	counts := map[string]int{}
	for _, key := range PlaceholderKeys(source) {
		counts[key]++
	}
	for _, key := range PlaceholderKeys(translation) {
		counts[key]--
	}

	diff := PlaceholderDiff{Missing: []string{}, Extra: []string{}}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		n := counts[key]
		for ; n > 0; n-- {
			diff.Missing = append(diff.Missing, key)
		}
		for ; n < 0; n++ {
			diff.Extra = append(diff.Extra, key)
		}
	}
	return diff
}

// Arg substitutes args the way chained QString::arg calls do: each argument
// replaces every marker carrying the lowest number left in the text. Extra
// arguments are ignored.
func Arg(text string, args ...string) string {
	for _, arg := range args {
		lowest := -1
		for _, p := range Placeholders(text) {
			if n, ok := p.number(); ok && (lowest == -1 || n < lowest) {
				lowest = n
			}
		}
		if lowest == -1 {
			break
		}

		text = replacePlaceholders(text, arg, func(p Placeholder) bool {
			n, ok := p.number()
			return ok && n == lowest
		})
	}
	return text
}

// ArgCount replaces %n and %Ln with n, as tr does for numerus messages
func ArgCount(text string, n int) string {
	return replacePlaceholders(text, strconv.Itoa(n), func(p Placeholder) bool {
		return p.Key() == "%n"
	})
}

func replacePlaceholders(text, value string, match func(Placeholder) bool) string {
	var b strings.Builder
	last := 0
	for _, p := range Placeholders(text) {
		if !match(p) {
			continue
		}
		b.WriteString(text[last:p.Offset])
		b.WriteString(value)
		last = p.Offset + len(p.Text)
	}
	b.WriteString(text[last:])
	return b.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
