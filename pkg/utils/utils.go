package utils

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
)

// SplitLines takes a multiline string and splits it on newlines
// currently we are also stripping \r's which may have adverse effects for
// windows users (but no issues have been raised yet)
func SplitLines(multilineString string) []string {
	multilineString = strings.Replace(multilineString, "\r", "", -1)
	if multilineString == "" || multilineString == "\n" {
		return make([]string, 0)
	}
	lines := strings.Split(multilineString, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	return lines
}

// DisplayWidth is the number of terminal cells str takes up once its colors
// are stripped. Wide scripts take two cells per rune, Georgian takes one.
func DisplayWidth(str string) int {
	return runewidth.StringWidth(Decolorise(str))
}

// WithPadding pads a string as much as you want
func WithPadding(str string, padding int) string {
	width := DisplayWidth(str)
	if padding < width {
		return str
	}
	return str + strings.Repeat(" ", padding-width)
}

// WithLeftPadding is WithPadding for right aligned columns
func WithLeftPadding(str string, padding int) string {
	width := DisplayWidth(str)
	if padding < width {
		return str
	}
	return strings.Repeat(" ", padding-width) + str
}

// ColoredString takes a string and a colour attribute and returns a colored
// string with that attribute
func ColoredString(str string, colorAttribute color.Attribute) string {
	// fatih/color has no default attribute, so FgWhite stands in for the terminal's own colour
	if colorAttribute == color.FgWhite {
		return str
	}
	colour := color.New(colorAttribute)
	return ColoredStringDirect(str, colour)
}

// ColoredStringDirect used for aggregating a few color attributes rather than
// just sending a single one
func ColoredStringDirect(str string, colour *color.Color) string {
	return colour.SprintFunc()(fmt.Sprint(str))
}

// ResolvePlaceholderString populates a template with values
func ResolvePlaceholderString(str string, arguments map[string]string) string {
	for key, value := range arguments {
		str = strings.Replace(str, "{{"+key+"}}", value, -1)
	}
	return str
}

// RenderAlignedTable takes an array of string arrays and returns a table
// containing the values. Columns whose index is in rightAligned are padded on
// the left. The last column is never padded.
func RenderAlignedTable(stringArrays [][]string, rightAligned []int) (string, error) {
	if len(stringArrays) == 0 {
		return "", nil
	}
	if !displayArraysAligned(stringArrays) {
		return "", errors.New("Each item must return the same number of strings to display")
	}

	padWidths := getPadWidths(stringArrays)
	paddedDisplayStrings := getPaddedDisplayStrings(stringArrays, padWidths, rightAligned)

	return strings.Join(paddedDisplayStrings, "\n"), nil
}

var decoloriseRegex = regexp.MustCompile(`\x1B\[([0-9]{1,2}(;[0-9]{1,2})*)?[m|K]`)

// Decolorise strips a string of color
func Decolorise(str string) string {
	return decoloriseRegex.ReplaceAllString(str, "")
}

func getPadWidths(stringArrays [][]string) []int {
	if len(stringArrays[0]) <= 1 {
		return []int{}
	}
	padWidths := make([]int, len(stringArrays[0])-1)
	for i := range padWidths {
		for _, strings := range stringArrays {
			if width := DisplayWidth(strings[i]); width > padWidths[i] {
				padWidths[i] = width
			}
		}
	}
	return padWidths
}

func getPaddedDisplayStrings(stringArrays [][]string, padWidths []int, rightAligned []int) []string {
	isRightAligned := map[int]bool{}
	for _, i := range rightAligned {
		isRightAligned[i] = true
	}

	paddedDisplayStrings := make([]string, len(stringArrays))
	for i, stringArray := range stringArrays {
		if len(stringArray) == 0 {
			continue
		}
		for j, padWidth := range padWidths {
			if isRightAligned[j] {
				paddedDisplayStrings[i] += WithLeftPadding(stringArray[j], padWidth) + " "
			} else {
				paddedDisplayStrings[i] += WithPadding(stringArray[j], padWidth) + " "
			}
		}
		paddedDisplayStrings[i] += stringArray[len(padWidths)]
	}
	return paddedDisplayStrings
}

// displayArraysAligned returns true if every string array returned from our
// list of displayables has the same length
func displayArraysAligned(stringArrays [][]string) bool {
	for _, strings := range stringArrays {
		if len(strings) != len(stringArrays[0]) {
			return false
		}
	}
	return true
}

// ApplyTemplate renders a text template, e.g. a command template from the
// user config, with the fields of object
func ApplyTemplate(str string, object interface{}) (string, error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(str)
	if err != nil {
		return "", errors.Wrap(err, 0)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, object); err != nil {
		return "", errors.Wrap(err, 0)
	}
	return buf.String(), nil
}

// GetColorAttribute gets the color attribute from the string
func GetColorAttribute(key string) color.Attribute {
	colorMap := map[string]color.Attribute{
		"default":   color.FgWhite,
		"black":     color.FgBlack,
		"red":       color.FgRed,
		"green":     color.FgGreen,
		"yellow":    color.FgYellow,
		"blue":      color.FgBlue,
		"magenta":   color.FgMagenta,
		"cyan":      color.FgCyan,
		"white":     color.FgWhite,
		"bold":      color.Bold,
		"underline": color.Underline,
	}
	value, present := colorMap[key]
	if present {
		return value
	}
	return color.FgWhite
}

// GetColorAttributes maps every key with GetColorAttribute
func GetColorAttributes(keys []string) []color.Attribute {
	attributes := make([]color.Attribute, len(keys))
	for i, key := range keys {
		attributes[i] = GetColorAttribute(key)
	}
	return attributes
}

// CloseMany closes a bunch of closers
func CloseMany(closers []io.Closer) error {
	errorsList := []string{}
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			errorsList = append(errorsList, err.Error())
		}
	}
	if len(errorsList) > 0 {
		return errors.New(strings.Join(errorsList, "\n"))
	}
	return nil
}
