// Prints, per language, the UI strings that are still missing and the ones
// whose format verbs don't line up with english.
package main

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/samber/lo"
)

var verbRegex = regexp.MustCompile(`%[sdvq]`)

func main() {
	fmt.Println(getOutstandingTranslations())
}

func getOutstandingTranslations() string {
	sets := i18n.GetTranslationSets()
	english := reflect.ValueOf(sets[i18n.EN])

	codes := lo.Without(lo.Keys(sets), i18n.EN)
	sort.Strings(codes)

	var output strings.Builder
	for _, code := range codes {
		output.WriteString(code + ":\n")
		v := reflect.ValueOf(sets[code])

		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Name
			value := v.Field(i).String()
			if value == "" {
				output.WriteString("missing " + name + "\n")
				continue
			}
			expected := verbRegex.FindAllString(english.Field(i).String(), -1)
			if !reflect.DeepEqual(expected, verbRegex.FindAllString(value, -1)) {
				output.WriteString(fmt.Sprintf("verbs of %s should be %v\n", name, expected))
			}
		}
		output.WriteString("\n")
	}
	return output.String()
}
