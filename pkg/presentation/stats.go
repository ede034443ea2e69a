package presentation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/config"
	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/christophe-duc/lazyts/pkg/utils"
	"github.com/jesseduffield/asciigraph"
	"github.com/mcuadros/go-lookup"
	"github.com/samber/lo"
)

// RenderStatsTable shows one row per context plus a total row. The columns
// between the context name and the completion come from the config.
func RenderStatsTable(theme *Theme, tr *i18n.TranslationSet, columns []config.ColumnConfig, stats catalog.CatalogStats) (string, error) {
	headers := []string{tr.ContextColumn}
	for _, column := range columns {
		headers = append(headers, column.Title)
	}
	headers = append(headers, tr.CompletionColumn)

	rows := [][]string{theme.Headers(headers)}
	for _, ctx := range stats.Contexts {
		row, err := statsRow(ctx.Name, columns, ctx)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	total, err := statsRow(tr.TotalRow, columns, stats.Summary)
	if err != nil {
		return "", err
	}
	rows = append(rows, total)

	// every column but the first is a number
	rightAligned := []int{}
	for i := 1; i < len(headers); i++ {
		rightAligned = append(rightAligned, i)
	}
	return utils.RenderAlignedTable(rows, rightAligned)
}

func statsRow(name string, columns []config.ColumnConfig, stats catalog.Stats) ([]string, error) {
	row := []string{name}
	for _, column := range columns {
		value, err := lookup.LookupString(stats, column.StatPath)
		if err != nil {
			return nil, fmt.Errorf("Could not find key: %s", column.StatPath)
		}
		number, err := getFloat(value.Interface())
		if err != nil {
			return nil, err
		}
		row = append(row, strconv.FormatFloat(number, 'f', -1, 64))
	}
	return append(row, formatPercentage(stats.Completion())), nil
}

func formatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// RenderCompletionGraph plots the completion of every context, in file order
func RenderCompletionGraph(theme *Theme, graphConfig config.GraphConfig, stats catalog.CatalogStats) string {
	if len(stats.Contexts) == 0 {
		return ""
	}

	data := lo.Map(stats.Contexts, func(ctx catalog.Stats, _ int) float64 {
		return ctx.Completion()
	})

	height := 10
	if graphConfig.Height > 0 {
		height = graphConfig.Height
	}

	caption := fmt.Sprintf("%s: %0.1f", graphConfig.Caption, stats.Summary.Completion())
	caption = strings.TrimPrefix(caption, ": ")

	graph := asciigraph.Plot(
		data,
		asciigraph.Height(height),
		asciigraph.Min(0),
		asciigraph.Max(100),
		asciigraph.Caption(caption),
	)
	return theme.Colored(graph, graphConfig.Color)
}

// from Dave C's answer at https://stackoverflow.com/questions/20767724/converting-unknown-interface-to-float64-in-golang
func getFloat(unk interface{}) (float64, error) {
	floatType := reflect.TypeOf(float64(0))
	stringType := reflect.TypeOf("")

	switch i := unk.(type) {
	case float64:
		return i, nil
	case int:
		return float64(i), nil
	case string:
		return strconv.ParseFloat(i, 64)
	default:
		v := reflect.Indirect(reflect.ValueOf(unk))
		if v.Type().ConvertibleTo(floatType) {
			return v.Convert(floatType).Float(), nil
		} else if v.Type().ConvertibleTo(stringType) {
			return strconv.ParseFloat(v.Convert(stringType).String(), 64)
		}
		return math.NaN(), fmt.Errorf("Can't convert %v to float64", v.Type())
	}
}
