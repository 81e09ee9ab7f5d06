package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-chart/internal/chart"
	"github.com/rxtech-lab/argo-chart/internal/indicator"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for absent values.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const absent = "-"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func renderIndicatorTable(c *chart.Chart, r types.Range) string {
	processors := c.Processors()

	headers := []string{"#", "time", "close"}
	for _, p := range processors {
		headers = append(headers, columnName(p))
	}

	t := newTable(headers...)

	for i := r.Start; i < r.End; i++ {
		quote := c.Quote(i)
		if quote.IsNone() {
			continue
		}

		q := quote.Unwrap()
		row := []string{strconv.Itoa(i), q.Time.Format("2006-01-02 15:04"), formatFloat(q.Close)}

		for _, p := range processors {
			row = append(row, formatIndicator(c, p, i))
		}

		t.Row(row...)
	}

	return t.Render()
}

func renderGroupTable(groups []chart.GroupExtreme) string {
	t := newTable("group", "min", "max", "scale min", "scale max")

	for _, g := range groups {
		bounds := g.Bounds()
		minValue, maxValue := absent, absent

		if g.Point.IsSome() {
			minValue = formatFloat(g.Point.Unwrap().Min)
			maxValue = formatFloat(g.Point.Unwrap().Max)
		}

		t.Row(g.Name, minValue, maxValue, formatFloat(bounds.Min), formatFloat(bounds.Max))
	}

	return t.Render()
}

func columnName(p indicator.QuoteProcessor) string {
	if id, ok := p.ID().(string); ok {
		return id
	}

	return string(p.Name())
}

// formatIndicator renders the value of p at quote index i.
func formatIndicator(c *chart.Chart, p indicator.QuoteProcessor, i int) string {
	switch processor := p.(type) {
	case *indicator.Processor[float64]:
		return formatOption(chart.Lookup(c, processor.Key(), i), formatFloat)
	case *indicator.Processor[types.BOLLValue]:
		return formatOption(chart.Lookup(c, processor.Key(), i), formatBOLL)
	case *indicator.Processor[types.MACDValue]:
		return formatOption(chart.Lookup(c, processor.Key(), i), formatMACD)
	case *indicator.Processor[types.KDJValue]:
		return formatOption(chart.Lookup(c, processor.Key(), i), formatKDJ)
	case *indicator.Processor[types.SARValue]:
		return formatOption(chart.Lookup(c, processor.Key(), i), formatSAR)
	default:
		return absent
	}
}

func formatOption[T any](value optional.Option[T], format func(T) string) string {
	if value.IsNone() {
		return HelpStyle.Render(absent)
	}

	return format(value.Unwrap())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatBOLL(v types.BOLLValue) string {
	return fmt.Sprintf("%s / %s / %s", formatFloat(v.Lower), formatFloat(v.Middle), formatFloat(v.Upper))
}

func formatMACD(v types.MACDValue) string {
	dea, histogram := absent, absent
	if v.Dea.IsSome() {
		dea = formatFloat(v.Dea.Unwrap())
	}

	if v.Histogram.IsSome() {
		histogram = formatFloat(v.Histogram.Unwrap())
	}

	return fmt.Sprintf("%s / %s / %s", formatFloat(v.Diff), dea, histogram)
}

func formatKDJ(v types.KDJValue) string {
	return fmt.Sprintf("%s / %s / %s", formatFloat(v.K), formatFloat(v.D), formatFloat(v.J))
}

func formatSAR(v types.SARValue) string {
	arrow := "▼"
	if v.IsUp {
		arrow = "▲"
	}

	if v.IsReversal {
		arrow += "*"
	}

	return formatFloat(v.SAR) + " " + arrow
}
