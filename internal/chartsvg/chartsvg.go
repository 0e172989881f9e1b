// Package chartsvg renders dashboard chart view models to SVG so clients
// without a charting library can embed the images directly.
package chartsvg

import (
	"bytes"
	"fmt"
	"html"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ZA87447/Dashboard-bot/internal/dashboard"
)

const (
	chartWidth  = 720
	chartHeight = 420
)

// Bar renders a bar chart view model. An empty chart yields a valid
// placeholder image rather than an error.
func Bar(vm dashboard.BarChart) ([]byte, error) {
	if len(vm.Bars) == 0 {
		return placeholder(vm.Title), nil
	}

	values := make([]chart.Value, 0, len(vm.Bars))
	for _, b := range vm.Bars {
		values = append(values, chart.Value{Label: b.Label, Value: b.Value})
	}

	c := chart.BarChart{
		Title:  vm.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth: 48,
		Bars:     values,
	}

	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("rendering bar chart %q: %w", vm.Title, err)
	}
	return buf.Bytes(), nil
}

// Pie renders a pie chart view model. Empty or all-zero slices yield the
// placeholder, since a pie needs a positive total.
func Pie(vm dashboard.PieChart) ([]byte, error) {
	values := make([]chart.Value, 0, len(vm.Slices))
	var total float64
	for _, s := range vm.Slices {
		values = append(values, chart.Value{Label: s.Label, Value: s.Value})
		total += s.Value
	}
	if total <= 0 {
		return placeholder(vm.Title), nil
	}

	c := chart.PieChart{
		Title:  vm.Title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("rendering pie chart %q: %w", vm.Title, err)
	}
	return buf.Bytes(), nil
}

// placeholder is the empty-state image: title plus a "no data" note.
func placeholder(title string) []byte {
	return fmt.Appendf(nil,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
			`<text x="16" y="28" font-family="sans-serif" font-size="16">%s</text>`+
			`<text x="16" y="56" font-family="sans-serif" font-size="13" fill="#888">no data for this selection</text>`+
			`</svg>`,
		chartWidth, chartHeight, html.EscapeString(title))
}
