package report

import (
	"fmt"                           // Error wrapping
	"image/color"                   // Bar colors
	"math"                          // Gradient segment lookup
	"os"                            // Output directories
	"path/filepath"                 // Output directories
	"strconv"                       // Age labels
	"survey_system/internal/domain" // Importing domain models

	"github.com/lucasb-eyer/go-colorful" // Perceptual color blending
	"gonum.org/v1/plot"                  // Plot canvas
	"gonum.org/v1/plot/plotter"          // Bar charts and grid
	"gonum.org/v1/plot/plotutil"         // Default series palette
	"gonum.org/v1/plot/vg"               // Lengths
)

// Chart canvas size
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// viridisStops samples the viridis colormap from dark purple to yellow
var viridisStops = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Gradient returns n colors evenly spaced along the viridis ramp
func Gradient(n int) []color.Color {
	stops := make([]colorful.Color, len(viridisStops))
	for i, hex := range viridisStops {
		stops[i], _ = colorful.Hex(hex) // Constant input, cannot fail
	}
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pos := t * float64(len(stops)-1)
		idx := int(math.Floor(pos))
		if idx >= len(stops)-1 {
			out[i] = stops[len(stops)-1]
			continue
		}
		out[i] = stops[idx].BlendLab(stops[idx+1], pos-float64(idx)).Clamped()
	}
	return out
}

// RenderIncomeChart draws one bar per row, income in thousands, labelled by age
func RenderIncomeChart(path string, rows []Row) error {
	p := plot.New()
	p.Title.Text = "Top 10. Highest incomes by Age"
	p.X.Label.Text = "Age"
	p.Y.Label.Text = "Total Income (in thousands $)"
	p.Add(plotter.NewGrid())

	colors := Gradient(len(rows))
	labels := make([]string, len(rows))
	for i, row := range rows {
		bar, err := plotter.NewBarChart(plotter.Values{row.TotalIncome / 1000}, vg.Points(40))
		if err != nil {
			return fmt.Errorf("failed to build income bar: %w", err)
		}
		bar.XMin = float64(i) // One chart per bar so each gets its own color
		bar.Color = colors[i]
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		labels[i] = strconv.Itoa(row.Age)
	}
	if len(labels) > 0 {
		p.NominalX(labels...)
	}
	return savePlot(p, path)
}

// RenderGenderChart draws grouped bars: categories on X, one series per gender
func RenderGenderChart(path string, totals []GenderTotal) error {
	p := plot.New()
	p.Title.Text = "Spending by Category per Gender"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Total Spending ($)"
	p.Legend.Top = true
	p.NominalX(domain.Categories...)

	if len(totals) > 0 {
		p.Legend.Add("Gender") // Text-only entry acts as the legend title
		width := vg.Points(100) / vg.Length(len(totals))
		for i, gt := range totals {
			values := make(plotter.Values, len(domain.Categories))
			for j, c := range domain.Categories {
				values[j] = gt.Totals[c]
			}
			bars, err := plotter.NewBarChart(values, width)
			if err != nil {
				return fmt.Errorf("failed to build bars for gender %q: %w", gt.Gender, err)
			}
			bars.Color = plotutil.Color(i)
			bars.LineStyle.Width = vg.Length(0)
			bars.Offset = vg.Length(float64(i)-float64(len(totals)-1)/2) * width
			p.Add(bars)
			p.Legend.Add(gt.Gender, bars)
		}
	}
	return savePlot(p, path)
}

// savePlot writes p as an image whose format follows the file extension, replacing any previous file
func savePlot(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
