package charts

import (
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"streamlens/internal/analysis"
)

// monthGrid adapts a pivot to the plotter heatmap grid: columns are
// calendar months, rows are years ascending.
type monthGrid struct {
	pivot analysis.Pivot
}

func (g monthGrid) Dims() (c, r int)   { return 12, len(g.pivot.Years) }
func (g monthGrid) Z(c, r int) float64 { return float64(g.pivot.Counts[r][c]) }
func (g monthGrid) X(c int) float64    { return float64(c + 1) }
func (g monthGrid) Y(r int) float64    { return float64(g.pivot.Years[r]) }

func (r *Renderer) heatmapFigure(report *analysis.Report) (*vgimg.Canvas, error) {
	width, height := inches(12, 8)
	canvas := vgimg.New(width, height)
	dc := draw.New(canvas)

	p := r.newPlot("Releases Heatmap (Year vs Month)")
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Year"

	pivot := report.Monthly.RecentYears(r.theme.HeatmapYears)
	if len(pivot.Years) > 0 {
		grid := monthGrid{pivot: pivot}
		heatmap := plotter.NewHeatMap(grid, palette.Heat(12, 1))
		p.Add(heatmap)

		labels, err := cellLabels(pivot)
		if err != nil {
			return nil, err
		}
		p.Add(labels)

		p.X.Tick.Marker = plot.ConstantTicks(monthTicks())
		p.Y.Tick.Marker = plot.ConstantTicks(yearTicks(pivot.Years))
	}

	p.Draw(dc)
	return canvas, nil
}

// cellLabels annotates every cell with its count, centered.
func cellLabels(pivot analysis.Pivot) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{}
	for row, year := range pivot.Years {
		for month := 0; month < 12; month++ {
			xyl.XYs = append(xyl.XYs, plotter.XY{
				X: float64(month + 1),
				Y: float64(year),
			})
			xyl.Labels = append(xyl.Labels, strconv.Itoa(pivot.Counts[row][month]))
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	return labels, nil
}

func monthTicks() []plot.Tick {
	ticks := make([]plot.Tick, 0, 12)
	for month := time.January; month <= time.December; month++ {
		ticks = append(ticks, plot.Tick{
			Value: float64(month),
			Label: month.String()[:3],
		})
	}
	return ticks
}

func yearTicks(years []int) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(years))
	for _, year := range years {
		ticks = append(ticks, plot.Tick{
			Value: float64(year),
			Label: strconv.Itoa(year),
		})
	}
	return ticks
}
