package charts

import (
	"image/color"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"streamlens/internal/analysis"
)

// overviewBars is how many frequency entries the overview figure charts;
// the console listing may show more.
const overviewBars = 10

var countPrinter = message.NewPrinter(language.English)

func (r *Renderer) overviewFigure(report *analysis.Report) (*vgimg.Canvas, error) {
	width := r.theme.OverviewWidth
	_, height := inches(0, 8)
	canvas := vgimg.New(width, height)
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Points(16), PadY: vg.Points(16),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}

	typePlot, err := r.typeBars(report.Types)
	if err != nil {
		return nil, err
	}
	trendPlot, err := r.trendLine(report.Trend)
	if err != nil {
		return nil, err
	}
	genrePlot, err := r.frequencyBars("Top 10 Genres", report.Genres, r.theme.Color(colorGenreBars))
	if err != nil {
		return nil, err
	}
	countryPlot, err := r.frequencyBars("Top 10 Countries", report.Countries, r.theme.Color(colorCountryBars))
	if err != nil {
		return nil, err
	}

	typePlot.Draw(tiles.At(dc, 0, 0))
	trendPlot.Draw(tiles.At(dc, 1, 0))
	genrePlot.Draw(tiles.At(dc, 0, 1))
	countryPlot.Draw(tiles.At(dc, 1, 1))
	return canvas, nil
}

// typeBars draws one bar per content type, each in its own palette color,
// with the count printed above the bar.
func (r *Renderer) typeBars(shares []analysis.CategoryShare) (*plot.Plot, error) {
	p := r.newPlot("Movies vs TV Shows Distribution")
	p.X.Label.Text = "Content Type"
	p.Y.Label.Text = "Count"

	names := make([]string, len(shares))
	labels := plotter.XYLabels{}
	for i, share := range shares {
		names[i] = share.Label

		values := make(plotter.Values, len(shares))
		values[i] = float64(share.Count)
		bars, err := plotter.NewBarChart(values, vg.Points(36))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = 0
		bars.Color = r.theme.Color(colorMovieBar + i%2)
		p.Add(bars)

		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: float64(share.Count)})
		labels.Labels = append(labels.Labels, countPrinter.Sprintf("%d", share.Count))
	}
	if len(labels.XYs) > 0 {
		valueLabels, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		p.Add(valueLabels)
	}
	p.NominalX(names...)
	return p, nil
}

func (r *Renderer) trendLine(trend analysis.Trend) (*plot.Plot, error) {
	p := r.newPlot("Content Releases Over Years")
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Releases"
	p.Add(plotter.NewGrid())

	recent := trend.Recent(r.theme.TrendYears)
	if len(recent) == 0 {
		return p, nil
	}
	xys := make(plotter.XYs, len(recent))
	for i, yc := range recent {
		xys[i] = plotter.XY{X: float64(yc.Year), Y: float64(yc.Count)}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = r.theme.Color(colorTrendLine)
	line.Width = vg.Points(2)
	points.Color = r.theme.Color(colorTrendLine)
	p.Add(line, points)
	return p, nil
}

// frequencyBars draws the leading overviewBars entries as horizontal bars,
// most frequent at the top.
func (r *Renderer) frequencyBars(title string, counts []analysis.TokenCount, barColor color.Color) (*plot.Plot, error) {
	p := r.newPlot(title)
	p.X.Label.Text = "Count"

	limit := overviewBars
	if limit > len(counts) {
		limit = len(counts)
	}
	if limit == 0 {
		return p, nil
	}

	// Bottom-up so the most frequent entry lands on the top row.
	values := make(plotter.Values, limit)
	names := make([]string, limit)
	for i := 0; i < limit; i++ {
		entry := counts[i]
		values[limit-1-i] = float64(entry.Count)
		names[limit-1-i] = entry.Token
	}

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.LineStyle.Width = 0
	bars.Color = barColor
	p.Add(bars)
	p.NominalY(names...)
	return p, nil
}

func (r *Renderer) newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = r.theme.FontSize + 2
	p.X.Label.TextStyle.Font.Size = r.theme.FontSize
	p.Y.Label.TextStyle.Font.Size = r.theme.FontSize
	p.X.Tick.Label.Font.Size = r.theme.FontSize - 2
	p.Y.Tick.Label.Font.Size = r.theme.FontSize - 2
	return p
}
