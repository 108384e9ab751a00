package charts

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"streamlens/internal/analysis"
)

func (r *Renderer) detailFigure(report *analysis.Report) (*vgimg.Canvas, error) {
	width, height := inches(15, 5)
	canvas := vgimg.New(width, height)
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows: 1, Cols: 3,
		PadX: vg.Points(16),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}

	moviePlot, err := r.durationHistogram(
		"Movie Duration Distribution", "Duration (minutes)", "min",
		report.MovieDurations, r.theme.MovieBins, colorMovieHist,
	)
	if err != nil {
		return nil, err
	}
	moviePlot.Draw(tiles.At(dc, 0, 0))

	showPlot, err := r.durationHistogram(
		"TV Show Seasons Distribution", "Number of Seasons", "seasons",
		report.TVSeasons, r.theme.SeasonBins, colorSeasonHist,
	)
	if err != nil {
		return nil, err
	}
	showPlot.Draw(tiles.At(dc, 1, 0))

	if err := r.ratingPie(report.Ratings, tiles.At(dc, 2, 0)); err != nil {
		return nil, err
	}
	return canvas, nil
}

// durationHistogram bins the parsed values and overlays a dashed mean
// marker with a legend entry.
func (r *Renderer) durationHistogram(title, xLabel, unit string, stats analysis.DurationStats, bins, colorSlot int) (*plot.Plot, error) {
	p := r.newPlot(title)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"
	if stats.Count() == 0 {
		return p, nil
	}

	values := make(plotter.Values, stats.Count())
	for i, v := range stats.Values {
		values[i] = float64(v)
	}
	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = r.theme.Color(colorSlot)
	p.Add(hist)

	_, _, _, ymax := hist.DataRange()
	marker, err := plotter.NewLine(plotter.XYs{
		{X: stats.Mean, Y: 0},
		{X: stats.Mean, Y: ymax},
	})
	if err != nil {
		return nil, err
	}
	marker.Color = r.theme.Color(colorMeanMarker)
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("Mean: %.1f %s", stats.Mean, unit), marker)
	p.Legend.Top = true
	return p, nil
}

// ratingPie renders the rating distribution with go-chart and composites
// the resulting image into the figure tile.
func (r *Renderer) ratingPie(shares []analysis.CategoryShare, tile draw.Canvas) error {
	if len(shares) == 0 {
		empty := r.newPlot("Content Rating Distribution")
		empty.Draw(tile)
		return nil
	}

	values := make([]chart.Value, 0, len(shares))
	for _, share := range shares {
		values = append(values, chart.Value{
			Value: float64(share.Count),
			Label: fmt.Sprintf("%s %.1f%%", share.Label, share.Percent),
		})
	}
	pie := chart.PieChart{
		Title:  "Content Rating Distribution",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render rating pie: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode rating pie: %w", err)
	}
	tile.DrawImage(tile.Rectangle, img)
	return nil
}
