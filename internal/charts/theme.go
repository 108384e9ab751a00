package charts

import (
	"image/color"

	"gonum.org/v1/plot/vg"

	"streamlens/internal/config"
)

// Palette slots in draw order.
const (
	colorMovieBar = iota
	colorShowBar
	colorTrendLine
	colorGenreBars
	colorCountryBars
	colorMovieHist
	colorSeasonHist
	colorMeanMarker
)

// Theme carries every styling decision the renderer makes. It is built
// once from configuration and passed in; the package holds no mutable
// style state.
type Theme struct {
	FontSize      vg.Length
	Palette       []color.Color
	MovieBins     int
	SeasonBins    int
	TrendYears    int
	HeatmapYears  int
	OverviewWidth vg.Length
}

// ThemeFromConfig translates the [charts] config section into a Theme.
func ThemeFromConfig(cfg *config.Config) Theme {
	palette := make([]color.Color, 0, len(cfg.Charts.Palette))
	for _, rgb := range cfg.PaletteRGB() {
		palette = append(palette, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
	}
	return Theme{
		FontSize:      vg.Points(cfg.Charts.FontSize),
		Palette:       palette,
		MovieBins:     cfg.Charts.MovieBins,
		SeasonBins:    cfg.Charts.SeasonBins,
		TrendYears:    cfg.Charts.TrendYears,
		HeatmapYears:  cfg.Charts.HeatmapYears,
		OverviewWidth: vg.Length(cfg.Charts.OverviewWidth) * vg.Inch,
	}
}

// Color returns the palette entry for a slot, falling back to dark gray
// when the configured palette is shorter.
func (t Theme) Color(slot int) color.Color {
	if slot >= 0 && slot < len(t.Palette) {
		return t.Palette[slot]
	}
	return color.RGBA{R: 64, G: 64, B: 64, A: 255}
}
