package config

const (
	defaultDatasetPath     = "netflix_titles.csv"
	defaultOutputDir       = "."
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultChartFontSize   = 10
	defaultMovieBins       = 30
	defaultSeasonBins      = 20
	defaultTrendYears      = 20
	defaultHeatmapYears    = 10
	defaultOverviewWidthIn = 12
)

// defaultDateFormats mirror the date_added spellings seen in catalog exports
// ("September 9, 2019", with an occasional leading space handled by trimming).
var defaultDateFormats = []string{
	"January 2, 2006",
	"2006-01-02",
}

// defaultPalette carries the figure colors in draw order: movie bar, show
// bar, trend line, genre bars, country bars, movie histogram, season
// histogram, mean marker.
var defaultPalette = []string{
	"#e74c3c",
	"#3498db",
	"#2c3e50",
	"#f08080",
	"#add8e6",
	"#87ceeb",
	"#90ee90",
	"#ff0000",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Dataset: Dataset{
			Path:        defaultDatasetPath,
			DateFormats: append([]string(nil), defaultDateFormats...),
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Charts: Charts{
			FontSize:      defaultChartFontSize,
			Palette:       append([]string(nil), defaultPalette...),
			MovieBins:     defaultMovieBins,
			SeasonBins:    defaultSeasonBins,
			TrendYears:    defaultTrendYears,
			HeatmapYears:  defaultHeatmapYears,
			OverviewWidth: defaultOverviewWidthIn,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
