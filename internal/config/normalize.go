package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeDataset(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeCharts()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeDataset() error {
	c.Dataset.Path = strings.TrimSpace(c.Dataset.Path)
	if c.Dataset.Path == "" {
		if value, ok := os.LookupEnv("STREAMLENS_DATASET"); ok && strings.TrimSpace(value) != "" {
			c.Dataset.Path = strings.TrimSpace(value)
		} else {
			c.Dataset.Path = defaultDatasetPath
		}
	}
	expanded, err := expandPath(c.Dataset.Path)
	if err != nil {
		return fmt.Errorf("dataset.path: %w", err)
	}
	c.Dataset.Path = expanded

	formats := make([]string, 0, len(c.Dataset.DateFormats))
	for _, layout := range c.Dataset.DateFormats {
		if layout = strings.TrimSpace(layout); layout != "" {
			formats = append(formats, layout)
		}
	}
	if len(formats) == 0 {
		formats = append(formats, defaultDateFormats...)
	}
	c.Dataset.DateFormats = formats
	return nil
}

func (c *Config) normalizeOutput() error {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		c.Output.Dir = defaultOutputDir
	}
	expanded, err := expandPath(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	c.Output.Dir = expanded
	return nil
}

func (c *Config) normalizeCharts() {
	if c.Charts.FontSize <= 0 {
		c.Charts.FontSize = defaultChartFontSize
	}
	if c.Charts.MovieBins <= 0 {
		c.Charts.MovieBins = defaultMovieBins
	}
	if c.Charts.SeasonBins <= 0 {
		c.Charts.SeasonBins = defaultSeasonBins
	}
	if c.Charts.TrendYears <= 0 {
		c.Charts.TrendYears = defaultTrendYears
	}
	if c.Charts.HeatmapYears <= 0 {
		c.Charts.HeatmapYears = defaultHeatmapYears
	}
	if c.Charts.OverviewWidth <= 0 {
		c.Charts.OverviewWidth = defaultOverviewWidthIn
	}
	palette := make([]string, 0, len(c.Charts.Palette))
	for _, color := range c.Charts.Palette {
		if color = strings.TrimSpace(color); color != "" {
			palette = append(palette, color)
		}
	}
	if len(palette) == 0 {
		palette = append(palette, defaultPalette...)
	}
	c.Charts.Palette = palette
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
