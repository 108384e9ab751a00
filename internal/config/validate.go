package config

import (
	"fmt"
	"time"
)

// Validate reports the first configuration problem found, or nil.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	// Reject layouts that cannot round-trip a reference date; a bad layout
	// would silently forward-fill every row.
	reference := time.Date(2019, time.September, 9, 0, 0, 0, 0, time.UTC)
	for _, layout := range c.Dataset.DateFormats {
		if _, err := time.Parse(layout, reference.Format(layout)); err != nil {
			return fmt.Errorf("dataset.date_formats: invalid layout %q: %w", layout, err)
		}
	}

	for _, color := range c.Charts.Palette {
		if _, err := parseHexColor(color); err != nil {
			return fmt.Errorf("charts.palette: %w", err)
		}
	}
	return nil
}

func parseHexColor(value string) ([3]uint8, error) {
	var rgb [3]uint8
	if len(value) != 7 || value[0] != '#' {
		return rgb, fmt.Errorf("invalid color %q (expected #rrggbb)", value)
	}
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(value[1+i*2])
		lo, ok2 := hexNibble(value[2+i*2])
		if !ok1 || !ok2 {
			return rgb, fmt.Errorf("invalid color %q (expected #rrggbb)", value)
		}
		rgb[i] = hi<<4 | lo
	}
	return rgb, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// PaletteRGB returns the configured palette decoded into RGB triples.
func (c *Config) PaletteRGB() [][3]uint8 {
	out := make([][3]uint8, 0, len(c.Charts.Palette))
	for _, color := range c.Charts.Palette {
		rgb, err := parseHexColor(color)
		if err != nil {
			continue
		}
		out = append(out, rgb)
	}
	return out
}
