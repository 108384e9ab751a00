package analysis

import "time"

// Result list sizes reported by the frequency analyzers.
const (
	TopGenres    = 10
	TopCountries = 15
)

// CategoryShare is one slice of a categorical distribution.
type CategoryShare struct {
	Label   string
	Count   int
	Percent float64
}

// YearCount is the number of titles released in one year.
type YearCount struct {
	Year  int
	Count int
}

// Trend is the per-year release counts in ascending year order.
type Trend struct {
	Years   []YearCount
	MinYear int
	MaxYear int
}

// Recent returns the trailing n years of the trend.
func (t Trend) Recent(n int) []YearCount {
	if n <= 0 || n >= len(t.Years) {
		return t.Years
	}
	return t.Years[len(t.Years)-n:]
}

// TokenCount is one entry of a split-and-count frequency table.
type TokenCount struct {
	Token string
	Count int
}

// DurationStats aggregates the parsed duration values of one content type.
type DurationStats struct {
	Values []int
	Mean   float64
	Median float64
	Min    int
	Max    int
}

// Count returns the number of parsed values.
func (d DurationStats) Count() int { return len(d.Values) }

// Pivot is the year-by-month count of catalog additions, years ascending.
// Counts[i][m-1] is the count for Years[i] and calendar month m.
type Pivot struct {
	Years  []int
	Counts [][]int
}

// RecentYears returns a pivot restricted to the trailing n years.
func (p Pivot) RecentYears(n int) Pivot {
	if n <= 0 || n >= len(p.Years) {
		return p
	}
	start := len(p.Years) - n
	return Pivot{Years: p.Years[start:], Counts: p.Counts[start:]}
}

// Monthly reports the count for a year and month, zero when absent.
func (p Pivot) Monthly(year int, month time.Month) int {
	for i, y := range p.Years {
		if y == year {
			return p.Counts[i][int(month)-1]
		}
	}
	return 0
}

// ReleaseYearStats describes the release_year column for the explore stage.
type ReleaseYearStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Report bundles every aggregate of one analysis pass. The genre and
// country lists carry the full frequency ordering; consumers slice the
// leading TopGenres/TopCountries entries for display.
type Report struct {
	Rows           int
	Types          []CategoryShare
	Trend          Trend
	Genres         []TokenCount
	Countries      []TokenCount
	MovieDurations DurationStats
	TVSeasons      DurationStats
	Ratings        []CategoryShare
	Monthly        Pivot
}
