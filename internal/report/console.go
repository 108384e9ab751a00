package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"streamlens/internal/analysis"
	"streamlens/internal/catalog"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"

	headRows = 5
)

// Writer renders pipeline stage output to a console destination.
type Writer struct {
	out      io.Writer
	colorize bool
	printer  *message.Printer
}

// NewWriter builds a Writer for out. Headings are colorized only when out
// is a terminal.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:      out,
		colorize: shouldColorize(out),
		printer:  message.NewPrinter(language.English),
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Heading prints a section heading with an underline rule.
func (w *Writer) Heading(title string) {
	line := title
	rule := strings.Repeat("=", len(title))
	if w.colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	fmt.Fprintf(w.out, "\n%s\n%s\n", line, rule)
}

func (w *Writer) count(n int) string {
	return w.printer.Sprintf("%d", n)
}

// LoadFailure prints the user-facing diagnostic for an aborted load.
func (w *Writer) LoadFailure(path string, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		fmt.Fprintf(w.out, "Error: could not find dataset at %s\n", path)
		fmt.Fprintln(w.out, "Please ensure the catalog CSV exists at the configured path.")
		return
	}
	fmt.Fprintf(w.out, "Error loading dataset: %v\n", err)
}

// Overview prints the explore-stage summary of a raw table: shape, columns,
// leading rows, missing-value counts, and release-year statistics.
func (w *Writer) Overview(t catalog.Table, stats analysis.ReleaseYearStats) {
	w.Heading("DATASET OVERVIEW")
	columns := t.Columns()
	fmt.Fprintf(w.out, "Shape: %s rows x %d columns\n", w.count(t.Len()), len(columns))
	fmt.Fprintf(w.out, "Columns: %s\n", strings.Join(columns, ", "))

	fmt.Fprintf(w.out, "\nFirst %d rows:\n", headRows)
	rows := make([][]string, 0, headRows)
	for i, rec := range t.Records {
		if i == headRows {
			break
		}
		rows = append(rows, []string{
			rec.ID, rec.Type, rec.Title, rec.Country, rec.DateAdded,
			fmt.Sprintf("%d", rec.ReleaseYear), rec.Rating, rec.Duration, rec.Genres,
		})
	}
	fmt.Fprintln(w.out, renderTable(columns, rows, nil))

	missing := t.MissingCounts()
	if len(missing) == 0 {
		fmt.Fprintln(w.out, "\nNo missing values")
	} else {
		fmt.Fprintln(w.out, "\nMissing values:")
		for _, column := range columns {
			if n := missing[column]; n > 0 {
				fmt.Fprintf(w.out, "  %s: %s\n", column, w.count(n))
			}
		}
	}

	if stats.Count > 0 {
		fmt.Fprintf(w.out, "\nrelease_year: count %s, mean %.1f, std %.1f, min %d, max %d\n",
			w.count(stats.Count), stats.Mean, stats.StdDev, stats.Min, stats.Max)
	}
}

// CleanSummary prints what the cleaning pass changed.
func (w *Writer) CleanSummary(summary catalog.CleanSummary, cleaned catalog.Table) {
	w.Heading("DATA CLEANING")
	fmt.Fprintf(w.out, "Removed %s duplicate entries\n", w.count(summary.DuplicatesDropped))
	fmt.Fprintf(w.out, "Forward-filled %s dates\n", w.count(summary.DatesFilled))
	fmt.Fprintf(w.out, "Final shape: %s rows\n", w.count(summary.FinalRows))

	missing := cleaned.MissingCounts()
	remaining := 0
	for _, column := range []string{catalog.ColumnCountry, catalog.ColumnRating, catalog.ColumnDuration, catalog.ColumnDateAdded} {
		remaining += missing[column]
	}
	if remaining == 0 {
		fmt.Fprintln(w.out, "No missing values after cleaning")
	} else {
		fmt.Fprintf(w.out, "Missing values after cleaning: %s\n", w.count(remaining))
	}
}

// ContentTypes prints the content-type distribution.
func (w *Writer) ContentTypes(shares []analysis.CategoryShare) {
	w.Heading("CONTENT TYPE ANALYSIS")
	w.distribution(shares)
}

// Ratings prints the rating distribution.
func (w *Writer) Ratings(shares []analysis.CategoryShare) {
	w.Heading("RATING ANALYSIS")
	w.distribution(shares)
}

func (w *Writer) distribution(shares []analysis.CategoryShare) {
	rows := make([][]string, 0, len(shares))
	for _, share := range shares {
		rows = append(rows, []string{
			share.Label,
			w.count(share.Count),
			fmt.Sprintf("%.1f%%", share.Percent),
		})
	}
	fmt.Fprintln(w.out, renderTable(
		[]string{"Category", "Count", "Share"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
}

// ReleaseTrend prints the trailing release years and the overall range.
func (w *Writer) ReleaseTrend(trend analysis.Trend) {
	w.Heading("RELEASE TREND ANALYSIS")
	fmt.Fprintln(w.out, "Top 10 years by number of releases:")
	for _, yc := range trend.Recent(10) {
		fmt.Fprintf(w.out, "  %d: %s releases\n", yc.Year, w.count(yc.Count))
	}
	fmt.Fprintf(w.out, "Release year range: %d - %d\n", trend.MinYear, trend.MaxYear)
}

// TokenFrequency prints the leading entries of a frequency table.
func (w *Writer) TokenFrequency(heading, label string, counts []analysis.TokenCount, limit int) {
	w.Heading(heading)
	if limit > len(counts) {
		limit = len(counts)
	}
	rows := make([][]string, 0, limit)
	for i := 0; i < limit; i++ {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			counts[i].Token,
			w.count(counts[i].Count),
		})
	}
	fmt.Fprintln(w.out, renderTable(
		[]string{"#", label, "Count"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	))
}

// Durations prints movie runtime and TV season statistics.
func (w *Writer) Durations(movies, shows analysis.DurationStats) {
	w.Heading("DURATION ANALYSIS")
	if movies.Count() > 0 {
		fmt.Fprintf(w.out, "Average movie duration: %.1f minutes\n", movies.Mean)
		fmt.Fprintf(w.out, "Median movie duration: %.1f minutes\n", movies.Median)
		fmt.Fprintf(w.out, "Duration range: %d - %d minutes\n", movies.Min, movies.Max)
	} else {
		fmt.Fprintln(w.out, "No parseable movie durations")
	}
	if shows.Count() > 0 {
		fmt.Fprintf(w.out, "Average TV show seasons: %.1f\n", shows.Mean)
		fmt.Fprintf(w.out, "Median TV show seasons: %.1f\n", shows.Median)
		fmt.Fprintf(w.out, "Seasons range: %d - %d\n", shows.Min, shows.Max)
	} else {
		fmt.Fprintln(w.out, "No parseable TV show durations")
	}
}

// Completion prints the generated artifact paths.
func (w *Writer) Completion(paths []string) {
	w.Heading("ANALYSIS COMPLETED")
	fmt.Fprintln(w.out, "Generated files:")
	for _, path := range paths {
		fmt.Fprintf(w.out, "  - %s\n", path)
	}
}
