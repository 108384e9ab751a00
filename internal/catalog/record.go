package catalog

import "time"

// Content type values as they appear in the catalog.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// Unknown is the sentinel the cleaner substitutes for missing categorical
// values.
const Unknown = "Unknown"

// Record is one row of the catalog: a single movie or show entry.
//
// String fields hold the raw cell text; an empty string means the cell was
// missing. Added, YearAdded, and MonthAdded are derived by the cleaner and
// remain zero on raw tables (and on cleaned rows whose date never became
// computable).
type Record struct {
	ID          string
	Type        string
	Title       string
	Country     string
	DateAdded   string
	ReleaseYear int
	Rating      string
	Duration    string
	Genres      string

	Added      time.Time
	YearAdded  int
	MonthAdded time.Month
}

// Table is an in-memory catalog, either raw (as loaded) or cleaned.
type Table struct {
	Records []Record
	Path    string
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Records) }

// Columns lists the catalog columns in load order.
func (t Table) Columns() []string {
	return []string{
		ColumnID, ColumnType, ColumnTitle, ColumnCountry, ColumnDateAdded,
		ColumnReleaseYear, ColumnRating, ColumnDuration, ColumnGenres,
	}
}

// MissingCounts tallies empty cells per nullable column. Added counts rows
// whose date never parsed or filled.
func (t Table) MissingCounts() map[string]int {
	counts := make(map[string]int)
	for _, rec := range t.Records {
		if rec.Country == "" {
			counts[ColumnCountry]++
		}
		if rec.Rating == "" {
			counts[ColumnRating]++
		}
		if rec.Duration == "" {
			counts[ColumnDuration]++
		}
		if rec.Genres == "" {
			counts[ColumnGenres]++
		}
		if rec.DateAdded == "" && rec.Added.IsZero() {
			counts[ColumnDateAdded]++
		}
		if rec.Title == "" {
			counts[ColumnTitle]++
		}
	}
	for column, n := range counts {
		if n == 0 {
			delete(counts, column)
		}
	}
	return counts
}
