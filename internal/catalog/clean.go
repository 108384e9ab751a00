package catalog

import (
	"strings"
	"time"
)

// CleanSummary reports what a cleaning pass changed.
type CleanSummary struct {
	InitialRows       int
	FinalRows         int
	DuplicatesDropped int
	DatesFilled       int
}

// Clean derives a null-free copy of the table. The input is untouched.
//
// Per column: date_added is parsed with the supplied layouts and, when
// unparseable, forward-filled from the nearest prior row with a parsed
// value (a leading unparseable run stays unset); country, rating, and
// duration fall back to "Unknown"; rows sharing a show id keep only their
// first occurrence in row order. YearAdded and MonthAdded are derived from
// the cleaned date. Cleaning an already-cleaned table changes nothing.
func Clean(t Table, layouts []string) (Table, CleanSummary) {
	summary := CleanSummary{InitialRows: t.Len()}

	records := make([]Record, len(t.Records))
	copy(records, t.Records)

	var lastAdded time.Time
	for i := range records {
		rec := &records[i]
		if rec.Added.IsZero() {
			if parsed, ok := parseDate(rec.DateAdded, layouts); ok {
				rec.Added = parsed
			} else if !lastAdded.IsZero() {
				rec.Added = lastAdded
				summary.DatesFilled++
			}
		}
		if !rec.Added.IsZero() {
			lastAdded = rec.Added
		}

		if rec.Country == "" {
			rec.Country = Unknown
		}
		if rec.Rating == "" {
			rec.Rating = Unknown
		}
		if rec.Duration == "" {
			rec.Duration = Unknown
		}
	}

	seen := make(map[string]struct{}, len(records))
	deduped := records[:0]
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		if !rec.Added.IsZero() {
			rec.YearAdded = rec.Added.Year()
			rec.MonthAdded = rec.Added.Month()
		}
		deduped = append(deduped, rec)
	}

	summary.FinalRows = len(deduped)
	summary.DuplicatesDropped = summary.InitialRows - summary.FinalRows
	return Table{Records: deduped, Path: t.Path}, summary
}

func parseDate(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
