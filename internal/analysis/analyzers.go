package analysis

import (
	"sort"
	"strconv"
	"strings"

	"streamlens/internal/catalog"
)

// Run executes every analyzer over the cleaned table and bundles the
// results for the report writer and chart renderer.
func Run(t catalog.Table) *Report {
	movieDurations, tvSeasons := Durations(t)
	return &Report{
		Rows:           t.Len(),
		Types:          ContentTypes(t),
		Trend:          ReleaseTrend(t),
		Genres:         Genres(t),
		Countries:      Countries(t),
		MovieDurations: movieDurations,
		TVSeasons:      tvSeasons,
		Ratings:        Ratings(t),
		Monthly:        MonthlyPivot(t),
	}
}

// ContentTypes counts titles per content type, descending count with
// first-encounter tie order, percentages rounded to one decimal.
func ContentTypes(t catalog.Table) []CategoryShare {
	counter := newCountInOrder()
	for _, rec := range t.Records {
		counter.add(rec.Type)
	}
	return shares(counter, t.Len())
}

// Ratings counts titles per rating value with the same ordering and
// percentage semantics as ContentTypes.
func Ratings(t catalog.Table) []CategoryShare {
	counter := newCountInOrder()
	for _, rec := range t.Records {
		counter.add(rec.Rating)
	}
	return shares(counter, t.Len())
}

func shares(counter *countInOrder, total int) []CategoryShare {
	ordered := counter.byCountDesc()
	out := make([]CategoryShare, 0, len(ordered))
	for _, entry := range ordered {
		share := CategoryShare{Label: entry.Token, Count: entry.Count}
		if total > 0 {
			share.Percent = round1(float64(entry.Count) / float64(total) * 100)
		}
		out = append(out, share)
	}
	return out
}

// ReleaseTrend counts titles per release year in ascending year order.
func ReleaseTrend(t catalog.Table) Trend {
	counts := make(map[int]int)
	for _, rec := range t.Records {
		counts[rec.ReleaseYear]++
	}
	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	trend := Trend{Years: make([]YearCount, 0, len(years))}
	for _, year := range years {
		trend.Years = append(trend.Years, YearCount{Year: year, Count: counts[year]})
	}
	if len(years) > 0 {
		trend.MinYear = years[0]
		trend.MaxYear = years[len(years)-1]
	}
	return trend
}

// Genres splits each title's genre list on commas and accumulates a global
// token frequency; a title with k genres contributes one count to each.
func Genres(t catalog.Table) []TokenCount {
	counter := newCountInOrder()
	for _, rec := range t.Records {
		for _, token := range splitTokens(rec.Genres) {
			counter.add(token)
		}
	}
	return counter.byCountDesc()
}

// Countries applies the same split-and-count procedure to the country field.
func Countries(t catalog.Table) []TokenCount {
	counter := newCountInOrder()
	for _, rec := range t.Records {
		for _, token := range splitTokens(rec.Country) {
			counter.add(token)
		}
	}
	return counter.byCountDesc()
}

// Durations parses movie runtimes (minutes) and TV show season counts from
// the duration column. Values missing the expected "min"/"Season" substring
// are excluded from their set; values with the substring but no leading
// integer are silently skipped.
func Durations(t catalog.Table) (movies DurationStats, shows DurationStats) {
	var movieValues, showValues []int
	for _, rec := range t.Records {
		switch rec.Type {
		case catalog.TypeMovie:
			if strings.Contains(rec.Duration, "min") {
				if minutes, ok := leadingInt(rec.Duration); ok {
					movieValues = append(movieValues, minutes)
				}
			}
		case catalog.TypeTVShow:
			if strings.Contains(rec.Duration, "Season") {
				if seasons, ok := leadingInt(rec.Duration); ok {
					showValues = append(showValues, seasons)
				}
			}
		}
	}
	return durationStats(movieValues), durationStats(showValues)
}

func leadingInt(value string) (int, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0, false
	}
	parsed, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// MonthlyPivot counts catalog additions per year and calendar month. Rows
// whose date never parsed or filled are excluded.
func MonthlyPivot(t catalog.Table) Pivot {
	counts := make(map[int]*[12]int)
	for _, rec := range t.Records {
		if rec.YearAdded == 0 || rec.MonthAdded == 0 {
			continue
		}
		months := counts[rec.YearAdded]
		if months == nil {
			months = new([12]int)
			counts[rec.YearAdded] = months
		}
		months[int(rec.MonthAdded)-1]++
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	pivot := Pivot{Years: years, Counts: make([][]int, 0, len(years))}
	for _, year := range years {
		months := counts[year]
		pivot.Counts = append(pivot.Counts, months[:])
	}
	return pivot
}
