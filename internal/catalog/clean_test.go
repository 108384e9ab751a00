package catalog_test

import (
	"reflect"
	"testing"
	"time"

	"streamlens/internal/catalog"
)

var testLayouts = []string{"January 2, 2006", "2006-01-02"}

func TestCleanFillsMissingValues(t *testing.T) {
	raw := catalog.Table{Records: []catalog.Record{
		{ID: "s1", Type: catalog.TypeMovie, DateAdded: "September 9, 2019"},
		{ID: "s2", Type: catalog.TypeTVShow, DateAdded: "not a date"},
		{ID: "s3", Type: catalog.TypeMovie, DateAdded: "2020-03-15", Country: "India", Rating: "PG", Duration: "95 min"},
	}}

	cleaned, summary := catalog.Clean(raw, testLayouts)
	if cleaned.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", cleaned.Len())
	}
	if summary.DatesFilled != 1 {
		t.Fatalf("expected one forward fill, got %d", summary.DatesFilled)
	}

	first := cleaned.Records[0]
	want := time.Date(2019, time.September, 9, 0, 0, 0, 0, time.UTC)
	if !first.Added.Equal(want) {
		t.Fatalf("unexpected parsed date: %v", first.Added)
	}
	if first.YearAdded != 2019 || first.MonthAdded != time.September {
		t.Fatalf("unexpected derived year/month: %d %v", first.YearAdded, first.MonthAdded)
	}
	if first.Country != catalog.Unknown || first.Rating != catalog.Unknown || first.Duration != catalog.Unknown {
		t.Fatalf("expected Unknown fills, got %+v", first)
	}

	second := cleaned.Records[1]
	if !second.Added.Equal(want) {
		t.Fatalf("expected forward-filled date, got %v", second.Added)
	}
	if second.YearAdded != 2019 {
		t.Fatalf("expected derived year from filled date, got %d", second.YearAdded)
	}

	third := cleaned.Records[2]
	if third.Country != "India" || third.Rating != "PG" || third.Duration != "95 min" {
		t.Fatalf("populated values must not change: %+v", third)
	}

	// Raw table untouched.
	if raw.Records[0].Country != "" || !raw.Records[1].Added.IsZero() {
		t.Fatalf("raw table mutated: %+v", raw.Records)
	}
}

func TestCleanLeadingUnparseableDatesStayUnset(t *testing.T) {
	raw := catalog.Table{Records: []catalog.Record{
		{ID: "s1", DateAdded: ""},
		{ID: "s2", DateAdded: "garbage"},
		{ID: "s3", DateAdded: "January 2, 2021"},
		{ID: "s4", DateAdded: ""},
	}}

	cleaned, _ := catalog.Clean(raw, testLayouts)
	if !cleaned.Records[0].Added.IsZero() || !cleaned.Records[1].Added.IsZero() {
		t.Fatal("leading unparseable dates must remain unset")
	}
	if cleaned.Records[0].YearAdded != 0 {
		t.Fatalf("unset date must not derive a year, got %d", cleaned.Records[0].YearAdded)
	}
	if cleaned.Records[3].Added.IsZero() {
		t.Fatal("expected forward fill once a value exists")
	}
	if cleaned.Records[3].YearAdded != 2021 {
		t.Fatalf("unexpected filled year: %d", cleaned.Records[3].YearAdded)
	}
}

func TestCleanDedupesByIDKeepingFirst(t *testing.T) {
	raw := catalog.Table{Records: []catalog.Record{
		{ID: "s1", Title: "first"},
		{ID: "s2", Title: "other"},
		{ID: "s1", Title: "second"},
	}}

	cleaned, summary := catalog.Clean(raw, testLayouts)
	if cleaned.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", cleaned.Len())
	}
	if summary.DuplicatesDropped != 1 {
		t.Fatalf("expected one duplicate dropped, got %d", summary.DuplicatesDropped)
	}
	if cleaned.Records[0].Title != "first" {
		t.Fatalf("expected first occurrence kept, got %q", cleaned.Records[0].Title)
	}
	if summary.InitialRows != 3 || summary.FinalRows != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	raw := catalog.Table{Records: []catalog.Record{
		{ID: "s1", DateAdded: "September 9, 2019"},
		{ID: "s2", DateAdded: "bad"},
		{ID: "s2", DateAdded: "October 1, 2020"},
		{ID: "s3"},
	}}

	once, _ := catalog.Clean(raw, testLayouts)
	twice, summary := catalog.Clean(once, testLayouts)

	if !reflect.DeepEqual(once.Records, twice.Records) {
		t.Fatalf("second clean changed the table:\n%+v\n%+v", once.Records, twice.Records)
	}
	if summary.DuplicatesDropped != 0 || summary.DatesFilled != 0 {
		t.Fatalf("second clean must be a no-op, got %+v", summary)
	}
}

func TestCleanedTableHasNoMissingValues(t *testing.T) {
	raw := catalog.Table{Records: []catalog.Record{
		{ID: "s1", DateAdded: "September 9, 2019", Title: "a"},
		{ID: "s2", Title: "b"},
		{ID: "s3", Title: "c"},
	}}

	cleaned, _ := catalog.Clean(raw, testLayouts)
	counts := cleaned.MissingCounts()
	for _, column := range []string{catalog.ColumnCountry, catalog.ColumnRating, catalog.ColumnDuration, catalog.ColumnDateAdded} {
		if counts[column] != 0 {
			t.Fatalf("column %s still missing values: %v", column, counts)
		}
	}
}
