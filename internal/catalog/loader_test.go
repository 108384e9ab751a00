package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"streamlens/internal/catalog"
)

const sampleCSV = `show_id,type,title,country,date_added,release_year,rating,duration,listed_in
s1,Movie,Example One,United States,"September 9, 2019",2019,PG-13,90 min,"Dramas, International Movies"
s2,TV Show,Example Two,,"October 1, 2020",2020,TV-MA,3 Seasons,Dramas
s3,Movie,Example Three,India,,2018,,,"Comedies"
`

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadReadsAllRows(t *testing.T) {
	path := writeDataset(t, sampleCSV)

	table, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}
	first := table.Records[0]
	if first.ID != "s1" || first.Type != catalog.TypeMovie {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.ReleaseYear != 2019 {
		t.Fatalf("unexpected release year: %d", first.ReleaseYear)
	}
	if first.Genres != "Dramas, International Movies" {
		t.Fatalf("unexpected genres: %q", first.Genres)
	}
	second := table.Records[1]
	if second.Country != "" {
		t.Fatalf("expected missing country to stay empty, got %q", second.Country)
	}
	if !table.Records[2].Added.IsZero() {
		t.Fatal("raw table must not carry derived dates")
	}
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedRowsFailWholeLoad(t *testing.T) {
	path := writeDataset(t, "show_id,type,country,date_added,release_year,rating,duration,listed_in\ns1,Movie,US\ns2\n")

	_, err := catalog.Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, catalog.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := writeDataset(t, "show_id,type\ns1,Movie\n")

	_, err := catalog.Load(path)
	if !errors.Is(err, catalog.ErrParse) {
		t.Fatalf("expected ErrParse for missing columns, got %v", err)
	}
}

func TestLoadEmptyFileIsParseError(t *testing.T) {
	path := writeDataset(t, "")

	_, err := catalog.Load(path)
	if !errors.Is(err, catalog.ErrParse) {
		t.Fatalf("expected ErrParse for empty dataset, got %v", err)
	}
}

func TestMissingCounts(t *testing.T) {
	path := writeDataset(t, sampleCSV)
	table, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	counts := table.MissingCounts()
	if counts[catalog.ColumnCountry] != 1 {
		t.Fatalf("expected one missing country, got %d", counts[catalog.ColumnCountry])
	}
	if counts[catalog.ColumnRating] != 1 || counts[catalog.ColumnDuration] != 1 {
		t.Fatalf("unexpected missing counts: %v", counts)
	}
	if counts[catalog.ColumnDateAdded] != 1 {
		t.Fatalf("expected one missing date, got %d", counts[catalog.ColumnDateAdded])
	}
	if _, ok := counts[catalog.ColumnGenres]; ok {
		t.Fatal("genres column has no missing values")
	}
}
