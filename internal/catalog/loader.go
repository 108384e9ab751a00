package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Catalog column names as they appear in the CSV header.
const (
	ColumnID          = "show_id"
	ColumnType        = "type"
	ColumnTitle       = "title"
	ColumnCountry     = "country"
	ColumnDateAdded   = "date_added"
	ColumnReleaseYear = "release_year"
	ColumnRating      = "rating"
	ColumnDuration    = "duration"
	ColumnGenres      = "listed_in"
)

var requiredColumns = []string{
	ColumnID, ColumnType, ColumnCountry, ColumnDateAdded,
	ColumnReleaseYear, ColumnRating, ColumnDuration, ColumnGenres,
}

// Load reads the catalog CSV at path into a raw Table. The load is
// all-or-nothing: a missing file yields ErrNotFound, any decode problem
// yields ErrParse, and either the full table or nothing is returned.
func Load(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, Wrap(ErrNotFound, "load", fmt.Sprintf("no dataset at %s", path), err)
		}
		return Table{}, Wrap(ErrParse, "load", fmt.Sprintf("open dataset %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, Wrap(ErrParse, "load", "dataset is empty", nil)
		}
		return Table{}, Wrap(ErrParse, "load", "read header", err)
	}

	index := make(map[string]int, len(headers))
	for i, header := range headers {
		index[strings.TrimSpace(header)] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return Table{}, Wrap(ErrParse, "load", fmt.Sprintf("missing column %q", column), nil)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, Wrap(ErrParse, "load", "read row", err)
		}
		rec := Record{
			ID:        cell(row, ColumnID),
			Type:      cell(row, ColumnType),
			Title:     cell(row, ColumnTitle),
			Country:   cell(row, ColumnCountry),
			DateAdded: cell(row, ColumnDateAdded),
			Rating:    cell(row, ColumnRating),
			Duration:  cell(row, ColumnDuration),
			Genres:    cell(row, ColumnGenres),
		}
		if year := cell(row, ColumnReleaseYear); year != "" {
			// Non-numeric release years stay zero; null handling covers
			// them the same way as absent cells.
			if parsed, err := strconv.Atoi(year); err == nil {
				rec.ReleaseYear = parsed
			}
		}
		records = append(records, rec)
	}

	return Table{Records: records, Path: path}, nil
}
