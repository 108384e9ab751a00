package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"streamlens/internal/catalog"
	"streamlens/internal/charts"
	"streamlens/internal/config"
	"streamlens/internal/pipeline"
)

const datasetCSV = `show_id,type,title,country,date_added,release_year,rating,duration,listed_in
s1,Movie,First,United States,"September 9, 2019",2018,PG-13,90 min,"Dramas, International Movies"
s2,Movie,Second,India,"October 1, 2019",2019,PG,104 min,Comedies
s3,TV Show,Third,United Kingdom,"January 5, 2020",2020,TV-MA,3 Seasons,Crime TV Shows
s4,TV Show,Fourth,,not a date,2021,,1 Season,Kids' TV
s1,Movie,Duplicate,United States,"September 9, 2019",2018,PG-13,90 min,Dramas
`

func testConfig(t *testing.T, dataset string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Dataset.Path = dataset
	cfg.Output.Dir = t.TempDir()
	return &cfg
}

func TestRunProducesArtifactsAndSummaries(t *testing.T) {
	dataset := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(dataset, []byte(datasetCSV), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cfg := testConfig(t, dataset)

	var console bytes.Buffer
	runner, err := pipeline.NewConsoleRunner(cfg, nil, &console)
	if err != nil {
		t.Fatalf("NewConsoleRunner: %v", err)
	}
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, name := range []string{charts.OverviewArtifact, charts.DetailArtifact, charts.HeatmapArtifact} {
		info, err := os.Stat(filepath.Join(cfg.Output.Dir, name))
		if err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("artifact %s is empty", name)
		}
	}

	out := console.String()
	for _, heading := range []string{
		"DATASET OVERVIEW", "DATA CLEANING", "CONTENT TYPE ANALYSIS",
		"RELEASE TREND ANALYSIS", "GENRE ANALYSIS", "COUNTRY ANALYSIS",
		"DURATION ANALYSIS", "RATING ANALYSIS", "ANALYSIS COMPLETED",
	} {
		if !strings.Contains(out, heading) {
			t.Fatalf("console output missing %q:\n%s", heading, out)
		}
	}
	if !strings.Contains(out, "Removed 1 duplicate entries") {
		t.Fatalf("expected duplicate removal note:\n%s", out)
	}
	if !strings.Contains(out, charts.HeatmapArtifact) {
		t.Fatalf("completion summary must list artifacts:\n%s", out)
	}
}

func TestRunAbortsWhenDatasetMissing(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.csv"))

	var console bytes.Buffer
	runner, err := pipeline.NewConsoleRunner(cfg, nil, &console)
	if err != nil {
		t.Fatalf("NewConsoleRunner: %v", err)
	}

	err = runner.Run(context.Background())
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(console.String(), "could not find dataset") {
		t.Fatalf("expected user-facing diagnostic:\n%s", console.String())
	}
	if strings.Contains(console.String(), "DATASET OVERVIEW") {
		t.Fatal("no stage may run after a failed load")
	}
	if entries, err := os.ReadDir(cfg.Output.Dir); err == nil && len(entries) != 0 {
		t.Fatalf("no artifacts may be written after a failed load: %v", entries)
	}
}

func TestRunAbortsOnParseError(t *testing.T) {
	dataset := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(dataset, []byte("show_id,type\ns1,Movie\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cfg := testConfig(t, dataset)

	var console bytes.Buffer
	runner, err := pipeline.NewConsoleRunner(cfg, nil, &console)
	if err != nil {
		t.Fatalf("NewConsoleRunner: %v", err)
	}

	err = runner.Run(context.Background())
	if !errors.Is(err, catalog.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	dataset := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(dataset, []byte(datasetCSV), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cfg := testConfig(t, dataset)

	runner, err := pipeline.NewConsoleRunner(cfg, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewConsoleRunner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runner.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewRunnerRequiresConfig(t *testing.T) {
	if _, err := pipeline.NewRunner(nil, nil, nil, nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}
