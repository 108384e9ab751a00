package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// chdir mirrors t.Chdir, which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	out, _, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "defaults were used")

	out, _, err = runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[dataset]")
	requireContains(t, out, "[logging]")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err = runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error re-initializing without --overwrite")
	}
	if _, _, err = runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestRunCommandEndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dataset := filepath.Join(t.TempDir(), "catalog.csv")
	csv := "show_id,type,title,country,date_added,release_year,rating,duration,listed_in\n" +
		"s1,Movie,Alpha,United States,\"January 1, 2020\",2019,PG-13,90 min,Dramas\n" +
		"s2,TV Show,Beta,India,\"March 5, 2021\",2021,TV-MA,2 Seasons,Comedies\n" +
		"s3,Movie,Gamma,,\"June 9, 2020\",2018,R,120 min,Dramas\n" +
		"s4,TV Show,Delta,Japan,\"July 4, 2019\",2019,TV-14,1 Season,Anime Series\n"
	if err := os.WriteFile(dataset, []byte(csv), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	output := t.TempDir()

	out, _, err := runCLI(t, "run", "--dataset", dataset, "--output", output)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "ANALYSIS COMPLETED")

	for _, name := range []string{
		"netflix_analysis_overview.png",
		"netflix_duration_ratings.png",
		"netflix_heatmap.png",
	} {
		if _, err := os.Stat(filepath.Join(output, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}
}

func TestRunCommandMissingDataset(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, _, err := runCLI(t, "run", "--dataset", missing, "--output", t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
}
