package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"streamlens/internal/analysis"
	"streamlens/internal/logging"
)

// Fixed artifact names, overwritten on every run.
const (
	OverviewArtifact = "netflix_analysis_overview.png"
	DetailArtifact   = "netflix_duration_ratings.png"
	HeatmapArtifact  = "netflix_heatmap.png"
)

const lockFileName = ".streamlens.lock"

// Renderer draws the three artifacts from an analysis report.
type Renderer struct {
	theme  Theme
	logger *slog.Logger
}

// NewRenderer builds a Renderer with the given theme. A nil logger is
// replaced with a no-op logger.
func NewRenderer(theme Theme, logger *slog.Logger) *Renderer {
	return &Renderer{theme: theme, logger: logging.NewComponentLogger(logger, "charts")}
}

// Render writes the three PNG artifacts into dir and returns their paths in
// generation order. A lock file in dir keeps concurrent runs from
// interleaving partial writes; the lock is released on every exit path.
func (r *Renderer) Render(report *analysis.Report, dir string) ([]string, error) {
	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire artifact lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("artifact directory %s is locked by another run", dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	artifacts := []struct {
		name string
		draw func(*analysis.Report) (*vgimg.Canvas, error)
	}{
		{OverviewArtifact, r.overviewFigure},
		{DetailArtifact, r.detailFigure},
		{HeatmapArtifact, r.heatmapFigure},
	}

	paths := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		canvas, err := artifact.draw(report)
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", artifact.name, err)
		}
		path := filepath.Join(dir, artifact.name)
		if err := writePNG(canvas, path); err != nil {
			return nil, err
		}
		r.logger.Info("artifact written", logging.String("path", path))
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(canvas *vgimg.Canvas, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close artifact %s: %w", path, err)
	}
	return nil
}

func inches(w, h float64) (vg.Length, vg.Length) {
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}
