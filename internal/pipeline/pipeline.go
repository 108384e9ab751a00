package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"streamlens/internal/analysis"
	"streamlens/internal/catalog"
	"streamlens/internal/charts"
	"streamlens/internal/config"
	"streamlens/internal/logging"
	"streamlens/internal/report"
)

// Runner wires the pipeline components and executes one run.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	console  *report.Writer
	renderer *charts.Renderer
}

// NewRunner constructs a Runner. Config is required; a nil logger becomes a
// no-op logger, a nil console writer defaults to stdout, and a nil renderer
// is built from the config's chart theme.
func NewRunner(cfg *config.Config, logger *slog.Logger, console *report.Writer, renderer *charts.Renderer) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("pipeline requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if console == nil {
		console = report.NewWriter(os.Stdout)
	}
	if renderer == nil {
		renderer = charts.NewRenderer(charts.ThemeFromConfig(cfg), logger)
	}
	return &Runner{cfg: cfg, logger: logger, console: console, renderer: renderer}, nil
}

// NewConsoleRunner is the common wiring: console output to out, artifacts
// per config.
func NewConsoleRunner(cfg *config.Config, logger *slog.Logger, out io.Writer) (*Runner, error) {
	return NewRunner(cfg, logger, report.NewWriter(out), nil)
}

// Run executes the fixed stage sequence. A dataset that cannot be loaded
// aborts the run before exploration; any later failure propagates.
func (r *Runner) Run(ctx context.Context) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())
	runLogger := logging.WithContext(ctx, r.logger)
	runLogger.Info("pipeline started", logging.String("dataset", r.cfg.Dataset.Path))

	raw, err := r.loadStage(ctx)
	if err != nil {
		return err
	}
	if err := r.exploreStage(ctx, raw); err != nil {
		return err
	}
	cleaned, err := r.cleanStage(ctx, raw)
	if err != nil {
		return err
	}
	result, err := r.analyzeStage(ctx, cleaned)
	if err != nil {
		return err
	}
	paths, err := r.visualizeStage(ctx, result)
	if err != nil {
		return err
	}

	r.console.Completion(paths)
	runLogger.Info("pipeline completed", logging.Int("artifacts", len(paths)))
	return nil
}

func (r *Runner) stageLogger(ctx context.Context, stage string) (*slog.Logger, func()) {
	logger := logging.WithContext(logging.WithStage(ctx, stage), r.logger)
	logger.Info("stage started")
	start := time.Now()
	return logger, func() {
		logger.Info("stage completed", logging.Duration("elapsed", time.Since(start)))
	}
}

func (r *Runner) loadStage(ctx context.Context) (catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Table{}, err
	}
	logger, done := r.stageLogger(ctx, "load")

	raw, err := catalog.Load(r.cfg.Dataset.Path)
	if err != nil {
		logger.Error("stage failed", logging.Error(err))
		r.console.LoadFailure(r.cfg.Dataset.Path, err)
		return catalog.Table{}, err
	}
	logger.Info("table loaded", logging.Int("rows", raw.Len()))
	done()
	return raw, nil
}

func (r *Runner) exploreStage(ctx context.Context, raw catalog.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, done := r.stageLogger(ctx, "explore")
	r.console.Overview(raw, analysis.DescribeReleaseYears(raw))
	done()
	return nil
}

func (r *Runner) cleanStage(ctx context.Context, raw catalog.Table) (catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Table{}, err
	}
	logger, done := r.stageLogger(ctx, "clean")

	cleaned, summary := catalog.Clean(raw, r.cfg.Dataset.DateFormats)
	logger.Info("table cleaned",
		logging.Int("rows", summary.FinalRows),
		logging.Int("duplicates_dropped", summary.DuplicatesDropped),
		logging.Int("dates_filled", summary.DatesFilled),
	)
	r.console.CleanSummary(summary, cleaned)
	done()
	return cleaned, nil
}

func (r *Runner) analyzeStage(ctx context.Context, cleaned catalog.Table) (*analysis.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, done := r.stageLogger(ctx, "analyze")

	result := analysis.Run(cleaned)
	r.console.ContentTypes(result.Types)
	r.console.ReleaseTrend(result.Trend)
	r.console.TokenFrequency("GENRE ANALYSIS", "Genre", result.Genres, analysis.TopGenres)
	r.console.TokenFrequency("COUNTRY ANALYSIS", "Country", result.Countries, analysis.TopCountries)
	r.console.Durations(result.MovieDurations, result.TVSeasons)
	r.console.Ratings(result.Ratings)
	done()
	return result, nil
}

func (r *Runner) visualizeStage(ctx context.Context, result *analysis.Report) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger, done := r.stageLogger(ctx, "visualize")

	if err := r.cfg.EnsureOutputDir(); err != nil {
		logger.Error("stage failed", logging.Error(err))
		return nil, err
	}
	paths, err := r.renderer.Render(result, r.cfg.Output.Dir)
	if err != nil {
		logger.Error("stage failed", logging.Error(err))
		return nil, fmt.Errorf("render artifacts: %w", err)
	}
	done()
	return paths, nil
}
