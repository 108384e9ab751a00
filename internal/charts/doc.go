// Package charts renders the three PNG artifacts of a pipeline run: the
// overview figure (type bars, release trend, top genres and countries), the
// detail figure (duration histograms and the rating pie), and the
// year-by-month addition heatmap.
//
// Every figure is drawn from the analysis report alone; nothing is
// recomputed from the table. Styling comes from an explicit Theme value so
// rendering stays pure relative to its inputs.
package charts
