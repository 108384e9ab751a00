package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// median averages the middle pair for even-sized inputs, matching the
// conventional definition rather than an empirical quantile.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func durationStats(values []int) DurationStats {
	stats := DurationStats{Values: values}
	if len(values) == 0 {
		return stats
	}
	floatValues := make([]float64, len(values))
	for i, v := range values {
		floatValues[i] = float64(v)
	}
	stats.Mean = stat.Mean(floatValues, nil)
	stats.Median = median(floatValues)
	stats.Min = int(floats.Min(floatValues))
	stats.Max = int(floats.Max(floatValues))
	return stats
}
