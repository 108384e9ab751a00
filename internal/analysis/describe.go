package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"streamlens/internal/catalog"
)

// DescribeReleaseYears summarizes the release_year column of a table for
// the explore stage. Zero years (absent or non-numeric cells) are excluded.
func DescribeReleaseYears(t catalog.Table) ReleaseYearStats {
	values := make([]float64, 0, t.Len())
	for _, rec := range t.Records {
		if rec.ReleaseYear != 0 {
			values = append(values, float64(rec.ReleaseYear))
		}
	}
	if len(values) == 0 {
		return ReleaseYearStats{}
	}
	stats := ReleaseYearStats{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Min:   int(floats.Min(values)),
		Max:   int(floats.Max(values)),
	}
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}
	return stats
}
