// Package analysis computes the descriptive statistics the dashboard shows
// next to the ranked index: per-sector and composite distributions plus a
// percentile placement for each country.
package analysis

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"techindex/domain/index"
)

// Distribution captures descriptive statistics for one score series.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// CountryPercentile places one country's composite score under a normal
// fit of the whole batch.
type CountryPercentile struct {
	Country    string  `json:"country"`
	TotalScore float64 `json:"totalScore"`
	Percentile float64 `json:"percentile"`
}

// Summary is the full statistical digest for one scored record set.
type Summary struct {
	Countries   int                           `json:"countries"`
	Composite   Distribution                  `json:"composite"`
	BySector    map[index.Sector]Distribution `json:"bySector"`
	Percentiles []CountryPercentile           `json:"percentiles"`
}

// Summarize computes the digest for a scored record set. Pure function of
// its input; an empty record set yields a zero-value summary.
func Summarize(records []index.CountryRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	totals := make([]float64, len(records))
	for i, rec := range records {
		totals[i] = rec.TotalScore
	}
	composite := describe(totals)

	bySector := make(map[index.Sector]Distribution, 6)
	for _, sector := range index.Sectors() {
		series := make([]float64, 0, len(records))
		for _, rec := range records {
			if raw, ok := rec.RawScores[sector]; ok {
				series = append(series, raw)
			}
		}
		if len(series) > 0 {
			bySector[sector] = describe(series)
		}
	}

	return Summary{
		Countries:   len(records),
		Composite:   composite,
		BySector:    bySector,
		Percentiles: percentiles(records, composite),
	}
}

// describe computes the distribution stats for one series.
func describe(series []float64) Distribution {
	var d Distribution
	// The stats helpers only fail on empty input, which callers exclude.
	d.Mean, _ = stats.Mean(series)
	d.Median, _ = stats.Median(series)
	d.StdDev, _ = stats.StandardDeviation(series)
	d.Min, _ = stats.Min(series)
	d.Max, _ = stats.Max(series)
	if quartiles, err := stats.Quartile(series); err == nil {
		d.Q1 = quartiles.Q1
		d.Q3 = quartiles.Q3
	}
	return d
}

// percentiles fits a normal distribution over the composite scores and
// reports each country's CDF position. A degenerate batch (zero spread)
// puts every country at the median.
func percentiles(records []index.CountryRecord, composite Distribution) []CountryPercentile {
	out := make([]CountryPercentile, len(records))
	normal := distuv.Normal{Mu: composite.Mean, Sigma: composite.StdDev}
	for i, rec := range records {
		p := 0.5
		if composite.StdDev > 0 {
			p = normal.CDF(rec.TotalScore)
		}
		out[i] = CountryPercentile{
			Country:    rec.Country,
			TotalScore: rec.TotalScore,
			Percentile: p,
		}
	}
	return out
}
