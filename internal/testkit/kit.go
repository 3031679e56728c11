// Package testkit provides deterministic sample data for tests and the
// CLI demo mode.
package testkit

import (
	"techindex/domain/index"
)

// sampleScores is a fixed national-scale batch. Country names include
// variants the normalizer must canonicalize.
var sampleScores = []struct {
	country string
	scores  [6]float64 // display order: ai, quantum, semiconductors, biotech, space, fintech
}{
	{"USA", [6]float64{0.95, 0.88, 0.82, 0.90, 0.93, 0.89}},
	{"China", [6]float64{0.90, 0.85, 0.75, 0.78, 0.88, 0.92}},
	{"Japan", [6]float64{0.72, 0.66, 0.91, 0.70, 0.65, 0.68}},
	{"Germany", [6]float64{0.70, 0.74, 0.68, 0.80, 0.55, 0.66}},
	{"UK", [6]float64{0.78, 0.72, 0.45, 0.82, 0.48, 0.90}},
	{"Republic of Korea", [6]float64{0.68, 0.55, 0.94, 0.60, 0.50, 0.72}},
	{"Taiwan", [6]float64{0.55, 0.40, 0.96, 0.45, 0.20, 0.58}},
	{"France", [6]float64{0.66, 0.70, 0.52, 0.76, 0.72, 0.64}},
	{"Israel", [6]float64{0.74, 0.58, 0.62, 0.72, 0.44, 0.78}},
	{"India", [6]float64{0.62, 0.42, 0.38, 0.58, 0.70, 0.74}},
	{"Canada", [6]float64{0.70, 0.76, 0.30, 0.64, 0.42, 0.62}},
	{"Singapore", [6]float64{0.64, 0.48, 0.56, 0.60, 0.22, 0.86}},
}

// SampleRows returns a fresh copy of the demo batch as raw rows.
func SampleRows() []index.RawRow {
	rows := make([]index.RawRow, 0, len(sampleScores))
	for _, entry := range sampleScores {
		row := index.RawRow{index.CountryColumn: entry.country}
		for i, sector := range index.Sectors() {
			row[index.ColumnFor(sector)] = entry.scores[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// SampleWeights returns a weight set summing to 1.0.
func SampleWeights() index.Weights {
	return index.Weights{
		index.SectorAI:             0.25,
		index.SectorQuantum:        0.15,
		index.SectorSemiconductors: 0.20,
		index.SectorBiotech:        0.10,
		index.SectorSpace:          0.15,
		index.SectorFintech:        0.15,
	}
}
