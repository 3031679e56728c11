// Package index implements the country technology-index pipeline:
// schema validation of ingested rows, country-name normalization, and
// weighted composite scoring.
package index

import (
	"fmt"
	"math"
)

// Sector identifies one of the six technology domains scored per country.
type Sector string

const (
	SectorAI             Sector = "ai"
	SectorQuantum        Sector = "quantum"
	SectorSemiconductors Sector = "semiconductors"
	SectorBiotech        Sector = "biotech"
	SectorSpace          Sector = "space"
	SectorFintech        Sector = "fintech"
)

// Sectors returns all sector keys in display order.
func Sectors() []Sector {
	return []Sector{
		SectorAI,
		SectorQuantum,
		SectorSemiconductors,
		SectorBiotech,
		SectorSpace,
		SectorFintech,
	}
}

// CountryColumn is the required header naming the country field.
const CountryColumn = "Country"

// sectorColumns maps required spreadsheet headers to sector keys.
// Headers are exact and case-sensitive; unknown headers are ignored.
var sectorColumns = map[string]Sector{
	"AI":             SectorAI,
	"Quantum":        SectorQuantum,
	"Semiconductors": SectorSemiconductors,
	"Biotech":        SectorBiotech,
	"Space":          SectorSpace,
	"Fintech":        SectorFintech,
}

// ColumnFor returns the spreadsheet header for a sector key.
func ColumnFor(sector Sector) string {
	for header, s := range sectorColumns {
		if s == sector {
			return header
		}
	}
	return string(sector)
}

// RequiredColumns returns every header an input file must carry: the
// country column followed by the six sector columns in display order.
func RequiredColumns() []string {
	cols := make([]string, 0, 1+len(sectorColumns))
	cols = append(cols, CountryColumn)
	for _, sector := range Sectors() {
		cols = append(cols, ColumnFor(sector))
	}
	return cols
}

// RawRow is one loosely typed spreadsheet row: header name to raw cell
// value. Values may be string, float64, int, or nil for an empty cell.
type RawRow map[string]any

// Weights maps each sector to a non-negative multiplier. Callers own the
// map; the pipeline never mutates or retains it.
type Weights map[Sector]float64

// DefaultWeights returns the weight set the dashboard starts with.
func DefaultWeights() Weights {
	w := make(Weights, len(sectorColumns))
	for _, sector := range Sectors() {
		w[sector] = 0.5
	}
	return w
}

// Validate rejects negative or non-finite weights. There is no upper
// bound: the UI keeps sliders in [0,1] but the pipeline accepts any
// non-negative value.
func (w Weights) Validate() error {
	for _, sector := range Sectors() {
		v, ok := w[sector]
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight for %s is not finite", sector)
		}
		if v < 0 {
			return fmt.Errorf("weight for %s is negative: %v", sector, v)
		}
	}
	return nil
}

// Clone returns an independent copy of the weight set.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// ValidatedRecord is one country row that passed schema validation:
// a trimmed country name plus a finite, non-negative raw score for
// every sector.
type ValidatedRecord struct {
	Country   string
	RawScores map[Sector]float64
}

// CountryRecord is the pipeline output for one country. Weighted holds
// the per-sector contribution (raw score times weight) and TotalScore
// their sum, for the weights in effect at scoring time.
type CountryRecord struct {
	Country    string             `json:"country"`
	RawScores  map[Sector]float64 `json:"sectorScores"`
	Weighted   map[Sector]float64 `json:"weightedScores"`
	TotalScore float64            `json:"totalScore"`
}

// Report collects validation diagnostics for one batch. Errors block
// rendering; warnings are advisory only. IsValid is false exactly when
// Errors is non-empty.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	IsValid  bool     `json:"isValid"`
}
