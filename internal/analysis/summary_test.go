package analysis

import (
	"math"
	"testing"

	"techindex/domain/index"
)

func record(country string, total float64) index.CountryRecord {
	return index.CountryRecord{
		Country:    country,
		RawScores:  map[index.Sector]float64{index.SectorAI: total},
		Weighted:   map[index.Sector]float64{index.SectorAI: total},
		TotalScore: total,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Countries != 0 || len(s.Percentiles) != 0 || len(s.BySector) != 0 {
		t.Errorf("expected zero-value summary, got %+v", s)
	}
}

func TestSummarize_Composite(t *testing.T) {
	records := []index.CountryRecord{
		record("A", 0.2),
		record("B", 0.4),
		record("C", 0.6),
		record("D", 0.8),
	}

	s := Summarize(records)
	if s.Countries != 4 {
		t.Errorf("Countries = %d, want 4", s.Countries)
	}
	if math.Abs(s.Composite.Mean-0.5) > 1e-9 {
		t.Errorf("Mean = %v, want 0.5", s.Composite.Mean)
	}
	if math.Abs(s.Composite.Median-0.5) > 1e-9 {
		t.Errorf("Median = %v, want 0.5", s.Composite.Median)
	}
	if s.Composite.Min != 0.2 || s.Composite.Max != 0.8 {
		t.Errorf("Min/Max = %v/%v, want 0.2/0.8", s.Composite.Min, s.Composite.Max)
	}

	if len(s.Percentiles) != 4 {
		t.Fatalf("expected 4 percentiles, got %d", len(s.Percentiles))
	}
	// Percentiles follow score order under a normal fit.
	for i := 1; i < len(s.Percentiles); i++ {
		if s.Percentiles[i].Percentile <= s.Percentiles[i-1].Percentile {
			t.Errorf("percentiles not increasing: %+v", s.Percentiles)
		}
	}
	// The mean sits at the median of the fit.
	mid := Summarize(records).Percentiles[1].Percentile
	if mid <= 0 || mid >= 1 {
		t.Errorf("percentile out of range: %v", mid)
	}
}

func TestSummarize_DegenerateSpread(t *testing.T) {
	records := []index.CountryRecord{record("A", 0.5), record("B", 0.5)}

	s := Summarize(records)
	for _, p := range s.Percentiles {
		if p.Percentile != 0.5 {
			t.Errorf("%s percentile = %v, want 0.5 for zero spread", p.Country, p.Percentile)
		}
	}
}

func TestSummarize_BySectorSkipsAbsentSectors(t *testing.T) {
	s := Summarize([]index.CountryRecord{record("A", 0.3)})
	if _, ok := s.BySector[index.SectorAI]; !ok {
		t.Error("expected AI sector distribution")
	}
	if _, ok := s.BySector[index.SectorSpace]; ok {
		t.Error("sector with no data must be omitted")
	}
}
