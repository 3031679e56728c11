package ui

import (
	"sort"
	"sync"
	"time"

	"techindex/domain/core"
	"techindex/domain/index"
)

// Session holds one logical dataset session: the pipeline with its cached
// validated records, the weights currently in effect, and the ranked
// output derived from both. A RWMutex keeps a weight edit racing a fresh
// upload from interleaving their outputs.
type Session struct {
	mu       sync.RWMutex
	pipeline *index.Pipeline
	weights  index.Weights

	datasetID core.DatasetID
	name      string
	loadedAt  time.Time
	records   []index.CountryRecord
}

// NewSession creates an empty session with the given starting weights.
func NewSession(weights index.Weights) *Session {
	return &Session{
		pipeline: index.NewPipeline(),
		weights:  weights.Clone(),
	}
}

// LoadRows runs the full pipeline over a fresh batch and replaces the
// session's dataset. The returned report is also retained for /api/report.
func (s *Session) LoadRows(rows []index.RawRow, name string) index.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.pipeline.Process(rows, s.weights)
	s.records = rank(records)
	s.datasetID = core.NewDatasetID()
	s.name = name
	s.loadedAt = time.Now()
	return s.pipeline.Report()
}

// SetWeights validates and installs a new weight set, then rescores the
// cached dataset without re-validating.
func (s *Session) SetWeights(weights index.Weights) error {
	if err := weights.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = weights.Clone()
	if s.pipeline.HasData() {
		s.records = rank(s.pipeline.Rescore(s.weights))
	}
	return nil
}

// Records returns the ranked record set for rendering.
func (s *Session) Records() []index.CountryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]index.CountryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Weights returns a copy of the weights currently in effect.
func (s *Session) Weights() index.Weights {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.weights.Clone()
}

// Report returns diagnostics from the most recent load.
func (s *Session) Report() index.Report {
	return s.pipeline.Report()
}

// DatasetID identifies the currently loaded dataset; empty before the
// first successful load.
func (s *Session) DatasetID() core.DatasetID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasetID
}

// rank sorts records by composite score descending, with country name as
// a deterministic tiebreak.
func rank(records []index.CountryRecord) []index.CountryRecord {
	out := make([]index.CountryRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalScore != out[j].TotalScore {
			return out[i].TotalScore > out[j].TotalScore
		}
		return out[i].Country < out[j].Country
	})
	return out
}
