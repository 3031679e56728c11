package index

import (
	"fmt"
	"sync"
)

// Pipeline sequences Validate, Normalize, and Score over one dataset and
// caches the post-normalization records so weight changes can rescore
// without re-validating.
//
// Calls are serialized with a mutex: a rescore racing a new Process never
// observes a half-updated cache. The pipeline is total — it always returns
// a (possibly empty) record set and retains a report, never panicking past
// its boundary.
type Pipeline struct {
	mu     sync.Mutex
	ready  []ValidatedRecord
	report Report
}

// NewPipeline returns an empty pipeline with no cached dataset.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Process runs the full pipeline over a fresh batch of rows. On validation
// failure it returns an empty result; callers distinguish "no data" from
// "invalid data" via Report. Any internal panic from malformed input is
// recovered into an empty result with an error in the report.
func (p *Pipeline) Process(rows []RawRow, weights Weights) (records []CountryRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			p.ready = nil
			p.report = Report{
				Errors:  []string{fmt.Sprintf("internal error processing rows: %v", r)},
				IsValid: false,
			}
			records = nil
		}
	}()

	validated, report := Validate(rows)
	p.report = report
	if !report.IsValid {
		p.ready = nil
		return nil
	}

	p.ready = Normalize(validated)
	return Score(p.ready, weights)
}

// Rescore recomputes scores from the cached post-normalization records,
// bypassing validation and normalization. Returns nil when no valid
// dataset has been processed.
func (p *Pipeline) Rescore(weights Weights) []CountryRecord {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready == nil {
		return nil
	}
	return Score(p.ready, weights)
}

// Report returns the diagnostics retained from the most recent Process.
func (p *Pipeline) Report() Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.report
}

// HasData reports whether a valid dataset is cached and ready to rescore.
func (p *Pipeline) HasData() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready != nil
}
