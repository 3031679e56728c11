package index

// Score applies weights to validated records and returns one CountryRecord
// per input record, in input order.
//
// Pure function of (records, weights): no hidden state, no memo of earlier
// weight sets. A sector key absent from weights contributes zero rather
// than failing; this permissiveness is deliberate and callers rely on it
// to drop a sector from the composite by omitting its weight. Assumes the
// records already satisfy the validator's invariants and never
// re-validates.
func Score(records []ValidatedRecord, weights Weights) []CountryRecord {
	out := make([]CountryRecord, 0, len(records))
	for _, rec := range records {
		weighted := make(map[Sector]float64, len(rec.RawScores))
		total := 0.0
		for _, sector := range Sectors() {
			raw, ok := rec.RawScores[sector]
			if !ok {
				continue
			}
			contribution := raw * weights[sector]
			weighted[sector] = contribution
			total += contribution
		}
		out = append(out, CountryRecord{
			Country:    rec.Country,
			RawScores:  rec.RawScores,
			Weighted:   weighted,
			TotalScore: total,
		})
	}
	return out
}
