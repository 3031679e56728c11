package index

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate checks rows against the fixed schema and returns the records
// that survive plus a diagnostics report.
//
// Structural failures (empty input, missing required columns) abort the
// whole batch before any per-row work. Row-level rules, in input order:
// fully empty rows are skipped silently; a missing or non-text country
// name excludes the row with an error; a country already seen earlier in
// the batch excludes the row with a warning (first occurrence wins); a
// non-numeric, non-finite, or negative sector value excludes the row with
// an error naming the sector and country; a value above 1 is retained but
// warned about. Output preserves input order minus excluded rows.
func Validate(rows []RawRow) ([]ValidatedRecord, Report) {
	var report Report

	if len(rows) == 0 {
		report.Errors = append(report.Errors, "no data rows to validate")
		return nil, finish(report)
	}

	if missing := missingColumns(rows[0]); len(missing) > 0 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
		return nil, finish(report)
	}

	seen := make(map[string]bool, len(rows))
	records := make([]ValidatedRecord, 0, len(rows))

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}

		country, ok := textCell(row[CountryColumn])
		if !ok || country == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("row %d: country name is missing or not text", i+1))
			continue
		}

		if seen[country] {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("row %d: duplicate country %q ignored", i+1, country))
			continue
		}
		seen[country] = true

		scores := make(map[Sector]float64, len(sectorColumns))
		rowOK := true
		for _, sector := range Sectors() {
			header := ColumnFor(sector)
			value, err := numericCell(row[header])
			if err != nil {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s: %s score %s", country, header, err))
				rowOK = false
				continue
			}
			if value < 0 {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s: %s score %v is negative", country, header, value))
				rowOK = false
				continue
			}
			if value > 1 {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s: %s score %v exceeds 1", country, header, value))
			}
			scores[sector] = value
		}
		if !rowOK {
			continue
		}

		records = append(records, ValidatedRecord{Country: country, RawScores: scores})
	}

	return records, finish(report)
}

func finish(report Report) Report {
	report.IsValid = len(report.Errors) == 0
	return report
}

// missingColumns reports required headers absent from the first row's
// key set, in required-column order.
func missingColumns(first RawRow) []string {
	var missing []string
	for _, col := range RequiredColumns() {
		if _, ok := first[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// textCell extracts a trimmed string from a raw cell. Numbers and empty
// cells are not text.
func textCell(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// numericCell parses a raw cell into a finite float64. Empty cells and
// non-numeric text are rejected.
func numericCell(v any) (float64, error) {
	var value float64
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("is missing")
	case float64:
		value = t
	case int:
		value = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("is missing")
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		value = parsed
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%v is not finite", value)
	}
	return value, nil
}
