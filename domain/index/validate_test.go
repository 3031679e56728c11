package index

import (
	"strings"
	"testing"
)

func goodRow(country string, scores ...float64) RawRow {
	row := RawRow{CountryColumn: country}
	for i, sector := range Sectors() {
		value := 0.5
		if i < len(scores) {
			value = scores[i]
		}
		row[ColumnFor(sector)] = value
	}
	return row
}

func TestValidate_EmptyInput(t *testing.T) {
	records, report := Validate(nil)
	if report.IsValid {
		t.Error("expected invalid report for empty input")
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
	if len(report.Errors) != 1 {
		t.Errorf("expected exactly one error, got %v", report.Errors)
	}
}

func TestValidate_MissingColumn(t *testing.T) {
	row := goodRow("France")
	delete(row, "Quantum")
	// A broken row later in the batch must never be reached: missing
	// columns short-circuit before per-row validation.
	badRow := RawRow{CountryColumn: "Atlantis"}

	records, report := Validate([]RawRow{row, badRow})
	if report.IsValid {
		t.Error("expected invalid report")
	}
	if len(records) != 0 {
		t.Errorf("expected empty output, got %d records", len(records))
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected a single top-level error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "Quantum") {
		t.Errorf("error should name the missing column: %q", report.Errors[0])
	}
}

func TestValidate_RowRules(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(RawRow)
		wantRecords  int
		wantErrors   int
		wantWarnings int
		wantValid    bool
		wantIn       string // substring expected in the first error or warning
	}{
		{
			name:        "clean row",
			mutate:      func(RawRow) {},
			wantRecords: 1,
			wantValid:   true,
		},
		{
			name:        "non-numeric sector value",
			mutate:      func(r RawRow) { r["Biotech"] = "n/a" },
			wantRecords: 0,
			wantErrors:  1,
			wantValid:   false,
			wantIn:      "Biotech",
		},
		{
			name:        "negative sector value",
			mutate:      func(r RawRow) { r["Space"] = -0.2 },
			wantRecords: 0,
			wantErrors:  1,
			wantValid:   false,
			wantIn:      "Space",
		},
		{
			name:         "score above one is a warning only",
			mutate:       func(r RawRow) { r["AI"] = 1.7 },
			wantRecords:  1,
			wantWarnings: 1,
			wantValid:    true,
			wantIn:       "exceeds 1",
		},
		{
			name:        "missing sector cell",
			mutate:      func(r RawRow) { r["Fintech"] = nil },
			wantRecords: 0,
			wantErrors:  1,
			wantValid:   false,
			wantIn:      "Fintech",
		},
		{
			name:        "country not text",
			mutate:      func(r RawRow) { r[CountryColumn] = 42 },
			wantRecords: 0,
			wantErrors:  1,
			wantValid:   false,
			wantIn:      "country name",
		},
		{
			name:        "blank country",
			mutate:      func(r RawRow) { r[CountryColumn] = "   " },
			wantRecords: 0,
			wantErrors:  1,
			wantValid:   false,
			wantIn:      "country name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := goodRow("Japan")
			tt.mutate(row)
			records, report := Validate([]RawRow{row})

			if len(records) != tt.wantRecords {
				t.Errorf("records = %d, want %d", len(records), tt.wantRecords)
			}
			if len(report.Errors) != tt.wantErrors {
				t.Errorf("errors = %v, want %d", report.Errors, tt.wantErrors)
			}
			if len(report.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", report.Warnings, tt.wantWarnings)
			}
			if report.IsValid != tt.wantValid {
				t.Errorf("isValid = %v, want %v", report.IsValid, tt.wantValid)
			}
			if tt.wantIn != "" {
				all := strings.Join(append(report.Errors, report.Warnings...), "\n")
				if !strings.Contains(all, tt.wantIn) {
					t.Errorf("diagnostics should mention %q, got:\n%s", tt.wantIn, all)
				}
			}
		})
	}
}

func TestValidate_NegativeValueErrorNamesSectorAndCountry(t *testing.T) {
	row := goodRow("Germany")
	row["Quantum"] = "-0.3"

	records, report := Validate([]RawRow{row})
	if len(records) != 0 {
		t.Fatalf("row with negative value must be excluded, got %d records", len(records))
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", report.Errors)
	}
	if !strings.Contains(report.Errors[0], "Germany") || !strings.Contains(report.Errors[0], "Quantum") {
		t.Errorf("error should name country and sector: %q", report.Errors[0])
	}
}

func TestValidate_DuplicateCountry(t *testing.T) {
	first := goodRow("India", 0.9, 0.8, 0.7, 0.6, 0.5, 0.4)
	second := goodRow("India", 0.1, 0.1, 0.1, 0.1, 0.1, 0.1)

	records, report := Validate([]RawRow{first, second})
	if !report.IsValid {
		t.Fatalf("duplicates are warnings, not errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", report.Warnings)
	}
	if len(records) != 1 {
		t.Fatalf("expected first occurrence only, got %d records", len(records))
	}
	// First occurrence wins with its data intact.
	if got := records[0].RawScores[SectorAI]; got != 0.9 {
		t.Errorf("first row's AI score changed: got %v, want 0.9", got)
	}
}

func TestValidate_EmptyRowsSkippedSilently(t *testing.T) {
	rows := []RawRow{
		goodRow("Brazil"),
		{},
		goodRow("Canada"),
	}

	records, report := Validate(rows)
	if !report.IsValid || len(report.Warnings) != 0 {
		t.Fatalf("empty rows must not produce diagnostics: %+v", report)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// Input order preserved.
	if records[0].Country != "Brazil" || records[1].Country != "Canada" {
		t.Errorf("order not preserved: %s, %s", records[0].Country, records[1].Country)
	}
}

func TestValidate_BadRowDoesNotAffectOthers(t *testing.T) {
	rows := []RawRow{
		goodRow("Norway"),
		goodRow("Sweden", 0.5, 0.5, -1, 0.5, 0.5, 0.5),
		goodRow("Finland"),
	}

	records, report := Validate(rows)
	if report.IsValid {
		t.Error("batch with a bad row keeps isValid=false")
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 surviving records, got %d", len(records))
	}
	if records[0].Country != "Norway" || records[1].Country != "Finland" {
		t.Errorf("unexpected survivors: %s, %s", records[0].Country, records[1].Country)
	}
}
