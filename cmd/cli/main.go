// Command cli scores a country spreadsheet and prints the ranked index.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"techindex/adapters/excel"
	"techindex/domain/index"
	"techindex/internal/analysis"
	"techindex/internal/config"
	"techindex/internal/testkit"
)

func main() {
	filePath := flag.String("file", "", "path to a .xlsx or .csv score sheet")
	weightsFile := flag.String("weights", "", "optional yaml weight preset file")
	preset := flag.String("preset", "", "preset name within -weights (default: the file's default)")
	top := flag.Int("top", 0, "limit output to the top N countries (0 = all)")
	demo := flag.Bool("demo", false, "score the built-in sample data instead of a file")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*filePath, *weightsFile, *preset, *top, *demo); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(filePath, weightsFile, preset string, top int, demo bool) error {
	var rows []index.RawRow
	switch {
	case demo:
		rows = testkit.SampleRows()
	case filePath != "":
		var err error
		rows, err = excel.NewDataReader(filePath).ReadRows(context.Background())
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either -file or -demo is required")
	}

	weights := index.DefaultWeights()
	if weightsFile != "" {
		presets, err := config.LoadPresets(weightsFile)
		if err != nil {
			return err
		}
		weights, err = presets.Get(preset)
		if err != nil {
			return err
		}
	}

	pipeline := index.NewPipeline()
	records := pipeline.Process(rows, weights)
	report := pipeline.Report()

	for _, warning := range report.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	if !report.IsValid {
		for _, e := range report.Errors {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
	}

	printRanking(records, top)
	printSummary(analysis.Summarize(records))
	return nil
}

func printRanking(records []index.CountryRecord, top int) {
	ranked := make([]index.CountryRecord, len(records))
	copy(ranked, records)
	// Highest composite first; ties break on name so reruns are stable.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].Country < ranked[j].Country
	})
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "#\tCountry\tComposite")
	for _, sector := range index.Sectors() {
		fmt.Fprintf(w, "\t%s", index.ColumnFor(sector))
	}
	fmt.Fprintln(w)
	for i, rec := range ranked {
		fmt.Fprintf(w, "%d\t%s\t%.4f", i+1, rec.Country, rec.TotalScore)
		for _, sector := range index.Sectors() {
			fmt.Fprintf(w, "\t%.2f", rec.RawScores[sector])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printSummary(s analysis.Summary) {
	fmt.Printf("\n%d countries: composite mean %.4f, median %.4f, stddev %.4f (min %.4f, max %.4f)\n",
		s.Countries, s.Composite.Mean, s.Composite.Median, s.Composite.StdDev,
		s.Composite.Min, s.Composite.Max)
}
