// Package excel decodes .xlsx and .csv score sheets into the raw rows the
// index pipeline consumes. Workbook binary handling stays inside excelize;
// this package only maps cells onto headers.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"techindex/domain/index"
	"techindex/internal/errors"
)

// DataReader reads country score sheets from Excel and CSV files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file, choosing the decoder
// by extension (.csv is CSV, everything else is treated as a workbook).
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadRows decodes the file into raw rows for the pipeline.
func (r *DataReader) ReadRows(ctx context.Context) ([]index.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IngestError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IngestError("failed to open input file", err)
	}
	defer f.Close()

	return FromReader(f, r.filePath)
}

// FromReader decodes an uploaded spreadsheet stream. The filename only
// selects the decoder; the stream is never written to disk.
func FromReader(src io.Reader, filename string) ([]index.RawRow, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return readCSV(src)
	}
	return readWorkbook(src)
}

// readWorkbook reads Sheet1 of an Excel workbook.
func readWorkbook(src io.Reader) ([]index.RawRow, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.IngestError("failed to open Excel workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.IngestError("workbook has no sheets", nil)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.IngestError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	return buildRows(rows)
}

// readCSV reads a comma-separated file with the same header contract.
func readCSV(src io.Reader) ([]index.RawRow, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IngestError("failed to read CSV input", err)
	}
	return buildRows(rows)
}

// buildRows converts header + data lines into raw rows. Every header gets
// a key in every row; blank cells become nil so the validator can tell
// "empty" from "zero". Lines that are blank end to end are dropped here so
// trailing spreadsheet padding never reaches the pipeline.
func buildRows(lines [][]string) ([]index.RawRow, error) {
	if len(lines) < 2 {
		return nil, errors.IngestError("input must have a header row and at least one data row", nil)
	}

	headers := make([]string, len(lines[0]))
	for i, header := range lines[0] {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]index.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if blankLine(line) {
			continue
		}
		row := make(index.RawRow, len(headers))
		for j, header := range headers {
			if header == "" {
				continue
			}
			var value any
			if j < len(line) {
				if cell := strings.TrimSpace(line[j]); cell != "" {
					value = cell
				}
			}
			row[header] = value
		}
		dataRows = append(dataRows, row)
	}

	return dataRows, nil
}

func blankLine(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
