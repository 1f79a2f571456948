package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/factor-cli/internal/model"
)

// Appended output columns.
const (
	ColumnFactorCode = "Emission Factor Code"
	ColumnFactorName = "Emission Factor Name"
)

// Write saves enriched rows to a CSV or XLSX file, chosen by extension. The
// original columns come first in their input order, followed by the two
// emission factor columns.
func Write(path string, headers []string, rows []model.ResultRow) error {
	out := append(append([]string{}, headers...), ColumnFactorCode, ColumnFactorName)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, out, rows, headers)
	case ".xlsx":
		return writeXLSX(path, out, rows, headers)
	default:
		return eris.Errorf("table: unsupported file type %q", filepath.Ext(path))
	}
}

func writeCSV(path string, out []string, rows []model.ResultRow, headers []string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "table: create csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(out); err != nil {
		return eris.Wrap(err, "table: write csv header")
	}
	for _, rr := range rows {
		if err := w.Write(recordFor(rr, headers)); err != nil {
			return eris.Wrap(err, "table: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "table: flush csv")
	}
	return nil
}

func writeXLSX(path string, out []string, rows []model.ResultRow, headers []string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Enriched")
	if err != nil {
		return eris.Wrap(err, "table: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range out {
		header.AddCell().SetString(h)
	}
	for _, rr := range rows {
		row := sheet.AddRow()
		for _, cell := range recordFor(rr, headers) {
			row.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "table: save xlsx")
	}
	return nil
}

func recordFor(rr model.ResultRow, headers []string) []string {
	record := make([]string, 0, len(headers)+2)
	for _, h := range headers {
		record = append(record, cellString(rr.Row[h]))
	}
	return append(record, rr.Label.EmissionFactorCode, rr.Label.EmissionFactorName)
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
