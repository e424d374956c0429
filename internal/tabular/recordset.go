package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"triptracker/internal/domain"
)

// RecordSet is one loaded export: a named header row plus string cell rows.
type RecordSet struct {
	// Source labels the record set in errors, e.g. "accounts".
	Source  string
	Columns []string
	Rows    [][]string
}

// ReadFile loads a CSV or XLSX export, dispatching on the file extension.
func ReadFile(path, source string) (RecordSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path, source)
	case ".xlsx":
		return readXLSX(path, source)
	default:
		return RecordSet{}, &domain.StructuralError{
			Input:  source,
			Reason: fmt.Sprintf("unsupported file type %q (use .csv or .xlsx)", filepath.Ext(path)),
		}
	}
}

func readCSV(path, source string) (RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: fmt.Sprintf("cannot open %s: %v", path, err)}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are a data problem, not a structural one
	records, err := r.ReadAll()
	if err != nil {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: fmt.Sprintf("cannot parse %s as CSV: %v", path, err)}
	}
	return fromRows(records, source)
}

func readXLSX(path, source string) (RecordSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: fmt.Sprintf("cannot open %s as XLSX: %v", path, err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: "workbook has no sheets"}
	}
	// CRM exports put the data on the first sheet.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: fmt.Sprintf("cannot read sheet %q: %v", sheets[0], err)}
	}
	return fromRows(rows, source)
}

func fromRows(rows [][]string, source string) (RecordSet, error) {
	if len(rows) == 0 {
		return RecordSet{}, &domain.StructuralError{Input: source, Reason: "file is empty (no header row)"}
	}
	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = strings.TrimSpace(c)
	}
	rs := RecordSet{Source: source, Columns: header}
	for _, row := range rows[1:] {
		cells := make([]string, len(header))
		for i := range header {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
		}
		rs.Rows = append(rs.Rows, cells)
	}
	return rs, nil
}
