package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"triptracker/internal/domain"
)

// CSVExporter writes the report as one CSV file per table in a directory.
type CSVExporter struct {
	Dir string
}

// NewCSV returns an exporter writing into dir, creating it if needed.
func NewCSV(dir string) *CSVExporter { return &CSVExporter{Dir: dir} }

// Export writes each table to <dir>/<table_name>.csv.
func (e *CSVExporter) Export(r domain.Report) error {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	for _, t := range r.Tables() {
		path := filepath.Join(e.Dir, fileName(t.Name))
		if err := writeCSV(path, t); err != nil {
			return fmt.Errorf("csv export: table %q: %w", t.Name, err)
		}
	}
	return nil
}

// writeCSV writes via a temp file then rename, so a failed run never leaves
// a half-written table behind.
func writeCSV(path string, t domain.Table) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func fileName(table string) string {
	return strings.ReplaceAll(strings.ToLower(table), " ", "_") + ".csv"
}

var _ domain.Exporter = (*CSVExporter)(nil)
