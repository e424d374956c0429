package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"triptracker/internal/domain"
)

// XLSXExporter writes the report as one workbook with a sheet per table.
type XLSXExporter struct {
	Path string
}

// NewXLSX returns an exporter writing a workbook at path.
func NewXLSX(path string) *XLSXExporter { return &XLSXExporter{Path: path} }

// Export writes every table to its own sheet, bold header row, frozen panes.
func (e *XLSXExporter) Export(r domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx export: %w", err)
	}

	for i, t := range r.Tables() {
		if i == 0 {
			// Rename the default sheet instead of leaving "Sheet1" around.
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return fmt.Errorf("xlsx export: %w", err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
		if err := writeSheet(f, t, headerStyle); err != nil {
			return fmt.Errorf("xlsx export: sheet %q: %w", t.Name, err)
		}
	}

	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("xlsx export: save %s: %w", e.Path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, t domain.Table, headerStyle int) error {
	header := make([]any, len(t.Columns))
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
		widths[i] = len(c)
	}
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(max(len(t.Columns), 1), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", last, headerStyle); err != nil {
		return err
	}

	for n, row := range t.Rows {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = v
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.Name, col, col, float64(min(max(w+2, 10), 60))); err != nil {
			return err
		}
	}

	return f.SetPanes(t.Name, &excelize.Panes{
		Freeze: true, Split: false, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
}

var _ domain.Exporter = (*XLSXExporter)(nil)
