package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"ecoclean/internal"
)

// WriteTable overwrites path with the table. .xlsx paths get a workbook,
// anything else comma-separated text. No row index is written.
func WriteTable(table *internal.AnnouncementTable, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ExportTableToXLSX(table, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, table); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func WriteCSV(out io.Writer, table *internal.AnnouncementTable) error {
	w := csv.NewWriter(out)
	if err := w.WriteAll(table.Records()); err != nil {
		return err
	}
	return w.Error()
}

func ExportTableToXLSX(table *internal.AnnouncementTable, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, row := range table.Rows {
		r := i + 2
		for c, name := range table.Columns {
			value, ok := xlsxValue(row[name])
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(outputPath)
}

func xlsxValue(cell internal.Cell) (any, bool) {
	switch cell.Kind {
	case internal.KindNull:
		return nil, false
	case internal.KindNumber:
		if v, err := strconv.ParseFloat(cell.Raw, 64); err == nil {
			return v, true
		}
		return cell.Raw, true
	default:
		return cell.Raw, true
	}
}
