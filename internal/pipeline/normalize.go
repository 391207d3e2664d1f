package pipeline

import (
	"ecoclean/internal"
	"ecoclean/internal/util"
)

// NumericFix strips everything but digits, '.' and '-' from a text cell.
// Number and null cells are returned unchanged.
func NumericFix(cell internal.Cell) internal.Cell {
	if !cell.IsText() {
		return cell
	}
	return internal.Text(util.KeepRunes(cell.Raw, util.IsNumericRune))
}

func NormalizeColumn(table *internal.AnnouncementTable, column string) error {
	if err := table.RequireColumn(column); err != nil {
		return err
	}
	for _, row := range table.Rows {
		row[column] = NumericFix(row[column])
	}
	return nil
}

func NormalizeNumericColumns(table *internal.AnnouncementTable, columns []string) error {
	for _, column := range columns {
		if err := NormalizeColumn(table, column); err != nil {
			return err
		}
	}
	return nil
}
