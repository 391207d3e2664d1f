package pipeline

import (
	"fmt"

	"ecoclean/internal"
)

func ComposeEvent(event internal.Cell, label string) (internal.Cell, error) {
	if !event.IsText() {
		return internal.Cell{}, fmt.Errorf("%w: %s cell of kind %s", internal.ErrNotText, internal.ColEvent, event.Kind)
	}
	return internal.Text(event.Raw + label), nil
}

// ComposeEvents appends each row's Amendment label to its Event name.
func ComposeEvents(table *internal.AnnouncementTable) error {
	for _, col := range []string{internal.ColEvent, internal.ColAmendment} {
		if err := table.RequireColumn(col); err != nil {
			return err
		}
	}
	for i, row := range table.Rows {
		label := row[internal.ColAmendment]
		if !label.IsText() {
			return fmt.Errorf("row %d: %w: %s cell of kind %s", i+1, internal.ErrNotText, internal.ColAmendment, label.Kind)
		}
		composed, err := ComposeEvent(row[internal.ColEvent], label.Raw)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		row[internal.ColEvent] = composed
	}
	return nil
}
