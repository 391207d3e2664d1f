package internal

import (
	"errors"
	"fmt"
)

type CellKind string

const (
	KindNull   CellKind = "null"
	KindText   CellKind = "text"
	KindNumber CellKind = "number"
)

// Cell is a single table value. Only text cells support character-level
// operations; number and null cells are opaque to the transforms.
type Cell struct {
	Kind CellKind
	Raw  string
}

func Text(s string) Cell   { return Cell{Kind: KindText, Raw: s} }
func Number(s string) Cell { return Cell{Kind: KindNumber, Raw: s} }
func Null() Cell           { return Cell{Kind: KindNull} }

func (c Cell) IsText() bool { return c.Kind == KindText }

// String renders the cell the way it is written to an output file.
func (c Cell) String() string {
	if c.Kind == KindNull {
		return ""
	}
	return c.Raw
}

const (
	ColEvent     = "Event"
	ColPeriod    = "Period"
	ColSurvM     = "SurvM"
	ColSurvA     = "SurvA"
	ColSurvH     = "SurvH"
	ColSurvL     = "SurvL"
	ColActual    = "Actual"
	ColPrior     = "Prior"
	ColRevised   = "Revised"
	ColAmendment = "Amendment"
)

var NumericColumns = []string{ColSurvM, ColSurvA, ColSurvH, ColSurvL, ColActual, ColPrior, ColRevised}

var RequiredColumns = append([]string{ColEvent, ColPeriod}, NumericColumns...)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrNotText       = errors.New("value is not text")
)

type Row map[string]Cell

// AnnouncementTable keeps column order and row order exactly as loaded.
type AnnouncementTable struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string) *AnnouncementTable {
	return &AnnouncementTable{Columns: append([]string(nil), columns...)}
}

func (t *AnnouncementTable) Len() int { return len(t.Rows) }

func (t *AnnouncementTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *AnnouncementTable) RequireColumn(name string) error {
	if !t.HasColumn(name) {
		return fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return nil
}

// EnsureColumn appends name to the column list when absent. Existing rows
// get a null cell for it.
func (t *AnnouncementTable) EnsureColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for _, row := range t.Rows {
		row[name] = Null()
	}
}

func (t *AnnouncementTable) AppendRow(cells []Cell) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row %d has %d fields, expected %d", len(t.Rows)+1, len(cells), len(t.Columns))
	}
	row := make(Row, len(cells))
	for i, c := range cells {
		row[t.Columns[i]] = c
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Column returns the cells of one column in row order.
func (t *AnnouncementTable) Column(name string) ([]Cell, error) {
	if err := t.RequireColumn(name); err != nil {
		return nil, err
	}
	out := make([]Cell, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out, nil
}

// Records renders the table as header plus string rows.
func (t *AnnouncementTable) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string(nil), t.Columns...))
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			rec[i] = row[c].String()
		}
		out = append(out, rec)
	}
	return out
}
