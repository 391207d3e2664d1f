package pipeline

import (
	"ecoclean/internal"
	"ecoclean/internal/util"
)

var DefaultAmendmentCodes = []string{"A", "F", "P", "R", "S", "T"}

// ExtractAmendment returns " "+code when the period text ends in one of
// codes, checked in order, and "" otherwise. Non-text periods never match.
func ExtractAmendment(period internal.Cell, codes []string) string {
	for _, code := range codes {
		if !period.IsText() {
			continue
		}
		last, ok := util.LastRune(period.Raw)
		if !ok {
			continue
		}
		if string(last) == code {
			return " " + code
		}
	}
	return ""
}

// ApplyAmendments fills the Amendment column from Period and returns how many
// rows carry a non-empty label.
func ApplyAmendments(table *internal.AnnouncementTable, codes []string) (int, error) {
	if err := table.RequireColumn(internal.ColPeriod); err != nil {
		return 0, err
	}
	table.EnsureColumn(internal.ColAmendment)

	amended := 0
	for _, row := range table.Rows {
		label := ExtractAmendment(row[internal.ColPeriod], codes)
		if label != "" {
			amended++
		}
		row[internal.ColAmendment] = internal.Text(label)
	}
	return amended, nil
}
