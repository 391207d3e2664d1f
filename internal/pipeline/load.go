package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"ecoclean/internal"
	"ecoclean/internal/util"
)

var errNoHeader = errors.New("no header row")

// LoadTable reads the feed at path. The format follows the extension:
// .xlsx, .html/.htm, anything else is comma-separated text.
func LoadTable(path string) (*internal.AnnouncementTable, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readXLSX(blob)
	case ".html", ".htm":
		records, err = readHTMLTable(blob)
	default:
		records, err = readCSV(bytes.NewReader(blob))
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	table, err := BuildTable(records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}

func ReadCSV(r io.Reader) (*internal.AnnouncementTable, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return BuildTable(records)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0
	return reader.ReadAll()
}

func readXLSX(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return padRecords(dropBlank(rows))
}

func readHTMLTable(content []byte) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var records [][]string
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() < 2 {
			return true
		}
		rows.Each(func(_ int, row *goquery.Selection) {
			cells := []string{}
			row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, normalizeSpaces(cell.Text()))
			})
			records = append(records, cells)
		})
		return false
	})
	if len(records) == 0 {
		return nil, fmt.Errorf("no table with a header and data rows")
	}
	return padRecords(dropBlank(records))
}

func dropBlank(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if util.IsBlankRow(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// padRecords fills rows that spreadsheet readers return short (trailing
// empty cells are trimmed). Rows wider than the header are an error.
func padRecords(records [][]string) ([][]string, error) {
	if len(records) == 0 {
		return nil, errNoHeader
	}
	width := len(records[0])
	for i, row := range records[1:] {
		switch {
		case len(row) > width:
			return nil, fmt.Errorf("record on line %d: wrong number of fields", i+2)
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			records[i+1] = padded
		}
	}
	return records, nil
}

// BuildTable turns header plus string records into a typed table. A column
// is numeric when every non-missing value in it is a plain decimal number;
// its cells keep only digits, '.' and '-' in their spelling.
func BuildTable(records [][]string) (*internal.AnnouncementTable, error) {
	if len(records) == 0 {
		return nil, errNoHeader
	}
	header := dedupeHeaders(util.NormalizeHeaders(records[0]))
	data := records[1:]

	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = columnIsNumeric(data, col)
	}

	table := internal.NewTable(header)
	for _, rec := range data {
		cells := make([]internal.Cell, len(rec))
		for col, raw := range rec {
			switch {
			case util.IsMissing(raw):
				cells[col] = internal.Null()
			case col < len(numeric) && numeric[col]:
				cells[col] = internal.Number(util.CanonicalNumber(raw))
			default:
				cells[col] = internal.Text(raw)
			}
		}
		if err := table.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func columnIsNumeric(data [][]string, col int) bool {
	for _, rec := range data {
		if col >= len(rec) || util.IsMissing(rec[col]) {
			continue
		}
		if !util.LooksNumeric(rec[col]) {
			return false
		}
	}
	return true
}

// dedupeHeaders renames repeated names to "name.1", "name.2", ...
func dedupeHeaders(headers []string) []string {
	seen := map[string]int{}
	out := make([]string, len(headers))
	for i, h := range headers {
		n, dup := seen[h]
		seen[h] = n + 1
		if !dup {
			out[i] = h
			continue
		}
		name := fmt.Sprintf("%s.%d", h, n)
		for seen[name] > 0 {
			n++
			name = fmt.Sprintf("%s.%d", h, n)
		}
		seen[name] = 1
		out[i] = name
	}
	return out
}

func normalizeSpaces(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
