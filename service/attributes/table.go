package attributes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound is returned when a required column is missing.
var ErrColumnNotFound = errors.New("column not found")

// Table is a header row plus data rows read from a spreadsheet.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]string
}

// ReadTable reads an .xlsx workbook or a .csv file. For workbooks, sheet
// selects the sheet by name; the first sheet is used if it is empty.
func ReadTable(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	default:
		return readWorkbook(path, sheet)
	}
}

func readWorkbook(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("no sheets found in workbook %s", path)
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading rows of sheet %s: %w", sheet, err)
	}
	return newTable(sheet, rows, path)
}

func readCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return newTable("", rows, path)
}

func newTable(sheet string, rows [][]string, path string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return &Table{
		Sheet:  sheet,
		Header: header,
		Rows:   rows[1:],
	}, nil
}

// Column returns the index of the named column. Names are compared
// case-insensitively.
func (t *Table) Column(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Cell returns the trimmed value at row and column, or an empty string if
// the row is shorter.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][col])
}
