package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("worksheet is empty")

// Table is the first worksheet of a workbook: a header row followed by data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Write encodes header and rows as a single-sheet xlsx workbook.
func Write(w io.Writer, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	vals := make([]interface{}, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("set row %d: %w", n, err)
	}
	return nil
}

// Read decodes the first worksheet of an xlsx workbook. Short rows are
// padded to the header width.
func Read(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return Table{}, fmt.Errorf("no worksheet found")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, ErrEmptySheet
	}

	// Headers are matched verbatim; " Role" is not "Role".
	header := append([]string(nil), rows[0]...)

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		padded := make([]string, len(header))
		copy(padded, row)
		data = append(data, padded)
	}

	return Table{Header: header, Rows: data}, nil
}

// Index returns the position of each requested column. The second return
// value is the first column that is absent from the header, or "".
func (t Table) Index(columns []string) (map[string]int, string) {
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}

	out := make(map[string]int, len(columns))
	for _, c := range columns {
		i, ok := pos[c]
		if !ok {
			return nil, c
		}
		out[c] = i
	}
	return out, ""
}

// Lookup returns the position of a single column.
func (t Table) Lookup(column string) (int, bool) {
	for i, h := range t.Header {
		if h == column {
			return i, true
		}
	}
	return -1, false
}

func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
