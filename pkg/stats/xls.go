package stats

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractRows reads every row of the source's sheet. Row positions are kept:
// rows missing from the workbook come back as empty slices so that SkipRows
// counts physical rows.
func ExtractRows(src Source) ([][]string, error) {
	switch src.Ext() {
	case ".xlsx", ".xlsm":
		return ExtractRowsFromXLSX(src)
	case ".xls":
		return ExtractRowsFromXLS(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, src.Path)
	}
}

func ExtractRowsFromXLS(src Source) ([][]string, error) {
	slog.Debug("loading XLS data", slog.String("path", src.Path), slog.Int("sheet", src.Sheet))

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("read XLS file %s: %w", src.Path, err)
	}

	sheet := wb.GetSheet(src.Sheet)
	if sheet == nil {
		return nil, fmt.Errorf("%w: index %d in %s", ErrSheetNotFound, src.Sheet, src.Path)
	}

	slog.Debug("XLS sheet", slog.String("name", sheet.Name), slog.Int("max_row", int(sheet.MaxRow)))

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		rows = append(rows, cols)
	}
	return rows, nil
}

func ExtractRowsFromXLSX(src Source) ([][]string, error) {
	slog.Debug("loading XLSX data", slog.String("path", src.Path), slog.Int("sheet", src.Sheet))

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer f.Close()

	wb, err := xlsx.OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("read XLSX file %s: %w", src.Path, err)
	}

	sheets := wb.GetSheetList()
	if src.Sheet < 0 || src.Sheet >= len(sheets) {
		return nil, fmt.Errorf("%w: index %d in %s (%d sheets)", ErrSheetNotFound, src.Sheet, src.Path, len(sheets))
	}
	name := sheets[src.Sheet]

	rows, err := wb.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", name, err)
	}

	slog.Debug("XLSX sheet", slog.String("name", name), slog.Int("rows", len(rows)))
	return rows, nil
}

// SheetRecords turns raw sheet rows into equally sized records: the first
// skip rows and blank rows are dropped, cells are trimmed and rows are padded
// to the widest row. The width must equal want.
func SheetRecords(rows [][]string, skip, want int) ([][]string, error) {
	if skip > len(rows) {
		skip = len(rows)
	}

	var records [][]string
	width := 0
	for _, row := range rows[skip:] {
		cells := trimRow(row)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > width {
			width = len(cells)
		}
		records = append(records, cells)
	}

	if len(records) > 0 && width != want {
		return nil, fmt.Errorf("%w: sheet has %d columns, %d names given", ErrColumnCount, width, want)
	}

	for i, r := range records {
		for len(r) < width {
			r = append(r, "")
		}
		records[i] = r
	}
	return records, nil
}

// trimRow trims every cell and drops trailing empty cells.
func trimRow(row []string) []string {
	cells := make([]string, len(row))
	last := -1
	for i, c := range row {
		cells[i] = strings.Trim(c, " \n\t\r")
		if cells[i] != "" {
			last = i
		}
	}
	return cells[:last+1]
}
