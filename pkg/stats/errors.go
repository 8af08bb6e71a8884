package stats

import "errors"

var (
	ErrMissingColumn     = errors.New("missing column")
	ErrDuplicateColumn   = errors.New("duplicate column")
	ErrColumnCount       = errors.New("column count does not match column names")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoRows            = errors.New("no data rows")
)
