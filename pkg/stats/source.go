package stats

import (
	"path/filepath"
	"strings"
)

// Source describes a tabular input file.
//
// Sheet, SkipRows and Names only apply to spreadsheets: the sheet index is
// zero based, SkipRows leading rows are discarded and Names labels the
// remaining columns in order.
type Source struct {
	Path     string
	Sheet    int
	SkipRows int
	Names    []string
}

// FrequencySource returns the source for the frequency workbook with the
// sheet layout of the national top procedures export.
func FrequencySource(path string) Source {
	return Source{
		Path:     path,
		Sheet:    2,
		SkipRows: 2,
		Names:    FrequencyColumns,
	}
}

func (s Source) Ext() string {
	return strings.ToLower(filepath.Ext(s.Path))
}
