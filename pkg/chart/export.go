package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/anrid/proc-costs/pkg/stats"
)

// WriteCSV writes the observations as year,ccs_descr,<metric> rows sorted by
// description then year. Null values are written as empty cells.
func WriteCSV(w io.Writer, metric string, obs []stats.Observation) error {
	sorted := append([]stats.Observation(nil), obs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Description != sorted[j].Description {
			return sorted[i].Description < sorted[j].Description
		}
		return sorted[i].Year < sorted[j].Year
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{stats.ColYear, stats.ColDescription, metric}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, o := range sorted {
		value := ""
		if !o.IsNull() {
			value = strconv.FormatFloat(o.Value, 'f', -1, 64)
		}
		if err := cw.Write([]string{strconv.Itoa(o.Year), o.Description, value}); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the observations to dir/name.csv and returns the path.
func SaveCSV(dir, name, metric string, obs []stats.Observation) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, metric, obs); err != nil {
		f.Close()
		return "", fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export %s: %w", path, err)
	}

	slog.Debug("chart data written", slog.String("path", path), slog.Int("records", len(obs)))
	return path, nil
}
