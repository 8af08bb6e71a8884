package stats

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// frequencyTypes fixes the column types of the frequency table so that the
// join keys never depend on type detection.
var frequencyTypes = map[string]series.Type{
	ColYear:             series.Int,
	ColCharacteristic:   series.String,
	ColCharacteristicLv: series.String,
	ColMaternalNeonatal: series.String,
	ColRank:             series.Int,
	ColCCS:              series.Int,
	ColDescription:      series.String,
	ColWeightedStays:    series.Float,
	ColStayRate:         series.Float,
}

// LoadCosts reads the delimited cost file. The header row supplies the column
// labels, which are left untouched; see NormalizeCosts.
func LoadCosts(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open cost data: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read cost data %s: %w", path, df.Err)
	}

	slog.Debug("loaded cost data", slog.String("path", path), slog.Int("rows", df.Nrow()), slog.Int("cols", df.Ncol()))
	return df, nil
}

// LoadFrequencies reads the frequency sheet described by src. The sheet must
// have exactly len(src.Names) columns once the header rows are skipped.
func LoadFrequencies(src Source) (dataframe.DataFrame, error) {
	if len(src.Names) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: no column names for %s", ErrColumnCount, src.Path)
	}

	rows, err := ExtractRows(src)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	records, err := SheetRecords(rows, src.SkipRows, len(src.Names))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("frequency data %s: %w", src.Path, err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("frequency data %s: %w", src.Path, ErrNoRows)
	}

	types := make(map[string]series.Type, len(src.Names))
	for i, name := range src.Names {
		t, ok := frequencyTypes[name]
		if !ok {
			t = series.String
		}
		types[name] = t
		if t == series.Int || t == series.Float {
			for _, r := range records {
				r[i] = strings.ReplaceAll(r[i], ",", "")
			}
		}
	}

	table := make([][]string, 0, len(records)+1)
	table = append(table, append([]string(nil), src.Names...))
	table = append(table, records...)

	df := dataframe.LoadRecords(table,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("frequency data %s: %w", src.Path, df.Err)
	}

	slog.Debug("loaded frequency data", slog.String("path", src.Path), slog.Int("rows", df.Nrow()))
	return df, nil
}
