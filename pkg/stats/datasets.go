package stats

import (
	"log/slog"
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Datasets holds the two source tables of an analysis run. They are loaded
// once and shared read-only by every cohort pipeline.
type Datasets struct {
	Costs       dataframe.DataFrame
	Frequencies dataframe.DataFrame
	Loaded      time.Time
}

// LoadDatasets reads both sources and normalizes the cost table, aliasing
// codeColumn to the ccs join key.
func LoadDatasets(costPath string, freq Source, codeColumn string) (*Datasets, error) {
	costs, err := LoadCosts(costPath)
	if err != nil {
		return nil, err
	}

	costs, err = NormalizeCosts(costs, codeColumn)
	if err != nil {
		return nil, err
	}

	freqs, err := LoadFrequencies(freq)
	if err != nil {
		return nil, err
	}

	return &Datasets{
		Costs:       costs,
		Frequencies: freqs,
		Loaded:      time.Now(),
	}, nil
}

// Info logs the size and year span of both tables.
func (ds *Datasets) Info(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, t := range []struct {
		name string
		df   dataframe.DataFrame
	}{
		{"costs", ds.Costs},
		{"frequencies", ds.Frequencies},
	} {
		first, last := YearSpan(t.df)
		logger.Info("dataset",
			slog.String("table", t.name),
			slog.Int("rows", t.df.Nrow()),
			slog.Int("cols", t.df.Ncol()),
			slog.Int("first_year", first),
			slog.Int("last_year", last),
		)
	}
}

// YearSpan returns the smallest and largest year in df, or zeros when the
// table has no year values.
func YearSpan(df dataframe.DataFrame) (first, last int) {
	if !hasColumn(df, ColYear) {
		return 0, 0
	}

	found := false
	for _, y := range df.Col(ColYear).Float() {
		if math.IsNaN(y) {
			continue
		}
		year := int(y)
		if !found || year < first {
			first = year
		}
		if !found || year > last {
			last = year
		}
		found = true
	}
	return first, last
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
