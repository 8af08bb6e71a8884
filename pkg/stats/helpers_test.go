package stats

import (
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"
)

func freqRow(year int, flag string, rank, ccs int, descr string, stays float64) []string {
	return []string{
		strconv.Itoa(year),
		AllInpatientStays,
		"All",
		flag,
		strconv.Itoa(rank),
		strconv.Itoa(ccs),
		descr,
		strconv.FormatFloat(stays, 'f', -1, 64),
		"12.5",
	}
}

func frequencyFrame(t *testing.T, rows ...[]string) dataframe.DataFrame {
	t.Helper()

	records := [][]string{FrequencyColumns}
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(frequencyTypes),
	)
	require.NoError(t, df.Err)
	return df
}

// costFrame builds a raw cost table with the source's mixed case labels.
func costFrame(t *testing.T, rows ...[]string) dataframe.DataFrame {
	t.Helper()

	records := [][]string{{"Year", "CCSCode", "MeanCharges"}}
	records = append(records, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(map[string]series.Type{
			"Year":        series.Int,
			"CCSCode":     series.Int,
			"MeanCharges": series.Float,
		}),
	)
	require.NoError(t, df.Err)
	return df
}

func normalizedCosts(t *testing.T, rows ...[]string) dataframe.DataFrame {
	t.Helper()

	df, err := NormalizeCosts(costFrame(t, rows...), DefaultCodeColumn)
	require.NoError(t, err)
	return df
}

func ints(t *testing.T, df dataframe.DataFrame, col string) []int {
	t.Helper()

	v, err := df.Col(col).Int()
	require.NoError(t, err)
	return v
}
