package stats

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// RestrictToCodes keeps the rows of df whose ccs code is in codes, for every
// year present.
func RestrictToCodes(df dataframe.DataFrame, codes CodeSet) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	if err := requireColumns(df, "merged data", ColCCS); err != nil {
		return dataframe.DataFrame{}, err
	}

	out := df.Filter(dataframe.F{Colname: ColCCS, Comparator: series.In, Comparando: []int(codes)})
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("restrict to top codes: %w", out.Err)
	}
	return out, nil
}

// Project turns each row of df into an Observation of (year, description,
// metric). Row order is kept; a null metric becomes NaN.
func Project(df dataframe.DataFrame, metric string) ([]Observation, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	if err := requireColumns(df, "merged data", ColYear, ColDescription, metric); err != nil {
		return nil, err
	}

	years := df.Col(ColYear).Float()
	descr := df.Col(ColDescription).Records()
	values := df.Col(metric).Float()

	obs := make([]Observation, 0, len(years))
	for i := range years {
		if math.IsNaN(years[i]) {
			continue
		}
		obs = append(obs, Observation{
			Year:        int(years[i]),
			Description: descr[i],
			Value:       values[i],
		})
	}
	return obs, nil
}
