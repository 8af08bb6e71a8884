package stats

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FilterCohort keeps the frequency rows whose characteristic and
// maternal/neonatal flag equal the cohort's, compared case-sensitively.
// A cohort without matching rows yields an empty table.
func FilterCohort(df dataframe.DataFrame, c Cohort) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	if err := requireColumns(df, "frequency data", ColCharacteristic, ColMaternalNeonatal); err != nil {
		return dataframe.DataFrame{}, err
	}

	out := df.
		Filter(dataframe.F{Colname: ColCharacteristic, Comparator: series.Eq, Comparando: c.Characteristic}).
		Filter(dataframe.F{Colname: ColMaternalNeonatal, Comparator: series.Eq, Comparando: c.MaternalNeonatal})
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("filter cohort %q: %w", c.Name, out.Err)
	}
	return out, nil
}

func requireColumns(df dataframe.DataFrame, table string, names ...string) error {
	for _, name := range names {
		if !hasColumn(df, name) {
			return fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, table, name)
		}
	}
	return nil
}
