package stats

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// JoinKeys are the columns the frequency and cost tables are merged on.
var JoinKeys = []string{ColCCS, ColYear}

// MergeCosts left-joins the normalized cost table onto freq by (ccs, year).
// Every frequency row is kept; cost columns are NaN where no cost row
// matches, and a key matching several cost rows yields one row per match.
func MergeCosts(freq, costs dataframe.DataFrame) (dataframe.DataFrame, error) {
	if freq.Err != nil {
		return dataframe.DataFrame{}, freq.Err
	}
	if costs.Err != nil {
		return dataframe.DataFrame{}, costs.Err
	}
	if err := requireColumns(freq, "frequency data", JoinKeys...); err != nil {
		return dataframe.DataFrame{}, err
	}
	if err := requireColumns(costs, "cost data", JoinKeys...); err != nil {
		return dataframe.DataFrame{}, err
	}

	out := freq.LeftJoin(costs, JoinKeys...)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("merge costs: %w", out.Err)
	}
	return out, nil
}
