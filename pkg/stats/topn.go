package stats

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// CodeSet is an ordered set of ccs codes, best ranked first.
type CodeSet []int

// Contains reports whether code is in the set.
func (s CodeSet) Contains(code int) bool {
	for _, c := range s {
		if c == code {
			return true
		}
	}
	return false
}

// TopCodes returns the n distinct codes with the lowest rank among the rows
// of year refYear. Equal ranks keep their table order, rows without a rank
// sort last and rows without a code are ignored. Fewer than n codes are
// returned when the year has fewer rows.
func TopCodes(df dataframe.DataFrame, refYear, n int) (CodeSet, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	if err := requireColumns(df, "frequency data", ColYear, ColRank, ColCCS); err != nil {
		return nil, err
	}
	if n <= 0 {
		return CodeSet{}, nil
	}

	years := df.Col(ColYear).Float()
	ranks := df.Col(ColRank).Float()
	codes := df.Col(ColCCS).Float()

	type candidate struct {
		rank float64
		code int
	}

	var slice []candidate
	for i := range years {
		if math.IsNaN(years[i]) || int(years[i]) != refYear || math.IsNaN(codes[i]) {
			continue
		}
		slice = append(slice, candidate{rank: ranks[i], code: int(codes[i])})
	}

	sort.SliceStable(slice, func(i, j int) bool {
		a, b := slice[i].rank, slice[j].rank
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a < b
	})

	top := CodeSet{}
	for _, c := range slice {
		if len(top) == n {
			break
		}
		if top.Contains(c.code) {
			continue
		}
		top = append(top, c.code)
	}
	return top, nil
}
