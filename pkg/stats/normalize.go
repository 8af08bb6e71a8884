package stats

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCosts lowercases every column label of the cost table and adds the
// ccs join key as a copy of codeColumn. The ccs and year columns are coerced
// to integers so they join against the frequency table. Normalizing an
// already normalized table returns an equal table.
func NormalizeCosts(df dataframe.DataFrame, codeColumn string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}

	lower := cases.Lower(language.Und)

	out := df.Copy()
	seen := make(map[string]string, out.Ncol())
	for _, name := range out.Names() {
		l := lower.String(name)
		if prev, ok := seen[l]; ok {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %q and %q both normalize to %q", ErrDuplicateColumn, prev, name, l)
		}
		seen[l] = name
		if l != name {
			out = out.Rename(l, name)
		}
	}
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize cost columns: %w", out.Err)
	}

	code := lower.String(codeColumn)
	for _, name := range []string{code, ColYear} {
		if !hasColumn(out, name) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: cost data has no %q column", ErrMissingColumn, name)
		}
	}

	out = out.Mutate(intSeries(out.Col(code), ColCCS))
	out = out.Mutate(intSeries(out.Col(ColYear), ColYear))
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("normalize cost columns: %w", out.Err)
	}
	return out, nil
}

// intSeries converts s to an integer series named name. Values that are not
// numbers become NaN.
func intSeries(s series.Series, name string) series.Series {
	return series.New(s.Float(), series.Int, name)
}
