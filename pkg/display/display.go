// Package display prints tables and pipeline results for interactive
// inspection.
package display

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/anrid/proc-costs/pkg/stats"
)

// Head prints the first n rows of df.
func Head(w io.Writer, title string, df dataframe.DataFrame, n int) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, df.Subset(span(0, min(n, df.Nrow()))))
}

// Tail prints the last n rows of df limited to cols.
func Tail(w io.Writer, title string, df dataframe.DataFrame, cols []string, n int) error {
	sel := df.Select(cols)
	if sel.Err != nil {
		return fmt.Errorf("tail %s: %w", title, sel.Err)
	}
	rows := sel.Nrow()
	start := max(rows-n, 0)

	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, sel.Subset(span(start, rows)))
	return nil
}

// Distinct returns the values of col in first-seen order.
func Distinct(df dataframe.DataFrame, col string) ([]string, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	found := false
	for _, n := range df.Names() {
		if n == col {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", stats.ErrMissingColumn, col)
	}

	seen := make(map[string]bool)
	var values []string
	for _, v := range df.Col(col).Records() {
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values, nil
}

// DumpDistinct prints the distinct values of col.
func DumpDistinct(w io.Writer, df dataframe.DataFrame, col string) error {
	values, err := Distinct(df, col)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s options:\n", col)
	spew.Fdump(w, values)
	return nil
}

// Summary prints the selected codes of a cohort run with their
// reference-year stays and mean charge.
func Summary(w io.Writer, res *stats.CohortResult, refYear int) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "\nCohort %s: %d cohort rows, %d merged rows, %d rows for the top %d codes\n",
		res.Cohort.Name, res.Filtered.Nrow(), res.Merged.Nrow(), res.Top.Nrow(), len(res.Codes))

	if len(res.Codes) == 0 {
		fmt.Fprintf(w, "No procedures ranked in %d.\n", refYear)
		return
	}

	// Codes and years are identifiers and print without grouping.
	rows := referenceRows(res.Top, refYear)
	for i, code := range res.Codes {
		id := strconv.Itoa(code)
		r, ok := rows[code]
		if !ok {
			fmt.Fprintf(w, "%02d. %4s\n", i+1, id)
			continue
		}
		charge := "n/a"
		if !math.IsNaN(r.charge) {
			charge = p.Sprintf("%.2f", r.charge)
		}
		p.Fprintf(w, "%02d. %4s  %-45s  %12d stays  mean charge %s\n",
			i+1, id, r.descr, int64(math.Round(r.stays)), charge)
	}
}

type referenceRow struct {
	descr  string
	stays  float64
	charge float64
}

// referenceRows indexes the first row per code of year refYear.
func referenceRows(df dataframe.DataFrame, refYear int) map[int]referenceRow {
	out := make(map[int]referenceRow)
	if df.Nrow() == 0 {
		return out
	}

	years := df.Col(stats.ColYear).Float()
	codes := df.Col(stats.ColCCS).Float()
	descr := df.Col(stats.ColDescription).Records()
	stays := df.Col(stats.ColWeightedStays).Float()

	charges := make([]float64, len(years))
	for i := range charges {
		charges[i] = math.NaN()
	}
	for _, n := range df.Names() {
		if n == stats.ColMeanCharges {
			charges = df.Col(n).Float()
			break
		}
	}

	for i := range years {
		if math.IsNaN(years[i]) || int(years[i]) != refYear || math.IsNaN(codes[i]) {
			continue
		}
		code := int(codes[i])
		if _, ok := out[code]; ok {
			continue
		}
		out[code] = referenceRow{descr: descr[i], stays: stays[i], charge: charges[i]}
	}
	return out
}

func span(from, to int) []int {
	idx := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		idx = append(idx, i)
	}
	return idx
}
