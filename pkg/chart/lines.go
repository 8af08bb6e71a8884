package chart

import (
	"sort"

	"github.com/anrid/proc-costs/pkg/stats"
)

// Point is one aggregated point of a line.
type Point struct {
	Year  int
	Value float64
}

// Line is the series drawn for one description.
type Line struct {
	Description string
	Points      []Point
}

// Lines groups observations by description, one line per group sorted by
// description. Points are ordered by year; several observations for the same
// year are averaged and null observations are dropped. Groups left without
// points are omitted.
func Lines(obs []stats.Observation) []Line {
	type acc struct {
		sum float64
		n   int
	}

	groups := make(map[string]map[int]*acc)
	for _, o := range obs {
		if o.IsNull() {
			continue
		}
		years, ok := groups[o.Description]
		if !ok {
			years = make(map[int]*acc)
			groups[o.Description] = years
		}
		a, ok := years[o.Year]
		if !ok {
			a = &acc{}
			years[o.Year] = a
		}
		a.sum += o.Value
		a.n++
	}

	lines := make([]Line, 0, len(groups))
	for descr, years := range groups {
		l := Line{Description: descr}
		for year, a := range years {
			l.Points = append(l.Points, Point{Year: year, Value: a.sum / float64(a.n)})
		}
		sort.Slice(l.Points, func(i, j int) bool {
			return l.Points[i].Year < l.Points[j].Year
		})
		lines = append(lines, l)
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Description < lines[j].Description
	})
	return lines
}
