package stats

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
)

const (
	DefaultReferenceYear = 2004
	DefaultTopN          = 10
)

// Options parameterize a cohort run.
type Options struct {
	ReferenceYear int
	TopN          int
	Logger        *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// CohortResult holds every intermediate table of one cohort run.
type CohortResult struct {
	Cohort Cohort

	// Filtered is the cohort's slice of the frequency table.
	Filtered dataframe.DataFrame
	// Merged is Filtered left-joined with the cost table.
	Merged dataframe.DataFrame
	// Top is Merged restricted to Codes.
	Top   dataframe.DataFrame
	Codes CodeSet

	Stays   []Observation
	Charges []Observation
}

// RunCohort filters, merges, ranks and projects the datasets for one cohort.
// The top codes are chosen from the reference year only and then applied to
// every year.
func RunCohort(ds *Datasets, c Cohort, opts Options) (*CohortResult, error) {
	log := opts.logger().With(slog.String("cohort", c.Name))

	filtered, err := FilterCohort(ds.Frequencies, c)
	if err != nil {
		return nil, err
	}
	log.Debug("cohort filtered", slog.Int("rows", filtered.Nrow()))

	merged, err := MergeCosts(filtered, ds.Costs)
	if err != nil {
		return nil, err
	}
	log.Debug("costs merged", slog.Int("rows", merged.Nrow()))

	codes, err := TopCodes(filtered, opts.ReferenceYear, opts.TopN)
	if err != nil {
		return nil, err
	}
	if len(codes) < opts.TopN {
		log.Warn("fewer top codes than requested",
			slog.Int("reference_year", opts.ReferenceYear),
			slog.Int("want", opts.TopN),
			slog.Int("got", len(codes)))
	}

	top, err := RestrictToCodes(merged, codes)
	if err != nil {
		return nil, err
	}

	stays, err := Project(top, ColWeightedStays)
	if err != nil {
		return nil, fmt.Errorf("project stays: %w", err)
	}
	charges, err := Project(top, ColMeanCharges)
	if err != nil {
		return nil, fmt.Errorf("project charges: %w", err)
	}

	log.Info("cohort done",
		slog.Int("filtered_rows", filtered.Nrow()),
		slog.Int("merged_rows", merged.Nrow()),
		slog.Int("top_codes", len(codes)),
		slog.Int("top_rows", top.Nrow()))

	return &CohortResult{
		Cohort:   c,
		Filtered: filtered,
		Merged:   merged,
		Top:      top,
		Codes:    codes,
		Stays:    stays,
		Charges:  charges,
	}, nil
}
