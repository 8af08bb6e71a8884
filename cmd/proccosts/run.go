package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/anrid/proc-costs/pkg/chart"
	"github.com/anrid/proc-costs/pkg/config"
	"github.com/anrid/proc-costs/pkg/display"
	"github.com/anrid/proc-costs/pkg/stats"
)

// run loads both tables, previews them and charts every cohort into a
// fresh directory under the output dir.
func run(w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	runID := uuid.New().String()
	logger = logger.With(slog.String("run_id", runID))

	ds, err := stats.LoadDatasets(cfg.CostPath, cfg.FrequencySource(), cfg.CodeColumn)
	if err != nil {
		return err
	}
	ds.Info(logger)

	if cfg.PreviewRows > 0 {
		display.Head(w, "Procedure frequencies", ds.Frequencies, cfg.PreviewRows)
		display.Head(w, "Procedure costs", ds.Costs, cfg.PreviewRows)
		if err := display.DumpDistinct(w, ds.Frequencies, stats.ColCharacteristic); err != nil {
			return err
		}
	}

	renderer := chart.NewRenderer(filepath.Join(cfg.OutputDir, runID))
	renderer.Logger = logger

	opts := cfg.Options()
	opts.Logger = logger

	var last *stats.CohortResult
	for _, c := range stats.Cohorts() {
		res, err := stats.RunCohort(ds, c, opts)
		if err != nil {
			return err
		}
		display.Summary(w, res, cfg.ReferenceYear)

		if err := renderCohort(renderer, res, cfg.TopN); err != nil {
			return err
		}
		last = res
	}

	if last != nil && cfg.PreviewRows > 0 {
		cols := []string{stats.ColYear, stats.ColDescription, stats.ColMeanCharges}
		if err := display.Tail(w, "Mean charges, "+last.Cohort.Name, last.Top, cols, cfg.PreviewRows); err != nil {
			return err
		}
	}

	logger.Info("run done", slog.String("dir", renderer.Dir))
	return nil
}

// renderCohort writes the frequency and the charge chart of a cohort
// together with the data behind each.
func renderCohort(r *chart.Renderer, res *stats.CohortResult, topN int) error {
	slug := strings.ReplaceAll(res.Cohort.Name, " ", "-")

	charts := []struct {
		kind   string
		metric string
		yLabel string
		points []stats.Observation
	}{
		{"frequency", stats.ColWeightedStays, "weighted number of stays per year", res.Stays},
		{"charge", stats.ColMeanCharges, "mean charge", res.Charges},
	}

	for _, c := range charts {
		name := fmt.Sprintf("top%d-%s-%s", topN, c.kind, slug)
		title := fmt.Sprintf("Top %d OR procedures %s, %s", topN, c.kind, res.Cohort.Name)

		if _, err := r.Render(name, chart.LineChart{
			Title:  title,
			XLabel: stats.ColYear,
			YLabel: c.yLabel,
			Points: c.points,
		}); err != nil {
			return err
		}
		if _, err := chart.SaveCSV(r.Dir, name, c.metric, c.points); err != nil {
			return err
		}
	}
	return nil
}
