package main

import (
	"github.com/spf13/cobra"

	"github.com/anrid/proc-costs/pkg/config"
	"github.com/anrid/proc-costs/pkg/logging"
)

// rootOptions holds the flags. A flag only overrides the loaded config when
// it is set on the command line.
type rootOptions struct {
	configPath    string
	costPath      string
	codeColumn    string
	frequencyPath string
	sheet         int
	skipRows      int
	referenceYear int
	topN          int
	outputDir     string
	previewRows   int
	logLevel      string
	logFormat     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "proccosts",
		Short: "Chart the most frequent inpatient procedures and their mean charges",
		Long: `Load HCUP procedure cost and procedure frequency data, merge them by CCS
code and year, pick the most frequent procedures of a reference year and
chart their stay counts and mean charges over time, once with maternal and
neonatal stays included and once with them excluded.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.StringVar(&opts.costPath, "costs", "", "procedure cost CSV file")
	f.StringVar(&opts.codeColumn, "code-column", "", "cost column holding the CCS code")
	f.StringVar(&opts.frequencyPath, "frequencies", "", "procedure frequency workbook (.xls or .xlsx)")
	f.IntVar(&opts.sheet, "sheet", 0, "zero based sheet index of the frequency data")
	f.IntVar(&opts.skipRows, "skip", 0, "rows to skip before the frequency data")
	f.IntVar(&opts.referenceYear, "reference-year", 0, "year the top procedures are ranked in")
	f.IntVarP(&opts.topN, "top", "n", 0, "number of procedures to chart")
	f.StringVarP(&opts.outputDir, "out", "o", "", "directory for charts and chart data")
	f.IntVar(&opts.previewRows, "preview", 0, "rows to print when previewing tables, 0 disables previews")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	f.StringVar(&opts.logFormat, "log-format", "", "log format (text|json)")

	return cmd
}

func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("costs") {
		cfg.CostPath = o.costPath
	}
	if f.Changed("code-column") {
		cfg.CodeColumn = o.codeColumn
	}
	if f.Changed("frequencies") {
		cfg.FrequencyPath = o.frequencyPath
	}
	if f.Changed("sheet") {
		cfg.FrequencySheet = o.sheet
	}
	if f.Changed("skip") {
		cfg.SkipRows = o.skipRows
	}
	if f.Changed("reference-year") {
		cfg.ReferenceYear = o.referenceYear
	}
	if f.Changed("top") {
		cfg.TopN = o.topN
	}
	if f.Changed("out") {
		cfg.OutputDir = o.outputDir
	}
	if f.Changed("preview") {
		cfg.PreviewRows = o.previewRows
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
}
