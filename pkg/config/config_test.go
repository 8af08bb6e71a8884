package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/proc-costs/pkg/stats"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/hcup_proc_cost.csv", cfg.CostPath)
	assert.Equal(t, "data/HCUP_National_Top_Procedures_DataExport.xls", cfg.FrequencyPath)
	assert.Equal(t, stats.DefaultCodeColumn, cfg.CodeColumn)
	assert.Equal(t, 2, cfg.FrequencySheet)
	assert.Equal(t, 2, cfg.SkipRows)
	assert.Equal(t, stats.DefaultReferenceYear, cfg.ReferenceYear)
	assert.Equal(t, stats.DefaultTopN, cfg.TopN)
	assert.Equal(t, "info", cfg.Logging.Level)

	src := cfg.FrequencySource()
	assert.Equal(t, stats.FrequencySource(cfg.FrequencyPath), src)

	opts := cfg.Options()
	assert.Equal(t, 2004, opts.ReferenceYear)
	assert.Equal(t, 10, opts.TopN)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROCCOSTS_REFERENCE_YEAR", "2010")
	t.Setenv("PROCCOSTS_TOP_N", "5")
	t.Setenv("PROCCOSTS_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2010, cfg.ReferenceYear)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFileOverlay(t *testing.T) {
	t.Setenv("PROCCOSTS_TOP_N", "5")

	path := filepath.Join(t.TempDir(), "proccosts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cost_path: /data/costs.csv\ntop_n: 3\nlogging:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/costs.csv", cfg.CostPath)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 2004, cfg.ReferenceYear)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("PROCCOSTS_TOP_N", "ten")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("PROCCOSTS_TOP_N", "0")
		t.Setenv("PROCCOSTS_SKIP_ROWS", "-1")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "top_n must be greater than 0, got 0")
		assert.Contains(t, err.Error(), "skip_rows must be at least 0, got -1")
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("PROCCOSTS_LOG_FORMAT", "xml")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `logging.format must be one of text, json, got "xml"`)
	})
}
