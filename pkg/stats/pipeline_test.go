package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatasets(t *testing.T) *Datasets {
	t.Helper()

	return &Datasets{
		Frequencies: frequencyFrame(t,
			freqRow(2003, Included, 1, 47, "Diagnostic cardiac cath", 95),
			freqRow(2004, Included, 1, 47, "Diagnostic cardiac cath", 100),
			freqRow(2004, Included, 2, 48, "Pacemaker", 50),
			freqRow(2004, Included, 3, 49, "Appendectomy", 20),
			freqRow(2005, Included, 1, 50, "Newcomer", 300),
			freqRow(2005, Included, 2, 48, "Pacemaker", 55),
		),
		Costs: normalizedCosts(t,
			[]string{"2004", "47", "25000"},
			[]string{"2004", "48", "40000"},
			[]string{"2005", "48", "42000"},
		),
	}
}

func TestRunCohort(t *testing.T) {
	res, err := RunCohort(testDatasets(t), MaternalIncluded, Options{ReferenceYear: 2004, TopN: 2})
	require.NoError(t, err)

	assert.Equal(t, 6, res.Filtered.Nrow())
	assert.Equal(t, 6, res.Merged.Nrow())
	assert.Equal(t, CodeSet{47, 48}, res.Codes)

	// Codes chosen in 2004 are followed through every year; code 50 ranks
	// first in 2005 but was not ranked in the reference year.
	require.Equal(t, 4, res.Top.Nrow())
	assert.Equal(t, []Observation{
		{Year: 2003, Description: "Diagnostic cardiac cath", Value: 95},
		{Year: 2004, Description: "Diagnostic cardiac cath", Value: 100},
		{Year: 2004, Description: "Pacemaker", Value: 50},
		{Year: 2005, Description: "Pacemaker", Value: 55},
	}, res.Stays)

	require.Len(t, res.Charges, 4)
	assert.True(t, res.Charges[0].IsNull())
	assert.Equal(t, 42000.0, res.Charges[3].Value)
}

func TestRunCohortEmpty(t *testing.T) {
	res, err := RunCohort(testDatasets(t), MaternalExcluded, Options{ReferenceYear: 2004, TopN: 10})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Filtered.Nrow())
	assert.Equal(t, 0, res.Merged.Nrow())
	assert.Empty(t, res.Codes)
	assert.Empty(t, res.Stays)
	assert.Empty(t, res.Charges)
}
