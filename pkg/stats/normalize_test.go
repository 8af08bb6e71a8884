package stats

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCosts(t *testing.T) {
	raw := costFrame(t,
		[]string{"2004", "47", "25000.5"},
		[]string{"2005", "48", "31000"},
	)

	out, err := NormalizeCosts(raw, DefaultCodeColumn)
	require.NoError(t, err)

	assert.Equal(t, []string{"year", "ccscode", "meancharges", "ccs"}, out.Names())
	assert.Equal(t, []int{47, 48}, ints(t, out, ColCCS))
	assert.Equal(t, ints(t, out, "ccscode"), ints(t, out, ColCCS))
	assert.Equal(t, []int{2004, 2005}, ints(t, out, ColYear))

	// The input keeps its original labels.
	assert.Equal(t, []string{"Year", "CCSCode", "MeanCharges"}, raw.Names())
}

func TestNormalizeCostsIdempotent(t *testing.T) {
	once := normalizedCosts(t,
		[]string{"2004", "47", "25000.5"},
		[]string{"2005", "48", "31000"},
	)

	twice, err := NormalizeCosts(once, DefaultCodeColumn)
	require.NoError(t, err)

	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.Records(), twice.Records())
}

func TestNormalizeCostsCodeColumnCaseInsensitive(t *testing.T) {
	out, err := NormalizeCosts(costFrame(t, []string{"2004", "47", "1"}), "CCSCode")
	require.NoError(t, err)
	assert.Equal(t, []int{47}, ints(t, out, ColCCS))
}

func TestNormalizeCostsCoercesKeys(t *testing.T) {
	raw := dataframe.LoadRecords([][]string{
		{"YEAR", "CcsCode", "MeanCharges"},
		{"2004.0", "47.0", "100"},
	}, dataframe.DetectTypes(false))
	require.NoError(t, raw.Err)

	out, err := NormalizeCosts(raw, DefaultCodeColumn)
	require.NoError(t, err)
	assert.Equal(t, []int{47}, ints(t, out, ColCCS))
	assert.Equal(t, []int{2004}, ints(t, out, ColYear))
}

func TestNormalizeCostsErrors(t *testing.T) {
	t.Run("missing code column", func(t *testing.T) {
		_, err := NormalizeCosts(costFrame(t, []string{"2004", "47", "1"}), "procedurecode")
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("missing year column", func(t *testing.T) {
		raw := dataframe.LoadRecords([][]string{
			{"CCSCode", "MeanCharges"},
			{"47", "1"},
		})
		require.NoError(t, raw.Err)

		_, err := NormalizeCosts(raw, DefaultCodeColumn)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("labels collide", func(t *testing.T) {
		raw := dataframe.LoadRecords([][]string{
			{"Year", "CCSCode", "ccscode"},
			{"2004", "47", "48"},
		})
		require.NoError(t, raw.Err)

		_, err := NormalizeCosts(raw, DefaultCodeColumn)
		assert.ErrorIs(t, err, ErrDuplicateColumn)
	})
}
