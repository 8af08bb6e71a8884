package stats

import "math"

// Column labels shared by the frequency table, the normalized cost table and
// the merged table.
const (
	ColYear             = "year"
	ColCharacteristic   = "characteristic"
	ColCharacteristicLv = "characteristic_lvl"
	ColMaternalNeonatal = "maternal_neonatal_stays"
	ColRank             = "rank"
	ColCCS              = "ccs"
	ColDescription      = "ccs_descr"
	ColWeightedStays    = "weighted_num_stays"
	ColStayRate         = "stay_rate_100k"

	// ColMeanCharges is the cost table's mean charge column after normalization.
	ColMeanCharges = "meancharges"
	// DefaultCodeColumn is the cost table's original category-code column.
	DefaultCodeColumn = "ccscode"
)

// FrequencyColumns names the nine columns of the frequency sheet, in order.
// The sheet has no usable header row so the names are supplied here.
var FrequencyColumns = []string{
	ColYear,
	ColCharacteristic,
	ColCharacteristicLv,
	ColMaternalNeonatal,
	ColRank,
	ColCCS,
	ColDescription,
	ColWeightedStays,
	ColStayRate,
}

// Characteristic and maternal/neonatal flag values of the frequency table.
const (
	AllInpatientStays = "All Inpatient Stays"
	Included          = "Included"
	Excluded          = "Excluded"
)

// Cohort selects frequency rows by characteristic and by whether maternal and
// neonatal stays are counted.
type Cohort struct {
	Name             string
	Characteristic   string
	MaternalNeonatal string
}

// The two cohorts of a run, sharing the all-stays characteristic.
var (
	MaternalIncluded = Cohort{
		Name:             "including maternal",
		Characteristic:   AllInpatientStays,
		MaternalNeonatal: Included,
	}
	MaternalExcluded = Cohort{
		Name:             "excluding maternal",
		Characteristic:   AllInpatientStays,
		MaternalNeonatal: Excluded,
	}
)

// Cohorts lists the cohorts analysed by a full run, in run order.
func Cohorts() []Cohort {
	return []Cohort{MaternalIncluded, MaternalExcluded}
}

// Observation is one chart point. A null metric is stored as NaN.
type Observation struct {
	Year        int
	Description string
	Value       float64
}

// IsNull reports whether the metric was missing.
func (o Observation) IsNull() bool {
	return math.IsNaN(o.Value)
}
