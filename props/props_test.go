package props

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ion "github.com/goionics/ionscreen"
)

func table(t *testing.T) *ion.Table {
	tab, err := ion.NewTable()
	require.NoError(t, err)
	return tab
}

func TestMulliken(t *testing.T) {
	tab := table(t)
	cu, err := tab.Element("Cu")
	require.NoError(t, err)
	assert.InDelta(t, (7.7264+1.2358)/2, Mulliken(cu), 1e-12)
}

// 50/50 brass, the classic worked example for the geometric mean.
func TestCompoundElectroneg(t *testing.T) {
	tab := table(t)
	syms := []string{"Cu", "Zn"}
	stoichs := []float64{0.5, 0.5}
	x, err := CompoundElectroneg(tab, syms, stoichs, SourcePauling)
	require.NoError(t, err)
	assert.InDelta(t, 5.0638963259, x, 1e-9)
	x, err = CompoundElectroneg(tab, syms, stoichs, SourceMulliken)
	require.NoError(t, err)
	assert.InDelta(t, 4.5878289866, x, 1e-9)
	//stoichiometry weights are ratios, their absolute scale must not matter
	x2, err := CompoundElectroneg(tab, syms, []float64{1, 1}, SourceMulliken)
	require.NoError(t, err)
	assert.InDelta(t, x, x2, 1e-12)
}

func TestCompoundElectronegErrors(t *testing.T) {
	tab := table(t)
	_, err := CompoundElectroneg(tab, []string{"Cu"}, []float64{1, 1}, SourcePauling)
	assert.Error(t, err)
	_, err = CompoundElectroneg(tab, nil, nil, SourcePauling)
	assert.Error(t, err)
	_, err = CompoundElectroneg(tab, []string{"Cu", "Xx"}, []float64{1, 1}, SourcePauling)
	assert.Error(t, err)
	_, err = CompoundElectroneg(tab, []string{"Cu", "Zn"}, []float64{1, 1}, "Allen")
	assert.Error(t, err)
}

func TestBandGapHarrison(t *testing.T) {
	tab := table(t)
	gap, err := BandGapHarrison(tab, "Mg", "Cl", 2.57)
	require.NoError(t, err)
	assert.InDelta(t, 3.6457, gap, 1e-3)
	//stretching the bond shrinks the covalent term V2 and, for this pair,
	//narrows the gap
	far, err := BandGapHarrison(tab, "Mg", "Cl", 3.2)
	require.NoError(t, err)
	assert.InDelta(t, 3.2197, far, 1e-3)
	assert.Less(t, far, gap)
}

func TestBandGapHarrisonErrors(t *testing.T) {
	tab := table(t)
	_, err := BandGapHarrison(tab, "Mg", "Cl", 0)
	assert.Error(t, err)
	_, err = BandGapHarrison(tab, "Mg", "Cl", -1.5)
	assert.Error(t, err)
	_, err = BandGapHarrison(tab, "Xx", "Cl", 2.5)
	assert.Error(t, err)
	//Fe carries no orbital eigenvalue data
	_, err = BandGapHarrison(tab, "Fe", "Cl", 2.5)
	assert.Error(t, err)
}

func TestValenceElectronCount(t *testing.T) {
	tab := table(t)
	vec, err := ValenceElectronCount(tab, "Ba5In4Bi5")
	require.NoError(t, err)
	assert.InDelta(t, 47.0/14.0, vec, 1e-12)
	vec, err = ValenceElectronCount(tab, "Cu")
	require.NoError(t, err)
	assert.InDelta(t, 11, vec, 1e-12)
	_, err = ValenceElectronCount(tab, "Xx2O3")
	assert.Error(t, err)
	_, err = ValenceElectronCount(tab, "")
	assert.Error(t, err)
}

func TestElementFractions(t *testing.T) {
	mf, err := MetalFraction("NaCl")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mf, 1e-12)
	mf, err = MetalFraction("CuZn")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mf, 1e-12)
	df, err := DBlockFraction("Fe3Al")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, df, 1e-12)
	n, err := DistinctMetalCount("Fe3Al")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = DistinctMetalCount("SiO2")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPaulingMismatch(t *testing.T) {
	tab := table(t)
	mm, err := PaulingMismatch(tab, "NaCl")
	require.NoError(t, err)
	assert.InDelta(t, 3.16-0.93, mm, 1e-12)
	mm, err = PaulingMismatch(tab, "Fe")
	require.NoError(t, err)
	assert.Zero(t, mm)
	_, err = PaulingMismatch(tab, "XxO")
	assert.Error(t, err)
}

func TestPaulingMismatchUnknownEneg(t *testing.T) {
	//an element with no electronegativity data poisons the comparison
	tab := ion.NewTableFrom([]*ion.Element{
		{Symbol: "Qq", Name: "Quuxium", Number: 1, NValence: 1},
		{Symbol: "Rr", Name: "Rarium", Number: 2, Eneg: 2.0, NValence: 2},
	})
	mm, err := PaulingMismatch(tab, "QqRr")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mm))
}

func TestMetallicityScore(t *testing.T) {
	tab := table(t)
	alloy, err := MetallicityScore(tab, "CuZn")
	require.NoError(t, err)
	ionic, err := MetallicityScore(tab, "NaCl")
	require.NoError(t, err)
	oxide, err := MetallicityScore(tab, "TiO2")
	require.NoError(t, err)
	assert.Greater(t, alloy, ionic)
	assert.Greater(t, alloy, oxide)
	for _, s := range []float64{alloy, ionic, oxide} {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.InDelta(t, 0.8552, alloy, 1e-3)
	_, err = MetallicityScore(tab, "")
	assert.Error(t, err)
}
