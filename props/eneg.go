package props

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	ion "github.com/goionics/ionscreen"
)

// Electronegativity sources for CompoundElectroneg.
const (
	SourceMulliken = "Mulliken"
	SourcePauling  = "Pauling"
)

//Pauling electronegativities are rescaled by 2.86 to a Mulliken-like scale
//(Nethercot, 1974, DOI:10.1103/PhysRevLett.33.1088).
const paulingScale = 2.86

// Mulliken returns the Mulliken electronegativity of an element, the mean of
// its ionisation potential and electron affinity.
func Mulliken(e *ion.Element) float64 {
	return (e.IonPot + e.EAffinity) / 2.0
}

// CompoundElectroneg estimates the electronegativity of a compound as the
// stoichiometry-weighted geometric mean of the per-element values, e.g. for
// Cu2S: (X_Cu * X_Cu * X_S)^(1/3). Stoichiometries may be fractional.
// The source is SourceMulliken (default behaviour of the screening
// literature) or SourcePauling.
func CompoundElectroneg(t *ion.Table, symbols []string, stoichs []float64, source string) (float64, error) {
	if len(symbols) == 0 || len(symbols) != len(stoichs) {
		return 0, ion.NewCError(ion.ErrMismatchedLen, "CompoundElectroneg")
	}
	els, err := t.Elements(symbols...)
	if err != nil {
		return 0, errDecorate(err, "CompoundElectroneg")
	}
	vals := make([]float64, len(els))
	for i, e := range els {
		switch source {
		case SourceMulliken:
			vals[i] = Mulliken(e)
		case SourcePauling:
			vals[i] = paulingScale * e.Eneg
		default:
			return 0, ion.NewCError(fmt.Sprintf("unknown electronegativity source %q", source), "CompoundElectroneg")
		}
		if vals[i] <= 0 {
			return 0, ion.NewCError(fmt.Sprintf("no electronegativity data for %s", e.Symbol), "CompoundElectroneg")
		}
	}
	return stat.GeometricMean(vals, stoichs), nil
}
