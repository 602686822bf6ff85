package props

import (
	"fmt"
	"math"

	ion "github.com/goionics/ionscreen"
)

//hbar^2/m in eV*A^2, after Harrison.
const hbarsqOverM = 7.62

// BandGapHarrison estimates the band gap in eV of a binary compound from the
// orbital eigenvalues of its dominant cation and anion, following Harrison,
// "Electronic Structure and the Properties of Solids" (1980), eq. 3-43.
// distance is the cation-anion nuclear separation in Angstrom, i.e. the sum
// of the ionic radii.
func BandGapHarrison(t *ion.Table, cation, anion string, distance float64) (float64, error) {
	if distance <= 0 {
		return 0, ion.NewCError(fmt.Sprintf("non-positive interatomic distance %g", distance), "BandGapHarrison")
	}
	cat, err := t.Element(cation)
	if err != nil {
		return 0, errDecorate(err, "BandGapHarrison")
	}
	an, err := t.Element(anion)
	if err != nil {
		return 0, errDecorate(err, "BandGapHarrison")
	}
	for _, e := range []*ion.Element{cat, an} {
		if e.EigP == 0 && e.EigS == 0 {
			return 0, ion.NewCError(fmt.Sprintf("no orbital eigenvalue data for %s", e.Symbol), "BandGapHarrison")
		}
	}
	v1Cat := (cat.EigP - cat.EigS) / 4
	v1An := (an.EigP - an.EigS) / 4
	v1Bar := (v1An + v1Cat) / 2
	v2 := 2.16 * hbarsqOverM / (distance * distance)
	v3 := (cat.EigP - an.EigP) / 2
	alphaM := (1.11 * v1Bar) / math.Hypot(v2, v3)
	return (3.60 / 3.0) * math.Hypot(v2, v3) * (1 - alphaM), nil
}
