package walking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.5, 1, 63.5, 70, 154.3, 250, 1e6} {
		assert.InDelta(t, x, KgToLb(LbToKg(x)), 1e-9*(1+x), "kg/lb %v", x)
		assert.InDelta(t, x, LbToKg(KgToLb(x)), 1e-9*(1+x), "lb/kg %v", x)
		assert.InDelta(t, x, CmToIn(InToCm(x)), 1e-9*(1+x), "cm/in %v", x)
		assert.InDelta(t, x, InToCm(CmToIn(x)), 1e-9*(1+x), "in/cm %v", x)
	}
}

func TestUnitConstants(t *testing.T) {
	assert.InDelta(t, 0.45359237, LbToKg(1), 1e-12)
	assert.InDelta(t, 2.54, InToCm(1), 1e-12)
	assert.InDelta(t, 0.621371, KmToMi(1), 1e-12)
	assert.InDelta(t, 1.60934, MiToKm(1), 1e-12)
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 70, WeightKg(70, Kilograms), 1e-12)
	assert.InDelta(t, 45.359237, WeightKg(100, Pounds), 1e-9)
	assert.InDelta(t, 170, HeightCm(170, Centimeters), 1e-12)
	assert.InDelta(t, 177.8, HeightCm(70, Inches), 1e-9)
}

func TestTablesAreCopies(t *testing.T) {
	strides := StrideFactors()
	strides[Male] = 99
	assert.Equal(t, 0.415, StrideFactors()[Male])

	paces := PaceTable()
	paces[PaceBrisk] = PaceSpec{}
	assert.Equal(t, PaceSpec{Mph: 3.5, Mets: 4.3}, PaceTable()[PaceBrisk])
}

func TestOrderedListsCoverTables(t *testing.T) {
	assert.Len(t, Paces, len(PaceTable()))
	for _, p := range Paces {
		assert.True(t, p.Valid(), p)
	}
	assert.Len(t, Sexes, len(StrideFactors()))
	for _, s := range Sexes {
		assert.True(t, s.Valid(), s)
	}
}
