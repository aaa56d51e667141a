package walking

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"70", 70},
		{" 70.5 ", 70.5},
		{"70,5", 0},
		{"10,000", 0},
		{"1,234", 0},
		{"1,234.5", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-12", 0},
		{"1e3", 1000},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNumber(tc.in))
		})
	}
}

func TestParseSteps(t *testing.T) {
	assert.Equal(t, 5000, ParseSteps("5000"))
	assert.Equal(t, 5001, ParseSteps("5000.6"))
	assert.Equal(t, 0, ParseSteps("lots"))
	assert.Equal(t, 0, ParseSteps("-3"))
	assert.Equal(t, 0, ParseSteps("10,000"))
	assert.Equal(t, MaxSteps, ParseSteps("1e20"))
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"on", "true", "1", "YES"} {
		assert.True(t, ParseBool(s), s)
	}
	for _, s := range []string{"", "off", "0", "no", "maybe"} {
		assert.False(t, ParseBool(s), s)
	}
}

func TestParseEnums(t *testing.T) {
	p, ok := ParsePace(" Brisk ")
	assert.True(t, ok)
	assert.Equal(t, PaceBrisk, p)

	_, ok = ParsePace("sprint")
	assert.False(t, ok)

	s, ok := ParseSex("MALE")
	assert.True(t, ok)
	assert.Equal(t, Male, s)

	m, ok := ParseInputMode("time")
	assert.True(t, ok)
	assert.Equal(t, ModeTime, m)

	_, ok = ParseWeightUnit("stone")
	assert.False(t, ok)

	h, ok := ParseHeightUnit("in")
	assert.True(t, ok)
	assert.Equal(t, Inches, h)
}

func TestInputsFromValues(t *testing.T) {
	base := DefaultInputs()

	t.Run("absent fields keep base", func(t *testing.T) {
		assert.Equal(t, base, InputsFromValues(base, url.Values{}))
	})

	t.Run("present fields overlay", func(t *testing.T) {
		v := url.Values{
			FieldWeight:         {"154"},
			FieldWeightUnit:     {"lb"},
			FieldMode:           {"distance"},
			FieldDistanceKm:     {"3.5"},
			FieldPace:           {"jog"},
			FieldSex:            {"male"},
			FieldCustomStride:   {"on"},
			FieldCustomStrideCm: {"75"},
		}
		in := InputsFromValues(base, v)
		assert.Equal(t, 154.0, in.Weight)
		assert.Equal(t, Pounds, in.WeightUnit)
		assert.Equal(t, ModeDistance, in.Mode)
		assert.Equal(t, 3.5, in.DistanceKm)
		assert.Equal(t, PaceJog, in.Pace)
		assert.Equal(t, Male, in.Sex)
		assert.True(t, in.UseCustomStride)
		assert.Equal(t, 75.0, in.CustomStrideCm)
		assert.Equal(t, base.Height, in.Height)
		assert.Equal(t, base.Steps, in.Steps)
	})

	t.Run("malformed numbers fall back to zero", func(t *testing.T) {
		v := url.Values{FieldWeight: {"heavy"}, FieldSteps: {""}}
		in := InputsFromValues(base, v)
		assert.Zero(t, in.Weight)
		assert.Zero(t, in.Steps)
	})

	t.Run("grouped thousands read as zero", func(t *testing.T) {
		v := url.Values{FieldSteps: {"10,000"}, FieldWeight: {"1,234"}}
		in := InputsFromValues(base, v)
		assert.Zero(t, in.Steps)
		assert.Zero(t, in.Weight)
	})

	t.Run("unknown enums keep base", func(t *testing.T) {
		v := url.Values{FieldPace: {"sprint"}, FieldSex: {"x"}, FieldMode: {"laps"}, FieldHeightUnit: {"ft"}}
		in := InputsFromValues(base, v)
		assert.Equal(t, base.Pace, in.Pace)
		assert.Equal(t, base.Sex, in.Sex)
		assert.Equal(t, base.Mode, in.Mode)
		assert.Equal(t, base.HeightUnit, in.HeightUnit)
	})
}
