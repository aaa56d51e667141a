package walking

import (
	"net/url"
	"strconv"
	"strings"
)

// Form field names shared by the page, the query API, and the CLI flags.
const (
	FieldWeight         = "weight"
	FieldWeightUnit     = "weight_unit"
	FieldHeight         = "height"
	FieldHeightUnit     = "height_unit"
	FieldMode           = "mode"
	FieldSteps          = "steps"
	FieldDistanceKm     = "distance_km"
	FieldTimeMin        = "time_min"
	FieldPace           = "pace"
	FieldSex            = "sex"
	FieldCustomStride   = "custom_stride"
	FieldCustomStrideCm = "custom_stride_cm"
)

// ParseNumber reads a user-entered number. Empty, unparsable, non-finite,
// and negative input all read as 0. Commas are not accepted as either
// decimal or thousands separators.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return ClampNonNegative(v)
}

// ParseSteps reads a step count with the ParseNumber rules, rounded to the
// nearest whole step and capped at MaxSteps.
func ParseSteps(s string) int {
	return roundSteps(ParseNumber(s))
}

// ParseBool reads a checkbox-style flag. "on", "true", "1" and "yes" are true;
// anything else is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// InputsFromValues overlays the form fields present in v onto base. Fields
// that are absent keep their base value; unknown enum values are ignored.
func InputsFromValues(base Inputs, v url.Values) Inputs {
	in := base
	if v.Has(FieldWeight) {
		in.Weight = ParseNumber(v.Get(FieldWeight))
	}
	if u, ok := ParseWeightUnit(v.Get(FieldWeightUnit)); ok {
		in.WeightUnit = u
	}
	if v.Has(FieldHeight) {
		in.Height = ParseNumber(v.Get(FieldHeight))
	}
	if u, ok := ParseHeightUnit(v.Get(FieldHeightUnit)); ok {
		in.HeightUnit = u
	}
	if m, ok := ParseInputMode(v.Get(FieldMode)); ok {
		in.Mode = m
	}
	if v.Has(FieldSteps) {
		in.Steps = ParseSteps(v.Get(FieldSteps))
	}
	if v.Has(FieldDistanceKm) {
		in.DistanceKm = ParseNumber(v.Get(FieldDistanceKm))
	}
	if v.Has(FieldTimeMin) {
		in.TimeMin = ParseNumber(v.Get(FieldTimeMin))
	}
	if p, ok := ParsePace(v.Get(FieldPace)); ok {
		in.Pace = p
	}
	if s, ok := ParseSex(v.Get(FieldSex)); ok {
		in.Sex = s
	}
	if v.Has(FieldCustomStride) {
		in.UseCustomStride = ParseBool(v.Get(FieldCustomStride))
	}
	if v.Has(FieldCustomStrideCm) {
		in.CustomStrideCm = ParseNumber(v.Get(FieldCustomStrideCm))
	}
	return in
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
