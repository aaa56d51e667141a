// Package walking derives distance, duration, pace, cadence, and estimated
// calories from body metrics and a step count, distance, or walking time.
//
// Compute is a pure function of its input snapshot and the two constant
// tables (stride factors by sex, speed and METs by pace). It never fails:
// non-finite or negative numbers are treated as zero and every division is
// guarded, so the all-zero input yields all-zero output.
package walking

import "math"

// Inputs is one immutable snapshot of the calculator form.
type Inputs struct {
	Weight          float64    `json:"weight" yaml:"weight"`
	WeightUnit      WeightUnit `json:"weight_unit" yaml:"weight_unit"`
	Height          float64    `json:"height" yaml:"height"`
	HeightUnit      HeightUnit `json:"height_unit" yaml:"height_unit"`
	Mode            InputMode  `json:"mode" yaml:"mode"`
	Steps           int        `json:"steps" yaml:"steps"`
	DistanceKm      float64    `json:"distance_km" yaml:"distance_km"`
	TimeMin         float64    `json:"time_min" yaml:"time_min"`
	Pace            Pace       `json:"pace" yaml:"pace"`
	Sex             Sex        `json:"sex" yaml:"sex"`
	UseCustomStride bool       `json:"use_custom_stride" yaml:"use_custom_stride"`
	CustomStrideCm  float64    `json:"custom_stride_cm" yaml:"custom_stride_cm"`
}

// Metrics is the derived output for one Inputs snapshot. All values keep
// full precision; rounding happens in Format.
type Metrics struct {
	WeightKg   float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm   float64 `json:"height_cm" yaml:"height_cm"`
	StrideAuto float64 `json:"stride_auto_cm" yaml:"stride_auto_cm"`
	StrideCm   float64 `json:"stride_cm" yaml:"stride_cm"`
	Steps      int     `json:"steps" yaml:"steps"`
	DistanceKm float64 `json:"distance_km" yaml:"distance_km"`
	DistanceMi float64 `json:"distance_mi" yaml:"distance_mi"`
	Minutes    float64 `json:"minutes" yaml:"minutes"`
	Hours      float64 `json:"hours" yaml:"hours"`
	Calories   float64 `json:"calories" yaml:"calories"`
	Cadence    float64 `json:"cadence" yaml:"cadence"`
	Mph        float64 `json:"mph" yaml:"mph"`
	Mets       float64 `json:"mets" yaml:"mets"`
}

// Engine evaluates Inputs against a pair of lookup tables. The zero value
// has empty tables and yields zero stride and zero speed for every input.
type Engine struct {
	Strides map[Sex]float64
	Paces   map[Pace]PaceSpec
}

// MaxSteps caps every step count, entered or derived.
const MaxSteps = math.MaxInt32

// Default is the engine backed by the production tables.
var Default = Engine{Strides: strideFactors, Paces: paceTable}

// Compute evaluates in with the Default engine.
func Compute(in Inputs) Metrics {
	return Default.Compute(in)
}

// Compute derives Metrics from in. It reads only in and the engine tables.
func (e Engine) Compute(in Inputs) Metrics {
	in = in.sanitized()

	weightKg := WeightKg(in.Weight, in.WeightUnit)
	heightCm := HeightCm(in.Height, in.HeightUnit)
	pace := e.Paces[in.Pace]

	strideAuto := heightCm * e.Strides[in.Sex]
	strideCm := strideAuto
	// A custom stride of zero counts as unset and falls back to the estimate.
	if in.UseCustomStride && in.CustomStrideCm > 0 {
		strideCm = in.CustomStrideCm
	}

	steps := in.Steps
	if in.Mode != ModeSteps {
		steps = e.deriveSteps(in, pace, strideCm)
	}

	distanceKm := float64(steps) * (strideCm / 100) / 1000
	distanceMi := KmToMi(distanceKm)

	var hours float64
	if pace.Mph > 0 {
		hours = distanceMi / pace.Mph
	}
	minutes := hours * minPerHr

	// kcal/min = METs * 3.5 * kg / 200
	calories := pace.Mets * 3.5 * weightKg * (minutes / 200)

	var cadence float64
	if minutes > 0 {
		cadence = float64(steps) / minutes
	}

	return Metrics{
		WeightKg:   weightKg,
		HeightCm:   heightCm,
		StrideAuto: strideAuto,
		StrideCm:   strideCm,
		Steps:      steps,
		DistanceKm: distanceKm,
		DistanceMi: distanceMi,
		Minutes:    minutes,
		Hours:      hours,
		Calories:   finite(calories),
		Cadence:    finite(cadence),
		Mph:        pace.Mph,
		Mets:       pace.Mets,
	}
}

// deriveSteps converts the distance or time entry into a whole step count
// using the effective stride.
func (e Engine) deriveSteps(in Inputs, pace PaceSpec, strideCm float64) int {
	var km float64
	switch in.Mode {
	case ModeDistance:
		km = in.DistanceKm
	case ModeTime:
		km = pace.Mph * kmPerMi * (in.TimeMin / minPerHr)
	}
	if strideCm <= 0 {
		return 0
	}
	return roundSteps(km * 1000 / (strideCm / 100))
}

// roundSteps rounds a step count to a whole step, capped at MaxSteps. NaN
// and negative counts read as 0.
func roundSteps(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v > MaxSteps {
		return MaxSteps
	}
	return int(math.Round(v))
}

// sanitized returns a copy of in with every non-finite or negative number
// replaced by zero.
func (in Inputs) sanitized() Inputs {
	in.Weight = ClampNonNegative(in.Weight)
	in.Height = ClampNonNegative(in.Height)
	in.DistanceKm = ClampNonNegative(in.DistanceKm)
	in.TimeMin = ClampNonNegative(in.TimeMin)
	in.CustomStrideCm = ClampNonNegative(in.CustomStrideCm)
	in.Steps = min(max(in.Steps, 0), MaxSteps)
	return in
}

// ClampNonNegative returns v, or 0 when v is NaN, infinite, or negative.
func ClampNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
