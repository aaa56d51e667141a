package walking

import (
	"fmt"
	"math"
	"strconv"
)

// Display holds Metrics rounded for presentation.
type Display struct {
	StrideCm   string `json:"stride_cm" yaml:"stride_cm"`
	StrideAuto string `json:"stride_auto_cm" yaml:"stride_auto_cm"`
	Steps      string `json:"steps" yaml:"steps"`
	DistanceKm string `json:"distance_km" yaml:"distance_km"`
	DistanceMi string `json:"distance_mi" yaml:"distance_mi"`
	Duration   string `json:"duration" yaml:"duration"`
	Calories   string `json:"calories" yaml:"calories"`
	Cadence    string `json:"cadence" yaml:"cadence"`
	Mph        string `json:"mph" yaml:"mph"`
}

// Format rounds m for display.
func Format(m Metrics) Display {
	return Display{
		StrideCm:   strconv.FormatFloat(m.StrideCm, 'f', 1, 64),
		StrideAuto: strconv.FormatFloat(m.StrideAuto, 'f', 1, 64),
		Steps:      groupThousands(int64(m.Steps)),
		DistanceKm: strconv.FormatFloat(m.DistanceKm, 'f', 2, 64),
		DistanceMi: strconv.FormatFloat(m.DistanceMi, 'f', 2, 64),
		Duration:   FormatDuration(m.Minutes),
		Calories:   groupThousands(roundInt64(m.Calories)),
		Cadence:    strconv.FormatInt(roundInt64(m.Cadence), 10),
		Mph:        strconv.FormatFloat(m.Mph, 'f', 1, 64),
	}
}

// FormatDuration renders minutes as "M min" below an hour and "H h MM min"
// from an hour up.
func FormatDuration(minutes float64) string {
	total := roundInt64(minutes)
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%d h %02d min", total/60, total%60)
}

// roundInt64 rounds v to the nearest integer, saturating at the int64 range
// and reading NaN as 0.
func roundInt64(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Round(v))
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
