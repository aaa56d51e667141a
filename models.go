package main

import "lg/ilovesteps/internal/walking"

/* ─── API structs ────────────────────────────────────────────────────── */

// calculatorRequest is the request body for POST /api/calculator.
// All fields are pointers so omitted fields keep the widget defaults.
type calculatorRequest struct {
	Weight          *float64 `json:"weight"`
	WeightUnit      *string  `json:"weight_unit"`
	Height          *float64 `json:"height"`
	HeightUnit      *string  `json:"height_unit"`
	Mode            *string  `json:"mode"`
	Steps           *float64 `json:"steps"` // rounded to a whole step count
	DistanceKm      *float64 `json:"distance_km"`
	TimeMin         *float64 `json:"time_min"`
	Pace            *string  `json:"pace"`
	Sex             *string  `json:"sex"`
	UseCustomStride *bool    `json:"use_custom_stride"`
	CustomStrideCm  *float64 `json:"custom_stride_cm"`
}

// calculatorResponse is returned by both calculator endpoints. Metrics keep
// full precision; Display carries the rounded strings the page shows.
type calculatorResponse struct {
	Inputs  walking.Inputs  `json:"inputs"`
	Metrics walking.Metrics `json:"metrics"`
	Display walking.Display `json:"display"`
}

// tablesResponse is the response shape for GET /api/tables.
type tablesResponse struct {
	StrideFactors map[walking.Sex]float64           `json:"stride_factors"`
	Paces         map[walking.Pace]walking.PaceSpec `json:"paces"`
}

/* ─── Page structs ───────────────────────────────────────────────────── */

// faqEntry is one question/answer pair shown on the page and emitted as
// FAQPage structured data.
type faqEntry struct {
	Question string
	Answer   string
}

// option is one <option> of a select on the calculator form.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// pageData is everything the index template renders.
type pageData struct {
	Title          string
	Description    string
	CanonicalURL   string
	Inputs         walking.Inputs
	Display        walking.Display
	WeightUnits    []option
	HeightUnits    []option
	Modes          []option
	Paces          []option
	Sexes          []option
	FAQ            []faqEntry
	StructuredData []map[string]any
}

func newCalculatorResponse(s walking.Snapshot) calculatorResponse {
	return calculatorResponse{
		Inputs:  s.Inputs,
		Metrics: s.Metrics,
		Display: walking.Format(s.Metrics),
	}
}
