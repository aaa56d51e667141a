package main

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/ilovesteps/internal/walking"
)

// getCalculator computes metrics from query parameters using the same form
// keys as the page. Malformed numbers read as zero and unknown enum values
// keep the defaults, so this endpoint never rejects input.
// GET /api/calculator?weight=70&steps=5000&pace=brisk...
func (h *Handler) getCalculator(c *gin.Context) {
	in := walking.InputsFromValues(walking.DefaultInputs(), c.Request.URL.Query())
	c.JSON(http.StatusOK, newCalculatorResponse(walking.NewSnapshot(in)))
}

// postCalculator computes metrics from a JSON body. Omitted fields keep the
// widget defaults; unknown enum values are rejected with 400.
// POST /api/calculator.
func (h *Handler) postCalculator(c *gin.Context) {
	var body calculatorRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := body.apply(walking.DefaultInputs())
	if err != nil {
		logf(c, "postCalculator", "rejected: %v", err)
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, newCalculatorResponse(walking.NewSnapshot(in)))
}

// getTables exposes the stride factor and pace tables. GET /api/tables.
func (h *Handler) getTables(c *gin.Context) {
	c.JSON(http.StatusOK, tablesResponse{
		StrideFactors: walking.StrideFactors(),
		Paces:         walking.PaceTable(),
	})
}

// apply overlays the non-nil request fields onto base. Enum fields are
// validated against the lookup tables; negative numbers are clamped to 0 so
// the echoed inputs match what the engine used.
func (r calculatorRequest) apply(base walking.Inputs) (walking.Inputs, error) {
	in := base
	if r.Weight != nil {
		in.Weight = walking.ClampNonNegative(*r.Weight)
	}
	if r.WeightUnit != nil {
		u, ok := walking.ParseWeightUnit(*r.WeightUnit)
		if !ok {
			return in, fmt.Errorf("weight_unit must be one of: %s", joinEnum(walking.WeightUnits))
		}
		in.WeightUnit = u
	}
	if r.Height != nil {
		in.Height = walking.ClampNonNegative(*r.Height)
	}
	if r.HeightUnit != nil {
		u, ok := walking.ParseHeightUnit(*r.HeightUnit)
		if !ok {
			return in, fmt.Errorf("height_unit must be one of: %s", joinEnum(walking.HeightUnits))
		}
		in.HeightUnit = u
	}
	if r.Mode != nil {
		m, ok := walking.ParseInputMode(*r.Mode)
		if !ok {
			return in, fmt.Errorf("mode must be one of: %s", joinEnum(walking.InputModes))
		}
		in.Mode = m
	}
	if r.Steps != nil {
		in.Steps = int(math.Round(math.Min(walking.ClampNonNegative(*r.Steps), walking.MaxSteps)))
	}
	if r.DistanceKm != nil {
		in.DistanceKm = walking.ClampNonNegative(*r.DistanceKm)
	}
	if r.TimeMin != nil {
		in.TimeMin = walking.ClampNonNegative(*r.TimeMin)
	}
	if r.Pace != nil {
		p, ok := walking.ParsePace(*r.Pace)
		if !ok {
			return in, fmt.Errorf("pace must be one of: %s", joinEnum(walking.Paces))
		}
		in.Pace = p
	}
	if r.Sex != nil {
		s, ok := walking.ParseSex(*r.Sex)
		if !ok {
			return in, fmt.Errorf("sex must be one of: %s", joinEnum(walking.Sexes))
		}
		in.Sex = s
	}
	if r.UseCustomStride != nil {
		in.UseCustomStride = *r.UseCustomStride
	}
	if r.CustomStrideCm != nil {
		in.CustomStrideCm = walking.ClampNonNegative(*r.CustomStrideCm)
	}
	return in, nil
}

// joinEnum renders an ordered enum list for error messages.
func joinEnum[T ~string](values []T) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += string(v)
	}
	return out
}
