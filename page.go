package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/ilovesteps/internal/walking"
)

// optionLabels maps enum values to the human labels used in form selects.
var optionLabels = map[string]string{
	"kg":       "kg",
	"lb":       "lb",
	"cm":       "cm",
	"in":       "in",
	"steps":    "Steps",
	"distance": "Distance (km)",
	"time":     "Time (min)",
	"easy":     "Easy (3.0 mph)",
	"brisk":    "Brisk (3.5 mph)",
	"power":    "Power walk (4.5 mph)",
	"jog":      "Light jog (5.0 mph)",
	"female":   "Female",
	"male":     "Male",
}

// getPage renders the calculator page. Each form change submits a GET, so
// the query string is the input snapshot overlaid on the widget defaults.
// GET /?weight=70&steps=5000...
func (h *Handler) getPage(c *gin.Context) {
	snap := walking.NewSnapshot(walking.InputsFromValues(walking.DefaultInputs(), c.Request.URL.Query()))
	c.HTML(http.StatusOK, "index.html.tmpl", h.buildPageData(snap))
}

// buildPageData assembles the template data for one snapshot.
func (h *Handler) buildPageData(s walking.Snapshot) pageData {
	canonical := h.cfg.SiteURL + "/"
	in := s.Inputs
	return pageData{
		Title:          pageTitle,
		Description:    pageDescription,
		CanonicalURL:   canonical,
		Inputs:         in,
		Display:        walking.Format(s.Metrics),
		WeightUnits:    options(walking.WeightUnits, in.WeightUnit),
		HeightUnits:    options(walking.HeightUnits, in.HeightUnit),
		Modes:          options(walking.InputModes, in.Mode),
		Paces:          options(walking.Paces, in.Pace),
		Sexes:          options(walking.Sexes, in.Sex),
		FAQ:            faqEntries,
		StructuredData: structuredData(canonical),
	}
}

// options builds select options for an ordered enum list.
func options[T ~string](values []T, selected T) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		label, ok := optionLabels[string(v)]
		if !ok {
			label = string(v)
		}
		out = append(out, option{Value: string(v), Label: label, Selected: v == selected})
	}
	return out
}
