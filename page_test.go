package main

import (
	"net/http"
	"strings"
	"testing"

	"lg/ilovesteps/internal/walking"
)

func TestGetPage_Defaults(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, "GET", "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	want := walking.Format(walking.Compute(walking.DefaultInputs()))
	for _, s := range []string{
		"<title>" + pageTitle + "</title>",
		`<link rel="canonical" href="https://ilovesteps.example/">`,
		`<dd id="result-steps">` + want.Steps + `</dd>`,
		`<dd id="result-calories">` + want.Calories + ` kcal</dd>`,
		`<option value="brisk" selected>`,
		`"@type":"FAQPage"`,
		faqEntries[0].Question,
	} {
		if !strings.Contains(body, s) {
			t.Errorf("page missing %q", s)
		}
	}
}

// TestGetPage_QueryOverlay verifies a form submission recomputes the outputs
// from the submitted snapshot.
func TestGetPage_QueryOverlay(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, "GET", "/?weight=70&height=170&steps=5000&sex=male&pace=brisk", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, s := range []string{
		`<dd id="result-steps">5,000</dd>`,
		`<dd id="result-distance">3.53 km (2.19 mi)</dd>`,
		`<dd id="result-duration">38 min</dd>`,
		`<dd id="result-calories">198 kcal</dd>`,
		`<option value="male" selected>`,
	} {
		if !strings.Contains(body, s) {
			t.Errorf("page missing %q", s)
		}
	}
}

func TestGetPage_MalformedQueryStillRenders(t *testing.T) {
	router := setupTestRouter(t)

	w := doRequest(router, "GET", "/?weight=%3Cscript%3E&steps=-5&mode=bogus", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "<script>") {
		t.Error("raw query input must not be echoed into the page")
	}
	if !strings.Contains(body, `<dd id="result-calories">0 kcal</dd>`) {
		t.Error("expected zero calories for zero weight and steps")
	}
}
