package main

const (
	pageTitle       = "I Love Steps: Walking Calories Calculator"
	pageDescription = "Turn steps, distance, or walking time into distance, duration, cadence, and calories burned. Free walking calculator with stride estimation from your height."
)

// faqEntries is the static FAQ copy rendered below the calculator.
var faqEntries = []faqEntry{
	{
		Question: "How many calories does walking burn?",
		Answer:   "It depends on your weight, your speed, and how long you walk. The calculator multiplies the MET value of your pace by 3.5 and your weight in kilograms, divides by 200 to get calories per minute, and multiplies by the minutes walked.",
	},
	{
		Question: "How is my stride length estimated?",
		Answer:   "Stride is estimated from height: about 41.3% of height for women and 41.5% for men. If you have measured your own stride, enable the custom stride option and enter it in centimeters.",
	},
	{
		Question: "How many steps are in a kilometer?",
		Answer:   "With a 70 cm stride a kilometer is roughly 1,430 steps. Switch the calculator to distance mode to see the figure for your own stride.",
	},
	{
		Question: "What is a good walking cadence?",
		Answer:   "Around 100 steps per minute is the usual threshold for moderate-intensity walking. Brisk and power walking push cadence higher.",
	},
	{
		Question: "How accurate are these numbers?",
		Answer:   "They are estimates based on standard MET approximations. Terrain, fitness, and individual metabolism all shift the real values.",
	},
}

// structuredData builds the JSON-LD blocks for the page: the WebPage itself
// and the FAQPage built from faqEntries.
func structuredData(canonicalURL string) []map[string]any {
	questions := make([]map[string]any, 0, len(faqEntries))
	for _, f := range faqEntries {
		answer := map[string]any{"@type": "Answer", "text": f.Answer}
		questions = append(questions, map[string]any{
			"@type":          "Question",
			"name":           f.Question,
			"acceptedAnswer": answer,
		})
	}
	return []map[string]any{
		{
			"@context":    "https://schema.org",
			"@type":       "WebPage",
			"name":        pageTitle,
			"description": pageDescription,
			"url":         canonicalURL,
		},
		{
			"@context":   "https://schema.org",
			"@type":      "FAQPage",
			"mainEntity": questions,
		},
	}
}
