package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"lg/ilovesteps/internal/walking"
)

var headingColor = color.New(color.FgGreen, color.Bold)

// writeCalc renders one calc result in the requested format.
func writeCalc(w io.Writer, format string, res calcResult) error {
	switch format {
	case jsonOut:
		return writeJSON(w, res)
	case yamlOut:
		return writeYAML(w, res)
	default:
		return printCalcTable(w, res)
	}
}

// printCalcTable prints the rounded metrics as a two-column table.
func printCalcTable(w io.Writer, res calcResult) error {
	in, d := res.Inputs, res.Display
	if _, err := headingColor.Fprintf(w, "🚶 %s mode, %s pace, stride %s cm\n", in.Mode, in.Pace, d.StrideCm); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Steps", d.Steps},
		{"Distance (km)", d.DistanceKm},
		{"Distance (mi)", d.DistanceMi},
		{"Duration", d.Duration},
		{"Speed (mph)", d.Mph},
		{"Cadence (steps/min)", d.Cadence},
		{"Calories (kcal)", d.Calories},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writePaces renders the pace table in the requested format.
func writePaces(w io.Writer, format string, paces map[walking.Pace]walking.PaceSpec) error {
	switch format {
	case jsonOut:
		return writeJSON(w, paces)
	case yamlOut:
		return writeYAML(w, paces)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pace", "Speed (mph)", "METs"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range walking.Paces {
		spec := paces[p]
		data = append(data, []string{
			string(p),
			strconv.FormatFloat(spec.Mph, 'f', 1, 64),
			strconv.FormatFloat(spec.Mets, 'f', 1, 64),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
