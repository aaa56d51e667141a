package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lg/ilovesteps/internal/walking"
)

// calcResult is what calc prints in every output format.
type calcResult struct {
	Inputs  walking.Inputs  `json:"inputs" yaml:"inputs"`
	Metrics walking.Metrics `json:"metrics" yaml:"metrics"`
	Display walking.Display `json:"display" yaml:"display"`
}

func newCalcCmd(v *viper.Viper) *cobra.Command {
	d := walking.DefaultInputs()
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute walking metrics from steps, distance, or time.",
		Long: `Compute distance, duration, cadence, and estimated calories for a walk.

Numeric flags accept any text: anything that is not a non-negative number
reads as zero. Enum flags must name a known value.

Examples:
  # 8000 steps at a brisk pace
  walkcalc calc --steps 8000 --pace brisk

  # 40 minute power walk, imperial body metrics
  walkcalc calc --mode time --time-min 40 --pace power --weight 165 --weight-unit lb --height 67 --height-unit in

  # Use a measured stride and print JSON
  walkcalc calc --mode distance --distance-km 5 --custom-stride --custom-stride-cm 78 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := inputsFromConfig(v)
			if err != nil {
				return err
			}
			snap := walking.NewSnapshot(in)
			res := calcResult{Inputs: snap.Inputs, Metrics: snap.Metrics, Display: walking.Format(snap.Metrics)}
			return writeCalc(cmd.OutOrStdout(), v.GetString("output"), res)
		},
	}

	f := cmd.Flags()
	f.String("weight", formatFloat(d.Weight), "body weight")
	f.String("weight-unit", string(d.WeightUnit), "weight unit: kg or lb")
	f.String("height", formatFloat(d.Height), "body height")
	f.String("height-unit", string(d.HeightUnit), "height unit: cm or in")
	f.String("mode", string(d.Mode), "which entry is authoritative: steps, distance, or time")
	f.String("steps", strconv.Itoa(d.Steps), "step count (steps mode)")
	f.String("distance-km", formatFloat(d.DistanceKm), "distance in km (distance mode)")
	f.String("time-min", formatFloat(d.TimeMin), "walking time in minutes (time mode)")
	f.String("pace", string(d.Pace), "pace: easy, brisk, power, or jog")
	f.String("sex", string(d.Sex), "sex for stride estimation: female or male")
	f.Bool("custom-stride", false, "use --custom-stride-cm instead of the height-based estimate")
	f.String("custom-stride-cm", "0", "measured stride length in cm")
	return cmd
}

// inputsFromConfig reads the resolved flag/env/file values into an Inputs
// snapshot. Numbers use the parse-with-fallback policy; enums are strict.
func inputsFromConfig(v *viper.Viper) (walking.Inputs, error) {
	var in walking.Inputs
	var ok bool

	if in.WeightUnit, ok = walking.ParseWeightUnit(v.GetString("weight-unit")); !ok {
		return in, fmt.Errorf("invalid --weight-unit %q (want kg or lb)", v.GetString("weight-unit"))
	}
	if in.HeightUnit, ok = walking.ParseHeightUnit(v.GetString("height-unit")); !ok {
		return in, fmt.Errorf("invalid --height-unit %q (want cm or in)", v.GetString("height-unit"))
	}
	if in.Mode, ok = walking.ParseInputMode(v.GetString("mode")); !ok {
		return in, fmt.Errorf("invalid --mode %q (want steps, distance, or time)", v.GetString("mode"))
	}
	if in.Pace, ok = walking.ParsePace(v.GetString("pace")); !ok {
		return in, fmt.Errorf("invalid --pace %q (want easy, brisk, power, or jog)", v.GetString("pace"))
	}
	if in.Sex, ok = walking.ParseSex(v.GetString("sex")); !ok {
		return in, fmt.Errorf("invalid --sex %q (want female or male)", v.GetString("sex"))
	}

	in.Weight = walking.ParseNumber(v.GetString("weight"))
	in.Height = walking.ParseNumber(v.GetString("height"))
	in.Steps = walking.ParseSteps(v.GetString("steps"))
	in.DistanceKm = walking.ParseNumber(v.GetString("distance-km"))
	in.TimeMin = walking.ParseNumber(v.GetString("time-min"))
	in.UseCustomStride = v.GetBool("custom-stride")
	in.CustomStrideCm = walking.ParseNumber(v.GetString("custom-stride-cm"))
	return in, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
