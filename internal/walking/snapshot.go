package walking

// Snapshot pairs one Inputs value with the Metrics computed from it.
// A Snapshot is never modified in place; Update returns a new one.
type Snapshot struct {
	Inputs  Inputs  `json:"inputs"`
	Metrics Metrics `json:"metrics"`
}

// DefaultInputs is the initial state of the calculator widget.
func DefaultInputs() Inputs {
	return Inputs{
		Weight:     70,
		WeightUnit: Kilograms,
		Height:     170,
		HeightUnit: Centimeters,
		Mode:       ModeSteps,
		Steps:      10000,
		DistanceKm: 5,
		TimeMin:    30,
		Pace:       PaceBrisk,
		Sex:        Female,
	}
}

// NewSnapshot computes the metrics for in.
func NewSnapshot(in Inputs) Snapshot {
	return Snapshot{Inputs: in, Metrics: Compute(in)}
}

// Update applies change to a copy of the inputs and recomputes.
func (s Snapshot) Update(change func(*Inputs)) Snapshot {
	in := s.Inputs
	if change != nil {
		change(&in)
	}
	return NewSnapshot(in)
}
