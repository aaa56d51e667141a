package walking

// WeightUnit is the unit a weight input is expressed in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

// HeightUnit is the unit a height input is expressed in.
type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "in"
)

// InputMode selects which of steps, distance, or time is authoritative.
type InputMode string

const (
	ModeSteps    InputMode = "steps"
	ModeDistance InputMode = "distance"
	ModeTime     InputMode = "time"
)

// Pace selects a walking speed and its MET value from the pace table.
type Pace string

const (
	PaceEasy  Pace = "easy"
	PaceBrisk Pace = "brisk"
	PacePower Pace = "power"
	PaceJog   Pace = "jog"
)

// Sex selects the stride factor.
type Sex string

const (
	Female Sex = "female"
	Male   Sex = "male"
)

// PaceSpec is one row of the pace table.
type PaceSpec struct {
	Mph  float64 `json:"mph" yaml:"mph"`
	Mets float64 `json:"mets" yaml:"mets"`
}

// strideFactors maps sex to the ratio of stride length to height.
var strideFactors = map[Sex]float64{
	Female: 0.413,
	Male:   0.415,
}

// paceTable maps each pace to its speed (mph) and MET value, following the
// walking entries of the Compendium of Physical Activities.
var paceTable = map[Pace]PaceSpec{
	PaceEasy:  {Mph: 3.0, Mets: 3.5},
	PaceBrisk: {Mph: 3.5, Mets: 4.3},
	PacePower: {Mph: 4.5, Mets: 7.0},
	PaceJog:   {Mph: 5.0, Mets: 8.3},
}

// Ordered lists for rendering selects and tables in a stable order.
var (
	Paces       = []Pace{PaceEasy, PaceBrisk, PacePower, PaceJog}
	Sexes       = []Sex{Female, Male}
	InputModes  = []InputMode{ModeSteps, ModeDistance, ModeTime}
	WeightUnits = []WeightUnit{Kilograms, Pounds}
	HeightUnits = []HeightUnit{Centimeters, Inches}
)

// StrideFactors returns a copy of the stride factor table.
func StrideFactors() map[Sex]float64 {
	out := make(map[Sex]float64, len(strideFactors))
	for k, v := range strideFactors {
		out[k] = v
	}
	return out
}

// PaceTable returns a copy of the pace table.
func PaceTable() map[Pace]PaceSpec {
	out := make(map[Pace]PaceSpec, len(paceTable))
	for k, v := range paceTable {
		out[k] = v
	}
	return out
}

func (u WeightUnit) Valid() bool { return u == Kilograms || u == Pounds }
func (u HeightUnit) Valid() bool { return u == Centimeters || u == Inches }

func (m InputMode) Valid() bool {
	return m == ModeSteps || m == ModeDistance || m == ModeTime
}

func (p Pace) Valid() bool {
	_, ok := paceTable[p]
	return ok
}

func (s Sex) Valid() bool {
	_, ok := strideFactors[s]
	return ok
}

// ParseWeightUnit reports whether s names a known weight unit.
func ParseWeightUnit(s string) (WeightUnit, bool) {
	u := WeightUnit(normalizeEnum(s))
	return u, u.Valid()
}

// ParseHeightUnit reports whether s names a known height unit.
func ParseHeightUnit(s string) (HeightUnit, bool) {
	u := HeightUnit(normalizeEnum(s))
	return u, u.Valid()
}

// ParseInputMode reports whether s names a known input mode.
func ParseInputMode(s string) (InputMode, bool) {
	m := InputMode(normalizeEnum(s))
	return m, m.Valid()
}

// ParsePace reports whether s names a row of the pace table.
func ParsePace(s string) (Pace, bool) {
	p := Pace(normalizeEnum(s))
	return p, p.Valid()
}

// ParseSex reports whether s names a row of the stride factor table.
func ParseSex(s string) (Sex, bool) {
	x := Sex(normalizeEnum(s))
	return x, x.Valid()
}
