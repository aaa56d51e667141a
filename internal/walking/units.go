package walking

const (
	kgPerLb  = 0.45359237
	cmPerIn  = 2.54
	miPerKm  = 0.621371
	kmPerMi  = 1.60934
	minPerHr = 60.0
)

// LbToKg converts pounds to kilograms.
func LbToKg(lb float64) float64 { return lb * kgPerLb }

// KgToLb converts kilograms to pounds.
func KgToLb(kg float64) float64 { return kg / kgPerLb }

// InToCm converts inches to centimeters.
func InToCm(in float64) float64 { return in * cmPerIn }

// CmToIn converts centimeters to inches.
func CmToIn(cm float64) float64 { return cm / cmPerIn }

// KmToMi converts kilometers to miles.
func KmToMi(km float64) float64 { return km * miPerKm }

// MiToKm converts miles to kilometers.
func MiToKm(mi float64) float64 { return mi * kmPerMi }

// WeightKg normalizes a unit-tagged weight to kilograms.
func WeightKg(v float64, u WeightUnit) float64 {
	if u == Pounds {
		return LbToKg(v)
	}
	return v
}

// HeightCm normalizes a unit-tagged height to centimeters.
func HeightCm(v float64, u HeightUnit) float64 {
	if u == Inches {
		return InToCm(v)
	}
	return v
}
