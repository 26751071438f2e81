// Package calc implements the engineering judgments for trailer coupling
// specification review: axle, hitch and frame strength, stability angle,
// minimum turning radius, coupling specification checks, brake drum
// strength, safety chain strength and weight distribution.
//
// Units follow the review sheets: dimensions in mm (converted to cm where
// the formulas need it), loads in kg and material strengths in kg/cm²
// unless a function documents otherwise.
package calc

import "fmt"

// Strength sheets compare material strength against the bending stress at
// an overload factor of 2.5. Breaking and yield safety factors must clear
// separate minimums.
const (
	LoadFactor     = 2.5
	MinBreakSafety = 1.6
	MinYieldSafety = 1.3
)

// requirePositive returns an error naming the first non-positive value.
func requirePositive(pairs ...namedValue) error {
	for _, p := range pairs {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", p.name, p.value)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

func pv(name string, value float64) namedValue {
	return namedValue{name: name, value: value}
}

// safetyFactors applies the shared overload-factor judgment to a bending
// stress in kg/cm².
func safetyFactors(tensile, yield, stress float64) (sfBreak, sfYield float64, okBreak, okYield bool) {
	sfBreak = tensile / (LoadFactor * stress)
	sfYield = yield / (LoadFactor * stress)
	return sfBreak, sfYield, sfBreak > MinBreakSafety, sfYield > MinYieldSafety
}
