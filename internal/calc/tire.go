package calc

import "fmt"

// Default acceptance limits for the tire load rate and contact pressure
// sheet.
const (
	DefaultLoadRateLimit        = 100.0 // %
	DefaultContactPressureLimit = 200.0 // kg/cm
)

// TireLoadInput is one axle group entry on the tire load rate & contact
// pressure sheet.
type TireLoadInput struct {
	Label           string  `json:"label" yaml:"label"`                     // e.g. "rear"
	TireSize        string  `json:"tireSize" yaml:"tireSize"`               // e.g. "11R22.5-14PR"
	TireCount       int     `json:"tireCount" yaml:"tireCount"`             // n
	AxleLoad        float64 `json:"axleLoad" yaml:"axleLoad"`               // kg, Wr
	RecommendedLoad float64 `json:"recommendedLoad" yaml:"recommendedLoad"` // kg per tire
	ContactWidth    float64 `json:"contactWidth" yaml:"contactWidth"`       // cm per tire
}

// TireLoadResult judges one entry against the limits.
type TireLoadResult struct {
	Label           string  `json:"label"`
	LoadRate        float64 `json:"loadRate"`        // %
	ContactPressure float64 `json:"contactPressure"` // kg/cm
	LoadRateOK      bool    `json:"loadRateOk"`
	PressureOK      bool    `json:"pressureOk"`
}

// OK reports whether both limits hold.
func (r *TireLoadResult) OK() bool { return r.LoadRateOK && r.PressureOK }

// TireLoad computes the load rate and contact pressure for one axle
// group. Zero limits fall back to the sheet defaults.
func TireLoad(in TireLoadInput, loadRateLimit, pressureLimit float64) (*TireLoadResult, error) {
	if in.TireCount <= 0 {
		return nil, fmt.Errorf("tire count must be positive, got %d", in.TireCount)
	}
	if err := requirePositive(
		pv("axleLoad", in.AxleLoad),
		pv("recommendedLoad", in.RecommendedLoad),
		pv("contactWidth", in.ContactWidth),
	); err != nil {
		return nil, err
	}
	if loadRateLimit <= 0 {
		loadRateLimit = DefaultLoadRateLimit
	}
	if pressureLimit <= 0 {
		pressureLimit = DefaultContactPressureLimit
	}

	n := float64(in.TireCount)
	res := &TireLoadResult{
		Label:           in.Label,
		LoadRate:        in.AxleLoad / (n * in.RecommendedLoad) * 100.0,
		ContactPressure: in.AxleLoad / (n * in.ContactWidth),
	}
	res.LoadRateOK = res.LoadRate <= loadRateLimit
	res.PressureOK = res.ContactPressure <= pressureLimit
	return res, nil
}
