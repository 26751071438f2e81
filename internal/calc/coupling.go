package calc

import "fmt"

// Coupling specification review constants: the stopping distance is
// judged at 50 km/h with a 5 % margin against a 25 m limit, parking
// brakes against a 0.2 load coefficient, and running performance against
// the 121·PS−1900 and 4·WD envelopes.
const (
	couplingSpeedKMH       = 50.0
	couplingSpeedMargin    = 1.05
	couplingStopLimitM     = 25.0
	parkingBrakeCoeff      = 0.2
	runningPowerSlope      = 121.0
	runningPowerIntercept  = 1900.0
	runningDriveAxleFactor = 4.0
)

// CouplingInput carries the coupled-pair specification for the coupling
// review sheet.
type CouplingInput struct {
	TowWeight          float64 `json:"towWeight" yaml:"towWeight"`                   // kg, W
	TrailerWeight      float64 `json:"trailerWeight" yaml:"trailerWeight"`           // kg, W'
	ServiceBrakeForce  float64 `json:"serviceBrakeForce" yaml:"serviceBrakeForce"`   // Fm
	InertiaBrakeForce  float64 `json:"inertiaBrakeForce" yaml:"inertiaBrakeForce"`   // Fm'
	ParkingBrakeForce  float64 `json:"parkingBrakeForce" yaml:"parkingBrakeForce"`   // Fs
	TrailerParkingForce float64 `json:"trailerParkingForce" yaml:"trailerParkingForce"` // Fs'
	DriveAxleLoad      float64 `json:"driveAxleLoad" yaml:"driveAxleLoad"`           // kg, WD
	MaxPower           float64 `json:"maxPower" yaml:"maxPower"`                     // PS
}

// CouplingResult holds the four review checks and the overall judgment.
type CouplingResult struct {
	GrossCombination float64 `json:"grossCombination"` // kg, GCW = W + W'

	StopDistance float64 `json:"stopDistance"` // m
	StopLimit    float64 `json:"stopLimit"`    // m
	StopOK       bool    `json:"stopOk"`

	ParkingRequired float64 `json:"parkingRequired"` // 0.2·GCW
	ParkingOK       bool    `json:"parkingOk"`

	TrailerParkingRequired float64 `json:"trailerParkingRequired"` // 0.2·W'
	TrailerParkingOK       bool    `json:"trailerParkingOk"`

	PowerEnvelope     float64 `json:"powerEnvelope"`     // 121·PS − 1900
	PowerOK           bool    `json:"powerOk"`
	DriveAxleEnvelope float64 `json:"driveAxleEnvelope"` // 4·WD
	DriveAxleOK       bool    `json:"driveAxleOk"`
	RunningOK         bool    `json:"runningOk"`

	Overall bool `json:"overall"`
}

// CouplingReview runs the coupling specification checks: stopping
// distance, parking brake capacity for the combination and the trailer
// alone, and the running performance envelopes.
func CouplingReview(in CouplingInput) (*CouplingResult, error) {
	combined := in.ServiceBrakeForce + in.InertiaBrakeForce
	if combined <= 0 {
		return nil, fmt.Errorf("combined braking force must be positive, got %g", combined)
	}

	gcw := in.TowWeight + in.TrailerWeight
	speedMS := couplingSpeedKMH * 1000.0 / 3600.0

	res := &CouplingResult{
		GrossCombination: gcw,
		StopLimit:        couplingStopLimitM,
	}

	res.StopDistance = gcw * couplingSpeedMargin * speedMS / combined
	res.StopOK = res.StopDistance <= couplingStopLimitM

	res.ParkingRequired = gcw * parkingBrakeCoeff
	res.ParkingOK = in.ParkingBrakeForce >= res.ParkingRequired

	res.TrailerParkingRequired = in.TrailerWeight * parkingBrakeCoeff
	res.TrailerParkingOK = in.TrailerParkingForce >= res.TrailerParkingRequired

	res.PowerEnvelope = runningPowerSlope*in.MaxPower - runningPowerIntercept
	res.PowerOK = res.PowerEnvelope > gcw
	res.DriveAxleEnvelope = runningDriveAxleFactor * in.DriveAxleLoad
	res.DriveAxleOK = res.DriveAxleEnvelope > gcw
	res.RunningOK = res.PowerOK && res.DriveAxleOK

	res.Overall = res.StopOK && res.ParkingOK && res.TrailerParkingOK && res.RunningOK
	return res, nil
}
