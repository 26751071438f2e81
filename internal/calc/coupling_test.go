package calc

import "testing"

func TestCouplingReview_AllPass(t *testing.T) {
	res, err := CouplingReview(CouplingInput{
		TowWeight:           1500,
		TrailerWeight:       500,
		ServiceBrakeForce:   2000,
		InertiaBrakeForce:   500,
		ParkingBrakeForce:   500,
		TrailerParkingForce: 120,
		DriveAxleLoad:       800,
		MaxPower:            60,
	})
	if err != nil {
		t.Fatalf("CouplingReview failed: %v", err)
	}

	near(t, "gross combination", res.GrossCombination, 2000, 0.001)
	near(t, "stop distance", res.StopDistance, 11.667, 0.001)
	near(t, "stop limit", res.StopLimit, 25, 0.001)
	near(t, "parking required", res.ParkingRequired, 400, 0.001)
	near(t, "trailer parking required", res.TrailerParkingRequired, 100, 0.001)
	near(t, "power envelope", res.PowerEnvelope, 5360, 0.001)
	near(t, "drive axle envelope", res.DriveAxleEnvelope, 3200, 0.001)

	if !res.StopOK || !res.ParkingOK || !res.TrailerParkingOK || !res.RunningOK {
		t.Errorf("checks: stop=%v parking=%v trailerParking=%v running=%v",
			res.StopOK, res.ParkingOK, res.TrailerParkingOK, res.RunningOK)
	}
	if !res.Overall {
		t.Error("expected overall pass")
	}
}

func TestCouplingReview_Failures(t *testing.T) {
	base := CouplingInput{
		TowWeight:           1500,
		TrailerWeight:       500,
		ServiceBrakeForce:   2000,
		InertiaBrakeForce:   500,
		ParkingBrakeForce:   500,
		TrailerParkingForce: 120,
		DriveAxleLoad:       800,
		MaxPower:            60,
	}

	tests := []struct {
		name   string
		mutate func(*CouplingInput)
		check  func(*CouplingResult) bool
	}{
		{
			"weak braking",
			func(in *CouplingInput) { in.ServiceBrakeForce, in.InertiaBrakeForce = 1000, 0 },
			func(r *CouplingResult) bool { return !r.StopOK },
		},
		{
			"weak parking brake",
			func(in *CouplingInput) { in.ParkingBrakeForce = 300 },
			func(r *CouplingResult) bool { return !r.ParkingOK },
		},
		{
			"weak trailer parking",
			func(in *CouplingInput) { in.TrailerParkingForce = 50 },
			func(r *CouplingResult) bool { return !r.TrailerParkingOK },
		},
		{
			"underpowered tow vehicle",
			func(in *CouplingInput) { in.MaxPower = 30 },
			func(r *CouplingResult) bool { return !r.PowerOK && !r.RunningOK },
		},
		{
			"light drive axle",
			func(in *CouplingInput) { in.DriveAxleLoad = 400 },
			func(r *CouplingResult) bool { return !r.DriveAxleOK && !r.RunningOK },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			res, err := CouplingReview(in)
			if err != nil {
				t.Fatalf("CouplingReview failed: %v", err)
			}
			if !tt.check(res) {
				t.Errorf("expected failing check, got %+v", res)
			}
			if res.Overall {
				t.Error("expected overall failure")
			}
		})
	}
}

func TestCouplingReview_NoBrakingForce(t *testing.T) {
	if _, err := CouplingReview(CouplingInput{TowWeight: 1500, TrailerWeight: 500}); err == nil {
		t.Fatal("expected error with no braking force")
	}
}
