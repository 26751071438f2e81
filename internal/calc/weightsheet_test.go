package calc

import "testing"

func testComponents() []Component {
	return []Component{
		{No: "1", Name: "frame", Weight: 400, Arm: 1000, Height: 600},
		{No: "2", Name: "axles", Weight: 300, Arm: 5000, Height: 900},
		{No: "3", Name: "bed", Weight: 300, Arm: 7000, Height: 1100},
	}
}

func TestWeightSheet(t *testing.T) {
	res, err := WeightSheet(WeightSheetInput{
		Wheelbase:  8000,
		MaxPayload: 2000,
		Components: testComponents(),
		BedOffsetA: 2000,
		BedOffsetB: 500,
		BedOffsetC: 200,
		BedOffsetD: 300,
	})
	if err != nil {
		t.Fatalf("WeightSheet failed: %v", err)
	}

	near(t, "tare weight", res.TareWeight, 1000, 0.001)
	near(t, "arm moment sum", res.SumArmMoment, 4e6, 0.001)
	near(t, "height moment sum", res.SumHeightMoment, 840000, 0.001)
	near(t, "empty rear axle", res.EmptyRearAxle, 500, 0.001)
	near(t, "empty front axle", res.EmptyFrontAxle, 500, 0.001)
	near(t, "cg arm", res.CGArm, 4000, 0.001)
	near(t, "cg height", res.CGHeight, 840, 0.001)
	near(t, "bed offset", res.BedOffset, 1000, 0.001)
	near(t, "payload arm", res.PayloadArm, 7000, 0.001)
	near(t, "loaded rear axle", res.LoadedRearAxle, 2250, 0.001)
	near(t, "loaded front axle", res.LoadedFrontAxle, 750, 0.001)
	near(t, "gross weight", res.GrossWeight, 3000, 0.001)
}

func TestWeightSheet_Invalid(t *testing.T) {
	if _, err := WeightSheet(WeightSheetInput{Components: testComponents()}); err == nil {
		t.Error("expected error for zero wheelbase")
	}
	if _, err := WeightSheet(WeightSheetInput{Wheelbase: 8000}); err == nil {
		t.Error("expected error for empty component table")
	}
	_, err := WeightSheet(WeightSheetInput{
		Wheelbase:  8000,
		Components: []Component{{Name: "ghost", Weight: 0}},
	})
	if err == nil {
		t.Error("expected error for zero total weight")
	}
}

func TestParseComponents(t *testing.T) {
	text := "No,Name,Weight,Arm,Height\n" +
		"# chassis group\n" +
		"1,frame,400,1000,600\n" +
		"\n" +
		"2\taxles\t300\t5000\t900\n" +
		"3,bed,300,7000\n" +
		"4,tank,abc,7000,1100\n" +
		"5,lamp,20,7500,1200\n"

	rows := ParseComponents(text)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].Name != "frame" || rows[0].Weight != 400 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Name != "axles" || rows[1].Arm != 5000 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[2].No != "5" {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestParseComponents_Empty(t *testing.T) {
	if rows := ParseComponents("\n# nothing here\n"); len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}
