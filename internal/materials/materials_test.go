package materials

import "testing"

func TestList(t *testing.T) {
	mats, err := List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mats) < 5 {
		t.Fatalf("expected at least 5 built-in grades, got %d", len(mats))
	}
	for i := 1; i < len(mats); i++ {
		if mats[i-1].Name >= mats[i].Name {
			t.Errorf("list not sorted: %q before %q", mats[i-1].Name, mats[i].Name)
		}
	}
	for _, m := range mats {
		if m.TensileKgCM2 <= 0 || m.YieldKgCM2 <= 0 {
			t.Errorf("%s has non-positive kg/cm² strengths: %+v", m.Name, m)
		}
		if m.TensileMPa <= 0 || m.YieldMPa <= 0 {
			t.Errorf("%s has non-positive MPa strengths: %+v", m.Name, m)
		}
		if m.YieldKgCM2 >= m.TensileKgCM2 {
			t.Errorf("%s yield %g should be below tensile %g", m.Name, m.YieldKgCM2, m.TensileKgCM2)
		}
	}
}

func TestLookup(t *testing.T) {
	m, err := Lookup("SS400")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if m.TensileKgCM2 != 4100 || m.YieldKgCM2 != 2400 {
		t.Errorf("SS400 = %+v", m)
	}
	if m.Standard != "JIS G 3101" {
		t.Errorf("SS400 standard = %q", m.Standard)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	m, err := Lookup("ss400")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if m.Name != "SS400" {
		t.Errorf("name = %q", m.Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("unobtainium"); err == nil {
		t.Fatal("expected error for unknown grade")
	}
}
