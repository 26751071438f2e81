package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcr/internal/calc"
)

func TestLoadSave_YAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")

	p := Template()
	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Vehicle.Name != p.Vehicle.Name {
		t.Errorf("vehicle name = %q, want %q", got.Vehicle.Name, p.Vehicle.Name)
	}
	if got.Axle == nil || got.Axle.GrossWeight != p.Axle.GrossWeight {
		t.Errorf("axle section did not survive the round trip: %+v", got.Axle)
	}
	if got.Frame == nil || got.Frame.Section.RectHollow == nil {
		t.Fatalf("frame section geometry lost: %+v", got.Frame)
	}
	if got.Frame.Section.RectHollow.OuterHeight != 100 {
		t.Errorf("frame outer height = %g", got.Frame.Section.RectHollow.OuterHeight)
	}
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.json")
	content := `{
  "vehicle": {"name": "json trailer", "model": "J-1"},
  "turning": {
    "tractorWheelbase": 2.5,
    "trailerWheelbase": 2.2,
    "frontHalfTread": 0.7,
    "rearHalfTread": 0.65,
    "couplerOffset": 0.9
  }
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Vehicle.Name != "json trailer" {
		t.Errorf("vehicle name = %q", p.Vehicle.Name)
	}
	if p.Turning == nil || p.Turning.TractorWheelbase != 2.5 {
		t.Errorf("turning section = %+v", p.Turning)
	}
}

func TestLoad_UnknownSectionsTolerated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	content := "vehicle:\n  name: future trailer\nfutureSheet:\n  answer: 42\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Vehicle.Name != "future trailer" {
		t.Errorf("vehicle name = %q", p.Vehicle.Name)
	}
}

func TestPackUnpack(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "project.yaml")
	packed := filepath.Join(dir, "project.tcrz")
	restored := filepath.Join(dir, "restored.yaml")

	if err := Template().Save(plain); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Pack(plain, packed); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	// The archive is gzip, not plain text.
	raw, err := os.ReadFile(packed)
	if err != nil {
		t.Fatalf("reading packed file: %v", err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		t.Fatal("packed file is not gzip")
	}

	if err := Unpack(packed, restored); err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	p, err := Load(restored)
	if err != nil {
		t.Fatalf("Load of restored project failed: %v", err)
	}
	if p.Vehicle.Name != Template().Vehicle.Name {
		t.Errorf("vehicle name = %q", p.Vehicle.Name)
	}

	// A packed project also loads directly.
	direct, err := Load(packed)
	if err != nil {
		t.Fatalf("direct Load of packed project failed: %v", err)
	}
	if direct.Chain == nil {
		t.Error("chain section lost in packed round trip")
	}
}

func TestPackUnpack_ExtensionChecks(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "project.yaml")
	if err := Template().Save(plain); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := Pack(plain, filepath.Join(dir, "out.yaml")); err == nil {
		t.Error("expected error packing to a non-.tcrz destination")
	}
	if err := Unpack(plain, filepath.Join(dir, "out.yaml")); err == nil {
		t.Error("expected error unpacking a non-.tcrz source")
	}
}

func TestValidate_Template(t *testing.T) {
	if issues := Template().Validate(); len(issues) != 0 {
		t.Errorf("template should validate clean, got %v", issues)
	}
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	p := Template()
	p.Vehicle.Name = ""
	p.Axle.Diameter = 0
	p.Turning.CouplerOffset = 10 // radicand goes negative

	issues := p.Validate()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(issues), issues)
	}
	sections := map[string]bool{}
	for _, i := range issues {
		sections[i.Section] = true
	}
	for _, want := range []string{"vehicle", "axle", "turning"} {
		if !sections[want] {
			t.Errorf("missing issue for section %q in %v", want, issues)
		}
	}
}

func TestSheetNames(t *testing.T) {
	p := &Project{
		Axle:    &AxleSection{},
		Turning: &TurningSection{},
	}
	got := p.SheetNames()
	want := []string{"axle", "turning"}
	if len(got) != len(want) {
		t.Fatalf("SheetNames = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SheetNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSectionSpec_Resolve(t *testing.T) {
	if _, err := (SectionSpec{}).Resolve(); err == nil {
		t.Error("expected error for empty section spec")
	}
	both := SectionSpec{
		RectHollow: &calc.RectHollow{OuterWidth: 60, OuterHeight: 100, InnerWidth: 52, InnerHeight: 92},
		HBeam:      &calc.HBeam{FlangeWidth: 125, Height: 250, WebThickness: 6, FlangeThickness: 9},
	}
	if _, err := both.Resolve(); err == nil {
		t.Error("expected error for ambiguous section spec")
	}

	sec, err := SectionSpec{HBeam: both.HBeam}.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sec.Kind() != "hbeam" {
		t.Errorf("kind = %q", sec.Kind())
	}
}

func TestSectionInput_MaterialResolution(t *testing.T) {
	s := &AxleSection{
		AxleInput: calc.AxleInput{
			GrossWeight: 650, WheelCount: 2, Diameter: 40, BearingOffset: 100,
		},
		Material: "SS400",
	}
	in, err := s.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if in.Tensile != 4100 || in.Yield != 2400 {
		t.Errorf("strengths = %g/%g, want 4100/2400", in.Tensile, in.Yield)
	}

	// Explicit numbers win over the grade.
	s.Tensile = 5000
	in, err = s.Input()
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if in.Tensile != 5000 {
		t.Errorf("tensile = %g, want explicit 5000", in.Tensile)
	}

	s.Material = "unobtainium"
	if _, err := s.Input(); err == nil {
		t.Error("expected error for unknown grade")
	}
}

func TestWeightSheetSection_ComponentsText(t *testing.T) {
	s := &WeightSheetSection{
		WeightSheetInput: calc.WeightSheetInput{Wheelbase: 8000, MaxPayload: 2000},
		ComponentsText:   "1,frame,400,1000,600\n2,axles,300,5000,900\n",
	}
	in := s.Input()
	if len(in.Components) != 2 {
		t.Fatalf("expected 2 parsed components, got %d", len(in.Components))
	}
	if in.Components[1].Name != "axles" {
		t.Errorf("component 1 = %+v", in.Components[1])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("vehicle: [unclosed"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing project") {
		t.Errorf("error %q should mention parsing", err)
	}
}
