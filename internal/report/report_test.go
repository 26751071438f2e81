package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcr/internal/calc"
	"tcr/internal/logging"
	"tcr/internal/project"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
	// A bogus explicit path keeps the builder off any fonts the host
	// happens to have installed.
	return NewBuilder(Config{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}, logger)
}

func testVehicle() project.Vehicle {
	return project.Vehicle{Name: "Test Trailer", Model: "TT-1"}
}

func testAxleSheet(t *testing.T) *Sheet {
	t.Helper()
	in := calc.AxleInput{
		GrossWeight:   1500,
		WheelCount:    4,
		Diameter:      40,
		BearingOffset: 100,
		Tensile:       4100,
		Yield:         2400,
	}
	res, err := calc.AxleStrength(in)
	if err != nil {
		t.Fatalf("AxleStrength failed: %v", err)
	}
	return AxleSheet(testVehicle(), in, res)
}

func TestRenderWritesPDF(t *testing.T) {
	b := testBuilder(t)
	if b.UsesEmbeddedFont() {
		t.Fatal("Expected core-font fallback for a missing font path")
	}

	path := filepath.Join(t.TempDir(), "axle.pdf")
	if err := b.Render(testAxleSheet(t), path); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read rendered file: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Expected a PDF header, got %q", data[:8])
	}
}

func TestRenderAll(t *testing.T) {
	b := testBuilder(t)
	path := filepath.Join(t.TempDir(), "all.pdf")

	sheets := []*Sheet{testAxleSheet(t), Form1Sheet(&project.Project{Vehicle: testVehicle()})}
	if err := b.RenderAll(sheets, path); err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected output file: %v", err)
	}

	if err := b.RenderAll(nil, path); err == nil {
		t.Error("Expected error for empty sheet list")
	}
}

func TestSheetOK(t *testing.T) {
	tests := []struct {
		name      string
		judgments []Judgment
		ok        bool
		word      string
	}{
		{"no judgments", nil, true, "info"},
		{"all pass", []Judgment{{OK: true}, {OK: true}}, true, "pass"},
		{"one fails", []Judgment{{OK: true}, {OK: false}}, false, "fail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sheet{Judgments: tt.judgments}
			if s.OK() != tt.ok {
				t.Errorf("Expected OK %v, got %v", tt.ok, s.OK())
			}
			if got := s.JudgmentWord(); got != tt.word {
				t.Errorf("Expected judgment word %q, got %q", tt.word, got)
			}
		})
	}
}

func TestResolveFont(t *testing.T) {
	dir := t.TempDir()
	ttf := filepath.Join(dir, "custom.ttf")
	if err := os.WriteFile(ttf, []byte("not a real font"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if got := ResolveFont(ttf, ""); got != ttf {
		t.Errorf("Expected explicit path %q, got %q", ttf, got)
	}
	if got := ResolveFont(filepath.Join(dir, "missing.ttf"), ""); got != "" {
		t.Errorf("Expected empty result for missing explicit path, got %q", got)
	}
	if got := ResolveFont(dir, ""); got != "" {
		t.Errorf("Expected empty result for a directory, got %q", got)
	}
}

func TestCoreReplacer(t *testing.T) {
	in := "σ = M/Z, θ1 ≥ 20°, Lc = √(L2²−S²), " + MarkPass + " " + MarkFail
	out := coreReplacer.Replace(in)

	for _, sym := range []string{"σ", "θ", "√", "−", "≥", MarkPass, MarkFail} {
		if strings.Contains(out, sym) {
			t.Errorf("Replacer left %q in %q", sym, out)
		}
	}
	for _, want := range []string{"sigma", "theta", "sqrt", "[OK]", "[NG]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1500, "1500"},
		{2.5, "2.5"},
		{596.831, "596.83"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%g): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
