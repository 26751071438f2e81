package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tcr/internal/history"
	"tcr/internal/logging"
	"tcr/internal/project"
	"tcr/internal/report"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
}

func testExporter(t *testing.T, ledger *history.Ledger) *Exporter {
	t.Helper()
	logger := testLogger()
	builder := report.NewBuilder(report.Config{
		FontPath: filepath.Join(t.TempDir(), "missing.ttf"),
	}, logger)
	return NewExporter(builder, ledger, logger)
}

func TestExportPerSheet(t *testing.T) {
	e := testExporter(t, nil)
	p := project.Template()
	dir := filepath.Join(t.TempDir(), "out")

	res, err := e.Export(p, Options{OutputDir: dir})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if len(res.Files) != len(p.SheetNames()) {
		t.Errorf("Expected %d files, got %d", len(p.SheetNames()), len(res.Files))
	}
	for _, f := range res.Files {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("Expected exported file %s: %v", f, err)
		}
		if !strings.HasSuffix(f, ".pdf") {
			t.Errorf("Expected a .pdf file, got %s", f)
		}
	}
	if !res.Overall {
		t.Error("Expected the template project to pass overall")
	}
}

func TestExportUnifiedWithForms(t *testing.T) {
	e := testExporter(t, nil)
	p := project.Template()
	dir := t.TempDir()

	res, err := e.Export(p, Options{OutputDir: dir, Unified: true, WithForms: true})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(res.Files) != 1 {
		t.Fatalf("Expected a single unified file, got %v", res.Files)
	}
	if res.Sheets != len(p.SheetNames())+3 {
		t.Errorf("Expected judgment sheets plus overview and two forms, got %d", res.Sheets)
	}
}

func TestExportSheetFilter(t *testing.T) {
	e := testExporter(t, nil)
	p := project.Template()
	dir := t.TempDir()

	res, err := e.Export(p, Options{OutputDir: dir, Sheets: []string{"axle", "chain"}})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(res.Files) != 2 {
		t.Errorf("Expected 2 filtered files, got %v", res.Files)
	}

	if _, err := e.Export(p, Options{OutputDir: dir, Sheets: []string{"brake"}}); err == nil {
		t.Error("Expected an error when no prepared sheet matches the filter")
	}
}

func TestExportRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	ledger, err := history.Open(filepath.Join(dir, "tcr.db"), testLogger())
	if err != nil {
		t.Fatalf("Failed to open ledger: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })

	e := testExporter(t, ledger)
	p := project.Template()

	res, err := e.Export(p, Options{OutputDir: filepath.Join(dir, "out")})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	entries, err := ledger.Recent(100)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != len(res.Files) {
		t.Errorf("Expected %d ledger entries, got %d", len(res.Files), len(entries))
	}
	for _, en := range entries {
		if en.Judgment != "pass" {
			t.Errorf("Expected pass judgment for %s, got %q", en.Sheet, en.Judgment)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Test Trailer", "test_trailer"},
		{"TT-1", "tt_1"},
		{"", "project"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
