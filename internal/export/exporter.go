// Package export writes the reviewed judgment sheets of a project to
// disk: one PDF per sheet plus the overview and form documents, or a
// single unified document, with each issuance recorded in the history
// ledger.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tcr/internal/history"
	"tcr/internal/logging"
	"tcr/internal/project"
	"tcr/internal/report"
	"tcr/internal/review"
)

// Options controls an export run.
type Options struct {
	OutputDir string   // destination directory, created if missing
	Unified   bool     // one document instead of per-sheet files
	Sheets    []string // sheet kinds to export; empty means all
	WithForms bool     // include the overview and form sheets
}

// Result describes what an export produced.
type Result struct {
	Files   []string `json:"files"`
	Overall bool     `json:"overall"`
	Sheets  int      `json:"sheets"`
}

// Exporter renders and writes review documents.
type Exporter struct {
	builder *report.Builder
	ledger  *history.Ledger
	logger  *logging.Logger
}

// NewExporter builds an exporter. The ledger may be nil, in which case
// issuances are not recorded.
func NewExporter(builder *report.Builder, ledger *history.Ledger, logger *logging.Logger) *Exporter {
	return &Exporter{builder: builder, ledger: ledger, logger: logger}
}

// Export reviews the project and writes the selected sheets under
// opts.OutputDir.
func (e *Exporter) Export(p *project.Project, opts Options) (*Result, error) {
	res, err := review.Run(p)
	if err != nil {
		return nil, err
	}

	sheets := res.Sheets
	if opts.WithForms {
		sheets = append(sheets,
			report.OverviewSheet(p, res.Statuses),
			report.Form1Sheet(p),
			report.Form2Sheet(p, res.Statuses),
		)
	}
	if len(opts.Sheets) > 0 {
		sheets = filterSheets(sheets, opts.Sheets)
		if len(sheets) == 0 {
			return nil, fmt.Errorf("no prepared sheet matches %v", opts.Sheets)
		}
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	out := &Result{Overall: res.Overall, Sheets: len(sheets)}

	if opts.Unified {
		path := filepath.Join(dir, unifiedFileName(p))
		if err := e.builder.RenderAll(sheets, path); err != nil {
			return nil, err
		}
		out.Files = append(out.Files, path)
		e.record(p, "unified", path, overallWord(res.Overall))
	} else {
		for _, s := range sheets {
			path := filepath.Join(dir, sheetFileName(p, s))
			if err := e.builder.Render(s, path); err != nil {
				return nil, err
			}
			out.Files = append(out.Files, path)
			e.record(p, s.Kind, path, s.JudgmentWord())
		}
	}

	e.logger.Info("export complete", map[string]interface{}{
		"project": p.Vehicle.Name,
		"files":   len(out.Files),
		"overall": out.Overall,
	})
	return out, nil
}

func (e *Exporter) record(p *project.Project, sheet, path, judgment string) {
	if e.ledger == nil {
		return
	}
	if _, err := e.ledger.Record(p.Vehicle.Name, sheet, path, judgment); err != nil {
		e.logger.Warn("failed to record issuance", map[string]interface{}{
			"sheet": sheet,
			"error": err.Error(),
		})
	}
}

func filterSheets(sheets []*report.Sheet, kinds []string) []*report.Sheet {
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[strings.ToLower(strings.TrimSpace(k))] = true
	}
	var out []*report.Sheet
	for _, s := range sheets {
		if want[s.Kind] {
			out = append(out, s)
		}
	}
	return out
}

func overallWord(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

// slug turns the vehicle name into a filename-safe fragment.
func slug(name string) string {
	if name == "" {
		return "project"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func sheetFileName(p *project.Project, s *report.Sheet) string {
	return fmt.Sprintf("%s_%s.pdf", slug(p.Vehicle.Name), s.Kind)
}

func unifiedFileName(p *project.Project) string {
	return fmt.Sprintf("%s_review_%s.pdf", slug(p.Vehicle.Name), time.Now().Format("20060102"))
}
