// Package report renders judgment sheets as single-page PDF documents:
// title, vehicle identity block, specification table, judgment marks and
// the formula expansion section.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"tcr/internal/logging"
)

// Marks printed next to judgment lines.
const (
	MarkPass = "○" // ○
	MarkFail = "×" // ×
)

// Row is one specification table line.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Judgment is one pass/fail line on a sheet.
type Judgment struct {
	Label  string `json:"label"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Sheet is a renderable single-page judgment document.
type Sheet struct {
	Kind      string     `json:"sheet"` // short name used in filenames and the ledger
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle,omitempty"`
	Identity  []Row      `json:"identity,omitempty"` // vehicle identity block
	Spec      []Row      `json:"spec,omitempty"`
	Judgments []Judgment `json:"judgments,omitempty"`
	Formulas  []string   `json:"formulas,omitempty"` // expansion lines, symbolic then substituted
}

// OK reports whether every judgment line on the sheet passed.
func (s *Sheet) OK() bool {
	for _, j := range s.Judgments {
		if !j.OK {
			return false
		}
	}
	return true
}

// JudgmentWord returns the ledger word for the sheet outcome.
func (s *Sheet) JudgmentWord() string {
	if len(s.Judgments) == 0 {
		return "info"
	}
	if s.OK() {
		return "pass"
	}
	return "fail"
}

// Config controls rendering.
type Config struct {
	FontPath string // TTF with Japanese coverage; empty means core fonts
	FontName string // family name to register the TTF under
	Author   string
}

// Builder renders sheets with a resolved font.
type Builder struct {
	cfg      Config
	logger   *logging.Logger
	family   string
	unicode  bool
	fontPath string
}

// NewBuilder resolves the font configuration. A missing font never
// fails the build; rendering degrades to the core Helvetica fonts with
// a warning.
func NewBuilder(cfg Config, logger *logging.Logger) *Builder {
	b := &Builder{cfg: cfg, logger: logger, family: "Helvetica"}

	path := ResolveFont(cfg.FontPath, cfg.FontName)
	if path == "" {
		if cfg.FontPath != "" {
			logger.Warn("configured font not found, falling back to core fonts", map[string]interface{}{
				"fontPath": cfg.FontPath,
			})
		}
		return b
	}

	name := cfg.FontName
	if name == "" {
		name = "ipaexg"
	}
	b.family = name
	b.fontPath = path
	b.unicode = true
	return b
}

// UsesEmbeddedFont reports whether a TTF was resolved.
func (b *Builder) UsesEmbeddedFont() bool { return b.unicode }

func (b *Builder) newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAuthor(b.cfg.Author, true)
	pdf.SetCreator("tcr", true)
	if b.unicode {
		pdf.AddUTF8Font(b.family, "", b.fontPath)
	}
	return pdf
}

// Render writes one sheet to path as a single-page PDF.
func (b *Builder) Render(sheet *Sheet, path string) error {
	pdf := b.newDoc()
	b.renderPage(pdf, sheet)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s sheet: %w", sheet.Kind, err)
	}
	b.logger.Info("sheet rendered", map[string]interface{}{
		"sheet": sheet.Kind,
		"path":  path,
	})
	return nil
}

// RenderAll writes all sheets into one document, one page each.
func (b *Builder) RenderAll(sheets []*Sheet, path string) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to render")
	}
	pdf := b.newDoc()
	for _, s := range sheets {
		b.renderPage(pdf, s)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing unified document: %w", err)
	}
	b.logger.Info("unified document rendered", map[string]interface{}{
		"sheets": len(sheets),
		"path":   path,
	})
	return nil
}

const (
	labelWidth = 70.0
	valueWidth = 75.0
	unitWidth  = 25.0
	lineHeight = 7.0
)

func (b *Builder) renderPage(pdf *fpdf.Fpdf, sheet *Sheet) {
	text := func(s string) string { return s }
	if !b.unicode {
		// Core fonts are cp1252; symbolic characters get spelled out
		// and the rest translated.
		cp := pdf.UnicodeTranslatorFromDescriptor("")
		text = func(s string) string { return cp(coreReplacer.Replace(s)) }
	}

	pdf.AddPage()

	pdf.SetFont(b.family, "", 15)
	pdf.CellFormat(0, 10, text(sheet.Title), "", 1, "C", false, 0, "")
	if sheet.Subtitle != "" {
		pdf.SetFont(b.family, "", 10)
		pdf.CellFormat(0, 6, text(sheet.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	if len(sheet.Identity) > 0 {
		pdf.SetFont(b.family, "", 10)
		for _, row := range sheet.Identity {
			pdf.CellFormat(labelWidth, lineHeight, text(row.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(valueWidth+unitWidth, lineHeight, text(row.Value), "1", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(sheet.Spec) > 0 {
		pdf.SetFont(b.family, "", 10)
		for _, row := range sheet.Spec {
			pdf.CellFormat(labelWidth, lineHeight, text(row.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(valueWidth, lineHeight, text(row.Value), "1", 0, "R", false, 0, "")
			pdf.CellFormat(unitWidth, lineHeight, text(row.Unit), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(sheet.Judgments) > 0 {
		pdf.SetFont(b.family, "", 11)
		for _, j := range sheet.Judgments {
			mark := MarkPass
			if !j.OK {
				mark = MarkFail
			}
			line := fmt.Sprintf("%s  %s", mark, j.Label)
			if j.Detail != "" {
				line += "  (" + j.Detail + ")"
			}
			pdf.CellFormat(0, lineHeight, text(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(sheet.Formulas) > 0 {
		pdf.SetFont(b.family, "", 9)
		for _, f := range sheet.Formulas {
			pdf.CellFormat(0, 6, text(f), "", 1, "L", false, 0, "")
		}
	}

	pdf.SetY(-20)
	pdf.SetFont(b.family, "", 8)
	footer := time.Now().Format("2006-01-02")
	if b.cfg.Author != "" {
		footer += "  " + b.cfg.Author
	}
	pdf.CellFormat(0, 5, text(footer), "", 1, "R", false, 0, "")
}

// coreReplacer maps the symbols used on the sheets onto cp1252-safe
// spellings for the core-font fallback.
var coreReplacer = strings.NewReplacer(
	MarkPass, "[OK]",
	MarkFail, "[NG]",
	"π", "pi",     // π
	"σ", "sigma",  // σ
	"θ", "theta",  // θ
	"√", "sqrt",   // √
	"Σ", "Sum",    // Σ
	"Δ", "d",      // Δ
	"·", "*",      // ·
	"−", "-",      // U+2212
	"≤", "<=",
	"≥", ">=",
)
