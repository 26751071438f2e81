package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"tcr/internal/export"
	"tcr/internal/history"
	"tcr/internal/report"
	"tcr/internal/review"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *report.Sheet:
		return formatSheetHuman(v), nil
	case *review.Results:
		return formatReviewHuman(v), nil
	case *export.Result:
		return formatExportHuman(v), nil
	case []history.Entry:
		return formatHistoryHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func mark(ok bool) string {
	if ok {
		return report.MarkPass
	}
	return report.MarkFail
}

func formatSheetHuman(s *report.Sheet) string {
	var b strings.Builder

	b.WriteString(s.Title + "\n")
	if s.Subtitle != "" {
		b.WriteString(s.Subtitle + "\n")
	}
	b.WriteString(strings.Repeat("=", 60) + "\n")

	for _, row := range s.Identity {
		fmt.Fprintf(&b, "%-28s %s\n", row.Label, row.Value)
	}
	if len(s.Identity) > 0 {
		b.WriteString("\n")
	}

	for _, row := range s.Spec {
		fmt.Fprintf(&b, "  %-34s %12s %s\n", row.Label, row.Value, row.Unit)
	}
	if len(s.Spec) > 0 {
		b.WriteString("\n")
	}

	for _, j := range s.Judgments {
		fmt.Fprintf(&b, "%s %s", mark(j.OK), j.Label)
		if j.Detail != "" {
			fmt.Fprintf(&b, " (%s)", j.Detail)
		}
		b.WriteString("\n")
	}

	if len(s.Formulas) > 0 {
		b.WriteString("\n")
		for _, f := range s.Formulas {
			b.WriteString("  " + f + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatReviewHuman(r *review.Results) string {
	var b strings.Builder

	b.WriteString("Conformity review\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for _, st := range r.Statuses {
		fmt.Fprintf(&b, "%s %-40s", mark(st.OK), st.Title)
		if st.Detail != "" {
			fmt.Fprintf(&b, " %s", st.Detail)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Overall: %s\n", mark(r.Overall))
	return strings.TrimRight(b.String(), "\n")
}

func formatExportHuman(r *export.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exported %d sheet(s), overall %s\n", r.Sheets, mark(r.Overall))
	for _, f := range r.Files {
		b.WriteString("  " + f + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHistoryHuman(entries []history.Entry) string {
	if len(entries) == 0 {
		return "No issued documents."
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %-12s %-10s %-6s %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Project, e.Sheet, e.Judgment, e.Path)
	}
	return strings.TrimRight(b.String(), "\n")
}
