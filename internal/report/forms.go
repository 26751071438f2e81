package report

import (
	"fmt"

	"tcr/internal/project"
)

// SheetStatus is one line of the overview and conformity tables: a
// judgment sheet and its outcome.
type SheetStatus struct {
	Name   string `json:"sheet"` // sheet key, e.g. "axle"
	Title  string `json:"title"` // sheet title as printed
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func dimensionRows(d project.Dimensions) []Row {
	if d.Length == 0 && d.Width == 0 && d.Height == 0 && d.Wheelbase == 0 {
		return nil
	}
	return []Row{
		{Label: "Overall length", Value: num(d.Length), Unit: "mm"},
		{Label: "Overall width", Value: num(d.Width), Unit: "mm"},
		{Label: "Overall height", Value: num(d.Height), Unit: "mm"},
		{Label: "Wheelbase", Value: num(d.Wheelbase), Unit: "mm"},
	}
}

func towRows(t project.TowVehicle) []Row {
	if t.Name == "" && t.Model == "" {
		return nil
	}
	rows := []Row{
		{Label: "Tow vehicle", Value: t.Name},
		{Label: "Tow vehicle model", Value: t.Model},
	}
	if t.GrossWeight > 0 {
		rows = append(rows, Row{Label: "Tow gross weight", Value: num(t.GrossWeight), Unit: "kg"})
	}
	if t.MaxPower > 0 {
		rows = append(rows, Row{Label: "Tow max power", Value: num(t.MaxPower), Unit: "PS"})
	}
	if t.DriveAxleLoad > 0 {
		rows = append(rows, Row{Label: "Tow drive axle load", Value: num(t.DriveAxleLoad), Unit: "kg"})
	}
	return rows
}

// OverviewSheet summarises the project: identity, outline and one
// judgment line per prepared sheet.
func OverviewSheet(p *project.Project, statuses []SheetStatus) *Sheet {
	s := &Sheet{
		Kind:     "overview",
		Title:    "Review Overview",
		Identity: identityRows(p.Vehicle),
		Spec:     append(dimensionRows(p.Dimensions), towRows(p.TowVehicle)...),
	}
	for _, st := range statuses {
		s.Judgments = append(s.Judgments, Judgment{
			Label:  st.Title,
			OK:     st.OK,
			Detail: st.Detail,
		})
	}
	return s
}

// Form1Sheet builds the assembled-vehicle application form: the trailer
// and towing vehicle particulars without judgments.
func Form1Sheet(p *project.Project) *Sheet {
	spec := append(dimensionRows(p.Dimensions), towRows(p.TowVehicle)...)
	if t := p.TowVehicle; t.CurbWeight > 0 {
		spec = append(spec, Row{Label: "Tow curb weight", Value: num(t.CurbWeight), Unit: "kg"})
	}
	if t := p.TowVehicle; t.Displacement > 0 {
		spec = append(spec, Row{Label: "Tow displacement", Value: num(t.Displacement), Unit: "cc"})
	}
	if t := p.TowVehicle; t.Wheelbase > 0 {
		spec = append(spec, Row{Label: "Tow wheelbase", Value: num(t.Wheelbase), Unit: "mm"})
	}

	return &Sheet{
		Kind:     "form1",
		Title:    "Application for Assembled Vehicle",
		Subtitle: "Form 1",
		Identity: identityRows(p.Vehicle),
		Spec:     spec,
	}
}

// Form2Sheet builds the conformity review table: every prepared sheet
// with its outcome and the overall verdict.
func Form2Sheet(p *project.Project, statuses []SheetStatus) *Sheet {
	s := &Sheet{
		Kind:     "form2",
		Title:    "Conformity Review Table",
		Subtitle: "Form 2",
		Identity: identityRows(p.Vehicle),
	}
	overall := true
	for i, st := range statuses {
		if !st.OK {
			overall = false
		}
		s.Spec = append(s.Spec, Row{
			Label: fmt.Sprintf("%d. %s", i+1, st.Title),
			Value: judgmentMark(st.OK),
		})
	}
	s.Judgments = []Judgment{{
		Label:  "Overall conformity",
		OK:     overall,
		Detail: fmt.Sprintf("%d sheets reviewed", len(statuses)),
	}}
	return s
}

func judgmentMark(ok bool) string {
	if ok {
		return MarkPass
	}
	return MarkFail
}
