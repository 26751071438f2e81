// Package project holds the review project file: vehicle identity plus
// one optional section per judgment sheet. Projects are authored in YAML
// (JSON parses as a YAML subset) and can be packed into the compressed
// .tcrz archive form.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackedExt is the compressed project archive extension.
const PackedExt = ".tcrz"

// Vehicle is the identity block printed on every sheet.
type Vehicle struct {
	Name         string `yaml:"name" json:"name"`
	Model        string `yaml:"model" json:"model"`
	Registration string `yaml:"registration" json:"registration"`
	SerialNumber string `yaml:"serialNumber" json:"serialNumber"`
	BodyShape    string `yaml:"bodyShape" json:"bodyShape"`
}

// TowVehicle is the towing-vehicle specification sheet block used by the
// overview and form sheets.
type TowVehicle struct {
	Name          string  `yaml:"name" json:"name"`
	Model         string  `yaml:"model" json:"model"`
	GrossWeight   float64 `yaml:"grossWeight" json:"grossWeight"`     // kg
	CurbWeight    float64 `yaml:"curbWeight" json:"curbWeight"`       // kg
	MaxPower      float64 `yaml:"maxPower" json:"maxPower"`           // PS
	Displacement  float64 `yaml:"displacement" json:"displacement"`   // cc
	Wheelbase     float64 `yaml:"wheelbase" json:"wheelbase"`         // mm
	DriveAxleLoad float64 `yaml:"driveAxleLoad" json:"driveAxleLoad"` // kg
}

// Dimensions is the trailer outline block.
type Dimensions struct {
	Length    float64 `yaml:"length" json:"length"`       // mm
	Width     float64 `yaml:"width" json:"width"`         // mm
	Height    float64 `yaml:"height" json:"height"`       // mm
	Wheelbase float64 `yaml:"wheelbase" json:"wheelbase"` // mm
}

// Project is the full review project. Judgment sections are pointers so
// absence means "sheet not prepared".
type Project struct {
	Vehicle    Vehicle    `yaml:"vehicle" json:"vehicle"`
	TowVehicle TowVehicle `yaml:"towVehicle" json:"towVehicle"`
	Dimensions Dimensions `yaml:"dimensions" json:"dimensions"`

	Axle        *AxleSection        `yaml:"axle,omitempty" json:"axle,omitempty"`
	Hitch       *HitchSection       `yaml:"hitch,omitempty" json:"hitch,omitempty"`
	Coupler     *CouplerSection     `yaml:"coupler,omitempty" json:"coupler,omitempty"`
	Frame       *FrameSection       `yaml:"frame,omitempty" json:"frame,omitempty"`
	Container   *ContainerSection   `yaml:"container,omitempty" json:"container,omitempty"`
	Beam        *BeamSection        `yaml:"beam,omitempty" json:"beam,omitempty"`
	Stability   *StabilitySection   `yaml:"stability,omitempty" json:"stability,omitempty"`
	Turning     *TurningSection     `yaml:"turning,omitempty" json:"turning,omitempty"`
	Coupling    *CouplingSection    `yaml:"coupling,omitempty" json:"coupling,omitempty"`
	Brake       *BrakeSection       `yaml:"brake,omitempty" json:"brake,omitempty"`
	Chain       *ChainSection       `yaml:"chain,omitempty" json:"chain,omitempty"`
	LeafSpring  *LeafSpringSection  `yaml:"leafSpring,omitempty" json:"leafSpring,omitempty"`
	Weight      *WeightSection      `yaml:"weight,omitempty" json:"weight,omitempty"`
	WeightSheet *WeightSheetSection `yaml:"weightSheet,omitempty" json:"weightSheet,omitempty"`
	TireSheet   *TireSheetSection   `yaml:"tireSheet,omitempty" json:"tireSheet,omitempty"`
}

// Load reads a project from a YAML, JSON or packed .tcrz file.
func Load(path string) (*Project, error) {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), PackedExt) {
		data, err = readPacked(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading project %s: %w", path, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the project as YAML, or packed when the path carries the
// .tcrz extension.
func (p *Project) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding project: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), PackedExt) {
		return writePacked(path, data)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project %s: %w", path, err)
	}
	return nil
}

// SheetNames lists the judgment sections present in the project, in
// sheet order.
func (p *Project) SheetNames() []string {
	var names []string
	for _, s := range []struct {
		name    string
		present bool
	}{
		{"axle", p.Axle != nil},
		{"hitch", p.Hitch != nil},
		{"coupler", p.Coupler != nil},
		{"frame", p.Frame != nil},
		{"container", p.Container != nil},
		{"beam", p.Beam != nil},
		{"stability", p.Stability != nil},
		{"turning", p.Turning != nil},
		{"coupling", p.Coupling != nil},
		{"brake", p.Brake != nil},
		{"chain", p.Chain != nil},
		{"leafspring", p.LeafSpring != nil},
		{"weight", p.Weight != nil},
		{"weightsheet", p.WeightSheet != nil},
		{"tiresheet", p.TireSheet != nil},
	} {
		if s.present {
			names = append(names, s.name)
		}
	}
	return names
}
