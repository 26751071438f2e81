// Package materials carries the built-in structural steel table used to
// fill strength inputs on the review sheets.
package materials

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed materials.toml
var tableTOML []byte

// Material is one steel grade with its strengths in both unit systems
// used across the sheets.
type Material struct {
	Name         string  `toml:"name" json:"name"`
	Standard     string  `toml:"standard" json:"standard"`
	Category     string  `toml:"category" json:"category"`
	TensileKgCM2 float64 `toml:"tensile_kgcm2" json:"tensileKgCm2"`
	YieldKgCM2   float64 `toml:"yield_kgcm2" json:"yieldKgCm2"`
	TensileMPa   float64 `toml:"tensile_mpa" json:"tensileMPa"`
	YieldMPa     float64 `toml:"yield_mpa" json:"yieldMPa"`
	ShearMPa     float64 `toml:"shear_mpa" json:"shearMPa"`
}

type table struct {
	Materials []Material `toml:"materials"`
}

var (
	loadOnce sync.Once
	loaded   []Material
	loadErr  error
)

func load() ([]Material, error) {
	loadOnce.Do(func() {
		var t table
		if err := toml.Unmarshal(tableTOML, &t); err != nil {
			loadErr = fmt.Errorf("parsing embedded materials table: %w", err)
			return
		}
		loaded = t.Materials
	})
	return loaded, loadErr
}

// List returns all built-in grades sorted by name.
func List() ([]Material, error) {
	mats, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Material, len(mats))
	copy(out, mats)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Lookup finds a grade by name, case-insensitively.
func Lookup(name string) (Material, error) {
	mats, err := load()
	if err != nil {
		return Material{}, err
	}
	for _, m := range mats {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("unknown material %q", name)
}
