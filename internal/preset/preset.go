// Package preset holds the catalog of named demonstration matrices and a
// loader for user-supplied preset files.
package preset

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

// Preset is a named matrix with a short description for menus and the
// viewer HUD.
type Preset struct {
	// Name uniquely identifies the preset. Required.
	Name string `yaml:"name" json:"name"`

	// Description explains what the transformation demonstrates.
	Description string `yaml:"description" json:"description,omitempty"`

	// Entries are the four matrix entries in row-major order [a, b, c, d].
	// All four must be finite.
	Entries [4]float64 `yaml:"entries,flow" json:"entries"`
}

// Matrix returns the preset's matrix value.
func (p Preset) Matrix() mat2.Matrix {
	return mat2.New(p.Entries[0], p.Entries[1], p.Entries[2], p.Entries[3])
}

// Builtin returns the built-in catalog in declaration order. The slice is
// freshly allocated on each call so callers may append loaded presets.
func Builtin() []Preset {
	return []Preset{
		{Name: "symmetric", Description: "Symmetric stretch along diagonal eigenvectors", Entries: [4]float64{2, 1, 1, 2}},
		{Name: "identity", Description: "Identity transform", Entries: [4]float64{1, 0, 0, 1}},
		{Name: "scale", Description: "Uniform scaling by 2", Entries: [4]float64{2, 0, 0, 2}},
		{Name: "stretch", Description: "Axis-aligned stretch", Entries: [4]float64{2, 0, 0, 0.5}},
		{Name: "reflect-x", Description: "Reflection across the x axis", Entries: [4]float64{1, 0, 0, -1}},
		{Name: "rotate-90", Description: "90 degree rotation (complex eigenvalues)", Entries: [4]float64{0, -1, 1, 0}},
		{Name: "shear", Description: "Horizontal shear (defective, not diagonalizable)", Entries: [4]float64{1, 1, 0, 1}},
		{Name: "project-x", Description: "Projection onto the x axis (singular)", Entries: [4]float64{1, 0, 0, 0}},
	}
}

// Default is the matrix used when the boundary receives no input: the
// symmetric preset, whose real distinct eigenvalues and orthogonal
// eigenvectors make the staged animation easiest to follow.
func Default() mat2.Matrix {
	return mat2.New(2, 1, 1, 2)
}

// Find returns the first preset with the given name from the catalog.
func Find(catalog []Preset, name string) (Preset, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Load reads presets from a YAML file. Unknown fields are rejected so
// typos surface as errors rather than silently ignored settings.
//
// File format:
//
//	presets:
//	  - name: my-matrix
//	    description: optional
//	    entries: [1, 2, 3, 4]
func Load(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var file struct {
		Presets []Preset `yaml:"presets"`
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse preset YAML: %w", err)
	}

	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("preset file %s contains no presets", path)
	}
	for i, p := range file.Presets {
		if err := validatePreset(i, p); err != nil {
			return nil, err
		}
	}
	return file.Presets, nil
}

// validatePreset checks required fields and entry finiteness.
func validatePreset(index int, p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("presets[%d]: name is required", index)
	}
	if !p.Matrix().IsValid() {
		return fmt.Errorf("presets[%d] (%s): entries must be finite numbers", index, p.Name)
	}
	return nil
}
