package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
	"github.com/ArkAung/interactive-eigenvector/internal/preset"
)

// ParseError describes a rejected matrix string. Malformed input never
// reaches the engine; it is caught here at the boundary.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid matrix %q: %s", e.Input, e.Reason)
}

// ParseMatrix parses "a,b,c,d" into a matrix. The four fields must be
// finite numbers; wrong arity or unparseable fields yield a ParseError.
func ParseMatrix(s string) (mat2.Matrix, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return mat2.Matrix{}, &ParseError{Input: s, Reason: fmt.Sprintf("want 4 comma-separated numbers, got %d", len(parts))}
	}

	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mat2.Matrix{}, &ParseError{Input: s, Reason: fmt.Sprintf("field %d is not a number", i+1)}
		}
		vals[i] = v
	}

	m := mat2.New(vals[0], vals[1], vals[2], vals[3])
	if !m.IsValid() {
		return mat2.Matrix{}, &ParseError{Input: s, Reason: "entries must be finite"}
	}
	return m, nil
}

// MatrixOptions are the shared input flags for commands that take a
// source matrix.
type MatrixOptions struct {
	Matrix     string // "a,b,c,d"
	Preset     string // preset name
	PresetFile string // extra presets YAML
}

// catalog merges the built-in presets with the optional preset file.
func (o *MatrixOptions) catalog() ([]preset.Preset, error) {
	catalog := preset.Builtin()
	if o.PresetFile != "" {
		loaded, err := preset.Load(o.PresetFile)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, loaded...)
	}
	return catalog, nil
}

// Resolve picks the source matrix: --matrix wins, then --preset, then the
// documented default. Malformed input is an error, never a silent
// fallback; only the fully absent case defaults.
func (o *MatrixOptions) Resolve(formatter *OutputFormatter) (mat2.Matrix, error) {
	if o.Matrix != "" {
		m, err := ParseMatrix(o.Matrix)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return mat2.Matrix{}, formatter.Error(ExitCommandError, ErrCodeBadMatrix, pe.Error(), nil)
			}
			return mat2.Matrix{}, formatter.Error(ExitCommandError, ErrCodeBadMatrix, err.Error(), nil)
		}
		return m, nil
	}

	if o.Preset != "" {
		catalog, err := o.catalog()
		if err != nil {
			return mat2.Matrix{}, formatter.Error(ExitCommandError, ErrCodePresetFile, err.Error(), nil)
		}
		p, ok := preset.Find(catalog, o.Preset)
		if !ok {
			return mat2.Matrix{}, formatter.Error(ExitCommandError, ErrCodeUnknownPreset,
				fmt.Sprintf("unknown preset %q", o.Preset), nil)
		}
		return p.Matrix(), nil
	}

	formatter.VerboseLog("no matrix given, using default %v", preset.Default())
	return preset.Default(), nil
}
