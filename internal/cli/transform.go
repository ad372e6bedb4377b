package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

// TransformOptions holds flags for the transform command.
type TransformOptions struct {
	*RootOptions
	MatrixOptions
}

// TransformedPoint pairs an input point with its image under the matrix.
type TransformedPoint struct {
	In  mat2.Vec2 `json:"in"`
	Out mat2.Vec2 `json:"out"`
}

// TransformReport is the structured result of the transform command.
type TransformReport struct {
	Matrix mat2.Matrix        `json:"matrix"`
	Points []TransformedPoint `json:"points"`
}

// NewTransformCommand creates the transform command.
func NewTransformCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransformOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "transform x,y [x,y ...]",
		Short:         "Apply a matrix to one or more 2D points",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, cmd, args)
		},
	}

	addMatrixFlags(cmd, &opts.MatrixOptions)
	return cmd
}

func runTransform(opts *TransformOptions, cmd *cobra.Command, args []string) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	m, err := opts.Resolve(formatter)
	if err != nil {
		return err
	}

	report := TransformReport{Matrix: m}
	for _, arg := range args {
		p, err := parsePoint(arg)
		if err != nil {
			return formatter.Error(ExitCommandError, ErrCodeBadPoint, err.Error(), nil)
		}
		report.Points = append(report.Points, TransformedPoint{In: p, Out: m.TransformVec(p)})
	}

	var b strings.Builder
	for _, tp := range report.Points {
		fmt.Fprintf(&b, "(%g, %g) -> (%g, %g)\n", tp.In.X, tp.In.Y, tp.Out.X, tp.Out.Y)
	}
	return formatter.Success(report, b.String())
}

// parsePoint parses "x,y" into a vector, rejecting non-finite values.
func parsePoint(s string) (mat2.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mat2.Vec2{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return mat2.Vec2{}, fmt.Errorf("invalid point %q: fields must be numbers", s)
	}
	v := mat2.Vec2{X: x, Y: y}
	if !v.IsValid() {
		return mat2.Vec2{}, fmt.Errorf("invalid point %q: fields must be finite", s)
	}
	return v, nil
}
