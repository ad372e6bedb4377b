package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

// EigenOptions holds flags for the eigen command.
type EigenOptions struct {
	*RootOptions
	MatrixOptions
}

// EigenReport is the structured result of the eigen command: everything
// the engine knows about one matrix, directly serializable.
type EigenReport struct {
	Matrix       mat2.Matrix           `json:"matrix"`
	Det          float64               `json:"det"`
	Trace        float64               `json:"trace"`
	Eigenvalues  mat2.EigenResult      `json:"eigenvalues"`
	Eigenvectors *mat2.EigenvectorPair `json:"eigenvectors"` // nil when complex
}

// NewEigenCommand creates the eigen command.
func NewEigenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EigenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eigen",
		Short: "Compute eigenvalues and eigenvectors of a 2x2 matrix",
		Long: `Compute determinant, trace, eigenvalues, and (when the eigenvalues are
real) unit eigenvectors of the given matrix.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEigen(opts, cmd)
		},
	}

	addMatrixFlags(cmd, &opts.MatrixOptions)
	return cmd
}

// addMatrixFlags registers the shared matrix input flags.
func addMatrixFlags(cmd *cobra.Command, o *MatrixOptions) {
	cmd.Flags().StringVarP(&o.Matrix, "matrix", "m", "", "matrix entries a,b,c,d (row-major)")
	cmd.Flags().StringVarP(&o.Preset, "preset", "p", "", "use a named preset matrix")
	cmd.Flags().StringVar(&o.PresetFile, "preset-file", "", "YAML file with additional presets")
}

func runEigen(opts *EigenOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	m, err := opts.Resolve(formatter)
	if err != nil {
		return err
	}

	report := buildEigenReport(m)
	return formatter.Success(report, formatEigenText(report))
}

// buildEigenReport runs the engine over one matrix.
func buildEigenReport(m mat2.Matrix) EigenReport {
	report := EigenReport{
		Matrix:      m,
		Det:         m.Det(),
		Trace:       m.Trace(),
		Eigenvalues: m.Eigenvalues(),
	}
	if pair, ok := m.Eigenvectors(); ok {
		report.Eigenvectors = &pair
	}
	return report
}

// formatEigenText renders the human-readable report.
func formatEigenText(r EigenReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix:\n  [%g %g]\n  [%g %g]\n", r.Matrix.A, r.Matrix.B, r.Matrix.C, r.Matrix.D)
	fmt.Fprintf(&b, "det = %g, trace = %g\n", r.Det, r.Trace)

	if r.Eigenvalues.IsComplex {
		fmt.Fprintf(&b, "Eigenvalues (complex conjugate pair):\n")
		fmt.Fprintf(&b, "  lambda1 = %g + %gi\n", r.Eigenvalues.Lambda1.Real, r.Eigenvalues.Lambda1.Imag)
		fmt.Fprintf(&b, "  lambda2 = %g - %gi\n", r.Eigenvalues.Lambda2.Real, -r.Eigenvalues.Lambda2.Imag)
		fmt.Fprintf(&b, "No real eigenvectors.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Eigenvalues:\n  lambda1 = %g\n  lambda2 = %g\n",
		r.Eigenvalues.Lambda1.Real, r.Eigenvalues.Lambda2.Real)
	if r.Eigenvectors != nil {
		fmt.Fprintf(&b, "Eigenvectors (unit length):\n")
		fmt.Fprintf(&b, "  v1 = (%g, %g)\n", r.Eigenvectors.V1.X, r.Eigenvectors.V1.Y)
		fmt.Fprintf(&b, "  v2 = (%g, %g)\n", r.Eigenvectors.V2.X, r.Eigenvectors.V2.Y)
	}
	return b.String()
}
