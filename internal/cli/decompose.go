package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArkAung/interactive-eigenvector/internal/diag"
	"github.com/ArkAung/interactive-eigenvector/internal/mat2"
)

// DecomposeOptions holds flags for the decompose command.
type DecomposeOptions struct {
	*RootOptions
	MatrixOptions
}

// DecomposeReport pairs the source matrix with its factorization and the
// reconstruction P*D*Pinv for inspection.
type DecomposeReport struct {
	Matrix        mat2.Matrix        `json:"matrix"`
	Decomposition diag.Decomposition `json:"decomposition"`
	Reconstructed *mat2.Matrix       `json:"reconstructed,omitempty"` // nil when not diagonalizable
}

// NewDecomposeCommand creates the decompose command.
func NewDecomposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecomposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "decompose",
		Short:         "Factor a matrix as A = P*D*Pinv",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompose(opts, cmd)
		},
	}

	addMatrixFlags(cmd, &opts.MatrixOptions)
	return cmd
}

func runDecompose(opts *DecomposeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	m, err := opts.Resolve(formatter)
	if err != nil {
		return err
	}

	dec := diag.Decompose(m)
	report := DecomposeReport{Matrix: m, Decomposition: dec}
	if dec.Diagonalizable {
		r := dec.P.Mul(dec.D).Mul(dec.Pinv)
		report.Reconstructed = &r
	}
	return formatter.Success(report, formatDecomposeText(report))
}

func formatDecomposeText(r DecomposeReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix:\n  [%g %g]\n  [%g %g]\n", r.Matrix.A, r.Matrix.B, r.Matrix.C, r.Matrix.D)

	if !r.Decomposition.Diagonalizable {
		fmt.Fprintf(&b, "Not diagonalizable over the reals.\n")
		return b.String()
	}

	writeMat := func(label string, m mat2.Matrix) {
		fmt.Fprintf(&b, "%s:\n  [%g %g]\n  [%g %g]\n", label, m.A, m.B, m.C, m.D)
	}
	writeMat("P (eigenvectors as columns)", r.Decomposition.P)
	writeMat("D (eigenvalues)", r.Decomposition.D)
	writeMat("Pinv", r.Decomposition.Pinv)
	if r.Reconstructed != nil {
		writeMat("P*D*Pinv", *r.Reconstructed)
	}
	return b.String()
}
