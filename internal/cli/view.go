package cli

import (
	"github.com/spf13/cobra"

	"github.com/ArkAung/interactive-eigenvector/internal/viewer"
)

// ViewOptions holds flags for the view command.
type ViewOptions struct {
	*RootOptions
	MatrixOptions
}

// NewViewCommand creates the view command, which opens the interactive
// window. It blocks until the window closes.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive eigendecomposition viewer",
		Long: `Open a window animating the staged factorization of the matrix.

Keys:
  Space  step to the next animation phase
  R      reset progress to 0
  Tab    cycle through the preset catalog`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts, cmd)
		},
	}

	addMatrixFlags(cmd, &opts.MatrixOptions)
	return cmd
}

func runView(opts *ViewOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	m, err := opts.Resolve(formatter)
	if err != nil {
		return err
	}
	catalog, err := opts.catalog()
	if err != nil {
		return formatter.Error(ExitCommandError, ErrCodePresetFile, err.Error(), nil)
	}

	if err := viewer.Run(m, catalog); err != nil {
		return formatter.Error(ExitFailure, ErrCodeViewer, err.Error(), nil)
	}
	return nil
}
