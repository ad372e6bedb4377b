package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ArkAung/interactive-eigenvector/internal/preset"
)

// PresetsOptions holds flags for the presets command.
type PresetsOptions struct {
	*RootOptions
	PresetFile string
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PresetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "presets",
		Short:         "List the preset matrix catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.PresetFile, "preset-file", "", "YAML file with additional presets")
	return cmd
}

func runPresets(opts *PresetsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	catalog := preset.Builtin()
	if opts.PresetFile != "" {
		loaded, err := preset.Load(opts.PresetFile)
		if err != nil {
			return formatter.Error(ExitCommandError, ErrCodePresetFile, err.Error(), nil)
		}
		formatter.VerboseLog("loaded %d preset(s) from %s", len(loaded), opts.PresetFile)
		catalog = append(catalog, loaded...)
	}

	var b strings.Builder
	for _, p := range catalog {
		e := p.Entries
		fmt.Fprintf(&b, "%-12s [%g %g; %g %g]  %s\n", p.Name, e[0], e[1], e[2], e[3], p.Description)
	}
	return formatter.Success(catalog, b.String())
}
