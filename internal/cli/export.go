package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veretenov/smtree/pkg/render"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string // output file path, empty for stdout
	format   string // "dot" or "svg"
	behavior bool   // include behavior text in labels
}

// newExportCmd creates the export command, which renders a diagram as
// Graphviz DOT or SVG.
func newExportCmd(c *CLI) *cobra.Command {
	opts := exportOpts{
		format:   c.Config.Export.Format,
		behavior: c.Config.Export.Behavior,
	}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a diagram as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" {
				return fmt.Errorf("unsupported format %q (want dot or svg)", opts.format)
			}

			m, _, err := loadModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			dot := render.ToDOT(m, render.Options{ShowBehavior: opts.behavior})
			data := []byte(dot)
			if opts.format == "svg" {
				if data, err = render.RenderSVG(dot); err != nil {
					return err
				}
			}

			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			loggerFromContext(cmd.Context()).Infof("Wrote %s", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().BoolVar(&opts.behavior, "behavior", opts.behavior, "include behavior text in labels")

	return cmd
}
