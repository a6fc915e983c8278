package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the info command, which prints diagram metadata and
// item counts without rendering the tree.
func newInfoCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print diagram metadata and item counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, report, err := loadModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(m.Name()))
			if v := m.FormatVersion(); v != "" {
				fmt.Fprintf(out, "%s %s\n", styleLabel.Render("format:"), styleValue.Render(v))
			}
			fmt.Fprintf(out, "%s %d\n", styleLabel.Render("states:"), report.States)
			fmt.Fprintf(out, "%s %d\n", styleLabel.Render("initial states:"), report.Initials)
			fmt.Fprintf(out, "%s %d\n", styleLabel.Render("comments:"), report.Comments)
			fmt.Fprintf(out, "%s %d\n", styleLabel.Render("transitions:"), report.Transitions)
			if n := len(report.Renamed); n > 0 {
				fmt.Fprintln(out, styleWarning.Render(fmt.Sprintf("%d identifier(s) disambiguated on import", n)))
			}
			return nil
		},
	}
}
