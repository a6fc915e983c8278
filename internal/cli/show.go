package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veretenov/smtree/pkg/model"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	ids    bool // print item identifiers next to titles
	glyphs bool // prefix lines with per-kind glyphs
}

// newShowCmd creates the show command, which prints the projected item
// tree of a diagram file.
func newShowCmd(c *CLI) *cobra.Command {
	opts := showOpts{glyphs: c.Config.UI.Glyphs}

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the item tree of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), m, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ids, "ids", false, "print item identifiers")
	cmd.Flags().BoolVar(&opts.glyphs, "glyphs", opts.glyphs, "prefix lines with kind glyphs")

	return cmd
}

// printTree walks the model through its address API and writes one
// indented line per item, starting at the machine node.
func printTree(w io.Writer, m *model.Model, opts showOpts) {
	printSubtree(w, m, m.MachineAddress(), 0, opts)
}

func printSubtree(w io.Writer, m *model.Model, addr model.Address, depth int, opts showOpts) {
	item := m.AddressToItem(addr)

	line := strings.Repeat("  ", depth)
	if opts.glyphs {
		line += glyph(item.Kind()) + " "
	}
	switch {
	case m.IsTrivial(addr):
		line += styleTitle.Render(item.Title())
	case m.IsAction(addr):
		line += styleDim.Render(item.Title())
	default:
		line += styleValue.Render(item.Title())
	}
	if opts.ids && item.ID() != "" {
		line += " " + styleDim.Render("("+item.ID()+")")
	}
	fmt.Fprintln(w, line)

	for row := 0; row < m.RowCount(addr); row++ {
		printSubtree(w, m, m.Index(row, 0, addr), depth+1, opts)
	}
}
