package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/veretenov/smtree/pkg/model"
)

// newBrowseCmd creates the browse command, an interactive tree browser
// driven entirely through the model's address API. Besides navigation it
// supports renaming in place and moving states via the drag payload
// protocol (yank with y, put with p).
func newBrowseCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse and edit the item tree interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newBrowserModel(m)).Run()
			return err
		},
	}
}

// treeRow is one visible line of the browser: an address plus its depth.
type treeRow struct {
	addr  model.Address
	depth int
}

// BrowserModel is the bubbletea model for the interactive tree browser.
type BrowserModel struct {
	m         *model.Model
	rows      []treeRow
	collapsed map[*model.Item]bool

	cursor int
	offset int
	height int

	editing bool
	input   string

	payload []byte // yanked drag payload, nil when nothing is yanked
	status  string
}

// newBrowserModel builds the browser over an already loaded model.
func newBrowserModel(m *model.Model) BrowserModel {
	b := BrowserModel{
		m:         m,
		collapsed: make(map[*model.Item]bool),
		height:    20,
	}
	b.rows = b.visibleRows()
	return b
}

// visibleRows flattens the tree into the rows currently on display,
// walking addresses from the machine node and skipping collapsed
// subtrees.
func (b BrowserModel) visibleRows() []treeRow {
	var rows []treeRow
	var walk func(addr model.Address, depth int)
	walk = func(addr model.Address, depth int) {
		rows = append(rows, treeRow{addr: addr, depth: depth})
		if b.collapsed[b.m.AddressToItem(addr)] {
			return
		}
		for row := 0; row < b.m.RowCount(addr); row++ {
			walk(b.m.Index(row, 0, addr), depth+1)
		}
	}
	walk(b.m.MachineAddress(), 0)
	return rows
}

func (b BrowserModel) current() model.Address {
	if b.cursor < 0 || b.cursor >= len(b.rows) {
		return model.Address{}
	}
	return b.rows[b.cursor].addr
}

func (b BrowserModel) Init() tea.Cmd {
	return nil
}

func (b BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.editing {
			return b.updateEditing(msg), nil
		}
		return b.updateBrowsing(msg)
	case tea.WindowSizeMsg:
		b.height = msg.Height - 6
		if b.height < 5 {
			b.height = 5
		}
	}
	return b, nil
}

func (b BrowserModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return b, tea.Quit

	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
			if b.cursor < b.offset {
				b.offset = b.cursor
			}
		}

	case "down", "j":
		if b.cursor < len(b.rows)-1 {
			b.cursor++
			if b.cursor >= b.offset+b.height {
				b.offset = b.cursor - b.height + 1
			}
		}

	case "enter", " ":
		addr := b.current()
		if b.m.RowCount(addr) > 0 {
			item := b.m.AddressToItem(addr)
			b.collapsed[item] = !b.collapsed[item]
			b.rows = b.visibleRows()
			b.clampCursor()
		}

	case "e":
		addr := b.current()
		if b.m.Capabilities(addr).Has(model.CapEditable) {
			b.editing = true
			b.input = b.m.AddressToItem(addr).Title()
			b.status = ""
		} else {
			b.status = "not editable"
		}

	case "y":
		if !b.m.Capabilities(b.current()).Has(model.CapDraggable) {
			b.status = "not draggable"
			break
		}
		data, err := b.m.DragPayload([]model.Address{b.current()})
		if err != nil {
			b.status = err.Error()
			break
		}
		b.payload = data
		b.status = fmt.Sprintf("yanked %s", b.m.AddressToItem(b.current()).Title())

	case "p":
		if b.payload == nil {
			b.status = "nothing yanked"
			break
		}
		if err := b.m.DropPayload(b.payload, b.current()); err != nil {
			b.status = err.Error()
			break
		}
		b.payload = nil
		b.rows = b.visibleRows()
		b.clampCursor()
		b.status = "moved"
	}
	return b, nil
}

func (b BrowserModel) updateEditing(msg tea.KeyMsg) BrowserModel {
	switch msg.String() {
	case "enter":
		if err := b.m.Rename(b.current(), b.input); err != nil {
			b.status = err.Error()
		} else {
			b.status = "renamed"
		}
		b.editing = false
	case "esc":
		b.editing = false
	case "backspace":
		if len(b.input) > 0 {
			runes := []rune(b.input)
			b.input = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			b.input += string(msg.Runes)
		}
	}
	return b
}

func (b *BrowserModel) clampCursor() {
	if b.cursor >= len(b.rows) {
		b.cursor = len(b.rows) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.offset > b.cursor {
		b.offset = b.cursor
	}
}

func (b BrowserModel) View() string {
	var out strings.Builder

	out.WriteString(styleTitle.Render(b.m.Name()))
	out.WriteString("\n")
	out.WriteString(styleDim.Render("↑/↓ navigate  ⏎ fold  e rename  y yank  p put  q quit"))
	out.WriteString("\n\n")

	end := b.offset + b.height
	if end > len(b.rows) {
		end = len(b.rows)
	}

	for i := b.offset; i < end; i++ {
		row := b.rows[i]
		item := b.m.AddressToItem(row.addr)

		cursor := "  "
		if i == b.cursor {
			cursor = "▸ "
		}

		line := cursor + strings.Repeat("  ", row.depth) + glyph(item.Kind()) + " "
		if b.editing && i == b.cursor {
			line += styleSelected.Render(b.input + "▏")
		} else if i == b.cursor {
			line += styleSelected.Render(item.Title())
		} else if b.m.IsAction(row.addr) {
			line += styleDim.Render(item.Title())
		} else {
			line += styleValue.Render(item.Title())
		}
		out.WriteString(line)
		out.WriteString("\n")
	}

	out.WriteString("\n")
	if b.status != "" {
		out.WriteString(styleWarning.Render(b.status))
	}
	out.WriteString(styleDim.Render(fmt.Sprintf("  [%d/%d]", b.cursor+1, len(b.rows))))

	return out.String()
}
