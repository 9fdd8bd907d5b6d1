package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// viewCommand creates the view command for browsing a mind map in the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [map.json]",
		Short: "Browse a mind map interactively in the terminal",
		Long: `Browse a mind map interactively in the terminal.

The view command resolves the node hierarchy and shows it as a collapsible
outline. Use the arrow keys to navigate, enter or space to fold a branch,
and tab to toggle the node detail pane.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loadMap(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}

			model := newOutlineModel(m)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

// Outline styles
var (
	outlineSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	outlineNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	outlineDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	outlineOrphanStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// outlineRow is one visible line of the outline.
type outlineRow struct {
	node   *mindmap.Node
	depth  int
	orphan bool
}

// outlineModel is the bubbletea model for the mind map outline.
type outlineModel struct {
	mindmap   *mindmap.Mindmap
	hierarchy layout.Hierarchy
	rows      []outlineRow
	collapsed map[string]bool
	cursor    int
	offset    int
	height    int
	details   bool
}

func newOutlineModel(m *mindmap.Mindmap) outlineModel {
	om := outlineModel{
		mindmap:   m,
		hierarchy: layout.Resolve(m),
		collapsed: make(map[string]bool),
		height:    20,
	}
	om.rebuild()
	return om
}

// rebuild flattens the hierarchy into visible rows, skipping children of
// collapsed branches. Orphan subtrees follow the root's tree.
func (m *outlineModel) rebuild() {
	m.rows = m.rows[:0]

	var walk func(id string, orphan bool)
	walk = func(id string, orphan bool) {
		node, ok := m.mindmap.Node(id)
		if !ok {
			return
		}
		m.rows = append(m.rows, outlineRow{
			node:   node,
			depth:  m.hierarchy.DepthOf[id],
			orphan: orphan,
		})
		if m.collapsed[id] {
			return
		}
		for _, child := range m.hierarchy.Children(id) {
			walk(child, orphan)
		}
	}

	if m.hierarchy.Root != nil {
		walk(m.hierarchy.Root.ID, false)
	}
	for _, orphan := range m.hierarchy.Orphans {
		walk(orphan, true)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m outlineModel) Init() tea.Cmd {
	return nil
}

func (m outlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			if m.cursor < len(m.rows) {
				id := m.rows[m.cursor].node.ID
				if len(m.hierarchy.Children(id)) > 0 {
					m.collapsed[id] = !m.collapsed[id]
					m.rebuild()
				}
			}
		case "tab":
			m.details = !m.details
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m outlineModel) View() string {
	var b strings.Builder

	title := "Mind Map"
	if m.hierarchy.Root != nil {
		title = m.hierarchy.Root.DisplayLabel()
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(outlineDimStyle.Render("↑/↓ navigate  ⏎ fold  ⇥ details  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := "· "
		if len(m.hierarchy.Children(row.node.ID)) > 0 {
			if m.collapsed[row.node.ID] {
				marker = "+ "
			} else {
				marker = "- "
			}
		}

		line := cursor + strings.Repeat("  ", row.depth) + marker + row.node.DisplayLabel()

		switch {
		case i == m.cursor:
			b.WriteString(outlineSelectedStyle.Render(line))
		case row.orphan:
			b.WriteString(outlineOrphanStyle.Render(line))
		default:
			b.WriteString(outlineNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.details && m.cursor < len(m.rows) {
		b.WriteString(m.detailTable(m.rows[m.cursor]))
		b.WriteString("\n")
	}
	b.WriteString(outlineDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d nodes, %d edges",
		m.cursor+1, len(m.rows), m.mindmap.NodeCount(), m.mindmap.EdgeCount())))

	return b.String()
}

// detailTable renders the selected node's fields as a bordered table.
func (m outlineModel) detailTable(row outlineRow) string {
	node := row.node

	rows := [][]string{
		{"ID", node.ID},
		{"Depth", fmt.Sprintf("%d", row.depth)},
	}
	if parent, ok := m.hierarchy.ParentOf[node.ID]; ok {
		rows = append(rows, []string{"Parent", parent})
	}
	if node.Status != "" {
		rows = append(rows, []string{"Status", node.Status})
	}
	if node.Color != "" {
		rows = append(rows, []string{"Color", node.Color})
	}
	if node.X != 0 || node.Y != 0 {
		rows = append(rows, []string{"Position", fmt.Sprintf("(%.0f, %.0f)", node.X, node.Y)})
	}
	rows = append(rows, []string{"Children", fmt.Sprintf("%d", len(m.hierarchy.Children(node.ID)))})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}
