package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/outline-popup-control/internal/format/table"
	"github.com/atomicstack/outline-popup-control/internal/tree"
)

var emptyPlaceholder = []string{
	"No items yet?",
	"Press a to add some!",
}

const footerHint = "j/k move  i edit  a/A add  x del  z fold  s sort  / filter"

// View implements tea.Model.
func (m *Model) View() string {
	body := make([]string, 0, 16)
	body = append(body, render(styles.Header, m.headerLine()))

	if menu := m.controller.SortMenu(); menu != nil {
		body = append(body, m.sortMenuLines(menu)...)
	} else if rows := m.controller.Rows(); len(rows) == 0 {
		for _, line := range emptyPlaceholder {
			body = append(body, render(styles.Empty, line))
		}
	} else {
		body = append(body, m.rowLines(rows)...)
	}

	if m.showFooter {
		body = append(body, "")
		body = append(body, render(styles.Footer, footerHint))
	}

	// Reserve 2 rows for the bottom bar (status + filter prompt).
	if m.height > 0 {
		body = fitHeight(body, m.height-2)
	}
	bottom := []string{m.statusLine(), m.filterLine()}
	lines := append(body, bottom...)
	if m.width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > m.width {
				lines[i] = truncate.StringWithTail(line, uint(m.width-1), "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// headerLine shows the ancestry of the selected node, the way a breadcrumb
// names the current menu level.
func (m *Model) headerLine() string {
	segments := []string{"outline"}
	node := m.controller.CurrentNode()
	if node != nil {
		chain := []string{}
		for parent := node.Parent(); parent != nil; parent = parent.Parent() {
			label, err := parent.Field(tree.PrimaryField)
			if err != nil || label == "" {
				label = parent.Name()
			}
			chain = append([]string{label}, chain...)
		}
		segments = append(segments, chain...)
	}
	return strings.Join(segments, "→")
}

// rowLines renders the visible slice of the flattened rows with the field
// columns aligned.
func (m *Model) rowLines(rows []*tree.Row) []string {
	window := m.controller.Window()
	start := window.Top()
	if start < 0 {
		start = 0
	}
	end := window.Bottom()
	if end > len(rows)-1 {
		end = len(rows) - 1
	}
	if start > end {
		return nil
	}

	visible := rows[start : end+1]
	filtered := m.controller.FilterValue() != ""
	editing := m.controller.Editing()

	cells := make([][]string, len(visible))
	for i, row := range visible {
		cells[i] = m.rowCells(row, filtered, editing)
	}
	aligned := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})

	lines := make([]string, len(aligned))
	for i, text := range aligned {
		row := visible[i]
		style := styles.Item
		switch {
		case row.Index == m.controller.Current() && editing != "":
			style = styles.EditingItem
		case row.Index == m.controller.Current():
			style = styles.SelectedItem
		}
		lines[i] = render(style, text)
	}
	return lines
}

// rowCells builds one table row per visible line. Depth indentation is
// dropped while a filter is active: matches surface as a flat list.
func (m *Model) rowCells(row *tree.Row, filtered bool, editing string) []string {
	pointer := "  "
	if row.Index == m.controller.Current() {
		pointer = "> "
	}
	indent := ""
	if !filtered {
		indent = strings.Repeat("  ", row.Depth)
	}
	glyph := ""
	if count := row.ChildCount(); count > 0 && !filtered {
		if row.Expanded {
			glyph = "▾ "
		} else {
			glyph = "▸ "
		}
	}

	about := row.FieldValue(tree.PrimaryField)
	if row.FieldFocused(editing) && editing == tree.PrimaryField {
		about += "▏"
	}
	if count := row.ChildCount(); count > 0 && !row.Expanded && !filtered {
		about += fmt.Sprintf(" [%d]", count)
	}

	due := row.FieldValue("due")
	if row.FieldFocused(editing) && editing == "due" {
		due += "▏"
	}
	return []string{pointer + indent + glyph + about, due, row.FieldValue("urgency")}
}

func (m *Model) sortMenuLines(menu *tree.SortMenu) []string {
	lines := make([]string, 0, len(menu.Options)+1)
	lines = append(lines, render(styles.Info, "sort by:"))
	for i, option := range menu.Options {
		style := styles.SortMenuItem
		prefix := "  "
		if i == menu.Cursor {
			style = styles.SortMenuFocus
			prefix = "> "
		}
		lines = append(lines, render(style, prefix+option))
	}
	return lines
}

func (m *Model) statusLine() string {
	mode := render(styles.StatusMode, fmt.Sprintf(" %s ", m.status))
	notice := m.currentNotice()
	if notice.Text == "" {
		return mode
	}
	style := styles.Info
	if notice.IsErr {
		style = styles.Error
	}
	return mode + " " + render(style, notice.Text)
}

func (m *Model) filterLine() string {
	return render(styles.FilterPrompt, m.controller.FilterView())
}

func fitHeight(lines []string, height int) []string {
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
